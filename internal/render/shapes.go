package render

import (
	"math"

	"github.com/dom/quiz-monsters/internal/genome"
)

// BodyPath returns the closed outline of a body archetype. Unknown body types
// are drawn as blobs.
func BodyPath(body genome.BodyType, f Frame) string {
	switch body.Clamp() {
	case genome.BodyCrystal:
		return crystalPath(f)
	case genome.BodyFlame:
		return flamePath(f)
	case genome.BodyCloud:
		return cloudPath(f)
	case genome.BodyStar:
		return polygon(starPoints(f.CX, f.CY, f.R*1.15, f.R*0.58, 5))
	case genome.BodyPolygon:
		return polygon(regularPolygon(f.CX, f.CY, f.R*1.05, 6, -math.Pi/2))
	case genome.BodyOrganic:
		return organicPath(f)
	case genome.BodyMythical:
		return mythicalPath(f)
	default:
		return blobPath(f)
	}
}

// kappa places cubic control points so four segments approximate an ellipse.
const kappa = 0.5523

func blobPath(f Frame) string {
	rx, ry := f.R*1.05, f.R*0.95
	bottom := f.CY + ry*0.9
	var p pathBuilder
	p.M(f.CX, f.CY-ry)
	p.C(f.CX+rx*kappa, f.CY-ry, f.CX+rx, f.CY-ry*kappa, f.CX+rx, f.CY)
	p.C(f.CX+rx, f.CY+ry*kappa, f.CX+rx*kappa, bottom, f.CX, bottom)
	p.C(f.CX-rx*kappa, bottom, f.CX-rx, f.CY+ry*kappa, f.CX-rx, f.CY)
	p.C(f.CX-rx, f.CY-ry*kappa, f.CX-rx*kappa, f.CY-ry, f.CX, f.CY-ry)
	return p.Z().String()
}

func crystalPath(f Frame) string {
	r := f.R
	return polygon([][2]float64{
		{f.CX, f.CY - r*1.25},
		{f.CX + r*0.72, f.CY - r*0.45},
		{f.CX + r*0.58, f.CY + r*0.75},
		{f.CX, f.CY + r},
		{f.CX - r*0.58, f.CY + r*0.75},
		{f.CX - r*0.72, f.CY - r*0.45},
	})
}

func flamePath(f Frame) string {
	r := f.R
	var p pathBuilder
	p.M(f.CX, f.CY-r*1.35)
	p.Q(f.CX+r*0.2, f.CY-r*0.8, f.CX+r*0.45, f.CY-r*0.9)
	p.C(f.CX+r*1.05, f.CY-r*0.3, f.CX+r*1.0, f.CY+r*0.6, f.CX, f.CY+r)
	p.C(f.CX-r*1.0, f.CY+r*0.6, f.CX-r*1.05, f.CY-r*0.3, f.CX-r*0.45, f.CY-r*0.9)
	p.Q(f.CX-r*0.2, f.CY-r*0.8, f.CX, f.CY-r*1.35)
	return p.Z().String()
}

func cloudPath(f Frame) string {
	r := f.R
	base := f.CY + r*0.7
	var p pathBuilder
	p.M(f.CX-r*1.05, base)
	p.A(r*0.45, true, f.CX-r*0.6, f.CY-r*0.3)
	p.A(r*0.55, true, f.CX+r*0.35, f.CY-r*0.5)
	p.A(r*0.5, true, f.CX+r*1.05, base)
	p.Q(f.CX, base+r*0.35, f.CX-r*1.05, base)
	return p.Z().String()
}

// organicPath traces a wobbly closed curve through fixed harmonic offsets.
func organicPath(f Frame) string {
	const n = 12
	pts := make([][2]float64, n)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / n
		r := f.R * (1 + 0.08*math.Sin(3*a) + 0.05*math.Cos(5*a))
		pts[i] = [2]float64{f.CX + r*math.Cos(a), f.CY + r*math.Sin(a)}
	}
	mid := func(a, b [2]float64) (float64, float64) {
		return (a[0] + b[0]) / 2, (a[1] + b[1]) / 2
	}

	var p pathBuilder
	p.M(mid(pts[n-1], pts[0]))
	for i := 0; i < n; i++ {
		mx, my := mid(pts[i], pts[(i+1)%n])
		p.Q(pts[i][0], pts[i][1], mx, my)
	}
	return p.Z().String()
}

func mythicalPath(f Frame) string {
	r := f.R
	var p pathBuilder
	p.M(f.CX-r*0.9, f.CY+r*0.6)
	p.C(f.CX-r*1.1, f.CY-r*0.2, f.CX-r*0.7, f.CY-r*0.8, f.CX-r*0.45, f.CY-r*0.85)
	p.L(f.CX-r*0.62, f.CY-r*1.45)
	p.L(f.CX-r*0.2, f.CY-r*0.95)
	p.Q(f.CX, f.CY-r*1.05, f.CX+r*0.2, f.CY-r*0.95)
	p.L(f.CX+r*0.62, f.CY-r*1.45)
	p.L(f.CX+r*0.45, f.CY-r*0.85)
	p.C(f.CX+r*0.7, f.CY-r*0.8, f.CX+r*1.1, f.CY-r*0.2, f.CX+r*0.9, f.CY+r*0.6)
	p.Q(f.CX, f.CY+r*1.2, f.CX-r*0.9, f.CY+r*0.6)
	return p.Z().String()
}
