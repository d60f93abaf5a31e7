package render

import (
	"math"
	"strconv"
	"strings"
)

// Frame fixes where the monster sits on a size×size canvas. Every generator
// measures in multiples of R so output scales with the canvas.
type Frame struct {
	Size float64
	CX   float64
	CY   float64
	R    float64
}

func NewFrame(size int) Frame {
	s := float64(size)
	return Frame{Size: s, CX: s * 0.5, CY: s * 0.54, R: s * 0.3}
}

// Top is the approximate y of the head, where hats and halos sit.
func (f Frame) Top() float64 { return f.CY - f.R*1.05 }

// EyeY is the y of the eye line.
func (f Frame) EyeY() float64 { return f.CY - f.R*0.22 }

// MouthY is the y of the mouth centre.
func (f Frame) MouthY() float64 { return f.CY + f.R*0.25 }

func num(v float64) string {
	if math.Abs(v) < 0.005 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

type pathBuilder struct {
	b strings.Builder
}

func (p *pathBuilder) cmd(c string, vals ...float64) *pathBuilder {
	if p.b.Len() > 0 {
		p.b.WriteByte(' ')
	}
	p.b.WriteString(c)
	for _, v := range vals {
		p.b.WriteByte(' ')
		p.b.WriteString(num(v))
	}
	return p
}

func (p *pathBuilder) M(x, y float64) *pathBuilder { return p.cmd("M", x, y) }
func (p *pathBuilder) L(x, y float64) *pathBuilder { return p.cmd("L", x, y) }
func (p *pathBuilder) Q(cx, cy, x, y float64) *pathBuilder {
	return p.cmd("Q", cx, cy, x, y)
}
func (p *pathBuilder) C(c1x, c1y, c2x, c2y, x, y float64) *pathBuilder {
	return p.cmd("C", c1x, c1y, c2x, c2y, x, y)
}

// A draws an arc with the given radius; sweep selects the clockwise arc.
func (p *pathBuilder) A(r float64, sweep bool, x, y float64) *pathBuilder {
	s := 0.0
	if sweep {
		s = 1
	}
	return p.cmd("A", r, r, 0, 0, s, x, y)
}
func (p *pathBuilder) Z() *pathBuilder { return p.cmd("Z") }

func (p *pathBuilder) String() string { return p.b.String() }

// polygon closes a path through pts.
func polygon(pts [][2]float64) string {
	var p pathBuilder
	for i, pt := range pts {
		if i == 0 {
			p.M(pt[0], pt[1])
			continue
		}
		p.L(pt[0], pt[1])
	}
	return p.Z().String()
}

// starPoints returns the vertices of an n-pointed star centred on (cx, cy).
func starPoints(cx, cy, outer, inner float64, n int) [][2]float64 {
	pts := make([][2]float64, 0, n*2)
	for i := 0; i < n*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/float64(n)
		pts = append(pts, [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return pts
}

func regularPolygon(cx, cy, r float64, n int, rotation float64) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		a := rotation + float64(i)*2*math.Pi/float64(n)
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}
