package render

import (
	"math"

	"github.com/dom/quiz-monsters/internal/genome"
)

const ink = "#1d1d1f"

// Eyes draws an eye style. Mood in [0,1] nudges pupils upward for cheerful
// monsters.
func Eyes(style genome.EyeStyle, f Frame, colors genome.Palette, mood float64) Part {
	var part Part
	r := f.R
	y := f.EyeY()
	gap := r * 0.38
	lift := (mood - 0.5) * r * 0.04
	pair := []float64{f.CX - gap, f.CX + gap}

	switch style {
	case genome.EyesDot:
		for _, x := range pair {
			part.add(Circle{CX: x, CY: y, R: r * 0.07, Style: Style{Fill: ink}})
		}
	case genome.EyesRound, genome.EyesSparkle:
		for _, x := range pair {
			part.add(roundEye(x, y, r*0.14, lift)...)
			if style == genome.EyesSparkle {
				part.add(Path{D: polygon(starPoints(x+r*0.05, y-r*0.06, r*0.045, r*0.018, 4)), Style: Style{Fill: "#ffffff"}})
			}
		}
	case genome.EyesSleepy:
		for _, x := range pair {
			var p pathBuilder
			p.M(x-r*0.12, y).Q(x, y+r*0.1, x+r*0.12, y)
			part.add(Path{D: p.String(), Style: Style{Fill: "none", Stroke: ink, StrokeWidth: r * 0.04, LineCap: "round"}})
		}
	case genome.EyesStar:
		for _, x := range pair {
			part.add(
				Circle{CX: x, CY: y, R: r * 0.14, Style: Style{Fill: "#ffffff", Stroke: ink, StrokeWidth: r * 0.015}},
				Path{D: polygon(starPoints(x, y-lift, r*0.1, r*0.045, 5)), Style: Style{Fill: colors.Accent}},
			)
		}
	case genome.EyesCyclops:
		part.add(roundEye(f.CX, y, r*0.26, lift)...)
	case genome.EyesGradient:
		part.def(
			RadialGradient{ID: "eye-glow", CX: 0.5, CY: 0.5, R: 0.5, Stops: []Stop{
				{Offset: 0, Color: colors.Accent, Opacity: 0.9},
				{Offset: 1, Color: colors.Accent, Opacity: 0.01},
			}},
			RadialGradient{ID: "eye-iris", CX: 0.4, CY: 0.4, R: 0.6, Stops: []Stop{
				{Offset: 0, Color: shade(colors.Accent, -0.4)},
				{Offset: 0.6, Color: colors.Accent},
				{Offset: 1, Color: colors.Secondary},
			}},
		)
		for _, x := range pair {
			part.add(
				Circle{CX: x, CY: y, R: r * 0.22, Style: Style{Fill: "url(#eye-glow)"}},
				Circle{CX: x, CY: y, R: r * 0.15, Style: Style{Fill: "#ffffff"}},
				Circle{CX: x, CY: y - lift, R: r * 0.11, Style: Style{Fill: "url(#eye-iris)"}},
				Circle{CX: x, CY: y - lift, R: r * 0.05, Style: Style{Fill: ink}},
				Circle{CX: x + r*0.04, CY: y - lift - r*0.04, R: r * 0.025, Style: Style{Fill: "#ffffff"}},
			)
		}
	case genome.EyesCosmic:
		for _, x := range pair {
			part.add(Circle{CX: x, CY: y, R: r * 0.15, Style: Style{Fill: "#120a2a", Stroke: colors.Accent, StrokeWidth: r * 0.02}})
			for i, a := range []float64{0.3, 2.1, 4.0} {
				d := r * (0.05 + 0.02*float64(i))
				part.add(Circle{CX: x + d*math.Cos(a), CY: y + d*math.Sin(a), R: r * 0.018, Style: Style{Fill: "#ffffff"}})
			}
		}
	default:
		for _, x := range pair {
			part.add(Circle{CX: x, CY: y, R: r * 0.07, Style: Style{Fill: ink}})
		}
	}
	return part
}

func roundEye(x, y, radius, lift float64) []Node {
	return []Node{
		Circle{CX: x, CY: y, R: radius, Style: Style{Fill: "#ffffff", Stroke: ink, StrokeWidth: radius * 0.1}},
		Circle{CX: x, CY: y - lift, R: radius * 0.5, Style: Style{Fill: ink}},
		Circle{CX: x + radius*0.25, CY: y - lift - radius*0.25, R: radius * 0.18, Style: Style{Fill: "#ffffff"}},
	}
}

// Mouth draws a mouth style. Higher mood deepens smiles.
func Mouth(style genome.MouthStyle, f Frame, colors genome.Palette, mood float64) Part {
	var part Part
	r := f.R
	y := f.MouthY()
	w := r * 0.22
	depth := r * (0.06 + 0.1*mood)
	stroke := Style{Fill: "none", Stroke: ink, StrokeWidth: r * 0.04, LineCap: "round"}

	smile := func(width, d float64) string {
		var p pathBuilder
		return p.M(f.CX-width, y).Q(f.CX, y+d*2, f.CX+width, y).String()
	}

	switch style {
	case genome.MouthFlat:
		part.add(Line{X1: f.CX - w*0.8, Y1: y, X2: f.CX + w*0.8, Y2: y, Style: stroke})
	case genome.MouthOpen, genome.MouthTongue:
		part.add(Ellipse{CX: f.CX, CY: y + r*0.04, RX: w * 0.7, RY: r * 0.1, Style: Style{Fill: "#3b0d11"}})
		if style == genome.MouthTongue {
			part.add(Ellipse{CX: f.CX, CY: y + r*0.1, RX: w * 0.4, RY: r * 0.05, Style: Style{Fill: "#ff7aa2"}})
		}
	case genome.MouthFang:
		part.add(Path{D: smile(w, depth), Style: stroke})
		for _, side := range []float64{-1, 1} {
			x := f.CX + side*w*0.45
			part.add(Path{D: polygon([][2]float64{{x - r*0.04, y + depth*0.4}, {x + r*0.04, y + depth*0.4}, {x, y + depth*0.4 + r*0.1}}), Style: Style{Fill: "#ffffff", Stroke: ink, StrokeWidth: r * 0.01}})
		}
	case genome.MouthGrin:
		var p pathBuilder
		p.M(f.CX-w*1.2, y).Q(f.CX, y+depth*2.6, f.CX+w*1.2, y).Z()
		part.add(
			Path{D: p.String(), Style: Style{Fill: "#ffffff", Stroke: ink, StrokeWidth: r * 0.03}},
			Line{X1: f.CX - w, Y1: y + depth*0.5, X2: f.CX + w, Y2: y + depth*0.5, Style: Style{Stroke: ink, StrokeWidth: r * 0.015}},
		)
	case genome.MouthRoar:
		pts := [][2]float64{{f.CX - w*1.1, y - r*0.02}}
		for i := 0; i <= 6; i++ {
			dy := r * 0.06
			if i%2 == 1 {
				dy = r * 0.2
			}
			pts = append(pts, [2]float64{f.CX - w*1.1 + float64(i)*w*2.2/6, y + dy})
		}
		part.add(Path{D: polygon(pts), Style: Style{Fill: "#3b0d11", Stroke: ink, StrokeWidth: r * 0.02}})
	case genome.MouthJewel:
		part.add(
			Path{D: smile(w*0.7, depth*0.7), Style: stroke},
			Path{D: polygon(regularPolygon(f.CX, y+r*0.16, r*0.05, 4, 0)), Style: Style{Fill: colors.Accent, Stroke: shade(colors.Accent, 0.3), StrokeWidth: r * 0.01}},
		)
	default:
		part.add(Path{D: smile(w, depth), Style: stroke})
	}
	return part
}

// Limbs draws appendages around the body.
func Limbs(style genome.LimbStyle, f Frame, colors genome.Palette) Part {
	var part Part
	r := f.R
	fill := Style{Fill: colors.Secondary, Stroke: shade(colors.Secondary, 0.3), StrokeWidth: r * 0.02}

	switch style {
	case genome.LimbsStubby:
		for _, side := range []float64{-1, 1} {
			part.add(Ellipse{CX: f.CX + side*r*0.45, CY: f.CY + r*0.9, RX: r * 0.18, RY: r * 0.1, Style: fill})
		}
	case genome.LimbsArms:
		for _, side := range []float64{-1, 1} {
			var p pathBuilder
			p.M(f.CX+side*r*0.85, f.CY).Q(f.CX+side*r*1.25, f.CY+r*0.1, f.CX+side*r*1.15, f.CY+r*0.45)
			part.add(Path{D: p.String(), Style: Style{Fill: "none", Stroke: colors.Secondary, StrokeWidth: r * 0.12, LineCap: "round"}})
		}
	case genome.LimbsWings:
		for _, side := range []float64{-1, 1} {
			var p pathBuilder
			p.M(f.CX+side*r*0.7, f.CY-r*0.3)
			p.Q(f.CX+side*r*1.5, f.CY-r*1.1, f.CX+side*r*1.55, f.CY-r*0.2)
			p.Q(f.CX+side*r*1.2, f.CY-r*0.2, f.CX+side*r*0.8, f.CY+r*0.1)
			part.add(Path{D: p.Z().String(), Style: Style{Fill: colors.Accent, Stroke: shade(colors.Accent, 0.35), StrokeWidth: r * 0.02, Opacity: 0.85}})
		}
	case genome.LimbsTentacles:
		for i := 0; i < 4; i++ {
			x := f.CX - r*0.6 + float64(i)*r*0.4
			var p pathBuilder
			p.M(x, f.CY+r*0.75).C(x-r*0.15, f.CY+r*1.0, x+r*0.15, f.CY+r*1.1, x, f.CY+r*1.3)
			part.add(Path{D: p.String(), Style: Style{Fill: "none", Stroke: colors.Secondary, StrokeWidth: r * 0.09, LineCap: "round"}})
		}
	case genome.LimbsEthereal:
		part.def(glowFilter(f, colors.Accent))
		for _, side := range []float64{-1, 1} {
			var p pathBuilder
			p.M(f.CX+side*r*0.8, f.CY+r*0.2)
			p.C(f.CX+side*r*1.3, f.CY, f.CX+side*r*1.1, f.CY+r*0.8, f.CX+side*r*1.45, f.CY+r*0.9)
			part.add(Path{D: p.String(), Style: Style{Fill: "none", Stroke: colors.Accent, StrokeWidth: r * 0.07, LineCap: "round", Opacity: 0.5, Filter: "url(#glow)"}})
		}
	}
	return part
}
