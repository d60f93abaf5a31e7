package render

import (
	"math"
	"strconv"

	"github.com/dom/quiz-monsters/internal/genome"
)

const OrbitGroupID = "accessory-orbit"

// ConstellationSeed derives the constellation sub-seed from the DNA seed so
// the layout is reproducible.
func ConstellationSeed(seed uint64) uint64 {
	return genome.Hash(strconv.FormatUint(seed, 10) + "constellation")
}

// Accessory draws one accessory. seed is the DNA seed.
func Accessory(acc genome.Accessory, f Frame, colors genome.Palette, seed uint64) Part {
	var part Part
	r := f.R
	top := f.Top()
	accent := colors.Accent
	outline := shade(accent, 0.35)

	switch acc {
	case genome.AccessoryHat:
		brim := Ellipse{CX: f.CX, CY: top + r*0.05, RX: r * 0.45, RY: r * 0.08, Style: Style{Fill: ink}}
		crown := Path{D: polygon([][2]float64{
			{f.CX - r*0.28, top + r*0.04}, {f.CX - r*0.24, top - r*0.45},
			{f.CX + r*0.24, top - r*0.45}, {f.CX + r*0.28, top + r*0.04},
		}), Style: Style{Fill: ink}}
		band := Line{X1: f.CX - r*0.26, Y1: top - r*0.06, X2: f.CX + r*0.26, Y2: top - r*0.06, Style: Style{Stroke: accent, StrokeWidth: r * 0.07}}
		part.add(brim, crown, band)
	case genome.AccessoryBow:
		x, y := f.CX+r*0.5, top+r*0.2
		part.add(
			Path{D: polygon([][2]float64{{x, y}, {x - r*0.25, y - r*0.14}, {x - r*0.25, y + r*0.14}}), Style: Style{Fill: accent, Stroke: outline, StrokeWidth: r * 0.015}},
			Path{D: polygon([][2]float64{{x, y}, {x + r*0.25, y - r*0.14}, {x + r*0.25, y + r*0.14}}), Style: Style{Fill: accent, Stroke: outline, StrokeWidth: r * 0.015}},
			Circle{CX: x, CY: y, R: r * 0.05, Style: Style{Fill: outline}},
		)
	case genome.AccessoryCrown:
		base := top + r*0.08
		pts := [][2]float64{{f.CX - r*0.35, base}}
		for i := 0; i <= 4; i++ {
			y := base - r*0.2
			if i%2 == 0 {
				y = base - r*0.42
			}
			pts = append(pts, [2]float64{f.CX - r*0.35 + float64(i)*r*0.175, y})
		}
		pts = append(pts, [2]float64{f.CX + r*0.35, base})
		part.add(Path{D: polygon(pts), Style: Style{Fill: "#ffd60a", Stroke: "#b08900", StrokeWidth: r * 0.02}})
		part.add(Circle{CX: f.CX, CY: base - r*0.12, R: r * 0.05, Style: Style{Fill: accent}})
	case genome.AccessoryScarf:
		y := f.CY + r*0.5
		var band pathBuilder
		band.M(f.CX-r*0.75, y).Q(f.CX, y+r*0.22, f.CX+r*0.75, y)
		part.add(
			Path{D: band.String(), Style: Style{Fill: "none", Stroke: accent, StrokeWidth: r * 0.16, LineCap: "round"}},
			Path{D: polygon([][2]float64{
				{f.CX + r*0.35, y + r*0.1}, {f.CX + r*0.55, y + r*0.12},
				{f.CX + r*0.5, y + r*0.5}, {f.CX + r*0.32, y + r*0.46},
			}), Style: Style{Fill: accent, Stroke: outline, StrokeWidth: r * 0.015}},
		)
	case genome.AccessoryHalo:
		part.def(glowFilter(f, "#fff3b0"))
		part.add(Ellipse{CX: f.CX, CY: top - r*0.3, RX: r * 0.42, RY: r * 0.1, Style: Style{
			Fill: "none", Stroke: "#ffe066", StrokeWidth: r * 0.06, Filter: "url(#glow)",
		}})
	case genome.AccessoryAura:
		glow := colors.Glow
		if glow == "" {
			glow = accent
		}
		part.add(Circle{CX: f.CX, CY: f.CY, R: r * 1.45, Style: Style{Fill: "none", Stroke: glow, StrokeWidth: r * 0.08, Opacity: 0.3}})
	case genome.AccessoryOrbit:
		part.add(Group{ID: OrbitGroupID, Children: []Node{
			Ellipse{CX: f.CX, CY: f.CY, RX: r * 1.4, RY: r * 0.45, Style: Style{Fill: "none", Stroke: accent, StrokeWidth: r * 0.02, Opacity: 0.6}},
			Circle{CX: f.CX + r*1.4, CY: f.CY, R: r * 0.09, Style: Style{Fill: accent}},
		}})
	case genome.AccessoryConstellation:
		part.add(constellation(f, ConstellationSeed(seed)))
	}
	return part
}

func constellation(f Frame, seed uint64) Group {
	rng := genome.NewPRNG(seed)
	r := f.R
	count := rng.NextInt(5, 7)

	stars := make([][2]float64, count)
	for i := range stars {
		a := math.Pi + float64(i)*math.Pi/float64(count-1) + rng.NextRange(-0.15, 0.15)
		d := r * rng.NextRange(1.3, 1.55)
		stars[i] = [2]float64{f.CX + d*math.Cos(a), f.CY - r*0.2 + d*0.8*math.Sin(a)}
	}

	g := Group{ID: "accessory-constellation"}
	for i := 1; i < len(stars); i++ {
		g.Children = append(g.Children, Line{
			X1: stars[i-1][0], Y1: stars[i-1][1], X2: stars[i][0], Y2: stars[i][1],
			Style: Style{Stroke: "#ffffff", StrokeWidth: r * 0.012, Opacity: 0.5},
		})
	}
	for _, s := range stars {
		g.Children = append(g.Children, Circle{CX: s[0], CY: s[1], R: r * rng.NextRange(0.025, 0.05), Style: Style{Fill: "#fffbe6"}})
	}
	return g
}

func glowFilter(f Frame, color string) Filter {
	return Filter{ID: "glow", Kind: FilterGlow, StdDeviation: f.R * 0.06, Color: color}
}
