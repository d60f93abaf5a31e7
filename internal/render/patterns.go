package render

import (
	"strconv"

	"github.com/dom/quiz-monsters/internal/genome"
)

var patternBaseSpacing = map[genome.PatternKind]float64{
	genome.PatternDots:    0.12,
	genome.PatternStripes: 0.10,
	genome.PatternScales:  0.11,
	genome.PatternGlyphs:  0.16,
}

var glyphs = []string{"✦", "✧", "◇", "☆", "◈", "✶"}

// PatternSpacing is the tile pitch for a pattern: size*(base/density).
func PatternSpacing(kind genome.PatternKind, density, size float64) float64 {
	base, ok := patternBaseSpacing[kind]
	if !ok || density <= 0 {
		return 0
	}
	return size * (base / density)
}

// Pattern returns the overlay for a pattern kind, tiled over the body's
// bounding box. Callers clip it to the body outline. seed only affects glyph
// placement.
func Pattern(p genome.Pattern, f Frame, color string, seed uint64) []Node {
	spacing := PatternSpacing(p.Kind, p.Density, f.Size)
	if spacing <= 0 {
		return nil
	}

	x0, x1 := f.CX-f.R*1.3, f.CX+f.R*1.3
	y0, y1 := f.CY-f.R*1.5, f.CY+f.R*1.3
	style := Style{Fill: color, Opacity: 0.35}

	var nodes []Node
	switch p.Kind {
	case genome.PatternDots:
		row := 0
		for y := y0; y <= y1; y += spacing {
			offset := 0.0
			if row%2 == 1 {
				offset = spacing / 2
			}
			for x := x0 + offset; x <= x1; x += spacing {
				nodes = append(nodes, Circle{CX: x, CY: y, R: spacing * 0.18, Style: style})
			}
			row++
		}
	case genome.PatternStripes:
		h := y1 - y0
		for x := x0 - h; x <= x1; x += spacing {
			nodes = append(nodes, Line{
				X1: x, Y1: y0, X2: x + h, Y2: y1,
				Style: Style{Stroke: color, StrokeWidth: spacing * 0.3, Opacity: 0.3},
			})
		}
	case genome.PatternScales:
		row := 0
		for y := y0; y <= y1; y += spacing * 0.6 {
			offset := 0.0
			if row%2 == 1 {
				offset = spacing / 2
			}
			for x := x0 + offset; x <= x1; x += spacing {
				var pb pathBuilder
				pb.M(x, y).A(spacing/2, false, x+spacing, y)
				nodes = append(nodes, Path{D: pb.String(), Style: Style{
					Fill: "none", Stroke: color, StrokeWidth: spacing * 0.08, Opacity: 0.45,
				}})
			}
			row++
		}
	case genome.PatternGlyphs:
		rng := genome.NewPRNG(genome.Hash(strconv.FormatUint(seed, 10) + "glyphs"))
		count := int((x1 - x0) * (y1 - y0) / (spacing * spacing))
		for i := 0; i < count; i++ {
			nodes = append(nodes, Text{
				X:        rng.NextRange(x0, x1),
				Y:        rng.NextRange(y0, y1),
				Content:  genome.Pick(rng, glyphs),
				FontSize: spacing * rng.NextRange(0.35, 0.6),
				Style:    Style{Fill: color, Opacity: 0.5},
			})
		}
	}
	return nodes
}
