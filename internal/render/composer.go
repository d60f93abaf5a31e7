package render

import (
	"fmt"

	"github.com/dom/quiz-monsters/internal/domain"
	"github.com/dom/quiz-monsters/internal/genome"
)

const (
	BodyID     = "monster-body"
	GlowHaloID = "glow-halo"
	SparklesID = "sparkles"
	bodyFillID = "body-fill"
	bodyClipID = "body-clip"
	shadowID   = "soft-shadow"
)

// Composer assembles a Scene from DNA. It is stateless.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Compose draws dna on a size×size canvas.
func (c *Composer) Compose(dna genome.DNA, size int) *Scene {
	f := NewFrame(size)
	scene := NewScene(size)
	colors := dna.Colors
	body := BodyPath(dna.BodyType, f)

	scene.AddDefs(bodyFill(colors), ClipPath{ID: bodyClipID, D: body},
		Filter{ID: shadowID, Kind: FilterShadow, StdDeviation: f.R * 0.04, Color: "#000000"})
	if colors.Glow != "" {
		scene.AddDefs(glowFilter(f, colors.Glow))
	}

	scene.AddPart(LayerBackground, background(dna, f))

	scene.Add(LayerBody, Path{ID: BodyID, D: body, Style: Style{
		Fill: "url(#" + bodyFillID + ")", Stroke: shade(colors.Secondary, 0.3), StrokeWidth: f.R * 0.035, Filter: "url(#" + shadowID + ")",
	}})

	if overlay := Pattern(dna.Features.Pattern, f, colors.Accent, dna.Seed); len(overlay) > 0 {
		scene.Add(LayerPattern, Group{ClipPath: "url(#" + bodyClipID + ")", Children: overlay})
	}

	scene.AddPart(LayerFeatures, Limbs(dna.Features.Limbs, f, colors))
	scene.AddPart(LayerFeatures, Eyes(dna.Features.Eyes, f, colors, dna.Personality.Mood))
	scene.AddPart(LayerFeatures, Mouth(dna.Features.Mouth, f, colors, dna.Personality.Mood))

	for _, acc := range dna.Features.Accessories {
		scene.AddPart(LayerAccessories, Accessory(acc, f, colors, dna.Seed))
	}

	scene.AddPart(LayerForeground, foreground(dna, f))
	scene.Animations = animations(dna, f)
	return scene
}

func bodyFill(colors genome.Palette) LinearGradient {
	g := LinearGradient{ID: bodyFillID, X1: 0, Y1: 0, X2: 0, Y2: 1}
	if len(colors.Gradient) > 1 {
		for i, c := range colors.Gradient {
			g.Stops = append(g.Stops, Stop{Offset: float64(i) / float64(len(colors.Gradient)-1), Color: c})
		}
		return g
	}
	g.Stops = []Stop{
		{Offset: 0, Color: shade(colors.Primary, -0.15)},
		{Offset: 1, Color: colors.Primary},
	}
	return g
}

func background(dna genome.DNA, f Frame) Part {
	var part Part
	part.add(Ellipse{CX: f.CX, CY: f.CY + f.R*1.15, RX: f.R * 0.85, RY: f.R * 0.12, Style: Style{Fill: "#000000", Opacity: 0.15}})
	if dna.Colors.Glow != "" {
		part.add(Circle{ID: GlowHaloID, CX: f.CX, CY: f.CY, R: f.R * 1.3, Style: Style{
			Fill: dna.Colors.Glow, Opacity: 0.35, Filter: "url(#glow)",
		}})
	}
	return part
}

var sparkleSpots = [][3]float64{
	{-1.1, -0.9, 0.09}, {1.15, -0.6, 0.07}, {-0.95, 0.7, 0.06}, {1.0, 0.85, 0.08}, {0.1, -1.4, 0.06},
}

func foreground(dna genome.DNA, f Frame) Part {
	var part Part
	if dna.Rarity >= domain.RarityRare {
		part.add(Ellipse{CX: f.CX - f.R*0.35, CY: f.CY - f.R*0.5, RX: f.R * 0.22, RY: f.R * 0.12, Style: Style{
			Fill: "#ffffff", Opacity: 0.3,
		}})
	}
	if dna.Rarity == domain.RarityLegendary || dna.Animations.Special == genome.SpecialSparkle {
		g := Group{ID: SparklesID}
		for _, s := range sparkleSpots {
			g.Children = append(g.Children, Path{
				D:     polygon(starPoints(f.CX+s[0]*f.R, f.CY+s[1]*f.R, s[2]*f.R, s[2]*f.R*0.35, 4)),
				Style: Style{Fill: "#fffbe6"},
			})
		}
		part.add(g)
	}
	return part
}

// animations turns the DNA's animation genes into directives. Energy speeds
// everything up.
func animations(dna genome.DNA, f Frame) []Animation {
	speed := 1.5 - dna.Personality.Energy
	amp := f.R * 0.06
	var out []Animation

	idle := Animation{Target: MonsterGroupID, Kind: AnimateTransform, RepeatCount: "indefinite", Additive: true}
	switch dna.Animations.Idle {
	case genome.IdleBounce:
		idle.TransformType = "translate"
		idle.Values = fmt.Sprintf("0 0; 0 %s; 0 0", num(-amp*1.5))
		idle.Duration = 1.2 * speed
	case genome.IdleFloat:
		idle.TransformType = "translate"
		idle.Values = fmt.Sprintf("0 %s; 0 %s; 0 %s", num(amp), num(-amp), num(amp))
		idle.Duration = 3 * speed
	case genome.IdleBreathe:
		idle.TransformType = "scale"
		idle.Values = "1; 1.03; 1"
		idle.Duration = 2.5 * speed
	default:
		idle.TransformType = "rotate"
		idle.Values = fmt.Sprintf("-3 %[1]s %[2]s; 3 %[1]s %[2]s; -3 %[1]s %[2]s", num(f.CX), num(f.CY))
		idle.Duration = 2.8 * speed
	}
	out = append(out, idle)

	hover := Animation{Target: BodyID, Kind: AnimateTransform, Begin: "mouseover", RepeatCount: "1", Additive: true}
	switch dna.Animations.Hover {
	case genome.HoverSpin:
		hover.TransformType = "rotate"
		hover.Values = fmt.Sprintf("0 %[1]s %[2]s; 360 %[1]s %[2]s", num(f.CX), num(f.CY))
		hover.Duration = 0.8
	case genome.HoverPulse:
		hover.TransformType = "scale"
		hover.Values = "1; 1.08; 1"
		hover.Duration = 0.5
	case genome.HoverJump:
		hover.TransformType = "translate"
		hover.Values = fmt.Sprintf("0 0; 0 %s; 0 0", num(-amp*3))
		hover.Duration = 0.5
	default:
		hover.TransformType = "rotate"
		hover.Values = fmt.Sprintf("0 %[1]s %[2]s; -8 %[1]s %[2]s; 8 %[1]s %[2]s; 0 %[1]s %[2]s", num(f.CX), num(f.CY))
		hover.Duration = 0.6
	}
	out = append(out, hover)

	switch dna.Animations.Special {
	case genome.SpecialSparkle:
		out = append(out, Animation{Target: SparklesID, Kind: AnimateAttribute, Attribute: "opacity", Values: "0.2; 1; 0.2", Duration: 1.6 * speed, RepeatCount: "indefinite"})
	case genome.SpecialFlicker:
		out = append(out, Animation{Target: BodyID, Kind: AnimateAttribute, Attribute: "opacity", Values: "1; 0.85; 1; 0.92; 1", Duration: 0.9 * speed, RepeatCount: "indefinite"})
	case genome.SpecialGlowPulse:
		if dna.Colors.Glow != "" {
			out = append(out, Animation{Target: GlowHaloID, Kind: AnimateAttribute, Attribute: "opacity", Values: "0.2; 0.55; 0.2", Duration: 2 * speed, RepeatCount: "indefinite"})
		}
	case genome.SpecialOrbit:
		orbit := Animation{Target: MonsterGroupID, Kind: AnimateTransform, TransformType: "rotate", RepeatCount: "indefinite", Additive: true}
		orbit.Values = fmt.Sprintf("-5 %[1]s %[2]s; 5 %[1]s %[2]s; -5 %[1]s %[2]s", num(f.CX), num(f.CY))
		orbit.Duration = 4 * speed
		for _, acc := range dna.Features.Accessories {
			if acc == genome.AccessoryOrbit {
				orbit.Target = OrbitGroupID
				orbit.Values = fmt.Sprintf("0 %[1]s %[2]s; 360 %[1]s %[2]s", num(f.CX), num(f.CY))
				orbit.Duration = 6 * speed
			}
		}
		out = append(out, orbit)
	}
	return out
}
