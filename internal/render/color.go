package render

import "github.com/lucasb-eyer/go-colorful"

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// shade darkens (amount > 0) or lightens (amount < 0) a hex colour in Lab
// space. Unparseable input comes back unchanged.
func shade(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	if amount >= 0 {
		return c.BlendLab(black, amount).Clamped().Hex()
	}
	return c.BlendLab(white, -amount).Clamped().Hex()
}
