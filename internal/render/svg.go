package render

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
)

// SVG serializes the scene.
func (s *Scene) SVG() string {
	var buf bytes.Buffer
	_ = WriteSVG(&buf, s)
	return buf.String()
}

// WriteSVG writes the scene as a standalone SVG document. Layers are emitted
// in paint order; every layer above the background is wrapped in the
// MonsterGroupID group.
func WriteSVG(w io.Writer, s *Scene) error {
	var e svgEncoder
	size := strconv.Itoa(s.Size)

	e.open("svg", "xmlns", "http://www.w3.org/2000/svg", "xmlns:xlink", "http://www.w3.org/1999/xlink",
		"width", size, "height", size, "viewBox", "0 0 "+size+" "+size)

	if len(s.Defs) > 0 {
		e.open("defs")
		for _, d := range s.Defs {
			e.def(d)
		}
		e.close("defs")
	}

	e.layer(s, LayerBackground)
	e.open("g", "id", MonsterGroupID)
	for _, l := range Layers()[1:] {
		e.layer(s, l)
	}
	e.close("g")

	for _, a := range s.Animations {
		e.animation(a)
	}
	e.close("svg")

	_, err := w.Write(e.buf.Bytes())
	return err
}

type svgEncoder struct {
	buf bytes.Buffer
}

func (e *svgEncoder) attrs(kv []string) {
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		e.buf.WriteByte(' ')
		e.buf.WriteString(kv[i])
		e.buf.WriteString(`="`)
		_ = xml.EscapeText(&e.buf, []byte(kv[i+1]))
		e.buf.WriteByte('"')
	}
}

func (e *svgEncoder) open(tag string, kv ...string) {
	e.buf.WriteByte('<')
	e.buf.WriteString(tag)
	e.attrs(kv)
	e.buf.WriteByte('>')
}

func (e *svgEncoder) empty(tag string, kv ...string) {
	e.buf.WriteByte('<')
	e.buf.WriteString(tag)
	e.attrs(kv)
	e.buf.WriteString("/>")
}

func (e *svgEncoder) close(tag string) {
	e.buf.WriteString("</")
	e.buf.WriteString(tag)
	e.buf.WriteByte('>')
}

func optNum(v float64) string {
	if v == 0 {
		return ""
	}
	return num(v)
}

func styleAttrs(s Style) []string {
	return []string{
		"fill", s.Fill,
		"stroke", s.Stroke,
		"stroke-width", optNum(s.StrokeWidth),
		"stroke-linecap", s.LineCap,
		"opacity", optNum(s.Opacity),
		"filter", s.Filter,
	}
}

func (e *svgEncoder) layer(s *Scene, l Layer) {
	nodes := s.Nodes(l)
	if len(nodes) == 0 {
		return
	}
	e.open("g", "id", "layer-"+l.String())
	for _, n := range nodes {
		e.node(n)
	}
	e.close("g")
}

func (e *svgEncoder) node(n Node) {
	switch v := n.(type) {
	case Path:
		e.empty("path", append([]string{"id", v.ID, "d", v.D}, styleAttrs(v.Style)...)...)
	case Circle:
		e.empty("circle", append([]string{"id", v.ID, "cx", num(v.CX), "cy", num(v.CY), "r", num(v.R)}, styleAttrs(v.Style)...)...)
	case Ellipse:
		e.empty("ellipse", append([]string{"id", v.ID, "cx", num(v.CX), "cy", num(v.CY), "rx", num(v.RX), "ry", num(v.RY)}, styleAttrs(v.Style)...)...)
	case Line:
		e.empty("line", append([]string{"x1", num(v.X1), "y1", num(v.Y1), "x2", num(v.X2), "y2", num(v.Y2)}, styleAttrs(v.Style)...)...)
	case Text:
		e.open("text", append([]string{"x", num(v.X), "y", num(v.Y), "font-size", optNum(v.FontSize), "text-anchor", "middle"}, styleAttrs(v.Style)...)...)
		_ = xml.EscapeText(&e.buf, []byte(v.Content))
		e.close("text")
	case Group:
		e.open("g", append([]string{"id", v.ID, "transform", v.Transform, "clip-path", v.ClipPath}, styleAttrs(v.Style)...)...)
		for _, child := range v.Children {
			e.node(child)
		}
		e.close("g")
	}
}

func (e *svgEncoder) stops(stops []Stop) {
	for _, st := range stops {
		e.empty("stop", "offset", num(st.Offset), "stop-color", st.Color, "stop-opacity", optNum(st.Opacity))
	}
}

func (e *svgEncoder) def(d Def) {
	switch v := d.(type) {
	case LinearGradient:
		e.open("linearGradient", "id", v.ID, "x1", num(v.X1), "y1", num(v.Y1), "x2", num(v.X2), "y2", num(v.Y2))
		e.stops(v.Stops)
		e.close("linearGradient")
	case RadialGradient:
		e.open("radialGradient", "id", v.ID, "cx", num(v.CX), "cy", num(v.CY), "r", num(v.R))
		e.stops(v.Stops)
		e.close("radialGradient")
	case ClipPath:
		e.open("clipPath", "id", v.ID)
		e.empty("path", "d", v.D)
		e.close("clipPath")
	case Filter:
		e.open("filter", "id", v.ID, "x", "-50%", "y", "-50%", "width", "200%", "height", "200%")
		switch v.Kind {
		case FilterShadow:
			e.empty("feDropShadow", "dx", "0", "dy", num(v.StdDeviation), "stdDeviation", num(v.StdDeviation),
				"flood-color", v.Color, "flood-opacity", "0.25")
		default:
			e.empty("feGaussianBlur", "in", "SourceAlpha", "stdDeviation", num(v.StdDeviation), "result", "blur")
			e.empty("feFlood", "flood-color", v.Color)
			e.empty("feComposite", "in2", "blur", "operator", "in", "result", "glow")
			e.open("feMerge")
			e.empty("feMergeNode", "in", "glow")
			e.empty("feMergeNode", "in", "SourceGraphic")
			e.close("feMerge")
		}
		e.close("filter")
	}
}

func (e *svgEncoder) animation(a Animation) {
	additive := ""
	if a.Additive {
		additive = "sum"
	}
	dur := num(a.Duration) + "s"
	switch a.Kind {
	case AnimateTransform:
		e.empty("animateTransform", "xlink:href", "#"+a.Target, "attributeName", "transform", "type", a.TransformType,
			"values", a.Values, "dur", dur, "begin", a.Begin, "repeatCount", a.RepeatCount, "additive", additive)
	default:
		e.empty("animate", "xlink:href", "#"+a.Target, "attributeName", a.Attribute,
			"values", a.Values, "dur", dur, "begin", a.Begin, "repeatCount", a.RepeatCount, "additive", additive)
	}
}
