// Package render turns monster DNA into a backend-neutral scene graph and
// serializes it to SVG.
package render

// Layer identifies one drawing pass. Layers are painted in declaration order.
type Layer int

const (
	LayerBackground Layer = iota
	LayerBody
	LayerPattern
	LayerFeatures
	LayerAccessories
	LayerForeground
	layerCount
)

var layerNames = [layerCount]string{"background", "body", "pattern", "features", "accessories", "foreground"}

func (l Layer) String() string {
	if l < 0 || l >= layerCount {
		return "unknown"
	}
	return layerNames[l]
}

// Layers lists every layer in paint order.
func Layers() []Layer {
	out := make([]Layer, layerCount)
	for i := range out {
		out[i] = Layer(i)
	}
	return out
}

// Style carries presentation attributes. Zero values are omitted; an Opacity
// of 0 means "not set", not "invisible".
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Filter      string
	LineCap     string
}

// Node is an element of a layer.
type Node interface {
	node()
}

type Path struct {
	ID string
	D  string
	Style
}

type Circle struct {
	ID        string
	CX, CY, R float64
	Style
}

type Ellipse struct {
	ID             string
	CX, CY, RX, RY float64
	Style
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Style
}

type Text struct {
	X, Y     float64
	Content  string
	FontSize float64
	Style
}

type Group struct {
	ID        string
	Transform string
	ClipPath  string
	Style
	Children []Node
}

func (Path) node()    {}
func (Circle) node()  {}
func (Ellipse) node() {}
func (Line) node()    {}
func (Text) node()    {}
func (Group) node()   {}

// Def is an entry of the definitions block.
type Def interface {
	DefID() string
}

type Stop struct {
	Offset  float64
	Color   string
	Opacity float64
}

type LinearGradient struct {
	ID             string
	X1, Y1, X2, Y2 float64
	Stops          []Stop
}

type RadialGradient struct {
	ID        string
	CX, CY, R float64
	Stops     []Stop
}

type FilterKind string

const (
	FilterGlow   FilterKind = "glow"
	FilterShadow FilterKind = "shadow"
)

type Filter struct {
	ID           string
	Kind         FilterKind
	StdDeviation float64
	Color        string
}

type ClipPath struct {
	ID string
	D  string
}

func (g LinearGradient) DefID() string { return g.ID }
func (g RadialGradient) DefID() string { return g.ID }
func (f Filter) DefID() string         { return f.ID }
func (c ClipPath) DefID() string       { return c.ID }

type AnimationKind string

const (
	AnimateAttribute AnimationKind = "attribute"
	AnimateTransform AnimationKind = "transform"
)

// Animation is a declarative animation directive targeting a node id.
type Animation struct {
	Target        string
	Kind          AnimationKind
	Attribute     string
	TransformType string
	Values        string
	Duration      float64
	Begin         string
	RepeatCount   string
	Additive      bool
}

// MonsterGroupID wraps the body, pattern, features, accessories and
// foreground layers in the serialized output, so idle animations move the
// whole monster but not its shadow.
const MonsterGroupID = "monster"

// Scene is a composed monster drawing.
type Scene struct {
	Size       int
	Defs       []Def
	Animations []Animation
	layers     [layerCount][]Node
}

func NewScene(size int) *Scene {
	return &Scene{Size: size}
}

// Add appends nodes to a layer.
func (s *Scene) Add(layer Layer, nodes ...Node) {
	if layer < 0 || layer >= layerCount {
		return
	}
	s.layers[layer] = append(s.layers[layer], nodes...)
}

// AddDefs appends definitions, skipping ids already present.
func (s *Scene) AddDefs(defs ...Def) {
	for _, d := range defs {
		if s.HasDef(d.DefID()) {
			continue
		}
		s.Defs = append(s.Defs, d)
	}
}

func (s *Scene) HasDef(id string) bool {
	for _, d := range s.Defs {
		if d.DefID() == id {
			return true
		}
	}
	return false
}

// Nodes returns the nodes of a layer.
func (s *Scene) Nodes(layer Layer) []Node {
	if layer < 0 || layer >= layerCount {
		return nil
	}
	return s.layers[layer]
}

// Part is what a generator contributes: nodes for one layer plus the
// definitions they reference.
type Part struct {
	Defs  []Def
	Nodes []Node
}

func (p *Part) add(nodes ...Node) {
	p.Nodes = append(p.Nodes, nodes...)
}

func (p *Part) def(defs ...Def) {
	p.Defs = append(p.Defs, defs...)
}

func (s *Scene) AddPart(layer Layer, p Part) {
	s.AddDefs(p.Defs...)
	s.Add(layer, p.Nodes...)
}
