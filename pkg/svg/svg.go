package svg

// SVG builds the root <svg> element. The xmlns attribute is set on
// construction so every rendered document is namespaced.
type SVG struct {
	core
	children
}

func newSVG() *SVG {
	el := newElement("svg")
	el.SetAttr("xmlns", xmlns)
	return &SVG{core{el}, children{el}}
}

// Width sets the width attribute.
func (s *SVG) Width(v float64) { s.core.el.SetAttr("width", fmtNum(v)) }

// Height sets the height attribute.
func (s *SVG) Height(v float64) { s.core.el.SetAttr("height", fmtNum(v)) }

// ViewBox sets the viewBox attribute.
func (s *SVG) ViewBox(minX, minY, width, height float64) {
	s.core.el.SetAttr("viewBox", ViewBox(minX, minY, width, height))
}

// PreserveAspectRatio sets the preserveAspectRatio attribute.
func (s *SVG) PreserveAspectRatio(v string) { s.core.el.SetAttr("preserveAspectRatio", v) }

// Xmlns overrides the namespace set on construction. Rarely needed.
func (s *SVG) Xmlns(v string) { s.core.el.SetAttr("xmlns", v) }

// New constructs a document tree. It hands a root builder to configure,
// then finalizes the tree and returns the root element. Call
// [Element.Render] on the result to obtain markup text.
func New(configure func(*SVG)) *Element {
	s := newSVG()
	if configure != nil {
		configure(s)
	}
	return s.build()
}
