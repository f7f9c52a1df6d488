package svg

// Group builds a <g> container element.
type Group struct {
	core
	children
}

func newGroup() *Group {
	el := newElement("g")
	return &Group{core{el}, children{el}}
}

// Defs builds a <defs> container for referenced resources (gradients,
// clip paths, symbols).
type Defs struct {
	core
	children
}

func newDefs() *Defs {
	el := newElement("defs")
	return &Defs{core{el}, children{el}}
}

// Symbol builds a <symbol> container, instantiated elsewhere via <use>.
type Symbol struct {
	core
	children
}

func newSymbol() *Symbol {
	el := newElement("symbol")
	return &Symbol{core{el}, children{el}}
}

// SymbolViewBox sets the symbol's viewBox attribute.
func (s *Symbol) SymbolViewBox(minX, minY, width, height float64) {
	s.core.el.SetAttr("viewBox", ViewBox(minX, minY, width, height))
}

// ClipPath builds a <clipPath> container whose children define a clipping
// region.
type ClipPath struct {
	core
	children
}

func newClipPath() *ClipPath {
	el := newElement("clipPath")
	return &ClipPath{core{el}, children{el}}
}

// Mask builds a <mask> container.
type Mask struct {
	core
	children
}

func newMask() *Mask {
	el := newElement("mask")
	return &Mask{core{el}, children{el}}
}

// Use builds a <use> element referencing a defined node by id.
type Use struct {
	core
}

func newUse() *Use { return &Use{core{newElement("use")}} }

// Href sets the href attribute, typically "#id".
func (u *Use) Href(v string) { u.el.SetAttr("href", v) }

// X sets the x offset.
func (u *Use) X(v float64) { u.el.SetAttr("x", fmtNum(v)) }

// Y sets the y offset.
func (u *Use) Y(v float64) { u.el.SetAttr("y", fmtNum(v)) }

// Width sets the width attribute.
func (u *Use) Width(v float64) { u.el.SetAttr("width", fmtNum(v)) }

// Height sets the height attribute.
func (u *Use) Height(v float64) { u.el.SetAttr("height", fmtNum(v)) }
