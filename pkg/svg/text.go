package svg

// Text builds a <text> element. Inline content is escaped at render time
// and emitted before any <tspan> children.
type Text struct {
	core
}

func newText() *Text { return &Text{core{newElement("text")}} }

// X sets the x attribute.
func (t *Text) X(v float64) { t.el.SetAttr("x", fmtNum(v)) }

// Y sets the y attribute.
func (t *Text) Y(v float64) { t.el.SetAttr("y", fmtNum(v)) }

// Dx sets the dx attribute.
func (t *Text) Dx(v float64) { t.el.SetAttr("dx", fmtNum(v)) }

// Dy sets the dy attribute.
func (t *Text) Dy(v float64) { t.el.SetAttr("dy", fmtNum(v)) }

// FontFamily sets the font-family attribute.
func (t *Text) FontFamily(v string) { t.el.SetAttr("font-family", v) }

// FontSize sets the font-size attribute.
func (t *Text) FontSize(v float64) { t.el.SetAttr("font-size", fmtNum(v)) }

// FontWeight sets the font-weight attribute.
func (t *Text) FontWeight(v string) { t.el.SetAttr("font-weight", v) }

// TextAnchor sets the text-anchor attribute ("start", "middle", "end").
func (t *Text) TextAnchor(v string) { t.el.SetAttr("text-anchor", v) }

// DominantBaseline sets the dominant-baseline attribute.
func (t *Text) DominantBaseline(v string) { t.el.SetAttr("dominant-baseline", v) }

// Content sets the element's inline text content.
func (t *Text) Content(v string) { t.el.Text = v }

// Tspan appends a <tspan> child configured by fn.
func (t *Text) Tspan(fn func(*Tspan)) {
	ts := newTspan()
	if fn != nil {
		fn(ts)
	}
	t.el.appendChild(ts.build())
}

// Tspan builds a <tspan> element nested inside a <text>.
type Tspan struct {
	core
}

func newTspan() *Tspan { return &Tspan{core{newElement("tspan")}} }

// X sets the x attribute.
func (t *Tspan) X(v float64) { t.el.SetAttr("x", fmtNum(v)) }

// Y sets the y attribute.
func (t *Tspan) Y(v float64) { t.el.SetAttr("y", fmtNum(v)) }

// Dx sets the dx attribute.
func (t *Tspan) Dx(v float64) { t.el.SetAttr("dx", fmtNum(v)) }

// Dy sets the dy attribute.
func (t *Tspan) Dy(v float64) { t.el.SetAttr("dy", fmtNum(v)) }

// Content sets the element's inline text content.
func (t *Tspan) Content(v string) { t.el.Text = v }
