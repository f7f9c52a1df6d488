package svg

// core provides the presentation attribute setters shared by every builder.
// Each setter is a direct attribute write; repeated calls overwrite.
type core struct {
	el *Element
}

// build hands the finished element to the parent. Path overrides this to
// flush its command buffer first.
func (c *core) build() *Element { return c.el }

// ID sets the id attribute.
func (c *core) ID(v string) { c.el.SetAttr("id", v) }

// Class sets the class attribute.
func (c *core) Class(v string) { c.el.SetAttr("class", v) }

// Style sets the style attribute.
func (c *core) Style(v string) { c.el.SetAttr("style", v) }

// Transform sets the transform attribute. Combine multiple transform
// functions with [Transforms].
func (c *core) Transform(v string) { c.el.SetAttr("transform", v) }

// Opacity sets the opacity attribute.
func (c *core) Opacity(v float64) { c.el.SetAttr("opacity", fmtNum(v)) }

// Fill sets the fill attribute to a raw paint value ("red", "url(#g1)",
// "none"). The value is emitted unchanged.
func (c *core) Fill(v string) { c.el.SetAttr("fill", v) }

// FillColor sets the fill attribute from color channels via [Color].
func (c *core) FillColor(r, g, b, a float64) { c.el.SetAttr("fill", Color(r, g, b, a)) }

// FillOpacity sets the fill-opacity attribute.
func (c *core) FillOpacity(v float64) { c.el.SetAttr("fill-opacity", fmtNum(v)) }

// FillRule sets the fill-rule attribute ("nonzero" or "evenodd").
func (c *core) FillRule(v string) { c.el.SetAttr("fill-rule", v) }

// Stroke sets the stroke attribute to a raw paint value.
func (c *core) Stroke(v string) { c.el.SetAttr("stroke", v) }

// StrokeColor sets the stroke attribute from color channels via [Color].
func (c *core) StrokeColor(r, g, b, a float64) { c.el.SetAttr("stroke", Color(r, g, b, a)) }

// StrokeWidth sets the stroke-width attribute.
func (c *core) StrokeWidth(v float64) { c.el.SetAttr("stroke-width", fmtNum(v)) }

// StrokeOpacity sets the stroke-opacity attribute.
func (c *core) StrokeOpacity(v float64) { c.el.SetAttr("stroke-opacity", fmtNum(v)) }

// StrokeLinecap sets the stroke-linecap attribute ("butt", "round", "square").
func (c *core) StrokeLinecap(v string) { c.el.SetAttr("stroke-linecap", v) }

// StrokeLinejoin sets the stroke-linejoin attribute ("miter", "round", "bevel").
func (c *core) StrokeLinejoin(v string) { c.el.SetAttr("stroke-linejoin", v) }

// StrokeDasharray sets the stroke-dasharray attribute.
func (c *core) StrokeDasharray(v string) { c.el.SetAttr("stroke-dasharray", v) }

// StrokeDashoffset sets the stroke-dashoffset attribute.
func (c *core) StrokeDashoffset(v float64) { c.el.SetAttr("stroke-dashoffset", fmtNum(v)) }

// ClipPathRef sets the clip-path attribute, typically "url(#id)".
func (c *core) ClipPathRef(v string) { c.el.SetAttr("clip-path", v) }

// MaskRef sets the mask attribute, typically "url(#id)".
func (c *core) MaskRef(v string) { c.el.SetAttr("mask", v) }

// Filter sets the filter attribute.
func (c *core) Filter(v string) { c.el.SetAttr("filter", v) }

// children provides the child-adders shared by container builders. Each
// adder instantiates the matching child builder, applies fn to it, builds
// the child and appends it; children render in append order.
type children struct {
	el *Element
}

// Group appends a <g> child configured by fn.
func (c *children) Group(fn func(*Group)) {
	g := newGroup()
	if fn != nil {
		fn(g)
	}
	c.el.appendChild(g.build())
}

// Defs appends a <defs> child configured by fn.
func (c *children) Defs(fn func(*Defs)) {
	d := newDefs()
	if fn != nil {
		fn(d)
	}
	c.el.appendChild(d.build())
}

// Symbol appends a <symbol> child configured by fn.
func (c *children) Symbol(fn func(*Symbol)) {
	s := newSymbol()
	if fn != nil {
		fn(s)
	}
	c.el.appendChild(s.build())
}

// ClipPath appends a <clipPath> child configured by fn. Reference it from
// another element with [core.ClipPathRef].
func (c *children) ClipPath(fn func(*ClipPath)) {
	p := newClipPath()
	if fn != nil {
		fn(p)
	}
	c.el.appendChild(p.build())
}

// Mask appends a <mask> child configured by fn.
func (c *children) Mask(fn func(*Mask)) {
	m := newMask()
	if fn != nil {
		fn(m)
	}
	c.el.appendChild(m.build())
}

// Use appends a <use> child configured by fn.
func (c *children) Use(fn func(*Use)) {
	u := newUse()
	if fn != nil {
		fn(u)
	}
	c.el.appendChild(u.build())
}

// Rect appends a <rect> child configured by fn.
func (c *children) Rect(fn func(*Rect)) {
	r := newRect()
	if fn != nil {
		fn(r)
	}
	c.el.appendChild(r.build())
}

// Circle appends a <circle> child configured by fn.
func (c *children) Circle(fn func(*Circle)) {
	ci := newCircle()
	if fn != nil {
		fn(ci)
	}
	c.el.appendChild(ci.build())
}

// Ellipse appends an <ellipse> child configured by fn.
func (c *children) Ellipse(fn func(*Ellipse)) {
	e := newEllipse()
	if fn != nil {
		fn(e)
	}
	c.el.appendChild(e.build())
}

// Line appends a <line> child configured by fn.
func (c *children) Line(fn func(*Line)) {
	l := newLine()
	if fn != nil {
		fn(l)
	}
	c.el.appendChild(l.build())
}

// Polyline appends a <polyline> child configured by fn.
func (c *children) Polyline(fn func(*Polyline)) {
	p := newPolyline()
	if fn != nil {
		fn(p)
	}
	c.el.appendChild(p.build())
}

// Polygon appends a <polygon> child configured by fn.
func (c *children) Polygon(fn func(*Polygon)) {
	p := newPolygon()
	if fn != nil {
		fn(p)
	}
	c.el.appendChild(p.build())
}

// Path appends a <path> child configured by fn. The path's accumulated
// drawing commands are flushed into its d attribute when fn returns.
func (c *children) Path(fn func(*Path)) {
	p := newPath()
	if fn != nil {
		fn(p)
	}
	c.el.appendChild(p.build())
}

// Text appends a <text> child configured by fn.
func (c *children) Text(fn func(*Text)) {
	t := newText()
	if fn != nil {
		fn(t)
	}
	c.el.appendChild(t.build())
}

// LinearGradient appends a <linearGradient> child configured by fn.
// Gradients usually live under a [Defs] block and are referenced by id.
func (c *children) LinearGradient(fn func(*LinearGradient)) {
	g := newLinearGradient()
	if fn != nil {
		fn(g)
	}
	c.el.appendChild(g.build())
}

// RadialGradient appends a <radialGradient> child configured by fn.
func (c *children) RadialGradient(fn func(*RadialGradient)) {
	g := newRadialGradient()
	if fn != nil {
		fn(g)
	}
	c.el.appendChild(g.build())
}
