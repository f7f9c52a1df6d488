package svg

// LinearGradient builds a <linearGradient> element. Define it under a
// [Defs] block with an id and reference it as fill="url(#id)".
type LinearGradient struct {
	core
}

func newLinearGradient() *LinearGradient {
	return &LinearGradient{core{newElement("linearGradient")}}
}

// X1 sets the gradient vector start x coordinate.
func (g *LinearGradient) X1(v float64) { g.el.SetAttr("x1", fmtNum(v)) }

// Y1 sets the gradient vector start y coordinate.
func (g *LinearGradient) Y1(v float64) { g.el.SetAttr("y1", fmtNum(v)) }

// X2 sets the gradient vector end x coordinate.
func (g *LinearGradient) X2(v float64) { g.el.SetAttr("x2", fmtNum(v)) }

// Y2 sets the gradient vector end y coordinate.
func (g *LinearGradient) Y2(v float64) { g.el.SetAttr("y2", fmtNum(v)) }

// GradientUnits sets the gradientUnits attribute
// ("userSpaceOnUse" or "objectBoundingBox").
func (g *LinearGradient) GradientUnits(v string) { g.el.SetAttr("gradientUnits", v) }

// GradientTransform sets the gradientTransform attribute.
func (g *LinearGradient) GradientTransform(v string) { g.el.SetAttr("gradientTransform", v) }

// SpreadMethod sets the spreadMethod attribute ("pad", "reflect", "repeat").
func (g *LinearGradient) SpreadMethod(v string) { g.el.SetAttr("spreadMethod", v) }

// Stop appends a <stop> child configured by fn.
func (g *LinearGradient) Stop(fn func(*Stop)) {
	s := newStop()
	if fn != nil {
		fn(s)
	}
	g.el.appendChild(s.build())
}

// RadialGradient builds a <radialGradient> element.
type RadialGradient struct {
	core
}

func newRadialGradient() *RadialGradient {
	return &RadialGradient{core{newElement("radialGradient")}}
}

// Cx sets the gradient center x coordinate.
func (g *RadialGradient) Cx(v float64) { g.el.SetAttr("cx", fmtNum(v)) }

// Cy sets the gradient center y coordinate.
func (g *RadialGradient) Cy(v float64) { g.el.SetAttr("cy", fmtNum(v)) }

// R sets the gradient radius.
func (g *RadialGradient) R(v float64) { g.el.SetAttr("r", fmtNum(v)) }

// Fx sets the focal point x coordinate.
func (g *RadialGradient) Fx(v float64) { g.el.SetAttr("fx", fmtNum(v)) }

// Fy sets the focal point y coordinate.
func (g *RadialGradient) Fy(v float64) { g.el.SetAttr("fy", fmtNum(v)) }

// GradientUnits sets the gradientUnits attribute.
func (g *RadialGradient) GradientUnits(v string) { g.el.SetAttr("gradientUnits", v) }

// GradientTransform sets the gradientTransform attribute.
func (g *RadialGradient) GradientTransform(v string) { g.el.SetAttr("gradientTransform", v) }

// Stop appends a <stop> child configured by fn.
func (g *RadialGradient) Stop(fn func(*Stop)) {
	s := newStop()
	if fn != nil {
		fn(s)
	}
	g.el.appendChild(s.build())
}

// Stop builds a gradient <stop> element.
type Stop struct {
	core
}

func newStop() *Stop { return &Stop{core{newElement("stop")}} }

// Offset sets the offset attribute as a fraction in [0,1].
func (s *Stop) Offset(v float64) { s.el.SetAttr("offset", fmtNum(v)) }

// StopColor sets the stop-color attribute to a raw paint value.
func (s *Stop) StopColor(v string) { s.el.SetAttr("stop-color", v) }

// StopColorRGB sets the stop-color attribute from channels via [Color].
func (s *Stop) StopColorRGB(r, g, b, a float64) { s.el.SetAttr("stop-color", Color(r, g, b, a)) }

// StopOpacity sets the stop-opacity attribute.
func (s *Stop) StopOpacity(v float64) { s.el.SetAttr("stop-opacity", fmtNum(v)) }
