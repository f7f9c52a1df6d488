package svg

// Rect builds a <rect> element.
type Rect struct {
	core
}

func newRect() *Rect { return &Rect{core{newElement("rect")}} }

// X sets the x attribute.
func (r *Rect) X(v float64) { r.el.SetAttr("x", fmtNum(v)) }

// Y sets the y attribute.
func (r *Rect) Y(v float64) { r.el.SetAttr("y", fmtNum(v)) }

// Width sets the width attribute.
func (r *Rect) Width(v float64) { r.el.SetAttr("width", fmtNum(v)) }

// Height sets the height attribute.
func (r *Rect) Height(v float64) { r.el.SetAttr("height", fmtNum(v)) }

// Rx sets the horizontal corner radius.
func (r *Rect) Rx(v float64) { r.el.SetAttr("rx", fmtNum(v)) }

// Ry sets the vertical corner radius.
func (r *Rect) Ry(v float64) { r.el.SetAttr("ry", fmtNum(v)) }

// Circle builds a <circle> element.
type Circle struct {
	core
}

func newCircle() *Circle { return &Circle{core{newElement("circle")}} }

// Cx sets the center x coordinate.
func (c *Circle) Cx(v float64) { c.el.SetAttr("cx", fmtNum(v)) }

// Cy sets the center y coordinate.
func (c *Circle) Cy(v float64) { c.el.SetAttr("cy", fmtNum(v)) }

// R sets the radius.
func (c *Circle) R(v float64) { c.el.SetAttr("r", fmtNum(v)) }

// Ellipse builds an <ellipse> element.
type Ellipse struct {
	core
}

func newEllipse() *Ellipse { return &Ellipse{core{newElement("ellipse")}} }

// Cx sets the center x coordinate.
func (e *Ellipse) Cx(v float64) { e.el.SetAttr("cx", fmtNum(v)) }

// Cy sets the center y coordinate.
func (e *Ellipse) Cy(v float64) { e.el.SetAttr("cy", fmtNum(v)) }

// Rx sets the horizontal radius.
func (e *Ellipse) Rx(v float64) { e.el.SetAttr("rx", fmtNum(v)) }

// Ry sets the vertical radius.
func (e *Ellipse) Ry(v float64) { e.el.SetAttr("ry", fmtNum(v)) }

// Line builds a <line> element.
type Line struct {
	core
}

func newLine() *Line { return &Line{core{newElement("line")}} }

// X1 sets the start x coordinate.
func (l *Line) X1(v float64) { l.el.SetAttr("x1", fmtNum(v)) }

// Y1 sets the start y coordinate.
func (l *Line) Y1(v float64) { l.el.SetAttr("y1", fmtNum(v)) }

// X2 sets the end x coordinate.
func (l *Line) X2(v float64) { l.el.SetAttr("x2", fmtNum(v)) }

// Y2 sets the end y coordinate.
func (l *Line) Y2(v float64) { l.el.SetAttr("y2", fmtNum(v)) }

// Polyline builds a <polyline> element.
type Polyline struct {
	core
}

func newPolyline() *Polyline { return &Polyline{core{newElement("polyline")}} }

// Points sets the points attribute from coordinate pairs.
func (p *Polyline) Points(pts ...Point) { p.el.SetAttr("points", Points(pts...)) }

// PointsString sets the points attribute from a preformatted string.
func (p *Polyline) PointsString(v string) { p.el.SetAttr("points", v) }

// Polygon builds a <polygon> element.
type Polygon struct {
	core
}

func newPolygon() *Polygon { return &Polygon{core{newElement("polygon")}} }

// Points sets the points attribute from coordinate pairs.
func (p *Polygon) Points(pts ...Point) { p.el.SetAttr("points", Points(pts...)) }

// PointsString sets the points attribute from a preformatted string.
func (p *Polygon) PointsString(v string) { p.el.SetAttr("points", v) }
