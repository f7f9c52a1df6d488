package svg

import "strings"

// Path builds a <path> element. Drawing commands accumulate in a private
// buffer; when the builder finishes, a non-empty buffer is trimmed and
// written to the d attribute, overwriting anything set through [Path.D]
// earlier. If no commands were accumulated a raw [Path.D] value is left
// untouched, so precedence between the two follows call order.
type Path struct {
	core
	buf strings.Builder
}

func newPath() *Path { return &Path{core: core{newElement("path")}} }

// D sets the d attribute to a raw path-data string.
func (p *Path) D(v string) { p.el.SetAttr("d", v) }

// cmd appends one command letter with space-separated arguments and a
// trailing separator.
func (p *Path) cmd(letter byte, args ...float64) *Path {
	p.buf.WriteByte(letter)
	for _, a := range args {
		p.buf.WriteByte(' ')
		p.buf.WriteString(fmtNum(a))
	}
	p.buf.WriteByte(' ')
	return p
}

// MoveTo appends an absolute moveto command (M x y).
func (p *Path) MoveTo(x, y float64) *Path { return p.cmd('M', x, y) }

// MoveToRel appends a relative moveto command (m dx dy).
func (p *Path) MoveToRel(dx, dy float64) *Path { return p.cmd('m', dx, dy) }

// LineTo appends an absolute lineto command (L x y).
func (p *Path) LineTo(x, y float64) *Path { return p.cmd('L', x, y) }

// LineToRel appends a relative lineto command (l dx dy).
func (p *Path) LineToRel(dx, dy float64) *Path { return p.cmd('l', dx, dy) }

// HLineTo appends an absolute horizontal lineto command (H x).
func (p *Path) HLineTo(x float64) *Path { return p.cmd('H', x) }

// HLineToRel appends a relative horizontal lineto command (h dx).
func (p *Path) HLineToRel(dx float64) *Path { return p.cmd('h', dx) }

// VLineTo appends an absolute vertical lineto command (V y).
func (p *Path) VLineTo(y float64) *Path { return p.cmd('V', y) }

// VLineToRel appends a relative vertical lineto command (v dy).
func (p *Path) VLineToRel(dy float64) *Path { return p.cmd('v', dy) }

// CurveTo appends an absolute cubic Bezier command (C x1 y1 x2 y2 x y).
func (p *Path) CurveTo(x1, y1, x2, y2, x, y float64) *Path {
	return p.cmd('C', x1, y1, x2, y2, x, y)
}

// CurveToRel appends a relative cubic Bezier command (c ...).
func (p *Path) CurveToRel(x1, y1, x2, y2, x, y float64) *Path {
	return p.cmd('c', x1, y1, x2, y2, x, y)
}

// SmoothCurveTo appends an absolute smooth cubic command (S x2 y2 x y);
// the first control point is reflected from the previous curve.
func (p *Path) SmoothCurveTo(x2, y2, x, y float64) *Path {
	return p.cmd('S', x2, y2, x, y)
}

// SmoothCurveToRel appends a relative smooth cubic command (s ...).
func (p *Path) SmoothCurveToRel(x2, y2, x, y float64) *Path {
	return p.cmd('s', x2, y2, x, y)
}

// QuadTo appends an absolute quadratic Bezier command (Q x1 y1 x y).
func (p *Path) QuadTo(x1, y1, x, y float64) *Path {
	return p.cmd('Q', x1, y1, x, y)
}

// QuadToRel appends a relative quadratic Bezier command (q ...).
func (p *Path) QuadToRel(x1, y1, x, y float64) *Path {
	return p.cmd('q', x1, y1, x, y)
}

// SmoothQuadTo appends an absolute smooth quadratic command (T x y).
func (p *Path) SmoothQuadTo(x, y float64) *Path { return p.cmd('T', x, y) }

// SmoothQuadToRel appends a relative smooth quadratic command (t dx dy).
func (p *Path) SmoothQuadToRel(dx, dy float64) *Path { return p.cmd('t', dx, dy) }

// ArcTo appends an absolute elliptical arc command
// (A rx ry rotation large-arc sweep x y). Flags render as 1 or 0.
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) *Path {
	return p.cmd('A', rx, ry, rotation, flag(largeArc), flag(sweep), x, y)
}

// ArcToRel appends a relative elliptical arc command (a ...).
func (p *Path) ArcToRel(rx, ry, rotation float64, largeArc, sweep bool, dx, dy float64) *Path {
	return p.cmd('a', rx, ry, rotation, flag(largeArc), flag(sweep), dx, dy)
}

// Close appends a closepath command (Z).
func (p *Path) Close() *Path { return p.cmd('Z') }

// build flushes the command buffer into the d attribute, then behaves like
// the default build. The flush happens exactly once, never incrementally.
func (p *Path) build() *Element {
	if p.buf.Len() > 0 {
		p.el.SetAttr("d", strings.TrimRight(p.buf.String(), " "))
	}
	return p.el
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
