package svg

import (
	"strings"
	"testing"
)

func TestRectSelfClosing(t *testing.T) {
	doc := New(func(s *SVG) {
		s.Rect(func(r *Rect) {
			r.X(10)
			r.Y(10)
			r.Width(50)
			r.Height(50)
			r.Fill("red")
		})
	})

	got := doc.Render()
	if !strings.Contains(got, `<rect x="10" y="10" width="50" height="50" fill="red"/>`) {
		t.Errorf("unexpected rect serialization: %s", got)
	}
	if strings.Contains(got, "</rect>") {
		t.Errorf("rect must self-close: %s", got)
	}
}

func TestPresentationSetters(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*Rect)
		attr string
		want string
	}{
		{"ID", func(r *Rect) { r.ID("box") }, "id", "box"},
		{"Class", func(r *Rect) { r.Class("shape") }, "class", "shape"},
		{"Style", func(r *Rect) { r.Style("cursor:pointer") }, "style", "cursor:pointer"},
		{"Transform", func(r *Rect) { r.Transform(Rotate(45)) }, "transform", "rotate(45)"},
		{"Opacity", func(r *Rect) { r.Opacity(0.5) }, "opacity", "0.5"},
		{"Fill", func(r *Rect) { r.Fill("none") }, "fill", "none"},
		{"FillColor", func(r *Rect) { r.FillColor(0, 0, 255, 1) }, "fill", "#0000FF"},
		{"FillOpacity", func(r *Rect) { r.FillOpacity(0.25) }, "fill-opacity", "0.25"},
		{"FillRule", func(r *Rect) { r.FillRule("evenodd") }, "fill-rule", "evenodd"},
		{"Stroke", func(r *Rect) { r.Stroke("black") }, "stroke", "black"},
		{"StrokeColor", func(r *Rect) { r.StrokeColor(255, 0, 0, 0.5) }, "stroke", "rgba(255,0,0,0.5)"},
		{"StrokeWidth", func(r *Rect) { r.StrokeWidth(2) }, "stroke-width", "2"},
		{"StrokeOpacity", func(r *Rect) { r.StrokeOpacity(0.75) }, "stroke-opacity", "0.75"},
		{"StrokeLinecap", func(r *Rect) { r.StrokeLinecap("round") }, "stroke-linecap", "round"},
		{"StrokeLinejoin", func(r *Rect) { r.StrokeLinejoin("bevel") }, "stroke-linejoin", "bevel"},
		{"StrokeDasharray", func(r *Rect) { r.StrokeDasharray("5 2") }, "stroke-dasharray", "5 2"},
		{"StrokeDashoffset", func(r *Rect) { r.StrokeDashoffset(3) }, "stroke-dashoffset", "3"},
		{"ClipPathRef", func(r *Rect) { r.ClipPathRef("url(#c)") }, "clip-path", "url(#c)"},
		{"MaskRef", func(r *Rect) { r.MaskRef("url(#m)") }, "mask", "url(#m)"},
		{"Filter", func(r *Rect) { r.Filter("url(#f)") }, "filter", "url(#f)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRect()
			tt.fn(r)
			got, ok := r.build().Attr(tt.attr)
			if !ok || got != tt.want {
				t.Errorf("%s = %q, want %q", tt.attr, got, tt.want)
			}
		})
	}
}

func TestLastWriteWins(t *testing.T) {
	r := newRect()
	r.Fill("red")
	r.Fill("blue")
	if fill, _ := r.build().Attr("fill"); fill != "blue" {
		t.Errorf("fill = %q, want blue", fill)
	}
}

func TestGradientReference(t *testing.T) {
	doc := New(func(s *SVG) {
		s.Defs(func(d *Defs) {
			d.LinearGradient(func(g *LinearGradient) {
				g.ID("g1")
				g.X1(0)
				g.Y1(0)
				g.X2(1)
				g.Y2(0)
				g.Stop(func(st *Stop) {
					st.Offset(0)
					st.StopColor("#FF0000")
				})
				g.Stop(func(st *Stop) {
					st.Offset(1)
					st.StopColor("#0000FF")
					st.StopOpacity(0.8)
				})
			})
		})
		s.Rect(func(r *Rect) {
			r.Width(100)
			r.Height(100)
			r.Fill("url(#g1)")
		})
	})

	got := doc.Render()
	if !strings.Contains(got, `fill="url(#g1)"`) {
		t.Errorf("gradient reference must pass through unchanged: %s", got)
	}
	if !strings.Contains(got, `<linearGradient id="g1"`) {
		t.Errorf("missing gradient definition: %s", got)
	}
	stops := strings.Count(got, "<stop ")
	if stops != 2 {
		t.Errorf("stop count = %d, want 2: %s", stops, got)
	}
}

func TestShapeGeometry(t *testing.T) {
	doc := New(func(s *SVG) {
		s.Circle(func(c *Circle) {
			c.Cx(50)
			c.Cy(50)
			c.R(25)
		})
		s.Ellipse(func(e *Ellipse) {
			e.Cx(10)
			e.Cy(20)
			e.Rx(5)
			e.Ry(2.5)
		})
		s.Line(func(l *Line) {
			l.X1(0)
			l.Y1(0)
			l.X2(10)
			l.Y2(10)
		})
		s.Polygon(func(p *Polygon) {
			p.Points(Point{0, 0}, Point{10, 0}, Point{5, 8})
		})
	})

	got := doc.Render()
	for _, want := range []string{
		`<circle cx="50" cy="50" r="25"/>`,
		`<ellipse cx="10" cy="20" rx="5" ry="2.5"/>`,
		`<line x1="0" y1="0" x2="10" y2="10"/>`,
		`<polygon points="0,0 10,0 5,8"/>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in %s", want, got)
		}
	}
}

func TestUseAndSymbol(t *testing.T) {
	doc := New(func(s *SVG) {
		s.Defs(func(d *Defs) {
			d.Symbol(func(sy *Symbol) {
				sy.ID("dot")
				sy.SymbolViewBox(0, 0, 10, 10)
				sy.Circle(func(c *Circle) {
					c.Cx(5)
					c.Cy(5)
					c.R(4)
				})
			})
		})
		s.Use(func(u *Use) {
			u.Href("#dot")
			u.X(20)
			u.Y(30)
		})
	})

	got := doc.Render()
	if !strings.Contains(got, `<symbol id="dot" viewBox="0 0 10 10">`) {
		t.Errorf("missing symbol: %s", got)
	}
	if !strings.Contains(got, `<use href="#dot" x="20" y="30"/>`) {
		t.Errorf("missing use: %s", got)
	}
}

func TestTextWithTspans(t *testing.T) {
	doc := New(func(s *SVG) {
		s.Text(func(tx *Text) {
			tx.X(10)
			tx.Y(20)
			tx.FontSize(14)
			tx.TextAnchor("middle")
			tx.Content("hello ")
			tx.Tspan(func(ts *Tspan) {
				ts.Dy(15)
				ts.Content("world")
			})
		})
	})

	got := doc.Render()
	if !strings.Contains(got, `<text x="10" y="20" font-size="14" text-anchor="middle">hello <tspan dy="15">world</tspan></text>`) {
		t.Errorf("unexpected text serialization: %s", got)
	}
}

func TestClipPathAndMask(t *testing.T) {
	doc := New(func(s *SVG) {
		s.Defs(func(d *Defs) {
			d.ClipPath(func(cp *ClipPath) {
				cp.ID("clip")
				cp.Rect(func(r *Rect) {
					r.Width(50)
					r.Height(50)
				})
			})
			d.Mask(func(m *Mask) {
				m.ID("fade")
				m.Rect(func(r *Rect) {
					r.Width(50)
					r.Height(50)
					r.Fill("white")
				})
			})
		})
		s.Circle(func(c *Circle) {
			c.R(40)
			c.ClipPathRef("url(#clip)")
			c.MaskRef("url(#fade)")
		})
	})

	got := doc.Render()
	for _, want := range []string{
		`<clipPath id="clip">`,
		`<mask id="fade">`,
		`clip-path="url(#clip)"`,
		`mask="url(#fade)"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in %s", want, got)
		}
	}
}

func TestNilConfigureFuncs(t *testing.T) {
	doc := New(nil)
	if got := doc.Render(); got != `<svg xmlns="http://www.w3.org/2000/svg"></svg>` {
		t.Errorf("New(nil) = %s", got)
	}

	doc = New(func(s *SVG) {
		s.Group(nil)
		s.Rect(nil)
		s.Path(nil)
	})
	got := doc.Render()
	for _, want := range []string{"<g></g>", "<rect/>", "<path/>"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in %s", want, got)
		}
	}
}
