package scene

import "github.com/svgforge/svgforge/pkg/svg"

// Compose builds the scene into a document tree. The manifest is validated
// first; composition itself cannot fail.
func (s *Scene) Compose() (*svg.Element, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	doc := svg.New(func(root *svg.SVG) {
		root.Width(s.Width)
		root.Height(s.Height)
		root.ViewBox(0, 0, s.Width, s.Height)

		if len(s.Gradients) > 0 {
			root.Defs(func(d *svg.Defs) {
				for _, g := range s.Gradients {
					composeGradient(d, g)
				}
			})
		}

		if s.Background != "" {
			root.Rect(func(r *svg.Rect) {
				r.Width(s.Width)
				r.Height(s.Height)
				r.Fill(s.Background)
			})
		}

		for _, sh := range s.Shapes {
			composeShape(root, sh)
		}
	})
	return doc, nil
}

// Render composes the scene and serializes it in one step.
func (s *Scene) Render() (string, error) {
	doc, err := s.Compose()
	if err != nil {
		return "", err
	}
	return doc.Render(), nil
}

func composeGradient(d *svg.Defs, g Gradient) {
	switch g.Kind {
	case "linear":
		d.LinearGradient(func(lg *svg.LinearGradient) {
			lg.ID(g.ID)
			lg.X1(g.From[0])
			lg.Y1(g.From[1])
			lg.X2(g.To[0])
			lg.Y2(g.To[1])
			for _, st := range g.Stops {
				stop := st
				lg.Stop(func(s *svg.Stop) {
					composeStop(s, stop)
				})
			}
		})
	case "radial":
		d.RadialGradient(func(rg *svg.RadialGradient) {
			rg.ID(g.ID)
			if g.Cx != 0 {
				rg.Cx(g.Cx)
			}
			if g.Cy != 0 {
				rg.Cy(g.Cy)
			}
			if g.R != 0 {
				rg.R(g.R)
			}
			for _, st := range g.Stops {
				stop := st
				rg.Stop(func(s *svg.Stop) {
					composeStop(s, stop)
				})
			}
		})
	}
}

func composeStop(s *svg.Stop, st Stop) {
	s.Offset(st.Offset)
	if st.Color != "" {
		s.StopColor(st.Color)
	}
	if st.Opacity != nil {
		s.StopOpacity(*st.Opacity)
	}
}

// presenter is the subset of builder methods shared by every shape kind.
type presenter interface {
	ID(string)
	Fill(string)
	Stroke(string)
	StrokeWidth(float64)
	Opacity(float64)
	Transform(string)
}

func applyPresentation(p presenter, sh Shape) {
	if sh.ID != "" {
		p.ID(sh.ID)
	}
	if sh.Fill != "" {
		p.Fill(sh.Fill)
	}
	if sh.Stroke != "" {
		p.Stroke(sh.Stroke)
	}
	if sh.StrokeWidth != 0 {
		p.StrokeWidth(sh.StrokeWidth)
	}
	if sh.Opacity != nil {
		p.Opacity(*sh.Opacity)
	}
	if sh.Transform != "" {
		p.Transform(sh.Transform)
	}
}

func toPoints(raw [][]float64) []svg.Point {
	pts := make([]svg.Point, len(raw))
	for i, p := range raw {
		pts[i] = svg.Point{X: p[0], Y: p[1]}
	}
	return pts
}

func composeShape(root *svg.SVG, sh Shape) {
	switch sh.Kind {
	case "rect":
		root.Rect(func(r *svg.Rect) {
			r.X(sh.X)
			r.Y(sh.Y)
			r.Width(sh.Width)
			r.Height(sh.Height)
			if sh.Rx != 0 {
				r.Rx(sh.Rx)
			}
			if sh.Ry != 0 {
				r.Ry(sh.Ry)
			}
			applyPresentation(r, sh)
		})
	case "circle":
		root.Circle(func(c *svg.Circle) {
			c.Cx(sh.Cx)
			c.Cy(sh.Cy)
			c.R(sh.R)
			applyPresentation(c, sh)
		})
	case "ellipse":
		root.Ellipse(func(e *svg.Ellipse) {
			e.Cx(sh.Cx)
			e.Cy(sh.Cy)
			e.Rx(sh.Rx)
			e.Ry(sh.Ry)
			applyPresentation(e, sh)
		})
	case "line":
		root.Line(func(l *svg.Line) {
			l.X1(sh.X1)
			l.Y1(sh.Y1)
			l.X2(sh.X2)
			l.Y2(sh.Y2)
			applyPresentation(l, sh)
		})
	case "polyline":
		root.Polyline(func(p *svg.Polyline) {
			p.Points(toPoints(sh.Points)...)
			applyPresentation(p, sh)
		})
	case "polygon":
		root.Polygon(func(p *svg.Polygon) {
			p.Points(toPoints(sh.Points)...)
			applyPresentation(p, sh)
		})
	case "path":
		root.Path(func(p *svg.Path) {
			p.D(sh.D)
			applyPresentation(p, sh)
		})
	case "text":
		root.Text(func(t *svg.Text) {
			t.X(sh.X)
			t.Y(sh.Y)
			if sh.FontFamily != "" {
				t.FontFamily(sh.FontFamily)
			}
			if sh.FontSize != 0 {
				t.FontSize(sh.FontSize)
			}
			if sh.Anchor != "" {
				t.TextAnchor(sh.Anchor)
			}
			t.Content(sh.Text)
			applyPresentation(t, sh)
		})
	}
}
