package svg_test

import (
	"fmt"

	"github.com/svgforge/svgforge/pkg/svg"
)

func ExampleNew() {
	doc := svg.New(func(s *svg.SVG) {
		s.Width(100)
		s.Height(100)
		s.Rect(func(r *svg.Rect) {
			r.X(10)
			r.Y(10)
			r.Width(50)
			r.Height(50)
			r.Fill("red")
		})
	})
	fmt.Println(doc.Render())
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"><rect x="10" y="10" width="50" height="50" fill="red"/></svg>
}

func ExamplePath() {
	doc := svg.New(func(s *svg.SVG) {
		s.ViewBox(0, 0, 100, 100)
		s.Path(func(p *svg.Path) {
			p.MoveTo(10, 10).LineTo(90, 10).LineTo(50, 90).Close()
			p.Fill("green")
		})
	})
	fmt.Println(doc.Render())
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><path fill="green" d="M 10 10 L 90 10 L 50 90 Z"/></svg>
}

func ExampleColor() {
	fmt.Println(svg.Color(0, 0, 255, 1.0))
	fmt.Println(svg.Color(0, 0, 255, 0.5))
	// Output:
	// #0000FF
	// rgba(0,0,255,0.5)
}

func ExampleTransforms() {
	doc := svg.New(func(s *svg.SVG) {
		s.Group(func(g *svg.Group) {
			g.Transform(svg.Transforms(svg.Translate(50, 50), svg.Rotate(45)))
		})
	})
	fmt.Println(doc.Render())
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg"><g transform="translate(50,50) rotate(45)"></g></svg>
}
