// Package svg builds SVG documents as in-memory element trees and
// serializes them to markup text.
//
// # Overview
//
// Documents are constructed through [New], which hands a root builder to a
// configuration function. Builders expose typed setters for the attributes
// valid on their element kind, plus child-adders that nest further builders:
//
//	doc := svg.New(func(s *svg.SVG) {
//	    s.Width(200)
//	    s.Height(200)
//	    s.Rect(func(r *svg.Rect) {
//	        r.X(10)
//	        r.Y(10)
//	        r.Width(50)
//	        r.Height(50)
//	        r.Fill("red")
//	    })
//	})
//	markup := doc.Render()
//
// The resulting [Element] tree is a plain value: rendering walks it
// recursively and emits well-formed markup with the five reserved XML
// characters escaped in attribute values and text content.
//
// # Builders
//
// One builder type exists per element kind. Setters that only make sense for
// a given tag (cx/cy/r on [Circle], x1/y1/x2/y2 on [Line], the path command
// methods on [Path]) live solely on that builder, so invalid attribute/tag
// combinations are unrepresentable rather than checked at runtime. The
// presentation attributes shared by every element (id, class, fill, stroke,
// transform and friends) are provided by a common embedded core.
//
// Child order is painter's order and is preserved exactly as appended.
// Builders are not safe for concurrent use; each [New] invocation owns an
// independent tree.
//
// # Paths
//
// [Path] accumulates drawing commands (MoveTo, LineTo, CurveTo, ArcTo, ...)
// into a single buffer that is flushed into the d attribute when the builder
// finishes. See the Path type for the raw-d interaction rules.
//
// # Value formatters
//
// Package-level helpers format attribute values: [Color] for hex/rgba
// colors, [Translate], [Rotate], [Scale] and friends for transform lists,
// [Points] for polygon point lists and [ViewBox] for viewBox strings.
// Numbers render in their shortest exact decimal form, so 10.0 emits "10"
// and 0.5 emits "0.5".
package svg
