// Package pkg provides the core libraries for svgforge document building.
//
// # Overview
//
// svgforge constructs SVG documents as typed in-memory element trees and
// serializes them to markup text. The pkg directory is organized into five
// areas:
//
//  1. [svg] - The document builder: element model, typed builders, path
//     commands and value formatters
//  2. [scene] - Declarative TOML scene manifests compiled to documents
//  3. [export] - Format conversion (PNG/PDF) and DOT graph import
//  4. [cache] - Render caches (memory, file, Redis) keyed by content hash
//  5. [errors] - Structured error codes shared by CLI and server
//
// # Architecture
//
// The typical data flow through svgforge:
//
//	TOML scene / DOT graph / Go code
//	         ↓
//	    [svg] package (build the element tree)
//	         ↓
//	    Element.Render() (markup text)
//	         ↓
//	    [export] package (optional PNG/PDF conversion)
//
// # Quick Start
//
//	doc := svg.New(func(s *svg.SVG) {
//	    s.ViewBox(0, 0, 100, 100)
//	    s.Circle(func(c *svg.Circle) {
//	        c.Cx(50)
//	        c.Cy(50)
//	        c.R(40)
//	        c.Fill("steelblue")
//	    })
//	})
//	fmt.Println(doc.Render())
//
// [svg]: github.com/svgforge/svgforge/pkg/svg
// [scene]: github.com/svgforge/svgforge/pkg/scene
// [export]: github.com/svgforge/svgforge/pkg/export
// [cache]: github.com/svgforge/svgforge/pkg/cache
// [errors]: github.com/svgforge/svgforge/pkg/errors
package pkg
