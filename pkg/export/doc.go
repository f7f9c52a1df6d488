// Package export converts rendered SVG markup into distributable formats.
//
// SVG is the native output of this module; everything else is derived from
// it. PNG and PDF conversion shells out to rsvg-convert (librsvg), which
// must be installed separately. FromDOT embeds Graphviz to turn DOT graph
// descriptions into SVG, so scenes and graphs share one export path.
package export
