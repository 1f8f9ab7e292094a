// Package nodelink renders typed-value trees as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// every tree node appears as a box and parent-child relations appear as
// labeled arrows. It complements the indented text renderer in [dump] for
// cases where the shape of a document matters more than its values.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the kind name
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded
// box nodes. Container nodes (arrays and dictionaries) are filled grey;
// edges carry the dictionary key or the array index of the child.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [dump]: github.com/treedump/treedump/pkg/dump
package nodelink
