// Package render provides visualization output for typed-value trees.
//
// # Overview
//
// This package contains format conversion shared by the tree renderers:
// the [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the structure of a tree as a directed
// diagram using Graphviz, with one box per node and edges labeled by
// dictionary key or array index.
//
// # Requirements
//
// PDF and PNG conversion require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [nodelink]: github.com/treedump/treedump/pkg/render/nodelink
package render
