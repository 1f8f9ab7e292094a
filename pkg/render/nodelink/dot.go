package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/treedump/treedump/pkg/node"
	"github.com/treedump/treedump/pkg/render"
)

// maxPreview is the longest scalar preview shown inside a box.
const maxPreview = 32

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed prefixes every label with the node's kind name.
	// When false, container boxes show only their child count.
	Detailed bool
}

// ToDOT converts a typed-value tree to Graphviz DOT format for node-link
// visualization. Each node becomes a box and each parent-child relation an
// edge labeled with the dictionary key or array index. The resulting DOT
// string can be rendered using [RenderSVG], [render.ToPDF], or [render.ToPNG].
//
// Container nodes are drawn with grey fill to distinguish structure from
// values. A nil root produces an empty digraph.
func ToDOT(root *node.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	w := dotWalker{buf: &buf, opts: opts}
	if root != nil {
		w.walk(root)
	}

	buf.WriteString("}\n")
	return buf.String()
}

type dotWalker struct {
	buf  *bytes.Buffer
	opts Options
	next int
}

// walk emits the subtree rooted at n and returns its DOT node id.
func (w *dotWalker) walk(n *node.Node) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++

	fmt.Fprintf(w.buf, "  %s [%s];\n", id, strings.Join(fmtAttrs(n, w.opts.Detailed), ", "))

	switch n.Kind() {
	case node.KindArray:
		for i := 0; i < n.Len(); i++ {
			child := n.Item(i)
			if child == nil {
				continue
			}
			childID := w.walk(child)
			fmt.Fprintf(w.buf, "  %s -> %s [label=%q];\n", id, childID, strconv.Itoa(i))
		}
	case node.KindDict:
		for it := n.Iter(); ; {
			key, child, ok := it.Next()
			if !ok {
				break
			}
			if child == nil {
				continue
			}
			childID := w.walk(child)
			fmt.Fprintf(w.buf, "  %s -> %s [label=%q];\n", id, childID, key)
		}
	}
	return id
}

func fmtAttrs(n *node.Node, detailed bool) []string {
	label := fmtLabel(n, detailed)
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch n.Kind() {
	case node.KindArray, node.KindDict:
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

func fmtLabel(n *node.Node, detailed bool) string {
	var body string
	switch n.Kind() {
	case node.KindBoolean:
		body = strconv.FormatBool(n.Boolean())
	case node.KindUint:
		body = strconv.FormatUint(n.Uint(), 10)
	case node.KindReal:
		body = strconv.FormatFloat(n.Real(), 'f', -1, 64)
	case node.KindString, node.KindKey:
		body = preview(n.Text())
	case node.KindData:
		body = fmt.Sprintf("%d bytes", len(n.Data()))
	case node.KindDate:
		body = n.Time().Format("2006-01-02T15:04:05Z")
	case node.KindArray, node.KindDict:
		body = fmt.Sprintf("%d items", n.Len())
	default:
		body = "?"
	}
	if detailed {
		return n.Kind().String() + "\n" + body
	}
	return body
}

func preview(s string) string {
	if len(s) > maxPreview {
		return s[:maxPreview-1] + "…"
	}
	return s
}

// RenderSVG renders a DOT graph to SVG using Graphviz. Returns the SVG
// bytes ready for display or further conversion with [render.ToPDF] or
// [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
