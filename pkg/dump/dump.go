package dump

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/treedump/treedump/pkg/node"
)

// indentUnit is the leading whitespace written per nesting level. Depth is
// encoded purely by repetition, so deeper nodes always carry strictly wider
// indentation.
const indentUnit = "  "

// Print renders the tree rooted at root to w with a starting indent of
// zero. See [Fprint] for the full contract.
func Print(root *node.Node, w io.Writer) error {
	return Fprint(root, w, 0)
}

// Fprint renders the tree rooted at root to w, starting at the given indent
// level. A dictionary or array root renders its entries directly at the
// starting level; any other root renders as a bare scalar.
//
// Rendering is best-effort: a nil root or nil writer is a no-op, unknown
// node kinds produce no output, and a date that cannot be expressed as a
// calendar time degrades to a bare newline. The only error returned is a
// write failure from w, in which case the stream may hold partial output.
func Fprint(root *node.Node, w io.Writer, indent int) error {
	if root == nil || w == nil {
		return nil
	}
	switch root.Kind() {
	case node.KindDict:
		return printDict(root, w, indent)
	case node.KindArray:
		return printArray(root, w, indent)
	default:
		return printNode(root, w, indent)
	}
}

// printNode dispatches on the node's kind and writes its formatted value.
// Containers write their header newline and recurse one level deeper; the
// incremented indent is passed by value, so it is restored on return
// without any pop step.
func printNode(n *node.Node, w io.Writer, indent int) error {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case node.KindBoolean:
		v := "false"
		if n.Boolean() {
			v = "true"
		}
		return writeLine(w, v)

	case node.KindUint:
		return writeLine(w, strconv.FormatUint(n.Uint(), 10))

	case node.KindReal:
		return writeLine(w, strconv.FormatFloat(n.Real(), 'f', 6, 64))

	case node.KindString:
		return writeLine(w, n.Text())

	case node.KindKey:
		_, err := io.WriteString(w, n.Text()+": ")
		return err

	case node.KindData:
		if s := base64Encode(n.Data()); s != "" {
			return writeLine(w, s)
		}
		return writeLine(w, "")

	case node.KindDate:
		return writeLine(w, formatDate(n))

	case node.KindArray:
		if err := writeLine(w, ""); err != nil {
			return err
		}
		return printArray(n, w, indent+1)

	case node.KindDict:
		if err := writeLine(w, ""); err != nil {
			return err
		}
		return printDict(n, w, indent+1)

	default:
		return nil
	}
}

// printArray renders each child on its own line, labeled with its zero-based
// position.
func printArray(n *node.Node, w io.Writer, indent int) error {
	for i := 0; i < n.Len(); i++ {
		if err := writeIndent(w, indent); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%d: ", i); err != nil {
			return err
		}
		if err := printNode(n.Item(i), w, indent); err != nil {
			return err
		}
	}
	return nil
}

// printDict renders each entry in the dictionary's insertion order. Array
// values are annotated with their child count between the key and the
// separator, so "tags" holding two items prints as "tags[2]: ".
func printDict(n *node.Node, w io.Writer, indent int) error {
	for it := n.Iter(); ; {
		key, child, ok := it.Next()
		if !ok {
			return nil
		}
		if err := writeIndent(w, indent); err != nil {
			return err
		}
		if _, err := io.WriteString(w, key); err != nil {
			return err
		}
		sep := ": "
		if child.Kind() == node.KindArray {
			sep = fmt.Sprintf("[%d]: ", child.Len())
		}
		if _, err := io.WriteString(w, sep); err != nil {
			return err
		}
		if err := printNode(child, w, indent); err != nil {
			return err
		}
	}
}

// formatDate renders a date node as local calendar time. Dates outside the
// representable calendar range degrade to an empty value, which the caller
// turns into a bare newline.
func formatDate(n *node.Node) string {
	t := n.Time().Local()
	if t.Year() < 0 || t.Year() > 9999 {
		return ""
	}
	return t.Format("2006-01-02T15:04:05Z")
}

func writeIndent(w io.Writer, indent int) error {
	if indent <= 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Repeat(indentUnit, indent))
	return err
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
