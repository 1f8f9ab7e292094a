// Package dump renders typed-value trees as human-readable indented text.
//
// # Overview
//
// The renderer walks a [node.Node] tree and writes one line per value to an
// io.Writer. Nesting depth is shown by leading whitespace, array entries are
// labeled with their zero-based position, and dictionary entries are labeled
// with their key. Array-valued dictionary entries additionally show the
// child count inline:
//
//	name: Phone
//	tags[2]:
//	  0: a
//	  1: b
//
// Binary payloads are shown base64-encoded on a single line; dates are
// shown as local calendar time in YYYY-MM-DDTHH:MM:SSZ form.
//
// # Usage
//
// Render a tree to any writer with [Print], or start at a non-zero indent
// level with [Fprint]:
//
//	if err := dump.Print(root, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Output is a best-effort visual aid, not an interchange format. Nil roots,
// nil writers, empty binary payloads, and unknown node kinds render as
// empty or minimal output without error. A date that cannot be expressed as
// a calendar time degrades to a bare newline rather than aborting its
// siblings. The only returned errors are write failures from the sink, and
// a failed render may leave partial output behind - there is no buffering
// or rollback.
//
// # Concurrency
//
// Each Print call owns its own indent state, so concurrent calls on
// independent writers are safe, including over a shared read-only tree.
package dump
