// Package node provides the typed-value tree that treedump renders.
//
// # Overview
//
// A tree is built from [Node] values, each tagged with exactly one [Kind]:
// booleans, unsigned integers, reals, strings, binary payloads, dates,
// ordered arrays, and insertion-ordered dictionaries. The tree is the
// in-memory document model shared by the importers in [treeio] and the
// renderer in [dump].
//
// # Basic Usage
//
// Construct nodes with the NewXxx functions and assemble containers with
// [Node.Append] and [Node.Set]:
//
//	root := node.NewDict()
//	root.Set("name", node.NewString("Phone"))
//	root.Set("tags", node.NewArray(node.NewString("a"), node.NewString("b")))
//
// Read values back with the typed accessors ([Node.Boolean], [Node.Uint],
// [Node.Text], ...). Accessors are nil-safe: calling them on a nil node or
// on a node of a different kind returns a zero value rather than panicking.
// This permissiveness is deliberate - consumers such as the renderer treat
// missing or mistyped nodes as empty output, never as failures.
//
// # Dictionaries
//
// Dictionary keys are unique and keep their insertion order. [Node.Set]
// replaces an existing key's value without moving the entry. Entries are
// walked with the external iterator returned by [Node.Iter], which yields
// one key/child pair per [DictIter.Next] call until exhausted.
//
// # Dates
//
// Date nodes store second and microsecond offsets from [Epoch]
// (2001-01-01T00:00:00Z), not from the Unix epoch. [NewDate] converts from
// a time.Time and [Node.Time] converts back.
//
// # Concurrency
//
// Trees are not safe for concurrent mutation. Once construction is
// complete, any number of goroutines may read and render the same tree
// concurrently.
//
// [treeio]: github.com/treedump/treedump/pkg/treeio
// [dump]: github.com/treedump/treedump/pkg/dump
package node
