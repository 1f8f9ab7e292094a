// Package treeio provides document import and text export for typed-value
// trees.
//
// # Overview
//
// Importers build [node.Node] trees from structured document formats while
// preserving the member order of the source, so the rendered text lists
// keys the way the document wrote them:
//
//   - [ImportJSON] / [ReadJSON]: JSON documents, decoded token by token
//   - [ImportTOML] / [ReadTOML]: TOML documents, with definition order
//     recovered from decoder metadata and datetimes mapped to date nodes
//   - [Import]: extension-based dispatch over the above
//
// Export goes one way only - the indented text produced by [ExportText] is
// a human-readable dump, not a format that can be read back.
//
// # Value Mapping
//
// Both importers map document values onto the node kinds the renderer
// understands. Notably, the tree has no signed-integer kind: non-negative
// integers become unsigned integer nodes and every other number becomes a
// real node.
//
// # Errors
//
// Failures carry codes from [errors]: ErrCodeFileNotFound for unreadable
// paths, ErrCodeInvalidFormat for malformed documents, and
// ErrCodeUnsupported for unknown extensions.
//
// [errors]: github.com/treedump/treedump/pkg/errors
package treeio
