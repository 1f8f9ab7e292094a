package treeio

import (
	"io"
	"os"

	"github.com/treedump/treedump/pkg/dump"
	"github.com/treedump/treedump/pkg/errors"
	"github.com/treedump/treedump/pkg/node"
	"github.com/treedump/treedump/pkg/strutil"
)

// WriteText renders the tree to w as indented text, starting at the given
// indent level. It is a thin wrapper around [dump.Fprint].
func WriteText(root *node.Node, w io.Writer, indent int) error {
	return dump.Fprint(root, w, indent)
}

// ExportText renders the tree to a text file at path.
//
// The write is atomic: output goes to a uniquely named temporary file in
// the same directory, which is renamed over path only after the render
// completes and the file is flushed. A failed render never leaves a partial
// file at path.
func ExportText(root *node.Node, path string, indent int) error {
	tmp := path + ".tmp-" + strutil.NewID()
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", tmp)
	}
	if err := dump.Fprint(root, f, indent); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "render %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "close %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "rename %s", path)
	}
	return nil
}
