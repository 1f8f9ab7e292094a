package treeio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/treedump/treedump/pkg/node"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func sampleTree() *node.Node {
	root := node.NewDict()
	root.Set("name", node.NewString("Phone"))
	root.Set("tags", node.NewArray(node.NewString("a"), node.NewString("b")))
	return root
}

const sampleText = "name: Phone\n" +
	"tags[2]: \n" +
	"  0: a\n" +
	"  1: b\n"

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(sampleTree(), &buf, 0); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if buf.String() != sampleText {
		t.Errorf("got %q, want %q", buf.String(), sampleText)
	}
}

func TestExportText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := ExportText(sampleTree(), path, 0); err != nil {
		t.Fatalf("ExportText: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != sampleText {
		t.Errorf("got %q, want %q", data, sampleText)
	}

	// No temporary files may survive a successful export.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestExportTextOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	writeFile(t, path, "old contents")

	if err := ExportText(sampleTree(), path, 0); err != nil {
		t.Fatalf("ExportText: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleText {
		t.Errorf("got %q, want %q", data, sampleText)
	}
}

func TestExportTextBadDirectory(t *testing.T) {
	err := ExportText(sampleTree(), filepath.Join(t.TempDir(), "missing", "out.txt"), 0)
	if err == nil {
		t.Fatal("want error for unwritable path")
	}
}

func TestRoundTripJSONToText(t *testing.T) {
	input := `{"name": "Phone", "tags": ["a", "b"]}`
	root, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteText(root, &buf, 0); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if buf.String() != sampleText {
		t.Errorf("got %q, want %q", buf.String(), sampleText)
	}
}
