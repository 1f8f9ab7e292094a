package treeio

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/treedump/treedump/pkg/errors"
	"github.com/treedump/treedump/pkg/node"
)

// Import reads a document file and returns the decoded node tree, choosing
// the decoder from the file extension: ".json" uses [ReadJSON] and ".toml"
// uses [ReadTOML]. Other extensions return an error with code
// [errors.ErrCodeUnsupported].
func Import(path string) (*node.Node, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ImportJSON(path)
	case ".toml":
		return ImportTOML(path)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported input format %q", filepath.Ext(path))
	}
}

// ImportJSON reads a JSON file at path and returns the decoded node tree.
// It opens the file, decodes it using [ReadJSON], and closes the file.
func ImportJSON(path string) (*node.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadJSON decodes a JSON document from r into a node tree.
//
// Object member order is preserved: the decoder walks the token stream
// rather than unmarshalling into Go maps, so a re-rendered document lists
// keys exactly as the input did. Value mapping:
//
//   - objects become dictionaries, arrays become arrays
//   - true/false become boolean nodes
//   - non-negative integers become unsigned integer nodes; all other
//     numbers become real nodes
//   - strings become string nodes
//   - null becomes a nil child, which the renderer skips
//
// ReadJSON returns an error with code [errors.ErrCodeInvalidFormat] if the
// document is malformed. It does not close r.
func ReadJSON(r io.Reader) (*node.Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	n, err := decodeJSONValue(dec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON")
	}
	return n, nil
}

func decodeJSONValue(dec *json.Decoder) (*node.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", t)
		}
	case bool:
		return node.NewBoolean(t), nil
	case string:
		return node.NewString(t), nil
	case json.Number:
		if u, err := strconv.ParseUint(t.String(), 10, 64); err == nil {
			return node.NewUint(u), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %s: %w", t, err)
		}
		return node.NewReal(f), nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (*node.Node, error) {
	d := node.NewDict()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", tok)
		}
		child, err := decodeJSONValue(dec)
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", key, err)
		}
		d.Set(key, child)
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return d, nil
}

func decodeJSONArray(dec *json.Decoder) (*node.Node, error) {
	a := node.NewArray()
	for dec.More() {
		child, err := decodeJSONValue(dec)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", a.Len(), err)
		}
		a.Append(child)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}
	return a, nil
}

// ImportTOML reads a TOML file at path and returns the decoded node tree.
// It opens the file, decodes it using [ReadTOML], and closes the file.
func ImportTOML(path string) (*node.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadTOML(f)
}

// ReadTOML decodes a TOML document from r into a node tree. The root is
// always a dictionary.
//
// Key order follows the order of definition in the document, recovered from
// the decoder's metadata. TOML datetimes become date nodes; non-negative
// integers become unsigned integer nodes and all other numbers become real
// nodes. Elements of a table array share one key ordering.
//
// ReadTOML returns an error with code [errors.ErrCodeInvalidFormat] if the
// document is malformed. It does not close r.
func ReadTOML(r io.Reader) (*node.Node, error) {
	var raw map[string]any
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML")
	}
	b := tomlBuilder{keys: md.Keys()}
	return b.dict(nil, raw), nil
}

type tomlBuilder struct {
	keys []toml.Key
}

// keyOrder returns the defined order of the direct child keys under prefix.
func (b *tomlBuilder) keyOrder(prefix []string) []string {
	var order []string
	seen := make(map[string]bool)
	for _, k := range b.keys {
		if len(k) != len(prefix)+1 || !slices.Equal(k[:len(prefix)], prefix) {
			continue
		}
		last := k[len(k)-1]
		if !seen[last] {
			seen[last] = true
			order = append(order, last)
		}
	}
	return order
}

func (b *tomlBuilder) dict(prefix []string, m map[string]any) *node.Node {
	d := node.NewDict()
	used := make(map[string]bool)
	for _, key := range b.keyOrder(prefix) {
		v, ok := m[key]
		if !ok {
			continue
		}
		used[key] = true
		d.Set(key, b.value(childPath(prefix, key), v))
	}
	// Keys the metadata did not cover (e.g. inside inline arrays) are
	// appended in sorted order for determinism.
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if !used[key] {
			d.Set(key, b.value(childPath(prefix, key), m[key]))
		}
	}
	return d
}

func (b *tomlBuilder) value(path []string, v any) *node.Node {
	switch t := v.(type) {
	case map[string]any:
		return b.dict(path, t)
	case []map[string]any:
		a := node.NewArray()
		for _, el := range t {
			a.Append(b.dict(path, el))
		}
		return a
	case []any:
		a := node.NewArray()
		for _, el := range t {
			a.Append(b.value(path, el))
		}
		return a
	case bool:
		return node.NewBoolean(t)
	case int64:
		if t >= 0 {
			return node.NewUint(uint64(t))
		}
		return node.NewReal(float64(t))
	case float64:
		return node.NewReal(t)
	case string:
		return node.NewString(t)
	case time.Time:
		return node.NewDate(t)
	default:
		return nil
	}
}

func childPath(prefix []string, key string) []string {
	path := make([]string, 0, len(prefix)+1)
	path = append(path, prefix...)
	return append(path, key)
}
