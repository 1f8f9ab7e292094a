// Package strutil provides small string, path, and identifier helpers
// shared across the treedump packages.
package strutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Concat joins the given parts into a single string. It exists for callers
// assembling messages or labels piecewise; unlike strings.Join it takes no
// separator.
func Concat(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}

// BuildPath joins path elements with the platform separator. Empty elements
// are skipped.
func BuildPath(elems ...string) string {
	return filepath.Join(elems...)
}

// FormatSize renders a byte count as a human-readable decimal size with one
// fractional digit, e.g. "1.2 KB" or "3.4 GB". Sizes below 1000 bytes are
// shown exactly.
func FormatSize(size uint64) string {
	switch {
	case size >= 1_000_000_000_000:
		return fmt.Sprintf("%0.1f TB", float64(size)/1_000_000_000_000)
	case size >= 1_000_000_000:
		return fmt.Sprintf("%0.1f GB", float64(size)/1_000_000_000)
	case size >= 1_000_000:
		return fmt.Sprintf("%0.1f MB", float64(size)/1_000_000)
	case size >= 1000:
		return fmt.Sprintf("%0.1f KB", float64(size)/1000)
	default:
		return fmt.Sprintf("%d Bytes", size)
	}
}

// NewID returns a random identifier in uppercase UUID form, e.g.
// "B117F3D4-3D41-4B6F-9E1C-8A28F1D9C2A0". The identifier is not suitable
// for cryptographic purposes.
func NewID() string {
	return strings.ToUpper(uuid.NewString())
}
