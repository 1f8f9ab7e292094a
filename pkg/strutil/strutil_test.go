package strutil

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"none", nil, ""},
		{"single", []string{"a"}, "a"},
		{"several", []string{"a", "b", "c"}, "abc"},
		{"with empties", []string{"", "x", ""}, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Concat(tt.parts...); got != tt.want {
				t.Errorf("Concat(%v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestBuildPath(t *testing.T) {
	want := filepath.Join("a", "b", "c")
	if got := BuildPath("a", "b", "c"); got != want {
		t.Errorf("BuildPath = %q, want %q", got, want)
	}
	if got := BuildPath("a", "", "c"); got != filepath.Join("a", "c") {
		t.Errorf("BuildPath with empty element = %q", got)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size uint64
		want string
	}{
		{0, "0 Bytes"},
		{999, "999 Bytes"},
		{1000, "1.0 KB"},
		{1536, "1.5 KB"},
		{2_500_000, "2.5 MB"},
		{3_000_000_000, "3.0 GB"},
		{4_200_000_000_000, "4.2 TB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.size); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

var idPattern = regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`)

func TestNewID(t *testing.T) {
	id := NewID()
	if !idPattern.MatchString(id) {
		t.Errorf("NewID() = %q, not an uppercase UUID", id)
	}
	if strings.ToUpper(id) != id {
		t.Errorf("NewID() = %q, want uppercase", id)
	}
	if NewID() == id {
		t.Error("two NewID calls returned the same identifier")
	}
}
