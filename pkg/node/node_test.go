package node

import (
	"bytes"
	"testing"
	"time"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInvalid, "invalid"},
		{KindBoolean, "boolean"},
		{KindUint, "uint"},
		{KindReal, "real"},
		{KindString, "string"},
		{KindKey, "key"},
		{KindData, "data"},
		{KindDate, "date"},
		{KindArray, "array"},
		{KindDict, "dict"},
		{Kind(99), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestScalarConstructorsAndAccessors(t *testing.T) {
	if n := NewBoolean(true); n.Kind() != KindBoolean || !n.Boolean() {
		t.Error("NewBoolean(true) accessor mismatch")
	}
	if n := NewUint(42); n.Kind() != KindUint || n.Uint() != 42 {
		t.Error("NewUint(42) accessor mismatch")
	}
	if n := NewReal(2.5); n.Kind() != KindReal || n.Real() != 2.5 {
		t.Error("NewReal(2.5) accessor mismatch")
	}
	if n := NewString("hi"); n.Kind() != KindString || n.Text() != "hi" {
		t.Error("NewString accessor mismatch")
	}
	if n := NewKey("k"); n.Kind() != KindKey || n.Text() != "k" {
		t.Error("NewKey accessor mismatch")
	}
	if n := NewData([]byte{1, 2}); n.Kind() != KindData || !bytes.Equal(n.Data(), []byte{1, 2}) {
		t.Error("NewData accessor mismatch")
	}
}

func TestNilNodeAccessorsAreSafe(t *testing.T) {
	var n *Node
	if n.Kind() != KindInvalid {
		t.Error("nil Kind should be KindInvalid")
	}
	if n.Boolean() || n.Uint() != 0 || n.Real() != 0 || n.Text() != "" || n.Data() != nil {
		t.Error("nil scalar accessors should return zero values")
	}
	if n.Len() != 0 || n.Item(0) != nil || n.Get("x") != nil || n.Count() != 0 {
		t.Error("nil container accessors should return zero values")
	}
	if !n.Time().IsZero() {
		t.Error("nil Time should be zero")
	}
	// Mutators must not panic on nil receivers.
	n.Append(NewUint(1))
	n.Set("k", NewUint(1))
	n.Delete("k")
	if _, _, ok := n.Iter().Next(); ok {
		t.Error("nil iterator should be exhausted")
	}
}

func TestKindMismatchReturnsZeroValues(t *testing.T) {
	n := NewString("text")
	if n.Boolean() || n.Uint() != 0 || n.Real() != 0 || n.Data() != nil {
		t.Error("mismatched accessors should return zero values")
	}
	if sec, usec := n.Date(); sec != 0 || usec != 0 {
		t.Error("mismatched Date should return zeros")
	}
	if NewUint(3).Text() != "" {
		t.Error("Text on uint should be empty")
	}
}

func TestDateRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		when time.Time
	}{
		{"after epoch", time.Date(2014, time.March, 1, 12, 30, 45, 500000000, time.UTC)},
		{"at epoch", Epoch},
		{"before epoch", time.Date(1970, time.June, 15, 8, 0, 0, 250000000, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewDate(tt.when)
			if got := n.Time(); !got.Equal(tt.when) {
				t.Errorf("Time() = %v, want %v", got, tt.when)
			}
		})
	}
}

func TestDateOffsets(t *testing.T) {
	n := NewDate(Epoch.Add(90*time.Second + 250*time.Microsecond))
	sec, usec := n.Date()
	if sec != 90 || usec != 250 {
		t.Errorf("Date() = (%d, %d), want (90, 250)", sec, usec)
	}

	raw := NewDateRaw(-5, 100)
	sec, usec = raw.Date()
	if sec != -5 || usec != 100 {
		t.Errorf("NewDateRaw offsets = (%d, %d), want (-5, 100)", sec, usec)
	}
}

func TestArrayOperations(t *testing.T) {
	a := NewArray(NewUint(1), NewUint(2))
	a.Append(NewUint(3))

	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	for i := 0; i < 3; i++ {
		if got := a.Item(i).Uint(); got != uint64(i+1) {
			t.Errorf("Item(%d) = %d, want %d", i, got, i+1)
		}
	}
	if a.Item(-1) != nil || a.Item(3) != nil {
		t.Error("out of range Item should be nil")
	}

	// Append on a non-array is a no-op.
	s := NewString("x")
	s.Append(NewUint(1))
	if s.Len() != 0 {
		t.Error("Append on non-array should be ignored")
	}
}

func TestCount(t *testing.T) {
	inner := NewDict()
	inner.Set("a", NewUint(1))

	root := NewDict()
	root.Set("inner", inner)
	root.Set("xs", NewArray(NewUint(1), NewUint(2)))

	// root + inner + a + xs + two items = 6
	if got := root.Count(); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
	if got := NewString("x").Count(); got != 1 {
		t.Errorf("scalar Count() = %d, want 1", got)
	}
}
