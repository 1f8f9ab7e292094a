package node

import "time"

// Kind identifies the active variant of a [Node]. Every node carries exactly
// one kind, fixed at construction.
type Kind int

const (
	// KindInvalid is reported by nil nodes and never constructed directly.
	KindInvalid Kind = iota
	// KindBoolean holds a true/false value.
	KindBoolean
	// KindUint holds an unsigned 64-bit integer.
	KindUint
	// KindReal holds a double-precision floating point number.
	KindReal
	// KindString holds UTF-8 text.
	KindString
	// KindKey holds a mapping label. Keys appear only as dictionary labels
	// and render with a trailing ": " separator instead of a newline.
	KindKey
	// KindData holds an opaque byte payload.
	KindData
	// KindDate holds a timestamp stored as an offset from the reference epoch.
	KindDate
	// KindArray holds an ordered list of child nodes.
	KindArray
	// KindDict holds insertion-ordered unique key/child pairs.
	KindDict
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindUint:
		return "uint"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindKey:
		return "key"
	case KindData:
		return "data"
	case KindDate:
		return "date"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	default:
		return "invalid"
	}
}

// Epoch is the reference instant for [KindDate] nodes. Date nodes store
// second and microsecond offsets relative to this instant, not to the Unix
// epoch.
var Epoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// epochUnix is Epoch expressed as Unix seconds. Date arithmetic uses Unix
// seconds rather than time.Duration, which would overflow for offsets
// beyond roughly 292 years.
const epochUnix int64 = 978307200

// Node is one value in a typed tree. The zero value is not usable; construct
// nodes with the NewXxx functions. Accessor methods are nil-safe and return
// zero values when called on a nil node or on a node of a different kind,
// mirroring the permissive access rules of the rendering layer.
//
// A Node tree is not safe for concurrent mutation, but any number of
// goroutines may read (and render) the same tree concurrently.
type Node struct {
	kind Kind

	b    bool
	u    uint64
	f    float64
	s    string // string and key payloads
	data []byte

	sec  int64 // date: seconds from Epoch
	usec int64 // date: microsecond remainder

	items []*Node
	pairs []pair // dict entries, insertion order
}

type pair struct {
	key   string
	child *Node
}

// NewBoolean creates a boolean node.
func NewBoolean(v bool) *Node { return &Node{kind: KindBoolean, b: v} }

// NewUint creates an unsigned integer node.
func NewUint(v uint64) *Node { return &Node{kind: KindUint, u: v} }

// NewReal creates a floating point node.
func NewReal(v float64) *Node { return &Node{kind: KindReal, f: v} }

// NewString creates a text node.
func NewString(v string) *Node { return &Node{kind: KindString, s: v} }

// NewKey creates a standalone key node. Dictionaries label their entries
// internally, so NewKey is only needed when a bare key must be rendered
// outside a dictionary.
func NewKey(v string) *Node { return &Node{kind: KindKey, s: v} }

// NewData creates a binary payload node. The slice is not copied; callers
// must not mutate it while the tree is in use.
func NewData(v []byte) *Node { return &Node{kind: KindData, data: v} }

// NewDate creates a date node from a time.Time, stored as an offset from
// [Epoch]. Sub-microsecond precision is truncated.
func NewDate(t time.Time) *Node {
	// t.Unix() floors toward negative infinity and t.Nanosecond() is always
	// non-negative, so this is exact for pre-epoch times too.
	return &Node{
		kind: KindDate,
		sec:  t.Unix() - epochUnix,
		usec: int64(t.Nanosecond()) / 1000,
	}
}

// NewDateRaw creates a date node directly from second and microsecond
// offsets relative to [Epoch].
func NewDateRaw(sec, usec int64) *Node {
	return &Node{kind: KindDate, sec: sec, usec: usec}
}

// NewArray creates an array node holding the given children in order.
func NewArray(children ...*Node) *Node {
	return &Node{kind: KindArray, items: children}
}

// NewDict creates an empty dictionary node.
func NewDict() *Node { return &Node{kind: KindDict} }

// Kind reports the node's variant. A nil node reports [KindInvalid].
func (n *Node) Kind() Kind {
	if n == nil {
		return KindInvalid
	}
	return n.kind
}

// Boolean returns the boolean payload, or false for other kinds.
func (n *Node) Boolean() bool {
	if n == nil || n.kind != KindBoolean {
		return false
	}
	return n.b
}

// Uint returns the unsigned integer payload, or 0 for other kinds.
func (n *Node) Uint() uint64 {
	if n == nil || n.kind != KindUint {
		return 0
	}
	return n.u
}

// Real returns the floating point payload, or 0 for other kinds.
func (n *Node) Real() float64 {
	if n == nil || n.kind != KindReal {
		return 0
	}
	return n.f
}

// Text returns the string or key payload, or "" for other kinds.
func (n *Node) Text() string {
	if n == nil || (n.kind != KindString && n.kind != KindKey) {
		return ""
	}
	return n.s
}

// Data returns the binary payload, or nil for other kinds. The returned
// slice is the node's backing storage and must not be mutated.
func (n *Node) Data() []byte {
	if n == nil || n.kind != KindData {
		return nil
	}
	return n.data
}

// Date returns the second and microsecond offsets from [Epoch], or zeros
// for other kinds.
func (n *Node) Date() (sec, usec int64) {
	if n == nil || n.kind != KindDate {
		return 0, 0
	}
	return n.sec, n.usec
}

// Time returns the date payload as a UTC time.Time, or the zero time for
// other kinds.
func (n *Node) Time() time.Time {
	if n == nil || n.kind != KindDate {
		return time.Time{}
	}
	return time.Unix(epochUnix+n.sec, n.usec*1000).UTC()
}

// Len returns the child count of an array or dictionary, or 0 for other
// kinds.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.kind {
	case KindArray:
		return len(n.items)
	case KindDict:
		return len(n.pairs)
	default:
		return 0
	}
}

// Item returns the array child at index i, or nil if the node is not an
// array or i is out of range.
func (n *Node) Item(i int) *Node {
	if n == nil || n.kind != KindArray || i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// Append adds a child to the end of an array node. It is a no-op for other
// kinds.
func (n *Node) Append(child *Node) {
	if n == nil || n.kind != KindArray {
		return
	}
	n.items = append(n.items, child)
}

// Count returns the total number of nodes in the subtree rooted at n,
// including n itself. A nil node counts as zero.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	switch n.kind {
	case KindArray:
		for _, c := range n.items {
			total += c.Count()
		}
	case KindDict:
		for _, p := range n.pairs {
			total += p.child.Count()
		}
	}
	return total
}
