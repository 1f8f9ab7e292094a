package node

// Set stores child under key in a dictionary node. If the key already
// exists, its value is replaced in place and the entry keeps its original
// position; otherwise the entry is appended. Set is a no-op for other kinds.
func (n *Node) Set(key string, child *Node) {
	if n == nil || n.kind != KindDict {
		return
	}
	for i := range n.pairs {
		if n.pairs[i].key == key {
			n.pairs[i].child = child
			return
		}
	}
	n.pairs = append(n.pairs, pair{key: key, child: child})
}

// Get returns the child stored under key, or nil if the node is not a
// dictionary or the key is absent.
func (n *Node) Get(key string) *Node {
	if n == nil || n.kind != KindDict {
		return nil
	}
	for i := range n.pairs {
		if n.pairs[i].key == key {
			return n.pairs[i].child
		}
	}
	return nil
}

// Delete removes the entry stored under key, preserving the order of the
// remaining entries. It is a no-op if the key is absent or the node is not
// a dictionary.
func (n *Node) Delete(key string) {
	if n == nil || n.kind != KindDict {
		return
	}
	for i := range n.pairs {
		if n.pairs[i].key == key {
			n.pairs = append(n.pairs[:i], n.pairs[i+1:]...)
			return
		}
	}
}

// Keys returns the dictionary's keys in insertion order, or nil for other
// kinds.
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindDict {
		return nil
	}
	keys := make([]string, len(n.pairs))
	for i := range n.pairs {
		keys[i] = n.pairs[i].key
	}
	return keys
}

// DictIter walks a dictionary's entries in insertion order. Obtain one with
// [Node.Iter] and advance it with Next until ok is false:
//
//	for it := d.Iter(); ; {
//	    key, child, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    // use key, child
//	}
//
// The iterator reflects the dictionary at the time of each Next call;
// mutating the dictionary during iteration is not supported.
type DictIter struct {
	n   *Node
	pos int
}

// Iter returns an iterator over the dictionary's entries. Iterators over
// non-dictionary nodes are valid but immediately exhausted.
func (n *Node) Iter() *DictIter {
	if n == nil || n.kind != KindDict {
		return &DictIter{}
	}
	return &DictIter{n: n}
}

// Next returns the next key/child pair. ok is false once the iterator is
// exhausted, after which key and child are zero values.
func (it *DictIter) Next() (key string, child *Node, ok bool) {
	if it.n == nil || it.pos >= len(it.n.pairs) {
		return "", nil, false
	}
	p := it.n.pairs[it.pos]
	it.pos++
	return p.key, p.child, true
}
