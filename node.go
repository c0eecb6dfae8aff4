package i18ntree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Kind is the variant of a Node.
type Kind uint8

const (
	LeafKind Kind = iota
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case LeafKind:
		return "leaf"
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Node is one value of a document tree: an ordered object, a dense array
// whose unset slots are nil holes, or an opaque scalar leaf.
//
// A nil *Node stands for "absent". A leaf holding nil is an explicit null.
type Node struct {
	kind   Kind
	keys   []string
	fields map[string]*Node
	items  []*Node
	value  any
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{kind: ObjectKind, fields: make(map[string]*Node)}
}

// NewArray returns an empty array node.
func NewArray() *Node {
	return &Node{kind: ArrayKind}
}

// NewLeaf returns a scalar node.
func NewLeaf(v any) *Node {
	return &Node{kind: LeafKind, value: v}
}

func newContainer(k Kind) *Node {
	if k == ArrayKind {
		return NewArray()
	}
	return NewObject()
}

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) IsObject() bool { return n != nil && n.kind == ObjectKind }

func (n *Node) IsArray() bool { return n != nil && n.kind == ArrayKind }

func (n *Node) IsLeaf() bool { return n != nil && n.kind == LeafKind }

// Value returns the scalar of a leaf, nil for containers.
func (n *Node) Value() any {
	if n == nil || n.kind != LeafKind {
		return nil
	}
	return n.value
}

// Keys returns the object's keys in insertion order.
func (n *Node) Keys() []string {
	if !n.IsObject() {
		return nil
	}
	return append([]string(nil), n.keys...)
}

// Get returns the child under key and whether the key exists.
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsObject() {
		return nil, false
	}
	v, ok := n.fields[key]
	return v, ok
}

// Has reports whether the object has key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Set stores child under key. A new key is appended; an existing key keeps
// its position.
func (n *Node) Set(key string, child *Node) {
	if _, ok := n.fields[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = child
}

// Len returns the number of keys or array slots.
func (n *Node) Len() int {
	switch {
	case n.IsObject():
		return len(n.keys)
	case n.IsArray():
		return len(n.items)
	}
	return 0
}

// Index returns the array element at i, nil for holes and out of range.
func (n *Node) Index(i int) *Node {
	if !n.IsArray() || i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// SetIndex stores child at i, growing the array with holes when needed.
func (n *Node) SetIndex(i int, child *Node) {
	if i >= len(n.items) {
		n.items = append(n.items, make([]*Node, i+1-len(n.items))...)
	}
	n.items[i] = child
}

// Append adds child at the end of the array.
func (n *Node) Append(child *Node) {
	n.items = append(n.items, child)
}

// Clone returns a deep copy. Holes stay holes.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case ObjectKind:
		c := NewObject()
		for _, k := range n.keys {
			c.Set(k, n.fields[k].Clone())
		}
		return c
	case ArrayKind:
		c := &Node{kind: ArrayKind, items: make([]*Node, len(n.items))}
		for i, item := range n.items {
			c.items[i] = item.Clone()
		}
		return c
	default:
		return NewLeaf(n.value)
	}
}

// Equal reports deep equality including object key order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == nil && o == nil
	}
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case ObjectKind:
		if len(n.keys) != len(o.keys) {
			return false
		}
		for i, k := range n.keys {
			if o.keys[i] != k || !n.fields[k].Equal(o.fields[k]) {
				return false
			}
		}
		return true
	case ArrayKind:
		if len(n.items) != len(o.items) {
			return false
		}
		for i := range n.items {
			if !n.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(n.value, o.value)
	}
}

// Lookup resolves a key path to a node, nil when any step is absent.
func (n *Node) Lookup(path string) *Node {
	steps, err := ParsePath(path)
	if err != nil {
		return nil
	}
	cur := n
	for _, s := range steps {
		if s.Kind == IndexStep {
			cur = cur.Index(s.Index)
		} else {
			cur, _ = cur.Get(s.Name)
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Flatten returns the paths of all leaves in document order.
func (n *Node) Flatten() []string {
	var out []string
	n.walkLeaves("", func(p string, _ *Node) { out = append(out, p) })
	return out
}

func (n *Node) walkLeaves(prefix string, fn func(string, *Node)) {
	switch {
	case n == nil:
	case n.kind == ObjectKind:
		for _, k := range n.keys {
			n.fields[k].walkLeaves(JoinKey(prefix, k), fn)
		}
	case n.kind == ArrayKind:
		for i, item := range n.items {
			item.walkLeaves(JoinIndex(prefix, i), fn)
		}
	default:
		if prefix == "" {
			prefix = RootPath
		}
		fn(prefix, n)
	}
}

// MarshalJSON encodes the node keeping object key order. Holes encode as null.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encodeJSON(buf *bytes.Buffer) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.kind {
	case ObjectKind:
		buf.WriteByte('{')
		for i, k := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := n.fields[k].encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ArrayKind:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		vb, err := json.Marshal(n.value)
		if err != nil {
			return fmt.Errorf("encode leaf: %w", err)
		}
		buf.Write(vb)
	}
	return nil
}

// String renders the node as compact JSON.
func (n *Node) String() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(b)
}
