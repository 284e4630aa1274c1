// Package treeml parses TOML documents into an arena-backed document tree
// that can be emitted as YAML, JSON, TOML, or Java properties.
package treeml

// NodeID identifies a node within one [Tree]. IDs are only meaningful for the
// tree that produced them.
type NodeID int32

// NoneID is the id returned when a requested node does not exist.
const NoneID NodeID = -1

// NodeType describes what a node holds.
type NodeType uint8

const (
	TypeNone NodeType = iota
	TypeScalar
	TypeMap
	TypeSeq
)

func (t NodeType) String() string {
	switch t {
	case TypeScalar:
		return "scalar"
	case TypeMap:
		return "map"
	case TypeSeq:
		return "seq"
	default:
		return "none"
	}
}

// NodeFlags carry presentation details that emitters may use to reproduce the
// source more faithfully.
type NodeFlags uint8

const (
	// FlagQuoted marks a scalar whose value was a quoted string in the source.
	FlagQuoted NodeFlags = 1 << iota
)

type node struct {
	typ      NodeType
	flags    NodeFlags
	hasKey   bool
	key      []byte
	val      []byte
	parent   NodeID
	children []NodeID
}

// Tree is a hierarchical document: Map, Seq, and Scalar nodes addressed by
// [NodeID], plus an owning byte arena. All key and value views handed out by
// a Tree point into its arena and remain valid for the tree's lifetime; they
// must not be modified by the caller.
//
// A Tree is not safe for concurrent mutation.
type Tree struct {
	nodes []node
	arena arena
}

// NewTree returns an empty tree containing only an untyped root node.
func NewTree() *Tree {
	return &Tree{
		nodes: []node{{parent: NoneID}},
	}
}

func (t *Tree) node(id NodeID) *node {
	return &t.nodes[id]
}

// Root returns the id of the tree's root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Type returns the node's type.
func (t *Tree) Type(id NodeID) NodeType {
	return t.node(id).typ
}

// HasKey reports whether the node has a key assigned.
func (t *Tree) HasKey(id NodeID) bool {
	return t.node(id).hasKey
}

// Key returns a view of the node's key. Valid for Map members only.
func (t *Tree) Key(id NodeID) []byte {
	return t.node(id).key
}

// Val returns a view of the node's scalar value. Valid for Scalar nodes only.
func (t *Tree) Val(id NodeID) []byte {
	return t.node(id).val
}

// Flags returns the node's presentation flags.
func (t *Tree) Flags(id NodeID) NodeFlags {
	return t.node(id).flags
}

// Parent returns the node's parent, or [NoneID] for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.node(id).parent
}

// NumChildren returns the number of children of id.
func (t *Tree) NumChildren(id NodeID) int {
	return len(t.node(id).children)
}

// Child returns the i-th child of id, or [NoneID] if out of range.
func (t *Tree) Child(id NodeID, i int) NodeID {
	children := t.node(id).children
	if i < 0 || i >= len(children) {
		return NoneID
	}

	return children[i]
}

// Children returns the node's children in order. The returned slice is owned
// by the tree and must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.node(id).children
}

// FindChild returns the first child of id whose key equals key, or [NoneID].
func (t *Tree) FindChild(id NodeID, key string) NodeID {
	for _, child := range t.node(id).children {
		c := t.node(child)
		if c.hasKey && string(c.key) == key {
			return child
		}
	}

	return NoneID
}

// AppendChild creates a new untyped node as the last child of parent and
// returns its id.
func (t *Tree) AppendChild(parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{parent: parent})

	p := t.node(parent)
	p.children = append(p.children, id)

	return id
}

// SetKey assigns the node's key. The key must be arena-backed or otherwise
// outlive the tree; see [Tree.InternArena]. Once assigned, the key survives
// any later re-typing of the node.
func (t *Tree) SetKey(id NodeID, key []byte) {
	n := t.node(id)
	n.key = key
	n.hasKey = true
}

// ToMap retypes the node to Map, discarding any scalar value, flags, and
// children. An assigned key is preserved.
func (t *Tree) ToMap(id NodeID) {
	n := t.node(id)
	n.typ = TypeMap
	n.val = nil
	n.flags = 0
	n.children = n.children[:0]
}

// ToSeq retypes the node to Seq, discarding any scalar value, flags, and
// children. An assigned key is preserved.
func (t *Tree) ToSeq(id NodeID) {
	n := t.node(id)
	n.typ = TypeSeq
	n.val = nil
	n.flags = 0
	n.children = n.children[:0]
}

// ToScalar retypes the node to Scalar holding val, discarding any flags and
// children. An assigned key is preserved. The value must be arena-backed or
// otherwise outlive the tree.
func (t *Tree) ToScalar(id NodeID, val []byte) {
	n := t.node(id)
	n.typ = TypeScalar
	n.val = val
	n.flags = 0
	n.children = n.children[:0]
}

// AddFlags ors f into the node's presentation flags.
func (t *Tree) AddFlags(id NodeID, f NodeFlags) {
	t.node(id).flags |= f
}

// InternArena copies b into the tree's arena and returns the stable copy.
// Empty input returns an empty view without allocating.
func (t *Tree) InternArena(b []byte) []byte {
	return t.arena.intern(b)
}

// AllocArena reserves a writable span of n bytes in the tree's arena.
func (t *Tree) AllocArena(n int) []byte {
	return t.arena.alloc(n)
}
