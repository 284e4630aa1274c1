package treeml

// NodeRef pairs a tree with one of its nodes. The zero NodeRef is invalid.
type NodeRef struct {
	tree *Tree
	id   NodeID
}

// Ref returns a NodeRef for id.
func (t *Tree) Ref(id NodeID) NodeRef {
	return NodeRef{tree: t, id: id}
}

// RootRef returns a NodeRef for the tree's root.
func (t *Tree) RootRef() NodeRef {
	return t.Ref(t.Root())
}

// Tree returns the referenced tree.
func (n NodeRef) Tree() *Tree {
	return n.tree
}

// ID returns the referenced node id.
func (n NodeRef) ID() NodeID {
	return n.id
}

func (n NodeRef) Type() NodeType {
	return n.tree.Type(n.id)
}

func (n NodeRef) HasKey() bool {
	return n.tree.HasKey(n.id)
}

func (n NodeRef) Key() []byte {
	return n.tree.Key(n.id)
}

func (n NodeRef) Val() []byte {
	return n.tree.Val(n.id)
}

func (n NodeRef) Flags() NodeFlags {
	return n.tree.Flags(n.id)
}

func (n NodeRef) NumChildren() int {
	return n.tree.NumChildren(n.id)
}

// Child returns the i-th child as a NodeRef.
func (n NodeRef) Child(i int) NodeRef {
	return n.tree.Ref(n.tree.Child(n.id, i))
}

// FindChild returns the child with the given key, or a ref to [NoneID].
func (n NodeRef) FindChild(key string) NodeRef {
	return n.tree.Ref(n.tree.FindChild(n.id, key))
}

// Valid reports whether the ref points at an existing node.
func (n NodeRef) Valid() bool {
	return n.tree != nil && n.id >= 0 && int(n.id) < n.tree.Len()
}
