package treeml

import (
	"fmt"
	"os"

	"github.com/docyard/treeml/internal/tomlval"
	"github.com/docyard/treeml/pkg/log"
)

// parseTOML is the single conversion pass: one foreign parse followed by one
// converter walk rooted at id. filename is used for diagnostics only.
func parseTOML(filename string, src []byte, t *Tree, id NodeID) error {
	root, err := tomlval.Parse(src)
	if err != nil {
		return bridgeParseError(filename, err)
	}

	convertValue(root, t, id)

	return nil
}

// ParseTOML parses src into a new tree. The source is first copied into the
// tree's arena, so the tree has no dependency on src afterward.
func ParseTOML(src []byte) (*Tree, error) {
	return ParseTOMLNamed("", src)
}

// ParseTOMLNamed is [ParseTOML] with a filename for error diagnostics.
func ParseTOMLNamed(filename string, src []byte) (*Tree, error) {
	t := NewTree()

	err := t.RootRef().ParseTOMLNamed(filename, src)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// ParseTOMLInPlace parses src into a new tree without retaining the source
// buffer; src only needs to stay valid for the duration of the call.
func ParseTOMLInPlace(src []byte) (*Tree, error) {
	return ParseTOMLInPlaceNamed("", src)
}

// ParseTOMLInPlaceNamed is [ParseTOMLInPlace] with a filename for error
// diagnostics.
func ParseTOMLInPlaceNamed(filename string, src []byte) (*Tree, error) {
	t := NewTree()

	err := t.RootRef().ParseTOMLInPlaceNamed(filename, src)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// ParseTOMLFile reads path and parses its contents into a new tree. The path
// appears in error diagnostics but has no other effect.
func ParseTOMLFile(path string) (*Tree, error) {
	t := NewTree()

	err := t.RootRef().ParseTOMLFile(path)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// ParseTOML parses src into the referenced node, copying the source into the
// tree's arena first.
func (n NodeRef) ParseTOML(src []byte) error {
	return n.ParseTOMLNamed("", src)
}

// ParseTOMLNamed is [NodeRef.ParseTOML] with a filename for error
// diagnostics.
func (n NodeRef) ParseTOMLNamed(filename string, src []byte) error {
	if !n.Valid() {
		return fmt.Errorf("%d: %w", n.id, ErrInvalidNode)
	}

	arenaCopy := n.tree.AllocArena(len(src))
	copy(arenaCopy, src)

	return parseTOML(filename, arenaCopy, n.tree, n.id)
}

// ParseTOMLInPlace parses src into the referenced node without retaining the
// source buffer.
func (n NodeRef) ParseTOMLInPlace(src []byte) error {
	return n.ParseTOMLInPlaceNamed("", src)
}

// ParseTOMLInPlaceNamed is [NodeRef.ParseTOMLInPlace] with a filename for
// error diagnostics.
func (n NodeRef) ParseTOMLInPlaceNamed(filename string, src []byte) error {
	if !n.Valid() {
		return fmt.Errorf("%d: %w", n.id, ErrInvalidNode)
	}

	return parseTOML(filename, src, n.tree, n.id)
}

// ParseTOMLFile reads path and parses its contents into the referenced node.
func (n NodeRef) ParseTOMLFile(path string) error {
	log.Debugf("loading %s", path)

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w / %w", path, err, ErrMissingFile)
	}

	return n.ParseTOMLNamed(path, b)
}
