package treeml

import (
	"math"
	"strconv"
)

// Unpack converts the whole tree into plain Go values: map[string]any for
// maps (declaration order is lost), []any for sequences, and scalars
// re-inferred from their text. Quoted scalars always stay strings.
func (t *Tree) Unpack() any {
	return t.UnpackNode(t.Root())
}

// UnpackNode converts the subtree rooted at id; see [Tree.Unpack].
func (t *Tree) UnpackNode(id NodeID) any {
	switch t.Type(id) {
	case TypeMap:
		m := map[string]any{}

		for _, child := range t.Children(id) {
			m[string(t.Key(child))] = t.UnpackNode(child)
		}

		return m

	case TypeSeq:
		vs := []any{}

		for _, child := range t.Children(id) {
			vs = append(vs, t.UnpackNode(child))
		}

		return vs

	case TypeScalar:
		return t.unpackScalar(id)

	default:
		return nil
	}
}

func (t *Tree) unpackScalar(id NodeID) any {
	s := string(t.Val(id))

	if t.Flags(id)&FlagQuoted != 0 {
		return s
	}

	switch s {
	case "true":
		return true
	case "false":
		return false
	case ".inf":
		return math.Inf(1)
	case "-.inf":
		return math.Inf(-1)
	case ".nan":
		return math.NaN()
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}

	return s
}
