package treeml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/magiconair/properties"
	"golang.org/x/exp/slices"
)

// EmitProperties renders the tree as Java properties: nested maps flatten to
// dotted keys, sequences join with commas, keys sort lexically.
func (t *Tree) EmitProperties() ([]byte, error) {
	if t.Type(t.Root()) != TypeMap {
		return nil, fmt.Errorf("properties output requires a map root: %w", ErrEncode)
	}

	p := properties.NewProperties()
	p.WriteSeparator = "="

	t.flattenNode("", t.Root(), p)

	buf := &bytes.Buffer{}

	_, err := p.Write(buf, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", err, ErrEncode)
	}

	return buf.Bytes(), nil
}

func (t *Tree) flattenNode(prefix string, id NodeID, p *properties.Properties) {
	children := slices.Clone(t.Children(id))
	slices.SortFunc(children, func(a, b NodeID) int {
		return strings.Compare(string(t.Key(a)), string(t.Key(b)))
	})

	for _, child := range children {
		key := string(t.Key(child))
		if prefix != "" {
			key = prefix + "." + key
		}

		switch t.Type(child) {
		case TypeMap:
			t.flattenNode(key, child, p)

		case TypeSeq:
			items := []string{}
			for _, item := range t.Children(child) {
				if t.Type(item) == TypeScalar {
					items = append(items, string(t.Val(item)))
				} else {
					items = append(items, fmt.Sprintf("%v", t.UnpackNode(item)))
				}
			}

			p.Set(key, strings.Join(items, ","))

		case TypeScalar:
			p.Set(key, string(t.Val(child)))
		}
	}
}
