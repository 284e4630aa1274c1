package treeml

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EmitYAML renders the tree as YAML. Scalars flagged as originally quoted
// emit double-quoted; all other scalars stay plain so numeric, boolean, and
// date text round-trips unchanged.
func (t *Tree) EmitYAML() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	err := enc.Encode(t.yamlNode(t.Root()))
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", err, ErrEncode)
	}

	err = enc.Close()
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", err, ErrEncode)
	}

	return buf.Bytes(), nil
}

func (t *Tree) yamlNode(id NodeID) *yaml.Node {
	switch t.Type(id) {
	case TypeMap:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for _, child := range t.Children(id) {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: string(t.Key(child))},
				t.yamlNode(child))
		}

		return n

	case TypeSeq:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for _, child := range t.Children(id) {
			n.Content = append(n.Content, t.yamlNode(child))
		}

		return n

	case TypeScalar:
		n := &yaml.Node{Kind: yaml.ScalarNode, Value: string(t.Val(id))}
		if t.Flags(id)&FlagQuoted != 0 {
			n.Style = yaml.DoubleQuotedStyle
		}

		return n

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
