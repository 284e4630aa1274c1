package treeml

import (
	"bytes"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// EmitTOML renders the tree back to TOML via [Tree.Unpack]. go-toml encodes
// maps with its own key ordering, so declaration order is not preserved;
// use the YAML or JSON emitters when order matters.
func (t *Tree) EmitTOML() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := toml.NewEncoder(buf)

	err := enc.Encode(t.Unpack())
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", err, ErrEncode)
	}

	return buf.Bytes(), nil
}
