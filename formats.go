package treeml

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// format handles rendering a tree in one output format.
type format struct {
	marshal func(*Tree) ([]byte, error)
}

var formatByExtension = map[string]format{
	"json":        {marshal: (*Tree).EmitJSON},
	"json-pretty": {marshal: (*Tree).EmitJSONPretty},
	"properties":  {marshal: (*Tree).EmitProperties},
	"toml":        {marshal: (*Tree).EmitTOML},
	"yaml":        {marshal: (*Tree).EmitYAML},
	"yml":         {marshal: (*Tree).EmitYAML},
}

// Extensions returns the supported output format names, sorted.
func Extensions() []string {
	exts := maps.Keys(formatByExtension)
	slices.Sort(exts)

	return exts
}

// Output renders the tree in the format named by ext.
func (t *Tree) Output(ext string) ([]byte, error) {
	f, found := formatByExtension[ext]
	if !found {
		return nil, fmt.Errorf("%s: %w", ext, ErrUnknownFormat)
	}

	return f.marshal(t)
}

// OutputToWriter renders the tree in the format named by ext and writes the
// result to w.
func (t *Tree) OutputToWriter(w io.Writer, ext string) error {
	b, err := t.Output(ext)
	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}
