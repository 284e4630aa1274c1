package treeml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docyard/treeml"
)

func TestParseTOMLFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "app.toml")

	require.NoError(t, os.WriteFile(path, []byte("[server]\nport = 8080\n"), 0o644))

	tr, err := treeml.ParseTOMLFile(path)
	require.NoError(t, err)

	server := tr.FindChild(tr.Root(), "server")
	require.Equal(t, "8080", string(tr.Val(tr.FindChild(server, "port"))))
}

func TestParseTOMLFileMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.toml")

	_, err := treeml.ParseTOMLFile(path)
	require.ErrorIs(t, err, treeml.ErrMissingFile)
	require.Contains(t, err.Error(), path)
}

func TestParseErrorSyntax(t *testing.T) {
	t.Parallel()

	_, err := treeml.ParseTOML([]byte("key = \n"))
	require.ErrorIs(t, err, treeml.ErrParse)
}

func TestParseErrorDuplicateKey(t *testing.T) {
	t.Parallel()

	_, err := treeml.ParseTOML([]byte("a = 1\na = 2\n"))
	require.ErrorIs(t, err, treeml.ErrParse)
	require.Contains(t, err.Error(), `"a"`)
}

func TestParseErrorTableRedefined(t *testing.T) {
	t.Parallel()

	_, err := treeml.ParseTOML([]byte("[t]\nx = 1\n\n[t]\ny = 2\n"))
	require.ErrorIs(t, err, treeml.ErrParse)
}

func TestParseErrorInlineTableExtended(t *testing.T) {
	t.Parallel()

	_, err := treeml.ParseTOML([]byte("t = { x = 1 }\n\n[t]\ny = 2\n"))
	require.ErrorIs(t, err, treeml.ErrParse)
}

func TestParseErrorNamed(t *testing.T) {
	t.Parallel()

	_, err := treeml.ParseTOMLNamed("broken.toml", []byte("= 1\n"))
	require.ErrorIs(t, err, treeml.ErrParse)
	require.Contains(t, err.Error(), "broken.toml")
}

func TestParseCopiesSource(t *testing.T) {
	t.Parallel()

	src := []byte("name = \"stable\"\n")

	tr, err := treeml.ParseTOML(src)
	require.NoError(t, err)

	// Clobber the caller's buffer; the tree owns its own copy.
	for i := range src {
		src[i] = '#'
	}

	require.Equal(t, "stable", string(tr.Val(tr.FindChild(tr.Root(), "name"))))
}

func TestParseInPlace(t *testing.T) {
	t.Parallel()

	tr, err := treeml.ParseTOMLInPlace([]byte("x = 1\n"))
	require.NoError(t, err)
	require.Equal(t, "1", string(tr.Val(tr.FindChild(tr.Root(), "x"))))
}

func TestParseIntoKeyedNode(t *testing.T) {
	t.Parallel()

	tr := treeml.NewTree()
	tr.ToMap(tr.Root())

	child := tr.AppendChild(tr.Root())
	tr.SetKey(child, tr.InternArena([]byte("embedded")))

	err := tr.Ref(child).ParseTOML([]byte("a = 1\nb = 2\n"))
	require.NoError(t, err)

	// The pre-assigned key survives the node being turned into a map.
	require.Equal(t, "embedded", string(tr.Key(child)))
	require.Equal(t, treeml.TypeMap, tr.Type(child))
	require.Equal(t, []string{"a", "b"}, childKeys(tr, child))
}

func TestParseIntoInvalidNode(t *testing.T) {
	t.Parallel()

	tr := treeml.NewTree()

	err := tr.Ref(treeml.NoneID).ParseTOML([]byte("a = 1\n"))
	require.ErrorIs(t, err, treeml.ErrInvalidNode)

	var ref treeml.NodeRef
	err = ref.ParseTOMLInPlace([]byte("a = 1\n"))
	require.ErrorIs(t, err, treeml.ErrInvalidNode)
}

func TestParseIntoNodeTwice(t *testing.T) {
	t.Parallel()

	tr := treeml.NewTree()

	require.NoError(t, tr.RootRef().ParseTOML([]byte("a = 1\n")))
	require.Equal(t, 1, tr.NumChildren(tr.Root()))

	// A second parse replaces the previous contents.
	require.NoError(t, tr.RootRef().ParseTOML([]byte("b = 2\nc = 3\n")))
	require.Equal(t, []string{"b", "c"}, childKeys(tr, tr.Root()))
}
