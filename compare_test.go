package treeml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docyard/treeml"
)

func TestCompareBytesEqual(t *testing.T) {
	t.Parallel()

	src := []byte("a = 1\nb = 2\n")

	result, err := treeml.CompareBytes("left", "right", src, src, "yaml")
	require.NoError(t, err)
	require.Equal(t, "left", result.File1)
	require.Equal(t, "right", result.File2)
	require.Equal(t, "yaml", result.Format)
	require.Empty(t, result.Diff)
}

func TestCompareBytesDifferent(t *testing.T) {
	t.Parallel()

	result, err := treeml.CompareBytes("left", "right",
		[]byte("port = 8080\n"),
		[]byte("port = 9090\n"),
		"yaml")
	require.NoError(t, err)

	require.Contains(t, result.Diff, "--- left")
	require.Contains(t, result.Diff, "+++ right")
	require.Contains(t, result.Diff, "-port: 8080")
	require.Contains(t, result.Diff, "+port: 9090")
}

func TestCompareBytesBadFormat(t *testing.T) {
	t.Parallel()

	_, err := treeml.CompareBytes("l", "r", []byte("a = 1\n"), []byte("a = 1\n"), "xml")
	require.ErrorIs(t, err, treeml.ErrUnknownFormat)
}

func TestCompareBytesParseError(t *testing.T) {
	t.Parallel()

	_, err := treeml.CompareBytes("l", "r", []byte("= broken\n"), []byte("a = 1\n"), "yaml")
	require.ErrorIs(t, err, treeml.ErrParse)
	require.Contains(t, err.Error(), "l")
}

func TestCompareFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path1 := filepath.Join(dir, "one.toml")
	path2 := filepath.Join(dir, "two.toml")

	require.NoError(t, os.WriteFile(path1, []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path2, []byte("x = 2\n"), 0o644))

	result, err := treeml.Compare(path1, path2, "json")
	require.NoError(t, err)
	require.Contains(t, result.Diff, `-{"x":1}`)
	require.Contains(t, result.Diff, `+{"x":2}`)
}
