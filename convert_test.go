package treeml_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docyard/treeml"
)

func childKeys(tr *treeml.Tree, id treeml.NodeID) []string {
	keys := []string{}
	for _, child := range tr.Children(id) {
		keys = append(keys, string(tr.Key(child)))
	}

	return keys
}

func childVals(tr *treeml.Tree, id treeml.NodeID) []string {
	vals := []string{}
	for _, child := range tr.Children(id) {
		vals = append(vals, string(tr.Val(child)))
	}

	return vals
}

func TestTableOrderPreserved(t *testing.T) {
	t.Parallel()

	tr, err := treeml.ParseTOML([]byte("b = 1\na = 2\nc = 3\n"))
	require.NoError(t, err)

	require.Equal(t, treeml.TypeMap, tr.Type(tr.Root()))
	require.Equal(t, []string{"b", "a", "c"}, childKeys(tr, tr.Root()))
	require.Equal(t, []string{"1", "2", "3"}, childVals(tr, tr.Root()))
}

func TestSequenceOrderPreserved(t *testing.T) {
	t.Parallel()

	tr, err := treeml.ParseTOML([]byte("numbers = [1, 2, 3]\n"))
	require.NoError(t, err)

	numbers := tr.FindChild(tr.Root(), "numbers")
	require.Equal(t, treeml.TypeSeq, tr.Type(numbers))
	require.Equal(t, 3, tr.NumChildren(numbers))
	require.Equal(t, []string{"1", "2", "3"}, childVals(tr, numbers))

	for _, child := range tr.Children(numbers) {
		require.Equal(t, treeml.TypeScalar, tr.Type(child))
		require.False(t, tr.HasKey(child))
	}
}

func TestNestedTables(t *testing.T) {
	t.Parallel()

	src := `[servers.alpha]
ip = "10.0.0.1"

[servers.beta]
ip = "10.0.0.2"
`

	tr, err := treeml.ParseTOML([]byte(src))
	require.NoError(t, err)

	servers := tr.FindChild(tr.Root(), "servers")
	require.NotEqual(t, treeml.NoneID, servers)
	require.Equal(t, treeml.TypeMap, tr.Type(servers))
	require.Equal(t, []string{"alpha", "beta"}, childKeys(tr, servers))

	alpha := tr.FindChild(servers, "alpha")
	require.Equal(t, treeml.TypeMap, tr.Type(alpha))
	require.Equal(t, "10.0.0.1", string(tr.Val(tr.FindChild(alpha, "ip"))))

	beta := tr.FindChild(servers, "beta")
	require.Equal(t, "10.0.0.2", string(tr.Val(tr.FindChild(beta, "ip"))))
}

func TestFloatSpecials(t *testing.T) {
	t.Parallel()

	src := `a = inf
b = -inf
c = nan
d = 3.14
e = 0.5
`

	tr, err := treeml.ParseTOML([]byte(src))
	require.NoError(t, err)

	require.Equal(t, []string{".inf", "-.inf", ".nan", "3.14", "0.5"}, childVals(tr, tr.Root()))
}

func TestIntegerForms(t *testing.T) {
	t.Parallel()

	src := `a = 0xff
b = 1_000
c = -17
d = 0o755
e = 0b1010
`

	tr, err := treeml.ParseTOML([]byte(src))
	require.NoError(t, err)

	require.Equal(t, []string{"255", "1000", "-17", "493", "10"}, childVals(tr, tr.Root()))
}

func TestBooleans(t *testing.T) {
	t.Parallel()

	tr, err := treeml.ParseTOML([]byte("on = true\noff = false\n"))
	require.NoError(t, err)

	require.Equal(t, []string{"true", "false"}, childVals(tr, tr.Root()))
}

func TestStringQuotedFlag(t *testing.T) {
	t.Parallel()

	src := `basic = "hi"
literal = 'there'
number = 5
`

	tr, err := treeml.ParseTOML([]byte(src))
	require.NoError(t, err)

	basic := tr.FindChild(tr.Root(), "basic")
	require.Equal(t, "hi", string(tr.Val(basic)))
	require.NotEqual(t, treeml.NodeFlags(0), tr.Flags(basic)&treeml.FlagQuoted)

	literal := tr.FindChild(tr.Root(), "literal")
	require.Equal(t, "there", string(tr.Val(literal)))
	require.NotEqual(t, treeml.NodeFlags(0), tr.Flags(literal)&treeml.FlagQuoted)

	number := tr.FindChild(tr.Root(), "number")
	require.Equal(t, treeml.NodeFlags(0), tr.Flags(number)&treeml.FlagQuoted)
}

func TestEmptyInputs(t *testing.T) {
	t.Parallel()

	tr, err := treeml.ParseTOML(nil)
	require.NoError(t, err)
	require.Equal(t, treeml.TypeMap, tr.Type(tr.Root()))
	require.Equal(t, 0, tr.NumChildren(tr.Root()))

	tr, err = treeml.ParseTOML([]byte("[empty]\n"))
	require.NoError(t, err)

	empty := tr.FindChild(tr.Root(), "empty")
	require.Equal(t, treeml.TypeMap, tr.Type(empty))
	require.Equal(t, 0, tr.NumChildren(empty))
}

func TestArrayOfTables(t *testing.T) {
	t.Parallel()

	src := `[[fruit]]
name = "apple"

[fruit.physical]
color = "red"

[[fruit]]
name = "banana"
`

	tr, err := treeml.ParseTOML([]byte(src))
	require.NoError(t, err)

	fruit := tr.FindChild(tr.Root(), "fruit")
	require.Equal(t, treeml.TypeSeq, tr.Type(fruit))
	require.Equal(t, 2, tr.NumChildren(fruit))

	first := tr.Child(fruit, 0)
	require.Equal(t, treeml.TypeMap, tr.Type(first))
	require.Equal(t, []string{"name", "physical"}, childKeys(tr, first))
	require.Equal(t, "red", string(tr.Val(tr.FindChild(tr.FindChild(first, "physical"), "color"))))

	second := tr.Child(fruit, 1)
	require.Equal(t, "banana", string(tr.Val(tr.FindChild(second, "name"))))
}

func TestDottedKeys(t *testing.T) {
	t.Parallel()

	tr, err := treeml.ParseTOML([]byte("a.b.c = 1\na.b.d = 2\n"))
	require.NoError(t, err)

	a := tr.FindChild(tr.Root(), "a")
	require.Equal(t, treeml.TypeMap, tr.Type(a))

	b := tr.FindChild(a, "b")
	require.Equal(t, []string{"c", "d"}, childKeys(tr, b))
	require.Equal(t, []string{"1", "2"}, childVals(tr, b))
}

func TestInlineTable(t *testing.T) {
	t.Parallel()

	tr, err := treeml.ParseTOML([]byte("point = { x = 1, y = 2 }\n"))
	require.NoError(t, err)

	point := tr.FindChild(tr.Root(), "point")
	require.Equal(t, treeml.TypeMap, tr.Type(point))
	require.Equal(t, []string{"x", "y"}, childKeys(tr, point))
	require.Equal(t, []string{"1", "2"}, childVals(tr, point))
}

func TestDateTimes(t *testing.T) {
	t.Parallel()

	src := `date = 1979-05-27
time = 07:32:00
odt = 1979-05-27T07:32:00Z
ldt = 1979-05-27T00:32:00
`

	tr, err := treeml.ParseTOML([]byte(src))
	require.NoError(t, err)

	require.Equal(t, "1979-05-27", string(tr.Val(tr.FindChild(tr.Root(), "date"))))
	require.Equal(t, "07:32:00", string(tr.Val(tr.FindChild(tr.Root(), "time"))))
	require.Equal(t, "1979-05-27T07:32:00Z", string(tr.Val(tr.FindChild(tr.Root(), "odt"))))

	ldt := string(tr.Val(tr.FindChild(tr.Root(), "ldt")))
	require.True(t, strings.HasPrefix(ldt, "1979-05-27"))
	require.Contains(t, ldt, "00:32:00")

	for _, key := range []string{"date", "time", "odt", "ldt"} {
		child := tr.FindChild(tr.Root(), key)
		require.Equal(t, treeml.NodeFlags(0), tr.Flags(child)&treeml.FlagQuoted)
	}
}

func TestDeepNesting(t *testing.T) {
	t.Parallel()

	const depth = 64

	src := "a = " + strings.Repeat("[", depth) + "1, 2" + strings.Repeat("]", depth) + "\n"

	tr, err := treeml.ParseTOML([]byte(src))
	require.NoError(t, err)

	id := tr.FindChild(tr.Root(), "a")
	for i := 0; i < depth-1; i++ {
		require.Equal(t, treeml.TypeSeq, tr.Type(id))
		require.Equal(t, 1, tr.NumChildren(id))
		id = tr.Child(id, 0)
	}

	require.Equal(t, treeml.TypeSeq, tr.Type(id))
	require.Equal(t, []string{"1", "2"}, childVals(tr, id))
}

func TestDeepTablesSiblingOrder(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&sb, "[t%d]\n", i)
		fmt.Fprintf(&sb, "x = %d\ny = %d\n", i, i+1)
	}

	tr, err := treeml.ParseTOML([]byte(sb.String()))
	require.NoError(t, err)
	require.Equal(t, 20, tr.NumChildren(tr.Root()))

	for i, child := range tr.Children(tr.Root()) {
		require.Equal(t, fmt.Sprintf("t%d", i), string(tr.Key(child)))
		require.Equal(t, []string{"x", "y"}, childKeys(tr, child))
		require.Equal(t, []string{fmt.Sprint(i), fmt.Sprint(i + 1)}, childVals(tr, child))
	}
}
