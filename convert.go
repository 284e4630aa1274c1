package treeml

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/docyard/treeml/internal/tomlval"
)

// convertValue materializes one foreign value into the tree node id,
// recursing into tables and arrays. Child order always mirrors the foreign
// declaration order, and an already-assigned key on id survives re-typing.
// The foreign graph is fully validated before conversion starts, so the walk
// itself cannot fail.
func convertValue(v *tomlval.Value, t *Tree, id NodeID) {
	switch v.Kind() {
	case tomlval.Table:
		t.ToMap(id)

		for _, e := range v.Entries() {
			child := t.AppendChild(id)
			t.SetKey(child, t.InternArena([]byte(e.Key)))
			convertValue(e.Value, t, child)
		}

	case tomlval.Array:
		t.ToSeq(id)

		for _, item := range v.Items() {
			convertValue(item, t, t.AppendChild(id))
		}

	case tomlval.String:
		t.ToScalar(id, t.InternArena([]byte(v.Str())))
		t.AddFlags(id, FlagQuoted)

	default:
		t.ToScalar(id, t.InternArena(canonicalScalar(v)))
	}
}

// canonicalScalar renders a non-string foreign scalar payload as canonical
// text. Dates and times use their native stringification; calendar
// correctness was already checked by the parser.
func canonicalScalar(v *tomlval.Value) []byte {
	switch v.Kind() {
	case tomlval.Integer:
		return strconv.AppendInt(nil, v.Int(), 10)

	case tomlval.Float:
		return canonicalFloat(v.Float())

	case tomlval.Bool:
		if v.Bool() {
			return []byte("true")
		}

		return []byte("false")

	case tomlval.LocalDate:
		return []byte(v.Date().String())

	case tomlval.LocalTime:
		return []byte(v.Time().String())

	case tomlval.LocalDateTime:
		return []byte(v.LocalDateTime().String())

	case tomlval.DateTime:
		return []byte(v.DateTime().Format(time.RFC3339Nano))

	default:
		return nil
	}
}

// canonicalFloat renders finite floats in the shortest round-trip decimal
// form. The non-finite values use the YAML tokens; the sign of NaN is not
// preserved.
func canonicalFloat(f float64) []byte {
	switch {
	case math.IsInf(f, 1):
		return []byte(".inf")
	case math.IsInf(f, -1):
		return []byte("-.inf")
	case math.IsNaN(f):
		return []byte(".nan")
	default:
		return strconv.AppendFloat(nil, f, 'g', -1, 64)
	}
}

// bridgeParseError converts a foreign parse failure into the library's error
// contract: a non-empty diagnostic, prefixed with the filename when one was
// supplied, wrapping [ErrParse].
func bridgeParseError(filename string, err error) error {
	msg := err.Error()

	var pe *unstable.ParserError
	if errors.As(err, &pe) && len(pe.Highlight) > 0 {
		msg = fmt.Sprintf("%s (near %q)", pe.Message, truncateHighlight(pe.Highlight))
	}

	if filename != "" {
		msg = filename + ": " + msg
	}

	return fmt.Errorf("%s: %w", msg, ErrParse)
}

func truncateHighlight(b []byte) []byte {
	const max = 32

	if len(b) > max {
		return b[:max]
	}

	return b
}
