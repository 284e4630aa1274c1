package treeml

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// EmitJSON renders the tree as compact JSON, preserving child order.
func (t *Tree) EmitJSON() ([]byte, error) {
	return t.emitJSON(false)
}

// EmitJSONPretty renders the tree as indented JSON, preserving child order.
func (t *Tree) EmitJSONPretty() ([]byte, error) {
	return t.emitJSON(true)
}

func (t *Tree) emitJSON(pretty bool) ([]byte, error) {
	w := &jsonWriter{buf: &bytes.Buffer{}, pretty: pretty}

	err := w.node(t, t.Root())
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", err, ErrEncode)
	}

	w.buf.WriteByte('\n')

	return w.buf.Bytes(), nil
}

// jsonWriter emits the tree directly; encoding/json cannot preserve map
// order, so it is used for string escaping only.
type jsonWriter struct {
	buf    *bytes.Buffer
	pretty bool
	depth  int
}

func (w *jsonWriter) node(t *Tree, id NodeID) error {
	switch t.Type(id) {
	case TypeMap:
		children := t.Children(id)
		if len(children) == 0 {
			w.buf.WriteString("{}")
			return nil
		}

		w.buf.WriteByte('{')
		w.depth++

		for i, child := range children {
			if i > 0 {
				w.buf.WriteByte(',')
			}

			w.newline()

			err := w.str(string(t.Key(child)))
			if err != nil {
				return err
			}

			w.buf.WriteByte(':')
			if w.pretty {
				w.buf.WriteByte(' ')
			}

			err = w.node(t, child)
			if err != nil {
				return err
			}
		}

		w.depth--
		w.newline()
		w.buf.WriteByte('}')

		return nil

	case TypeSeq:
		children := t.Children(id)
		if len(children) == 0 {
			w.buf.WriteString("[]")
			return nil
		}

		w.buf.WriteByte('[')
		w.depth++

		for i, child := range children {
			if i > 0 {
				w.buf.WriteByte(',')
			}

			w.newline()

			err := w.node(t, child)
			if err != nil {
				return err
			}
		}

		w.depth--
		w.newline()
		w.buf.WriteByte(']')

		return nil

	case TypeScalar:
		return w.scalar(t, id)

	default:
		w.buf.WriteString("null")
		return nil
	}
}

func (w *jsonWriter) scalar(t *Tree, id NodeID) error {
	val := string(t.Val(id))

	if t.Flags(id)&FlagQuoted == 0 {
		if tok, ok := jsonToken(val); ok {
			w.buf.WriteString(tok)
			return nil
		}
	}

	return w.str(val)
}

func (w *jsonWriter) str(s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	w.buf.Write(b)

	return nil
}

func (w *jsonWriter) newline() {
	if !w.pretty {
		return
	}

	w.buf.WriteByte('\n')

	for i := 0; i < w.depth; i++ {
		w.buf.WriteString("  ")
	}
}

// jsonToken re-infers unquoted scalar text as a JSON literal where a valid
// one exists. Non-finite floats have no JSON form and fall through to
// strings, as do dates and anything else that is not a JSON token.
func jsonToken(s string) (string, bool) {
	switch s {
	case "true", "false":
		return s, true
	}

	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) && json.Valid([]byte(s)) {
		return s, true
	}

	return "", false
}
