package tomlval

import (
	"fmt"

	"github.com/pelletier/go-toml/v2/unstable"
)

type builder struct {
	parser  unstable.Parser
	data    []byte
	root    *Value
	current *Value
}

// Parse resolves a TOML document into its value graph. The root is always a
// Table. Errors are either *unstable.ParserError (syntax) or *Error
// (semantic), both carrying source position context.
func Parse(data []byte) (*Value, error) {
	b := &builder{data: data}
	b.root = newTable()
	b.current = b.root
	b.parser.Reset(data)

	for b.parser.NextExpression() {
		expr := b.parser.Expression()

		var err error

		switch expr.Kind {
		case unstable.KeyValue:
			err = b.assign(b.current, expr)
		case unstable.Table:
			err = b.table(expr)
		case unstable.ArrayTable:
			err = b.arrayTable(expr)
		}

		if err != nil {
			return nil, err
		}
	}

	if err := b.parser.Error(); err != nil {
		return nil, err
	}

	return b.root, nil
}

func (b *builder) errorf(n *unstable.Node, format string, args ...any) error {
	line, col := position(b.data, int(n.Raw.Offset))

	return &Error{
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Column:  col,
	}
}

func (b *builder) keys(n *unstable.Node) []string {
	parts := []string{}

	it := n.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}

	return parts
}

// table handles a [a.b.c] header.
func (b *builder) table(expr *unstable.Node) error {
	parts := b.keys(expr)
	cur := b.root

	for _, part := range parts[:len(parts)-1] {
		var err error

		cur, err = b.descendHeader(cur, part, expr)
		if err != nil {
			return err
		}
	}

	key := parts[len(parts)-1]

	next := cur.Get(key)
	if next == nil {
		next = newTable()
		cur.insert(key, next)
	}

	switch {
	case next.kind != Table:
		if next.kind == Array && next.arrayTable {
			return b.errorf(expr, "table %q already defined as an array of tables", key)
		}

		return b.errorf(expr, "key %q already has a value", key)
	case next.inline:
		return b.errorf(expr, "inline table %q cannot be extended", key)
	case next.explicit:
		return b.errorf(expr, "table %q already defined", key)
	case next.dotted:
		return b.errorf(expr, "table %q already defined using dotted keys", key)
	}

	next.explicit = true
	b.current = next

	return nil
}

// arrayTable handles a [[a.b.c]] header.
func (b *builder) arrayTable(expr *unstable.Node) error {
	parts := b.keys(expr)
	cur := b.root

	for _, part := range parts[:len(parts)-1] {
		var err error

		cur, err = b.descendHeader(cur, part, expr)
		if err != nil {
			return err
		}
	}

	key := parts[len(parts)-1]

	next := cur.Get(key)
	if next == nil {
		next = &Value{kind: Array, arrayTable: true}
		cur.insert(key, next)
	}

	if next.kind != Array || !next.arrayTable {
		return b.errorf(expr, "key %q is not an array of tables", key)
	}

	elem := newTable()
	elem.explicit = true
	next.items = append(next.items, elem)
	b.current = elem

	return nil
}

// descendHeader resolves one intermediate part of a header path, creating
// implicit tables as needed. Array-of-tables intermediates resolve to their
// most recent element.
func (b *builder) descendHeader(cur *Value, key string, expr *unstable.Node) (*Value, error) {
	next := cur.Get(key)
	if next == nil {
		next = newTable()
		cur.insert(key, next)

		return next, nil
	}

	switch {
	case next.kind == Table && next.inline:
		return nil, b.errorf(expr, "inline table %q cannot be extended", key)
	case next.kind == Table:
		return next, nil
	case next.kind == Array && next.arrayTable:
		return next.items[len(next.items)-1], nil
	default:
		return nil, b.errorf(expr, "key %q already has a value", key)
	}
}

// assign handles a key = value expression relative to tbl, resolving any
// dotted key parts.
func (b *builder) assign(tbl *Value, expr *unstable.Node) error {
	parts := b.keys(expr)
	cur := tbl

	for _, part := range parts[:len(parts)-1] {
		next := cur.Get(part)
		if next == nil {
			next = newTable()
			next.dotted = true
			cur.insert(part, next)
			cur = next

			continue
		}

		switch {
		case next.kind != Table:
			return b.errorf(expr, "key %q already has a value", part)
		case next.inline:
			return b.errorf(expr, "inline table %q cannot be extended", part)
		case next.explicit:
			return b.errorf(expr, "cannot extend table %q with dotted keys", part)
		}

		cur = next
	}

	key := parts[len(parts)-1]

	if cur.Get(key) != nil {
		return b.errorf(expr, "key %q already defined", key)
	}

	val, err := b.value(expr.Value())
	if err != nil {
		return err
	}

	cur.insert(key, val)

	return nil
}

// value converts one parsed value node, recursing into arrays and inline
// tables.
func (b *builder) value(n *unstable.Node) (*Value, error) {
	switch n.Kind {
	case unstable.String:
		return &Value{kind: String, str: string(n.Data)}, nil

	case unstable.Integer:
		v, err := decodeInteger(n.Data)
		if err != nil {
			return nil, b.errorf(n, "invalid integer %q", n.Data)
		}

		return &Value{kind: Integer, num: v}, nil

	case unstable.Float:
		v, err := decodeFloat(n.Data)
		if err != nil {
			return nil, b.errorf(n, "invalid float %q", n.Data)
		}

		return &Value{kind: Float, fnum: v}, nil

	case unstable.Bool:
		return &Value{kind: Bool, b: string(n.Data) == "true"}, nil

	case unstable.LocalDate:
		d, err := decodeLocalDate(n.Data)
		if err != nil {
			return nil, b.errorf(n, "invalid date %q", n.Data)
		}

		return &Value{kind: LocalDate, date: d}, nil

	case unstable.LocalTime:
		t, err := decodeLocalTime(n.Data)
		if err != nil {
			return nil, b.errorf(n, "invalid time %q", n.Data)
		}

		return &Value{kind: LocalTime, tod: t}, nil

	case unstable.LocalDateTime:
		dt, err := decodeLocalDateTime(n.Data)
		if err != nil {
			return nil, b.errorf(n, "invalid date-time %q", n.Data)
		}

		return &Value{kind: LocalDateTime, ldt: dt}, nil

	case unstable.DateTime:
		dt, err := decodeDateTime(n.Data)
		if err != nil {
			return nil, b.errorf(n, "invalid date-time %q", n.Data)
		}

		return &Value{kind: DateTime, dt: dt}, nil

	case unstable.Array:
		arr := &Value{kind: Array}

		it := n.Children()
		for it.Next() {
			item, err := b.value(it.Node())
			if err != nil {
				return nil, err
			}

			arr.items = append(arr.items, item)
		}

		return arr, nil

	case unstable.InlineTable:
		tbl := newTable()

		it := n.Children()
		for it.Next() {
			if err := b.assign(tbl, it.Node()); err != nil {
				return nil, err
			}
		}

		// Closed only once construction is complete; dotted keys within
		// the table itself may still extend it above.
		tbl.inline = true

		return tbl, nil

	default:
		return nil, b.errorf(n, "unexpected %s node", n.Kind)
	}
}
