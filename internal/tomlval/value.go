// Package tomlval resolves go-toml's low-level expression stream into a typed
// value graph that preserves declaration order.
//
// The high-level toml.Unmarshal API decodes tables into Go maps, which loses
// the order keys were declared in. This package drives the parser from
// go-toml/v2/unstable directly and performs the same table resolution the
// library's own unmarshaler does internally: [table] headers, [[array]]
// tables, dotted keys, and inline tables, with duplicate definitions
// rejected.
package tomlval

import (
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Kind is the type tag of a [Value].
type Kind int

const (
	Invalid Kind = iota
	Table
	Array
	String
	Integer
	Float
	Bool
	LocalDate
	LocalTime
	LocalDateTime
	DateTime
)

func (k Kind) String() string {
	switch k {
	case Table:
		return "table"
	case Array:
		return "array"
	case String:
		return "string"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case LocalDate:
		return "local date"
	case LocalTime:
		return "local time"
	case LocalDateTime:
		return "local date-time"
	case DateTime:
		return "date-time"
	default:
		return "invalid"
	}
}

// Entry is one key/value pair of a table, in declaration order.
type Entry struct {
	Key   string
	Value *Value
}

// Value is one node of the foreign value graph: a table with ordered entries,
// an array, or a typed scalar.
type Value struct {
	kind Kind

	str  string
	num  int64
	fnum float64
	b    bool
	date toml.LocalDate
	tod  toml.LocalTime
	ldt  toml.LocalDateTime
	dt   time.Time

	items   []*Value
	entries []Entry
	index   map[string]int

	// table bookkeeping during resolution
	explicit   bool // defined by a [header]
	inline     bool // inline table; closed to any later extension
	dotted     bool // created by a dotted key; closed to [header] definition
	arrayTable bool // array created by [[header]]
}

func newTable() *Value {
	return &Value{
		kind:  Table,
		index: map[string]int{},
	}
}

func (v *Value) Kind() Kind { return v.kind }

// Str returns the payload of a String value.
func (v *Value) Str() string { return v.str }

// Int returns the payload of an Integer value.
func (v *Value) Int() int64 { return v.num }

// Float returns the payload of a Float value.
func (v *Value) Float() float64 { return v.fnum }

// Bool returns the payload of a Bool value.
func (v *Value) Bool() bool { return v.b }

// Date returns the payload of a LocalDate value.
func (v *Value) Date() toml.LocalDate { return v.date }

// Time returns the payload of a LocalTime value.
func (v *Value) Time() toml.LocalTime { return v.tod }

// LocalDateTime returns the payload of a LocalDateTime value.
func (v *Value) LocalDateTime() toml.LocalDateTime { return v.ldt }

// DateTime returns the payload of an offset DateTime value.
func (v *Value) DateTime() time.Time { return v.dt }

// Entries returns a table's key/value pairs in declaration order.
func (v *Value) Entries() []Entry { return v.entries }

// Items returns an array's elements in order.
func (v *Value) Items() []*Value { return v.items }

// Len returns the number of entries or items of a table or array.
func (v *Value) Len() int {
	if v.kind == Table {
		return len(v.entries)
	}

	return len(v.items)
}

// Get returns the value for key in a table, or nil.
func (v *Value) Get(key string) *Value {
	i, found := v.index[key]
	if !found {
		return nil
	}

	return v.entries[i].Value
}

func (v *Value) insert(key string, val *Value) {
	v.index[key] = len(v.entries)
	v.entries = append(v.entries, Entry{Key: key, Value: val})
}
