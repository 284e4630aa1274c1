package tomlval

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Error is a TOML semantic error with a position in the source document.
type Error struct {
	Message string
	Line    int // 1-based; 0 when unknown
	Column  int // 1-based
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
	}

	return e.Message
}

// position converts a byte offset into 1-based line numbers and rune columns.
func position(data []byte, offset int) (int, int) {
	if offset > len(data) {
		offset = len(data)
	}

	line, col := 1, 1

	for _, c := range string(data[:offset]) {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return line, col
}

// decodeInteger parses a TOML integer token: optional sign, optional
// 0x/0o/0b base prefix, underscore separators.
func decodeInteger(b []byte) (int64, error) {
	s := strings.ReplaceAll(string(b), "_", "")

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return strconv.ParseInt(s[2:], 16, 64)
		case 'o', 'O':
			return strconv.ParseInt(s[2:], 8, 64)
		case 'b', 'B':
			return strconv.ParseInt(s[2:], 2, 64)
		}
	}

	return strconv.ParseInt(s, 10, 64)
}

// decodeFloat parses a TOML float token, including the inf and nan spellings.
func decodeFloat(b []byte) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(string(b), "_", ""), 64)
}

// normalizeDateTime uppercases the date/time separator and zone designator,
// which TOML allows in lowercase, and accepts a space in place of T.
func normalizeDateTime(b []byte) string {
	s := string(b)
	s = strings.ReplaceAll(s, " ", "T")
	s = strings.ReplaceAll(s, "t", "T")
	s = strings.ReplaceAll(s, "z", "Z")

	return s
}

func decodeLocalDate(b []byte) (toml.LocalDate, error) {
	var d toml.LocalDate
	err := d.UnmarshalText(b)

	return d, err
}

func decodeLocalTime(b []byte) (toml.LocalTime, error) {
	var t toml.LocalTime
	err := t.UnmarshalText(b)

	return t, err
}

func decodeLocalDateTime(b []byte) (toml.LocalDateTime, error) {
	var dt toml.LocalDateTime
	err := dt.UnmarshalText([]byte(normalizeDateTime(b)))

	return dt, err
}

func decodeDateTime(b []byte) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, normalizeDateTime(b))
}
