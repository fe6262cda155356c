package jsontable

import (
	"strconv"
	"strings"
)

const (
	// IndexColumn labels the leading row-number column.
	IndexColumn = "index"
	// NotDisplayable is the cell text for array and object values.
	NotDisplayable = "not displayable"
	// NameColumn is the column whose strings have nameSuffix removed.
	NameColumn = "name"

	nameSuffix = " {}"
)

// FormatCell renders one field. A field that is not present renders empty.
func FormatCell(column string, v Value, present bool) string {
	if !present {
		return ""
	}
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindBool:
		b, _ := v.Bool()
		return strconv.FormatBool(b)
	case KindInt:
		i, _ := v.Int()
		return strconv.FormatInt(i, 10)
	case KindUint:
		u, _ := v.Uint()
		return strconv.FormatUint(u, 10)
	case KindFloat:
		f, _ := v.Float()
		return strconv.FormatFloat(f, 'f', -1, 64)
	case KindString:
		s, _ := v.Str()
		if column == NameColumn {
			return strings.ReplaceAll(s, nameSuffix, "")
		}
		return s
	default:
		return NotDisplayable
	}
}

// FormatRow renders the display row for record: its 1-based index followed by
// one cell per column.
func FormatRow(index int, record Object, columns []string) []string {
	row := make([]string, 0, len(columns)+1)
	row = append(row, strconv.Itoa(index))
	for _, col := range columns {
		v, ok := record.Get(col)
		row = append(row, FormatCell(col, v, ok))
	}
	return row
}
