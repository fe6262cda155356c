package jsontable

import (
	"encoding/csv"
	"io"
)

// writeDelimited writes CSV (comma) or TSV (tab). Both use encoding/csv so
// cells containing the delimiter, quotes or newlines stay parseable.
func writeDelimited(w io.Writer, t *Table, comma rune, header bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if header {
		if err := cw.Write(t.Header); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
