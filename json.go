package jsontable

import (
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// writeJSON writes the rows as one array of objects keyed by header name.
// Keys follow header order; repeated column names are kept.
func writeJSON(w io.Writer, t *Table) error {
	enc := jsontext.NewEncoder(w, jsontext.AllowDuplicateNames(true), jsontext.WithIndent("  "))
	if err := enc.WriteToken(jsontext.ArrayStart); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := encodeRow(enc, t.Header, row); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.ArrayEnd)
}

// writeJSONL writes one compact object per row.
func writeJSONL(w io.Writer, t *Table) error {
	enc := jsontext.NewEncoder(w, jsontext.AllowDuplicateNames(true))
	for _, row := range t.Rows {
		if err := encodeRow(enc, t.Header, row); err != nil {
			return err
		}
	}
	return nil
}

func encodeRow(enc *jsontext.Encoder, header, row []string) error {
	if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
		return err
	}
	for i, key := range header {
		if err := enc.WriteToken(jsontext.String(key)); err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.String(cellAt(row, i))); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.ObjectEnd)
}
