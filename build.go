package jsontable

// Options controls how a document becomes a [Table].
type Options struct {
	// Columns is an explicit comma-separated column list. Empty means the
	// keys of the first record.
	Columns string
	// Window selects the records to show. The zero Window shows all.
	Window Window
	// Sort names the column to sort by. Empty keeps document order.
	Sort      string
	Direction Direction
	Policy    Policy
}

// Table is a header plus display rows, ready to render.
type Table struct {
	Header []string
	Rows   [][]string
}

// Build projects doc into a table. Columns are resolved from the whole
// document, then the window is applied, then the selected records are sorted
// and numbered from 1.
func Build(doc []Value, opts Options) (*Table, error) {
	columns, err := ResolveColumns(doc, opts.Columns)
	if err != nil {
		return nil, err
	}
	records, err := SelectRows(doc, opts.Window)
	if err != nil {
		return nil, err
	}
	if opts.Sort != "" {
		if err := SortRecords(records, opts.Sort, opts.Direction, opts.Policy); err != nil {
			return nil, err
		}
	}
	t := &Table{
		Header: append([]string{IndexColumn}, columns...),
		Rows:   make([][]string, len(records)),
	}
	for i, rec := range records {
		t.Rows[i] = FormatRow(i+1, rec, columns)
	}
	return t, nil
}
