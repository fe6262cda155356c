// Package jsontable renders a JSON array of objects as a text table.
//
// A document is decoded into [Value], an explicit tagged union that keeps
// object key order and tells int64, uint64 and float64 numbers apart:
//
//	doc, err := jsontable.DecodeDocument(os.Stdin)
//
// [Build] projects the records into a [Table]. Columns come from an explicit
// comma list or from the keys of the first record. Non-object elements are
// dropped, the [Window] is applied, and the remaining records are optionally
// sorted by one column. Every row starts with a 1-based "index" cell:
//
//	t, err := jsontable.Build(doc, jsontable.Options{
//		Columns:   "name, age",
//		Window:    jsontable.Window{Take: jsontable.Limit(20)},
//		Sort:      "age",
//		Direction: jsontable.Descending,
//	})
//
// [Render] writes the table. The default is a bordered box; Markdown, CSV,
// TSV, HTML, JSON, JSONL and YAML are also available:
//
//	err = jsontable.Render(os.Stdout, t, jsontable.RenderOptions{DisplayHeader: true})
//
// # Sorting
//
// [CompareValues] dispatches on the left value's kind. Values that cannot be
// compared, and records that lack the sort column, are handled by a [Policy]:
// [PolicyLast] moves records without the column to the end, [PolicyKeep]
// leaves them in place, and [PolicyStrict] fails with an [*IncomparableError].
// Sorting is always stable.
//
// # Cells
//
// [FormatCell] renders null as "null", arrays and objects as
// "not displayable", and missing fields as an empty cell. Strings in the
// "name" column have every " {}" removed.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrParse] — malformed JSON
//   - [ErrNotArray] — the root value is not an array
//   - [ErrEmptyDocument], [ErrNoRecords] — nothing to take columns from
//   - [ErrInvalidWindow] — negative skip or take, page below 1
//   - [ErrIncomparable] — strict sort hit an incomparable pair
//   - [ErrInvalidPolicy] — unknown sort policy name
//   - [ErrUnsupportedFormat], [ErrUnsupportedBorder] — unknown render option
package jsontable
