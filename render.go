package jsontable

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatTSV      Format = "tsv"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatJSONL    Format = "jsonl"
	FormatYAML     Format = "yaml"
)

var formats = []Format{FormatTable, FormatMarkdown, FormatCSV, FormatTSV, FormatHTML, FormatJSON, FormatJSONL, FormatYAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, s, formatNames())
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderASCII   BorderStyle = iota // +-+|
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
	BorderNone                       // No borders, space-separated columns
)

var borderNames = []string{
	BorderASCII:   "ascii",
	BorderRounded: "rounded",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
	BorderNone:    "none",
}

func (b BorderStyle) String() string {
	if b < 0 || int(b) >= len(borderNames) {
		return "invalid"
	}
	return borderNames[b]
}

// Borders returns the accepted border style names.
func Borders() []string {
	out := make([]string, len(borderNames))
	copy(out, borderNames)
	return out
}

// ParseBorder parses a border style name.
func ParseBorder(s string) (BorderStyle, error) {
	for i, name := range borderNames {
		if name == s {
			return BorderStyle(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedBorder, s, strings.Join(borderNames, ", "))
}

// RenderOptions controls how a [Table] is written.
type RenderOptions struct {
	Format Format
	// Border applies to FormatTable only.
	Border BorderStyle
	// DisplayHeader includes the header row. Markdown always has one.
	DisplayHeader bool
	// HeaderStyle wraps each padded header cell in FormatTable. Nil means
	// no styling. It runs after padding, so escape codes never affect widths.
	HeaderStyle func(string) string
	// MaxWidth truncates wider cells with "..." in FormatTable. Zero means no
	// limit.
	MaxWidth int
}

// Render writes t to w in the requested format. An empty Format means
// FormatTable.
func Render(w io.Writer, t *Table, o RenderOptions) error {
	switch o.Format {
	case FormatTable, "":
		return writeTable(w, t, o)
	case FormatMarkdown:
		return writeMarkdown(w, t)
	case FormatCSV:
		return writeDelimited(w, t, ',', o.DisplayHeader)
	case FormatTSV:
		return writeDelimited(w, t, '\t', o.DisplayHeader)
	case FormatHTML:
		return writeHTML(w, t, o.DisplayHeader)
	case FormatJSON:
		return writeJSON(w, t)
	case FormatJSONL:
		return writeJSONL(w, t)
	case FormatYAML:
		return writeYAML(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, o.Format)
	}
}

// Marshal renders t and returns the bytes.
func Marshal(t *Table, o RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, t, o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatNames() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
