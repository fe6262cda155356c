package jsontable

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// layout is the resolved geometry of a table: which rows are drawn and how
// wide each column is.
type layout struct {
	header      []string
	rows        [][]string
	widths      []int
	headerStyle func(string) string
}

func newLayout(t *Table, o RenderOptions) layout {
	l := layout{rows: t.Rows, headerStyle: o.HeaderStyle}
	if o.DisplayHeader {
		l.header = t.Header
	}
	l.widths = computeWidths(colCount(t.Header, t.Rows), l.header, l.rows)
	if o.MaxWidth > 0 {
		for i, w := range l.widths {
			if w > o.MaxWidth {
				l.widths[i] = o.MaxWidth
			}
		}
	}
	return l
}

func writeTable(w io.Writer, t *Table, o RenderOptions) error {
	l := newLayout(t, o)
	if len(l.widths) == 0 {
		return nil
	}
	if o.Border == BorderNone {
		return renderPlainTable(w, l)
	}
	bc, ok := borderSets[o.Border]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedBorder, o.Border)
	}
	return renderBorderedTable(w, l, bc)
}

// colCount is the widest of the header and rows. Short rows are padded with
// empty cells when drawn.
func colCount(header []string, rows [][]string) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, l layout) error {
	if len(l.header) > 0 {
		if err := writePlainRow(w, l.header, l.widths, l.headerStyle); err != nil {
			return err
		}
		if err := writePlainSep(w, l.widths); err != nil {
			return err
		}
	}
	for _, row := range l.rows {
		if err := writePlainRow(w, row, l.widths, nil); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int, style func(string) string) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = styleCell(cellAt(cells, i), width, style)
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, l layout, bc borderChars) error {
	if err := drawHLine(w, l.widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if len(l.header) > 0 {
		if err := drawBorderedRow(w, l.header, l.widths, bc.vertical, l.headerStyle); err != nil {
			return err
		}
		if err := drawHLine(w, l.widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, row := range l.rows {
		if err := drawBorderedRow(w, row, l.widths, bc.vertical, nil); err != nil {
			return err
		}
	}
	return drawHLine(w, l.widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, vert string, style func(string) string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(styleCell(cellAt(cells, i), width, style))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func styleCell(s string, width int, style func(string) string) string {
	formatted := formatTableCell(s, width)
	if style != nil {
		formatted = style(formatted)
	}
	return formatted
}

func formatTableCell(s string, width int) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return padCell(s, width)
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
