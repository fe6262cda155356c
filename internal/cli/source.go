package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/bjaus/jsontable"
	"github.com/bjaus/jsontable/internal/config"
)

// ErrRead is returned when the source cannot be read.
var ErrRead = errors.New("could not read source")

const stdinSource = "-"

func sourceName(source string) string {
	if source == "" || source == stdinSource {
		return "<stdin>"
	}
	return source
}

// readDocument reads the whole source, from stdin when source is empty or
// "-", and decodes it as a JSON array.
func readDocument(stdin io.Reader, source string) ([]jsontable.Value, error) {
	var (
		data []byte
		err  error
	)
	if source == "" || source == stdinSource {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w from %s: %w", ErrRead, sourceName(source), err)
	}
	doc, err := jsontable.DecodeDocument(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sourceName(source), err)
	}
	return doc, nil
}

// headerStyle returns a bold style for the header cells, or nil when color is
// off. In auto mode the header is bold only when w is a terminal.
func headerStyle(w io.Writer, mode string) func(string) string {
	switch mode {
	case config.ColorNever:
		return nil
	case config.ColorAuto:
		if !isTerminal(w) {
			return nil
		}
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	bold := r.NewStyle().Bold(true)
	return func(s string) string { return bold.Render(s) }
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
