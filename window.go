package jsontable

import (
	"fmt"
	"math"
)

// DefaultPageSize is the page size used when only a page number is given.
const DefaultPageSize = 10

// Take bounds the number of rows kept by a [Window]. The zero Take is
// unbounded.
type Take struct {
	n       int
	bounded bool
}

// Unbounded keeps every remaining row.
func Unbounded() Take { return Take{} }

// Limit keeps at most n rows.
func Limit(n int) Take { return Take{n: n, bounded: true} }

// Max returns the limit and whether one is set.
func (t Take) Max() (int, bool) { return t.n, t.bounded }

func (t Take) String() string {
	if !t.bounded {
		return "all"
	}
	return fmt.Sprintf("%d", t.n)
}

// Window selects a contiguous range of records: Skip records are dropped,
// then at most Take are kept.
type Window struct {
	Skip int
	Take Take
}

// NewWindow validates skip and take.
func NewWindow(skip int, take Take) (Window, error) {
	w := Window{Skip: skip, Take: take}
	if err := w.validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func (w Window) validate() error {
	if w.Skip < 0 {
		return fmt.Errorf("%w: skip %d is negative", ErrInvalidWindow, w.Skip)
	}
	if n, ok := w.Take.Max(); ok && n < 0 {
		return fmt.Errorf("%w: take %d is negative", ErrInvalidWindow, n)
	}
	return nil
}

// Paginate returns the window for a 1-based page of the given size. A page
// whose offset does not fit in an int skips every record.
func Paginate(page, size int) (Window, error) {
	if page < 1 {
		return Window{}, fmt.Errorf("%w: page %d must be at least 1", ErrInvalidWindow, page)
	}
	if size < 1 {
		return Window{}, fmt.Errorf("%w: page size %d must be at least 1", ErrInvalidWindow, size)
	}
	skip := math.MaxInt
	if page-1 <= math.MaxInt/size {
		skip = (page - 1) * size
	}
	return Window{Skip: skip, Take: Limit(size)}, nil
}

// SelectRows keeps the object elements of doc, in order, and applies w. A
// negative skip or take returns [ErrInvalidWindow].
func SelectRows(doc []Value, w Window) ([]Object, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	rows := make([]Object, 0, len(doc))
	skipped := 0
	for _, v := range doc {
		obj, ok := v.Object()
		if !ok {
			continue
		}
		if skipped < w.Skip {
			skipped++
			continue
		}
		if n, ok := w.Take.Max(); ok && len(rows) >= n {
			break
		}
		rows = append(rows, obj)
	}
	return rows, nil
}
