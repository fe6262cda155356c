package jsontable

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Direction is the sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ParseDirection returns Descending for "desc" and Ascending for anything
// else, including the empty string.
func ParseDirection(s string) Direction {
	if s == "desc" {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Policy decides how a sort treats records it cannot compare: a record
// missing the sort column, or two values whose kinds do not compare.
type Policy int

const (
	// PolicyLast sorts records missing the column after all others, in both
	// directions. Values of mismatched kinds compare equal.
	PolicyLast Policy = iota
	// PolicyKeep treats every incomparable pair as equal, so those records
	// keep their relative order.
	PolicyKeep
	// PolicyStrict aborts the sort on the first incomparable pair.
	PolicyStrict
)

var policyNames = map[Policy]string{
	PolicyLast:   "last",
	PolicyKeep:   "keep",
	PolicyStrict: "strict",
}

func (p Policy) String() string { return policyNames[p] }

// Policies returns the accepted policy names.
func Policies() []string { return []string{"last", "keep", "strict"} }

// ParsePolicy parses a policy name.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidPolicy, s, strings.Join(Policies(), ", "))
}

// IncomparableError describes a pair of records that could not be ordered.
type IncomparableError struct {
	Column       string
	Left, Right  Kind
	MissingLeft  bool
	MissingRight bool
}

func (e *IncomparableError) Error() string {
	switch {
	case e.MissingLeft || e.MissingRight:
		return fmt.Sprintf("%s: column %q is missing from a record", ErrIncomparable, e.Column)
	default:
		return fmt.Sprintf("%s: column %q compares %s with %s", ErrIncomparable, e.Column, e.Left, e.Right)
	}
}

func (e *IncomparableError) Unwrap() error { return ErrIncomparable }

// CompareValues orders a against b. The comparison is chosen by a's kind and
// b is viewed as that kind: a float compares with any number, an int64 with
// any integer that fits in int64, a uint64 with any non-negative integer.
// Booleans and strings only compare with their own kind. The second result is
// false when the pair is incomparable.
func CompareValues(a, b Value) (int, bool) {
	switch a.Kind() {
	case KindBool:
		x, _ := a.Bool()
		y, ok := b.Bool()
		if !ok {
			return 0, false
		}
		return compareBool(x, y), true
	case KindFloat:
		x, _ := a.Float()
		y, ok := b.Float()
		if !ok {
			return 0, false
		}
		return cmp.Compare(x, y), true
	case KindInt:
		x, _ := a.Int()
		y, ok := b.Int()
		if !ok {
			return 0, false
		}
		return cmp.Compare(x, y), true
	case KindUint:
		x, _ := a.Uint()
		y, ok := b.Uint()
		if !ok {
			return 0, false
		}
		return cmp.Compare(x, y), true
	case KindString:
		x, _ := a.Str()
		y, ok := b.Str()
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	default:
		return 0, false
	}
}

func compareBool(x, y bool) int {
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	default:
		return 1
	}
}

// Compare orders two records by the value under column. A missing column or
// an incomparable pair returns an [*IncomparableError].
func Compare(a, b Object, column string, dir Direction) (int, error) {
	va, okA := a.Get(column)
	vb, okB := b.Get(column)
	if !okA || !okB {
		return 0, &IncomparableError{Column: column, Left: va.Kind(), Right: vb.Kind(), MissingLeft: !okA, MissingRight: !okB}
	}
	c, ok := CompareValues(va, vb)
	if !ok {
		return 0, &IncomparableError{Column: column, Left: va.Kind(), Right: vb.Kind()}
	}
	if dir == Descending {
		c = -c
	}
	return c, nil
}

// SortRecords stably sorts records by column. Records that compare equal
// keep their relative order in both directions.
func SortRecords(records []Object, column string, dir Direction, p Policy) error {
	var sortErr error
	slices.SortStableFunc(records, func(a, b Object) int {
		c, err := Compare(a, b, column, dir)
		if err == nil {
			return c
		}
		var ie *IncomparableError
		if !errors.As(err, &ie) {
			return 0
		}
		switch p {
		case PolicyStrict:
			if sortErr == nil {
				sortErr = err
			}
			return 0
		case PolicyLast:
			return compareMissing(ie)
		default:
			return 0
		}
	})
	return sortErr
}

// compareMissing places a record without the column after one that has it.
func compareMissing(e *IncomparableError) int {
	switch {
	case e.MissingLeft && !e.MissingRight:
		return 1
	case !e.MissingLeft && e.MissingRight:
		return -1
	default:
		return 0
	}
}
