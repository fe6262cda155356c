package jsontable

import (
	"fmt"
	"strings"
)

// ResolveColumns returns the ordered column names to display.
//
// When explicit is non-blank it is split with [SplitColumns] and returned
// as-is, without deduplication or validation against the records. Otherwise
// the keys of the first object in doc are returned in document order, even if
// that record is later skipped by the window.
func ResolveColumns(doc []Value, explicit string) ([]string, error) {
	if len(doc) == 0 {
		return nil, ErrEmptyDocument
	}
	if strings.TrimSpace(explicit) != "" {
		return SplitColumns(explicit), nil
	}
	rep, err := Representative(doc)
	if err != nil {
		return nil, err
	}
	return rep.Keys(), nil
}

// SplitColumns splits a comma-separated column list and trims each name.
func SplitColumns(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Representative returns the first object element of doc.
func Representative(doc []Value) (Object, error) {
	for _, v := range doc {
		if obj, ok := v.Object(); ok {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("%w: none of %d elements is an object", ErrNoRecords, len(doc))
}
