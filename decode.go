package jsontable

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// Decode parses exactly one JSON value from r. Object members keep their
// document order; a repeated key replaces the earlier value in place.
//
// Integer literals decode as [KindInt] when they fit in an int64 and as
// [KindUint] when they only fit in a uint64. All other numbers decode as
// [KindFloat].
func Decode(r io.Reader) (Value, error) {
	dec := jsontext.NewDecoder(r, jsontext.AllowDuplicateNames(true))
	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return Value{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return v, nil
}

// DecodeDocument parses r and returns the elements of its root array.
func DecodeDocument(r io.Reader) ([]Value, error) {
	v, err := Decode(r)
	if err != nil {
		return nil, err
	}
	arr, ok := v.Array()
	if !ok {
		return nil, fmt.Errorf("%w: root is %s", ErrNotArray, v.Kind())
	}
	return arr, nil
}

func decodeValue(dec *jsontext.Decoder) (Value, error) {
	switch dec.PeekKind() {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return Value{}, err
		}
		return parseNumber(strings.TrimSpace(string(raw)))
	}
	tok, err := dec.ReadToken()
	if err != nil {
		return Value{}, err
	}
	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return NewBool(tok.Bool()), nil
	case '"':
		return NewString(tok.String()), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %s", tok.Kind())
	}
}

func decodeObject(dec *jsontext.Decoder) (Value, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return Value{}, fmt.Errorf("read object open: %w", err)
	}
	obj := Object{}
	seen := make(map[string]int)
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, fmt.Errorf("read object key: %w", err)
		}
		key := tok.String()
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("read value for key %q: %w", key, err)
		}
		if i, ok := seen[key]; ok {
			obj[i].Value = val
			continue
		}
		seen[key] = len(obj)
		obj = append(obj, Member{Key: key, Value: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return Value{}, fmt.Errorf("read object close: %w", err)
	}
	return NewObject(obj...), nil
}

func decodeArray(dec *jsontext.Decoder) (Value, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return Value{}, fmt.Errorf("read array open: %w", err)
	}
	arr := make([]Value, 0)
	for dec.PeekKind() != ']' {
		elem, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("read array element %d: %w", len(arr), err)
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return Value{}, fmt.Errorf("read array close: %w", err)
	}
	return NewArray(arr...), nil
}

func parseNumber(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return NewInt(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return NewUint(u), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("number %s out of range", s)
	}
	return NewFloat(f), nil
}
