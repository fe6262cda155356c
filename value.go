package jsontable

import "math"

// Kind identifies which variant of a [Value] is active.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt   // int64
	KindUint  // uint64, only for integers beyond the int64 range
	KindFloat // float64
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int64",
	KindUint:   "uint64",
	KindFloat:  "float64",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Value is a decoded JSON node. Exactly one variant is active, reported by
// [Value.Kind]. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	arr  []Value
	obj  Object
}

// Member is a single key-value pair of an [Object].
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered collection of members, kept in document order.
type Object []Member

// Get returns the value stored under key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the member keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

func Null() Value                  { return Value{kind: KindNull} }
func NewBool(b bool) Value         { return Value{kind: KindBool, b: b} }
func NewInt(i int64) Value         { return Value{kind: KindInt, i: i} }
func NewUint(u uint64) Value       { return Value{kind: KindUint, u: u} }
func NewFloat(f float64) Value     { return Value{kind: KindFloat, f: f} }
func NewString(s string) Value     { return Value{kind: KindString, s: s} }
func NewArray(vs ...Value) Value   { return Value{kind: KindArray, arr: vs} }
func NewObject(ms ...Member) Value { return Value{kind: KindObject, obj: ms} }

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Str returns the string payload.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Array returns the elements of an array value.
func (v Value) Array() ([]Value, bool) { return v.arr, v.kind == KindArray }

// Object returns the members of an object value.
func (v Value) Object() (Object, bool) { return v.obj, v.kind == KindObject }

// Int views a numeric value as int64. It fails for floats and for unsigned
// values that do not fit.
func (v Value) Int() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindUint:
		if v.u <= math.MaxInt64 {
			return int64(v.u), true
		}
	}
	return 0, false
}

// Uint views a numeric value as uint64. It fails for floats and negative
// integers.
func (v Value) Uint() (uint64, bool) {
	switch v.kind {
	case KindUint:
		return v.u, true
	case KindInt:
		if v.i >= 0 {
			return uint64(v.i), true
		}
	}
	return 0, false
}

// Float views any numeric value as float64.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindUint:
		return float64(v.u), true
	}
	return 0, false
}
