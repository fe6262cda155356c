package jsontable_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/jsontable"
)

func TestParseDirection(t *testing.T) {
	t.Parallel()
	assert.Equal(t, jsontable.Descending, jsontable.ParseDirection("desc"))
	assert.Equal(t, jsontable.Ascending, jsontable.ParseDirection("asc"))
	assert.Equal(t, jsontable.Ascending, jsontable.ParseDirection(""))
	assert.Equal(t, jsontable.Ascending, jsontable.ParseDirection("DESC"))
	assert.Equal(t, "desc", jsontable.Descending.String())
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()
	for _, name := range jsontable.Policies() {
		p, err := jsontable.ParsePolicy(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.String())
	}
	_, err := jsontable.ParsePolicy("first")
	require.ErrorIs(t, err, jsontable.ErrInvalidPolicy)
}

func TestCompareValues(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		a, b     jsontable.Value
		want     int
		wantComp bool
	}{
		"bool less":             {a: jsontable.NewBool(false), b: jsontable.NewBool(true), want: -1, wantComp: true},
		"bool equal":            {a: jsontable.NewBool(true), b: jsontable.NewBool(true), want: 0, wantComp: true},
		"int less":              {a: jsontable.NewInt(-3), b: jsontable.NewInt(2), want: -1, wantComp: true},
		"int greater":           {a: jsontable.NewInt(10), b: jsontable.NewInt(2), want: 1, wantComp: true},
		"uint vs uint":          {a: jsontable.NewUint(1 << 63), b: jsontable.NewUint(1<<63 + 1), want: -1, wantComp: true},
		"uint vs small int":     {a: jsontable.NewUint(1 << 63), b: jsontable.NewInt(5), want: 1, wantComp: true},
		"uint vs negative int":  {a: jsontable.NewUint(1 << 63), b: jsontable.NewInt(-5)},
		"int vs huge uint":      {a: jsontable.NewInt(5), b: jsontable.NewUint(1 << 63)},
		"float vs float":        {a: jsontable.NewFloat(1.5), b: jsontable.NewFloat(1.25), want: 1, wantComp: true},
		"float vs int":          {a: jsontable.NewFloat(1.5), b: jsontable.NewInt(2), want: -1, wantComp: true},
		"int vs float":          {a: jsontable.NewInt(2), b: jsontable.NewFloat(1.5)},
		"string lexicographic":  {a: jsontable.NewString("apple"), b: jsontable.NewString("banana"), want: -1, wantComp: true},
		"string bytewise":       {a: jsontable.NewString("Z"), b: jsontable.NewString("a"), want: -1, wantComp: true},
		"string vs int":         {a: jsontable.NewString("1"), b: jsontable.NewInt(1)},
		"bool vs int":           {a: jsontable.NewBool(true), b: jsontable.NewInt(1)},
		"null never compares":   {a: jsontable.Null(), b: jsontable.Null()},
		"array never compares":  {a: jsontable.NewArray(), b: jsontable.NewArray()},
		"object never compares": {a: jsontable.NewObject(), b: jsontable.NewObject()},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := jsontable.CompareValues(tt.a, tt.b)
			assert.Equal(t, tt.wantComp, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareDirection(t *testing.T) {
	t.Parallel()
	a := jsontable.Object{{Key: "n", Value: jsontable.NewInt(1)}}
	b := jsontable.Object{{Key: "n", Value: jsontable.NewInt(2)}}
	c, err := jsontable.Compare(a, b, "n", jsontable.Ascending)
	require.NoError(t, err)
	assert.Equal(t, -1, c)
	c, err = jsontable.Compare(a, b, "n", jsontable.Descending)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

func TestCompareIncomparable(t *testing.T) {
	t.Parallel()
	withN := jsontable.Object{{Key: "n", Value: jsontable.NewInt(1)}}
	withS := jsontable.Object{{Key: "n", Value: jsontable.NewString("x")}}
	without := jsontable.Object{{Key: "m", Value: jsontable.NewInt(1)}}

	_, err := jsontable.Compare(withN, without, "n", jsontable.Ascending)
	var ie *jsontable.IncomparableError
	require.ErrorAs(t, err, &ie)
	require.ErrorIs(t, err, jsontable.ErrIncomparable)
	assert.False(t, ie.MissingLeft)
	assert.True(t, ie.MissingRight)
	assert.Contains(t, err.Error(), `"n" is missing`)

	_, err = jsontable.Compare(withN, withS, "n", jsontable.Ascending)
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, jsontable.KindInt, ie.Left)
	assert.Equal(t, jsontable.KindString, ie.Right)
	assert.Contains(t, err.Error(), "int64 with string")
}

// record builds {"id": id, "v": v}; a nil v leaves the column out.
func record(id int64, v *jsontable.Value) jsontable.Object {
	obj := jsontable.Object{{Key: "id", Value: jsontable.NewInt(id)}}
	if v != nil {
		obj = append(obj, jsontable.Member{Key: "v", Value: *v})
	}
	return obj
}

func ptr(v jsontable.Value) *jsontable.Value { return &v }

func ids(t *testing.T, rows []jsontable.Object) []int64 {
	t.Helper()
	out := make([]int64, len(rows))
	for i, r := range rows {
		v, ok := r.Get("id")
		require.True(t, ok)
		out[i], _ = v.Int()
	}
	return out
}

func TestSortRecordsStable(t *testing.T) {
	t.Parallel()
	rows := []jsontable.Object{
		record(1, ptr(jsontable.NewString("b"))),
		record(2, ptr(jsontable.NewString("a"))),
		record(3, ptr(jsontable.NewString("b"))),
		record(4, ptr(jsontable.NewString("a"))),
		record(5, ptr(jsontable.NewString("c"))),
	}
	asc := slices.Clone(rows)
	require.NoError(t, jsontable.SortRecords(asc, "v", jsontable.Ascending, jsontable.PolicyLast))
	assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids(t, asc))

	desc := slices.Clone(rows)
	require.NoError(t, jsontable.SortRecords(desc, "v", jsontable.Descending, jsontable.PolicyLast))
	assert.Equal(t, []int64{5, 1, 3, 2, 4}, ids(t, desc))
}

func TestSortRecordsReversal(t *testing.T) {
	t.Parallel()
	rows := []jsontable.Object{
		record(1, ptr(jsontable.NewFloat(3.5))),
		record(2, ptr(jsontable.NewFloat(-1))),
		record(3, ptr(jsontable.NewFloat(10))),
		record(4, ptr(jsontable.NewFloat(0))),
	}
	asc := slices.Clone(rows)
	desc := slices.Clone(rows)
	require.NoError(t, jsontable.SortRecords(asc, "v", jsontable.Ascending, jsontable.PolicyKeep))
	require.NoError(t, jsontable.SortRecords(desc, "v", jsontable.Descending, jsontable.PolicyKeep))
	reversed := slices.Clone(asc)
	slices.Reverse(reversed)
	assert.Equal(t, reversed, desc)
	assert.Equal(t, []int64{2, 4, 1, 3}, ids(t, asc))
}

func TestSortRecordsMissingLast(t *testing.T) {
	t.Parallel()
	rows := []jsontable.Object{
		record(1, nil),
		record(2, ptr(jsontable.NewInt(20))),
		record(3, nil),
		record(4, ptr(jsontable.NewInt(10))),
	}
	asc := slices.Clone(rows)
	require.NoError(t, jsontable.SortRecords(asc, "v", jsontable.Ascending, jsontable.PolicyLast))
	assert.Equal(t, []int64{4, 2, 1, 3}, ids(t, asc))

	desc := slices.Clone(rows)
	require.NoError(t, jsontable.SortRecords(desc, "v", jsontable.Descending, jsontable.PolicyLast))
	assert.Equal(t, []int64{2, 4, 1, 3}, ids(t, desc))
}

func TestSortRecordsKeepMismatchedKinds(t *testing.T) {
	t.Parallel()
	rows := []jsontable.Object{
		record(1, ptr(jsontable.NewString("x"))),
		record(2, ptr(jsontable.NewBool(true))),
	}
	require.NoError(t, jsontable.SortRecords(rows, "v", jsontable.Descending, jsontable.PolicyKeep))
	assert.Equal(t, []int64{1, 2}, ids(t, rows))
}

func TestSortRecordsStrict(t *testing.T) {
	t.Parallel()
	tests := map[string][]jsontable.Object{
		"missing column": {record(1, ptr(jsontable.NewInt(1))), record(2, nil)},
		"mismatched kind": {
			record(1, ptr(jsontable.NewInt(1))),
			record(2, ptr(jsontable.NewString("1"))),
		},
	}
	for name, rows := range tests {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := jsontable.SortRecords(rows, "v", jsontable.Ascending, jsontable.PolicyStrict)
			require.ErrorIs(t, err, jsontable.ErrIncomparable)
		})
	}
}

func TestSortRecordsStrictComparable(t *testing.T) {
	t.Parallel()
	rows := []jsontable.Object{
		record(1, ptr(jsontable.NewInt(3))),
		record(2, ptr(jsontable.NewInt(1))),
	}
	require.NoError(t, jsontable.SortRecords(rows, "v", jsontable.Ascending, jsontable.PolicyStrict))
	assert.Equal(t, []int64{2, 1}, ids(t, rows))
}
