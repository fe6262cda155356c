package jsontable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/jsontable"
)

func TestResolveColumnsFromFirstRecord(t *testing.T) {
	t.Parallel()
	doc := mustDoc(t, `[{"b":1,"a":2,"c":3},{"x":1}]`)
	cols, err := jsontable.ResolveColumns(doc, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, cols)
}

func TestResolveColumnsSkipsLeadingNonObjects(t *testing.T) {
	t.Parallel()
	doc := mustDoc(t, `[1, "two", {"k":true}]`)
	cols, err := jsontable.ResolveColumns(doc, "  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, cols)
}

func TestResolveColumnsExplicit(t *testing.T) {
	t.Parallel()
	doc := mustDoc(t, `[{"a":1}]`)
	tests := map[string]struct {
		explicit string
		want     []string
	}{
		"trimmed":          {explicit: " b , a ", want: []string{"b", "a"}},
		"duplicates kept":  {explicit: "a,a,b", want: []string{"a", "a", "b"}},
		"unknown names":    {explicit: "zzz", want: []string{"zzz"}},
		"empty token kept": {explicit: "a,,b", want: []string{"a", "", "b"}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cols, err := jsontable.ResolveColumns(doc, tt.explicit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cols)
		})
	}
}

func TestResolveColumnsEmptyDocument(t *testing.T) {
	t.Parallel()
	_, err := jsontable.ResolveColumns(nil, "")
	require.ErrorIs(t, err, jsontable.ErrEmptyDocument)
	_, err = jsontable.ResolveColumns([]jsontable.Value{}, "a,b")
	require.ErrorIs(t, err, jsontable.ErrEmptyDocument)
}

func TestResolveColumnsNoRecords(t *testing.T) {
	t.Parallel()
	doc := mustDoc(t, `[1, [2], null]`)
	_, err := jsontable.ResolveColumns(doc, "")
	require.ErrorIs(t, err, jsontable.ErrNoRecords)

	cols, err := jsontable.ResolveColumns(doc, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, cols)
}

func TestSplitColumns(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"one"}, jsontable.SplitColumns("one"))
	assert.Equal(t, []string{"a", "b", "c"}, jsontable.SplitColumns("a,\tb ,c"))
}
