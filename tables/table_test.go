package tables

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/xerrors"
	"gotest.tools/assert"
)

func fields() []Field {
	return []Field{
		{Name: "id", Role: ID},
		{Name: "class", Role: Label},
		{Name: "width", Role: Feature},
		{Name: "color", Role: Feature},
	}
}

func Test_NewValidates(t *testing.T) {
	_, err := New(fields(), nil)
	assert.Assert(t, xerrors.Is(err, ErrSchema), "empty dataset")

	_, err = New(fields(), [][]string{{"r1", "a", "1.0"}})
	assert.Assert(t, xerrors.Is(err, ErrSchema), "ragged row")

	_, err = New(fields(), [][]string{
		{"r1", "a", "1.0", "red"},
		{"r1", "b", "2.0", "blue"},
	})
	assert.Assert(t, xerrors.Is(err, ErrSchema), "duplicate identifier")

	_, err = New([]Field{{Name: "class", Role: Label}, {Name: "id", Role: ID}},
		[][]string{{"a", "r1"}})
	assert.Assert(t, xerrors.Is(err, ErrSchema), "roles out of order")
}

func Test_ClassesAndGroups(t *testing.T) {
	tab, err := New(fields(), [][]string{
		{"r1", "b", "1.0", "red"},
		{"r2", "a", "2.0", "blue"},
		{"r3", "a", "3.0", "red"},
		{"r4", UnknownLabel, "4.0", "red"},
		{"r5", "", "5.0", "blue"},
	})
	assert.NilError(t, err)
	assert.DeepEqual(t, tab.Classes(), []string{"a", "b"})
	assert.DeepEqual(t, tab.ByClass(), map[string][]int{"a": {1, 2}, "b": {0}})
	assert.Assert(t, !tab.Labeled(3))
	assert.Assert(t, !tab.Labeled(4))
}

func Test_Select(t *testing.T) {
	tab, err := New(fields(), [][]string{
		{"r1", "a", "1.0", "red"},
		{"r2", "b", "2.0", "blue"},
		{"r3", "a", "3.0", "red"},
	})
	assert.NilError(t, err)
	sub := tab.Select([]int{2, 0})
	assert.Equal(t, sub.Len(), 2)
	assert.Equal(t, sub.ID(0), "r3")
	assert.Equal(t, sub.ID(1), "r1")
	assert.DeepEqual(t, sub.FeatureNames(), []string{"width", "color"})
}

func Test_CSVRoundTrip(t *testing.T) {
	in := "id,class,width,color\nr1,a,1.5,red\nr2,b,2.5,blue\n"
	tab, err := ReadCSV(strings.NewReader(in))
	assert.NilError(t, err)
	assert.Equal(t, tab.Len(), 2)
	assert.Equal(t, tab.ID(0), "r1")
	assert.Equal(t, tab.Label(1), "b")
	assert.DeepEqual(t, tab.Features(0), []string{"1.5", "red"})

	var buf bytes.Buffer
	assert.NilError(t, tab.WriteCSV(&buf))
	assert.Equal(t, buf.String(), in)
}

func Test_ReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Assert(t, xerrors.Is(err, ErrSchema))

	_, err = ReadCSV(strings.NewReader("id,class,width\n"))
	assert.Assert(t, xerrors.Is(err, ErrSchema), "header only")
}
