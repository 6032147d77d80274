package tables

import (
	"sort"

	"golang.org/x/xerrors"
)

// ErrSchema is the kind of all dataset shape violations: missing or duplicate
// identifiers, empty data, ragged rows, mismatched feature columns.
var ErrSchema = xerrors.New("schema error")

// UnknownLabel is the sentinel class value marking prediction-only records.
const UnknownLabel = "unknown"

// Role of a field within a table schema.
type Role int

const (
	ID Role = iota
	Label
	Feature
)

// Field is a named column with a declared role.
type Field struct {
	Name string
	Role Role
}

/*
Table is a rectangular dataset: one identifier field, one label field and a
fixed ordered set of feature fields. Cells are kept as text; numeric
interpretation happens at the classifier boundary. A Table is validated once
on construction and treated as immutable afterwards.
*/
type Table struct {
	fields []Field
	rows   [][]string
}

/*
New builds a Table from a schema and row data, validating the invariants the
rest of the system relies on: at least one row, identifier field first, label
field second, every row rectangular, identifiers unique.
*/
func New(fields []Field, rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, xerrors.Errorf("empty dataset: %w", ErrSchema)
	}
	if len(fields) < 2 || fields[0].Role != ID || fields[1].Role != Label {
		return nil, xerrors.Errorf("schema must start with identifier and label fields: %w", ErrSchema)
	}
	for _, f := range fields[2:] {
		if f.Role != Feature {
			return nil, xerrors.Errorf("field %q: only identifier and label may precede features: %w", f.Name, ErrSchema)
		}
	}
	seen := map[string]struct{}{}
	for i, r := range rows {
		if len(r) != len(fields) {
			return nil, xerrors.Errorf("row %d has %d cells, schema has %d fields: %w", i, len(r), len(fields), ErrSchema)
		}
		if _, ok := seen[r[0]]; ok {
			return nil, xerrors.Errorf("duplicate identifier %q: %w", r[0], ErrSchema)
		}
		seen[r[0]] = struct{}{}
	}
	return &Table{fields: fields, rows: rows}, nil
}

func (t *Table) Len() int        { return len(t.rows) }
func (t *Table) Fields() []Field { return t.fields }

// ID returns the identifier of row i.
func (t *Table) ID(i int) string { return t.rows[i][0] }

// Label returns the raw class cell of row i; see Labeled.
func (t *Table) Label(i int) string { return t.rows[i][1] }

// Labeled reports whether row i carries a usable class label.
func (t *Table) Labeled(i int) bool {
	return t.rows[i][1] != "" && t.rows[i][1] != UnknownLabel
}

// Features returns the feature cells of row i, schema order.
func (t *Table) Features(i int) []string { return t.rows[i][2:] }

// FeatureNames returns the feature field names, schema order.
func (t *Table) FeatureNames() []string {
	names := make([]string, len(t.fields)-2)
	for i, f := range t.fields[2:] {
		names[i] = f.Name
	}
	return names
}

/*
Classes returns the sorted set of distinct labels among labeled rows.
Prediction-only rows (empty or unknown label) do not contribute.
*/
func (t *Table) Classes() []string {
	set := map[string]struct{}{}
	for i := range t.rows {
		if t.Labeled(i) {
			set[t.rows[i][1]] = struct{}{}
		}
	}
	classes := make([]string, 0, len(set))
	for c := range set {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}

// ByClass groups row indices by label; unlabeled rows are skipped.
func (t *Table) ByClass() map[string][]int {
	groups := map[string][]int{}
	for i := range t.rows {
		if t.Labeled(i) {
			groups[t.rows[i][1]] = append(groups[t.rows[i][1]], i)
		}
	}
	return groups
}

// Select returns a new Table holding the given rows, same schema.
// Index order is preserved, so a seeded split stays reproducible.
func (t *Table) Select(index []int) *Table {
	rows := make([][]string, len(index))
	for i, j := range index {
		rows[i] = t.rows[j]
	}
	return &Table{fields: t.fields, rows: rows}
}
