package tables

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"golang.org/x/xerrors"
)

/*
ReadCSV ingests a dataset from CSV. The header row names the fields; the first
column is the record identifier, the second the class label, the rest are
features. Cells are trimmed, nothing else is interpreted here.
*/
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	head, err := cr.Read()
	if err == io.EOF {
		return nil, xerrors.Errorf("empty dataset: %w", ErrSchema)
	}
	if err != nil {
		return nil, xerrors.Errorf("reading header: %w", err)
	}
	if len(head) < 2 {
		return nil, xerrors.Errorf("header needs identifier and label columns: %w", ErrSchema)
	}
	fields := make([]Field, len(head))
	for i, name := range head {
		f := Field{Name: strings.TrimSpace(name), Role: Feature}
		switch i {
		case 0:
			f.Role = ID
		case 1:
			f.Role = Label
		}
		fields[i] = f
	}
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xerrors.Errorf("reading row %d: %w", len(rows)+1, err)
		}
		row := make([]string, len(rec))
		for i, cell := range rec {
			row[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, row)
	}
	return New(fields, rows)
}

// ReadCSVFile is ReadCSV over a file path.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// WriteCSV serializes the table back to CSV, header first.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	head := make([]string, len(t.fields))
	for i, f := range t.fields {
		head[i] = f.Name
	}
	if err := cw.Write(head); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
