package models

import (
	"slices"
	"time"
)

// Source describes where a table was loaded from.
type Source struct {
	Path     string    `json:"path"`
	Sheet    string    `json:"sheet,omitempty"`
	Checksum string    `json:"checksum"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Table is an immutable set of bookings. Views produced by Where share the
// parent's records and only carry an index list.
type Table struct {
	records []Booking
	index   []int // nil selects every record
	columns map[Column]struct{}
	source  Source
}

// NewTable takes ownership of records. Callers must not modify them afterwards.
func NewTable(records []Booking, columns []Column, src Source) *Table {
	set := make(map[Column]struct{}, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return &Table{records: records, columns: set, source: src}
}

func (t *Table) Len() int {
	if t.index == nil {
		return len(t.records)
	}
	return len(t.index)
}

// At returns the i-th row of the view. The returned booking is shared and must not be modified.
func (t *Table) At(i int) *Booking {
	if t.index == nil {
		return &t.records[i]
	}
	return &t.records[t.index[i]]
}

// Where returns a view holding the rows matching pred, in table order.
func (t *Table) Where(pred func(*Booking) bool) *Table {
	index := make([]int, 0)
	for i := 0; i < t.Len(); i++ {
		if pred(t.At(i)) {
			if t.index == nil {
				index = append(index, i)
			} else {
				index = append(index, t.index[i])
			}
		}
	}
	return &Table{records: t.records, index: index, columns: t.columns, source: t.source}
}

// Rows copies the view's bookings into a new slice.
func (t *Table) Rows() []Booking {
	out := make([]Booking, t.Len())
	for i := range out {
		out[i] = *t.At(i)
	}
	return out
}

func (t *Table) Has(c Column) bool {
	_, ok := t.columns[c]
	return ok
}

// Missing returns the columns from cols the table does not carry.
func (t *Table) Missing(cols ...Column) []Column {
	var missing []Column
	for _, c := range cols {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Columns returns the present columns in canonical order.
func (t *Table) Columns() []Column {
	out := make([]Column, 0, len(t.columns))
	for _, c := range AllColumns {
		if t.Has(c) {
			out = append(out, c)
		}
	}
	return slices.Clip(out)
}

func (t *Table) Source() Source {
	return t.source
}

// DateRange returns the earliest and latest booking date. Both are zero for an empty table.
func (t *Table) DateRange() (from, to time.Time) {
	for i := 0; i < t.Len(); i++ {
		d := t.At(i).Date
		if i == 0 || d.Before(from) {
			from = d
		}
		if i == 0 || d.After(to) {
			to = d
		}
	}
	return from, to
}
