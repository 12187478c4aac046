package bench

import (
	"github.com/google/uuid"
)

// Table is an append-only list of rows tagged with a run identifier.
// It is not safe for concurrent mutation; the runner fills per-worker
// buffers and appends only after merging.
type Table struct {
	id   uuid.UUID
	rows []Row
}

// NewTable returns an empty table with a fresh run ID.
func NewTable() *Table {
	return &Table{id: uuid.New()}
}

// RunID identifies the run that produced the table.
func (t *Table) RunID() uuid.UUID { return t.id }

// Append adds rows at the end.
func (t *Table) Append(rows ...Row) {
	t.rows = append(t.rows, rows...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns a copy of the rows in insertion order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)

	return out
}

// Concat appends the rows of others, in order, and returns t.
// The run ID of t is kept.
func (t *Table) Concat(others ...*Table) *Table {
	for _, o := range others {
		if o == nil {
			continue
		}
		t.rows = append(t.rows, o.rows...)
	}

	return t
}

// Filter returns the rows produced by algorithm, in insertion order.
func (t *Table) Filter(algorithm string) []Row {
	var out []Row
	for _, r := range t.rows {
		if r.Algorithm == algorithm {
			out = append(out, r)
		}
	}

	return out
}
