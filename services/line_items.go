package services

import (
	"fmt"
)

// RowField names an editable Row field for UpdateField.
type RowField string

const (
	FieldMenu RowField = "menu"
	FieldQty  RowField = "qty"
	FieldRate RowField = "rate"
)

// Row is a single line item in a quotation table. Qty, Rate and Total are
// kept as strings so that whatever the user typed survives a round trip;
// arithmetic goes through ParsedNumeric. Once ManualTotal is set the total
// is never recomputed from qty/rate again for the lifetime of the row.
type Row struct {
	ID          int    `json:"id"`
	Menu        string `json:"menu"`
	Qty         string `json:"qty"`
	Rate        string `json:"rate"`
	Total       string `json:"total"`
	ManualTotal bool   `json:"manualTotal"`
}

// IsEmpty reports whether every editable field of the row is blank.
func (r Row) IsEmpty() bool {
	return r.Menu == "" && r.Qty == "" && r.Rate == "" && r.Total == ""
}

// DefaultRowCount is the number of blank rows a new table starts with.
const DefaultRowCount = 5

// LineItemTable is an ordered collection of rows for one cost category.
// Row IDs are table-scoped and assigned sequentially; they are never reused
// after a removal, and removal does not renumber the survivors. Display
// numbering (S#) is positional and independent of IDs.
type LineItemTable struct {
	rows []Row
}

// NewLineItemTable returns a table pre-seeded with DefaultRowCount blank rows.
func NewLineItemTable() *LineItemTable {
	t := &LineItemTable{}
	for i := 0; i < DefaultRowCount; i++ {
		t.AddRow()
	}
	return t
}

// EmptyLineItemTable returns a table with no rows.
func EmptyLineItemTable() *LineItemTable {
	return &LineItemTable{}
}

// Rows returns a copy of the row list in display order.
func (t *LineItemTable) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of rows.
func (t *LineItemTable) Len() int {
	return len(t.rows)
}

// AddRow appends a blank row and returns its ID. The new ID is one past the
// highest ID currently in the table, or 1 for an empty table.
func (t *LineItemTable) AddRow() int {
	id := 1
	for _, r := range t.rows {
		if r.ID >= id {
			id = r.ID + 1
		}
	}
	t.rows = append(t.rows, Row{ID: id})
	return id
}

// UpdateField sets menu, qty or rate on the row with the given ID. When qty
// or rate change and the row has no manual total, the total is recomputed as
// qty*rate with 2 decimals, or blanked when either operand is not a number.
// Other rows are never touched.
func (t *LineItemTable) UpdateField(id int, field RowField, value string) error {
	r := t.row(id)
	if r == nil {
		return fmt.Errorf("row %d not found", id)
	}

	switch field {
	case FieldMenu:
		r.Menu = value
		return nil
	case FieldQty:
		r.Qty = value
	case FieldRate:
		r.Rate = value
	default:
		return fmt.Errorf("unknown row field %q", field)
	}

	if !r.ManualTotal {
		qty := Numeric(r.Qty)
		rate := Numeric(r.Rate)
		if qty.IsNumber() && rate.IsNumber() {
			r.Total = fmt.Sprintf("%.2f", qty.Float()*rate.Float())
		} else {
			r.Total = ""
		}
	}
	return nil
}

// SetManualTotal overwrites the row's total and marks it manual. This is the
// only operation that sets ManualTotal; nothing clears it short of removing
// the row.
func (t *LineItemTable) SetManualTotal(id int, value string) error {
	r := t.row(id)
	if r == nil {
		return fmt.Errorf("row %d not found", id)
	}
	r.Total = value
	r.ManualTotal = true
	return nil
}

// RemoveRow deletes the row with the given ID. Remaining rows keep their IDs
// and relative order.
func (t *LineItemTable) RemoveRow(id int) error {
	for i, r := range t.rows {
		if r.ID == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("row %d not found", id)
}

// SetRows replaces the table contents wholesale. Used when loading an
// existing quotation for editing.
func (t *LineItemTable) SetRows(rows []Row) {
	t.rows = make([]Row, len(rows))
	copy(t.rows, rows)
}

func (t *LineItemTable) row(id int) *Row {
	for i := range t.rows {
		if t.rows[i].ID == id {
			return &t.rows[i]
		}
	}
	return nil
}
