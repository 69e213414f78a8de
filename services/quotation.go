package services

// RateMode is the pricing basis of a quotation. It only affects labeling
// and whether the per-head note applies; totals math is identical.
type RateMode string

const (
	RatePerHead RateMode = "perhead"
	RatePerKG   RateMode = "perkg"
)

// Valid reports whether the rate mode is one of the known values.
func (m RateMode) Valid() bool {
	return m == RatePerHead || m == RatePerKG
}

// Label returns the display suffix for table headings.
func (m RateMode) Label() string {
	if m == RatePerKG {
		return "(Per KG)"
	}
	return "(Per Head)"
}

// ServiceType selects which cost categories a quotation covers and, with
// that, which tables are visible and contribute to the grand total.
type ServiceType string

const (
	ServiceFood           ServiceType = "F"
	ServiceDecoration     ServiceType = "D"
	ServiceFoodDecoration ServiceType = "F+D"
	ServiceFoodService    ServiceType = "F+S"
)

// Valid reports whether the service type is one of the known values.
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceFood, ServiceDecoration, ServiceFoodDecoration, ServiceFoodService:
		return true
	}
	return false
}

// ShowsFood reports whether the food table is visible for this service type.
func (s ServiceType) ShowsFood() bool {
	return s == ServiceFood || s == ServiceFoodDecoration || s == ServiceFoodService
}

// ShowsDecoration reports whether the decoration table is visible.
func (s ServiceType) ShowsDecoration() bool {
	return s == ServiceDecoration || s == ServiceFoodDecoration
}

// ClientInfo carries the free-form client and event fields of a quotation.
// Director is a combo code picked from the directors collection; DateTime
// is the combined date+time string the client composed.
type ClientInfo struct {
	ContactNo string `json:"contactNo"`
	Name      string `json:"name"`
	Venue     string `json:"venue"`
	DateTime  string `json:"dateTime"`
	Director  string `json:"director"`
	NoOfGuest string `json:"noOfGuest"`
}

// Quotation is the single source of truth for one quotation editing session.
// All totals are derived on read from current row and override state, so an
// edit can never leave a stale aggregate behind.
type Quotation struct {
	Client      ClientInfo
	RateMode    RateMode
	ServiceType ServiceType
	PerHeadInfo string

	FoodRows       *LineItemTable
	DecorationRows *LineItemTable

	// Table-level overrides; empty string means "use the auto sum".
	ManualFoodTotal string
	ManualDecTotal  string
}

// NewQuotation returns a fresh quotation with default selectors and both
// tables pre-seeded with blank rows.
func NewQuotation() *Quotation {
	return &Quotation{
		RateMode:       RatePerHead,
		ServiceType:    ServiceFood,
		FoodRows:       NewLineItemTable(),
		DecorationRows: NewLineItemTable(),
	}
}

// Table returns the named table ("food" or "decoration"), or nil.
func (q *Quotation) Table(name string) *LineItemTable {
	switch name {
	case "food":
		return q.FoodRows
	case "decoration":
		return q.DecorationRows
	}
	return nil
}

// FoodAutoTotal is the arithmetic sum of the food rows' totals, regardless
// of any override or visibility.
func (q *Quotation) FoodAutoTotal() float64 {
	return AutoSum(q.FoodRows)
}

// DecAutoTotal is the arithmetic sum of the decoration rows' totals.
func (q *Quotation) DecAutoTotal() float64 {
	return AutoSum(q.DecorationRows)
}

// FinalFoodTotal is the effective food total: the manual override when set,
// else the auto sum. A hidden food table contributes nothing.
func (q *Quotation) FinalFoodTotal() float64 {
	if !q.ServiceType.ShowsFood() {
		return 0
	}
	return EffectiveTotal(q.ManualFoodTotal, q.FoodAutoTotal())
}

// FinalDecTotal is the effective decoration total, zero when hidden.
func (q *Quotation) FinalDecTotal() float64 {
	if !q.ServiceType.ShowsDecoration() {
		return 0
	}
	return EffectiveTotal(q.ManualDecTotal, q.DecAutoTotal())
}

// GrandTotal is the sum of the effective totals of all visible tables.
func (q *Quotation) GrandTotal() float64 {
	return q.FinalFoodTotal() + q.FinalDecTotal()
}
