package services

import (
	"fmt"
	"log"
	"math"

	"github.com/pocketbase/pocketbase"
)

// CompanyInfo is the letterhead block printed on every document. It comes
// from configuration, not from the database.
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
}

// QuoteItem is one itemized line of a quotation document.
type QuoteItem struct {
	Description  string  `json:"description"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     float64 `json:"quantity"`
	DeliveredQty float64 `json:"delivered_qty"`
	StkCode      string  `json:"stk_code"`
}

// Amount is the line amount, quantity times unit price.
func (i QuoteItem) Amount() float64 {
	return i.Quantity * i.UnitPrice
}

// QuoteSection groups the items of one cost category for rendering.
type QuoteSection struct {
	Title string
	Items []QuoteItem
}

// Total sums the section's line amounts.
func (s QuoteSection) Total() float64 {
	var sum float64
	for _, it := range s.Items {
		sum += it.Amount()
	}
	return sum
}

// SectionOrder is the fixed rendering order of document sections, keyed by
// the order_items section value.
var SectionOrder = []struct {
	Key   string
	Title string
}{
	{"food", "Food"},
	{"beverages", "Beverages"},
	{"decoration", "Decoration"},
	{"services", "Services"},
}

// QuoteExportData holds everything needed to render one quotation document.
// GrandTotal is the event's stored total, deliberately not recomputed from
// the sections, so the document always mirrors what the event was saved
// with even if item details changed afterwards.
type QuoteExportData struct {
	Company CompanyInfo

	EventName    string
	ContactNo    string
	Venue        string
	Director     string
	NoOfGuest    string
	EventDate    string
	EventTime    string
	FunctionCode string

	Sections []QuoteSection

	GrandTotal    float64
	Advance       float64
	AmountInWords string
}

// Balance is the outstanding amount. It may be negative when the advance
// exceeds the total; the document prints it as-is.
func (d *QuoteExportData) Balance() float64 {
	return d.GrandTotal - d.Advance
}

// BuildQuoteExportData assembles document data from the events and
// order_items collections. Sections with no items stay empty and render
// nothing downstream.
func BuildQuoteExportData(app *pocketbase.PocketBase, company CompanyInfo, eventID string) (*QuoteExportData, error) {
	event, err := app.FindRecordById("events", eventID)
	if err != nil {
		return nil, fmt.Errorf("event not found: %w", err)
	}

	itemRecords, err := app.FindRecordsByFilter(
		"order_items",
		"event = {:eventId}",
		"sort_order",
		0,
		0,
		map[string]any{"eventId": eventID},
	)
	if err != nil {
		log.Printf("quote_export: could not fetch items for event %s: %v", eventID, err)
		itemRecords = nil
	}

	sections := make([]QuoteSection, len(SectionOrder))
	for i, s := range SectionOrder {
		sections[i] = QuoteSection{Title: s.Title}
	}
	for _, rec := range itemRecords {
		item := QuoteItem{
			Description:  rec.GetString("description"),
			UnitPrice:    rec.GetFloat("unit_price"),
			Quantity:     rec.GetFloat("quantity"),
			DeliveredQty: rec.GetFloat("delivered_qty"),
			StkCode:      rec.GetString("stk_code"),
		}
		for i, s := range SectionOrder {
			if rec.GetString("section") == s.Key {
				sections[i].Items = append(sections[i].Items, item)
				break
			}
		}
	}

	total := event.GetFloat("total")

	return &QuoteExportData{
		Company: company,

		EventName:    event.GetString("name"),
		ContactNo:    event.GetString("contact_no"),
		Venue:        event.GetString("venue"),
		Director:     event.GetString("director"),
		NoOfGuest:    event.GetString("no_of_guest"),
		EventDate:    event.GetString("event_date"),
		EventTime:    event.GetString("event_time"),
		FunctionCode: event.GetString("function_code"),

		Sections: sections,

		GrandTotal:    total,
		Advance:       event.GetFloat("advance"),
		AmountInWords: AmountInWords(int(math.Round(total))),
	}, nil
}
