package services

import (
	"testing"

	"caterquote/testhelpers"
)

func TestQuoteItemAmount(t *testing.T) {
	item := QuoteItem{UnitPrice: 450, Quantity: 350}
	if got := item.Amount(); got != 157500 {
		t.Errorf("Amount() = %v, want 157500", got)
	}
}

func TestQuoteSectionTotal(t *testing.T) {
	section := QuoteSection{Items: []QuoteItem{
		{UnitPrice: 100, Quantity: 2},
		{UnitPrice: 50, Quantity: 3},
	}}
	if got := section.Total(); got != 350 {
		t.Errorf("Total() = %v, want 350", got)
	}
	if got := (QuoteSection{}).Total(); got != 0 {
		t.Errorf("empty section Total() = %v, want 0", got)
	}
}

func TestBalanceMayBeNegative(t *testing.T) {
	d := &QuoteExportData{GrandTotal: 1000, Advance: 1500}
	if got := d.Balance(); got != -500 {
		t.Errorf("Balance() = %v, want -500", got)
	}
}

func TestBuildQuoteExportData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := CompanyInfo{Name: "Shahi Caterers"}

	event := testhelpers.CreateTestEvent(t, app, "Mehta Wedding Reception", "FN-1001", 612500, 200000)
	testhelpers.CreateTestOrderItem(t, app, event.Id, "decoration", "Stage Floral Backdrop", 1, 45000, 1)
	testhelpers.CreateTestOrderItem(t, app, event.Id, "food", "Paneer Butter Masala", 350, 300, 2)
	testhelpers.CreateTestOrderItem(t, app, event.Id, "food", "Chicken Biryani", 350, 450, 1)
	testhelpers.CreateTestOrderItem(t, app, event.Id, "services", "Live Chaat Counter Staff", 4, 2500, 1)

	data, err := BuildQuoteExportData(app, company, event.Id)
	if err != nil {
		t.Fatalf("BuildQuoteExportData: %v", err)
	}

	if data.EventName != "Mehta Wedding Reception" || data.FunctionCode != "FN-1001" {
		t.Errorf("event fields = %q/%q", data.EventName, data.FunctionCode)
	}

	// Sections come back in fixed order, empties included.
	if len(data.Sections) != len(SectionOrder) {
		t.Fatalf("Sections = %d, want %d", len(data.Sections), len(SectionOrder))
	}
	for i, s := range SectionOrder {
		if data.Sections[i].Title != s.Title {
			t.Errorf("Sections[%d].Title = %q, want %q", i, data.Sections[i].Title, s.Title)
		}
	}

	food := data.Sections[0]
	if len(food.Items) != 2 {
		t.Fatalf("food items = %d, want 2", len(food.Items))
	}
	// sort_order, not insertion order, decides item order.
	if food.Items[0].Description != "Chicken Biryani" {
		t.Errorf("food.Items[0] = %q, want Chicken Biryani first", food.Items[0].Description)
	}

	if len(data.Sections[1].Items) != 0 {
		t.Errorf("beverages should be empty, got %d items", len(data.Sections[1].Items))
	}

	// Grand total is the stored event total, not the recomputed item sum.
	if data.GrandTotal != 612500 {
		t.Errorf("GrandTotal = %v, want stored 612500", data.GrandTotal)
	}
	if data.Advance != 200000 {
		t.Errorf("Advance = %v", data.Advance)
	}
	if data.AmountInWords != AmountInWords(612500) {
		t.Errorf("AmountInWords = %q", data.AmountInWords)
	}
}

func TestBuildQuoteExportDataUnknownEvent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if _, err := BuildQuoteExportData(app, CompanyInfo{}, "missing"); err == nil {
		t.Error("BuildQuoteExportData with unknown event = nil error")
	}
}
