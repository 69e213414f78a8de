package services

import (
	"reflect"
	"testing"
)

func quotationForPayload() *Quotation {
	q := NewQuotation()
	q.Client = ClientInfo{
		ContactNo: "9832011456",
		Name:      "Mehta Wedding Reception",
		Venue:     "Grand Palm Banquet Hall",
		DateTime:  "2026-11-21 19:30",
		Director:  "DIR-01",
		NoOfGuest: "350",
	}
	q.ServiceType = ServiceFoodDecoration
	q.PerHeadInfo = "Buffet, 3 starters"

	q.FoodRows.UpdateField(1, FieldMenu, "Chicken Biryani")
	q.FoodRows.UpdateField(1, FieldQty, "350")
	q.FoodRows.UpdateField(1, FieldRate, "450")
	q.DecorationRows.UpdateField(1, FieldMenu, "Stage Floral Backdrop")
	q.DecorationRows.UpdateField(1, FieldQty, "1")
	q.DecorationRows.UpdateField(1, FieldRate, "45000")
	return q
}

func TestBuildSavePayload(t *testing.T) {
	q := quotationForPayload()
	p := BuildSavePayload(q)

	if p.ContactName != "Mehta Wedding Reception" || p.ContactNo != "9832011456" {
		t.Errorf("client fields not carried: %+v", p)
	}
	if p.RateMode != "perhead" || p.ServiceType != "F+D" {
		t.Errorf("selectors = %q/%q", p.RateMode, p.ServiceType)
	}
	if p.PerHeadInfo != "Buffet, 3 starters" {
		t.Errorf("PerHeadInfo = %q", p.PerHeadInfo)
	}
	if p.FoodTotal != 157500 || p.DecorTotal != 45000 || p.GrandTotal != 202500 {
		t.Errorf("totals = %d/%d/%d", p.FoodTotal, p.DecorTotal, p.GrandTotal)
	}

	// Blank seeded rows must be filtered out of the details.
	if len(p.FoodDetails) != 1 || len(p.DecorationDetails) != 1 {
		t.Fatalf("details = %d food, %d decoration rows", len(p.FoodDetails), len(p.DecorationDetails))
	}
	want := PayloadRow{Menu: "Chicken Biryani", Qty: "350", Rate: "450", Total: "157500"}
	if p.FoodDetails[0] != want {
		t.Errorf("food row = %+v, want %+v", p.FoodDetails[0], want)
	}
}

func TestBuildSavePayloadBlanksPerHeadInfoForPerKG(t *testing.T) {
	q := quotationForPayload()
	q.RateMode = RatePerKG
	p := BuildSavePayload(q)
	if p.PerHeadInfo != "" {
		t.Errorf("PerHeadInfo = %q, want blank for perkg", p.PerHeadInfo)
	}
}

func TestBuildSavePayloadHiddenTableIsEmptyList(t *testing.T) {
	q := quotationForPayload()
	q.ServiceType = ServiceFood
	p := BuildSavePayload(q)

	if p.DecorationDetails == nil || len(p.DecorationDetails) != 0 {
		t.Errorf("DecorationDetails = %#v, want empty non-nil list", p.DecorationDetails)
	}
	if p.DecorTotal != 0 {
		t.Errorf("DecorTotal = %d, want 0 when hidden", p.DecorTotal)
	}
	if p.GrandTotal != 157500 {
		t.Errorf("GrandTotal = %d, want food only", p.GrandTotal)
	}
}

func TestBuildSavePayloadZeroFillsPartialRows(t *testing.T) {
	q := NewQuotation()
	q.FoodRows.UpdateField(1, FieldMenu, "Live Counter")
	p := BuildSavePayload(q)

	if len(p.FoodDetails) != 1 {
		t.Fatalf("FoodDetails = %d rows, want 1", len(p.FoodDetails))
	}
	want := PayloadRow{Menu: "Live Counter", Qty: "0", Rate: "0", Total: "0"}
	if p.FoodDetails[0] != want {
		t.Errorf("row = %+v, want %+v", p.FoodDetails[0], want)
	}
}

func TestBuildSavePayloadRoundsTotals(t *testing.T) {
	q := NewQuotation()
	q.FoodRows.UpdateField(1, FieldQty, "3")
	q.FoodRows.UpdateField(1, FieldRate, "33.5") // 100.50
	p := BuildSavePayload(q)

	if p.FoodDetails[0].Total != "101" {
		t.Errorf("row total = %q, want rounded 101", p.FoodDetails[0].Total)
	}
	if p.FoodTotal != 101 || p.GrandTotal != 101 {
		t.Errorf("totals = %d/%d, want 101", p.FoodTotal, p.GrandTotal)
	}
}

func TestBuildSavePayloadIsIdempotent(t *testing.T) {
	q := quotationForPayload()
	first := BuildSavePayload(q)
	second := BuildSavePayload(q)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("payloads differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestSavePayloadValidate(t *testing.T) {
	valid := BuildSavePayload(quotationForPayload())

	tests := []struct {
		name   string
		mutate func(*SavePayload)
		field  string
	}{
		{"missing contact no", func(p *SavePayload) { p.ContactNo = "" }, "contactNo"},
		{"missing name", func(p *SavePayload) { p.ContactName = "" }, "contactName"},
		{"missing venue", func(p *SavePayload) { p.Venue = "" }, "venue"},
		{"bad rate mode", func(p *SavePayload) { p.RateMode = "hourly" }, "rateMode"},
		{"bad service type", func(p *SavePayload) { p.ServiceType = "Z" }, "serviceType"},
	}

	if errs := valid.Validate(); len(errs) != 0 {
		t.Fatalf("valid payload got errors: %v", errs)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			errs := p.Validate()
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("Validate() = %v, want error on %q", errs, tt.field)
			}
		})
	}
}
