package services

import (
	"math"
	"strconv"
)

// PayloadRow is one serialized line item in a save payload. Empty qty/rate
// are transmitted as "0"; the total is integer-rounded.
type PayloadRow struct {
	Menu  string `json:"menu"`
	Qty   string `json:"qty"`
	Rate  string `json:"rate"`
	Total string `json:"total"`
}

// SavePayload is the wire shape the save endpoint consumes. Totals carry no
// decimals; the client's name field travels as contactName.
type SavePayload struct {
	ContactNo         string       `json:"contactNo"`
	ContactName       string       `json:"contactName"`
	Venue             string       `json:"venue"`
	DateTime          string       `json:"dateTime"`
	Director          string       `json:"director"`
	NoOfGuest         string       `json:"noOfGuest"`
	RateMode          string       `json:"rateMode"`
	ServiceType       string       `json:"serviceType"`
	PerHeadInfo       string       `json:"perHeadInfo"`
	FoodTotal         int          `json:"foodTotal"`
	DecorTotal        int          `json:"decorTotal"`
	GrandTotal        int          `json:"grandTotal"`
	FoodDetails       []PayloadRow `json:"foodDetails"`
	DecorationDetails []PayloadRow `json:"decorationDetails"`
}

// BuildSavePayload serializes a quotation for the save endpoint. Rows with
// every field blank are dropped; a table hidden by the service type
// contributes an empty detail list. Building is a pure read of the model,
// so building twice off an unchanged quotation yields identical payloads.
func BuildSavePayload(q *Quotation) SavePayload {
	perHeadInfo := ""
	if q.RateMode == RatePerHead {
		perHeadInfo = q.PerHeadInfo
	}

	foodDetails := []PayloadRow{}
	if q.ServiceType.ShowsFood() {
		foodDetails = payloadRows(q.FoodRows)
	}
	decorDetails := []PayloadRow{}
	if q.ServiceType.ShowsDecoration() {
		decorDetails = payloadRows(q.DecorationRows)
	}

	return SavePayload{
		ContactNo:         q.Client.ContactNo,
		ContactName:       q.Client.Name,
		Venue:             q.Client.Venue,
		DateTime:          q.Client.DateTime,
		Director:          q.Client.Director,
		NoOfGuest:         q.Client.NoOfGuest,
		RateMode:          string(q.RateMode),
		ServiceType:       string(q.ServiceType),
		PerHeadInfo:       perHeadInfo,
		FoodTotal:         roundInt(q.FinalFoodTotal()),
		DecorTotal:        roundInt(q.FinalDecTotal()),
		GrandTotal:        roundInt(q.GrandTotal()),
		FoodDetails:       foodDetails,
		DecorationDetails: decorDetails,
	}
}

// Validate checks the required fields before any network transmission.
// It returns a field→message map, empty when the payload is acceptable.
func (p SavePayload) Validate() map[string]string {
	errs := make(map[string]string)
	if p.ContactNo == "" {
		errs["contactNo"] = "Contact number is required"
	}
	if p.ContactName == "" {
		errs["contactName"] = "Client name is required"
	}
	if p.Venue == "" {
		errs["venue"] = "Venue is required"
	}
	if !RateMode(p.RateMode).Valid() {
		errs["rateMode"] = "Rate mode is required"
	}
	if !ServiceType(p.ServiceType).Valid() {
		errs["serviceType"] = "Service type is required"
	}
	return errs
}

func payloadRows(t *LineItemTable) []PayloadRow {
	out := []PayloadRow{}
	for _, r := range t.Rows() {
		if r.IsEmpty() {
			continue
		}
		out = append(out, PayloadRow{
			Menu:  r.Menu,
			Qty:   orZero(r.Qty),
			Rate:  orZero(r.Rate),
			Total: roundedTotal(r.Total),
		})
	}
	return out
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func roundedTotal(s string) string {
	if s == "" {
		return "0"
	}
	return strconv.Itoa(roundInt(Numeric(s).Float()))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
