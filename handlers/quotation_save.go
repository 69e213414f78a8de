package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"caterquote/services"
)

// HandleQuotationSave persists a quotation payload as a new event with its
// line items. The response carries the generated function code so the
// client can immediately fetch the itemized details back.
func HandleQuotationSave(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload services.SavePayload
		if err := json.NewDecoder(e.Request.Body).Decode(&payload); err != nil {
			return apiError(e, 400, "invalid JSON body")
		}

		if errs := payload.Validate(); len(errs) > 0 {
			return apiValidationError(e, errs)
		}

		record, err := saveQuotationPayload(app, payload)
		if err != nil {
			log.Printf("quotation save: %v", err)
			return apiError(e, 500, "failed to save quotation")
		}

		return e.JSON(200, map[string]any{
			"status":        "true",
			"id":            record.Id,
			"function_code": record.GetString("function_code"),
		})
	}
}

// saveQuotationPayload writes the event record and its line items in the
// order they arrived. Per-head info is stored as sent; the builder already
// blanked it for per-KG quotations.
func saveQuotationPayload(app *pocketbase.PocketBase, payload services.SavePayload) (*core.Record, error) {
	eventsCol, err := app.FindCollectionByNameOrId("events")
	if err != nil {
		return nil, fmt.Errorf("events collection not found: %w", err)
	}
	itemsCol, err := app.FindCollectionByNameOrId("order_items")
	if err != nil {
		return nil, fmt.Errorf("order_items collection not found: %w", err)
	}

	record := core.NewRecord(eventsCol)
	record.Set("name", payload.ContactName)
	record.Set("contact_no", payload.ContactNo)
	record.Set("venue", payload.Venue)
	record.Set("date_time", payload.DateTime)
	record.Set("event_date", datePart(payload.DateTime))
	record.Set("event_time", timePart(payload.DateTime))
	record.Set("director", payload.Director)
	record.Set("no_of_guest", payload.NoOfGuest)
	record.Set("function_code", nextFunctionCode(app))
	record.Set("rate_mode", payload.RateMode)
	record.Set("service_type", payload.ServiceType)
	record.Set("per_head_info", payload.PerHeadInfo)
	record.Set("food_total", payload.FoodTotal)
	record.Set("decor_total", payload.DecorTotal)
	record.Set("total", payload.GrandTotal)

	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	saveRows := func(section string, rows []services.PayloadRow) error {
		for i, r := range rows {
			item := core.NewRecord(itemsCol)
			item.Set("event", record.Id)
			item.Set("section", section)
			item.Set("sort_order", i+1)
			item.Set("description", r.Menu)
			item.Set("quantity", services.Numeric(r.Qty).Float())
			item.Set("unit_price", services.Numeric(r.Rate).Float())
			item.Set("delivered_qty", services.Numeric(r.Qty).Float())
			if err := app.Save(item); err != nil {
				return fmt.Errorf("failed to save %s item %d: %w", section, i+1, err)
			}
		}
		return nil
	}

	if err := saveRows("food", payload.FoodDetails); err != nil {
		return nil, err
	}
	if err := saveRows("decoration", payload.DecorationDetails); err != nil {
		return nil, err
	}

	return record, nil
}

// nextFunctionCode derives the next FN-NNNN code from the most recently
// created event. The sequence starts at FN-1001 on an empty table or when
// the latest code does not parse.
func nextFunctionCode(app *pocketbase.PocketBase) string {
	records, err := app.FindRecordsByFilter("events", "id != ''", "-created", 1, 0)
	if err != nil || len(records) == 0 {
		return "FN-1001"
	}

	last := records[0].GetString("function_code")
	numPart, ok := strings.CutPrefix(last, "FN-")
	if !ok {
		return "FN-1001"
	}
	n, err := strconv.Atoi(numPart)
	if err != nil {
		return "FN-1001"
	}
	return fmt.Sprintf("FN-%d", n+1)
}

// datePart returns the leading date of a "YYYY-MM-DD HH:MM" string.
func datePart(dateTime string) string {
	parts := strings.SplitN(strings.TrimSpace(dateTime), " ", 2)
	return parts[0]
}

// timePart returns the time portion of a "YYYY-MM-DD HH:MM" string, or ""
// when the value holds only a date.
func timePart(dateTime string) string {
	parts := strings.SplitN(strings.TrimSpace(dateTime), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
