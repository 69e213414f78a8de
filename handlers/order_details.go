package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"caterquote/services"
)

// HandleOrderDetails looks up an event by its function code (submitted as
// the form field "order_no") and returns the itemized sections. Each
// section carries a literal "true"/"false" status string because that is
// what the mobile client switches on; an unknown order yields an all-false
// body with empty arrays rather than an error status.
func HandleOrderDetails(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		orderNo := e.Request.FormValue("order_no")
		if orderNo == "" {
			return apiError(e, 400, "order_no is required")
		}

		resp := map[string]any{}
		for _, sec := range services.SectionOrder {
			resp["status_"+sec.Key] = "false"
			resp["data_"+sec.Key] = []services.QuoteItem{}
		}

		events, err := app.FindRecordsByFilter(
			"events",
			"function_code = {:code}",
			"-created",
			1,
			0,
			map[string]any{"code": orderNo},
		)
		if err != nil || len(events) == 0 {
			if err != nil {
				log.Printf("order details: failed to find event %s: %v", orderNo, err)
			}
			return e.JSON(200, resp)
		}

		items, err := app.FindRecordsByFilter(
			"order_items",
			"event = {:eventId}",
			"sort_order",
			0,
			0,
			map[string]any{"eventId": events[0].Id},
		)
		if err != nil {
			log.Printf("order details: failed to load items for %s: %v", orderNo, err)
			return e.JSON(200, resp)
		}

		bySection := map[string][]services.QuoteItem{}
		for _, r := range items {
			sec := r.GetString("section")
			bySection[sec] = append(bySection[sec], services.QuoteItem{
				Description:  r.GetString("description"),
				UnitPrice:    r.GetFloat("unit_price"),
				Quantity:     r.GetFloat("quantity"),
				DeliveredQty: r.GetFloat("delivered_qty"),
				StkCode:      r.GetString("stk_code"),
			})
		}

		for _, sec := range services.SectionOrder {
			if rows, ok := bySection[sec.Key]; ok && len(rows) > 0 {
				resp["status_"+sec.Key] = "true"
				resp["data_"+sec.Key] = rows
			}
		}

		return e.JSON(200, resp)
	}
}
