package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type eventSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	FunctionCode string  `json:"function_code"`
	EventDate    string  `json:"event_date"`
	EventTime    string  `json:"event_time"`
	Venue        string  `json:"venue"`
	ServiceType  string  `json:"service_type"`
	Total        float64 `json:"total"`
	Advance      float64 `json:"advance"`
}

func summarizeEvent(r *core.Record) eventSummary {
	return eventSummary{
		ID:           r.Id,
		Name:         r.GetString("name"),
		FunctionCode: r.GetString("function_code"),
		EventDate:    r.GetString("event_date"),
		EventTime:    r.GetString("event_time"),
		Venue:        r.GetString("venue"),
		ServiceType:  r.GetString("service_type"),
		Total:        r.GetFloat("total"),
		Advance:      r.GetFloat("advance"),
	}
}

// HandleEventsList returns all events, newest first.
func HandleEventsList(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("events", "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("events: failed to list records: %v", err)
			return apiError(e, 500, "failed to list events")
		}

		data := make([]eventSummary, 0, len(records))
		for _, r := range records {
			data = append(data, summarizeEvent(r))
		}
		return e.JSON(200, map[string]any{
			"status": "true",
			"data":   data,
		})
	}
}

// HandleEventGet returns one event by record ID.
func HandleEventGet(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("events", e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, 404, "event not found")
		}
		return e.JSON(200, map[string]any{
			"status": "true",
			"data":   summarizeEvent(record),
		})
	}
}
