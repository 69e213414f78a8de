package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"caterquote/services"
)

// sessionSnapshot is the wire view of a live quotation session. Totals are
// derived fresh on every read so the client never sees a stale aggregate.
type sessionSnapshot struct {
	ID          string              `json:"id"`
	Client      services.ClientInfo `json:"client"`
	RateMode    string              `json:"rateMode"`
	RateLabel   string              `json:"rateLabel"`
	ServiceType string              `json:"serviceType"`
	PerHeadInfo string              `json:"perHeadInfo"`

	ShowFood       bool           `json:"showFood"`
	ShowDecoration bool           `json:"showDecoration"`
	FoodRows       []services.Row `json:"foodRows"`
	DecorationRows []services.Row `json:"decorationRows"`

	ManualFoodTotal string  `json:"manualFoodTotal"`
	ManualDecTotal  string  `json:"manualDecTotal"`
	FoodAutoTotal   float64 `json:"foodAutoTotal"`
	DecAutoTotal    float64 `json:"decAutoTotal"`
	FinalFoodTotal  float64 `json:"finalFoodTotal"`
	FinalDecTotal   float64 `json:"finalDecTotal"`
	GrandTotal      float64 `json:"grandTotal"`

	ActiveCell *services.ActiveCell `json:"activeCell,omitempty"`
}

func snapshotSession(sess *services.QuoteSession) sessionSnapshot {
	q := sess.Quote
	return sessionSnapshot{
		ID:          sess.ID,
		Client:      q.Client,
		RateMode:    string(q.RateMode),
		RateLabel:   q.RateMode.Label(),
		ServiceType: string(q.ServiceType),
		PerHeadInfo: q.PerHeadInfo,

		ShowFood:       q.ServiceType.ShowsFood(),
		ShowDecoration: q.ServiceType.ShowsDecoration(),
		FoodRows:       q.FoodRows.Rows(),
		DecorationRows: q.DecorationRows.Rows(),

		ManualFoodTotal: q.ManualFoodTotal,
		ManualDecTotal:  q.ManualDecTotal,
		FoodAutoTotal:   q.FoodAutoTotal(),
		DecAutoTotal:    q.DecAutoTotal(),
		FinalFoodTotal:  q.FinalFoodTotal(),
		FinalDecTotal:   q.FinalDecTotal(),
		GrandTotal:      q.GrandTotal(),

		ActiveCell: sess.ActiveCell,
	}
}

// HandleSessionCreate starts a quotation editing session. With an ?event=
// query parameter the quotation is pre-filled from that event's record and
// line items; otherwise it starts blank with the default seeded tables.
func HandleSessionCreate(app *pocketbase.PocketBase, store *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := services.NewQuotation()

		if eventID := e.Request.URL.Query().Get("event"); eventID != "" {
			loaded, err := loadQuotationFromEvent(app, eventID)
			if err != nil {
				log.Printf("sessions: failed to load event %s: %v", eventID, err)
				return apiError(e, 404, "event not found")
			}
			q = loaded
		}

		sess := store.Create(q)
		return e.JSON(200, snapshotSession(sess))
	}
}

// HandleSessionGet returns the current snapshot of a session.
func HandleSessionGet(store *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, ok := store.Get(e.Request.PathValue("id"))
		if !ok {
			return apiError(e, 404, "session not found")
		}
		return e.JSON(200, snapshotSession(sess))
	}
}

// sessionPatch carries the optional top-level fields a PATCH may change.
// Pointers distinguish "not sent" from "set to empty".
type sessionPatch struct {
	Client          *services.ClientInfo `json:"client"`
	RateMode        *string              `json:"rateMode"`
	ServiceType     *string              `json:"serviceType"`
	PerHeadInfo     *string              `json:"perHeadInfo"`
	ManualFoodTotal *string              `json:"manualFoodTotal"`
	ManualDecTotal  *string              `json:"manualDecTotal"`
	ActiveCell      *services.ActiveCell `json:"activeCell"`
	ClearActiveCell bool                 `json:"clearActiveCell"`
}

// HandleSessionPatch updates top-level quotation state: client info,
// selectors, per-head note, table-level manual totals and the active cell.
// Switching the service type only changes visibility; hidden tables keep
// their rows and overrides for when they come back.
func HandleSessionPatch(store *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var patch sessionPatch
		if err := json.NewDecoder(e.Request.Body).Decode(&patch); err != nil {
			return apiError(e, 400, "invalid JSON body")
		}

		if patch.RateMode != nil && !services.RateMode(*patch.RateMode).Valid() {
			return apiError(e, 400, "unknown rate mode")
		}
		if patch.ServiceType != nil && !services.ServiceType(*patch.ServiceType).Valid() {
			return apiError(e, 400, "unknown service type")
		}

		id := e.Request.PathValue("id")
		err := store.Update(id, func(sess *services.QuoteSession) error {
			q := sess.Quote
			if patch.Client != nil {
				q.Client = *patch.Client
			}
			if patch.RateMode != nil {
				q.RateMode = services.RateMode(*patch.RateMode)
			}
			if patch.ServiceType != nil {
				q.ServiceType = services.ServiceType(*patch.ServiceType)
			}
			if patch.PerHeadInfo != nil {
				q.PerHeadInfo = *patch.PerHeadInfo
			}
			if patch.ManualFoodTotal != nil {
				q.ManualFoodTotal = *patch.ManualFoodTotal
			}
			if patch.ManualDecTotal != nil {
				q.ManualDecTotal = *patch.ManualDecTotal
			}
			if patch.ClearActiveCell {
				sess.ActiveCell = nil
			} else if patch.ActiveCell != nil {
				sess.ActiveCell = patch.ActiveCell
			}
			return nil
		})
		if err != nil {
			return apiError(e, 404, "session not found")
		}

		sess, _ := store.Get(id)
		return e.JSON(200, snapshotSession(sess))
	}
}

// HandleSessionDelete discards a session without saving.
func HandleSessionDelete(store *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		store.Delete(e.Request.PathValue("id"))
		return e.JSON(200, map[string]string{"status": "true"})
	}
}

// HandleRowAdd appends a blank row to the named table and returns the new
// row's ID along with the refreshed snapshot.
func HandleRowAdd(store *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		tableName := e.Request.PathValue("table")

		var newID int
		err := store.Update(id, func(sess *services.QuoteSession) error {
			table := sess.Quote.Table(tableName)
			if table == nil {
				return errUnknownTable
			}
			newID = table.AddRow()
			return nil
		})
		if err == errUnknownTable {
			return apiError(e, 400, "unknown table")
		}
		if err != nil {
			return apiError(e, 404, "session not found")
		}

		sess, _ := store.Get(id)
		return e.JSON(200, map[string]any{
			"rowId":    newID,
			"snapshot": snapshotSession(sess),
		})
	}
}

type rowPatch struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// HandleRowPatch edits one cell of one row. The "total" field routes to the
// manual override path, which pins the row's total for good; menu, qty and
// rate go through the normal recompute path.
func HandleRowPatch(store *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var patch rowPatch
		if err := json.NewDecoder(e.Request.Body).Decode(&patch); err != nil {
			return apiError(e, 400, "invalid JSON body")
		}

		id := e.Request.PathValue("id")
		rowID, err := strconv.Atoi(e.Request.PathValue("rowId"))
		if err != nil {
			return apiError(e, 400, "invalid row id")
		}

		var opErr error
		err = store.Update(id, func(sess *services.QuoteSession) error {
			table := sess.Quote.Table(e.Request.PathValue("table"))
			if table == nil {
				return errUnknownTable
			}
			if patch.Field == "total" {
				opErr = table.SetManualTotal(rowID, patch.Value)
			} else {
				opErr = table.UpdateField(rowID, services.RowField(patch.Field), patch.Value)
			}
			return nil
		})
		if err == errUnknownTable {
			return apiError(e, 400, "unknown table")
		}
		if err != nil {
			return apiError(e, 404, "session not found")
		}
		if opErr != nil {
			return apiError(e, 400, opErr.Error())
		}

		sess, _ := store.Get(id)
		return e.JSON(200, snapshotSession(sess))
	}
}

// HandleRowDelete removes a row. Surviving rows keep their IDs.
func HandleRowDelete(store *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rowID, err := strconv.Atoi(e.Request.PathValue("rowId"))
		if err != nil {
			return apiError(e, 400, "invalid row id")
		}

		var opErr error
		err = store.Update(id, func(sess *services.QuoteSession) error {
			table := sess.Quote.Table(e.Request.PathValue("table"))
			if table == nil {
				return errUnknownTable
			}
			opErr = table.RemoveRow(rowID)
			return nil
		})
		if err == errUnknownTable {
			return apiError(e, 400, "unknown table")
		}
		if err != nil {
			return apiError(e, 404, "session not found")
		}
		if opErr != nil {
			return apiError(e, 400, opErr.Error())
		}

		sess, _ := store.Get(id)
		return e.JSON(200, snapshotSession(sess))
	}
}

// HandleSessionSave serializes the session's quotation, validates it and
// persists it as an event with line items. The session stays alive so the
// client can keep editing after a save.
func HandleSessionSave(app *pocketbase.PocketBase, store *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, ok := store.Get(e.Request.PathValue("id"))
		if !ok {
			return apiError(e, 404, "session not found")
		}

		var payload services.SavePayload
		err := store.Update(sess.ID, func(s *services.QuoteSession) error {
			payload = services.BuildSavePayload(s.Quote)
			return nil
		})
		if err != nil {
			return apiError(e, 404, "session not found")
		}

		if errs := payload.Validate(); len(errs) > 0 {
			return apiValidationError(e, errs)
		}

		record, err := saveQuotationPayload(app, payload)
		if err != nil {
			log.Printf("session save: %v", err)
			return apiError(e, 500, "failed to save quotation")
		}

		return e.JSON(200, map[string]any{
			"status":        "true",
			"id":            record.Id,
			"function_code": record.GetString("function_code"),
		})
	}
}

// loadQuotationFromEvent rebuilds an editable quotation from a stored event.
// Loaded rows get manual totals: the stored totals are authoritative and
// must not be silently recomputed the moment a quantity is touched.
func loadQuotationFromEvent(app *pocketbase.PocketBase, eventID string) (*services.Quotation, error) {
	event, err := app.FindRecordById("events", eventID)
	if err != nil {
		return nil, err
	}

	q := services.NewQuotation()
	q.Client = services.ClientInfo{
		ContactNo: event.GetString("contact_no"),
		Name:      event.GetString("name"),
		Venue:     event.GetString("venue"),
		DateTime:  event.GetString("date_time"),
		Director:  event.GetString("director"),
		NoOfGuest: event.GetString("no_of_guest"),
	}
	if m := services.RateMode(event.GetString("rate_mode")); m.Valid() {
		q.RateMode = m
	}
	if s := services.ServiceType(event.GetString("service_type")); s.Valid() {
		q.ServiceType = s
	}
	q.PerHeadInfo = event.GetString("per_head_info")

	items, err := app.FindRecordsByFilter(
		"order_items",
		"event = {:eventId}",
		"sort_order",
		0,
		0,
		map[string]any{"eventId": eventID},
	)
	if err != nil {
		log.Printf("sessions: failed to load items for event %s: %v", eventID, err)
		items = nil
	}

	food := services.EmptyLineItemTable()
	decoration := services.EmptyLineItemTable()
	for _, r := range items {
		var table *services.LineItemTable
		switch r.GetString("section") {
		case "food":
			table = food
		case "decoration":
			table = decoration
		default:
			continue
		}
		rowID := table.AddRow()
		table.UpdateField(rowID, services.FieldMenu, r.GetString("description"))
		table.UpdateField(rowID, services.FieldQty, services.FormatAmount(r.GetFloat("quantity")))
		table.UpdateField(rowID, services.FieldRate, services.FormatAmount(r.GetFloat("unit_price")))
		table.SetManualTotal(rowID, services.FormatAmount(r.GetFloat("quantity")*r.GetFloat("unit_price")))
	}
	if food.Len() > 0 {
		q.FoodRows = food
	}
	if decoration.Len() > 0 {
		q.DecorationRows = decoration
	}

	return q, nil
}

// errUnknownTable distinguishes a bad table name from a missing session
// inside store.Update callbacks.
var errUnknownTable = errors.New("unknown table")
