package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type directorDef struct {
	comboCode   string
	description string
}

type itemDef struct {
	section     string
	sortOrder   int
	description string
	unitPrice   float64
	quantity    float64
	stkCode     string
}

type eventDef struct {
	name         string
	contactNo    string
	venue        string
	eventDate    string
	eventTime    string
	director     string
	noOfGuest    string
	functionCode string
	rateMode     string
	serviceType  string
	total        float64
	advance      float64
	items        []itemDef
}

var seedDirectors = []directorDef{
	{"DIR-01", "Arif Hussain"},
	{"DIR-02", "Kamran Sheikh"},
	{"DIR-03", "Salma Qureshi"},
}

var seedEvents = []eventDef{
	{
		name:         "Mehta Wedding Reception",
		contactNo:    "9832011456",
		venue:        "Grand Palm Banquet Hall",
		eventDate:    "2026-11-21",
		eventTime:    "19:30",
		director:     "DIR-01",
		noOfGuest:    "350",
		functionCode: "FN-1001",
		rateMode:     "perhead",
		serviceType:  "F+D",
		total:        612500,
		advance:      200000,
		items: []itemDef{
			{"food", 1, "Chicken Biryani", 450, 350, "FD-101"},
			{"food", 2, "Paneer Butter Masala", 300, 350, "FD-132"},
			{"food", 3, "Assorted Naan Basket", 80, 350, "FD-140"},
			{"beverages", 1, "Fresh Lime Soda", 60, 350, "BV-011"},
			{"beverages", 2, "Masala Chai Counter", 40, 350, "BV-020"},
			{"decoration", 1, "Stage Floral Backdrop", 45000, 1, "DC-201"},
			{"decoration", 2, "Table Centerpieces", 800, 40, "DC-214"},
			{"services", 1, "Live Chaat Counter Staff", 2500, 4, "SV-301"},
		},
	},
}

// Seed inserts the starter directors and a demo event with itemized
// sections. It is idempotent: records are only created when their
// collection is still empty.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedDirectorList(app); err != nil {
		return err
	}
	return seedEventList(app)
}

func seedDirectorList(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("directors")
	if err != nil {
		return fmt.Errorf("directors collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err == nil && len(existing) > 0 {
		return nil
	}

	for _, d := range seedDirectors {
		record := core.NewRecord(col)
		record.Set("combo_code", d.comboCode)
		record.Set("description", d.description)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("failed to seed director %s: %w", d.comboCode, err)
		}
	}
	return nil
}

func seedEventList(app *pocketbase.PocketBase) error {
	eventsCol, err := app.FindCollectionByNameOrId("events")
	if err != nil {
		return fmt.Errorf("events collection not found: %w", err)
	}
	itemsCol, err := app.FindCollectionByNameOrId("order_items")
	if err != nil {
		return fmt.Errorf("order_items collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(eventsCol)
	if err == nil && len(existing) > 0 {
		return nil
	}

	for _, ev := range seedEvents {
		record := core.NewRecord(eventsCol)
		record.Set("name", ev.name)
		record.Set("contact_no", ev.contactNo)
		record.Set("venue", ev.venue)
		record.Set("event_date", ev.eventDate)
		record.Set("event_time", ev.eventTime)
		record.Set("date_time", ev.eventDate+" "+ev.eventTime)
		record.Set("director", ev.director)
		record.Set("no_of_guest", ev.noOfGuest)
		record.Set("function_code", ev.functionCode)
		record.Set("rate_mode", ev.rateMode)
		record.Set("service_type", ev.serviceType)
		record.Set("total", ev.total)
		record.Set("advance", ev.advance)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("failed to seed event %s: %w", ev.functionCode, err)
		}

		for _, it := range ev.items {
			item := core.NewRecord(itemsCol)
			item.Set("event", record.Id)
			item.Set("section", it.section)
			item.Set("sort_order", it.sortOrder)
			item.Set("description", it.description)
			item.Set("unit_price", it.unitPrice)
			item.Set("quantity", it.quantity)
			item.Set("delivered_qty", it.quantity)
			item.Set("stk_code", it.stkCode)
			if err := app.Save(item); err != nil {
				return fmt.Errorf("failed to seed item %s: %w", it.description, err)
			}
		}
	}
	return nil
}
