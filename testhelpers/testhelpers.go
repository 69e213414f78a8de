// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"caterquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestEvent creates an event record with the given name, function
// code and money fields, plus sensible defaults for the rest.
func CreateTestEvent(t *testing.T, app *pocketbase.PocketBase, name, functionCode string, total, advance float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("events")
	if err != nil {
		t.Fatalf("failed to find events collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("contact_no", "9876543210")
	record.Set("venue", "Test Banquet Hall")
	record.Set("event_date", "2026-10-05")
	record.Set("event_time", "19:00")
	record.Set("director", "DIR-01")
	record.Set("no_of_guest", "200")
	record.Set("function_code", functionCode)
	record.Set("rate_mode", "perhead")
	record.Set("service_type", "F+D")
	record.Set("total", total)
	record.Set("advance", advance)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test event: %v", err)
	}

	return record
}

// CreateTestOrderItem creates an order item record under an event.
func CreateTestOrderItem(t *testing.T, app *pocketbase.PocketBase, eventID, section, description string, quantity, unitPrice float64, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("order_items")
	if err != nil {
		t.Fatalf("failed to find order_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("event", eventID)
	record.Set("section", section)
	record.Set("sort_order", sortOrder)
	record.Set("description", description)
	record.Set("quantity", quantity)
	record.Set("unit_price", unitPrice)
	record.Set("delivered_qty", quantity)
	record.Set("stk_code", "STK-001")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test order item: %v", err)
	}

	return record
}

// CreateTestDirector creates a director record.
func CreateTestDirector(t *testing.T, app *pocketbase.PocketBase, comboCode, description string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("directors")
	if err != nil {
		t.Fatalf("failed to find directors collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("combo_code", comboCode)
	record.Set("description", description)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test director: %v", err)
	}

	return record
}
