package collections_test

import (
	"testing"

	"caterquote/collections"
	"caterquote/testhelpers"
)

func TestSetupCreatesCollections(t *testing.T) {
	app := testhelpers.NewTestApp(t) // runs Setup internally

	for _, name := range []string{"events", "order_items", "directors"} {
		if _, err := app.FindCollectionByNameOrId(name); err != nil {
			t.Errorf("collection %q missing: %v", name, err)
		}
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// A second run must not fail or duplicate anything.
	collections.Setup(app)

	events, err := app.FindCollectionByNameOrId("events")
	if err != nil {
		t.Fatalf("events collection missing after second Setup: %v", err)
	}
	if events.Fields.GetByName("function_code") == nil {
		t.Error("events collection lost its function_code field")
	}
}

func TestEventFieldsRoundTrip(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	event := testhelpers.CreateTestEvent(t, app, "Mehta Wedding Reception", "FN-1001", 612500, 200000)

	loaded, err := app.FindRecordById("events", event.Id)
	if err != nil {
		t.Fatalf("reloading event: %v", err)
	}
	if loaded.GetString("rate_mode") != "perhead" {
		t.Errorf("rate_mode = %q", loaded.GetString("rate_mode"))
	}
	if loaded.GetString("service_type") != "F+D" {
		t.Errorf("service_type = %q", loaded.GetString("service_type"))
	}
	if loaded.GetFloat("advance") != 200000 {
		t.Errorf("advance = %v", loaded.GetFloat("advance"))
	}
}

func TestOrderItemCascadeDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	event := testhelpers.CreateTestEvent(t, app, "Mehta Wedding Reception", "FN-1001", 0, 0)
	item := testhelpers.CreateTestOrderItem(t, app, event.Id, "food", "Chicken Biryani", 350, 450, 1)

	if err := app.Delete(event); err != nil {
		t.Fatalf("deleting event: %v", err)
	}
	if _, err := app.FindRecordById("order_items", item.Id); err == nil {
		t.Error("order item survived its event's deletion")
	}
}
