package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the events, order_items and
// directors collections exist.
func Setup(app *pocketbase.PocketBase) {
	events := ensureCollection(app, "events", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_no", Required: false})
		c.Fields.Add(&core.TextField{Name: "venue", Required: false})
		c.Fields.Add(&core.TextField{Name: "date_time", Required: false})
		c.Fields.Add(&core.TextField{Name: "event_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "event_time", Required: false})
		c.Fields.Add(&core.TextField{Name: "director", Required: false})
		c.Fields.Add(&core.TextField{Name: "no_of_guest", Required: false})
		c.Fields.Add(&core.TextField{Name: "function_code", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "rate_mode",
			Required:  false,
			Values:    []string{"perhead", "perkg"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "service_type",
			Required:  false,
			Values:    []string{"F", "D", "F+D", "F+S"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "per_head_info", Required: false})
		c.Fields.Add(&core.NumberField{Name: "food_total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "decor_total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "advance", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "order_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "event",
			Required:      true,
			CollectionId:  events.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "section",
			Required:  true,
			Values:    []string{"food", "beverages", "decoration", "services"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: false})
		c.Fields.Add(&core.NumberField{Name: "delivered_qty", Required: false})
		c.Fields.Add(&core.TextField{Name: "stk_code", Required: false})
	})

	ensureCollection(app, "directors", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "combo_code", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
