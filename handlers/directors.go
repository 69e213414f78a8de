package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type directorEntry struct {
	ComboCode   string `json:"combo_code"`
	Description string `json:"description"`
}

// HandleDirectors returns the director picklist. The mobile client treats
// the string "true"/"false" status as the success flag, so the shape is
// kept exactly as it expects.
func HandleDirectors(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("directors")
		if err != nil {
			log.Printf("directors: failed to list records: %v", err)
			return e.JSON(200, map[string]any{
				"status": "false",
				"data":   []directorEntry{},
			})
		}

		data := make([]directorEntry, 0, len(records))
		for _, r := range records {
			data = append(data, directorEntry{
				ComboCode:   r.GetString("combo_code"),
				Description: r.GetString("description"),
			})
		}

		return e.JSON(200, map[string]any{
			"status": "true",
			"data":   data,
		})
	}
}
