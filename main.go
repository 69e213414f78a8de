package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"caterquote/collections"
	"caterquote/config"
	"caterquote/handlers"
	"caterquote/services"
)

func main() {
	cfg := config.MustLoad()
	app := pocketbase.New()
	store := services.NewSessionStore()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("seed: %v", err)
		}

		// Lookups consumed by the mobile client.
		se.Router.GET("/api/directors", handlers.HandleDirectors(app))
		se.Router.POST("/api/order-details", handlers.HandleOrderDetails(app))
		se.Router.POST("/api/quotations", handlers.HandleQuotationSave(app))

		// Live quotation editing sessions.
		se.Router.POST("/api/sessions", handlers.HandleSessionCreate(app, store))
		se.Router.GET("/api/sessions/{id}", handlers.HandleSessionGet(store))
		se.Router.PATCH("/api/sessions/{id}", handlers.HandleSessionPatch(store))
		se.Router.DELETE("/api/sessions/{id}", handlers.HandleSessionDelete(store))
		se.Router.POST("/api/sessions/{id}/tables/{table}/rows", handlers.HandleRowAdd(store))
		se.Router.PATCH("/api/sessions/{id}/tables/{table}/rows/{rowId}", handlers.HandleRowPatch(store))
		se.Router.DELETE("/api/sessions/{id}/tables/{table}/rows/{rowId}", handlers.HandleRowDelete(store))
		se.Router.POST("/api/sessions/{id}/save", handlers.HandleSessionSave(app, store))

		// Events and document exports.
		se.Router.GET("/api/events", handlers.HandleEventsList(app))
		se.Router.GET("/api/events/{id}", handlers.HandleEventGet(app))
		se.Router.GET("/api/events/{id}/export/pdf", handlers.HandleExportPDF(app, cfg))
		se.Router.GET("/api/events/{id}/export/excel", handlers.HandleExportExcel(app, cfg))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
