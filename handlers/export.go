package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"caterquote/config"
	"caterquote/services"
)

// HandleExportPDF renders the quotation PDF for an event. The document is
// written to the cache directory first, then streamed back; the cache path
// travels in the X-Quotation-File header so local clients can hand the file
// to a share target directly.
func HandleExportPDF(app *pocketbase.PocketBase, cfg *config.Config) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		eventID := e.Request.PathValue("id")

		data, err := services.BuildQuoteExportData(app, companyInfo(cfg), eventID)
		if err != nil {
			log.Printf("export pdf: failed to build data for %s: %v", eventID, err)
			return apiError(e, 404, "event not found")
		}

		path, err := services.WriteQuotePDF(data, cfg.QuoteCacheDir())
		if err != nil {
			log.Printf("export pdf: failed to write document for %s: %v", eventID, err)
			return apiError(e, 500, "failed to generate PDF")
		}

		pdfBytes, err := os.ReadFile(path)
		if err != nil {
			log.Printf("export pdf: failed to read back %s: %v", path, err)
			return apiError(e, 500, "failed to generate PDF")
		}

		e.Response.Header().Set("X-Quotation-File", path)
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
		return e.Blob(200, "application/pdf", pdfBytes)
	}
}

// HandleExportExcel renders the quotation spreadsheet for an event and
// returns it as an attachment.
func HandleExportExcel(app *pocketbase.PocketBase, cfg *config.Config) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		eventID := e.Request.PathValue("id")

		data, err := services.BuildQuoteExportData(app, companyInfo(cfg), eventID)
		if err != nil {
			log.Printf("export excel: failed to build data for %s: %v", eventID, err)
			return apiError(e, 404, "event not found")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("export excel: failed to generate for %s: %v", eventID, err)
			return apiError(e, 500, "failed to generate Excel")
		}

		filename := fmt.Sprintf("Quotation_%s_%s.xlsx",
			strings.ReplaceAll(data.EventName, " ", "_"), data.FunctionCode)
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", filename))
		return e.Blob(200,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			xlsxBytes)
	}
}

func companyInfo(cfg *config.Config) services.CompanyInfo {
	return services.CompanyInfo{
		Name:    cfg.CompanyName,
		Address: cfg.CompanyAddress,
		Phone:   cfg.CompanyPhone,
	}
}
