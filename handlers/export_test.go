package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"caterquote/config"
	"caterquote/testhelpers"
)

func testExportConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		CompanyName: "Shahi Caterers",
		CacheDir:    t.TempDir(),
	}
}

func TestHandleExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := testExportConfig(t)
	event := testhelpers.CreateTestEvent(t, app, "Mehta Wedding Reception", "FN-1001", 612500, 200000)
	testhelpers.CreateTestOrderItem(t, app, event.Id, "food", "Chicken Biryani", 350, 450, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/events/"+event.Id+"/export/pdf", nil)
	req.SetPathValue("id", event.Id)
	rec := httptest.NewRecorder()
	if err := HandleExportPDF(app, cfg)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != 200 {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body is not a PDF")
	}

	// The cache path header must point at an existing file inside CacheDir.
	path := rec.Header().Get("X-Quotation-File")
	if path == "" {
		t.Fatal("X-Quotation-File header missing")
	}
	if filepath.Base(path) != "Quotation_Mehta_Wedding_Reception_FN-1001.pdf" {
		t.Errorf("cached filename = %q", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("cached file missing: %v", err)
	}
}

func TestHandleExportPDFUnknownEvent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := testExportConfig(t)

	req := httptest.NewRequest(http.MethodGet, "/api/events/missing/export/pdf", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	if err := HandleExportPDF(app, cfg)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := testExportConfig(t)
	event := testhelpers.CreateTestEvent(t, app, "Mehta Wedding Reception", "FN-1001", 612500, 200000)
	testhelpers.CreateTestOrderItem(t, app, event.Id, "decoration", "Stage Floral Backdrop", 1, 45000, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/events/"+event.Id+"/export/excel", nil)
	req.SetPathValue("id", event.Id)
	rec := httptest.NewRecorder()
	if err := HandleExportExcel(app, cfg)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != 200 {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	want := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if ct := rec.Header().Get("Content-Type"); ct != want {
		t.Errorf("Content-Type = %q", ct)
	}
	// XLSX files are ZIP archives.
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("body is not a zip archive")
	}
	if cd := rec.Header().Get("Content-Disposition"); cd == "" {
		t.Error("Content-Disposition header missing")
	}
}
