package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"caterquote/services"
	"caterquote/testhelpers"
)

type orderDetailsBody struct {
	StatusFood       string               `json:"status_food"`
	DataFood         []services.QuoteItem `json:"data_food"`
	StatusBeverages  string               `json:"status_beverages"`
	DataBeverages    []services.QuoteItem `json:"data_beverages"`
	StatusDecoration string               `json:"status_decoration"`
	DataDecoration   []services.QuoteItem `json:"data_decoration"`
	StatusServices   string               `json:"status_services"`
	DataServices     []services.QuoteItem `json:"data_services"`
}

func postOrderDetails(t *testing.T, app *pocketbase.PocketBase, orderNo string) (*httptest.ResponseRecorder, orderDetailsBody) {
	t.Helper()

	form := url.Values{}
	form.Set("order_no", orderNo)
	req := httptest.NewRequest(http.MethodPost, "/api/order-details", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	if err := HandleOrderDetails(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var body orderDetailsBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return rec, body
}

func TestHandleOrderDetails(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	event := testhelpers.CreateTestEvent(t, app, "Mehta Wedding Reception", "FN-1001", 612500, 200000)
	testhelpers.CreateTestOrderItem(t, app, event.Id, "food", "Chicken Biryani", 350, 450, 1)
	testhelpers.CreateTestOrderItem(t, app, event.Id, "food", "Paneer Butter Masala", 350, 300, 2)
	testhelpers.CreateTestOrderItem(t, app, event.Id, "services", "Live Chaat Counter Staff", 4, 2500, 1)

	rec, body := postOrderDetails(t, app, "FN-1001")
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}

	if body.StatusFood != "true" {
		t.Errorf("status_food = %q, want the literal string true", body.StatusFood)
	}
	if len(body.DataFood) != 2 {
		t.Fatalf("data_food = %d items", len(body.DataFood))
	}
	if body.DataFood[0].Description != "Chicken Biryani" || body.DataFood[0].UnitPrice != 450 {
		t.Errorf("data_food[0] = %+v", body.DataFood[0])
	}

	if body.StatusBeverages != "false" || len(body.DataBeverages) != 0 {
		t.Errorf("beverages: status=%q data=%v", body.StatusBeverages, body.DataBeverages)
	}
	if body.StatusDecoration != "false" {
		t.Errorf("status_decoration = %q", body.StatusDecoration)
	}
	if body.StatusServices != "true" || len(body.DataServices) != 1 {
		t.Errorf("services: status=%q data=%v", body.StatusServices, body.DataServices)
	}
}

func TestHandleOrderDetailsUnknownOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec, body := postOrderDetails(t, app, "FN-9999")
	if rec.Code != 200 {
		t.Fatalf("status = %d, unknown orders still answer 200", rec.Code)
	}
	if body.StatusFood != "false" || body.StatusBeverages != "false" ||
		body.StatusDecoration != "false" || body.StatusServices != "false" {
		t.Errorf("unknown order should be all-false: %+v", body)
	}
	if len(body.DataFood) != 0 || len(body.DataServices) != 0 {
		t.Errorf("unknown order should carry empty arrays: %+v", body)
	}
}

func TestHandleOrderDetailsMissingOrderNo(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/order-details", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	if err := HandleOrderDetails(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
