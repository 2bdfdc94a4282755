package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pngbilling-backend/models"
	"pngbilling-backend/validation"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	c := New(server.URL)
	c.Token = "test-token"
	return c, server
}

func TestCreateBill(t *testing.T) {
	var received map[string]interface{}

	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/bills" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		received["id"] = "b-generated"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	amount := int64(120)
	paid := false
	created, err := c.CreateBill(context.Background(), Bill{
		CustomerID:     "c1",
		MeterReadingID: "m1",
		BillAmount:     &amount,
		BillPaid:       &paid,
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if created.ID != "b-generated" {
		t.Errorf("expected generated id, got %q", created.ID)
	}
	if created.CustomerID != "c1" || created.MeterReadingID != "m1" {
		t.Errorf("foreign keys not echoed back: %+v", created)
	}
	if created.BillAmount == nil || *created.BillAmount != 120 {
		t.Errorf("bill_amount not echoed back: %+v", created)
	}
	if created.BillPaid == nil || *created.BillPaid != false {
		t.Errorf("bill_paid not echoed back: %+v", created)
	}

	if _, present := received["bill_paid"]; !present {
		t.Error("bill_paid=false should be on the wire")
	}
}

func TestCreateBillValidationBlocksSubmission(t *testing.T) {
	called := false
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	_, err := c.CreateBill(context.Background(), Bill{MeterReadingID: "m1"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if _, ok := errs["customer_id"]; !ok {
		t.Errorf("expected error keyed on customer_id, got %v", errs)
	}
	if called {
		t.Error("validation failure must not reach the network")
	}
}

func TestUpdateBillPermissionDenied(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "insufficient permissions"})
	}))
	defer server.Close()

	_, err := c.UpdateBillByID(context.Background(), "b1", Bill{
		CustomerID:     "c1",
		MeterReadingID: "m1",
	})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if err.Error() != "You don't have permission to update this resource" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestUpdateBillOtherErrorsSurfaceRaw(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Bill not found"})
	}))
	defer server.Close()

	_, err := c.UpdateBillByID(context.Background(), "missing", Bill{
		CustomerID:     "c1",
		MeterReadingID: "m1",
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "Bill not found" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestGetMeterReadingsFiltered(t *testing.T) {
	readings := []MeterReading{
		{ID: "m1", CustomerID: "c1"},
		{ID: "m2", CustomerID: "c2"},
		{ID: "m3", CustomerID: "c1"},
	}

	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/meter-readings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		want := r.URL.Query().Get("customer_id")
		var matched []MeterReading
		for _, reading := range readings {
			if want == "" || reading.CustomerID == want {
				matched = append(matched, reading)
			}
		}
		json.NewEncoder(w).Encode(Page[MeterReading]{Data: matched, TotalCount: int64(len(matched))})
	}))
	defer server.Close()

	page, err := c.GetMeterReadings(context.Background(), models.MeterReadingQuery{CustomerID: "c1"})
	if err != nil {
		t.Fatalf("GetMeterReadings: %v", err)
	}

	if page.TotalCount != 2 || len(page.Data) != 2 {
		t.Fatalf("expected 2 readings, got %+v", page)
	}
	for _, reading := range page.Data {
		if reading.CustomerID != "c1" {
			t.Errorf("unexpected customer_id %q", reading.CustomerID)
		}
	}
}

func TestGetBillByIDExpansion(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bills/b1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("customer") != "true" || r.URL.Query().Get("meter_reading") != "true" {
			t.Errorf("expansion params missing: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(Bill{
			ID:           "b1",
			CustomerID:   "c1",
			Customer:     &Customer{ID: "c1"},
			MeterReading: &MeterReading{ID: "m1"},
		})
	}))
	defer server.Close()

	bill, err := c.GetBillByID(context.Background(), "b1", "customer", "meter_reading")
	if err != nil {
		t.Fatalf("GetBillByID: %v", err)
	}
	if bill.Customer == nil || bill.Customer.ID != "c1" {
		t.Errorf("customer not expanded: %+v", bill)
	}
	if bill.MeterReading == nil || bill.MeterReading.ID != "m1" {
		t.Errorf("meter reading not expanded: %+v", bill)
	}
}

func TestDeleteBillReturnsRepresentation(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/bills/b1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Bill{ID: "b1", CustomerID: "c1"})
	}))
	defer server.Close()

	deleted, err := c.DeleteBillByID(context.Background(), "b1")
	if err != nil {
		t.Fatalf("DeleteBillByID: %v", err)
	}
	if deleted.ID != "b1" {
		t.Errorf("expected deleted record back, got %+v", deleted)
	}
}

func TestAuthorizationHeaderSent(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(Page[Customer]{})
	}))
	defer server.Close()

	if _, err := c.GetCustomers(context.Background(), models.CustomerQuery{}); err != nil {
		t.Fatalf("GetCustomers: %v", err)
	}
}
