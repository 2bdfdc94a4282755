package validation

import "testing"

func validBillPayload() map[string]interface{} {
	return map[string]interface{}{
		"customer_id":      "d3f1b9a0-5c2e-4f6a-9b8d-1e2f3a4b5c6d",
		"meter_reading_id": "a1b2c3d4-e5f6-4a5b-8c9d-0e1f2a3b4c5d",
		"bill_date":        "2025-06-01",
		"bill_amount":      float64(120),
		"bill_paid":        false,
	}
}

func TestBillSchema_Valid(t *testing.T) {
	if errs := BillSchema.Apply(validBillPayload()); errs != nil {
		t.Errorf("expected valid payload, got %v", errs)
	}
}

func TestBillSchema_OptionalFieldsOmitted(t *testing.T) {
	payload := map[string]interface{}{
		"customer_id":      "c-1",
		"meter_reading_id": "m-1",
	}
	if errs := BillSchema.Apply(payload); errs != nil {
		t.Errorf("optional fields omitted should pass, got %v", errs)
	}
}

func TestRequiredForeignKeys(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		payload map[string]interface{}
		field   string
	}{
		{
			name:    "bill missing customer_id",
			schema:  BillSchema,
			payload: map[string]interface{}{"meter_reading_id": "m-1"},
			field:   "customer_id",
		},
		{
			name:    "bill null meter_reading_id",
			schema:  BillSchema,
			payload: map[string]interface{}{"customer_id": "c-1", "meter_reading_id": nil},
			field:   "meter_reading_id",
		},
		{
			name:    "bill empty customer_id",
			schema:  BillSchema,
			payload: map[string]interface{}{"customer_id": "", "meter_reading_id": "m-1"},
			field:   "customer_id",
		},
		{
			name:   "customer missing user_id",
			schema: CustomerSchema,
			payload: map[string]interface{}{
				"account_manager_id": "u-1",
				"meter_reader_id":    "u-2",
			},
			field: "user_id",
		},
		{
			name:    "meter reading missing customer_id",
			schema:  MeterReadingSchema,
			payload: map[string]interface{}{"reading_value": float64(42)},
			field:   "customer_id",
		},
		{
			name:   "assignment missing meter_reader_id",
			schema: AssignmentSchema,
			payload: map[string]interface{}{
				"customer_id":        "c-1",
				"account_manager_id": "u-1",
			},
			field: "meter_reader_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.schema.Apply(tt.payload)
			if errs == nil {
				t.Fatal("expected validation failure")
			}
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("expected error keyed on %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestDateRule(t *testing.T) {
	payload := validBillPayload()
	payload["bill_date"] = "not-a-date"
	errs := BillSchema.Apply(payload)
	if errs == nil {
		t.Fatal("expected validation failure for bad date")
	}
	if _, ok := errs["bill_date"]; !ok {
		t.Errorf("expected error keyed on bill_date, got %v", errs)
	}

	payload["bill_date"] = "2025-06-01T10:30:00Z"
	if errs := BillSchema.Apply(payload); errs != nil {
		t.Errorf("RFC3339 date should pass, got %v", errs)
	}

	delete(payload, "bill_date")
	if errs := BillSchema.Apply(payload); errs != nil {
		t.Errorf("omitted date should pass, got %v", errs)
	}
}

func TestIntegerRule(t *testing.T) {
	payload := validBillPayload()

	payload["bill_amount"] = 120.5
	errs := BillSchema.Apply(payload)
	if errs == nil {
		t.Fatal("expected validation failure for fractional amount")
	}
	if _, ok := errs["bill_amount"]; !ok {
		t.Errorf("expected error keyed on bill_amount, got %v", errs)
	}

	payload["bill_amount"] = "120"
	if errs := BillSchema.Apply(payload); errs == nil {
		t.Error("expected validation failure for string amount")
	}

	delete(payload, "bill_amount")
	if errs := BillSchema.Apply(payload); errs != nil {
		t.Errorf("omitted amount should pass, got %v", errs)
	}
}

func TestBooleanRule(t *testing.T) {
	payload := validBillPayload()
	payload["bill_paid"] = "yes"
	errs := BillSchema.Apply(payload)
	if errs == nil {
		t.Fatal("expected validation failure for non-boolean flag")
	}
	if _, ok := errs["bill_paid"]; !ok {
		t.Errorf("expected error keyed on bill_paid, got %v", errs)
	}
}

func TestUnknownFieldsPassThrough(t *testing.T) {
	payload := validBillPayload()
	payload["some_future_field"] = map[string]interface{}{"nested": true}
	if errs := BillSchema.Apply(payload); errs != nil {
		t.Errorf("unknown fields must not fail validation, got %v", errs)
	}
}

func TestMultipleErrorsReported(t *testing.T) {
	payload := map[string]interface{}{
		"bill_date":   "garbage",
		"bill_amount": 1.25,
	}
	errs := BillSchema.Apply(payload)
	if len(errs) != 4 {
		t.Errorf("expected 4 errors (2 missing ids, bad date, bad amount), got %v", errs)
	}
}

func TestApplyTo(t *testing.T) {
	type billPayload struct {
		CustomerID     string `json:"customer_id,omitempty"`
		MeterReadingID string `json:"meter_reading_id,omitempty"`
		BillAmount     *int64 `json:"bill_amount,omitempty"`
	}

	amount := int64(200)
	if errs := BillSchema.ApplyTo(billPayload{
		CustomerID:     "c-1",
		MeterReadingID: "m-1",
		BillAmount:     &amount,
	}); errs != nil {
		t.Errorf("expected valid struct payload, got %v", errs)
	}

	errs := BillSchema.ApplyTo(billPayload{MeterReadingID: "m-1"})
	if errs == nil {
		t.Fatal("expected validation failure for missing customer_id")
	}
	if _, ok := errs["customer_id"]; !ok {
		t.Errorf("expected error keyed on customer_id, got %v", errs)
	}
}

func TestForEntity(t *testing.T) {
	for _, entity := range []string{"customer", "meter_reading", "bill", "assignment", "user", "company"} {
		if ForEntity(entity) == nil {
			t.Errorf("expected schema for %q", entity)
		}
	}
	if ForEntity("unknown") != nil {
		t.Error("unknown entity should have no schema")
	}
}
