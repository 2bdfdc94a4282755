package models

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func bindQuery(t *testing.T, rawQuery string, out interface{}) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if err := binding.Query.Bind(req, out); err != nil {
		t.Fatalf("binding query: %v", err)
	}
}

func TestBillQueryRoundTrip(t *testing.T) {
	original := BillQuery{
		ListQuery:      ListQuery{Limit: 50, Offset: 10},
		CustomerID:     "c1",
		MeterReadingID: "m1",
	}

	encoded := original.Values().Encode()

	var decoded BillQuery
	bindQuery(t, encoded, &decoded)

	if decoded != original {
		t.Errorf("round trip changed the query: got %+v, expected %+v", decoded, original)
	}
	if reencoded := decoded.Values().Encode(); reencoded != encoded {
		t.Errorf("re-serialization not stable: %q vs %q", reencoded, encoded)
	}
}

func TestCustomerQueryRoundTrip(t *testing.T) {
	original := CustomerQuery{
		ID:               "cust-1",
		UserID:           "u-1",
		AccountManagerID: "u-2",
		MeterReaderID:    "u-3",
	}

	encoded := original.Values().Encode()

	var decoded CustomerQuery
	bindQuery(t, encoded, &decoded)

	if decoded != original {
		t.Errorf("round trip changed the query: got %+v, expected %+v", decoded, original)
	}
}

func TestEmptyQuerySerializesEmpty(t *testing.T) {
	if encoded := (MeterReadingQuery{}).Values().Encode(); encoded != "" {
		t.Errorf("empty query should serialize to nothing, got %q", encoded)
	}
}

func TestUnrecognizedParamsIgnored(t *testing.T) {
	var decoded MeterReadingQuery
	bindQuery(t, "customer_id=c1&future_param=whatever", &decoded)

	if decoded.CustomerID != "c1" {
		t.Errorf("expected customer_id to bind, got %+v", decoded)
	}
}

func TestListQueryNormalize(t *testing.T) {
	tests := []struct {
		name           string
		in             ListQuery
		limit, offset int
	}{
		{"defaults", ListQuery{}, DefaultPageSize, 0},
		{"capped", ListQuery{Limit: 1000}, MaxPageSize, 0},
		{"negative offset", ListQuery{Limit: 10, Offset: -5}, 10, 0},
		{"kept as-is", ListQuery{Limit: 30, Offset: 60}, 30, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			if tt.in.Limit != tt.limit || tt.in.Offset != tt.offset {
				t.Errorf("got limit=%d offset=%d, expected limit=%d offset=%d",
					tt.in.Limit, tt.in.Offset, tt.limit, tt.offset)
			}
		})
	}
}
