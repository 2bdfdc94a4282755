package client

import (
	"context"
	"net/http"

	"pngbilling-backend/models"
	"pngbilling-backend/validation"
)

// GetBills lists bills matching the query filters.
func (c *Client) GetBills(ctx context.Context, query models.BillQuery) (*Page[Bill], error) {
	var page Page[Bill]
	if err := c.do(ctx, http.MethodGet, "/api/bills", query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBillByID fetches one bill. expand names relations to include inline,
// e.g. "customer", "meter_reading".
func (c *Client) GetBillByID(ctx context.Context, id string, expand ...string) (*Bill, error) {
	var bill Bill
	if err := c.do(ctx, http.MethodGet, "/api/bills/"+id, expandValues(expand), nil, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// CreateBill validates and submits a new bill. A validation failure returns
// the field-keyed errors without touching the network.
func (c *Client) CreateBill(ctx context.Context, bill Bill) (*Bill, error) {
	if errs := validation.BillSchema.ApplyTo(bill); errs != nil {
		return nil, errs
	}
	var created Bill
	if err := c.do(ctx, http.MethodPost, "/api/bills", nil, bill, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBillByID validates and submits a full replacement payload. A 403
// from the API comes back as ErrPermissionDenied.
func (c *Client) UpdateBillByID(ctx context.Context, id string, bill Bill) (*Bill, error) {
	if errs := validation.BillSchema.ApplyTo(bill); errs != nil {
		return nil, errs
	}
	var updated Bill
	if err := c.do(ctx, http.MethodPut, "/api/bills/"+id, nil, bill, &updated); err != nil {
		return nil, translateUpdateError(err)
	}
	return &updated, nil
}

// DeleteBillByID deletes a bill and returns its last representation.
func (c *Client) DeleteBillByID(ctx context.Context, id string) (*Bill, error) {
	var deleted Bill
	if err := c.do(ctx, http.MethodDelete, "/api/bills/"+id, nil, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
