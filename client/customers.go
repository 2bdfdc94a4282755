package client

import (
	"context"
	"net/http"

	"pngbilling-backend/models"
	"pngbilling-backend/validation"
)

// GetCustomers lists customers matching the query filters.
func (c *Client) GetCustomers(ctx context.Context, query models.CustomerQuery) (*Page[Customer], error) {
	var page Page[Customer]
	if err := c.do(ctx, http.MethodGet, "/api/customers", query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCustomerByID fetches one customer with optional expansion. The three
// user relations expand individually: "user", "account_manager",
// "meter_reader".
func (c *Client) GetCustomerByID(ctx context.Context, id string, expand ...string) (*Customer, error) {
	var customer Customer
	if err := c.do(ctx, http.MethodGet, "/api/customers/"+id, expandValues(expand), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer validates and submits a new customer.
func (c *Client) CreateCustomer(ctx context.Context, customer Customer) (*Customer, error) {
	if errs := validation.CustomerSchema.ApplyTo(customer); errs != nil {
		return nil, errs
	}
	var created Customer
	if err := c.do(ctx, http.MethodPost, "/api/customers", nil, customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCustomerByID validates and submits a full replacement payload.
func (c *Client) UpdateCustomerByID(ctx context.Context, id string, customer Customer) (*Customer, error) {
	if errs := validation.CustomerSchema.ApplyTo(customer); errs != nil {
		return nil, errs
	}
	var updated Customer
	if err := c.do(ctx, http.MethodPut, "/api/customers/"+id, nil, customer, &updated); err != nil {
		return nil, translateUpdateError(err)
	}
	return &updated, nil
}

// DeleteCustomerByID deletes a customer and returns its last representation.
func (c *Client) DeleteCustomerByID(ctx context.Context, id string) (*Customer, error) {
	var deleted Customer
	if err := c.do(ctx, http.MethodDelete, "/api/customers/"+id, nil, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
