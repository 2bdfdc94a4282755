package client

import (
	"context"
	"net/http"

	"pngbilling-backend/models"
	"pngbilling-backend/validation"
)

// GetCompanies lists companies.
func (c *Client) GetCompanies(ctx context.Context, query models.CompanyQuery) (*Page[Company], error) {
	var page Page[Company]
	if err := c.do(ctx, http.MethodGet, "/api/companies", query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCompanyByID fetches one company with optional expansion.
func (c *Client) GetCompanyByID(ctx context.Context, id string, expand ...string) (*Company, error) {
	var company Company
	if err := c.do(ctx, http.MethodGet, "/api/companies/"+id, expandValues(expand), nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// CreateCompany validates and submits a new company.
func (c *Client) CreateCompany(ctx context.Context, company Company) (*Company, error) {
	if errs := validation.CompanySchema.ApplyTo(company); errs != nil {
		return nil, errs
	}
	var created Company
	if err := c.do(ctx, http.MethodPost, "/api/companies", nil, company, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCompanyByID validates and submits a full replacement payload.
func (c *Client) UpdateCompanyByID(ctx context.Context, id string, company Company) (*Company, error) {
	if errs := validation.CompanySchema.ApplyTo(company); errs != nil {
		return nil, errs
	}
	var updated Company
	if err := c.do(ctx, http.MethodPut, "/api/companies/"+id, nil, company, &updated); err != nil {
		return nil, translateUpdateError(err)
	}
	return &updated, nil
}

// DeleteCompanyByID deletes a company and returns its last representation.
func (c *Client) DeleteCompanyByID(ctx context.Context, id string) (*Company, error) {
	var deleted Company
	if err := c.do(ctx, http.MethodDelete, "/api/companies/"+id, nil, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
