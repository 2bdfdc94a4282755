package client

import (
	"context"
	"net/http"

	"pngbilling-backend/models"
	"pngbilling-backend/validation"
)

// GetMeterReadings lists meter readings matching the query filters.
func (c *Client) GetMeterReadings(ctx context.Context, query models.MeterReadingQuery) (*Page[MeterReading], error) {
	var page Page[MeterReading]
	if err := c.do(ctx, http.MethodGet, "/api/meter-readings", query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetMeterReadingByID fetches one meter reading with optional expansion.
func (c *Client) GetMeterReadingByID(ctx context.Context, id string, expand ...string) (*MeterReading, error) {
	var reading MeterReading
	if err := c.do(ctx, http.MethodGet, "/api/meter-readings/"+id, expandValues(expand), nil, &reading); err != nil {
		return nil, err
	}
	return &reading, nil
}

// CreateMeterReading validates and submits a new meter reading.
func (c *Client) CreateMeterReading(ctx context.Context, reading MeterReading) (*MeterReading, error) {
	if errs := validation.MeterReadingSchema.ApplyTo(reading); errs != nil {
		return nil, errs
	}
	var created MeterReading
	if err := c.do(ctx, http.MethodPost, "/api/meter-readings", nil, reading, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateMeterReadingByID validates and submits a full replacement payload.
func (c *Client) UpdateMeterReadingByID(ctx context.Context, id string, reading MeterReading) (*MeterReading, error) {
	if errs := validation.MeterReadingSchema.ApplyTo(reading); errs != nil {
		return nil, errs
	}
	var updated MeterReading
	if err := c.do(ctx, http.MethodPut, "/api/meter-readings/"+id, nil, reading, &updated); err != nil {
		return nil, translateUpdateError(err)
	}
	return &updated, nil
}

// DeleteMeterReadingByID deletes a meter reading and returns its last
// representation.
func (c *Client) DeleteMeterReadingByID(ctx context.Context, id string) (*MeterReading, error) {
	var deleted MeterReading
	if err := c.do(ctx, http.MethodDelete, "/api/meter-readings/"+id, nil, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
