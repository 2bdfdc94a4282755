package client

import (
	"context"
	"net/http"

	"pngbilling-backend/models"
	"pngbilling-backend/validation"
)

// GetAssignments lists assignments matching the query filters.
func (c *Client) GetAssignments(ctx context.Context, query models.AssignmentQuery) (*Page[Assignment], error) {
	var page Page[Assignment]
	if err := c.do(ctx, http.MethodGet, "/api/assignments", query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAssignmentByID fetches one assignment with optional expansion.
func (c *Client) GetAssignmentByID(ctx context.Context, id string, expand ...string) (*Assignment, error) {
	var assignment Assignment
	if err := c.do(ctx, http.MethodGet, "/api/assignments/"+id, expandValues(expand), nil, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CreateAssignment validates and submits a new assignment.
func (c *Client) CreateAssignment(ctx context.Context, assignment Assignment) (*Assignment, error) {
	if errs := validation.AssignmentSchema.ApplyTo(assignment); errs != nil {
		return nil, errs
	}
	var created Assignment
	if err := c.do(ctx, http.MethodPost, "/api/assignments", nil, assignment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAssignmentByID validates and submits a full replacement payload.
func (c *Client) UpdateAssignmentByID(ctx context.Context, id string, assignment Assignment) (*Assignment, error) {
	if errs := validation.AssignmentSchema.ApplyTo(assignment); errs != nil {
		return nil, errs
	}
	var updated Assignment
	if err := c.do(ctx, http.MethodPut, "/api/assignments/"+id, nil, assignment, &updated); err != nil {
		return nil, translateUpdateError(err)
	}
	return &updated, nil
}

// DeleteAssignmentByID deletes an assignment and returns its last
// representation.
func (c *Client) DeleteAssignmentByID(ctx context.Context, id string) (*Assignment, error) {
	var deleted Assignment
	if err := c.do(ctx, http.MethodDelete, "/api/assignments/"+id, nil, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
