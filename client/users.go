package client

import (
	"context"
	"net/http"

	"pngbilling-backend/models"
	"pngbilling-backend/validation"
)

// GetUsers lists users matching the query filters. Filtering on role backs
// the staff lookups when building customers and assignments.
func (c *Client) GetUsers(ctx context.Context, query models.UserQuery) (*Page[User], error) {
	var page Page[User]
	if err := c.do(ctx, http.MethodGet, "/api/users", query.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetUserByID fetches one user with optional expansion.
func (c *Client) GetUserByID(ctx context.Context, id string, expand ...string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, expandValues(expand), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser validates and submits a new user.
func (c *Client) CreateUser(ctx context.Context, user User) (*User, error) {
	if errs := validation.UserSchema.ApplyTo(user); errs != nil {
		return nil, errs
	}
	var created User
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUserByID validates and submits a full replacement payload.
func (c *Client) UpdateUserByID(ctx context.Context, id string, user User) (*User, error) {
	if errs := validation.UserSchema.ApplyTo(user); errs != nil {
		return nil, errs
	}
	var updated User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id, nil, user, &updated); err != nil {
		return nil, translateUpdateError(err)
	}
	return &updated, nil
}

// DeleteUserByID deletes a user and returns its last representation.
func (c *Client) DeleteUserByID(ctx context.Context, id string) (*User, error) {
	var deleted User
	if err := c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
