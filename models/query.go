package models

import (
	"net/url"
	"strconv"
)

// ListQuery carries the pagination part of every collection request.
// Ordering is fixed server-side (created_at desc); everything else on a
// query struct is an exact-match filter. Unknown query params are ignored,
// the contract is additive.
type ListQuery struct {
	Limit  int `form:"limit" json:"limit,omitempty"`
	Offset int `form:"offset" json:"offset,omitempty"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize clamps pagination to sane bounds.
func (q *ListQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	return v
}

func setIfPresent(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

type CustomerQuery struct {
	ListQuery
	ID               string `form:"id" json:"id,omitempty"`
	UserID           string `form:"user_id" json:"user_id,omitempty"`
	AccountManagerID string `form:"account_manager_id" json:"account_manager_id,omitempty"`
	MeterReaderID    string `form:"meter_reader_id" json:"meter_reader_id,omitempty"`
}

func (q CustomerQuery) Values() url.Values {
	v := q.values()
	setIfPresent(v, "id", q.ID)
	setIfPresent(v, "user_id", q.UserID)
	setIfPresent(v, "account_manager_id", q.AccountManagerID)
	setIfPresent(v, "meter_reader_id", q.MeterReaderID)
	return v
}

type MeterReadingQuery struct {
	ListQuery
	ID         string `form:"id" json:"id,omitempty"`
	CustomerID string `form:"customer_id" json:"customer_id,omitempty"`
}

func (q MeterReadingQuery) Values() url.Values {
	v := q.values()
	setIfPresent(v, "id", q.ID)
	setIfPresent(v, "customer_id", q.CustomerID)
	return v
}

type BillQuery struct {
	ListQuery
	ID             string `form:"id" json:"id,omitempty"`
	CustomerID     string `form:"customer_id" json:"customer_id,omitempty"`
	MeterReadingID string `form:"meter_reading_id" json:"meter_reading_id,omitempty"`
}

func (q BillQuery) Values() url.Values {
	v := q.values()
	setIfPresent(v, "id", q.ID)
	setIfPresent(v, "customer_id", q.CustomerID)
	setIfPresent(v, "meter_reading_id", q.MeterReadingID)
	return v
}

type AssignmentQuery struct {
	ListQuery
	ID               string `form:"id" json:"id,omitempty"`
	CustomerID       string `form:"customer_id" json:"customer_id,omitempty"`
	AccountManagerID string `form:"account_manager_id" json:"account_manager_id,omitempty"`
	MeterReaderID    string `form:"meter_reader_id" json:"meter_reader_id,omitempty"`
}

func (q AssignmentQuery) Values() url.Values {
	v := q.values()
	setIfPresent(v, "id", q.ID)
	setIfPresent(v, "customer_id", q.CustomerID)
	setIfPresent(v, "account_manager_id", q.AccountManagerID)
	setIfPresent(v, "meter_reader_id", q.MeterReaderID)
	return v
}

type UserQuery struct {
	ListQuery
	ID        string `form:"id" json:"id,omitempty"`
	CompanyID string `form:"company_id" json:"company_id,omitempty"`
	Role      string `form:"role" json:"role,omitempty"`
}

func (q UserQuery) Values() url.Values {
	v := q.values()
	setIfPresent(v, "id", q.ID)
	setIfPresent(v, "company_id", q.CompanyID)
	setIfPresent(v, "role", q.Role)
	return v
}

type CompanyQuery struct {
	ListQuery
	ID string `form:"id" json:"id,omitempty"`
}

func (q CompanyQuery) Values() url.Values {
	v := q.values()
	setIfPresent(v, "id", q.ID)
	return v
}
