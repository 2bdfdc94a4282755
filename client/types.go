package client

import (
	"time"

	"pngbilling-backend/models"
)

// Wire types for the REST boundary. Identifiers are opaque strings here;
// relation fields are only populated when the caller asks for expansion.

type User struct {
	ID        string   `json:"id,omitempty"`
	Email     string   `json:"email,omitempty"`
	Password  string   `json:"password,omitempty"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Role      string   `json:"role,omitempty"`
	CompanyID string   `json:"company_id,omitempty"`
	Company   *Company `json:"company,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Company struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	TenantID    string `json:"tenant_id,omitempty"`
	Users       []User `json:"user,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Customer struct {
	ID               string `json:"id,omitempty"`
	UserID           string `json:"user_id,omitempty"`
	AccountManagerID string `json:"account_manager_id,omitempty"`
	MeterReaderID    string `json:"meter_reader_id,omitempty"`
	Address          string `json:"address,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	ZipCode          string `json:"zip_code,omitempty"`

	User           *User `json:"user,omitempty"`
	AccountManager *User `json:"account_manager,omitempty"`
	MeterReader    *User `json:"meter_reader,omitempty"`

	Assignments   []Assignment   `json:"assignment,omitempty"`
	Bills         []Bill         `json:"bill,omitempty"`
	MeterReadings []MeterReading `json:"meter_reading,omitempty"`

	Counts *models.CustomerCounts `json:"_count,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type MeterReading struct {
	ID             string       `json:"id,omitempty"`
	CustomerID     string       `json:"customer_id,omitempty"`
	ReadingDate    *models.Date `json:"reading_date,omitempty"`
	ReadingValue   *int64       `json:"reading_value,omitempty"`
	BillCalculated *bool        `json:"bill_calculated,omitempty"`
	BillAmount     *int64       `json:"bill_amount,omitempty"`

	Customer *Customer `json:"customer,omitempty"`
	Bills    []Bill    `json:"bill,omitempty"`

	Counts *models.MeterReadingCounts `json:"_count,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Bill struct {
	ID             string       `json:"id,omitempty"`
	CustomerID     string       `json:"customer_id,omitempty"`
	MeterReadingID string       `json:"meter_reading_id,omitempty"`
	BillDate       *models.Date `json:"bill_date,omitempty"`
	BillAmount     *int64       `json:"bill_amount,omitempty"`
	BillPaid       *bool        `json:"bill_paid,omitempty"`

	Customer     *Customer     `json:"customer,omitempty"`
	MeterReading *MeterReading `json:"meter_reading,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Assignment struct {
	ID               string       `json:"id,omitempty"`
	CustomerID       string       `json:"customer_id,omitempty"`
	AccountManagerID string       `json:"account_manager_id,omitempty"`
	MeterReaderID    string       `json:"meter_reader_id,omitempty"`
	AssignmentDate   *models.Date `json:"assignment_date,omitempty"`

	Customer       *Customer `json:"customer,omitempty"`
	AccountManager *User     `json:"account_manager,omitempty"`
	MeterReader    *User     `json:"meter_reader,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
