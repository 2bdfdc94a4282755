package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment links a customer to the account manager and meter reader
// responsible for it as of AssignmentDate.
type Assignment struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	AccountManagerID uuid.UUID `gorm:"type:uuid;index;not null" json:"account_manager_id"`
	MeterReaderID    uuid.UUID `gorm:"type:uuid;index;not null" json:"meter_reader_id"`

	AssignmentDate *Date `json:"assignment_date,omitempty"`

	Customer       *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	AccountManager *User     `gorm:"foreignKey:AccountManagerID" json:"account_manager,omitempty"`
	MeterReader    *User     `gorm:"foreignKey:MeterReaderID" json:"meter_reader,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Assignment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
