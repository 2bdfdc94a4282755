package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill belongs to exactly one customer and one meter reading. CustomerID is
// deliberately carried alongside MeterReadingID and never cross-checked
// against the reading's customer; the billing service writes them
// consistent, the API treats them as independent fields.
type Bill struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID     uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	MeterReadingID uuid.UUID `gorm:"type:uuid;index;not null" json:"meter_reading_id"`

	BillDate   *Date  `json:"bill_date,omitempty"`
	BillAmount *int64 `json:"bill_amount,omitempty"`
	BillPaid   *bool  `gorm:"default:false" json:"bill_paid,omitempty"`

	Customer     *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	MeterReading *MeterReading `gorm:"foreignKey:MeterReadingID" json:"meter_reading,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
