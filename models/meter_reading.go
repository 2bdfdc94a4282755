package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeterReading records one meter read for a customer. BillCalculated stays
// false until the billing service generates a Bill from it.
type MeterReading struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`

	ReadingDate    *Date  `json:"reading_date,omitempty"`
	ReadingValue   *int64 `json:"reading_value,omitempty"`
	BillCalculated bool   `gorm:"default:false" json:"bill_calculated"`
	BillAmount     *int64 `json:"bill_amount,omitempty"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Bills    []Bill    `gorm:"foreignKey:MeterReadingID" json:"bill,omitempty"`

	Counts *MeterReadingCounts `gorm:"-" json:"_count,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MeterReadingCounts struct {
	Bill int64 `json:"bill"`
}

func (mr *MeterReading) BeforeCreate(tx *gorm.DB) (err error) {
	if mr.ID == uuid.Nil {
		mr.ID = uuid.New()
	}
	return
}
