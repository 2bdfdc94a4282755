package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer connects an account-holder user with the staff responsible for
// it. The three user foreign keys are distinct relations to the same table,
// disambiguated by role.
type Customer struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	AccountManagerID uuid.UUID `gorm:"type:uuid;index;not null" json:"account_manager_id"`
	MeterReaderID    uuid.UUID `gorm:"type:uuid;index;not null" json:"meter_reader_id"`

	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`

	User           *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AccountManager *User `gorm:"foreignKey:AccountManagerID" json:"account_manager,omitempty"`
	MeterReader    *User `gorm:"foreignKey:MeterReaderID" json:"meter_reader,omitempty"`

	Assignments   []Assignment   `gorm:"foreignKey:CustomerID" json:"assignment,omitempty"`
	Bills         []Bill         `gorm:"foreignKey:CustomerID" json:"bill,omitempty"`
	MeterReadings []MeterReading `gorm:"foreignKey:CustomerID" json:"meter_reading,omitempty"`

	// Filled at query time, never stored.
	Counts *CustomerCounts `gorm:"-" json:"_count,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerCounts struct {
	Assignment   int64 `json:"assignment"`
	Bill         int64 `json:"bill"`
	MeterReading int64 `json:"meter_reading"`
}

func (cu *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if cu.ID == uuid.Nil {
		cu.ID = uuid.New()
	}
	return
}
