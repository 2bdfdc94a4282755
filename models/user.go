// models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles recognized by the authorization layer.
const (
	RoleBusinessOwner  = "business_owner"
	RoleAccountManager = "account_manager"
	RoleMeterReader    = "meter_reader"
	RoleEndCustomer    = "end_customer"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`

	Role      string     `gorm:"type:varchar(32);not null" json:"role"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index" json:"company_id,omitempty"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Initialize UUID before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
