package models

import (
	"regexp"
	"time"
)

// PhoneRE accepts "+999999999" (9 to 15 digits, optional leading country "1")
// or "999-999-9999". An empty phone is allowed; the field is optional.
var PhoneRE = regexp.MustCompile(`^\+?1?\d{9,15}$|^\d{3}-\d{3}-\d{4}$`)

// Customer is a CRM contact. Records are created once and never updated or
// deleted through the API; default listing order is newest-first.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone     string    `gorm:"size:17" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Deleting a customer cascades to their orders.
	Orders []Order `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ValidPhone reports whether phone is empty or matches one of the two
// accepted formats.
func ValidPhone(phone string) bool {
	return phone == "" || PhoneRE.MatchString(phone)
}
