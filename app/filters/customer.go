package filters

import (
	"time"

	"gorm.io/gorm"
)

// CustomerFilter narrows customer listings. Zero-valued fields are ignored.
type CustomerFilter struct {
	Name            string // case-insensitive substring
	Email           string // case-insensitive substring
	Phone           string // case-insensitive substring
	PhoneStartsWith string // prefix match
	CreatedAtGTE    *time.Time
	CreatedAtLTE    *time.Time
}

// CustomerFilterFromArgs builds a CustomerFilter from GraphQL arguments.
func CustomerFilterFromArgs(args map[string]interface{}) CustomerFilter {
	return CustomerFilter{
		Name:            argString(args, "name"),
		Email:           argString(args, "email"),
		Phone:           argString(args, "phone"),
		PhoneStartsWith: argString(args, "phoneStartsWith"),
		CreatedAtGTE:    argTime(args, "createdAtGte"),
		CreatedAtLTE:    argTime(args, "createdAtLte"),
	}
}

// Apply adds the filter's predicates to tx.
func (f CustomerFilter) Apply(tx *gorm.DB) *gorm.DB {
	if f.Name != "" {
		tx = containsCI(tx, "customers.name", f.Name)
	}
	if f.Email != "" {
		tx = containsCI(tx, "customers.email", f.Email)
	}
	if f.Phone != "" {
		tx = containsCI(tx, "customers.phone", f.Phone)
	}
	if f.PhoneStartsWith != "" {
		tx = tx.Where("customers.phone LIKE ?", f.PhoneStartsWith+"%")
	}
	if f.CreatedAtGTE != nil {
		tx = tx.Where("customers.created_at >= ?", *f.CreatedAtGTE)
	}
	if f.CreatedAtLTE != nil {
		tx = tx.Where("customers.created_at <= ?", *f.CreatedAtLTE)
	}
	return tx
}
