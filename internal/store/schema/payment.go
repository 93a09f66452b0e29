package schema

import (
	"time"
)

// Payment represents the payments table - one monthly fee payment per user
// per calendar month. There is deliberately no foreign key to users: deleting
// a user leaves its payments in place (queried, never cascaded).
type Payment struct {
	// ID is an opaque unique identifier (UUID), assigned on creation
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// OwnerID references the owning user; immutable after creation
	OwnerID string `gorm:"column:owner_id;not null;type:varchar(36);index:idx_payments_owner;uniqueIndex:idx_payments_owner_period,priority:1"`
	// PayFor is the calendar month the payment covers, canonicalized to the
	// first day of that month (UTC, no time-of-day significance)
	PayFor time.Time `gorm:"column:pay_for;not null;type:timestamptz;index:idx_payments_pay_for,sort:desc"`
	// PayDate is the date the payment was actually made or recorded
	PayDate time.Time `gorm:"column:pay_date;not null;type:timestamptz"`
	// Paid is the non-negative amount paid for the month
	Paid float64 `gorm:"column:paid;not null;type:numeric(12,2)"`
	// Balance is the running balance after this payment: negative = due,
	// zero = clear, positive = credit
	Balance float64 `gorm:"column:balance;not null;default:0;type:numeric(12,2)"`
	// Month is derived from PayFor (1-12), stored redundantly for queries.
	// The (owner_id, year, month) unique index is the authority for the
	// one-payment-per-user-per-month invariant.
	Month int `gorm:"column:month;not null;uniqueIndex:idx_payments_owner_period,priority:3;check:chk_payments_month,month >= 1 AND month <= 12"`
	// Year is derived from PayFor, stored redundantly for queries
	Year int `gorm:"column:year;not null;uniqueIndex:idx_payments_owner_period,priority:2"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
