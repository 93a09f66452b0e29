package store

import (
	"context"
	"time"

	"github.com/sureshkalyan1000/CableOpreator/internal/store/schema"
)

// UserUpdate enumerates the mutable fields of a user record. Identity is
// never updatable; every field here is replaced on update.
type UserUpdate struct {
	Name  string
	BoxID int64
	Phone *string
	Place *string
}

// PaymentUpdate enumerates the mutable fields of a payment record. Nil
// pointers leave the stored value untouched. The owner reference and identity
// are immutable and intentionally absent. When PayFor is set, Month and Year
// carry the rederived values.
type PaymentUpdate struct {
	PayFor  *time.Time
	PayDate *time.Time
	Paid    *float64
	Balance *float64
	Month   int
	Year    int
}

// PaymentFilter narrows a payment listing. Zero values mean "no filter".
// Month and year are independent: both set selects the exact month window,
// year alone selects the full calendar year inclusive of both bounds.
type PaymentFilter struct {
	OwnerID string
	Month   int // 1-12
	Year    int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks
type Store interface {
	// CreateUser inserts a new user, assigning its ID if empty.
	// A uniqueness conflict surfaces as *DuplicateKeyError.
	CreateUser(ctx context.Context, user *schema.User) error
	// GetUserByID retrieves a user by ID, or nil if absent
	GetUserByID(ctx context.Context, id string) (*schema.User, error)
	// ListUsers retrieves all users ordered by creation time descending
	ListUsers(ctx context.Context) ([]schema.User, error)
	// UpdateUser replaces the mutable fields of a user and returns the
	// updated record, or nil if absent
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*schema.User, error)
	// DeleteUser removes a user and returns the deleted record, or nil if
	// absent. Payments owned by the user are left in place.
	DeleteUser(ctx context.Context, id string) (*schema.User, error)

	// CreatePayment inserts a new payment, assigning its ID if empty.
	// A period conflict surfaces as ErrDuplicatePeriod.
	CreatePayment(ctx context.Context, payment *schema.Payment) error
	// GetPaymentByID retrieves a payment by ID, or nil if absent
	GetPaymentByID(ctx context.Context, id string) (*schema.Payment, error)
	// ListPayments retrieves payments matching the filter, ordered by
	// pay_for descending then pay_date descending
	ListPayments(ctx context.Context, filter PaymentFilter) ([]schema.Payment, error)
	// FindPaymentForPeriod returns the payment owned by ownerID whose
	// pay_for falls in [start, end), or nil if none. A non-empty excludeID
	// leaves that record out of the search, so an update does not collide
	// with itself.
	FindPaymentForPeriod(ctx context.Context, ownerID string, start, end time.Time, excludeID string) (*schema.Payment, error)
	// UpdatePayment applies the non-nil fields of update and returns the
	// updated record, or nil if absent
	UpdatePayment(ctx context.Context, id string, update PaymentUpdate) (*schema.Payment, error)
	// DeletePayment removes a payment and returns the deleted record, or
	// nil if absent
	DeletePayment(ctx context.Context, id string) (*schema.Payment, error)
}
