package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Unique index names, kept in sync with the gorm tags in the schema package.
const (
	idxUsersName          = "idx_users_name"
	idxUsersBoxID         = "idx_users_box_id"
	idxPaymentsOwnerMonth = "idx_payments_owner_period"
)

// DuplicateKeyError reports a unique-constraint violation on a single user
// field, so callers can surface a field-level message.
type DuplicateKeyError struct {
	// Field is the conflicting column: "name" or "box_id"
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return e.Field + " already exists"
}

// ErrDuplicatePeriod is returned when an insert or update collides with the
// (owner_id, year, month) unique index: the owner already has a payment
// covering that calendar month.
var ErrDuplicatePeriod = errors.New("payment already exists for this month")

// translateUniqueViolation maps a postgres unique violation (SQLSTATE 23505)
// onto the store's typed errors. Any other error is returned unchanged.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, idxUsersName):
		return &DuplicateKeyError{Field: "name"}
	case strings.Contains(pgErr.ConstraintName, idxUsersBoxID):
		return &DuplicateKeyError{Field: "box_id"}
	case strings.Contains(pgErr.ConstraintName, idxPaymentsOwnerMonth):
		return ErrDuplicatePeriod
	}
	return err
}
