package dto

import (
	"strings"

	apierrors "github.com/sureshkalyan1000/CableOpreator/internal/api/shared/errors"
	"github.com/sureshkalyan1000/CableOpreator/internal/domain"
)

// CreateUserRequest is the body of POST /users. Pointer fields distinguish
// "absent" from zero values so missing-field errors can name every offender.
type CreateUserRequest struct {
	Name  *string `json:"name"`
	BoxID *int64  `json:"box_id"`
	Phone *string `json:"phone"`
	Place *string `json:"place"`
}

// Validate checks required fields and the phone pattern
func (r *CreateUserRequest) Validate() *apierrors.APIError {
	var missing []string
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		missing = append(missing, "name")
	}
	// Box number 0 is the "unset" default and is not acceptable on create
	if r.BoxID == nil || *r.BoxID == 0 {
		missing = append(missing, "box_id")
	}
	if r.Phone == nil || strings.TrimSpace(*r.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return apierrors.NewMissingFieldError(missing...)
	}

	if !domain.ValidPhone(strings.TrimSpace(*r.Phone)) {
		return apierrors.NewBadRequestError("Please enter a valid phone number")
	}
	return nil
}

// UpdateUserRequest is the body of PUT /users/:id. An update replaces every
// mutable field, so the same required set applies as on create. Unknown keys
// are rejected by DecodeStrict.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	BoxID *int64  `json:"box_id"`
	Phone *string `json:"phone"`
	Place *string `json:"place"`
}

// Validate checks required fields and the phone pattern
func (r *UpdateUserRequest) Validate() *apierrors.APIError {
	create := CreateUserRequest{Name: r.Name, BoxID: r.BoxID, Phone: r.Phone, Place: r.Place}
	return create.Validate()
}

// CreatePaymentRequest is the body of POST /payments. Dates arrive as raw
// strings and are run through the domain date normalizer; amounts coerce via
// the Amount type.
type CreatePaymentRequest struct {
	OwnerID *string `json:"owner_id"`
	PayFor  *string `json:"pay_for"`
	PayDate *string `json:"pay_date"`
	Paid    *Amount `json:"paid"`
	Balance *Amount `json:"balance"`
}

// Validate checks that every required field is present
func (r *CreatePaymentRequest) Validate() *apierrors.APIError {
	var missing []string
	if r.OwnerID == nil || *r.OwnerID == "" {
		missing = append(missing, "owner_id")
	}
	if r.PayFor == nil || *r.PayFor == "" {
		missing = append(missing, "pay_for")
	}
	if r.PayDate == nil || *r.PayDate == "" {
		missing = append(missing, "pay_date")
	}
	if r.Paid == nil {
		missing = append(missing, "paid")
	}
	if len(missing) > 0 {
		return apierrors.NewMissingFieldError(missing...)
	}
	return nil
}

// UpdatePaymentRequest is the body of PUT /payments/:id. Every field is
// optional; the owner reference and identity are immutable and deliberately
// not listed, so payloads carrying them fail strict decoding.
type UpdatePaymentRequest struct {
	PayFor  *string `json:"pay_for"`
	PayDate *string `json:"pay_date"`
	Paid    *Amount `json:"paid"`
	Balance *Amount `json:"balance"`
}
