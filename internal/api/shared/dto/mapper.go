package dto

import (
	"github.com/sureshkalyan1000/CableOpreator/internal/store/schema"
)

// MapUserToDTO converts a stored user record to its API representation
func MapUserToDTO(user *schema.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		BoxID:     user.BoxID,
		Phone:     user.Phone,
		Place:     user.Place,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapPaymentToDTO converts a stored payment record to its API representation
func MapPaymentToDTO(payment *schema.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        payment.ID,
		OwnerID:   payment.OwnerID,
		PayFor:    payment.PayFor,
		PayDate:   payment.PayDate,
		Paid:      payment.Paid,
		Balance:   payment.Balance,
		Month:     payment.Month,
		Year:      payment.Year,
		CreatedAt: payment.CreatedAt,
		UpdatedAt: payment.UpdatedAt,
	}
}
