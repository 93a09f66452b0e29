package dto

import "time"

// UserResponse represents a user record in API responses
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BoxID     int64     `json:"box_id"`
	Phone     *string   `json:"phone,omitempty"`
	Place     *string   `json:"place,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse represents the response for listing users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// PaymentResponse represents a payment record in API responses
type PaymentResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	PayFor    time.Time `json:"pay_for"`
	PayDate   time.Time `json:"pay_date"`
	Paid      float64   `json:"paid"`
	Balance   float64   `json:"balance"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentTotals carries the running totals over a payment listing. Computed
// on every read, never persisted.
type PaymentTotals struct {
	TotalPaid    float64 `json:"total_paid"`
	TotalBalance float64 `json:"total_balance"`
}

// PaymentListResponse represents the response for listing payments
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Totals   PaymentTotals     `json:"totals"`
	Total    int               `json:"total"`
}
