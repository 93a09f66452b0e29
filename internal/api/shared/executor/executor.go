package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sureshkalyan1000/CableOpreator/internal/api/shared/dto"
	apierrors "github.com/sureshkalyan1000/CableOpreator/internal/api/shared/errors"
	"github.com/sureshkalyan1000/CableOpreator/internal/domain"
	"github.com/sureshkalyan1000/CableOpreator/internal/store"
	"github.com/sureshkalyan1000/CableOpreator/internal/store/schema"
)

// Executor is the interface for the API business logic. Handlers stay thin;
// validation, normalization and invariant checks live here.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ListUsers retrieves all users, newest first
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
	// CreateUser validates and creates a new user
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	// GetUser retrieves a user by ID; nil, nil when absent
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)
	// UpdateUser replaces the mutable fields of a user; nil, nil when absent
	UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	// DeleteUser removes a user and returns the deleted record; nil, nil
	// when absent. The user's payments are left in place.
	DeleteUser(ctx context.Context, id string) (*dto.UserResponse, error)

	// ListPayments retrieves payments filtered by owner and period, with
	// running totals over the listed set
	ListPayments(ctx context.Context, ownerID string, month, year int) (*dto.PaymentListResponse, error)
	// CreatePayment validates, normalizes and creates a new payment,
	// enforcing one payment per owner per calendar month
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	// GetPayment retrieves a payment by ID; nil, nil when absent
	GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error)
	// UpdatePayment applies a partial update to a payment; nil, nil when
	// absent. The owner reference is immutable.
	UpdatePayment(ctx context.Context, id string, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	// DeletePayment removes a payment and returns the deleted record;
	// nil, nil when absent
	DeletePayment(ctx context.Context, id string) (*dto.PaymentResponse, error)
}

type executor struct {
	store store.Store
}

// NewExecutor creates the executor over the given store
func NewExecutor(s store.Store) Executor {
	return &executor{store: s}
}

func (e *executor) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := e.store.ListUsers(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to fetch users: %v", err))
	}

	userDTOs := make([]dto.UserResponse, len(users))
	for i := range users {
		userDTOs[i] = *dto.MapUserToDTO(&users[i])
	}
	return &dto.UserListResponse{Users: userDTOs, Total: len(userDTOs)}, nil
}

func (e *executor) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if apiErr := req.Validate(); apiErr != nil {
		return nil, apiErr
	}

	user := &schema.User{
		Name:  strings.TrimSpace(*req.Name),
		BoxID: *req.BoxID,
		Phone: trimmed(req.Phone),
		Place: trimmed(req.Place),
	}

	if err := e.store.CreateUser(ctx, user); err != nil {
		return nil, translateStoreError(err, "Failed to create user")
	}
	return dto.MapUserToDTO(user), nil
}

func (e *executor) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := e.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to fetch user: %v", err))
	}
	if user == nil {
		return nil, nil
	}
	return dto.MapUserToDTO(user), nil
}

func (e *executor) UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if apiErr := req.Validate(); apiErr != nil {
		return nil, apiErr
	}

	update := store.UserUpdate{
		Name:  strings.TrimSpace(*req.Name),
		BoxID: *req.BoxID,
		Phone: trimmed(req.Phone),
		Place: trimmed(req.Place),
	}

	user, err := e.store.UpdateUser(ctx, id, update)
	if err != nil {
		return nil, translateStoreError(err, "Failed to update user")
	}
	if user == nil {
		return nil, nil
	}
	return dto.MapUserToDTO(user), nil
}

func (e *executor) DeleteUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	// Payments referencing this user remain untouched: the relation is
	// queried, not cascaded.
	user, err := e.store.DeleteUser(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete user: %v", err))
	}
	if user == nil {
		return nil, nil
	}
	return dto.MapUserToDTO(user), nil
}

func (e *executor) ListPayments(ctx context.Context, ownerID string, month, year int) (*dto.PaymentListResponse, error) {
	if ownerID != "" {
		if _, err := uuid.Parse(ownerID); err != nil {
			return nil, apierrors.NewBadRequestError("Invalid user ID format")
		}
	}
	if month != 0 && (month < 1 || month > 12) {
		return nil, apierrors.NewBadRequestError("month must be between 1 and 12")
	}

	payments, err := e.store.ListPayments(ctx, store.PaymentFilter{
		OwnerID: ownerID,
		Month:   month,
		Year:    year,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to fetch payments: %v", err))
	}

	paymentDTOs := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		paymentDTOs[i] = *dto.MapPaymentToDTO(&payments[i])
	}
	return &dto.PaymentListResponse{
		Payments: paymentDTOs,
		Totals:   Totals(payments),
		Total:    len(paymentDTOs),
	}, nil
}

func (e *executor) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if apiErr := req.Validate(); apiErr != nil {
		return nil, apiErr
	}

	ownerID := *req.OwnerID
	if _, err := uuid.Parse(ownerID); err != nil {
		return nil, apierrors.NewBadRequestError("Invalid user ID format")
	}

	payFor, err := domain.ParsePeriod(*req.PayFor)
	if err != nil {
		return nil, apierrors.NewInvalidDateError("pay_for: " + *req.PayFor)
	}
	payDate, err := domain.ParseEntryDate(*req.PayDate)
	if err != nil {
		return nil, apierrors.NewInvalidDateError("pay_date: " + *req.PayDate)
	}

	paid := req.Paid.Float64()
	if paid < 0 {
		return nil, apierrors.NewInvalidAmountError("paid must not be negative")
	}
	var balance float64
	if req.Balance != nil {
		balance = req.Balance.Float64()
	}

	owner, err := e.store.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to fetch user: %v", err))
	}
	if owner == nil {
		return nil, apierrors.NewOwnerNotFoundError()
	}

	// Fast path for a friendly conflict response. The compound unique index
	// on (owner_id, year, month) is the authority and closes the race below.
	start, end := domain.MonthWindow(payFor)
	existing, err := e.store.FindPaymentForPeriod(ctx, ownerID, start, end, "")
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to check for existing payment: %v", err))
	}
	if existing != nil {
		return nil, apierrors.NewDuplicatePeriodError(dto.MapPaymentToDTO(existing))
	}

	payment := &schema.Payment{
		OwnerID: ownerID,
		PayFor:  payFor,
		PayDate: payDate,
		Paid:    paid,
		Balance: balance,
		Month:   int(payFor.Month()),
		Year:    payFor.Year(),
	}

	if err := e.store.CreatePayment(ctx, payment); err != nil {
		if errors.Is(err, store.ErrDuplicatePeriod) {
			// Lost the race: another writer inserted the month first.
			conflicting, findErr := e.store.FindPaymentForPeriod(ctx, ownerID, start, end, "")
			if findErr == nil && conflicting != nil {
				return nil, apierrors.NewDuplicatePeriodError(dto.MapPaymentToDTO(conflicting))
			}
			return nil, apierrors.NewDuplicatePeriodError(nil)
		}
		return nil, translateStoreError(err, "Failed to create payment")
	}
	return dto.MapPaymentToDTO(payment), nil
}

func (e *executor) GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	payment, err := e.store.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to fetch payment: %v", err))
	}
	if payment == nil {
		return nil, nil
	}
	return dto.MapPaymentToDTO(payment), nil
}

func (e *executor) UpdatePayment(ctx context.Context, id string, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	existing, err := e.store.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to fetch payment: %v", err))
	}
	if existing == nil {
		return nil, nil
	}

	var update store.PaymentUpdate

	if req.PayFor != nil {
		payFor, err := domain.ParsePeriod(*req.PayFor)
		if err != nil {
			return nil, apierrors.NewInvalidDateError("pay_for: " + *req.PayFor)
		}

		// Moving the payment to another month must not land on a month the
		// owner already covers. The record under edit is excluded so a no-op
		// edit still satisfies the invariant.
		start, end := domain.MonthWindow(payFor)
		conflicting, err := e.store.FindPaymentForPeriod(ctx, existing.OwnerID, start, end, existing.ID)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to check for existing payment: %v", err))
		}
		if conflicting != nil {
			return nil, apierrors.NewDuplicatePeriodError(dto.MapPaymentToDTO(conflicting))
		}

		update.PayFor = &payFor
		update.Month = int(payFor.Month())
		update.Year = payFor.Year()
	}

	if req.PayDate != nil {
		payDate, err := domain.ParseEntryDate(*req.PayDate)
		if err != nil {
			return nil, apierrors.NewInvalidDateError("pay_date: " + *req.PayDate)
		}
		update.PayDate = &payDate
	}

	if req.Paid != nil {
		paid := req.Paid.Float64()
		if paid < 0 {
			return nil, apierrors.NewInvalidAmountError("paid must not be negative")
		}
		update.Paid = &paid
	}
	if req.Balance != nil {
		balance := req.Balance.Float64()
		update.Balance = &balance
	}

	payment, err := e.store.UpdatePayment(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrDuplicatePeriod) {
			return nil, apierrors.NewDuplicatePeriodError(nil)
		}
		return nil, translateStoreError(err, "Failed to update payment")
	}
	if payment == nil {
		return nil, nil
	}
	return dto.MapPaymentToDTO(payment), nil
}

func (e *executor) DeletePayment(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	payment, err := e.store.DeletePayment(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete payment: %v", err))
	}
	if payment == nil {
		return nil, nil
	}
	return dto.MapPaymentToDTO(payment), nil
}

// Totals sums the paid and balance amounts over a set of payments. Pure
// function, recomputed on every read.
func Totals(payments []schema.Payment) dto.PaymentTotals {
	var totals dto.PaymentTotals
	for i := range payments {
		totals.TotalPaid += payments[i].Paid
		totals.TotalBalance += payments[i].Balance
	}
	return totals
}

// translateStoreError maps typed store errors onto API errors; anything else
// becomes a database error with the given message.
func translateStoreError(err error, message string) error {
	var dup *store.DuplicateKeyError
	if errors.As(err, &dup) {
		return apierrors.NewDuplicateKeyError(dup.Field)
	}
	return apierrors.NewDatabaseError(fmt.Sprintf("%s: %v", message, err))
}

// trimmed trims the pointed-to string, mapping empty results to nil
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
