package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sureshkalyan1000/CableOpreator/internal/domain"
	"github.com/sureshkalyan1000/CableOpreator/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the users and payments tables, including the
// unique indexes that enforce the name/box_id and owner-period invariants.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schema.User{}, &schema.Payment{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open
// connections, 5 idle, 5m max lifetime, 10m max idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateUser inserts a new user, assigning its ID if empty
func (s *pgStore) CreateUser(ctx context.Context, user *schema.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if translated := translateUniqueViolation(err); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (s *pgStore) GetUserByID(ctx context.Context, id string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// ListUsers retrieves all users, newest first
func (s *pgStore) ListUsers(ctx context.Context) ([]schema.User, error) {
	var users []schema.User
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser replaces the mutable fields of a user
func (s *pgStore) UpdateUser(ctx context.Context, id string, update UserUpdate) (*schema.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	user.Name = update.Name
	user.BoxID = update.BoxID
	user.Phone = update.Phone
	user.Place = update.Place
	user.UpdatedAt = time.Now().UTC()

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if translated := translateUniqueViolation(err); translated != err {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user. Its payments are intentionally left in place.
func (s *pgStore) DeleteUser(ctx context.Context, id string) (*schema.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if err := s.db.WithContext(ctx).Delete(&schema.User{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return user, nil
}

// CreatePayment inserts a new payment, assigning its ID if empty
func (s *pgStore) CreatePayment(ctx context.Context, payment *schema.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(payment).Error; err != nil {
		if translated := translateUniqueViolation(err); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetPaymentByID retrieves a payment by ID
func (s *pgStore) GetPaymentByID(ctx context.Context, id string) (*schema.Payment, error) {
	var payment schema.Payment
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// ListPayments retrieves payments matching the filter, ordered by pay_for
// descending then pay_date descending
func (s *pgStore) ListPayments(ctx context.Context, filter PaymentFilter) ([]schema.Payment, error) {
	query := s.db.WithContext(ctx).Model(&schema.Payment{})

	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}

	if filter.Month != 0 && filter.Year != 0 {
		// Exact month: [first of month, first of next month)
		start, end := domain.MonthWindow(time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC))
		query = query.Where("pay_for >= ? AND pay_for < ?", start, end)
	} else if filter.Year != 0 {
		// Full calendar year, inclusive of both bounds
		start, end := domain.YearWindow(filter.Year)
		query = query.Where("pay_for >= ? AND pay_for <= ?", start, end)
	}

	var payments []schema.Payment
	if err := query.Order("pay_for DESC, pay_date DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// FindPaymentForPeriod returns the payment owned by ownerID whose pay_for
// falls in [start, end), excluding excludeID when non-empty
func (s *pgStore) FindPaymentForPeriod(ctx context.Context, ownerID string, start, end time.Time, excludeID string) (*schema.Payment, error) {
	query := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Where("pay_for >= ? AND pay_for < ?", start, end)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var payment schema.Payment
	err := query.First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment for period: %w", err)
	}
	return &payment, nil
}

// UpdatePayment applies the non-nil fields of update
func (s *pgStore) UpdatePayment(ctx context.Context, id string, update PaymentUpdate) (*schema.Payment, error) {
	payment, err := s.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}

	if update.PayFor != nil {
		payment.PayFor = *update.PayFor
		payment.Month = update.Month
		payment.Year = update.Year
	}
	if update.PayDate != nil {
		payment.PayDate = *update.PayDate
	}
	if update.Paid != nil {
		payment.Paid = *update.Paid
	}
	if update.Balance != nil {
		payment.Balance = *update.Balance
	}
	payment.UpdatedAt = time.Now().UTC()

	if err := s.db.WithContext(ctx).Save(payment).Error; err != nil {
		if translated := translateUniqueViolation(err); translated != err {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return payment, nil
}

// DeletePayment removes a payment
func (s *pgStore) DeletePayment(ctx context.Context, id string) (*schema.Payment, error) {
	payment, err := s.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}

	if err := s.db.WithContext(ctx).Delete(&schema.Payment{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete payment: %w", err)
	}
	return payment, nil
}
