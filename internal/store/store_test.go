package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sureshkalyan1000/CableOpreator/internal/domain"
	"github.com/sureshkalyan1000/CableOpreator/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestUser creates a test user record
func buildTestUser(name string, boxID int64) *schema.User {
	phone := "+14155552671"
	place := "North Street"
	return &schema.User{
		Name:  name,
		BoxID: boxID,
		Phone: &phone,
		Place: &place,
	}
}

// buildTestPayment creates a test payment covering the given calendar month
func buildTestPayment(ownerID string, year, month int, paid, balance float64) *schema.Payment {
	payFor := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return &schema.Payment{
		OwnerID: ownerID,
		PayFor:  payFor,
		PayDate: payFor.AddDate(0, 0, 4),
		Paid:    paid,
		Balance: balance,
		Month:   month,
		Year:    year,
	}
}

// createTestUser inserts a user and fails the test on error
func createTestUser(t *testing.T, store Store, name string, boxID int64) *schema.User {
	t.Helper()
	user := buildTestUser(name, boxID)
	require.NoError(t, store.CreateUser(context.Background(), user))
	require.NotEmpty(t, user.ID)
	return user
}

// createTestPayment inserts a payment and fails the test on error
func createTestPayment(t *testing.T, store Store, ownerID string, year, month int, paid, balance float64) *schema.Payment {
	t.Helper()
	payment := buildTestPayment(ownerID, year, month, paid, balance)
	require.NoError(t, store.CreatePayment(context.Background(), payment))
	require.NotEmpty(t, payment.ID)
	return payment
}

// =============================================================================
// Test: User CRUD
// =============================================================================

func testUserCRUD(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create assigns an ID and persists all fields", func(t *testing.T) {
		user := createTestUser(t, store, "Ramesh Kumar", 101)

		got, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "Ramesh Kumar", got.Name)
		assert.Equal(t, int64(101), got.BoxID)
		require.NotNil(t, got.Phone)
		assert.Equal(t, "+14155552671", *got.Phone)
		require.NotNil(t, got.Place)
		assert.Equal(t, "North Street", *got.Place)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("get missing user returns nil without error", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list returns users newest first", func(t *testing.T) {
		base := time.Now().UTC().Add(-time.Hour)
		older := buildTestUser("Older Subscriber", 201)
		older.CreatedAt = base
		require.NoError(t, store.CreateUser(ctx, older))

		newer := buildTestUser("Newer Subscriber", 202)
		newer.CreatedAt = base.Add(time.Minute)
		require.NoError(t, store.CreateUser(ctx, newer))

		users, err := store.ListUsers(ctx)
		require.NoError(t, err)

		var olderIdx, newerIdx int
		for i := range users {
			switch users[i].ID {
			case older.ID:
				olderIdx = i
			case newer.ID:
				newerIdx = i
			}
		}
		assert.Less(t, newerIdx, olderIdx, "newer user should sort before older user")
	})

	t.Run("update replaces every mutable field", func(t *testing.T) {
		user := createTestUser(t, store, "Before Update", 301)

		phone := "+919876543210"
		updated, err := store.UpdateUser(ctx, user.ID, UserUpdate{
			Name:  "After Update",
			BoxID: 302,
			Phone: &phone,
			Place: nil,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "After Update", updated.Name)
		assert.Equal(t, int64(302), updated.BoxID)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, "+919876543210", *updated.Phone)
		assert.Nil(t, updated.Place)
	})

	t.Run("update missing user returns nil without error", func(t *testing.T) {
		updated, err := store.UpdateUser(ctx, "00000000-0000-0000-0000-000000000001", UserUpdate{Name: "Nobody"})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		user := createTestUser(t, store, "To Be Deleted", 401)

		deleted, err := store.DeleteUser(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.Equal(t, user.ID, deleted.ID)
		assert.Equal(t, "To Be Deleted", deleted.Name)

		got, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		// Second delete is a no-op
		deleted, err = store.DeleteUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, deleted)
	})
}

// =============================================================================
// Test: User uniqueness
// =============================================================================

func testDuplicateUserName(t *testing.T, store Store) {
	ctx := context.Background()

	createTestUser(t, store, "Unique Name", 501)

	dup := buildTestUser("Unique Name", 502)
	err := store.CreateUser(ctx, dup)
	require.Error(t, err)

	var dupErr *DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "name", dupErr.Field)
}

func testDuplicateUserBoxID(t *testing.T, store Store) {
	ctx := context.Background()

	// The unset default is exempt from uniqueness
	createTestUser(t, store, "Unset Box One", 0)
	createTestUser(t, store, "Unset Box Two", 0)

	createTestUser(t, store, "Boxed Subscriber", 601)

	dup := buildTestUser("Another Subscriber", 601)
	err := store.CreateUser(ctx, dup)
	require.Error(t, err)

	var dupErr *DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "box_id", dupErr.Field)
}

// =============================================================================
// Test: Payment CRUD
// =============================================================================

func testPaymentCRUD(t *testing.T, store Store) {
	ctx := context.Background()

	owner := createTestUser(t, store, "Payment Owner", 701)

	t.Run("create assigns an ID and persists all fields", func(t *testing.T) {
		payment := createTestPayment(t, store, owner.ID, 2024, 3, 350, -50)

		got, err := store.GetPaymentByID(ctx, payment.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, owner.ID, got.OwnerID)
		assert.True(t, got.PayFor.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, float64(350), got.Paid)
		assert.Equal(t, float64(-50), got.Balance)
		assert.Equal(t, 3, got.Month)
		assert.Equal(t, 2024, got.Year)
	})

	t.Run("get missing payment returns nil without error", func(t *testing.T) {
		got, err := store.GetPaymentByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update applies only the set fields", func(t *testing.T) {
		payment := createTestPayment(t, store, owner.ID, 2024, 4, 350, 0)

		paid := 400.0
		updated, err := store.UpdatePayment(ctx, payment.ID, PaymentUpdate{Paid: &paid})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, float64(400), updated.Paid)
		assert.Equal(t, float64(0), updated.Balance)
		assert.True(t, updated.PayFor.Equal(payment.PayFor))
		assert.Equal(t, 4, updated.Month)
	})

	t.Run("update moving the month rederives month and year", func(t *testing.T) {
		payment := createTestPayment(t, store, owner.ID, 2024, 5, 350, 0)

		payFor := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		updated, err := store.UpdatePayment(ctx, payment.ID, PaymentUpdate{
			PayFor: &payFor,
			Month:  6,
			Year:   2024,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.PayFor.Equal(payFor))
		assert.Equal(t, 6, updated.Month)
		assert.Equal(t, 2024, updated.Year)
	})

	t.Run("update missing payment returns nil without error", func(t *testing.T) {
		paid := 100.0
		updated, err := store.UpdatePayment(ctx, "00000000-0000-0000-0000-000000000001", PaymentUpdate{Paid: &paid})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		payment := createTestPayment(t, store, owner.ID, 2024, 7, 350, 0)

		deleted, err := store.DeletePayment(ctx, payment.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.Equal(t, payment.ID, deleted.ID)

		got, err := store.GetPaymentByID(ctx, payment.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		deleted, err = store.DeletePayment(ctx, payment.ID)
		require.NoError(t, err)
		assert.Nil(t, deleted)
	})
}

// =============================================================================
// Test: Payment period uniqueness
// =============================================================================

func testDuplicatePaymentPeriod(t *testing.T, store Store) {
	ctx := context.Background()

	owner := createTestUser(t, store, "Duplicate Period Owner", 801)
	other := createTestUser(t, store, "Other Period Owner", 802)

	createTestPayment(t, store, owner.ID, 2024, 3, 350, 0)

	// A different owner may cover the same month
	createTestPayment(t, store, other.ID, 2024, 3, 350, 0)

	// Same owner, same month: the compound unique index rejects the insert
	dup := buildTestPayment(owner.ID, 2024, 3, 350, 0)
	err := store.CreatePayment(ctx, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicatePeriod)
}

// =============================================================================
// Test: FindPaymentForPeriod
// =============================================================================

func testFindPaymentForPeriod(t *testing.T, store Store) {
	ctx := context.Background()

	owner := createTestUser(t, store, "Window Owner", 901)
	other := createTestUser(t, store, "Window Bystander", 902)

	march := createTestPayment(t, store, owner.ID, 2024, 3, 350, 0)
	createTestPayment(t, store, owner.ID, 2024, 4, 350, 0)
	createTestPayment(t, store, other.ID, 2024, 3, 350, 0)

	start, end := domain.MonthWindow(march.PayFor)

	t.Run("finds the payment inside the month window", func(t *testing.T) {
		got, err := store.FindPaymentForPeriod(ctx, owner.ID, start, end, "")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, march.ID, got.ID)
	})

	t.Run("window end is exclusive", func(t *testing.T) {
		got, err := store.FindPaymentForPeriod(ctx, owner.ID,
			time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("scoped to the given owner", func(t *testing.T) {
		got, err := store.FindPaymentForPeriod(ctx, owner.ID,
			time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("excludeID leaves the record under edit out of the search", func(t *testing.T) {
		got, err := store.FindPaymentForPeriod(ctx, owner.ID, start, end, march.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: ListPayments
// =============================================================================

func testListPayments(t *testing.T, store Store) {
	ctx := context.Background()

	owner := createTestUser(t, store, "List Owner", 1001)
	other := createTestUser(t, store, "List Bystander", 1002)

	jan := createTestPayment(t, store, owner.ID, 2024, 1, 350, 0)
	mar := createTestPayment(t, store, owner.ID, 2024, 3, 350, -20)
	dec23 := createTestPayment(t, store, owner.ID, 2023, 12, 350, 0)
	createTestPayment(t, store, other.ID, 2024, 1, 350, 0)

	t.Run("owner filter returns only that owner's payments, newest period first", func(t *testing.T) {
		payments, err := store.ListPayments(ctx, PaymentFilter{OwnerID: owner.ID})
		require.NoError(t, err)
		require.Len(t, payments, 3)
		assert.Equal(t, mar.ID, payments[0].ID)
		assert.Equal(t, jan.ID, payments[1].ID)
		assert.Equal(t, dec23.ID, payments[2].ID)
	})

	t.Run("month and year select the exact month window", func(t *testing.T) {
		payments, err := store.ListPayments(ctx, PaymentFilter{OwnerID: owner.ID, Month: 3, Year: 2024})
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, mar.ID, payments[0].ID)
	})

	t.Run("year alone selects the full calendar year", func(t *testing.T) {
		payments, err := store.ListPayments(ctx, PaymentFilter{OwnerID: owner.ID, Year: 2024})
		require.NoError(t, err)
		require.Len(t, payments, 2)
		assert.Equal(t, mar.ID, payments[0].ID)
		assert.Equal(t, jan.ID, payments[1].ID)
	})

	t.Run("december is inside the year window", func(t *testing.T) {
		payments, err := store.ListPayments(ctx, PaymentFilter{OwnerID: owner.ID, Year: 2023})
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, dec23.ID, payments[0].ID)
	})

	t.Run("same period ties break on pay date descending", func(t *testing.T) {
		tieOwner := createTestUser(t, store, "Tie Owner", 1003)
		tieOther := createTestUser(t, store, "Tie Other Owner", 1004)

		early := buildTestPayment(tieOwner.ID, 2024, 6, 350, 0)
		early.PayDate = time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)
		require.NoError(t, store.CreatePayment(ctx, early))

		late := buildTestPayment(tieOther.ID, 2024, 6, 350, 0)
		late.PayDate = time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)
		require.NoError(t, store.CreatePayment(ctx, late))

		payments, err := store.ListPayments(ctx, PaymentFilter{Month: 6, Year: 2024})
		require.NoError(t, err)
		require.Len(t, payments, 2)
		assert.Equal(t, late.ID, payments[0].ID)
		assert.Equal(t, early.ID, payments[1].ID)
	})
}

// =============================================================================
// Test: user deletion leaves payments in place
// =============================================================================

func testDeleteUserKeepsPayments(t *testing.T, store Store) {
	ctx := context.Background()

	owner := createTestUser(t, store, "Departing Subscriber", 1101)
	payment := createTestPayment(t, store, owner.ID, 2024, 3, 350, 0)

	deleted, err := store.DeleteUser(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	// The payment survives with its owner reference intact
	got, err := store.GetPaymentByID(ctx, payment.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, owner.ID, got.OwnerID)

	payments, err := store.ListPayments(ctx, PaymentFilter{OwnerID: owner.ID})
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

// =============================================================================
// Test: concurrent-looking create after an advisory check miss
// =============================================================================

func testCreateAfterStaleCheck(t *testing.T, store Store) {
	ctx := context.Background()

	owner := createTestUser(t, store, "Racy Owner", 1201)
	payFor := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	// Simulates a writer whose advisory check ran before a competing insert
	// landed: the index still rejects the second insert.
	start, end := domain.MonthWindow(payFor)
	existing, err := store.FindPaymentForPeriod(ctx, owner.ID, start, end, "")
	require.NoError(t, err)
	require.Nil(t, existing)

	createTestPayment(t, store, owner.ID, 2024, 3, 350, 0)

	second := buildTestPayment(owner.ID, 2024, 3, 350, 0)
	err = store.CreatePayment(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicatePeriod)
}

// RunStoreTests runs the full store suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UserCRUD", testUserCRUD},
		{"DuplicateUserName", testDuplicateUserName},
		{"DuplicateUserBoxID", testDuplicateUserBoxID},
		{"PaymentCRUD", testPaymentCRUD},
		{"DuplicatePaymentPeriod", testDuplicatePaymentPeriod},
		{"FindPaymentForPeriod", testFindPaymentForPeriod},
		{"ListPayments", testListPayments},
		{"DeleteUserKeepsPayments", testDeleteUserKeepsPayments},
		{"CreateAfterStaleCheck", testCreateAfterStaleCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
