package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sureshkalyan1000/CableOpreator/internal/api/shared/dto"
	apierrors "github.com/sureshkalyan1000/CableOpreator/internal/api/shared/errors"
	"github.com/sureshkalyan1000/CableOpreator/internal/api/shared/executor"
	"github.com/sureshkalyan1000/CableOpreator/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListUsers retrieves all users, newest first
	// GET /api/v1/users
	ListUsers(c *gin.Context)

	// CreateUser creates a new user
	// POST /api/v1/users
	CreateUser(c *gin.Context)

	// GetUser retrieves a single user by ID
	// GET /api/v1/users/:id
	GetUser(c *gin.Context)

	// UpdateUser replaces the mutable fields of a user
	// PUT /api/v1/users/:id
	UpdateUser(c *gin.Context)

	// DeleteUser removes a user; its payments are left in place
	// DELETE /api/v1/users/:id
	DeleteUser(c *gin.Context)

	// ListPayments retrieves payments with optional owner/month/year filters
	// GET /api/v1/payments?owner_id=<id>&month=<1-12>&year=<year>
	ListPayments(c *gin.Context)

	// CreatePayment creates a new payment for an owner and month
	// POST /api/v1/payments
	CreatePayment(c *gin.Context)

	// GetPayment retrieves a single payment by ID
	// GET /api/v1/payments/:id
	GetPayment(c *gin.Context)

	// UpdatePayment applies a partial update to a payment
	// PUT /api/v1/payments/:id
	UpdatePayment(c *gin.Context)

	// DeletePayment removes a payment
	// DELETE /api/v1/payments/:id
	DeletePayment(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler over the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// ListUsers retrieves all users, newest first
func (h *handler) ListUsers(c *gin.Context) {
	response, err := h.executor.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreateUser creates a new user
func (h *handler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := dto.DecodeStrict(c.Request.Body, &req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	userDTO, err := h.executor.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userDTO)
}

// GetUser retrieves a single user by ID
func (h *handler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	userDTO, err := h.executor.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if userDTO == nil {
		respondNotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, userDTO)
}

// UpdateUser replaces the mutable fields of a user
func (h *handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	var req dto.UpdateUserRequest
	if err := dto.DecodeStrict(c.Request.Body, &req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	userDTO, err := h.executor.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if userDTO == nil {
		respondNotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, userDTO)
}

// DeleteUser removes a user and returns the deleted record
func (h *handler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	userDTO, err := h.executor.DeleteUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if userDTO == nil {
		respondNotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, userDTO)
}

// ListPayments retrieves payments with optional filters
func (h *handler) ListPayments(c *gin.Context) {
	params, err := ParseListPaymentsQuery(c)
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	response, err := h.executor.ListPayments(c.Request.Context(), params.OwnerID, params.Month, params.Year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreatePayment creates a new payment
func (h *handler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := dto.DecodeStrict(c.Request.Body, &req); err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			respondError(c, apierrors.NewInvalidAmountError(err.Error()))
			return
		}
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	paymentDTO, err := h.executor.CreatePayment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, paymentDTO)
}

// GetPayment retrieves a single payment by ID
func (h *handler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondBadRequest(c, "Invalid payment ID format")
		return
	}

	paymentDTO, err := h.executor.GetPayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if paymentDTO == nil {
		respondNotFound(c, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, paymentDTO)
}

// UpdatePayment applies a partial update to a payment
func (h *handler) UpdatePayment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondBadRequest(c, "Invalid payment ID format")
		return
	}

	var req dto.UpdatePaymentRequest
	if err := dto.DecodeStrict(c.Request.Body, &req); err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			respondError(c, apierrors.NewInvalidAmountError(err.Error()))
			return
		}
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	paymentDTO, err := h.executor.UpdatePayment(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	if paymentDTO == nil {
		respondNotFound(c, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, paymentDTO)
}

// DeletePayment removes a payment and returns the deleted record
func (h *handler) DeletePayment(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondBadRequest(c, "Invalid payment ID format")
		return
	}

	paymentDTO, err := h.executor.DeletePayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if paymentDTO == nil {
		respondNotFound(c, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, paymentDTO)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "cableop-api",
	})
}
