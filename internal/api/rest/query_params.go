package rest

import (
	"github.com/gin-gonic/gin"
)

// ListPaymentsQueryParams holds query parameters for GET /payments.
// Month and year are independent filters: both select the exact month,
// year alone selects the full calendar year.
type ListPaymentsQueryParams struct {
	OwnerID string `form:"owner_id"`
	Month   int    `form:"month"`
	Year    int    `form:"year"`
}

// ParseListPaymentsQuery parses query parameters for GET /payments
func ParseListPaymentsQuery(c *gin.Context) (*ListPaymentsQueryParams, error) {
	var params ListPaymentsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}
