package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination bounds for list endpoints.
const (
	defaultLimit = 50
	maxLimit     = 100
)

// ParsePagination parses and validates the offset and limit query parameters.
// Offset defaults to 0 and limit to defaultLimit; limit is capped at maxLimit
// so a single request cannot sweep a tenant's whole table.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offsetStr := c.DefaultQuery("offset", "0")
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", maxLimit)
	}

	return offset, limit, nil
}
