package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage = 1
	// DefaultLimit suits the admin listings (orders, bookings, audit logs).
	DefaultLimit = 20
	// MenuLimit is the public menu default; diners browse, staff paginate.
	MenuLimit = 50
	MaxLimit  = 100
	MinLimit  = 1
)

// Params holds validated pagination parameters
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse extracts and validates page/limit from query parameters using the
// standard listing default.
func Parse(c *gin.Context) Params {
	return ParseWith(c, DefaultLimit)
}

// ParseWith is Parse with a surface-specific default limit. An out-of-range
// default falls back to DefaultLimit.
func ParseWith(c *gin.Context, defaultLimit int) Params {
	if defaultLimit < MinLimit || defaultLimit > MaxLimit {
		defaultLimit = DefaultLimit
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = DefaultPage
	}
	if limit < MinLimit {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
