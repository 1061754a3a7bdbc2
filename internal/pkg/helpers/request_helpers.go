package helpers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultListLimit bounds "recent" style listings when the client gives no limit.
	DefaultListLimit = 50
	// MaxListLimit is the hard ceiling for client-supplied limits.
	MaxListLimit = 500
)

// ParseLimitParam extracts a row limit from the query string, clamped to sane bounds.
func ParseLimitParam(c *gin.Context, fallback int) int {
	if fallback <= 0 || fallback > MaxListLimit {
		fallback = DefaultListLimit
	}
	limitStr := c.Query("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// ParseBoolParam interprets the loose truthy spellings the dashboards send
// (1/true/t/yes). The second return reports whether the parameter was present.
func ParseBoolParam(c *gin.Context, name string) (bool, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return false, false
	}
	switch strings.ToLower(raw) {
	case "1", "true", "t", "yes":
		return true, true
	default:
		return false, true
	}
}

// Round2 rounds a float to two decimal places, the precision the report
// endpoints promise.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
