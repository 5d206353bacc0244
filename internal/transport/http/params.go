package http

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// defaultLimit is the page size used when the limit parameter is
// absent, unparsable or non-positive.
const defaultLimit = 10

// reservedParams are the query parameters with pagination or ordering
// meaning. Everything else becomes a field filter.
var reservedParams = map[string]struct{}{
	"limit":      {},
	"cursor":     {},
	"sortByAsc":  {},
	"sortByDesc": {},
}

// getQueryOptions extracts the normalized pagination parameters and
// field filters from a list request. sortByAsc wins when both sort
// parameters are present.
func getQueryOptions(c *gin.Context) contracts.ListOptions {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	var orderBy string
	if field := c.Query("sortByAsc"); field != "" {
		orderBy = field + "|asc"
	} else if field := c.Query("sortByDesc"); field != "" {
		orderBy = field + "|desc"
	}

	return contracts.ListOptions{
		Limit:   limit,
		Cursor:  c.Query("cursor"),
		OrderBy: orderBy,
		Filters: getFilters(c),
	}
}

// getFilters collects the non-reserved query parameters as filters.
// The raw query string is walked directly because the position of the
// first filter decides whether it may become a set-membership clause,
// and parsed query maps lose that order.
func getFilters(c *gin.Context) []query.Filter {
	var filters []query.Filter
	for _, pair := range strings.Split(c.Request.URL.RawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		if _, reserved := reservedParams[key]; reserved {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		filters = append(filters, query.Filter{Key: key, Value: value})
	}
	return filters
}

// getSearchParams extracts the field/text pair of a starts-with search.
func getSearchParams(c *gin.Context) (field, text string) {
	return c.Query("field"), c.Query("text")
}
