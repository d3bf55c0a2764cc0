package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kitlog-inc/kitlog/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page    int
	PerPage int
}

// ValidatePagination validates and normalizes pagination parameters.
// Page defaults to DefaultPage if less than 1.
// PerPage defaults to DefaultPerPage if less than 1, and is capped at MaxPerPage.
func ValidatePagination(page, perPage int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}

	if perPage < 1 {
		perPage = constants.DefaultPerPage
	}
	if perPage > constants.MaxPerPage {
		perPage = constants.MaxPerPage
	}

	return Pagination{
		Page:    page,
		PerPage: perPage,
	}
}

// ParsePagination parses page and per_page from the query string,
// applying defaults and the maximum page size cap.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	perPage := parseQueryInt(c, "per_page", constants.DefaultPerPage)
	return ValidatePagination(page, perPage)
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, perPage int) int {
	if total == 0 || perPage == 0 {
		return 1
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages == 0 {
		return 1
	}
	return pages
}
