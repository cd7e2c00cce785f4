package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spellworks/grimoire/pkg/db/pagination"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// parsePagination reads page/limit query params. Non-numeric values are
// treated as absent. Page is floored at 1, limit clamped to [1, maxLimit].
func parsePagination(c *gin.Context) pagination.Params {
	var params pagination.Params

	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			if page < 1 {
				page = 1
			}
			params.Page = &page
		}
	}

	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			if limit < 1 {
				limit = 1
			}
			if limit > maxLimit {
				limit = maxLimit
			}
			params.Limit = &limit
		}
	}

	return params
}
