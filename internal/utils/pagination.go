package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/raya-dev/raya/internal/types"
)

// PageParams reads the page query parameter and returns the 1-based page
// number plus the offset to apply. Bad or missing values mean page 1.
func PageParams(ctx *gin.Context) (page int, offset int) {
	page = 1

	if raw := ctx.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	offset = (page - 1) * types.DefaultPageSize
	return page, offset
}
