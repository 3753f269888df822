package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/raya-dev/raya/internal/i18n"
	"github.com/raya-dev/raya/internal/middleware"
	"github.com/raya-dev/raya/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// GetLang returns the request language resolved by the locale
// middleware, or the default when the middleware did not run.
func GetLang(ctx *gin.Context) string {
	lang, exists := ctx.Get(types.ContextLangKey)

	if !exists {
		return i18n.DefaultLang()
	}

	langStr, ok := lang.(string)

	if !ok {
		return i18n.DefaultLang()
	}

	return langStr
}
