package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/raya-dev/raya/internal/i18n"
	"github.com/raya-dev/raya/internal/types"
)

// LocaleMiddleware resolves the request language: ?lang= query parameter
// first, then the lang cookie, then the default. Unsupported codes fall
// back silently. The resolved language is request-scoped context, never
// global state.
func LocaleMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		lang := ctx.Query("lang")

		if !i18n.Supported(lang) {
			if cookie, err := ctx.Cookie("lang"); err == nil {
				lang = cookie
			}
		}

		if !i18n.Supported(lang) {
			lang = i18n.DefaultLang()
		}

		ctx.Set(types.ContextLangKey, lang)
		ctx.Next()
	}
}
