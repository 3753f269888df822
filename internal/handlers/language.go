package handlers

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/raya-dev/raya/internal/i18n"
)

const defaultLangCookieMaxAge = 60 * 60 * 24 * 365

func langCookieMaxAge() int {
	if raw := os.Getenv("LANG_COOKIE_MAX_AGE"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultLangCookieMaxAge
}

// SetLanguage persists the caller's language choice in a cookie and
// redirects back. Unsupported codes fall back to the default without an
// error.
func SetLanguage(ctx *gin.Context) {
	lang := ctx.Query("lang")

	if !i18n.Supported(lang) {
		lang = i18n.DefaultLang()
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "lang",
		Value:    lang,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   langCookieMaxAge(),
		Secure:   true,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})

	next := ctx.Query("next")

	if next == "" {
		next = ctx.GetHeader("Referer")
	}

	ctx.Redirect(http.StatusFound, safeRedirectTarget(next))
}

// safeRedirectTarget keeps redirects on this site. Both next and Referer
// are caller-controlled, so anything but a relative path ("//host" and
// "/\host" are scheme-relative in browsers) falls back to the root.
func safeRedirectTarget(target string) string {
	if !strings.HasPrefix(target, "/") {
		return "/"
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
