package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func langCookie(w *httptest.ResponseRecorder) string {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "lang" {
			return cookie.Value
		}
	}
	return ""
}

func TestSetLanguagePersistsCookieAndRedirects(t *testing.T) {
	r := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/set-language?lang=ar", nil)
	req.Header.Set("Referer", "/deals")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/deals", w.Header().Get("Location"))
	assert.Equal(t, "ar", langCookie(w))
}

func TestSetLanguageUnsupportedFallsBack(t *testing.T) {
	r := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/set-language?lang=fr", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Silent fallback, never an error.
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "en", langCookie(w))
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestSetLanguageRejectsOffsiteRedirects(t *testing.T) {
	r := setupServer(t)

	cases := []struct {
		name    string
		path    string
		referer string
		want    string
	}{
		{"absolute next", "/api/set-language?lang=ar&next=https://evil.example", "", "/"},
		{"scheme-relative next", "/api/set-language?lang=ar&next=//evil.example", "", "/"},
		{"backslash next", "/api/set-language?lang=ar&next=/%5Cevil.example", "", "/"},
		{"absolute referer", "/api/set-language?lang=ar", "https://evil.example/deals", "/"},
		{"relative next kept", "/api/set-language?lang=ar&next=/startups%3Fpage=2", "", "/startups?page=2"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		if tc.referer != "" {
			req.Header.Set("Referer", tc.referer)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code, tc.name)
		assert.Equal(t, tc.want, w.Header().Get("Location"), tc.name)
		// The cookie is still set either way.
		assert.Equal(t, "ar", langCookie(w), tc.name)
	}
}

func TestLocalizedMessages(t *testing.T) {
	r := setupServer(t)

	// Arabic request language localizes the welcome notification.
	w := doJSON(t, r, http.MethodPost, "/api/auth/register?lang=ar", "", map[string]interface{}{
		"email":            "ar@example.com",
		"password":         "password123",
		"password_confirm": "password123",
		"user_type":        "individual",
		"first_name":       "A",
		"last_name":        "B",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, decode(t, w)["message"], "رايا")

	// Default language is English.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":            "en@example.com",
		"password":         "password123",
		"password_confirm": "password123",
		"user_type":        "individual",
		"first_name":       "A",
		"last_name":        "B",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, decode(t, w)["message"], "Welcome")
}
