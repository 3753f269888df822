package handlers_test

import (
	"net/http"
	"testing"

	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUserAndMatchingProfile(t *testing.T) {
	r := setupServer(t)

	registerUser(t, r, "founder@example.com", "startup")

	var user models.User
	require.NoError(t, db.DB.Where("email = ?", "founder@example.com").First(&user).Error)
	assert.Equal(t, models.UserTypeStartup, user.UserType)

	var profile models.StartupProfile
	require.NoError(t, db.DB.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "Test Co", profile.CompanyName)

	// Exactly one profile variant exists and it matches the discriminant.
	var investorCount, individualCount int64
	require.NoError(t, db.DB.Model(&models.InvestorProfile{}).Where("user_id = ?", user.ID).Count(&investorCount).Error)
	require.NoError(t, db.DB.Model(&models.IndividualProfile{}).Where("user_id = ?", user.ID).Count(&individualCount).Error)
	assert.Zero(t, investorCount)
	assert.Zero(t, individualCount)
}

func TestRegisterDuplicateEmailLeavesNoProfile(t *testing.T) {
	r := setupServer(t)

	registerUser(t, r, "taken@example.com", "investor")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":            "taken@example.com",
		"password":         "password123",
		"password_confirm": "password123",
		"user_type":        "startup",
		"company_name":     "Second Co",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var users int64
	require.NoError(t, db.DB.Model(&models.User{}).Where("email = ?", "taken@example.com").Count(&users).Error)
	assert.EqualValues(t, 1, users)

	var startups int64
	require.NoError(t, db.DB.Model(&models.StartupProfile{}).Count(&startups).Error)
	assert.Zero(t, startups, "the failed registration must not create a profile")
}

func TestRegisterEmailStillReservedAfterSoftDelete(t *testing.T) {
	r := setupServer(t)

	registerUser(t, r, "taken@example.com", "investor")

	// The soft-deleted row is invisible to the pre-check query but still
	// occupies the unique index, so the insert itself hits the conflict.
	// The same happens when two registrations race past the pre-check.
	var user models.User
	require.NoError(t, db.DB.Where("email = ?", "taken@example.com").First(&user).Error)
	require.NoError(t, db.DB.Delete(&user).Error)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":            "taken@example.com",
		"password":         "password123",
		"password_confirm": "password123",
		"user_type":        "investor",
		"company_name":     "Second Co",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, "Email already exists", decode(t, w)["error"])
}

func TestRegisterValidation(t *testing.T) {
	r := setupServer(t)

	// Password confirmation mismatch
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":            "a@example.com",
		"password":         "password123",
		"password_confirm": "different123",
		"user_type":        "individual",
		"first_name":       "A",
		"last_name":        "B",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password below minimum length
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":            "a@example.com",
		"password":         "short",
		"password_confirm": "short",
		"user_type":        "individual",
		"first_name":       "A",
		"last_name":        "B",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown discriminant
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":            "a@example.com",
		"password":         "password123",
		"password_confirm": "password123",
		"user_type":        "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing seed fields for the chosen variant
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":            "a@example.com",
		"password":         "password123",
		"password_confirm": "password123",
		"user_type":        "startup",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var users int64
	require.NoError(t, db.DB.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestLoginAndMe(t *testing.T) {
	r := setupServer(t)

	registerUser(t, r, "login@example.com", "individual")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "login@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	token := decode(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := decode(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "login@example.com", user["email"])
	assert.Equal(t, "individual", user["user_type"])
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupServer(t)

	registerUser(t, r, "login@example.com", "individual")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "login@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeRequiresToken(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
