package handlers_test

import (
	"net/http"
	"testing"

	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfileRejectsDuplicate(t *testing.T) {
	r := setupServer(t)

	// Registration already seeds the profile, so a second create is a
	// duplicate.
	token := registerUser(t, r, "fund@example.com", "investor")

	w := doJSON(t, r, http.MethodPost, "/api/profiles/investor", token, map[string]interface{}{
		"company_name": "Another Fund",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.DB.Model(&models.InvestorProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProfileVariantMustMatchUserType(t *testing.T) {
	r := setupServer(t)

	token := registerUser(t, r, "fund@example.com", "investor")

	w := doJSON(t, r, http.MethodPost, "/api/profiles/startup", token, map[string]interface{}{
		"company_name": "Sneaky Startup",
		"stage":        "seed",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.DB.Model(&models.StartupProfile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateInvestorProfileEnforcesRangeOrder(t *testing.T) {
	r := setupServer(t)

	token := registerUser(t, r, "fund@example.com", "investor")

	w := doJSON(t, r, http.MethodPut, "/api/profiles/investor", token, map[string]interface{}{
		"company_name":         "Fund",
		"investment_range_min": 500000,
		"investment_range_max": 100000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/profiles/investor", token, map[string]interface{}{
		"company_name":         "Fund",
		"investment_range_min": 100000,
		"investment_range_max": 500000,
		"preferred_stages":     []string{"seed", "series_a"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile models.InvestorProfile
	require.NoError(t, db.DB.First(&profile).Error)
	assert.Equal(t, 100000.0, profile.InvestmentRangeMin)
	assert.Equal(t, 500000.0, profile.InvestmentRangeMax)
}

func TestUpdateStartupProfileValidation(t *testing.T) {
	r := setupServer(t)

	token := registerUser(t, r, "founder@example.com", "startup")

	// Equity outside [0, 100]
	w := doJSON(t, r, http.MethodPut, "/api/profiles/startup", token, map[string]interface{}{
		"company_name":    "Test Co",
		"stage":           "seed",
		"equity_offering": 120,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown stage
	w = doJSON(t, r, http.MethodPut, "/api/profiles/startup", token, map[string]interface{}{
		"company_name": "Test Co",
		"stage":        "unicorn",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Valid update
	w = doJSON(t, r, http.MethodPut, "/api/profiles/startup", token, map[string]interface{}{
		"company_name":           "Test Co",
		"tagline":                "We test things",
		"stage":                  "series_a",
		"founding_date":          "2021-03-15",
		"revenue_range":          "100k-500k",
		"current_funding_target": 2000000,
		"equity_offering":        12.5,
		"key_metrics":            map[string]float64{"mrr": 42000},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile models.StartupProfile
	require.NoError(t, db.DB.First(&profile).Error)
	assert.Equal(t, "series_a", profile.Stage)
	assert.Equal(t, 12.5, profile.EquityOffering)
	assert.Equal(t, "100k-500k", profile.RevenueRange)
}

func TestGetOwnProfile(t *testing.T) {
	r := setupServer(t)

	token := registerUser(t, r, "person@example.com", "individual")

	w := doJSON(t, r, http.MethodGet, "/api/profiles/individual", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	profile := decode(t, w)["profile"].(map[string]interface{})
	assert.Equal(t, "Test", profile["FirstName"])
}

func TestProfileEndpointsRequireAuth(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/profiles/investor", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
