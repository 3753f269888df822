package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDealWithoutStartupProfileRedirects(t *testing.T) {
	r := setupServer(t)

	token := registerUser(t, r, "individual@example.com", "individual")

	w := doJSON(t, r, http.MethodPost, "/api/deals", token, map[string]interface{}{
		"title":     "My deal",
		"deal_type": "equity",
		"amount":    1000000,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	payload := decode(t, w)
	assert.Equal(t, "/api/profiles/startup", payload["redirect"],
		"missing-profile rejection must point at profile creation")

	var deals int64
	require.NoError(t, db.DB.Model(&models.Deal{}).Count(&deals).Error)
	assert.Zero(t, deals, "no deal row may exist after the rejection")
}

func TestDealLifecycleOverHTTP(t *testing.T) {
	r := setupServer(t)

	ownerToken := registerUser(t, r, "founder@example.com", "startup")
	investorToken := registerUser(t, r, "fund@example.com", "investor")

	// Create stays private as a draft.
	w := doJSON(t, r, http.MethodPost, "/api/deals", ownerToken, map[string]interface{}{
		"title":             "Seed round",
		"description":       "Raising our seed",
		"deal_type":         "equity",
		"amount":            1000000,
		"equity_offered":    10,
		"min_investment":    50000,
		"target_close_date": "2026-12-31",
		"industry":          "Fintech",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	payload := decode(t, w)
	assert.Equal(t, "draft", payload["status"])
	dealID := uint(payload["deal_id"].(float64))

	w = doJSON(t, r, http.MethodGet, "/api/deals", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["total"], "drafts never appear in the public listing")

	// Activate, then the deal becomes browsable.
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/deals/%d/status", dealID), ownerToken,
		map[string]interface{}{"status": "active"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/deals", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])

	// Investor participation.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/deals/%d/interest", dealID), investorToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/deals/%d/commit", dealID), investorToken,
		map[string]interface{}{"amount": 200000})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var deal models.Deal
	require.NoError(t, db.DB.First(&deal, dealID).Error)
	assert.Equal(t, 200000.0, deal.AmountRaised)
	assert.Equal(t, 1, deal.NumberOfInvestors)

	// Individuals cannot participate.
	individualToken := registerUser(t, r, "person@example.com", "individual")
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/deals/%d/commit", dealID), individualToken,
		map[string]interface{}{"amount": 100000})
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "/api/profiles/investor", decode(t, w)["redirect"])

	// Only the owner may change status.
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/deals/%d/status", dealID), investorToken,
		map[string]interface{}{"status": "in_discussion"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Transitions outside the graph are rejected.
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/deals/%d/status", dealID), ownerToken,
		map[string]interface{}{"status": "closed"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDealValidation(t *testing.T) {
	r := setupServer(t)

	ownerToken := registerUser(t, r, "founder@example.com", "startup")

	w := doJSON(t, r, http.MethodPost, "/api/deals", ownerToken, map[string]interface{}{
		"title":     "Bad type",
		"deal_type": "ponzi",
		"amount":    1000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/deals", ownerToken, map[string]interface{}{
		"title":          "Bad equity",
		"deal_type":      "equity",
		"amount":         1000,
		"equity_offered": 150,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/deals", ownerToken, map[string]interface{}{
		"title":             "Bad date",
		"deal_type":         "equity",
		"amount":            1000,
		"target_close_date": "31/12/2026",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommitOnTerminalDealRejected(t *testing.T) {
	r := setupServer(t)

	ownerToken := registerUser(t, r, "founder@example.com", "startup")
	investorToken := registerUser(t, r, "fund@example.com", "investor")

	w := doJSON(t, r, http.MethodPost, "/api/deals", ownerToken, map[string]interface{}{
		"title":     "Doomed round",
		"deal_type": "safe",
		"amount":    500000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	dealID := uint(decode(t, w)["deal_id"].(float64))

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/deals/%d/status", dealID), ownerToken,
		map[string]interface{}{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/deals/%d/commit", dealID), investorToken,
		map[string]interface{}{"amount": 100000})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDashboardShowsAllOwnDeals(t *testing.T) {
	r := setupServer(t)

	ownerToken := registerUser(t, r, "founder@example.com", "startup")

	for i, amount := range []float64{100000, 200000} {
		w := doJSON(t, r, http.MethodPost, "/api/deals", ownerToken, map[string]interface{}{
			"title":     fmt.Sprintf("Round %d", i+1),
			"deal_type": "equity",
			"amount":    amount,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	payload := decode(t, w)
	deals := payload["deals"].([]interface{})
	assert.Len(t, deals, 2, "owners see drafts on their dashboard")

	summary := payload["deals_summary"].(map[string]interface{})
	assert.EqualValues(t, 2, summary["total"])
	assert.EqualValues(t, 0, summary["active"])
}
