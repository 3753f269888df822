package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/i18n"
	"github.com/raya-dev/raya/internal/ledger"
	"github.com/raya-dev/raya/internal/models"
	"github.com/raya-dev/raya/internal/utils"
)

type CreateDealRequest struct {
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description"`
	DealType         string  `json:"deal_type" binding:"required"`
	Amount           float64 `json:"amount" binding:"required"`
	EquityOffered    float64 `json:"equity_offered"`
	MinInvestment    float64 `json:"min_investment"`
	TargetCloseDate  string  `json:"target_close_date"` // YYYY-MM-DD
	Industry         string  `json:"industry"`
	DealDocumentsURL string  `json:"deal_documents_url"`
	Terms            string  `json:"terms"`
}

type CommitRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func getDealID(ctx *gin.Context) (uint, error) {
	raw := ctx.Param("deal_id")

	if raw == "" {
		return 0, errors.New("Deal ID not found")
	}

	dealID, err := strconv.ParseUint(raw, 10, 32)

	if err != nil {
		return 0, errors.New("Invalid Deal ID")
	}

	return uint(dealID), nil
}

// respondLedgerError maps ledger failures onto the HTTP surface.
// Missing-profile errors carry a redirect hint so the client can send
// the user to profile creation instead of showing a dead end.
func respondLedgerError(ctx *gin.Context, err error) {
	lang := utils.GetLang(ctx)

	switch {
	case errors.Is(err, ledger.ErrMissingStartupProfile):
		ctx.JSON(http.StatusForbidden, gin.H{
			"error":    i18n.T(lang, "startup_profile_required"),
			"redirect": "/api/profiles/startup",
		})
	case errors.Is(err, ledger.ErrMissingInvestorProfile):
		ctx.JSON(http.StatusForbidden, gin.H{
			"error":    i18n.T(lang, "investor_profile_required"),
			"redirect": "/api/profiles/investor",
		})
	case errors.Is(err, ledger.ErrDealNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
	case errors.Is(err, ledger.ErrNotDealOwner):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the deal owner can do this"})
	case errors.Is(err, ledger.ErrDealTerminal):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Deal is closed or cancelled"})
	case errors.Is(err, ledger.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
	case errors.Is(err, ledger.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
	default:
		log.Printf("Ledger operation failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// notifyDealOwner pushes a dashboard refresh to the startup user owning
// the deal.
func notifyDealOwner(dealID uint) {
	var deal models.Deal

	if err := db.DB.First(&deal, dealID).Error; err != nil {
		return
	}

	var startup models.StartupProfile

	if err := db.DB.First(&startup, deal.StartupID).Error; err != nil {
		return
	}

	BroadcastDashboardRefresh(startup.UserID)
}

func CreateDeal(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateDealRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !models.ValidDealType(req.DealType) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deal type"})
		return
	}

	if req.Amount < 0 || req.MinInvestment < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Monetary fields must be non-negative"})
		return
	}

	if req.EquityOffered < 0 || req.EquityOffered > 100 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "equity_offered must be between 0 and 100"})
		return
	}

	var targetCloseDate time.Time

	if req.TargetCloseDate != "" {
		targetCloseDate, err = time.Parse("2006-01-02", req.TargetCloseDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "target_close_date must be formatted as YYYY-MM-DD"})
			return
		}
	}

	deal := models.Deal{
		Title:            req.Title,
		Description:      req.Description,
		DealType:         req.DealType,
		Amount:           req.Amount,
		EquityOffered:    req.EquityOffered,
		MinInvestment:    req.MinInvestment,
		TargetCloseDate:  targetCloseDate,
		Industry:         req.Industry,
		DealDocumentsURL: req.DealDocumentsURL,
		Terms:            req.Terms,
	}

	if err := ledger.CreateDeal(userID, &deal); err != nil {
		respondLedgerError(ctx, err)
		return
	}

	BroadcastDashboardRefresh(userID)

	ctx.JSON(http.StatusCreated, gin.H{
		"message": i18n.T(utils.GetLang(ctx), "deal_created"),
		"deal_id": deal.ID,
		"status":  deal.Status,
	})
}

func ExpressInterest(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	dealID, err := getDealID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ledger.ExpressInterest(dealID, userID); err != nil {
		respondLedgerError(ctx, err)
		return
	}

	notifyDealOwner(dealID)

	ctx.JSON(http.StatusOK, gin.H{"message": i18n.T(utils.GetLang(ctx), "interest_recorded")})
}

func CommitToDeal(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	dealID, err := getDealID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req CommitRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := ledger.Commit(dealID, userID, req.Amount); err != nil {
		respondLedgerError(ctx, err)
		return
	}

	notifyDealOwner(dealID)

	ctx.JSON(http.StatusOK, gin.H{"message": i18n.T(utils.GetLang(ctx), "commitment_recorded")})
}

func ChangeDealStatus(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	dealID, err := getDealID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req ChangeStatusRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := ledger.ChangeStatus(dealID, userID, req.Status); err != nil {
		respondLedgerError(ctx, err)
		return
	}

	BroadcastDashboardRefresh(userID)

	ctx.JSON(http.StatusOK, gin.H{
		"message": i18n.T(utils.GetLang(ctx), "deal_status_updated"),
		"status":  req.Status,
	})
}
