package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/models"
	"github.com/raya-dev/raya/internal/types"
	"github.com/raya-dev/raya/internal/utils"
	"gorm.io/gorm"
)

type DealsSummary struct {
	Total       int64   `json:"total"`
	Active      int64   `json:"active"`
	Closed      int64   `json:"closed"`
	TotalRaised float64 `json:"total_raised"`
}

type DashboardResponse struct {
	User         types.UserResponse  `json:"user"`
	Profile      interface{}         `json:"profile"`
	Deals        []types.DealSummary `json:"deals,omitempty"`
	DealsSummary *DealsSummary       `json:"deals_summary,omitempty"`
}

func dealSummaries(deals []models.Deal, startupName string) []types.DealSummary {
	summaries := make([]types.DealSummary, 0, len(deals))

	for _, deal := range deals {
		summaries = append(summaries, types.DealSummary{
			ID:                deal.ID,
			Title:             deal.Title,
			Description:       deal.Description,
			StartupID:         deal.StartupID,
			StartupName:       startupName,
			DealType:          deal.DealType,
			Status:            deal.Status,
			Amount:            deal.Amount,
			EquityOffered:     deal.EquityOffered,
			MinInvestment:     deal.MinInvestment,
			TargetCloseDate:   deal.TargetCloseDate,
			AmountRaised:      deal.AmountRaised,
			NumberOfInvestors: deal.NumberOfInvestors,
			Industry:          deal.Industry,
			CreatedAt:         deal.CreatedAt,
		})
	}

	return summaries
}

// GetDashboard returns the caller's profile plus, for startup users,
// every deal they own in any status with aggregate progress. The public
// listings never show non-active deals; this is the only place owners
// see them.
func GetDashboard(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response := DashboardResponse{
		User: types.UserResponse{
			ID:       currentUser.ID,
			Email:    currentUser.Email,
			UserType: currentUser.UserType,
		},
	}

	switch currentUser.UserType {
	case models.UserTypeStartup:
		var startup models.StartupProfile

		err := db.DB.Where("user_id = ?", currentUser.ID).First(&startup).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusOK, response)
				return
			}
			log.Printf("Failed to fetch startup profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		response.Profile = startup

		var deals []models.Deal

		if err := db.DB.Where("startup_id = ?", startup.ID).
			Order("created_at DESC").
			Find(&deals).Error; err != nil {
			log.Printf("Failed to fetch deals: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		summary := DealsSummary{Total: int64(len(deals))}

		for _, deal := range deals {
			summary.TotalRaised += deal.AmountRaised
			switch deal.Status {
			case models.DealStatusActive:
				summary.Active++
			case models.DealStatusClosed:
				summary.Closed++
			}
		}

		response.Deals = dealSummaries(deals, startup.CompanyName)
		response.DealsSummary = &summary
	case models.UserTypeInvestor:
		var investor models.InvestorProfile

		err := db.DB.Where("user_id = ?", currentUser.ID).First(&investor).Error

		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to fetch investor profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if err == nil {
			response.Profile = investor

			var deals []models.Deal

			if err := db.DB.Preload("Startup").
				Joins("JOIN deal_commitments ON deal_commitments.deal_id = deals.id").
				Where("deal_commitments.investor_id = ? AND deal_commitments.deleted_at IS NULL", investor.ID).
				Order("deals.created_at DESC").
				Find(&deals).Error; err != nil {
				log.Printf("Failed to fetch committed deals: %v", err)
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}

			summaries := make([]types.DealSummary, 0, len(deals))

			for _, deal := range deals {
				summaries = append(summaries, dealSummaries([]models.Deal{deal}, deal.Startup.CompanyName)...)
			}

			response.Deals = summaries
		}
	case models.UserTypeIndividual:
		var individual models.IndividualProfile

		err := db.DB.Where("user_id = ?", currentUser.ID).First(&individual).Error

		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to fetch individual profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if err == nil {
			response.Profile = individual
		}
	}

	ctx.JSON(http.StatusOK, response)
}
