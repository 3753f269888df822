package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/models"
	"github.com/raya-dev/raya/internal/types"
	"github.com/raya-dev/raya/internal/utils"
)

// ListActiveDeals is the public deal browse surface. Only active deals
// appear here; every other status stays private to the owner's
// dashboard.
func ListActiveDeals(ctx *gin.Context) {
	page, offset := utils.PageParams(ctx)

	var total int64

	if err := db.DB.Model(&models.Deal{}).
		Where("status = ?", models.DealStatusActive).
		Count(&total).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deals"})
		return
	}

	var deals []models.Deal

	if err := db.DB.Preload("Startup").
		Where("status = ?", models.DealStatusActive).
		Order("created_at DESC").
		Offset(offset).
		Limit(types.DefaultPageSize).
		Find(&deals).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deals"})
		return
	}

	results := make([]types.DealSummary, 0, len(deals))

	for _, deal := range deals {
		results = append(results, types.DealSummary{
			ID:                deal.ID,
			Title:             deal.Title,
			Description:       deal.Description,
			StartupID:         deal.StartupID,
			StartupName:       deal.Startup.CompanyName,
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

	ctx.JSON(http.StatusOK, types.Page{
		Results:  results,
		Page:     page,
		PageSize: types.DefaultPageSize,
		Total:    total,
	})
}

// ListVerifiedStartups lists verified startups, newest founding date
// first.
func ListVerifiedStartups(ctx *gin.Context) {
	page, offset := utils.PageParams(ctx)

	var total int64

	if err := db.DB.Model(&models.StartupProfile{}).
		Where("verified = ?", true).
		Count(&total).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve startups"})
		return
	}

	var startups []models.StartupProfile

	if err := db.DB.Where("verified = ?", true).
		Order("founding_date DESC").
		Offset(offset).
		Limit(types.DefaultPageSize).
		Find(&startups).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve startups"})
		return
	}

	results := make([]types.StartupSummary, 0, len(startups))

	for _, startup := range startups {
		results = append(results, types.StartupSummary{
			ID:                   startup.ID,
			CompanyName:          startup.CompanyName,
			Tagline:              startup.Tagline,
			Industry:             startup.Industry,
			Stage:                startup.Stage,
			Location:             startup.Location,
			FoundingDate:         startup.FoundingDate,
			CurrentFundingTarget: startup.CurrentFundingTarget,
			TotalFundingRaised:   startup.TotalFundingRaised,
			Verified:             startup.Verified,
		})
	}

	ctx.JSON(http.StatusOK, types.Page{
		Results:  results,
		Page:     page,
		PageSize: types.DefaultPageSize,
		Total:    total,
	})
}

// ListVerifiedInvestors lists verified investors, most active first.
func ListVerifiedInvestors(ctx *gin.Context) {
	page, offset := utils.PageParams(ctx)

	var total int64

	if err := db.DB.Model(&models.InvestorProfile{}).
		Where("verified = ?", true).
		Count(&total).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve investors"})
		return
	}

	var investors []models.InvestorProfile

	if err := db.DB.Where("verified = ?", true).
		Order("total_investments DESC").
		Offset(offset).
		Limit(types.DefaultPageSize).
		Find(&investors).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve investors"})
		return
	}

	results := make([]types.InvestorSummary, 0, len(investors))

	for _, investor := range investors {
		results = append(results, types.InvestorSummary{
			ID:                 investor.ID,
			CompanyName:        investor.CompanyName,
			Location:           investor.Location,
			InvestmentRangeMin: investor.InvestmentRangeMin,
			InvestmentRangeMax: investor.InvestmentRangeMax,
			TotalInvestments:   investor.TotalInvestments,
			Verified:           investor.Verified,
		})
	}

	ctx.JSON(http.StatusOK, types.Page{
		Results:  results,
		Page:     page,
		PageSize: types.DefaultPageSize,
		Total:    total,
	})
}
