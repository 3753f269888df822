package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/i18n"
	"github.com/raya-dev/raya/internal/models"
	"github.com/raya-dev/raya/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InvestorProfileRequest struct {
	CompanyName         string   `json:"company_name" binding:"required"`
	Description         string   `json:"description"`
	Website             string   `json:"website"`
	Location            string   `json:"location"`
	FoundedYear         int      `json:"founded_year"`
	TeamSize            int      `json:"team_size"`
	PreferredIndustries []string `json:"preferred_industries"`
	PreferredStages     []string `json:"preferred_stages"`
	InvestmentRangeMin  float64  `json:"investment_range_min"`
	InvestmentRangeMax  float64  `json:"investment_range_max"`
	SectorsOfInterest   []string `json:"sectors_of_interest"`
	LinkedinURL         string   `json:"linkedin_url"`
	CrunchbaseURL       string   `json:"crunchbase_url"`
}

type StartupProfileRequest struct {
	CompanyName          string             `json:"company_name" binding:"required"`
	Tagline              string             `json:"tagline"`
	Description          string             `json:"description"`
	Industry             string             `json:"industry"`
	Stage                string             `json:"stage" binding:"required"`
	FoundingDate         string             `json:"founding_date"` // YYYY-MM-DD
	Location             string             `json:"location"`
	TeamSize             int                `json:"team_size"`
	RevenueRange         string             `json:"revenue_range"`
	Website              string             `json:"website"`
	LinkedinURL          string             `json:"linkedin_url"`
	CrunchbaseURL        string             `json:"crunchbase_url"`
	PitchDeckURL         string             `json:"pitch_deck_url"`
	CurrentFundingTarget float64            `json:"current_funding_target"`
	MinTicketSize        float64            `json:"min_ticket_size"`
	EquityOffering       float64            `json:"equity_offering"`
	KeyMetrics           map[string]float64 `json:"key_metrics"`
}

type IndividualProfileRequest struct {
	FirstName   string   `json:"first_name" binding:"required"`
	LastName    string   `json:"last_name" binding:"required"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Interests   []string `json:"interests"`
	LinkedinURL string   `json:"linkedin_url"`
}

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("[]")
	}

	raw, err := json.Marshal(v)

	if err != nil {
		return datatypes.JSON("[]")
	}

	return datatypes.JSON(raw)
}

func validateInvestorProfile(req InvestorProfileRequest) string {
	if req.FoundedYear < 0 || req.TeamSize < 0 {
		return "Numeric fields must be non-negative"
	}

	if req.InvestmentRangeMin < 0 || req.InvestmentRangeMax < 0 {
		return "Investment range must be non-negative"
	}

	if req.InvestmentRangeMin > req.InvestmentRangeMax {
		return "investment_range_min must not exceed investment_range_max"
	}

	for _, stage := range req.PreferredStages {
		if !models.ValidStage(stage) && stage != "any" {
			return "Invalid preferred stage: " + stage
		}
	}

	return ""
}

func validateStartupProfile(req StartupProfileRequest) (time.Time, string) {
	if req.TeamSize < 0 || req.CurrentFundingTarget < 0 || req.MinTicketSize < 0 {
		return time.Time{}, "Numeric fields must be non-negative"
	}

	if req.EquityOffering < 0 || req.EquityOffering > 100 {
		return time.Time{}, "equity_offering must be between 0 and 100"
	}

	if !models.ValidStage(req.Stage) {
		return time.Time{}, "Invalid stage"
	}

	if req.RevenueRange != "" && !models.ValidRevenueRange(req.RevenueRange) {
		return time.Time{}, "Invalid revenue range"
	}

	var foundingDate time.Time

	if req.FoundingDate != "" {
		parsed, err := time.Parse("2006-01-02", req.FoundingDate)
		if err != nil {
			return time.Time{}, "founding_date must be formatted as YYYY-MM-DD"
		}
		foundingDate = parsed
	}

	return foundingDate, ""
}

// requireVariant loads the current user and checks the requested profile
// variant matches the account's discriminant.
func requireVariant(ctx *gin.Context, variant string) (uint, bool) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}

	if currentUser.UserType != variant {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Profile type does not match your account type"})
		return 0, false
	}

	return currentUser.ID, true
}

// rejectDuplicateProfile enforces the one-profile-per-user rule.
func rejectDuplicateProfile(ctx *gin.Context, userID uint) bool {
	exists, err := models.HasAnyProfile(db.DB, userID)

	if err != nil {
		log.Printf("Failed to check existing profiles: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return false
	}

	if exists {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Profile already exists"})
		return false
	}

	return true
}

func CreateInvestorProfile(ctx *gin.Context) {
	userID, ok := requireVariant(ctx, models.UserTypeInvestor)

	if !ok {
		return
	}

	var req InvestorProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if msg := validateInvestorProfile(req); msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if !rejectDuplicateProfile(ctx, userID) {
		return
	}

	profile := models.InvestorProfile{
		UserID:              userID,
		CompanyName:         req.CompanyName,
		Description:         req.Description,
		Website:             req.Website,
		Location:            req.Location,
		FoundedYear:         req.FoundedYear,
		TeamSize:            req.TeamSize,
		PreferredIndustries: toJSON(req.PreferredIndustries),
		PreferredStages:     toJSON(req.PreferredStages),
		InvestmentRangeMin:  req.InvestmentRangeMin,
		InvestmentRangeMax:  req.InvestmentRangeMax,
		SectorsOfInterest:   toJSON(req.SectorsOfInterest),
		LinkedinURL:         req.LinkedinURL,
		CrunchbaseURL:       req.CrunchbaseURL,
	}

	if err := db.DB.Create(&profile).Error; err != nil {
		log.Printf("Failed to create investor profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": i18n.T(utils.GetLang(ctx), "profile_created"),
		"profile": profile,
	})
}

func UpdateInvestorProfile(ctx *gin.Context) {
	userID, ok := requireVariant(ctx, models.UserTypeInvestor)

	if !ok {
		return
	}

	var req InvestorProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if msg := validateInvestorProfile(req); msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var profile models.InvestorProfile

	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	profile.CompanyName = req.CompanyName
	profile.Description = req.Description
	profile.Website = req.Website
	profile.Location = req.Location
	profile.FoundedYear = req.FoundedYear
	profile.TeamSize = req.TeamSize
	profile.PreferredIndustries = toJSON(req.PreferredIndustries)
	profile.PreferredStages = toJSON(req.PreferredStages)
	profile.InvestmentRangeMin = req.InvestmentRangeMin
	profile.InvestmentRangeMax = req.InvestmentRangeMax
	profile.SectorsOfInterest = toJSON(req.SectorsOfInterest)
	profile.LinkedinURL = req.LinkedinURL
	profile.CrunchbaseURL = req.CrunchbaseURL

	if err := db.DB.Save(&profile).Error; err != nil {
		log.Printf("Failed to update investor profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": i18n.T(utils.GetLang(ctx), "profile_updated"),
		"profile": profile,
	})
}

func GetInvestorProfile(ctx *gin.Context) {
	userID, ok := requireVariant(ctx, models.UserTypeInvestor)

	if !ok {
		return
	}

	var profile models.InvestorProfile

	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"profile": profile})
}

func CreateStartupProfile(ctx *gin.Context) {
	userID, ok := requireVariant(ctx, models.UserTypeStartup)

	if !ok {
		return
	}

	var req StartupProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	foundingDate, msg := validateStartupProfile(req)

	if msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if !rejectDuplicateProfile(ctx, userID) {
		return
	}

	revenueRange := req.RevenueRange

	if revenueRange == "" {
		revenueRange = models.RevenuePreRevenue
	}

	profile := models.StartupProfile{
		UserID:               userID,
		CompanyName:          req.CompanyName,
		Tagline:              req.Tagline,
		Description:          req.Description,
		Industry:             req.Industry,
		Stage:                req.Stage,
		FoundingDate:         foundingDate,
		Location:             req.Location,
		TeamSize:             req.TeamSize,
		RevenueRange:         revenueRange,
		Website:              req.Website,
		LinkedinURL:          req.LinkedinURL,
		CrunchbaseURL:        req.CrunchbaseURL,
		PitchDeckURL:         req.PitchDeckURL,
		CurrentFundingTarget: req.CurrentFundingTarget,
		MinTicketSize:        req.MinTicketSize,
		EquityOffering:       req.EquityOffering,
		KeyMetrics:           toJSON(req.KeyMetrics),
	}

	if err := db.DB.Create(&profile).Error; err != nil {
		log.Printf("Failed to create startup profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": i18n.T(utils.GetLang(ctx), "profile_created"),
		"profile": profile,
	})
}

func UpdateStartupProfile(ctx *gin.Context) {
	userID, ok := requireVariant(ctx, models.UserTypeStartup)

	if !ok {
		return
	}

	var req StartupProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	foundingDate, msg := validateStartupProfile(req)

	if msg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var profile models.StartupProfile

	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	profile.CompanyName = req.CompanyName
	profile.Tagline = req.Tagline
	profile.Description = req.Description
	profile.Industry = req.Industry
	profile.Stage = req.Stage
	profile.Location = req.Location
	profile.TeamSize = req.TeamSize
	profile.Website = req.Website
	profile.LinkedinURL = req.LinkedinURL
	profile.CrunchbaseURL = req.CrunchbaseURL
	profile.PitchDeckURL = req.PitchDeckURL
	profile.CurrentFundingTarget = req.CurrentFundingTarget
	profile.MinTicketSize = req.MinTicketSize
	profile.EquityOffering = req.EquityOffering
	profile.KeyMetrics = toJSON(req.KeyMetrics)

	if !foundingDate.IsZero() {
		profile.FoundingDate = foundingDate
	}

	if req.RevenueRange != "" {
		profile.RevenueRange = req.RevenueRange
	}

	if err := db.DB.Save(&profile).Error; err != nil {
		log.Printf("Failed to update startup profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": i18n.T(utils.GetLang(ctx), "profile_updated"),
		"profile": profile,
	})
}

func GetStartupProfile(ctx *gin.Context) {
	userID, ok := requireVariant(ctx, models.UserTypeStartup)

	if !ok {
		return
	}

	var profile models.StartupProfile

	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"profile": profile})
}

func CreateIndividualProfile(ctx *gin.Context) {
	userID, ok := requireVariant(ctx, models.UserTypeIndividual)

	if !ok {
		return
	}

	var req IndividualProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !rejectDuplicateProfile(ctx, userID) {
		return
	}

	profile := models.IndividualProfile{
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Title:       req.Title,
		Company:     req.Company,
		Interests:   toJSON(req.Interests),
		LinkedinURL: req.LinkedinURL,
	}

	if err := db.DB.Create(&profile).Error; err != nil {
		log.Printf("Failed to create individual profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": i18n.T(utils.GetLang(ctx), "profile_created"),
		"profile": profile,
	})
}

func UpdateIndividualProfile(ctx *gin.Context) {
	userID, ok := requireVariant(ctx, models.UserTypeIndividual)

	if !ok {
		return
	}

	var req IndividualProfileRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var profile models.IndividualProfile

	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	profile.FirstName = req.FirstName
	profile.LastName = req.LastName
	profile.Title = req.Title
	profile.Company = req.Company
	profile.Interests = toJSON(req.Interests)
	profile.LinkedinURL = req.LinkedinURL

	if err := db.DB.Save(&profile).Error; err != nil {
		log.Printf("Failed to update individual profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": i18n.T(utils.GetLang(ctx), "profile_updated"),
		"profile": profile,
	})
}

func GetIndividualProfile(ctx *gin.Context) {
	userID, ok := requireVariant(ctx, models.UserTypeIndividual)

	if !ok {
		return
	}

	var profile models.IndividualProfile

	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"profile": profile})
}
