package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/auth"
	"github.com/raya-dev/raya/internal/i18n"
	"github.com/raya-dev/raya/internal/models"
	"github.com/raya-dev/raya/internal/types"
	"github.com/raya-dev/raya/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
	UserType        string `json:"user_type" binding:"required"`
	Bio             string `json:"bio"`

	// Seed fields for the profile variant matching user_type
	CompanyName string `json:"company_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

func setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

// seedProfile builds the empty profile variant matching the chosen user
// type from the registration payload. Missing seed fields are a
// validation failure, reported before anything is created.
func seedProfile(req RegisterRequest) (interface{}, string) {
	switch req.UserType {
	case models.UserTypeInvestor:
		if strings.TrimSpace(req.CompanyName) == "" {
			return nil, "company_name is required for investor accounts"
		}
		return &models.InvestorProfile{CompanyName: req.CompanyName}, ""
	case models.UserTypeStartup:
		if strings.TrimSpace(req.CompanyName) == "" {
			return nil, "company_name is required for startup accounts"
		}
		return &models.StartupProfile{
			CompanyName:  req.CompanyName,
			Stage:        models.StageIdea,
			RevenueRange: models.RevenuePreRevenue,
		}, ""
	case models.UserTypeIndividual:
		if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
			return nil, "first_name and last_name are required for individual accounts"
		}
		return &models.IndividualProfile{
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}, ""
	}

	return nil, "user_type must be investor, startup or individual"
}

// Register creates a user and the seeded profile of the matching variant
// in one transaction, then starts a session. A duplicate email leaves no
// profile behind.
func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Password != req.PasswordConfirm {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	if !models.ValidUserType(req.UserType) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user type"})
		return
	}

	profile, validationErr := seedProfile(req)

	if validationErr != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validationErr})
		return
	}

	var existingUser models.User

	err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		UserType:     req.UserType,
		Bio:          req.Bio,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		switch p := profile.(type) {
		case *models.InvestorProfile:
			p.UserID = newUser.ID
			return tx.Create(p).Error
		case *models.StartupProfile:
			p.UserID = newUser.ID
			return tx.Create(p).Error
		case *models.IndividualProfile:
			p.UserID = newUser.ID
			return tx.Create(p).Error
		}

		return nil
	})

	if err != nil {
		// A concurrent registration can slip past the pre-check and trip
		// the unique index on email instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email, newUser.UserType)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setSessionCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusCreated, gin.H{
		"message": i18n.T(utils.GetLang(ctx), "welcome"),
		"token":   token,
		"user": types.UserResponse{
			ID:       newUser.ID,
			Email:    newUser.Email,
			UserType: newUser.UserType,
			Bio:      newUser.Bio,
		},
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(req.Password))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateJWT(existingUser.ID, existingUser.Email, existingUser.UserType)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	setSessionCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": types.UserResponse{
			ID:       existingUser.ID,
			Email:    existingUser.Email,
			UserType: existingUser.UserType,
			Bio:      existingUser.Bio,
		},
	})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response := gin.H{
		"user": types.UserResponse{
			ID:       currentUser.ID,
			Email:    currentUser.Email,
			UserType: currentUser.UserType,
		},
	}

	ref, err := models.ResolveProfileRef(db.DB, &models.User{
		Model:    gorm.Model{ID: currentUser.ID},
		UserType: currentUser.UserType,
	})

	switch {
	case err == nil:
		response["profile"] = gin.H{"kind": ref.Kind, "id": ref.ID}
	case errors.Is(err, models.ErrNoProfile):
		response["profile"] = nil
	default:
		log.Printf("Failed to resolve profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func Logout(ctx *gin.Context) {
	setSessionCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"message": i18n.T(utils.GetLang(ctx), "logged_out")})
}
