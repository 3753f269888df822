// Command raya-seed fills the database with demo users, profiles and
// deals so the marketplace has something to browse in development.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

var industries = []string{"Fintech", "Healthtech", "E-commerce", "SaaS", "AI/ML", "Cleantech", "Edtech"}

var locations = []string{"San Francisco", "New York", "London", "Berlin", "Singapore", "Dubai", "Tokyo"}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

func jsonList(values ...string) datatypes.JSON {
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	log.Println("Creating investors...")

	for i := 0; i < 10; i++ {
		user := models.User{
			Email:        fmt.Sprintf("investor%d@example.com", i),
			PasswordHash: string(passwordHash),
			UserType:     models.UserTypeInvestor,
		}

		if err := db.DB.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create investor user: %v", err)
		}

		profile := models.InvestorProfile{
			UserID:               user.ID,
			CompanyName:          fmt.Sprintf("Investment Firm %d", i),
			Description:          fmt.Sprintf("A leading investment firm specializing in %s", pick(industries)),
			Website:              fmt.Sprintf("https://investor%d.com", i),
			Location:             pick(locations),
			FoundedYear:          1990 + rand.Intn(31),
			TeamSize:             5 + rand.Intn(96),
			PreferredIndustries:  jsonList(pick(industries), pick(industries), pick(industries)),
			PreferredStages:      jsonList(models.StageSeed, models.StageSeriesA, models.StageSeriesB),
			InvestmentRangeMin:   float64(50000 + rand.Intn(450001)),
			InvestmentRangeMax:   float64(1000000 + rand.Intn(4000001)),
			SectorsOfInterest:    jsonList(pick(industries), pick(industries)),
			TotalInvestments:     10 + rand.Intn(41),
			TotalCapitalDeployed: float64(5000000 + rand.Intn(45000001)),
			Verified:             rand.Intn(2) == 0,
			LinkedinURL:          fmt.Sprintf("https://linkedin.com/company/investor%d", i),
			CrunchbaseURL:        fmt.Sprintf("https://crunchbase.com/company/investor%d", i),
		}

		if err := db.DB.Create(&profile).Error; err != nil {
			log.Fatalf("Failed to create investor profile: %v", err)
		}
	}

	log.Println("Creating startups...")

	var startups []models.StartupProfile

	for i := 0; i < 20; i++ {
		user := models.User{
			Email:        fmt.Sprintf("startup%d@example.com", i),
			PasswordHash: string(passwordHash),
			UserType:     models.UserTypeStartup,
		}

		if err := db.DB.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create startup user: %v", err)
		}

		metrics, _ := json.Marshal(map[string]int{
			"mrr":         rand.Intn(100001),
			"users":       100 + rand.Intn(9901),
			"growth_rate": 10 + rand.Intn(91),
		})

		profile := models.StartupProfile{
			UserID:               user.ID,
			CompanyName:          fmt.Sprintf("Startup %d", i),
			Tagline:              fmt.Sprintf("Revolutionizing %s", pick(industries)),
			Description:          fmt.Sprintf("An innovative startup in the %s space", pick(industries)),
			Industry:             pick(industries),
			Stage:                pick([]string{models.StageSeed, models.StageSeriesA, models.StageSeriesB}),
			FoundingDate:         time.Now().AddDate(0, 0, -(365 + rand.Intn(1461))),
			Location:             pick(locations),
			TeamSize:             2 + rand.Intn(49),
			RevenueRange:         pick([]string{models.RevenuePreRevenue, models.Revenue0To100K, models.Revenue100KTo500K, models.Revenue500KTo1M}),
			Website:              fmt.Sprintf("https://startup%d.com", i),
			LinkedinURL:          fmt.Sprintf("https://linkedin.com/company/startup%d", i),
			CrunchbaseURL:        fmt.Sprintf("https://crunchbase.com/company/startup%d", i),
			TotalFundingRaised:   float64(rand.Intn(5000001)),
			CurrentFundingTarget: float64(1000000 + rand.Intn(9000001)),
			MinTicketSize:        float64(50000 + rand.Intn(200001)),
			EquityOffering:       float64(5 + rand.Intn(16)),
			KeyMetrics:           datatypes.JSON(metrics),
			Verified:             rand.Intn(2) == 0,
		}

		if err := db.DB.Create(&profile).Error; err != nil {
			log.Fatalf("Failed to create startup profile: %v", err)
		}

		startups = append(startups, profile)
	}

	log.Println("Creating individuals...")

	for i := 0; i < 15; i++ {
		user := models.User{
			Email:        fmt.Sprintf("individual%d@example.com", i),
			PasswordHash: string(passwordHash),
			UserType:     models.UserTypeIndividual,
		}

		if err := db.DB.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create individual user: %v", err)
		}

		profile := models.IndividualProfile{
			UserID:      user.ID,
			FirstName:   fmt.Sprintf("First%d", i),
			LastName:    fmt.Sprintf("Last%d", i),
			Title:       fmt.Sprintf("Professional Title %d", i),
			Company:     fmt.Sprintf("Company %d", i),
			Interests:   jsonList(pick(industries), pick(industries)),
			LinkedinURL: fmt.Sprintf("https://linkedin.com/in/individual%d", i),
			Verified:    rand.Intn(2) == 0,
		}

		if err := db.DB.Create(&profile).Error; err != nil {
			log.Fatalf("Failed to create individual profile: %v", err)
		}
	}

	log.Println("Creating deals...")

	dealStatuses := []string{models.DealStatusDraft, models.DealStatusActive, models.DealStatusInDiscussion}

	for _, startup := range startups {
		for j := 0; j < 1+rand.Intn(3); j++ {
			deal := models.Deal{
				StartupID:       startup.ID,
				Title:           fmt.Sprintf("%s Round %d", startup.CompanyName, j+1),
				Description:     fmt.Sprintf("Funding round for %s", startup.CompanyName),
				DealType:        pick([]string{models.DealTypeEquity, models.DealTypeConvertibleNote, models.DealTypeSAFE}),
				Status:          pick(dealStatuses),
				Amount:          float64(500000 + rand.Intn(4500001)),
				EquityOffered:   float64(5 + rand.Intn(16)),
				MinInvestment:   float64(25000 + rand.Intn(75001)),
				TargetCloseDate: time.Now().AddDate(0, 1+rand.Intn(6), 0),
				Industry:        startup.Industry,
			}

			if err := db.DB.Create(&deal).Error; err != nil {
				log.Fatalf("Failed to create deal: %v", err)
			}
		}
	}

	log.Println("Done")
}
