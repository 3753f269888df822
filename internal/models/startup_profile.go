package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Startup funding stages, ordered from earliest to latest.
const (
	StageIdea    = "idea"
	StageMVP     = "mvp"
	StageSeed    = "seed"
	StageSeriesA = "series_a"
	StageSeriesB = "series_b"
	StageSeriesC = "series_c"
	StageGrowth  = "growth"
)

var StageOrder = []string{
	StageIdea, StageMVP, StageSeed, StageSeriesA, StageSeriesB, StageSeriesC, StageGrowth,
}

func ValidStage(s string) bool {
	for _, stage := range StageOrder {
		if s == stage {
			return true
		}
	}
	return false
}

const (
	RevenuePreRevenue = "pre_revenue"
	Revenue0To100K    = "0-100k"
	Revenue100KTo500K = "100k-500k"
	Revenue500KTo1M   = "500k-1m"
	Revenue1MTo5M     = "1m-5m"
	Revenue5MPlus     = "5m+"
)

func ValidRevenueRange(r string) bool {
	switch r {
	case RevenuePreRevenue, Revenue0To100K, Revenue100KTo500K, Revenue500KTo1M, Revenue1MTo5M, Revenue5MPlus:
		return true
	}
	return false
}

type StartupProfile struct {
	gorm.Model

	UserID      uint   `gorm:"not null;uniqueIndex"`
	CompanyName string `gorm:"not null"`
	Tagline     string
	Description string

	// Company details
	Industry     string
	Stage        string `gorm:"not null;default:'idea'"`
	FoundingDate time.Time
	Location     string
	TeamSize     int
	RevenueRange string `gorm:"not null;default:'pre_revenue'"`

	// Online presence
	Website       string
	LinkedinURL   string
	CrunchbaseURL string

	// Fundraising
	PitchDeckURL         string
	TotalFundingRaised   float64 `gorm:"type:numeric(15,2);not null;default:0"`
	CurrentFundingTarget float64 `gorm:"type:numeric(15,2)"`
	MinTicketSize        float64 `gorm:"type:numeric(15,2)"`
	EquityOffering       float64 `gorm:"type:numeric(5,2)"` // percentage

	// Metrics
	KeyMetrics datatypes.JSON `gorm:"type:jsonb"` // open string -> number mapping

	// Verification
	Verified bool `gorm:"default:false"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Deals []Deal `gorm:"foreignKey:StartupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
