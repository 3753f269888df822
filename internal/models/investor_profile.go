package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InvestorProfile struct {
	gorm.Model

	UserID      uint   `gorm:"not null;uniqueIndex"`
	CompanyName string `gorm:"not null"`
	Description string
	Website     string
	Location    string
	FoundedYear int
	TeamSize    int

	// Investment preferences
	PreferredIndustries datatypes.JSON `gorm:"type:jsonb"` // list of industry names
	PreferredStages     datatypes.JSON `gorm:"type:jsonb"` // list of stage values
	InvestmentRangeMin  float64        `gorm:"type:numeric(15,2)"`
	InvestmentRangeMax  float64        `gorm:"type:numeric(15,2)"`
	SectorsOfInterest   datatypes.JSON `gorm:"type:jsonb"`

	// Portfolio counters, maintained by the deal ledger only
	TotalInvestments     int     `gorm:"not null;default:0"`
	TotalCapitalDeployed float64 `gorm:"type:numeric(15,2);not null;default:0"`

	// Verification
	Verified      bool `gorm:"default:false"`
	LinkedinURL   string
	CrunchbaseURL string

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
