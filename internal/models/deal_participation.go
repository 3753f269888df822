package models

import "gorm.io/gorm"

// DealInterest records that an investor is watching a deal. One row per
// (deal, investor) pair.
type DealInterest struct {
	gorm.Model

	DealID     uint `gorm:"not null;uniqueIndex:idx_deal_interest"`
	InvestorID uint `gorm:"not null;uniqueIndex:idx_deal_interest"`

	// Relationships
	Deal     Deal            `gorm:"foreignKey:DealID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Investor InvestorProfile `gorm:"foreignKey:InvestorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// DealCommitment records an investor's pledge toward a deal. The pledge
// amount comes from the caller; the ledger only aggregates it.
type DealCommitment struct {
	gorm.Model

	DealID     uint    `gorm:"not null;uniqueIndex:idx_deal_commitment"`
	InvestorID uint    `gorm:"not null;uniqueIndex:idx_deal_commitment"`
	Amount     float64 `gorm:"type:numeric(15,2);not null"`

	// Relationships
	Deal     Deal            `gorm:"foreignKey:DealID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Investor InvestorProfile `gorm:"foreignKey:InvestorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
