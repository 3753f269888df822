package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DealStatusDraft        = "draft"
	DealStatusActive       = "active"
	DealStatusInDiscussion = "in_discussion"
	DealStatusDueDiligence = "due_diligence"
	DealStatusClosed       = "closed"
	DealStatusCancelled    = "cancelled"
)

const (
	DealTypeEquity          = "equity"
	DealTypeConvertibleNote = "convertible_note"
	DealTypeSAFE            = "safe"
	DealTypeDebt            = "debt"
	DealTypeOther           = "other"
)

func ValidDealType(t string) bool {
	switch t {
	case DealTypeEquity, DealTypeConvertibleNote, DealTypeSAFE, DealTypeDebt, DealTypeOther:
		return true
	}
	return false
}

func ValidDealStatus(s string) bool {
	switch s {
	case DealStatusDraft, DealStatusActive, DealStatusInDiscussion,
		DealStatusDueDiligence, DealStatusClosed, DealStatusCancelled:
		return true
	}
	return false
}

type Deal struct {
	gorm.Model

	StartupID   uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	DealType    string `gorm:"not null;default:'equity'"`
	Status      string `gorm:"not null;default:'draft';index"`

	// Terms
	Amount          float64 `gorm:"type:numeric(15,2)"`
	EquityOffered   float64 `gorm:"type:numeric(5,2)"` // percentage
	MinInvestment   float64 `gorm:"type:numeric(15,2)"`
	TargetCloseDate time.Time

	// Progress, derived from commitments. Written only by the ledger.
	AmountRaised      float64 `gorm:"type:numeric(15,2);not null;default:0"`
	NumberOfInvestors int     `gorm:"not null;default:0"`

	// Additional info
	Industry         string
	DealDocumentsURL string
	Terms            string

	// Relationships
	Startup     StartupProfile   `gorm:"foreignKey:StartupID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Interests   []DealInterest   `gorm:"foreignKey:DealID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Commitments []DealCommitment `gorm:"foreignKey:DealID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// Terminal reports whether the deal has reached a final status. No
// participation or status change is accepted past this point.
func (d *Deal) Terminal() bool {
	return d.Status == DealStatusClosed || d.Status == DealStatusCancelled
}
