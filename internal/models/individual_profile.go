package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type IndividualProfile struct {
	gorm.Model

	UserID      uint   `gorm:"not null;uniqueIndex"`
	FirstName   string `gorm:"not null"`
	LastName    string `gorm:"not null"`
	Title       string
	Company     string
	Interests   datatypes.JSON `gorm:"type:jsonb"`
	LinkedinURL string
	Verified    bool `gorm:"default:false"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
