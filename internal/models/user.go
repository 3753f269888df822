package models

import (
	"errors"

	"gorm.io/gorm"
)

const (
	UserTypeInvestor   = "investor"
	UserTypeStartup    = "startup"
	UserTypeIndividual = "individual"
)

func ValidUserType(t string) bool {
	switch t {
	case UserTypeInvestor, UserTypeStartup, UserTypeIndividual:
		return true
	}
	return false
}

type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	UserType     string `gorm:"not null;default:'individual'"` // "investor", "startup", "individual"
	Bio          string
	AvatarURL    string

	// Relationships
	InvestorProfile   *InvestorProfile   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	StartupProfile    *StartupProfile    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	IndividualProfile *IndividualProfile `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// ProfileRef identifies the one profile a user owns. Kind always equals
// the user's UserType when a profile exists.
type ProfileRef struct {
	Kind string
	ID   uint
}

var ErrNoProfile = errors.New("user has no profile")

// ResolveProfileRef looks up the single profile table named by the user's
// discriminant. It never probes the other variants.
func ResolveProfileRef(tx *gorm.DB, user *User) (ProfileRef, error) {
	var (
		model interface{}
		ref   ProfileRef
	)

	switch user.UserType {
	case UserTypeInvestor:
		model = &InvestorProfile{}
	case UserTypeStartup:
		model = &StartupProfile{}
	case UserTypeIndividual:
		model = &IndividualProfile{}
	default:
		return ProfileRef{}, ErrNoProfile
	}

	var row struct{ ID uint }

	err := tx.Model(model).Select("id").Where("user_id = ?", user.ID).First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileRef{}, ErrNoProfile
		}
		return ProfileRef{}, err
	}

	ref = ProfileRef{Kind: user.UserType, ID: row.ID}
	return ref, nil
}

// HasAnyProfile reports whether the user owns a profile of any variant.
// Enforces the one-profile-per-user rule at creation time.
func HasAnyProfile(tx *gorm.DB, userID uint) (bool, error) {
	for _, model := range []interface{}{
		&InvestorProfile{},
		&StartupProfile{},
		&IndividualProfile{},
	} {
		var count int64

		if err := tx.Model(model).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return false, err
		}

		if count > 0 {
			return true, nil
		}
	}

	return false, nil
}
