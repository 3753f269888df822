// Package ledger owns the deal lifecycle and investor participation
// bookkeeping. Every mutation is all-or-nothing: it either commits as a
// whole or leaves the deal untouched. Derived progress fields
// (amount_raised, number_of_investors) are written here and nowhere
// else.
package ledger

import (
	"errors"

	"github.com/raya-dev/raya/db"
	"github.com/raya-dev/raya/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// transitions is the deal status graph. Cancellation is reachable from
// every non-terminal state; closed and cancelled are terminal.
var transitions = map[string][]string{
	models.DealStatusDraft:        {models.DealStatusActive, models.DealStatusCancelled},
	models.DealStatusActive:       {models.DealStatusInDiscussion, models.DealStatusCancelled},
	models.DealStatusInDiscussion: {models.DealStatusDueDiligence, models.DealStatusCancelled},
	models.DealStatusDueDiligence: {models.DealStatusClosed, models.DealStatusCancelled},
	models.DealStatusClosed:       {},
	models.DealStatusCancelled:    {},
}

// CanTransition reports whether to is reachable from from in one step.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateDeal creates a draft deal owned by the user's startup profile.
// Users without a startup profile get ErrMissingStartupProfile so the
// caller can send them to profile creation first.
func CreateDeal(userID uint, deal *models.Deal) error {
	var startup models.StartupProfile

	if err := db.DB.Where("user_id = ?", userID).First(&startup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMissingStartupProfile
		}
		return err
	}

	deal.StartupID = startup.ID
	deal.Status = models.DealStatusDraft
	deal.AmountRaised = 0
	deal.NumberOfInvestors = 0

	return db.DB.Create(deal).Error
}

// lockDeal loads the deal under a SELECT ... FOR UPDATE row lock so all
// mutations of the same deal serialize: without it, two commits under
// READ COMMITTED can each sum only their own row and the later write
// overwrites the earlier totals. sqlite rejects FOR UPDATE and already
// serializes writers with its single write lock, so the clause is
// skipped there.
func lockDeal(tx *gorm.DB, dealID uint) (models.Deal, error) {
	var deal models.Deal

	q := tx

	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := q.First(&deal, dealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deal, ErrDealNotFound
		}
		return deal, err
	}

	return deal, nil
}

// investorProfileID resolves the caller's investor profile.
func investorProfileID(tx *gorm.DB, userID uint) (uint, error) {
	var investor models.InvestorProfile

	if err := tx.Where("user_id = ?", userID).First(&investor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrMissingInvestorProfile
		}
		return 0, err
	}

	return investor.ID, nil
}

// ExpressInterest idempotently adds the caller's investor profile to the
// deal's interested set. Terminal deals reject new interest.
func ExpressInterest(dealID uint, userID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		investorID, err := investorProfileID(tx, userID)

		if err != nil {
			return err
		}

		deal, err := lockDeal(tx, dealID)

		if err != nil {
			return err
		}

		if deal.Terminal() {
			return ErrDealTerminal
		}

		var existing models.DealInterest

		err = tx.Where("deal_id = ? AND investor_id = ?", deal.ID, investorID).First(&existing).Error

		if err == nil {
			// Already interested, nothing to do.
			return nil
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&models.DealInterest{
			DealID:     deal.ID,
			InvestorID: investorID,
		}).Error
	})
}

// Commit idempotently records the caller's pledge toward a deal and
// recomputes the deal's progress, all inside one transaction so two
// investors committing at once cannot lose each other's update. A repeat
// commit with the same amount is a no-op; a repeat with a new amount
// updates the pledge in place, never adding a second row. A first-time
// commit also bumps the investor's portfolio counters.
func Commit(dealID uint, userID uint, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		investorID, err := investorProfileID(tx, userID)

		if err != nil {
			return err
		}

		deal, err := lockDeal(tx, dealID)

		if err != nil {
			return err
		}

		if deal.Terminal() {
			return ErrDealTerminal
		}

		var commitment models.DealCommitment

		err = tx.Where("deal_id = ? AND investor_id = ?", deal.ID, investorID).First(&commitment).Error

		switch {
		case err == nil:
			if commitment.Amount != amount {
				commitment.Amount = amount
				if err := tx.Save(&commitment).Error; err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			commitment = models.DealCommitment{
				DealID:     deal.ID,
				InvestorID: investorID,
				Amount:     amount,
			}

			if err := tx.Create(&commitment).Error; err != nil {
				return err
			}

			// First commitment to this deal counts toward the
			// investor's portfolio.
			if err := tx.Model(&models.InvestorProfile{}).
				Where("id = ?", investorID).
				Updates(map[string]interface{}{
					"total_investments":      gorm.Expr("total_investments + 1"),
					"total_capital_deployed": gorm.Expr("total_capital_deployed + ?", amount),
				}).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return recomputeProgress(tx, deal.ID)
	})
}

// RecomputeProgress rebuilds a deal's derived progress from its
// committed set. Deterministic and idempotent: the same commitments
// always produce the same totals.
func RecomputeProgress(dealID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		deal, err := lockDeal(tx, dealID)

		if err != nil {
			return err
		}

		return recomputeProgress(tx, deal.ID)
	})
}

func recomputeProgress(tx *gorm.DB, dealID uint) error {
	var count int64

	if err := tx.Model(&models.DealCommitment{}).
		Where("deal_id = ?", dealID).
		Count(&count).Error; err != nil {
		return err
	}

	var raised float64

	if err := tx.Model(&models.DealCommitment{}).
		Where("deal_id = ?", dealID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&raised).Error; err != nil {
		return err
	}

	return tx.Model(&models.Deal{}).
		Where("id = ?", dealID).
		Updates(map[string]interface{}{
			"amount_raised":       raised,
			"number_of_investors": count,
		}).Error
}

// ChangeStatus moves a deal along the status graph. Only the owning
// startup's user may change status; transitions outside the graph are
// rejected.
func ChangeStatus(dealID uint, userID uint, newStatus string) error {
	if !models.ValidDealStatus(newStatus) {
		return ErrInvalidTransition
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		deal, err := lockDeal(tx, dealID)

		if err != nil {
			return err
		}

		var startup models.StartupProfile

		if err := tx.First(&startup, deal.StartupID).Error; err != nil {
			return err
		}

		if startup.UserID != userID {
			return ErrNotDealOwner
		}

		if !CanTransition(deal.Status, newStatus) {
			if deal.Terminal() {
				return ErrDealTerminal
			}
			return ErrInvalidTransition
		}

		return tx.Model(&deal).Update("status", newStatus).Error
	})
}
