package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yipfram/DidactypoBack/backend/models"
)

// ErrBadgeAlreadyOwned signals an idempotent re-grant.
var ErrBadgeAlreadyOwned = errors.New("badge already owned")

// GrantBadge inserts a (user, badge) pair, conflict-ignored so two
// concurrent grants cannot duplicate. Returns ErrBadgeAlreadyOwned when
// the row existed, so handlers can answer 204.
func GrantBadge(db *gorm.DB, pseudo string, idBadge int) error {
	gain := models.UserBadge{PseudoUtilisateur: pseudo, IDBadge: idBadge}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&gain)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBadgeAlreadyOwned
	}
	return nil
}
