package store

import (
	"game-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

// Pricing and sales are both keyed by (game_id, year); these helpers take the
// ledger model so the two tables share one set of rules.

func countLedger(tx *gorm.DB, model interface{}, gameID uint, year int) (int64, error) {
	var count int64
	err := tx.Model(model).Where("game_id = ? AND year = ?", gameID, year).Count(&count).Error
	return count, err
}

func ledgerSlotFree(tx *gorm.DB, model interface{}, entity string, gameID uint, year int) error {
	count, err := countLedger(tx, model, gameID, year)
	if err != nil {
		return catalog.WrapError(err, entity, "check "+entity, keyDetails(gameID, year))
	}
	if count > 0 {
		return catalog.Conflict(entity, "%s", keyDetails(gameID, year))
	}
	return nil
}

func ledgerRowExists(tx *gorm.DB, model interface{}, entity string, gameID uint, year int) error {
	count, err := countLedger(tx, model, gameID, year)
	if err != nil {
		return catalog.WrapError(err, entity, "check "+entity, keyDetails(gameID, year))
	}
	if count == 0 {
		return catalog.NotFound(entity, "%s", keyDetails(gameID, year))
	}
	return nil
}

func deleteLedgerRow(tx *gorm.DB, model interface{}, entity string, gameID uint, year int) error {
	res := tx.Where("game_id = ? AND year = ?", gameID, year).Delete(model)
	if res.Error != nil {
		return catalog.WrapError(res.Error, entity, "delete "+entity, keyDetails(gameID, year))
	}
	if res.RowsAffected == 0 {
		return catalog.NotFound(entity, "%s", keyDetails(gameID, year))
	}
	return nil
}

func requireGame(tx *gorm.DB, gameID uint) error {
	ok, err := gameExists(tx, gameID)
	if err != nil {
		return catalog.WrapError(err, "game", "check game", "")
	}
	if !ok {
		return catalog.NotFound("game", "id=%d", gameID)
	}
	return nil
}
