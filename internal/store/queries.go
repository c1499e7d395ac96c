package store

import (
	"game-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

func gameViewQuery(db *gorm.DB) *gorm.DB {
	return db.Table("games").
		Select(`games.id, games.title, games.release_date, games.description,
			games.gameplay_modes, games.image_url,
			games.developer_id, developers.name AS developer,
			games.genre_id, genres.name AS genre,
			games.platform_id, platforms.name AS platform,
			games.created_at, games.updated_at`).
		Joins("JOIN developers ON developers.id = games.developer_id").
		Joins("JOIN genres ON genres.id = games.genre_id").
		Joins("JOIN platforms ON platforms.id = games.platform_id")
}

// Ledger rows whose game is gone drop out of the inner join.
func pricingViewQuery(db *gorm.DB) *gorm.DB {
	return db.Table("prices").
		Select("prices.game_id, games.title, prices.year, prices.price").
		Joins("JOIN games ON games.id = prices.game_id")
}

func salesViewQuery(db *gorm.DB) *gorm.DB {
	return db.Table("sales").
		Select("sales.game_id, games.title, sales.year, sales.digital_sales, sales.hard_copy_sales").
		Joins("JOIN games ON games.id = sales.game_id")
}

func gameExists(tx *gorm.DB, gameID uint) (bool, error) {
	var count int64
	if err := tx.Model(&catalog.Game{}).Where("id = ?", gameID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// deleteGamesWhere removes the matching games together with their pricing
// and sales rows.
func deleteGamesWhere(tx *gorm.DB, column string, value uint) (int64, error) {
	ids := func() *gorm.DB {
		return tx.Model(&catalog.Game{}).Select("id").Where(column+" = ?", value)
	}

	if err := tx.Where("game_id IN (?)", ids()).Delete(&catalog.Pricing{}).Error; err != nil {
		return 0, err
	}
	if err := tx.Where("game_id IN (?)", ids()).Delete(&catalog.Sales{}).Error; err != nil {
		return 0, err
	}

	res := tx.Where(column+" = ?", value).Delete(&catalog.Game{})
	return res.RowsAffected, res.Error
}
