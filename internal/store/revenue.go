package store

import (
	"context"
	"fmt"

	"game-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

// GameRevenue pairs each year's price with that year's sales. Years missing
// either side are left out.
func (s *Store) GameRevenue(ctx context.Context, gameID uint) ([]catalog.YearRevenue, error) {
	if err := validID("game", gameID); err != nil {
		return nil, err
	}

	rows := make([]catalog.YearRevenue, 0)
	err := s.transaction(ctx, "game revenue", func(tx *gorm.DB) error {
		if err := requireGame(tx, gameID); err != nil {
			return err
		}
		return catalog.WrapError(
			tx.Table("prices").
				Select("prices.year, prices.price, sales.digital_sales, sales.hard_copy_sales").
				Joins("JOIN sales ON sales.game_id = prices.game_id AND sales.year = prices.year").
				Where("prices.game_id = ?", gameID).
				Order("prices.year ASC").
				Scan(&rows).Error,
			"revenue", "game revenue", fmt.Sprintf("game_id=%d", gameID),
		)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
