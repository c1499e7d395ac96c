package store

import (
	"context"

	"game-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

func (s *Store) ListSales(ctx context.Context) ([]catalog.SalesView, error) {
	rows := make([]catalog.SalesView, 0)
	err := s.read(ctx, "list sales", func(db *gorm.DB) error {
		return catalog.WrapError(
			salesViewQuery(db).Order("sales.game_id ASC, sales.year ASC").Scan(&rows).Error,
			"sales", "list sales", "",
		)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) GetSales(ctx context.Context, gameID uint, year int) (catalog.SalesView, error) {
	if err := validKey(gameID, year); err != nil {
		return catalog.SalesView{}, err
	}

	var rows []catalog.SalesView
	err := s.read(ctx, "get sales", func(db *gorm.DB) error {
		return catalog.WrapError(
			salesViewQuery(db).
				Where("sales.game_id = ? AND sales.year = ?", gameID, year).
				Limit(1).Scan(&rows).Error,
			"sales", "get sales", keyDetails(gameID, year),
		)
	})
	if err != nil {
		return catalog.SalesView{}, err
	}
	if len(rows) == 0 {
		return catalog.SalesView{}, catalog.NotFound("sales", "%s", keyDetails(gameID, year))
	}
	return rows[0], nil
}

func (s *Store) CreateSales(ctx context.Context, row catalog.Sales) (catalog.Sales, error) {
	if err := validSales(row); err != nil {
		return catalog.Sales{}, err
	}

	err := s.transaction(ctx, "create sales", func(tx *gorm.DB) error {
		if err := ledgerSlotFree(tx, &catalog.Sales{}, "sales", row.GameID, row.Year); err != nil {
			return err
		}
		if err := requireGame(tx, row.GameID); err != nil {
			return err
		}
		return catalog.WrapError(tx.Create(&row).Error, "sales", "create sales", keyDetails(row.GameID, row.Year))
	})
	if err != nil {
		return catalog.Sales{}, err
	}
	return row, nil
}

// UpdateSales replaces the counts of the row at (gameID, year) and moves it
// to row.Year.
func (s *Store) UpdateSales(ctx context.Context, gameID uint, year int, row catalog.Sales) (catalog.Sales, error) {
	if err := validKey(gameID, year); err != nil {
		return catalog.Sales{}, err
	}
	row.GameID = gameID
	if err := validSales(row); err != nil {
		return catalog.Sales{}, err
	}

	err := s.transaction(ctx, "update sales", func(tx *gorm.DB) error {
		if err := ledgerRowExists(tx, &catalog.Sales{}, "sales", gameID, year); err != nil {
			return err
		}
		if row.Year != year {
			if err := ledgerSlotFree(tx, &catalog.Sales{}, "sales", gameID, row.Year); err != nil {
				return err
			}
		}
		return catalog.WrapError(
			tx.Model(&catalog.Sales{}).
				Where("game_id = ? AND year = ?", gameID, year).
				Updates(map[string]interface{}{
					"year":            row.Year,
					"digital_sales":   row.DigitalSales,
					"hard_copy_sales": row.HardCopySales,
				}).Error,
			"sales", "update sales", keyDetails(gameID, year),
		)
	})
	if err != nil {
		return catalog.Sales{}, err
	}
	return row, nil
}

func (s *Store) DeleteSales(ctx context.Context, gameID uint, year int) error {
	if err := validKey(gameID, year); err != nil {
		return err
	}
	return s.transaction(ctx, "delete sales", func(tx *gorm.DB) error {
		return deleteLedgerRow(tx, &catalog.Sales{}, "sales", gameID, year)
	})
}

func validSales(row catalog.Sales) error {
	if err := validKey(row.GameID, row.Year); err != nil {
		return err
	}
	if row.DigitalSales < 0 || row.HardCopySales < 0 {
		return catalog.InvalidArgument("sales counts must not be negative")
	}
	return nil
}
