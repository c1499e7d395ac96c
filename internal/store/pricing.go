package store

import (
	"context"
	"fmt"

	"game-catalog/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (s *Store) ListPricing(ctx context.Context) ([]catalog.PricingView, error) {
	rows := make([]catalog.PricingView, 0)
	err := s.read(ctx, "list pricing", func(db *gorm.DB) error {
		return catalog.WrapError(
			pricingViewQuery(db).Order("prices.game_id ASC, prices.year ASC").Scan(&rows).Error,
			"pricing", "list pricing", "",
		)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) GetPricing(ctx context.Context, gameID uint, year int) (catalog.PricingView, error) {
	if err := validKey(gameID, year); err != nil {
		return catalog.PricingView{}, err
	}

	var rows []catalog.PricingView
	err := s.read(ctx, "get pricing", func(db *gorm.DB) error {
		return catalog.WrapError(
			pricingViewQuery(db).
				Where("prices.game_id = ? AND prices.year = ?", gameID, year).
				Limit(1).Scan(&rows).Error,
			"pricing", "get pricing", keyDetails(gameID, year),
		)
	})
	if err != nil {
		return catalog.PricingView{}, err
	}
	if len(rows) == 0 {
		return catalog.PricingView{}, catalog.NotFound("pricing", "%s", keyDetails(gameID, year))
	}
	return rows[0], nil
}

// CreatePricing fails with a conflict when the (game, year) slot is taken and
// with not-found when the game does not exist.
func (s *Store) CreatePricing(ctx context.Context, gameID uint, year int, price decimal.Decimal) (catalog.Pricing, error) {
	if err := validKey(gameID, year); err != nil {
		return catalog.Pricing{}, err
	}
	if err := validPrice(price); err != nil {
		return catalog.Pricing{}, err
	}

	row := catalog.Pricing{GameID: gameID, Year: year, Price: price}
	err := s.transaction(ctx, "create pricing", func(tx *gorm.DB) error {
		if err := ledgerSlotFree(tx, &catalog.Pricing{}, "pricing", gameID, year); err != nil {
			return err
		}
		if err := requireGame(tx, gameID); err != nil {
			return err
		}
		return catalog.WrapError(tx.Create(&row).Error, "pricing", "create pricing", keyDetails(gameID, year))
	})
	if err != nil {
		return catalog.Pricing{}, err
	}
	return row, nil
}

// UpdatePricing rewrites price and year of an existing row. Moving onto a
// year that already has a row for the same game is a conflict.
func (s *Store) UpdatePricing(ctx context.Context, gameID uint, year int, price decimal.Decimal, newYear int) (catalog.Pricing, error) {
	if err := validKey(gameID, year); err != nil {
		return catalog.Pricing{}, err
	}
	if err := validYear(newYear); err != nil {
		return catalog.Pricing{}, err
	}
	if err := validPrice(price); err != nil {
		return catalog.Pricing{}, err
	}

	row := catalog.Pricing{GameID: gameID, Year: newYear, Price: price}
	err := s.transaction(ctx, "update pricing", func(tx *gorm.DB) error {
		if err := ledgerRowExists(tx, &catalog.Pricing{}, "pricing", gameID, year); err != nil {
			return err
		}
		if newYear != year {
			if err := ledgerSlotFree(tx, &catalog.Pricing{}, "pricing", gameID, newYear); err != nil {
				return err
			}
		}
		return catalog.WrapError(
			tx.Model(&catalog.Pricing{}).
				Where("game_id = ? AND year = ?", gameID, year).
				Updates(map[string]interface{}{"price": price, "year": newYear}).Error,
			"pricing", "update pricing", keyDetails(gameID, year),
		)
	})
	if err != nil {
		return catalog.Pricing{}, err
	}
	return row, nil
}

func (s *Store) DeletePricing(ctx context.Context, gameID uint, year int) error {
	if err := validKey(gameID, year); err != nil {
		return err
	}
	return s.transaction(ctx, "delete pricing", func(tx *gorm.DB) error {
		return deleteLedgerRow(tx, &catalog.Pricing{}, "pricing", gameID, year)
	})
}

// Prices are stored as DECIMAL(10,2).
var maxPrice = decimal.New(1, 8)

func validPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return catalog.InvalidArgument("price must not be negative, got %s", price)
	}
	if !price.Equal(price.Round(2)) {
		return catalog.InvalidArgument("price must have at most 2 decimal places, got %s", price)
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return catalog.InvalidArgument("price must be below %s, got %s", maxPrice, price)
	}
	return nil
}

func validKey(gameID uint, year int) error {
	if err := validID("game", gameID); err != nil {
		return err
	}
	return validYear(year)
}

func keyDetails(gameID uint, year int) string {
	return fmt.Sprintf("game_id=%d year=%d", gameID, year)
}
