package pricing

import (
	"game-catalog/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type GameIDParam struct {
	GameID uint `uri:"game_id" binding:"required"`
}

type YearQuery struct {
	Year int `form:"year" binding:"required"`
}

type CreatePricingQuery struct {
	Year  int    `form:"year" binding:"required"`
	Price string `form:"price" binding:"required"`
}

// UpdatePricingQuery moves the row at year to new_year when new_year is given.
type UpdatePricingQuery struct {
	Year    int    `form:"year" binding:"required"`
	Price   string `form:"price" binding:"required"`
	NewYear *int   `form:"new_year"`
}

func (q UpdatePricingQuery) targetYear() int {
	if q.NewYear != nil {
		return *q.NewYear
	}
	return q.Year
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, catalog.InvalidArgument("price %q is not a number", raw)
	}
	return price, nil
}

type PricingDTO struct {
	GameID uint   `json:"game_id"`
	Title  string `json:"title,omitempty"`
	Year   int    `json:"year"`
	Price  string `json:"price"`
}

func toPricingDTO(v catalog.PricingView) PricingDTO {
	return PricingDTO{GameID: v.GameID, Title: v.Title, Year: v.Year, Price: v.Price.StringFixed(2)}
}

func fromPricing(p catalog.Pricing) PricingDTO {
	return PricingDTO{GameID: p.GameID, Year: p.Year, Price: p.Price.StringFixed(2)}
}
