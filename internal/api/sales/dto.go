package sales

import "game-catalog/internal/domain/catalog"

type GameIDParam struct {
	GameID uint `uri:"game_id" binding:"required"`
}

type YearQuery struct {
	Year int `form:"year" binding:"required"`
}

// Counts are pointers so that an explicit 0 passes the required check.
type CreateSalesQuery struct {
	Year          int    `form:"year" binding:"required"`
	DigitalSales  *int64 `form:"digital_sales" binding:"required"`
	HardCopySales *int64 `form:"hard_copy_sales" binding:"required"`
}

func (q CreateSalesQuery) toSales(gameID uint) catalog.Sales {
	return catalog.Sales{
		GameID:        gameID,
		Year:          q.Year,
		DigitalSales:  *q.DigitalSales,
		HardCopySales: *q.HardCopySales,
	}
}

type UpdateSalesQuery struct {
	CreateSalesQuery
	NewYear *int `form:"new_year"`
}

func (q UpdateSalesQuery) toSales(gameID uint) catalog.Sales {
	row := q.CreateSalesQuery.toSales(gameID)
	if q.NewYear != nil {
		row.Year = *q.NewYear
	}
	return row
}

type SalesDTO struct {
	GameID        uint   `json:"game_id"`
	Title         string `json:"title,omitempty"`
	Year          int    `json:"year"`
	DigitalSales  int64  `json:"digital_sales"`
	HardCopySales int64  `json:"hard_copy_sales"`
}

func toSalesDTO(v catalog.SalesView) SalesDTO {
	return SalesDTO{
		GameID:        v.GameID,
		Title:         v.Title,
		Year:          v.Year,
		DigitalSales:  v.DigitalSales,
		HardCopySales: v.HardCopySales,
	}
}

func fromSales(s catalog.Sales) SalesDTO {
	return SalesDTO{
		GameID:        s.GameID,
		Year:          s.Year,
		DigitalSales:  s.DigitalSales,
		HardCopySales: s.HardCopySales,
	}
}
