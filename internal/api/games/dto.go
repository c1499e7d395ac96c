package games

import (
	"time"

	"game-catalog/internal/domain/catalog"
)

type IDParam struct {
	ID uint `uri:"id" binding:"required"`
}

// CreateGameQuery carries POST /api/game parameters. release_date uses the
// Month/Day/Year form, e.g. January/15/2022.
type CreateGameQuery struct {
	Title         string  `form:"title" binding:"required"`
	Description   string  `form:"description"`
	ReleaseDate   string  `form:"release_date" binding:"required"`
	GameplayModes string  `form:"gameplay_modes"`
	ImageURL      *string `form:"img_url"`
	Developer     string  `form:"developer" binding:"required"`
	Genre         string  `form:"genre" binding:"required"`
	Platform      string  `form:"platform" binding:"required"`
}

func (q CreateGameQuery) toNewGame() catalog.NewGame {
	return catalog.NewGame{
		Title:         q.Title,
		Description:   q.Description,
		ReleaseDate:   q.ReleaseDate,
		GameplayModes: q.GameplayModes,
		ImageURL:      q.ImageURL,
		Developer:     q.Developer,
		Genre:         q.Genre,
		Platform:      q.Platform,
	}
}

type UpdateGameQuery struct {
	Title         *string `form:"title"`
	Description   *string `form:"description"`
	GameplayModes *string `form:"gameplay_modes"`
	ImageURL      *string `form:"img_url"`
}

func (q UpdateGameQuery) toPatch() catalog.GamePatch {
	return catalog.GamePatch{
		Title:         q.Title,
		Description:   q.Description,
		GameplayModes: q.GameplayModes,
		ImageURL:      q.ImageURL,
	}
}

type GameDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	ReleaseDate   string    `json:"release_date"`
	Description   string    `json:"description"`
	GameplayModes string    `json:"gameplay_modes"`
	ImageURL      *string   `json:"image_url"`
	DeveloperID   uint      `json:"developer_id"`
	Developer     string    `json:"developer"`
	GenreID       uint      `json:"genre_id"`
	Genre         string    `json:"genre"`
	PlatformID    uint      `json:"platform_id"`
	Platform      string    `json:"platform"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toGameDTO(v catalog.GameView) GameDTO {
	return GameDTO{
		ID:            v.ID,
		Title:         v.Title,
		ReleaseDate:   v.ReleaseDate.Format("2006-01-02"),
		Description:   v.Description,
		GameplayModes: v.GameplayModes,
		ImageURL:      v.ImageURL,
		DeveloperID:   v.DeveloperID,
		Developer:     v.Developer,
		GenreID:       v.GenreID,
		Genre:         v.Genre,
		PlatformID:    v.PlatformID,
		Platform:      v.Platform,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// Money is rendered with two decimals, as stored.
type RevenueDTO struct {
	Year          int    `json:"year"`
	Price         string `json:"price"`
	DigitalSales  int64  `json:"digital_sales"`
	HardCopySales int64  `json:"hard_copy_sales"`
	TotalRevenue  string `json:"total_revenue"`
}

func toRevenueDTO(r catalog.YearRevenue) RevenueDTO {
	return RevenueDTO{
		Year:          r.Year,
		Price:         r.Price.StringFixed(2),
		DigitalSales:  r.DigitalSales,
		HardCopySales: r.HardCopySales,
		TotalRevenue:  r.Total().StringFixed(2),
	}
}
