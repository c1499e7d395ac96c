package catalog

import "time"

type Game struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null;uniqueIndex:idx_games_title_platform,priority:1" json:"title"`
	ReleaseDate   time.Time `gorm:"type:date;not null" json:"release_date"`
	Description   string    `gorm:"not null" json:"description"`
	GameplayModes string    `gorm:"not null" json:"gameplay_modes"`
	ImageURL      *string   `gorm:"column:image_url" json:"image_url,omitempty"`

	DeveloperID uint `gorm:"not null;index" json:"developer_id"`
	GenreID     uint `gorm:"not null;index" json:"genre_id"`
	PlatformID  uint `gorm:"not null;index;uniqueIndex:idx_games_title_platform,priority:2" json:"platform_id"`

	Pricings []Pricing `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;" json:"-"`
	Sales    []Sales   `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Game) TableName() string { return "games" }

// GameView is a game joined with the names of its developer, genre and platform.
type GameView struct {
	ID            uint
	Title         string
	ReleaseDate   time.Time
	Description   string
	GameplayModes string
	ImageURL      *string

	DeveloperID uint
	Developer   string
	GenreID     uint
	Genre       string
	PlatformID  uint
	Platform    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewGame struct {
	Title         string
	Description   string
	ReleaseDate   string // Month/Day/Year, e.g. January/15/2022
	GameplayModes string
	ImageURL      *string
	Developer     string
	Genre         string
	Platform      string
}

// GamePatch holds the mutable fields of a game; nil means unchanged.
type GamePatch struct {
	Title         *string
	Description   *string
	GameplayModes *string
	ImageURL      *string
}

func (p GamePatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.GameplayModes == nil && p.ImageURL == nil
}
