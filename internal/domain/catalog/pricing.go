package catalog

import "github.com/shopspring/decimal"

type Pricing struct {
	GameID uint            `gorm:"primaryKey;autoIncrement:false" json:"game_id"`
	Year   int             `gorm:"primaryKey;autoIncrement:false" json:"year"`
	Price  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (Pricing) TableName() string { return "prices" }

type PricingView struct {
	GameID uint
	Title  string
	Year   int
	Price  decimal.Decimal
}
