package catalog

type Sales struct {
	GameID        uint  `gorm:"primaryKey;autoIncrement:false" json:"game_id"`
	Year          int   `gorm:"primaryKey;autoIncrement:false" json:"year"`
	DigitalSales  int64 `gorm:"not null;default:0" json:"digital_sales"`
	HardCopySales int64 `gorm:"not null;default:0" json:"hard_copy_sales"`
}

func (Sales) TableName() string { return "sales" }

type SalesView struct {
	GameID        uint
	Title         string
	Year          int
	DigitalSales  int64
	HardCopySales int64
}
