package catalog

import "github.com/shopspring/decimal"

type YearRevenue struct {
	Year          int
	Price         decimal.Decimal
	DigitalSales  int64
	HardCopySales int64
}

// Total is price times every copy sold that year, digital or boxed.
func (r YearRevenue) Total() decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(r.DigitalSales + r.HardCopySales))
}
