package cabin

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cabin struct {
	ID           int64           `json:"id"`
	CreatedAt    time.Time       `json:"createdAt"`
	Name         string          `json:"name"`
	MaxCapacity  int             `json:"maxCapacity"`
	RegularPrice decimal.Decimal `json:"regularPrice"`
	Discount     decimal.Decimal `json:"discount"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
}

// NightlyRate is the regular price less the discount.
func (c Cabin) NightlyRate() decimal.Decimal {
	return c.RegularPrice.Sub(c.Discount)
}
