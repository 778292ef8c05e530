package tmc

import (
	"time"

	"github.com/google/uuid"
)

// TMC is a depreciable equipment item. Its monthly cost is the
// purchase cost spread evenly over the amortization period.
type TMC struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"uniqueIndex:uq_tmc_name"`
	Price              float64
	Quantity           int
	AmortizationMonths int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (TMC) TableName() string {
	return "tmc_items"
}

func (t TMC) TotalCost() float64 {
	return t.Price * float64(t.Quantity)
}

func (t TMC) MonthlyCost() float64 {
	return t.Price * float64(t.Quantity) / float64(t.AmortizationMonths)
}
