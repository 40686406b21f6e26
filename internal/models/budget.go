package models

import (
	"github.com/shopspring/decimal"
)

// Budget is the spending ceiling for one category in one month of a year.
//
// The combination of Category, Month and Year is unique. Month is free text,
// "June" and "06" are different months.
type Budget struct {
	DefaultModel
	Category string          `gorm:"uniqueIndex:idx_budget_period"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Month    string          `gorm:"uniqueIndex:idx_budget_period"`
	Year     int             `gorm:"uniqueIndex:idx_budget_period"`
}

func (Budget) Self() string {
	return "Budget"
}
