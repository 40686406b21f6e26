package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single recorded spending transaction.
type Expense struct {
	DefaultModel
	Title       string          `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Category    string
	Description *string
	Date        time.Time `gorm:"index"`
}

func (Expense) Self() string {
	return "Expense"
}

// AfterFind enforces UTC for all dates.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return
}

// BeforeSave defaults the date to the current time when it is not set
// and stores it in UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return
}
