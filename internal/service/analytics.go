package service

import (
	"github.com/budgettrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Number of expenses in Summary.RecentExpenses
const recentExpenses = 5

type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// Summary is the aggregated view over all expenses and budgets.
type Summary struct {
	TotalExpenses    decimal.Decimal
	TotalBudget      decimal.Decimal
	RemainingBudget  decimal.Decimal // TotalBudget - TotalExpenses, can be negative
	CategoryExpenses []CategoryAmount
	RecentExpenses   []models.Expense
}

// GetSummary calculates the summary. Nothing is cached, every call
// reads the current state of the database.
//
// Amounts are added up as decimals in Go. SQLite stores the amount column
// with REAL affinity and SUM would return a float with rounding errors.
func GetSummary(db *gorm.DB) (Summary, error) {
	var expenses []CategoryAmount
	err := db.
		Model(&models.Expense{}).
		Select("category, amount").
		Order("category").
		Scan(&expenses).Error
	if err != nil {
		return Summary{}, err
	}

	var budgets []decimal.Decimal
	err = db.Model(&models.Budget{}).Pluck("amount", &budgets).Error
	if err != nil {
		return Summary{}, err
	}

	totalExpenses := decimal.Zero
	categories := make([]CategoryAmount, 0)
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Amount)

		// Rows are ordered by category
		if n := len(categories); n > 0 && categories[n-1].Category == e.Category {
			categories[n-1].Amount = categories[n-1].Amount.Add(e.Amount)
			continue
		}
		categories = append(categories, e)
	}

	totalBudget := decimal.Zero
	for _, b := range budgets {
		totalBudget = totalBudget.Add(b)
	}

	var recent []models.Expense
	err = db.Order("date DESC").Limit(recentExpenses).Find(&recent).Error
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalExpenses:    totalExpenses,
		TotalBudget:      totalBudget,
		RemainingBudget:  totalBudget.Sub(totalExpenses),
		CategoryExpenses: categories,
		RecentExpenses:   recent,
	}, nil
}
