package service_test

import (
	"time"

	"github.com/budgettrack/backend/internal/models"
	"github.com/budgettrack/backend/internal/service"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	summary, err := service.GetSummary(suite.db)
	suite.Require().Nil(err)

	suite.assertDecimal("0", summary.TotalExpenses)
	suite.assertDecimal("0", summary.TotalBudget)
	suite.assertDecimal("0", summary.RemainingBudget)
	suite.Assert().Len(summary.CategoryExpenses, 0)
	suite.Assert().Len(summary.RecentExpenses, 0)
}

func (suite *TestSuiteStandard) TestSummaryDecimalPrecision() {
	_ = suite.createTestExpense(models.Expense{Category: "Food", Amount: decimal.RequireFromString("0.1")})
	_ = suite.createTestExpense(models.Expense{Category: "Food", Amount: decimal.RequireFromString("0.2")})
	_ = suite.createTestBudget(models.Budget{Category: "Food", Amount: decimal.RequireFromString("0.3"), Month: "January", Year: 2024})

	summary, err := service.GetSummary(suite.db)
	suite.Require().Nil(err)

	suite.Assert().Equal("0.3", summary.TotalExpenses.String())
	suite.Assert().Equal("0.3", summary.TotalBudget.String())
	suite.Assert().True(summary.RemainingBudget.IsZero(), "Remaining budget is %s", summary.RemainingBudget)

	suite.Require().Len(summary.CategoryExpenses, 1)
	suite.Assert().Equal("Food", summary.CategoryExpenses[0].Category)
	suite.Assert().Equal("0.3", summary.CategoryExpenses[0].Amount.String())
}

func (suite *TestSuiteStandard) TestSummary() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Seven expenses, one per day
	amounts := []float64{10, 20.5, 4.25, 100, 0.5, 8, 7.75}
	categories := []string{"Food", "Food", "Travel", "Rent", "Food", "Travel", "Fun"}
	for i := range amounts {
		_ = suite.createTestExpense(models.Expense{
			Title:    categories[i],
			Amount:   decimal.NewFromFloat(amounts[i]),
			Category: categories[i],
			Date:     base.AddDate(0, 0, i),
		})
	}

	_ = suite.createTestBudget(models.Budget{Category: "Food", Amount: decimal.NewFromFloat(100), Month: "January", Year: 2024})
	_ = suite.createTestBudget(models.Budget{Category: "Rent", Amount: decimal.NewFromFloat(50), Month: "January", Year: 2024})

	summary, err := service.GetSummary(suite.db)
	suite.Require().Nil(err)

	suite.assertDecimal("151", summary.TotalExpenses)
	suite.assertDecimal("150", summary.TotalBudget)
	suite.assertDecimal("-1", summary.RemainingBudget, "remaining budget is not clamped")

	expected := map[string]string{
		"Food":   "31",
		"Travel": "12.25",
		"Rent":   "100",
		"Fun":    "7.75",
	}
	suite.Require().Len(summary.CategoryExpenses, len(expected))
	for _, c := range summary.CategoryExpenses {
		suite.assertDecimal(expected[c.Category], c.Amount, c.Category)
	}

	// The five most recent, newest first
	suite.Require().Len(summary.RecentExpenses, 5)
	for i, e := range summary.RecentExpenses {
		suite.Assert().True(base.AddDate(0, 0, 6-i).Equal(e.Date), "Expense %d has date %s", i, e.Date)
	}
}

// TestSummaryBudgetOnly verifies that categories with only a budget do not show
// up in the category expenses.
func (suite *TestSuiteStandard) TestSummaryBudgetOnly() {
	_ = suite.createTestBudget(models.Budget{Category: "Savings", Amount: decimal.NewFromFloat(300), Month: "May", Year: 2024})

	summary, err := service.GetSummary(suite.db)
	suite.Require().Nil(err)

	suite.assertDecimal("300", summary.RemainingBudget)
	suite.Assert().Len(summary.CategoryExpenses, 0)
}

func (suite *TestSuiteStandard) TestSummaryDatabaseError() {
	suite.CloseDB()

	_, err := service.GetSummary(suite.db)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
