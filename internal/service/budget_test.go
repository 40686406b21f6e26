package service_test

import (
	"github.com/budgettrack/backend/internal/models"
	"github.com/budgettrack/backend/internal/service"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestUpsertBudgetCreates() {
	budget, created, err := service.UpsertBudget(suite.db, models.Budget{
		Category: "Rent",
		Amount:   decimal.NewFromFloat(950),
		Month:    "March",
		Year:     2024,
	})
	suite.Require().Nil(err)
	suite.Assert().True(created)
	suite.Assert().Equal("Rent", budget.Category)
	suite.Assert().Equal("March", budget.Month)
	suite.Assert().Equal(2024, budget.Year)
	suite.assertDecimal("950", budget.Amount)
}

func (suite *TestSuiteStandard) TestUpsertBudgetUpdatesAmountOnly() {
	existing := suite.createTestBudget(models.Budget{
		Category: "Rent",
		Amount:   decimal.NewFromFloat(950),
		Month:    "March",
		Year:     2024,
	})

	budget, created, err := service.UpsertBudget(suite.db, models.Budget{
		Category: "Rent",
		Amount:   decimal.NewFromFloat(1000),
		Month:    "March",
		Year:     2024,
	})
	suite.Require().Nil(err)
	suite.Assert().False(created)
	suite.Assert().Equal(existing.ID, budget.ID)
	suite.assertDecimal("1000", budget.Amount)

	budgets, err := service.ListBudgets(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 1)
	suite.assertDecimal("1000", budgets[0].Amount)
}

// TestUpsertBudgetExactMatch verifies that no normalization happens on the
// period key.
func (suite *TestSuiteStandard) TestUpsertBudgetExactMatch() {
	_ = suite.createTestBudget(models.Budget{
		Category: "Rent",
		Amount:   decimal.NewFromFloat(950),
		Month:    "March",
		Year:     2024,
	})

	tests := []models.Budget{
		{Category: "rent", Amount: decimal.NewFromFloat(1), Month: "March", Year: 2024},
		{Category: "Rent", Amount: decimal.NewFromFloat(2), Month: "march", Year: 2024},
		{Category: "Rent", Amount: decimal.NewFromFloat(3), Month: "03", Year: 2024},
		{Category: "Rent", Amount: decimal.NewFromFloat(4), Month: "March", Year: 2025},
	}

	for _, tt := range tests {
		_, created, err := service.UpsertBudget(suite.db, tt)
		suite.Require().Nil(err)
		suite.Assert().True(created, "Budget %#v should have been created", tt)
	}

	budgets, err := service.ListBudgets(suite.db)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 5)
}

func (suite *TestSuiteStandard) TestUpsertBudgetNegativeAmount() {
	budget, _, err := service.UpsertBudget(suite.db, models.Budget{Category: "Odd", Amount: decimal.NewFromFloat(-20), Month: "May", Year: 1999})
	suite.Require().Nil(err)
	suite.assertDecimal("-20", budget.Amount)
}

func (suite *TestSuiteStandard) TestListBudgetsEmpty() {
	budgets, err := service.ListBudgets(suite.db)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 0)
}

func (suite *TestSuiteStandard) TestBudgetDatabaseError() {
	suite.CloseDB()

	_, _, err := service.UpsertBudget(suite.db, models.Budget{Category: "Rent"})
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = service.ListBudgets(suite.db)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
