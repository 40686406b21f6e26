package service

import (
	"errors"

	"github.com/budgettrack/backend/internal/models"
	"gorm.io/gorm"
)

// UpsertBudget sets the amount of the budget for the category, month and year
// of data. Matching is exact, "June" and "june" are different months.
//
// If no budget exists for that combination, a new one is created. The second
// return value reports if that happened.
func UpsertBudget(db *gorm.DB, data models.Budget) (models.Budget, bool, error) {
	var budget models.Budget

	err := db.
		Where("category = ? AND month = ? AND year = ?", data.Category, data.Month, data.Year).
		First(&budget).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		budget = models.Budget{
			Category: data.Category,
			Amount:   data.Amount,
			Month:    data.Month,
			Year:     data.Year,
		}

		err = db.Create(&budget).Error
		if err != nil {
			return models.Budget{}, false, err
		}

		return budget, true, nil
	} else if err != nil {
		return models.Budget{}, false, err
	}

	budget.Amount = data.Amount
	err = db.Model(&budget).Select("Amount", "UpdatedAt").Updates(&budget).Error
	if err != nil {
		return models.Budget{}, false, err
	}

	return budget, false, nil
}

// ListBudgets returns all budgets.
func ListBudgets(db *gorm.DB) ([]models.Budget, error) {
	var budgets []models.Budget

	err := db.Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}
