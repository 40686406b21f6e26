// Package service implements the operations on expenses, budgets and
// the analytics summary.
//
// All functions take the database handle they operate on. Controllers pass
// in a transaction so that every request runs in exactly one storage scope.
package service

import (
	"errors"

	"github.com/budgettrack/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("expense not found")

// Defaults for listing expenses
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// CreateExpense persists a new expense. When no date is set, the current
// time is used.
func CreateExpense(db *gorm.DB, expense models.Expense) (models.Expense, error) {
	err := db.Create(&expense).Error
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// ListExpenses returns at most limit expenses after skipping skip of them.
//
// The order is the one the database returns. Negative values for skip and limit
// disable offset and limit respectively.
func ListExpenses(db *gorm.DB, skip, limit int) ([]models.Expense, error) {
	var expenses []models.Expense

	err := db.Offset(skip).Limit(limit).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// GetExpense returns the expense with the given id.
func GetExpense(db *gorm.DB, id uuid.UUID) (models.Expense, error) {
	var expense models.Expense

	err := db.First(&expense, "id = ?", id).Error
	if err != nil {
		return models.Expense{}, notFound(err)
	}

	return expense, nil
}

// UpdateExpense replaces title, amount, category and description of an expense.
// The date is never changed.
func UpdateExpense(db *gorm.DB, id uuid.UUID, data models.Expense) (models.Expense, error) {
	expense, err := GetExpense(db, id)
	if err != nil {
		return models.Expense{}, err
	}

	expense.Title = data.Title
	expense.Amount = data.Amount
	expense.Category = data.Category
	expense.Description = data.Description

	err = db.Model(&expense).Select("Title", "Amount", "Category", "Description", "UpdatedAt").Updates(&expense).Error
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// DeleteExpense removes an expense permanently.
func DeleteExpense(db *gorm.DB, id uuid.UUID) error {
	expense, err := GetExpense(db, id)
	if err != nil {
		return err
	}

	return db.Delete(&expense).Error
}

// notFound translates the generic not found error into ErrExpenseNotFound.
func notFound(err error) error {
	if errors.Is(err, models.ErrResourceNotFound) {
		return ErrExpenseNotFound
	}

	return err
}
