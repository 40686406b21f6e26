package controllers

import (
	"time"

	"github.com/budgettrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable contains all fields of an expense that can be set by the client.
type ExpenseEditable struct {
	Title       *string          `json:"title" binding:"required" example:"Groceries"`                  // Short name of the expense. Can be empty
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"42.17"` // Amount of the expense. Negative values are allowed
	Category    *string          `json:"category" binding:"required" example:"Food"`                    // Free text category. Can be empty
	Description *string          `json:"description" example:"Weekly shopping at the farmers market"`   // Optional description
}

func (e ExpenseEditable) model() models.Expense {
	expense := models.Expense{
		Description: e.Description,
	}

	if e.Title != nil {
		expense.Title = *e.Title
	}

	if e.Amount != nil {
		expense.Amount = *e.Amount
	}

	if e.Category != nil {
		expense.Category = *e.Category
	}

	return expense
}

// ExpenseCreate is the body for creating an expense. The date is optional
// and defaults to the time of creation.
type ExpenseCreate struct {
	ExpenseEditable
	Date *time.Time `json:"date" example:"2024-03-01T12:00:00Z"` // Time of the expense
}

func (e ExpenseCreate) model() models.Expense {
	expense := e.ExpenseEditable.model()
	if e.Date != nil {
		expense.Date = *e.Date
	}

	return expense
}

// Expense is the API representation of an expense.
type Expense struct {
	ID          uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Title       string          `json:"title" example:"Groceries"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"42.17"`
	Category    string          `json:"category" example:"Food"`
	Description *string         `json:"description" example:"Weekly shopping at the farmers market"`
	Date        time.Time       `json:"date" example:"2024-03-01T12:00:00Z"`
}

func newExpense(e models.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
	}
}

func newExpenses(expenses []models.Expense) []Expense {
	result := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, newExpense(e))
	}

	return result
}

type ExpenseQueryFilter struct {
	Skip  int `form:"skip" example:"0"`    // Number of expenses to skip
	Limit int `form:"limit" example:"100"` // Maximum number of expenses to return
}

type DeleteResponse struct {
	Message string `json:"message" example:"Expense deleted successfully"`
}
