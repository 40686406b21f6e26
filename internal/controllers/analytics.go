package controllers

import (
	"net/http"

	"github.com/budgettrack/backend/internal/httputil"
	"github.com/budgettrack/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CategoryExpense struct {
	Category string          `json:"category" example:"Food"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" example:"231.4"`
}

type Summary struct {
	TotalExpenses    decimal.Decimal   `json:"total_expenses" swaggertype:"number" example:"1432.5"`  // Sum of all expenses
	TotalBudget      decimal.Decimal   `json:"total_budget" swaggertype:"number" example:"2000"`      // Sum of all budgets
	RemainingBudget  decimal.Decimal   `json:"remaining_budget" swaggertype:"number" example:"567.5"` // Total budget minus total expenses. Negative when overspent
	CategoryExpenses []CategoryExpense `json:"category_expenses"`                                     // Sum of expenses per category
	RecentExpenses   []Expense         `json:"recent_expenses"`                                       // The five most recent expenses
}

func (co Controller) RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", co.OptionsSummary)
	r.GET("/summary", co.GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/api/analytics/summary [options]
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns totals over all expenses and budgets, the expenses per category and the most recent expenses
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	Summary
// @Failure		500	{object}	httpError
// @Router			/api/analytics/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	summary, err := scope(c, co.DB, service.GetSummary)
	if err != nil {
		abort(c, err)
		return
	}

	categories := make([]CategoryExpense, 0, len(summary.CategoryExpenses))
	for _, ca := range summary.CategoryExpenses {
		categories = append(categories, CategoryExpense{
			Category: ca.Category,
			Amount:   ca.Amount,
		})
	}

	c.JSON(http.StatusOK, Summary{
		TotalExpenses:    summary.TotalExpenses,
		TotalBudget:      summary.TotalBudget,
		RemainingBudget:  summary.RemainingBudget,
		CategoryExpenses: categories,
		RecentExpenses:   newExpenses(summary.RecentExpenses),
	})
}
