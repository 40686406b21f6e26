package controllers

import (
	"net/http"

	"github.com/budgettrack/backend/internal/httputil"
	"github.com/budgettrack/backend/internal/models"
	"github.com/budgettrack/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEditable is the body for setting a budget.
type BudgetEditable struct {
	Category *string          `json:"category" binding:"required" example:"Food"`
	Amount   *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"400"`
	Month    *string          `json:"month" binding:"required" example:"June"` // Any text. No normalization happens, "June" and "06" are different months
	Year     *int             `json:"year" binding:"required" example:"2024"`
}

func (b BudgetEditable) model() models.Budget {
	var budget models.Budget

	if b.Category != nil {
		budget.Category = *b.Category
	}

	if b.Month != nil {
		budget.Month = *b.Month
	}

	if b.Amount != nil {
		budget.Amount = *b.Amount
	}

	if b.Year != nil {
		budget.Year = *b.Year
	}

	return budget
}

// Budget is the API representation of a budget.
type Budget struct {
	ID       uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Category string          `json:"category" example:"Food"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" example:"400"`
	Month    string          `json:"month" example:"June"`
	Year     int             `json:"year" example:"2024"`
}

func newBudget(b models.Budget) Budget {
	return Budget{
		ID:       b.ID,
		Category: b.Category,
		Amount:   b.Amount,
		Month:    b.Month,
		Year:     b.Year,
	}
}

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsBudgets)
	r.GET("", co.GetBudgets)
	r.POST("", co.SetBudget)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/api/budgets [options]
func (co Controller) OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Set budget
// @Description	Sets the budget for a category in a month. If a budget for the category, month and year exists, only its amount is updated.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	Budget	"Existing budget updated"
// @Success		201		{object}	Budget	"Budget created"
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/api/budgets [post]
func (co Controller) SetBudget(c *gin.Context) {
	var data BudgetEditable

	err := httputil.BindData(c, &data)
	if err != nil {
		abort(c, err)
		return
	}

	type upsert struct {
		budget  models.Budget
		created bool
	}

	result, err := scope(c, co.DB, func(tx *gorm.DB) (upsert, error) {
		budget, created, err := service.UpsertBudget(tx, data.model())
		return upsert{budget, created}, err
	})
	if err != nil {
		abort(c, err)
		return
	}

	s := http.StatusOK
	if result.created {
		s = http.StatusCreated
	}

	c.JSON(s, newBudget(result.budget))
}

// @Summary		List budgets
// @Description	Returns all budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		Budget
// @Failure		500	{object}	httpError
// @Router			/api/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := scope(c, co.DB, service.ListBudgets)
	if err != nil {
		abort(c, err)
		return
	}

	result := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, newBudget(b))
	}

	c.JSON(http.StatusOK, result)
}
