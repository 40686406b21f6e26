package controllers

import (
	"net/http"

	"github.com/budgettrack/backend/internal/httputil"
	"github.com/budgettrack/backend/internal/models"
	"github.com/budgettrack/backend/internal/service"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsExpenses)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PUT("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/expenses [options]
func (co Controller) OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return
	}

	_, err = scope(c, co.DB, func(tx *gorm.DB) (models.Expense, error) {
		return service.GetExpense(tx, uri.ID.UUID)
	})
	if err != nil {
		abort(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense. If no date is sent, the current time is used.
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	Expense
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			expense	body		ExpenseCreate	true	"Expense"
// @Router			/api/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var create ExpenseCreate

	err := httputil.BindData(c, &create)
	if err != nil {
		abort(c, err)
		return
	}

	expense, err := scope(c, co.DB, func(tx *gorm.DB) (models.Expense, error) {
		return service.CreateExpense(tx, create.model())
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, newExpense(expense))
}

// @Summary		List expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200		{array}		Expense
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			skip	query		int	false	"Number of expenses to skip. Defaults to 0."
// @Param			limit	query		int	false	"Maximum number of expenses to return. Defaults to 100."
// @Router			/api/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abort(c, httputil.ErrInvalidQuery)
		return
	}

	setFields := httputil.GetURLFields(c.Request.URL, filter)

	skip := service.DefaultSkip
	if slices.Contains(setFields, "Skip") {
		skip = filter.Skip
	}

	limit := service.DefaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	expenses, err := scope(c, co.DB, func(tx *gorm.DB) ([]models.Expense, error) {
		return service.ListExpenses(tx, skip, limit)
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpenses(expenses))
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	Expense
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/api/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return
	}

	expense, err := scope(c, co.DB, func(tx *gorm.DB) (models.Expense, error) {
		return service.GetExpense(tx, uri.ID.UUID)
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Update expense
// @Description	Replaces title, amount, category and description of an expense. The date is not changed.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	Expense
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/api/expenses/{id} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		abort(c, err)
		return
	}

	expense, err := scope(c, co.DB, func(tx *gorm.DB) (models.Expense, error) {
		return service.UpdateExpense(tx, uri.ID.UUID, data.model())
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpense(expense))
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	DeleteResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/api/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return
	}

	_, err = scope(c, co.DB, func(tx *gorm.DB) (struct{}, error) {
		return struct{}{}, service.DeleteExpense(tx, uri.ID.UUID)
	})
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Message: "Expense deleted successfully"})
}
