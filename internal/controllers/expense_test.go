package controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/budgettrack/backend/internal/controllers"
	"github.com/budgettrack/backend/internal/httputil"
	"github.com/budgettrack/backend/internal/models"
	"github.com/budgettrack/backend/internal/uuid"
	"github.com/budgettrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestExpense(t *testing.T, body map[string]any) controllers.Expense {
	r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/api/expenses", body)
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var e controllers.Expense
	test.DecodeResponse(t, &r, &e)

	return e
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	e := suite.createTestExpense(suite.T(), map[string]any{
		"title":       "Groceries",
		"amount":      52.3,
		"category":    "Food",
		"description": "Weekly shopping",
	})

	suite.Assert().Equal("Groceries", e.Title)
	suite.Assert().Equal("Food", e.Category)
	suite.Require().NotNil(e.Description)
	suite.Assert().Equal("Weekly shopping", *e.Description)
	suite.Assert().True(decimal.NewFromFloat(52.3).Equal(e.Amount), "Amount is %s", e.Amount)
	suite.Assert().LessOrEqual(time.Since(e.Date), time.Minute, "Date was not set to the time of creation")
}

func (suite *TestSuiteStandard) TestCreateExpenseWithDate() {
	e := suite.createTestExpense(suite.T(), map[string]any{
		"title":    "Leap day",
		"amount":   -12,
		"category": "Fun",
		"date":     "2024-02-29T08:00:00+02:00",
	})

	suite.Assert().True(time.Date(2024, 2, 29, 6, 0, 0, 0, time.UTC).Equal(e.Date), "Date is %s", e.Date)
	suite.Assert().Equal(time.UTC, e.Date.Location())
	suite.Assert().True(decimal.NewFromInt(-12).Equal(e.Amount))
	suite.Assert().Nil(e.Description)
}

func (suite *TestSuiteStandard) TestCreateExpenseEmptyStrings() {
	e := suite.createTestExpense(suite.T(), map[string]any{
		"title":    "",
		"amount":   3,
		"category": "",
	})

	suite.Assert().Equal("", e.Title)
	suite.Assert().Equal("", e.Category)

	r := test.Request(suite.controller, suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/expenses/%s", e.ID), map[string]any{
		"title":    "",
		"amount":   4,
		"category": "",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Empty body", nil, httputil.ErrRequestBodyEmpty.Error()},
		{"Broken JSON", `{ "title": "Missing end"`, httputil.ErrInvalidBody.Error()},
		{"Missing fields", `{}`, "title is required, amount is required, category is required"},
		{"Missing amount", `{ "title": "Bus", "category": "Transport" }`, "amount is required"},
		{"Wrong type", `{ "title": 5, "amount": 5, "category": "Transport" }`, "must be of type string"},
		{"Invalid amount", `{ "title": "Bus", "amount": "five", "category": "Transport" }`, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodPost, "http://example.com/api/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.message != "" {
				assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.message)
			}
		})
	}

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/api/expenses", nil)
	var expenses []controllers.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)
	suite.Assert().Len(expenses, 0, "Invalid expenses have been stored")
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/api/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`[]`, r.Body.String())

	for i := 1; i <= 4; i++ {
		_ = suite.createTestExpense(suite.T(), map[string]any{
			"title":    fmt.Sprintf("Expense %d", i),
			"amount":   i,
			"category": "Misc",
		})
	}

	tests := []struct {
		query string
		len   int
	}{
		{"", 4},
		{"?limit=2", 2},
		{"?skip=3", 1},
		{"?skip=1&limit=2", 2},
		{"?skip=10", 0},
		{"?limit=0", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/api/expenses"+tt.query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var expenses []controllers.Expense
			test.DecodeResponse(t, &r, &expenses)
			assert.Len(t, expenses, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidQuery() {
	for _, query := range []string{"?skip=abc", "?limit=1.5"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(suite.controller, t, http.MethodGet, "http://example.com/api/expenses"+query, nil)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, httputil.ErrInvalidQuery.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpense() {
	e := suite.createTestExpense(suite.T(), map[string]any{"title": "Cinema", "amount": 11.5, "category": "Fun"})

	r := test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/expenses/%s", e.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fetched controllers.Expense
	test.DecodeResponse(suite.T(), &r, &fetched)
	suite.Assert().Equal(e.ID, fetched.ID)
	suite.Assert().Equal("Cinema", fetched.Title)
	suite.Assert().True(e.Date.Equal(fetched.Date))
}

func (suite *TestSuiteStandard) TestExpenseNotFound() {
	url := "http://example.com/api/expenses/39633f90-3d9f-4b1e-ac24-c341c432a6e3"
	body := map[string]any{"title": "Cinema", "amount": 11.5, "category": "Fun"}

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(suite.controller, t, method, url, body)
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
			assert.Equal(t, "expense not found", test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseInvalidIDs() {
	for _, id := range []string{"-56", "notANumber", "23"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions} {
			suite.T().Run(fmt.Sprintf("%s %s", method, id), func(t *testing.T) {
				r := test.Request(suite.controller, t, method, "http://example.com/api/expenses/"+id, nil)
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
				assert.Equal(t, uuid.ErrInvalidUUID.Error(), test.DecodeError(t, r.Body.Bytes()))
			})
		}
	}
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	e := suite.createTestExpense(suite.T(), map[string]any{
		"title":       "Cinema",
		"amount":      11.5,
		"category":    "Fun",
		"description": "Popcorn included",
		"date":        "2024-05-01T20:00:00Z",
	})

	r := test.Request(suite.controller, suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/expenses/%s", e.ID), map[string]any{
		"title":    "Theatre",
		"amount":   35,
		"category": "Culture",
		"date":     "2020-01-01T00:00:00Z",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.Expense
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(e.ID, updated.ID)
	suite.Assert().Equal("Theatre", updated.Title)
	suite.Assert().Equal("Culture", updated.Category)
	suite.Assert().Nil(updated.Description, "Description must be cleared when not sent")
	suite.Assert().True(decimal.NewFromInt(35).Equal(updated.Amount))
	suite.Assert().True(e.Date.Equal(updated.Date), "Date must not change on update, is %s", updated.Date)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/expenses/%s", e.ID), nil)
	var fetched controllers.Expense
	test.DecodeResponse(suite.T(), &r, &fetched)
	suite.Assert().Equal(updated, fetched)
}

func (suite *TestSuiteStandard) TestUpdateExpenseInvalid() {
	e := suite.createTestExpense(suite.T(), map[string]any{"title": "Cinema", "amount": 11.5, "category": "Fun"})
	url := fmt.Sprintf("http://example.com/api/expenses/%s", e.ID)

	r := test.Request(suite.controller, suite.T(), http.MethodPut, url, `{ "title": "Theatre" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("amount is required, category is required", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.controller, suite.T(), http.MethodPut, url, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(httputil.ErrRequestBodyEmpty.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	e := suite.createTestExpense(suite.T(), map[string]any{"title": "Cinema", "amount": 11.5, "category": "Fun"})
	url := fmt.Sprintf("http://example.com/api/expenses/%s", e.ID)

	r := test.Request(suite.controller, suite.T(), http.MethodDelete, url, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.DeleteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Expense deleted successfully", response.Message)

	r = test.Request(suite.controller, suite.T(), http.MethodGet, url, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOptionsExpenses() {
	r := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com/api/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	e := suite.createTestExpense(suite.T(), map[string]any{"title": "Cinema", "amount": 11.5, "category": "Fun"})
	r = test.Request(suite.controller, suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/api/expenses/%s", e.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExpensesDatabaseClosed() {
	e := suite.createTestExpense(suite.T(), map[string]any{"title": "Cinema", "amount": 11.5, "category": "Fun"})
	suite.CloseDB()

	tests := []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodGet, "http://example.com/api/expenses", nil},
		{http.MethodPost, "http://example.com/api/expenses", map[string]any{"title": "Bus", "amount": 2, "category": "Transport"}},
		{http.MethodGet, fmt.Sprintf("http://example.com/api/expenses/%s", e.ID), nil},
		{http.MethodPut, fmt.Sprintf("http://example.com/api/expenses/%s", e.ID), map[string]any{"title": "Bus", "amount": 2, "category": "Transport"}},
		{http.MethodDelete, fmt.Sprintf("http://example.com/api/expenses/%s", e.ID), nil},
	}

	for _, tt := range tests {
		suite.T().Run(strings.Join([]string{tt.method, tt.url}, " "), func(t *testing.T) {
			r := test.Request(suite.controller, t, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Equal(t, models.ErrGeneral.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}
}
