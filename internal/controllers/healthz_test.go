package controllers_test

import (
	"net/http"

	"github.com/budgettrack/backend/internal/models"
	"github.com/budgettrack/backend/test"
)

func (suite *TestSuiteStandard) TestHealthz() {
	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestHealthzDatabaseClosed() {
	suite.CloseDB()

	r := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}
