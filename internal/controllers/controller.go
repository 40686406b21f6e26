// Package controllers contains the HTTP handlers for the API.
package controllers

import (
	"errors"
	"net/http"

	"github.com/budgettrack/backend/internal/models"
	"github.com/budgettrack/backend/internal/service"
	"github.com/budgettrack/backend/internal/uuid"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Controller carries the dependencies of all handlers.
type Controller struct {
	DB *gorm.DB
}

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// status maps an error to the HTTP status code for it.
func status(err error) int {
	switch {
	case errors.Is(err, service.ErrExpenseNotFound), errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrBudgetPeriodNotUnique):
		return http.StatusConflict
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// abort writes the error response for err.
func abort(c *gin.Context, err error) {
	c.JSON(status(err), httpError{
		Error: err.Error(),
	})
}

// scope runs fn in a database transaction bound to the request context.
//
// The transaction is committed when fn returns no error and rolled back
// otherwise. Errors that are not part of the API are logged and replaced
// with models.ErrGeneral.
func scope[T any](c *gin.Context, db *gorm.DB, fn func(tx *gorm.DB) (T, error)) (T, error) {
	var result T

	err := db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = fn(tx)
		return err
	})

	if err != nil && !known(err) {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return result, models.ErrGeneral
	}

	return result, err
}

func known(err error) bool {
	return errors.Is(err, service.ErrExpenseNotFound) ||
		errors.Is(err, models.ErrResourceNotFound) ||
		errors.Is(err, models.ErrBudgetPeriodNotUnique) ||
		errors.Is(err, models.ErrGeneral)
}
