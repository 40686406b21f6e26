package models

import (
	"errors"
)

var (
	ErrGeneral               = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound      = errors.New("there is no")
	ErrBudgetPeriodNotUnique = errors.New("there already is a budget for this category, month and year")
)
