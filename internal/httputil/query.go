package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all fields of filter for which
// the query string of url contains the parameter in the "form" tag.
//
// This allows to tell an explicit zero value apart from an unset parameter.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		if param != "" && query.Has(param) {
			setFields = append(setFields, field)
		}
	}
	return setFields
}
