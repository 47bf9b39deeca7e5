// SPDX-License-Identifier: MIT

package openapi_server

import (
	"errors"
	"fmt"
	"net/http"
)


// ParsingError indicates that an error has occurred when parsing request parameters
type ParsingError struct {
	Err error
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

func (e *ParsingError) Error() string {
	return e.Err.Error()
}

// RequiredError indicates that an error has occurred when parsing request parameters
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("required field '%s' is zero value.", e.Field)
}

// ErrorHandler defines the required method for handling error. You may implement it and inject this into a controller if
// you would like errors to be handled differently from the DefaultErrorHandler
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error, result *ImplResponse)

// DefaultErrorHandler defines the default logic on how to handle errors from the controller. Any errors from parsing
// request params will return a StatusBadRequest. Otherwise, the error code originating from the servicer will be used.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error, result *ImplResponse) {
	var parsingErr *ParsingError
	var requiredErr *RequiredError
	if errors.As(err, &parsingErr) || errors.As(err, &requiredErr) {
		// Handle parsing errors
		EncodeJSONResponse(ErrorResult{Error: err.Error()}, func(i int) *int { return &i }(http.StatusBadRequest), w)
		return
	}

	code := http.StatusInternalServerError
	if result != nil && result.Code != 0 {
		code = result.Code
	}
	// Handle all other errors
	EncodeJSONResponse(ErrorResult{Error: err.Error()}, &code, w)
}
