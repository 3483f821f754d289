package httperr

import (
	"errors"
	"net/http"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ======================================================
// Taxonomy
// ======================================================

var (
	ErrValidation         = BusinessError{Code: "invalid_request"}
	ErrDuplicateEmail     = BusinessError{Code: "email_already_exists"}
	ErrInvalidCredentials = BusinessError{Code: "invalid_credentials"}
	ErrUnauthenticated    = BusinessError{Code: "unauthenticated"}
	ErrForbidden          = BusinessError{Code: "forbidden"}
	ErrNotFound           = BusinessError{Code: "not_found"}
	ErrUserNotFound       = BusinessError{Code: "user_not_found"}
	ErrParlourNotFound    = BusinessError{Code: "parlour_not_found"}
)

type descriptor struct {
	status  int
	message string
}

var catalog = map[string]descriptor{
	ErrValidation.Code:         {http.StatusBadRequest, "Invalid request"},
	ErrDuplicateEmail.Code:     {http.StatusBadRequest, "Email already exists"},
	ErrInvalidCredentials.Code: {http.StatusUnauthorized, "Invalid credentials"},
	ErrUnauthenticated.Code:    {http.StatusUnauthorized, "Missing or invalid token"},
	ErrForbidden.Code:          {http.StatusForbidden, "Admin access required"},
	ErrNotFound.Code:           {http.StatusNotFound, "Not found"},
	ErrUserNotFound.Code:       {http.StatusNotFound, "User not found"},
	ErrParlourNotFound.Code:    {http.StatusNotFound, "Parlour not found"},
}

// Status returns the HTTP status and message for a business code.
// Unknown codes are treated as bad requests.
func Status(code string) (int, string) {
	if d, ok := catalog[code]; ok {
		return d.status, d.message
	}
	return http.StatusBadRequest, code
}
