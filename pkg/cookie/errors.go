package cookie

import "errors"

var (
	ErrCookieNotFound = errors.New("cookie.not_found")
	ErrInvalidJSON    = errors.New("cookie.invalid_json")
)
