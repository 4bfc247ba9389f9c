package errors

import "fmt"

// HTTPError is a domain error carrying the HTTP status it should map to.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

// NewHTTPErrorf creates an HTTPError with a formatted message.
func NewHTTPErrorf(code int, format string, args ...any) HTTPError {
	return HTTPError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode reports the HTTP status this error maps to.
// pkg/response uses it to pick the response status.
func (e HTTPError) StatusCode() int {
	return e.Code
}
