package httputils

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// HandleError writes err as an error envelope. Errors that are not an
// *HTTPError are reported as 500 without exposing their text.
func HandleError(w http.ResponseWriter, err error) error {
	code, message := http.StatusInternalServerError, "Internal server error"

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		code, message = httpErr.Code, httpErr.Message
	}

	return WriteJSON(w, code, Envelope{Status: StatusError, Error: message})
}
