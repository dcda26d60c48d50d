package backend

import (
	"errors"

	"github.com/rotisserie/eris"
)

// Message reduces an error returned by a Client to the text shown to a user:
// the APIError message for HTTP failures, the root cause otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	if cause := eris.Cause(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}
