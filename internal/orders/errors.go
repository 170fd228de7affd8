package orders

import "errors"

// ErrDispatchFailed is returned when either of the two notification sends
// fails. Callers get a single collapsed outcome; which leg failed and why is
// logged, not surfaced.
var ErrDispatchFailed = errors.New("order notifications could not be sent")

// ValidationError describes the first field check a draft failed. Message is
// user-facing and shown verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
