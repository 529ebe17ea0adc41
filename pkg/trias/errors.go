package trias

import (
	"errors"
	"fmt"
)

var ErrMalformedDocument = errors.New("malformed TRIAS document")

// TransportError is returned when a request could not be sent or the endpoint did not
// answer with a success status. StatusCode is 0 when no response was received.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("TRIAS request failed with status %d: %s", e.StatusCode, e.Err)
	}

	return fmt.Sprintf("TRIAS request failed: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
