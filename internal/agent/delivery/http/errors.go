package http

import (
	"errors"

	"todo-assistant/internal/agent/orchestrator"
)

var errMessageRequired = errors.New("message is required")

// mapError translates orchestrator errors into client errors. It returns nil
// for errors that should surface as 500.
func mapError(err error) error {
	switch {
	case errors.Is(err, orchestrator.ErrEmptyMessage):
		return errMessageRequired
	default:
		return nil
	}
}
