package nlu

import "errors"

var (
	ErrEmptyRules       = errors.New("rule table is empty")
	ErrUnknownIntent    = errors.New("unknown intent kind")
	ErrInvalidRule      = errors.New("invalid rule")
	ErrInvalidThreshold = errors.New("confidence threshold must be within [0, 1]")
)
