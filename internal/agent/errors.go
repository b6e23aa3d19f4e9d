package agent

import "errors"

var (
	ErrInvalidTool   = errors.New("tool must be non-nil with a non-empty name")
	ErrDuplicateTool = errors.New("tool already registered")

	ErrTooManyArguments  = errors.New("too many arguments")
	ErrUnknownArgument   = errors.New("unknown argument")
	ErrDuplicateArgument = errors.New("argument bound more than once")
	ErrMissingArgument   = errors.New("missing required argument")
	ErrInvalidArgument   = errors.New("invalid argument type")
)
