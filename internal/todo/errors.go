package todo

import "errors"

var (
	ErrEmptyText       = errors.New("todo text is empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidOrderBy  = errors.New("invalid order by field")
	ErrInvalidDir      = errors.New("invalid sort direction")
	ErrInvalidLimit    = errors.New("limit must be positive")
	ErrEmptyQuery      = errors.New("search query is empty")
	ErrInvalidField    = errors.New("invalid search field")
	ErrEmptyCategory   = errors.New("category is empty")
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrInvalidID       = errors.New("todo id must be positive")
)
