package todo

import "todo-assistant/internal/model"

// Sort fields accepted by GetAllTodos.
const (
	OrderByID        = "id"
	OrderByCreatedAt = "created_at"
	OrderByPriority  = "priority"
	OrderByText      = "text"

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// Search fields accepted by SearchTodos.
const (
	SearchFieldText     = "text"
	SearchFieldCategory = "category"
	SearchFieldAll      = "all"
)

// ListInput is the input for listing todos. Zero values mean "default".
type ListInput struct {
	OrderBy   string
	Direction string
	Limit     int
}

// CreateInput is the input for creating a todo.
type CreateInput struct {
	Text     string
	Priority model.Priority // defaults to medium
	Category string
}

// UpdateInput is the input for updating a todo. Nil fields are left untouched.
type UpdateInput struct {
	ID       int64
	Text     *string
	Priority *model.Priority
	Category *string
}

// SearchInput is the input for a substring search.
type SearchInput struct {
	Query string
	Field string // text (default), category or all
}
