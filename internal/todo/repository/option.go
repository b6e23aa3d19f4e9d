package repository

import "todo-assistant/internal/model"

// CreateTodoOptions holds the parameters for inserting a todo.
type CreateTodoOptions struct {
	Text     string
	Priority model.Priority
	Category string
}

// ListTodosOptions holds filter, order and limit parameters for listing todos.
// All non-empty filters are applied as AND conditions.
type ListTodosOptions struct {
	Priority model.Priority
	Category string // case-insensitive exact match
	Query    string // case-insensitive substring
	Field    string // field Query applies to: text, category or all
	OrderBy  string
	Desc     bool
	Limit    int // 0 = no limit
}

// UpdateTodoOptions holds parameters for updating a todo. Nil fields are left untouched.
type UpdateTodoOptions struct {
	ID        int64
	Text      *string
	Priority  *model.Priority
	Category  *string
	Completed *bool
}
