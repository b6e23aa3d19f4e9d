package repository

import (
	"context"

	"todo-assistant/internal/model"
)

// Repository is the data access interface for todo records.
type Repository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (model.Todo, error)
	// GetOneTodo returns a zero-value Todo (ID == 0) when not found.
	GetOneTodo(ctx context.Context, id int64) (model.Todo, error)
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]model.Todo, error)
	// UpdateTodo returns a zero-value Todo (ID == 0) when not found.
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (model.Todo, error)
	DeleteTodos(ctx context.Context, ids []int64) (int, error)
	DeleteCompleted(ctx context.Context) (int, error)
}
