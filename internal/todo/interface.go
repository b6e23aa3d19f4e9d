package todo

import (
	"context"

	"todo-assistant/internal/model"
)

// UseCase is the record store contract. Each method mirrors one tool exposed to the assistant.
// Methods that target a single id report a missing record as false rather than an error.
type UseCase interface {
	GetAllTodos(ctx context.Context, input ListInput) ([]model.Todo, error)
	CreateTodo(ctx context.Context, input CreateInput) (int64, error)
	DeleteTodoByID(ctx context.Context, id int64) (bool, error)
	DeleteTodosByIDs(ctx context.Context, ids []int64) (int, error)
	SearchTodos(ctx context.Context, input SearchInput) ([]model.Todo, error)
	UpdateTodo(ctx context.Context, input UpdateInput) (bool, error)
	MarkTodoCompleted(ctx context.Context, id int64) (bool, error)
	MarkTodoIncomplete(ctx context.Context, id int64) (bool, error)
	GetTodosByPriority(ctx context.Context, priority model.Priority) ([]model.Todo, error)
	GetTodosByCategory(ctx context.Context, category string) ([]model.Todo, error)
	GetTodoStats(ctx context.Context) (model.TodoStats, error)
	ClearCompleted(ctx context.Context) (int, error)
	GetTodoByID(ctx context.Context, id int64) (model.Todo, bool, error)
}
