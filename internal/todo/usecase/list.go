package usecase

import (
	"context"
	"strings"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	repo "todo-assistant/internal/todo/repository"
)

// GetAllTodos lists every todo with optional ordering and limit.
func (uc *implUseCase) GetAllTodos(ctx context.Context, input todo.ListInput) ([]model.Todo, error) {
	orderBy := input.OrderBy
	if orderBy == "" {
		orderBy = todo.OrderByID
	}
	switch orderBy {
	case todo.OrderByID, todo.OrderByCreatedAt, todo.OrderByPriority, todo.OrderByText:
	default:
		return nil, todo.ErrInvalidOrderBy
	}

	dir := strings.ToLower(input.Direction)
	if dir == "" {
		dir = todo.DirectionAsc
	}
	if dir != todo.DirectionAsc && dir != todo.DirectionDesc {
		return nil, todo.ErrInvalidDir
	}

	if input.Limit < 0 {
		return nil, todo.ErrInvalidLimit
	}

	todos, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{
		OrderBy: orderBy,
		Desc:    dir == todo.DirectionDesc,
		Limit:   input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetAllTodos ListTodos: %v", err)
		return nil, err
	}
	return todos, nil
}

// SearchTodos returns todos whose text (or category) contains the query, case-insensitively.
func (uc *implUseCase) SearchTodos(ctx context.Context, input todo.SearchInput) ([]model.Todo, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, todo.ErrEmptyQuery
	}

	field := strings.ToLower(input.Field)
	if field == "" {
		field = todo.SearchFieldText
	}
	switch field {
	case todo.SearchFieldText, todo.SearchFieldCategory, todo.SearchFieldAll:
	default:
		return nil, todo.ErrInvalidField
	}

	todos, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{Query: query, Field: field})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SearchTodos ListTodos: %v", err)
		return nil, err
	}
	return todos, nil
}

// GetTodosByPriority lists todos with the given priority.
func (uc *implUseCase) GetTodosByPriority(ctx context.Context, prio model.Priority) ([]model.Todo, error) {
	prio = model.Priority(strings.ToLower(string(prio)))
	if !prio.IsValid() {
		return nil, todo.ErrInvalidPriority
	}

	todos, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{Priority: prio})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTodosByPriority ListTodos: %v", err)
		return nil, err
	}
	return todos, nil
}

// GetTodosByCategory lists todos in the given category (case-insensitive).
func (uc *implUseCase) GetTodosByCategory(ctx context.Context, category string) ([]model.Todo, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, todo.ErrEmptyCategory
	}

	todos, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{Category: category})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTodosByCategory ListTodos: %v", err)
		return nil, err
	}
	return todos, nil
}

// GetTodoByID returns the todo and whether it exists.
func (uc *implUseCase) GetTodoByID(ctx context.Context, id int64) (model.Todo, bool, error) {
	if id <= 0 {
		return model.Todo{}, false, nil
	}

	t, err := uc.repo.GetOneTodo(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTodoByID GetOneTodo: %v", err)
		return model.Todo{}, false, err
	}
	return t, t.ID != 0, nil
}
