package usecase

import (
	"context"
	"strings"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	repo "todo-assistant/internal/todo/repository"
)

// CreateTodo validates the input and stores a new todo, returning its id.
func (uc *implUseCase) CreateTodo(ctx context.Context, input todo.CreateInput) (int64, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return 0, todo.ErrEmptyText
	}

	prio := input.Priority
	if prio == "" {
		prio = model.PriorityMedium
	}
	if !prio.IsValid() {
		return 0, todo.ErrInvalidPriority
	}

	t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		Text:     text,
		Priority: prio,
		Category: strings.TrimSpace(input.Category),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTodo CreateTodo: %v", err)
		return 0, err
	}

	uc.l.Infof(ctx, "uc.CreateTodo: created todo id=%d priority=%s", t.ID, t.Priority)
	return t.ID, nil
}
