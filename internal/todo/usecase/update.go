package usecase

import (
	"context"
	"strings"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	repo "todo-assistant/internal/todo/repository"
)

// UpdateTodo changes the given fields of a todo. Reports false when the id does not exist.
func (uc *implUseCase) UpdateTodo(ctx context.Context, input todo.UpdateInput) (bool, error) {
	if input.Text == nil && input.Priority == nil && input.Category == nil {
		return false, todo.ErrNothingToUpdate
	}

	opt := repo.UpdateTodoOptions{ID: input.ID, Category: input.Category}
	if input.Text != nil {
		text := strings.TrimSpace(*input.Text)
		if text == "" {
			return false, todo.ErrEmptyText
		}
		opt.Text = &text
	}
	if input.Priority != nil {
		prio := model.Priority(strings.ToLower(string(*input.Priority)))
		if !prio.IsValid() {
			return false, todo.ErrInvalidPriority
		}
		opt.Priority = &prio
	}

	if input.ID <= 0 {
		return false, nil
	}

	t, err := uc.repo.UpdateTodo(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateTodo UpdateTodo: %v", err)
		return false, err
	}
	return t.ID != 0, nil
}

// MarkTodoCompleted marks a todo as done. Reports false when the id does not exist.
func (uc *implUseCase) MarkTodoCompleted(ctx context.Context, id int64) (bool, error) {
	return uc.setCompleted(ctx, id, true)
}

// MarkTodoIncomplete reopens a todo. Reports false when the id does not exist.
func (uc *implUseCase) MarkTodoIncomplete(ctx context.Context, id int64) (bool, error) {
	return uc.setCompleted(ctx, id, false)
}

func (uc *implUseCase) setCompleted(ctx context.Context, id int64, done bool) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	t, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{ID: id, Completed: &done})
	if err != nil {
		uc.l.Errorf(ctx, "uc.setCompleted UpdateTodo: %v", err)
		return false, err
	}
	return t.ID != 0, nil
}
