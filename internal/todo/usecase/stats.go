package usecase

import (
	"context"

	"todo-assistant/internal/model"
	repo "todo-assistant/internal/todo/repository"
)

const uncategorized = "uncategorized"

// GetTodoStats aggregates totals, completion and per-priority/per-category counts.
func (uc *implUseCase) GetTodoStats(ctx context.Context) (model.TodoStats, error) {
	todos, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTodoStats ListTodos: %v", err)
		return model.TodoStats{}, err
	}

	stats := model.TodoStats{
		Total:      len(todos),
		Priorities: make(map[string]int),
		Categories: make(map[string]int),
	}
	for _, t := range todos {
		if t.Completed {
			stats.Completed++
		}
		stats.Priorities[string(t.Priority)]++
		cat := t.Category
		if cat == "" {
			cat = uncategorized
		}
		stats.Categories[cat]++
	}
	stats.Pending = stats.Total - stats.Completed
	return stats, nil
}
