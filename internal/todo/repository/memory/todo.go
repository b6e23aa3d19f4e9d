package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo/repository"
)

func (r *implRepository) CreateTodo(ctx context.Context, opt repository.CreateTodoOptions) (model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return model.Todo{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	t := model.Todo{
		ID:        r.nextID,
		Text:      opt.Text,
		Priority:  opt.Priority,
		Category:  opt.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.todos[t.ID] = t
	r.nextID++

	r.l.Debugf(ctx, "todo/repository/memory.CreateTodo: id=%d", t.ID)
	return t, nil
}

func (r *implRepository) GetOneTodo(ctx context.Context, id int64) (model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.todos[id], nil
}

func (r *implRepository) ListTodos(ctx context.Context, opt repository.ListTodosOptions) ([]model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	r.mu.RLock()
	out := make([]model.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		if matches(t, opt) {
			out = append(out, t)
		}
	}
	r.mu.RUnlock()

	sortTodos(out, opt.OrderBy, opt.Desc)
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (r *implRepository) UpdateTodo(ctx context.Context, opt repository.UpdateTodoOptions) (model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return model.Todo{}, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.todos[opt.ID]
	if !ok {
		return model.Todo{}, nil
	}

	now := r.now()
	if opt.Text != nil {
		t.Text = *opt.Text
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Category != nil {
		t.Category = *opt.Category
	}
	if opt.Completed != nil && *opt.Completed != t.Completed {
		t.Completed = *opt.Completed
		if t.Completed {
			t.CompletedAt = &now
		} else {
			t.CompletedAt = nil
		}
	}
	t.UpdatedAt = now
	r.todos[t.ID] = t
	return t, nil
}

func (r *implRepository) DeleteTodos(ctx context.Context, ids []int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, id := range ids {
		if _, ok := r.todos[id]; ok {
			delete(r.todos, id)
			n++
		}
	}
	return n, nil
}

func (r *implRepository) DeleteCompleted(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, t := range r.todos {
		if t.Completed {
			delete(r.todos, id)
			n++
		}
	}
	return n, nil
}

func matches(t model.Todo, opt repository.ListTodosOptions) bool {
	if opt.Priority != "" && t.Priority != opt.Priority {
		return false
	}
	if opt.Category != "" && !strings.EqualFold(t.Category, opt.Category) {
		return false
	}
	if opt.Query == "" {
		return true
	}
	q := strings.ToLower(opt.Query)
	text := strings.Contains(strings.ToLower(t.Text), q)
	cat := strings.Contains(strings.ToLower(t.Category), q)
	switch opt.Field {
	case "category":
		return cat
	case "all":
		return text || cat
	default:
		return text
	}
}

func sortTodos(todos []model.Todo, orderBy string, desc bool) {
	less := func(a, b model.Todo) bool { return a.ID < b.ID }
	switch orderBy {
	case "created_at":
		less = func(a, b model.Todo) bool {
			if a.CreatedAt.Equal(b.CreatedAt) {
				return a.ID < b.ID
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
	case "priority":
		less = func(a, b model.Todo) bool {
			if a.Priority.Rank() == b.Priority.Rank() {
				return a.ID < b.ID
			}
			return a.Priority.Rank() < b.Priority.Rank()
		}
	case "text":
		less = func(a, b model.Todo) bool {
			at, bt := strings.ToLower(a.Text), strings.ToLower(b.Text)
			if at == bt {
				return a.ID < b.ID
			}
			return at < bt
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		if desc {
			return less(todos[j], todos[i])
		}
		return less(todos[i], todos[j])
	})
}
