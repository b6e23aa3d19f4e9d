package usecase

import (
	"context"
)

// DeleteTodoByID removes one todo. Reports false when the id does not exist.
func (uc *implUseCase) DeleteTodoByID(ctx context.Context, id int64) (bool, error) {
	n, err := uc.DeleteTodosByIDs(ctx, []int64{id})
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// DeleteTodosByIDs removes the listed todos and returns how many existed.
func (uc *implUseCase) DeleteTodosByIDs(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := uc.repo.DeleteTodos(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTodosByIDs DeleteTodos: %v", err)
		return 0, err
	}

	uc.l.Infof(ctx, "uc.DeleteTodosByIDs: requested=%d deleted=%d", len(ids), n)
	return n, nil
}

// ClearCompleted removes every completed todo and returns the count.
func (uc *implUseCase) ClearCompleted(ctx context.Context) (int, error) {
	n, err := uc.repo.DeleteCompleted(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ClearCompleted DeleteCompleted: %v", err)
		return 0, err
	}
	return n, nil
}
