package usecase

import (
	"todo-assistant/internal/todo"
	"todo-assistant/internal/todo/repository"
	"todo-assistant/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new todo UseCase implementation.
func New(repo repository.Repository, l log.Logger) todo.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
