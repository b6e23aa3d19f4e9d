package memory

import (
	"sync"
	"time"

	"todo-assistant/internal/model"
	"todo-assistant/internal/todo/repository"
	"todo-assistant/pkg/log"
)

type implRepository struct {
	mu     sync.RWMutex
	todos  map[int64]model.Todo
	nextID int64
	now    func() time.Time
	l      log.Logger
}

// New creates an in-memory Repository. IDs start at 1 and are never reused.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		todos:  make(map[int64]model.Todo),
		nextID: 1,
		now:    time.Now,
		l:      l,
	}
}
