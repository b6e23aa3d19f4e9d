package model

import "time"

// Priority is the urgency level of a todo.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities high → low (lower is more urgent).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Todo is a single task record.
type Todo struct {
	ID          int64      `json:"id"`
	Text        string     `json:"text"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TodoStats aggregates the todo list.
type TodoStats struct {
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Pending    int            `json:"pending"`
	Priorities map[string]int `json:"priorities"`
	Categories map[string]int `json:"categories"`
}
