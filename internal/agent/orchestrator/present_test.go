package orchestrator

import (
	"testing"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/dispatcher"
	"todo-assistant/internal/model"
)

func TestPresent(t *testing.T) {
	pos := func(v any) []agent.Argument { return []agent.Argument{{Value: v}} }

	tests := []struct {
		name string
		in   dispatcher.CallResult
		want string
	}{
		{
			name: "failure",
			in:   dispatcher.CallResult{ToolName: "updateTodo", Failure: "nothing to update"},
			want: "updateTodo failed: nothing to update",
		},
		{
			name: "completed todo",
			in: dispatcher.CallResult{ToolName: "getAllTodos", Success: true, Value: []model.Todo{
				{ID: 4, Text: "gym", Priority: model.PriorityLow, Category: "health", Completed: true},
			}},
			want: "#4 [x] gym (low, health)",
		},
		{
			name: "bulk delete",
			in:   dispatcher.CallResult{ToolName: "deleteTodosByIds", Success: true, Value: 1},
			want: "Deleted 1 todo.",
		},
		{
			name: "clear completed",
			in:   dispatcher.CallResult{ToolName: "clearCompleted", Success: true, Value: 3},
			want: "Cleared 3 completed todos.",
		},
		{
			name: "named id",
			in: dispatcher.CallResult{ToolName: "markTodoIncomplete", Success: true, Value: true,
				Args: []agent.Argument{{Name: "id", Value: int64(8)}}},
			want: "Marked todo #8 as not completed.",
		},
		{
			name: "not found",
			in:   dispatcher.CallResult{ToolName: "updateTodo", Success: true, Value: false, Args: pos(int64(2))},
			want: "Todo #2 not found.",
		},
		{
			name: "stats",
			in: dispatcher.CallResult{ToolName: "getTodoStats", Success: true, Value: model.TodoStats{
				Total: 3, Completed: 1, Pending: 2,
				Priorities: map[string]int{"high": 2, "low": 1},
				Categories: map[string]int{"work": 2, "home": 1},
			}},
			want: "Total: 3, completed: 1, pending: 2\nBy priority: high 2, low 1\nBy category: home 1, work 2",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Present([]dispatcher.CallResult{tc.in}); got != tc.want {
				t.Errorf("Present() = %q, want %q", got, tc.want)
			}
		})
	}
}
