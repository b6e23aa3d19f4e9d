package nlu_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/notation"
	"todo-assistant/internal/agent/tools"
	"todo-assistant/internal/model"
	"todo-assistant/internal/nlu"
	"todo-assistant/internal/todo/repository/memory"
	"todo-assistant/internal/todo/usecase"
	"todo-assistant/pkg/log"
)

func TestSynthesize(t *testing.T) {
	e := newEngine(t, nlu.Config{})
	ctx := context.Background()

	tests := []struct {
		input string
		want  string
	}{
		{"show me all my todos", `getAllTodos()`},
		{"add a todo to buy milk with high priority", `createTodo("buy milk", "high")`},
		{"delete todos 2, 3, 5", `deleteTodosByIds([2, 3, 5])`},
		{"complete todo 7", `markTodoCompleted(7)`},
		{"show high priority todos", `getTodosByPriority("high")`},
		{"show my work todos", `getTodosByCategory("work")`},
		{"delete todo 3", `deleteTodoById(3)`},
		{"mark todo 3 as not done", `markTodoIncomplete(3)`},
		{"update todo 5 with high priority", `updateTodo(5, priority="high")`},
		{"rename todo 2 to call dad", `updateTodo(2, "call dad", category="personal")`},
		{"find todos about milk", `searchTodos("milk")`},
		{"how many todos do i have", `getTodoStats()`},
		{"clear completed", `clearCompleted()`},
		{`add "write report" #work`, `createTodo("write report", category="work")`},
		{"I need to buy groceries later", `createTodo("buy groceries later", "low", "shopping")`},
		{"remind me to delete 3 emails", `createTodo("delete 3 emails")`},
		{"I need to finish 2 reports", `createTodo("finish 2 reports")`},
		{"don't forget to remove 4 stains", `createTodo("remove 4 stains")`},
		{"please remind me to complete 5 forms", `createTodo("complete 5 forms")`},
		{"add a todo to forward the invoice", `createTodo("forward the invoice")`},
		{"show my todos i forgot", `getAllTodos()`},
		{"list my typescript tasks", `getAllTodos()`},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := e.Synthesize(e.Analyze(ctx, tc.input))
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSynthesize_RegisteredNames(t *testing.T) {
	e := newEngine(t, nlu.Config{})
	l := log.NewNop()
	r := agent.NewToolRegistry()
	require.NoError(t, tools.Register(r, usecase.New(memory.New(l), l)))
	p := notation.New(r)

	inputs := []string{
		"show me all my todos", "show high priority todos", "show my work todos",
		"add a todo to buy milk", "delete todo 3", "delete todos 2, 3", "complete todo 7",
		"mark todo 3 as not done", "rename todo 2 to call dad", "find todos about milk",
		"how many todos do i have", "clear completed",
	}
	for _, input := range inputs {
		got, ok := e.Synthesize(e.Analyze(context.Background(), input))
		require.True(t, ok, input)
		calls := p.Parse(got)
		require.Len(t, calls, 1, "%s -> %s", input, got)
		assert.NotNil(t, calls[0].Tool, input)
	}
}

func TestSynthesize_NoCall(t *testing.T) {
	e := newEngine(t, nlu.Config{})
	for _, input := range []string{"zzz qqq", "delete something", "complete it", "update the list"} {
		_, ok := e.Synthesize(e.Analyze(context.Background(), input))
		assert.False(t, ok, input)
	}
}

func TestSynthesize_ThresholdBoundary(t *testing.T) {
	e := newEngine(t, nlu.Config{ConfidenceThreshold: 0.3})
	a := nlu.Analysis{Intent: nlu.IntentStats, Entities: nlu.Entities{Priority: model.PriorityMedium}}

	a.Confidence = 0.3
	got, ok := e.Synthesize(a)
	assert.True(t, ok, "exactly at the threshold synthesizes")
	assert.Equal(t, "getTodoStats()", got)

	a.Confidence = 0.2999
	_, ok = e.Synthesize(a)
	assert.False(t, ok, "below the threshold is suppressed")
}

func TestSynthesize_ThresholdFromScoring(t *testing.T) {
	// A zero-width matcher scores exactly one match weight.
	rules, err := nlu.LoadRules([]byte("intents:\n  - kind: stats\n    matchers: ['^']\n"))
	require.NoError(t, err)

	at, err := nlu.NewWithRules(log.NewNop(), nlu.Config{ConfidenceThreshold: 0.3}, rules)
	require.NoError(t, err)
	a := at.Analyze(context.Background(), "anything")
	assert.Equal(t, 0.3, a.Confidence)
	_, ok := at.Synthesize(a)
	assert.True(t, ok)

	above, err := nlu.NewWithRules(log.NewNop(), nlu.Config{ConfidenceThreshold: 0.31}, rules)
	require.NoError(t, err)
	_, ok = above.Synthesize(above.Analyze(context.Background(), "anything"))
	assert.False(t, ok)
}
