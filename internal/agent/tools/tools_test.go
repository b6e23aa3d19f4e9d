package tools_test

import (
	"context"
	"strings"
	"testing"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/dispatcher"
	"todo-assistant/internal/agent/notation"
	"todo-assistant/internal/agent/tools"
	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
	"todo-assistant/internal/todo/repository/memory"
	"todo-assistant/internal/todo/usecase"
	"todo-assistant/pkg/log"
)

type harness struct {
	uc       todo.UseCase
	registry *agent.ToolRegistry
	parser   *notation.Parser
	disp     *dispatcher.Dispatcher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	l := log.NewNop()
	uc := usecase.New(memory.New(l), l)
	r := agent.NewToolRegistry()
	if err := tools.Register(r, uc); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return &harness{uc: uc, registry: r, parser: notation.New(r), disp: dispatcher.New(l)}
}

func (h *harness) run(t *testing.T, text string) []dispatcher.CallResult {
	t.Helper()
	calls := h.parser.Parse(text)
	if len(calls) == 0 {
		t.Fatalf("no calls parsed from %q", text)
	}
	return h.disp.Dispatch(context.Background(), calls)
}

func (h *harness) one(t *testing.T, text string) dispatcher.CallResult {
	t.Helper()
	res := h.run(t, text)
	if len(res) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res))
	}
	return res[0]
}

func TestRegister(t *testing.T) {
	h := newHarness(t)

	names := []string{
		tools.NameGetAllTodos, tools.NameCreateTodo, tools.NameDeleteTodoByID, tools.NameDeleteTodosByIDs,
		tools.NameSearchTodos, tools.NameUpdateTodo, tools.NameMarkTodoCompleted, tools.NameMarkTodoIncomplete,
		tools.NameGetTodosByPriority, tools.NameGetTodosByCategory, tools.NameGetTodoStats,
		tools.NameClearCompleted, tools.NameGetTodoByID,
	}
	list := h.registry.List()
	if len(list) != len(names) {
		t.Fatalf("expected %d tools, got %d", len(names), len(list))
	}
	for i, name := range names {
		if list[i].Name() != name {
			t.Errorf("tool %d = %s, want %s", i, list[i].Name(), name)
		}
	}

	if err := tools.Register(h.registry, h.uc); err == nil {
		t.Errorf("expected duplicate registration to fail")
	}

	desc := h.registry.Describe()
	if !strings.Contains(desc, "createTodo(text: string, [priority: string], [category: string])") {
		t.Errorf("unexpected Describe output:\n%s", desc)
	}
	if !strings.Contains(desc, "deleteTodosByIds(ids: list[integer])") {
		t.Errorf("unexpected Describe output:\n%s", desc)
	}
}

func TestCreateAndList(t *testing.T) {
	h := newHarness(t)

	res := h.one(t, `createTodo("buy milk", "high")`)
	if !res.Success || res.Value != int64(1) {
		t.Fatalf("unexpected create result: %+v", res)
	}

	res = h.one(t, `createTodo("write report", category="work")`)
	if !res.Success || res.Value != int64(2) {
		t.Fatalf("unexpected create result: %+v", res)
	}

	res = h.one(t, `getAllTodos()`)
	todos, ok := res.Value.([]model.Todo)
	if !res.Success || !ok || len(todos) != 2 {
		t.Fatalf("unexpected list result: %+v", res)
	}
	if todos[1].Priority != model.PriorityMedium || todos[1].Category != "work" {
		t.Errorf("named category should leave priority at default, got %+v", todos[1])
	}

	res = h.one(t, `getAllTodos("priority", "desc", 1)`)
	todos, _ = res.Value.([]model.Todo)
	if len(todos) != 1 || todos[0].ID != 2 {
		t.Errorf("expected lowest priority first, got %+v", todos)
	}

	res = h.one(t, `getTodosByPriority("high")`)
	if todos, _ := res.Value.([]model.Todo); len(todos) != 1 || todos[0].Text != "buy milk" {
		t.Errorf("unexpected priority filter result: %+v", res)
	}

	res = h.one(t, `getTodosByCategory("WORK")`)
	if todos, _ := res.Value.([]model.Todo); len(todos) != 1 {
		t.Errorf("unexpected category filter result: %+v", res)
	}

	res = h.one(t, `searchTodos("MILK")`)
	if todos, _ := res.Value.([]model.Todo); len(todos) != 1 {
		t.Errorf("unexpected search result: %+v", res)
	}
}

func TestUpdateCompleteDelete(t *testing.T) {
	h := newHarness(t)
	h.run(t, `createTodo("a") createTodo("b") createTodo("c")`)

	res := h.one(t, `updateTodo(1, priority="low")`)
	if !res.Success || res.Value != true {
		t.Fatalf("unexpected update result: %+v", res)
	}

	results := h.run(t, `markTodoCompleted(1) markTodoCompleted(2) markTodoIncomplete(2) markTodoCompleted(99)`)
	for i, want := range []bool{true, true, true, false} {
		if !results[i].Success || results[i].Value != want {
			t.Errorf("result %d: %+v, want value %v", i, results[i], want)
		}
	}

	res = h.one(t, `getTodoStats()`)
	stats, ok := res.Value.(model.TodoStats)
	if !ok || stats.Total != 3 || stats.Completed != 1 || stats.Pending != 2 {
		t.Fatalf("unexpected stats: %+v", res)
	}

	res = h.one(t, `clearCompleted()`)
	if res.Value != 1 {
		t.Errorf("expected 1 cleared, got %+v", res)
	}

	res = h.one(t, `deleteTodosByIds([2, 3, 5])`)
	if res.Value != 2 {
		t.Errorf("expected 2 deleted, got %+v", res)
	}

	res = h.one(t, `deleteTodoById(2)`)
	if !res.Success || res.Value != false {
		t.Errorf("expected not-found false, got %+v", res)
	}

	res = h.one(t, `getTodoById(3)`)
	if td, ok := res.Value.(*model.Todo); !res.Success || !ok || td != nil {
		t.Errorf("expected absent todo, got %+v", res)
	}
}

func TestFailuresAreReported(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		call string
		want string
	}{
		{`createTodo("")`, todo.ErrEmptyText.Error()},
		{`createTodo("x", "extreme")`, todo.ErrInvalidPriority.Error()},
		{`getAllTodos("colour")`, todo.ErrInvalidOrderBy.Error()},
		{`searchTodos("x", "notes")`, todo.ErrInvalidField.Error()},
		{`updateTodo(1)`, todo.ErrNothingToUpdate.Error()},
		{`markTodoCompleted()`, agent.ErrMissingArgument.Error()},
	}
	for _, tc := range tests {
		t.Run(tc.call, func(t *testing.T) {
			res := h.one(t, tc.call)
			if res.Success || !strings.Contains(res.Failure, tc.want) {
				t.Errorf("expected failure containing %q, got %+v", tc.want, res)
			}
		})
	}
}
