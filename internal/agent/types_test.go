package agent_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"todo-assistant/internal/agent"
)

type mockTool struct {
	name        string
	description string
	params      []agent.Param
}

func (m *mockTool) Name() string              { return m.name }
func (m *mockTool) Description() string       { return m.description }
func (m *mockTool) Parameters() []agent.Param { return m.params }
func (m *mockTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	return nil, nil
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()

	tool1 := &mockTool{name: "tool1", description: "desc1"}
	tool2 := &mockTool{name: "tool2", description: "desc2", params: []agent.Param{
		{Name: "id", Type: agent.Integer},
		{Name: "tags", Type: agent.IntegerList, Optional: true},
	}}

	if err := registry.Register(tool2); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := registry.Register(tool1); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("tool1")
		if !ok || got.Name() != "tool1" {
			t.Errorf("expected tool1 to be found")
		}
	})

	t.Run("Lookup is case-sensitive", func(t *testing.T) {
		if _, ok := registry.Get("Tool1"); ok {
			t.Errorf("expected 'Tool1' to not be found")
		}
	})

	t.Run("Duplicate name", func(t *testing.T) {
		err := registry.Register(&mockTool{name: "tool1"})
		if !errors.Is(err, agent.ErrDuplicateTool) {
			t.Errorf("expected ErrDuplicateTool, got %v", err)
		}
	})

	t.Run("Invalid tool", func(t *testing.T) {
		if err := registry.Register(nil); !errors.Is(err, agent.ErrInvalidTool) {
			t.Errorf("expected ErrInvalidTool for nil, got %v", err)
		}
		if err := registry.Register(&mockTool{}); !errors.Is(err, agent.ErrInvalidTool) {
			t.Errorf("expected ErrInvalidTool for empty name, got %v", err)
		}
	})

	t.Run("List keeps registration order", func(t *testing.T) {
		tools := registry.List()
		if len(tools) != 2 || tools[0].Name() != "tool2" || tools[1].Name() != "tool1" {
			t.Errorf("unexpected order: %v", tools)
		}
	})

	t.Run("Describe", func(t *testing.T) {
		got := registry.Describe()
		want := "tool2(id: integer, [tags: list[integer]]) - desc2\ntool1() - desc1\n"
		if got != want {
			t.Errorf("Describe() = %q, want %q", got, want)
		}
	})
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	registry := agent.NewToolRegistry()
	registry.MustRegister(&mockTool{name: "a"}, &mockTool{name: "a"})
}

func TestBindArguments(t *testing.T) {
	params := []agent.Param{
		{Name: "text", Type: agent.String},
		{Name: "priority", Type: agent.String, Optional: true},
		{Name: "category", Type: agent.String, Optional: true},
	}

	t.Run("Positional", func(t *testing.T) {
		args, err := agent.BindArguments(params, []agent.Argument{{Value: "buy milk"}, {Value: "high"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s, _ := args.String("text"); s != "buy milk" {
			t.Errorf("text = %q", s)
		}
		if s, _ := args.String("priority"); s != "high" {
			t.Errorf("priority = %q", s)
		}
		if args.Has("category") {
			t.Errorf("category must be absent")
		}
	})

	t.Run("Positional then named skips a slot", func(t *testing.T) {
		args, err := agent.BindArguments(params, []agent.Argument{{Value: "x"}, {Name: "category", Value: "work"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if args.Has("priority") {
			t.Errorf("priority must be absent")
		}
		if s, _ := args.String("category"); s != "work" {
			t.Errorf("category = %q", s)
		}
	})

	t.Run("Null optional is absent", func(t *testing.T) {
		args, err := agent.BindArguments(params, []agent.Argument{{Value: "x"}, {Value: nil}, {Value: "home"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if args.Has("priority") {
			t.Errorf("priority must be absent")
		}
	})

	errCases := []struct {
		name string
		args []agent.Argument
		want error
	}{
		{"too many", []agent.Argument{{Value: "a"}, {Value: "b"}, {Value: "c"}, {Value: "d"}}, agent.ErrTooManyArguments},
		{"unknown name", []agent.Argument{{Value: "a"}, {Name: "colour", Value: "red"}}, agent.ErrUnknownArgument},
		{"duplicate", []agent.Argument{{Value: "a"}, {Name: "text", Value: "b"}}, agent.ErrDuplicateArgument},
		{"missing", []agent.Argument{{Name: "priority", Value: "low"}}, agent.ErrMissingArgument},
		{"null required", []agent.Argument{{Value: nil}}, agent.ErrMissingArgument},
		{"wrong type", []agent.Argument{{Value: []any{int64(1)}}}, agent.ErrInvalidArgument},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := agent.BindArguments(params, tc.args)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBindArguments_Coercion(t *testing.T) {
	params := []agent.Param{
		{Name: "id", Type: agent.Integer},
		{Name: "ids", Type: agent.IntegerList, Optional: true},
		{Name: "flag", Type: agent.Boolean, Optional: true},
		{Name: "label", Type: agent.String, Optional: true},
	}

	args, err := agent.BindArguments(params, []agent.Argument{
		{Value: " 7 "},
		{Value: []any{int64(2), float64(3), "5"}},
		{Value: "TRUE"},
		{Value: float64(3.5)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, _ := args.Int("id"); id != 7 {
		t.Errorf("id = %d", id)
	}
	if ids, _ := args.IntList("ids"); len(ids) != 3 || ids[0] != 2 || ids[1] != 3 || ids[2] != 5 {
		t.Errorf("ids = %v", ids)
	}
	if flag, _ := args.Bool("flag"); !flag {
		t.Errorf("flag = false")
	}
	if label, _ := args.String("label"); label != "3.5" {
		t.Errorf("label = %q", label)
	}

	single, err := agent.BindArguments(params, []agent.Argument{{Value: int64(1)}, {Value: int64(4)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ids, _ := single.IntList("ids"); len(ids) != 1 || ids[0] != 4 {
		t.Errorf("single integer should become one-element list, got %v", ids)
	}

	for _, bad := range []any{float64(2.5), "seven", true} {
		_, err := agent.BindArguments(params, []agent.Argument{{Value: bad}})
		if !errors.Is(err, agent.ErrInvalidArgument) {
			t.Errorf("id=%v: expected ErrInvalidArgument, got %v", bad, err)
		}
	}
}

func TestBindArguments_IntegerRange(t *testing.T) {
	params := []agent.Param{{Name: "id", Type: agent.Integer}}

	for _, bad := range []float64{1e30, -1e30, math.Inf(1), 9223372036854775808} {
		_, err := agent.BindArguments(params, []agent.Argument{{Value: bad}})
		if !errors.Is(err, agent.ErrInvalidArgument) {
			t.Errorf("id=%v: expected ErrInvalidArgument, got %v", bad, err)
		}
	}

	args, err := agent.BindArguments(params, []agent.Argument{{Value: float64(math.MinInt64)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, _ := args.Int("id"); id != math.MinInt64 {
		t.Errorf("id = %d, want %d", id, int64(math.MinInt64))
	}

	list := []agent.Param{{Name: "ids", Type: agent.IntegerList}}
	_, err = agent.BindArguments(list, []agent.Argument{{Value: []any{float64(1), 1e30}}})
	if !errors.Is(err, agent.ErrInvalidArgument) {
		t.Errorf("out of range list element: expected ErrInvalidArgument, got %v", err)
	}
}

func TestFuncTool(t *testing.T) {
	tool := agent.NewFuncTool("echo", "Echo text", []agent.Param{{Name: "text", Type: agent.String}},
		func(ctx context.Context, args agent.Args) (any, error) {
			s, _ := args.String("text")
			return strings.ToUpper(s), nil
		})

	if got := agent.Signature(tool); got != "echo(text: string)" {
		t.Errorf("Signature() = %q", got)
	}
	out, err := tool.Execute(context.Background(), agent.Args{"text": "hi"})
	if err != nil || out != "HI" {
		t.Errorf("Execute() = %v, %v", out, err)
	}
}
