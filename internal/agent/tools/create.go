package tools

import (
	"context"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
)

// CreateTodoTool adds a todo.
type CreateTodoTool struct {
	uc todo.UseCase
}

// NewCreateTodoTool creates a new createTodo tool.
func NewCreateTodoTool(uc todo.UseCase) agent.Tool {
	return &CreateTodoTool{uc: uc}
}

func (t *CreateTodoTool) Name() string { return NameCreateTodo }

func (t *CreateTodoTool) Description() string {
	return "Create a todo and return its id. priority is high, medium (default) or low."
}

func (t *CreateTodoTool) Parameters() []agent.Param {
	return []agent.Param{
		{Name: "text", Type: agent.String, Description: "What needs doing"},
		{Name: "priority", Type: agent.String, Optional: true, Description: "high, medium or low"},
		{Name: "category", Type: agent.String, Optional: true, Description: "Free-form category"},
	}
}

func (t *CreateTodoTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	text, _ := args.String("text")
	prio, _ := args.String("priority")
	cat, _ := args.String("category")
	return t.uc.CreateTodo(ctx, todo.CreateInput{Text: text, Priority: model.Priority(prio), Category: cat})
}
