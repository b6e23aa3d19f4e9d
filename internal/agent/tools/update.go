package tools

import (
	"context"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
)

// UpdateTodoTool edits a todo's fields.
type UpdateTodoTool struct {
	uc todo.UseCase
}

// NewUpdateTodoTool creates a new updateTodo tool.
func NewUpdateTodoTool(uc todo.UseCase) agent.Tool {
	return &UpdateTodoTool{uc: uc}
}

func (t *UpdateTodoTool) Name() string { return NameUpdateTodo }

func (t *UpdateTodoTool) Description() string {
	return "Update a todo's text, priority or category. Returns false if the id does not exist."
}

func (t *UpdateTodoTool) Parameters() []agent.Param {
	return []agent.Param{
		{Name: "id", Type: agent.Integer, Description: "Todo id"},
		{Name: "text", Type: agent.String, Optional: true, Description: "New text"},
		{Name: "priority", Type: agent.String, Optional: true, Description: "high, medium or low"},
		{Name: "category", Type: agent.String, Optional: true, Description: "New category"},
	}
}

func (t *UpdateTodoTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("id")
	input := todo.UpdateInput{ID: id}
	if text, ok := args.String("text"); ok {
		input.Text = &text
	}
	if prio, ok := args.String("priority"); ok {
		p := model.Priority(prio)
		input.Priority = &p
	}
	if cat, ok := args.String("category"); ok {
		input.Category = &cat
	}
	return t.uc.UpdateTodo(ctx, input)
}

// MarkTodoCompletedTool marks a todo done.
type MarkTodoCompletedTool struct {
	uc todo.UseCase
}

// NewMarkTodoCompletedTool creates a new markTodoCompleted tool.
func NewMarkTodoCompletedTool(uc todo.UseCase) agent.Tool {
	return &MarkTodoCompletedTool{uc: uc}
}

func (t *MarkTodoCompletedTool) Name() string { return NameMarkTodoCompleted }

func (t *MarkTodoCompletedTool) Description() string {
	return "Mark a todo as completed. Returns false if the id does not exist."
}

func (t *MarkTodoCompletedTool) Parameters() []agent.Param {
	return []agent.Param{{Name: "id", Type: agent.Integer, Description: "Todo id"}}
}

func (t *MarkTodoCompletedTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("id")
	return t.uc.MarkTodoCompleted(ctx, id)
}

// MarkTodoIncompleteTool reopens a todo.
type MarkTodoIncompleteTool struct {
	uc todo.UseCase
}

// NewMarkTodoIncompleteTool creates a new markTodoIncomplete tool.
func NewMarkTodoIncompleteTool(uc todo.UseCase) agent.Tool {
	return &MarkTodoIncompleteTool{uc: uc}
}

func (t *MarkTodoIncompleteTool) Name() string { return NameMarkTodoIncomplete }

func (t *MarkTodoIncompleteTool) Description() string {
	return "Mark a todo as not completed. Returns false if the id does not exist."
}

func (t *MarkTodoIncompleteTool) Parameters() []agent.Param {
	return []agent.Param{{Name: "id", Type: agent.Integer, Description: "Todo id"}}
}

func (t *MarkTodoIncompleteTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("id")
	return t.uc.MarkTodoIncomplete(ctx, id)
}
