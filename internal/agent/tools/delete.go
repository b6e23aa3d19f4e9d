package tools

import (
	"context"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/todo"
)

// DeleteTodoByIDTool removes one todo.
type DeleteTodoByIDTool struct {
	uc todo.UseCase
}

// NewDeleteTodoByIDTool creates a new deleteTodoById tool.
func NewDeleteTodoByIDTool(uc todo.UseCase) agent.Tool {
	return &DeleteTodoByIDTool{uc: uc}
}

func (t *DeleteTodoByIDTool) Name() string { return NameDeleteTodoByID }

func (t *DeleteTodoByIDTool) Description() string {
	return "Delete one todo. Returns false if the id does not exist."
}

func (t *DeleteTodoByIDTool) Parameters() []agent.Param {
	return []agent.Param{{Name: "id", Type: agent.Integer, Description: "Todo id"}}
}

func (t *DeleteTodoByIDTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("id")
	return t.uc.DeleteTodoByID(ctx, id)
}

// DeleteTodosByIDsTool removes several todos.
type DeleteTodosByIDsTool struct {
	uc todo.UseCase
}

// NewDeleteTodosByIDsTool creates a new deleteTodosByIds tool.
func NewDeleteTodosByIDsTool(uc todo.UseCase) agent.Tool {
	return &DeleteTodosByIDsTool{uc: uc}
}

func (t *DeleteTodosByIDsTool) Name() string { return NameDeleteTodosByIDs }

func (t *DeleteTodosByIDsTool) Description() string {
	return "Delete several todos and return how many existed."
}

func (t *DeleteTodosByIDsTool) Parameters() []agent.Param {
	return []agent.Param{{Name: "ids", Type: agent.IntegerList, Description: "Todo ids, e.g. [1, 2]"}}
}

func (t *DeleteTodosByIDsTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	ids, _ := args.IntList("ids")
	return t.uc.DeleteTodosByIDs(ctx, ids)
}

// ClearCompletedTool removes every completed todo.
type ClearCompletedTool struct {
	uc todo.UseCase
}

// NewClearCompletedTool creates a new clearCompleted tool.
func NewClearCompletedTool(uc todo.UseCase) agent.Tool {
	return &ClearCompletedTool{uc: uc}
}

func (t *ClearCompletedTool) Name() string { return NameClearCompleted }

func (t *ClearCompletedTool) Description() string {
	return "Delete all completed todos and return how many were removed."
}

func (t *ClearCompletedTool) Parameters() []agent.Param { return nil }

func (t *ClearCompletedTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	return t.uc.ClearCompleted(ctx)
}
