package tools

import (
	"context"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/model"
	"todo-assistant/internal/todo"
)

// GetAllTodosTool lists every todo.
type GetAllTodosTool struct {
	uc todo.UseCase
}

// NewGetAllTodosTool creates a new getAllTodos tool.
func NewGetAllTodosTool(uc todo.UseCase) agent.Tool {
	return &GetAllTodosTool{uc: uc}
}

func (t *GetAllTodosTool) Name() string { return NameGetAllTodos }

func (t *GetAllTodosTool) Description() string {
	return "List all todos. order_by is one of id, created_at, priority, text; direction is asc or desc."
}

func (t *GetAllTodosTool) Parameters() []agent.Param {
	return []agent.Param{
		{Name: "order_by", Type: agent.String, Optional: true, Description: "Sort field (default id)"},
		{Name: "direction", Type: agent.String, Optional: true, Description: "asc or desc (default asc)"},
		{Name: "limit", Type: agent.Integer, Optional: true, Description: "Maximum number of todos"},
	}
}

func (t *GetAllTodosTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	orderBy, _ := args.String("order_by")
	dir, _ := args.String("direction")
	limit, _ := args.Int("limit")
	return t.uc.GetAllTodos(ctx, todo.ListInput{OrderBy: orderBy, Direction: dir, Limit: int(limit)})
}

// SearchTodosTool finds todos by substring.
type SearchTodosTool struct {
	uc todo.UseCase
}

// NewSearchTodosTool creates a new searchTodos tool.
func NewSearchTodosTool(uc todo.UseCase) agent.Tool {
	return &SearchTodosTool{uc: uc}
}

func (t *SearchTodosTool) Name() string { return NameSearchTodos }

func (t *SearchTodosTool) Description() string {
	return "Search todos whose text contains the query (case-insensitive). field is text, category or all."
}

func (t *SearchTodosTool) Parameters() []agent.Param {
	return []agent.Param{
		{Name: "text", Type: agent.String, Description: "Text to look for"},
		{Name: "field", Type: agent.String, Optional: true, Description: "text (default), category or all"},
	}
}

func (t *SearchTodosTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	query, _ := args.String("text")
	field, _ := args.String("field")
	return t.uc.SearchTodos(ctx, todo.SearchInput{Query: query, Field: field})
}

// GetTodosByPriorityTool lists todos of one priority.
type GetTodosByPriorityTool struct {
	uc todo.UseCase
}

// NewGetTodosByPriorityTool creates a new getTodosByPriority tool.
func NewGetTodosByPriorityTool(uc todo.UseCase) agent.Tool {
	return &GetTodosByPriorityTool{uc: uc}
}

func (t *GetTodosByPriorityTool) Name() string { return NameGetTodosByPriority }

func (t *GetTodosByPriorityTool) Description() string {
	return "List todos with the given priority (high, medium or low)."
}

func (t *GetTodosByPriorityTool) Parameters() []agent.Param {
	return []agent.Param{{Name: "priority", Type: agent.String, Description: "high, medium or low"}}
}

func (t *GetTodosByPriorityTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	prio, _ := args.String("priority")
	return t.uc.GetTodosByPriority(ctx, model.Priority(prio))
}

// GetTodosByCategoryTool lists todos in one category.
type GetTodosByCategoryTool struct {
	uc todo.UseCase
}

// NewGetTodosByCategoryTool creates a new getTodosByCategory tool.
func NewGetTodosByCategoryTool(uc todo.UseCase) agent.Tool {
	return &GetTodosByCategoryTool{uc: uc}
}

func (t *GetTodosByCategoryTool) Name() string { return NameGetTodosByCategory }

func (t *GetTodosByCategoryTool) Description() string {
	return "List todos in the given category (case-insensitive)."
}

func (t *GetTodosByCategoryTool) Parameters() []agent.Param {
	return []agent.Param{{Name: "category", Type: agent.String, Description: "Category name"}}
}

func (t *GetTodosByCategoryTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	cat, _ := args.String("category")
	return t.uc.GetTodosByCategory(ctx, cat)
}

// GetTodoByIDTool fetches one todo.
type GetTodoByIDTool struct {
	uc todo.UseCase
}

// NewGetTodoByIDTool creates a new getTodoById tool.
func NewGetTodoByIDTool(uc todo.UseCase) agent.Tool {
	return &GetTodoByIDTool{uc: uc}
}

func (t *GetTodoByIDTool) Name() string { return NameGetTodoByID }

func (t *GetTodoByIDTool) Description() string {
	return "Get one todo by id. Returns null when it does not exist."
}

func (t *GetTodoByIDTool) Parameters() []agent.Param {
	return []agent.Param{{Name: "id", Type: agent.Integer, Description: "Todo id"}}
}

// Execute returns *model.Todo, or nil when absent.
func (t *GetTodoByIDTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	id, _ := args.Int("id")
	td, ok, err := t.uc.GetTodoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return (*model.Todo)(nil), nil
	}
	return &td, nil
}

// GetTodoStatsTool aggregates the list.
type GetTodoStatsTool struct {
	uc todo.UseCase
}

// NewGetTodoStatsTool creates a new getTodoStats tool.
func NewGetTodoStatsTool(uc todo.UseCase) agent.Tool {
	return &GetTodoStatsTool{uc: uc}
}

func (t *GetTodoStatsTool) Name() string { return NameGetTodoStats }

func (t *GetTodoStatsTool) Description() string {
	return "Summarize todos: total, completed, pending, counts per priority and per category."
}

func (t *GetTodoStatsTool) Parameters() []agent.Param { return nil }

func (t *GetTodoStatsTool) Execute(ctx context.Context, args agent.Args) (any, error) {
	return t.uc.GetTodoStats(ctx)
}
