package tools

import (
	"todo-assistant/internal/agent"
	"todo-assistant/internal/todo"
)

// Register adds every todo tool to the registry, in help-listing order.
func Register(r *agent.ToolRegistry, uc todo.UseCase) error {
	for _, t := range []agent.Tool{
		NewGetAllTodosTool(uc),
		NewCreateTodoTool(uc),
		NewDeleteTodoByIDTool(uc),
		NewDeleteTodosByIDsTool(uc),
		NewSearchTodosTool(uc),
		NewUpdateTodoTool(uc),
		NewMarkTodoCompletedTool(uc),
		NewMarkTodoIncompleteTool(uc),
		NewGetTodosByPriorityTool(uc),
		NewGetTodosByCategoryTool(uc),
		NewGetTodoStatsTool(uc),
		NewClearCompletedTool(uc),
		NewGetTodoByIDTool(uc),
	} {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}
