package tools

// Tool names. They are part of the call notation contract.
const (
	NameGetAllTodos        = "getAllTodos"
	NameCreateTodo         = "createTodo"
	NameDeleteTodoByID     = "deleteTodoById"
	NameDeleteTodosByIDs   = "deleteTodosByIds"
	NameSearchTodos        = "searchTodos"
	NameUpdateTodo         = "updateTodo"
	NameMarkTodoCompleted  = "markTodoCompleted"
	NameMarkTodoIncomplete = "markTodoIncomplete"
	NameGetTodosByPriority = "getTodosByPriority"
	NameGetTodosByCategory = "getTodosByCategory"
	NameGetTodoStats       = "getTodoStats"
	NameClearCompleted     = "clearCompleted"
	NameGetTodoByID        = "getTodoById"
)
