package orchestrator

import (
	"fmt"
	"sort"
	"strings"

	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/dispatcher"
	"todo-assistant/internal/agent/tools"
	"todo-assistant/internal/model"
)

// Present renders call results as plain text, one block per call.
func Present(results []dispatcher.CallResult) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, presentOne(r))
	}
	return strings.Join(blocks, "\n")
}

func presentOne(r dispatcher.CallResult) string {
	if !r.Success {
		return fmt.Sprintf("%s failed: %s", r.ToolName, r.Failure)
	}

	switch v := r.Value.(type) {
	case []model.Todo:
		return presentTodos(v)
	case *model.Todo:
		if v == nil {
			return notFound(r.Args)
		}
		return formatTodo(*v)
	case model.Todo:
		return formatTodo(v)
	case model.TodoStats:
		return presentStats(v)
	case int64:
		if r.ToolName == tools.NameCreateTodo {
			return fmt.Sprintf("Created todo #%d.", v)
		}
		return fmt.Sprint(v)
	case int:
		return presentCount(r.ToolName, v)
	case bool:
		if !v {
			return notFound(r.Args)
		}
		return presentOK(r.ToolName, r.Args)
	case nil:
		return "OK."
	default:
		return fmt.Sprint(v)
	}
}

func presentTodos(todos []model.Todo) string {
	if len(todos) == 0 {
		return "No todos found."
	}
	lines := make([]string, len(todos))
	for i, t := range todos {
		lines[i] = formatTodo(t)
	}
	return strings.Join(lines, "\n")
}

func formatTodo(t model.Todo) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	meta := string(t.Priority)
	if t.Category != "" {
		meta += ", " + t.Category
	}
	return fmt.Sprintf("#%d %s %s (%s)", t.ID, box, t.Text, meta)
}

func presentStats(s model.TodoStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %d, completed: %d, pending: %d", s.Total, s.Completed, s.Pending)

	var prios []string
	for _, p := range []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow} {
		if n := s.Priorities[string(p)]; n > 0 {
			prios = append(prios, fmt.Sprintf("%s %d", p, n))
		}
	}
	if len(prios) > 0 {
		b.WriteString("\nBy priority: " + strings.Join(prios, ", "))
	}

	if len(s.Categories) > 0 {
		names := make([]string, 0, len(s.Categories))
		for name := range s.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		cats := make([]string, len(names))
		for i, name := range names {
			cats[i] = fmt.Sprintf("%s %d", name, s.Categories[name])
		}
		b.WriteString("\nBy category: " + strings.Join(cats, ", "))
	}
	return b.String()
}

func presentCount(tool string, n int) string {
	switch tool {
	case tools.NameDeleteTodosByIDs:
		return fmt.Sprintf("Deleted %d %s.", n, plural(n, "todo"))
	case tools.NameClearCompleted:
		return fmt.Sprintf("Cleared %d completed %s.", n, plural(n, "todo"))
	default:
		return fmt.Sprint(n)
	}
}

func presentOK(tool string, args []agent.Argument) string {
	id := idLabel(args)
	switch tool {
	case tools.NameDeleteTodoByID:
		return fmt.Sprintf("Deleted todo%s.", id)
	case tools.NameUpdateTodo:
		return fmt.Sprintf("Updated todo%s.", id)
	case tools.NameMarkTodoCompleted:
		return fmt.Sprintf("Marked todo%s as completed.", id)
	case tools.NameMarkTodoIncomplete:
		return fmt.Sprintf("Marked todo%s as not completed.", id)
	default:
		return "OK."
	}
}

func notFound(args []agent.Argument) string {
	return fmt.Sprintf("Todo%s not found.", idLabel(args))
}

// idLabel returns " #<id>" for the call's id argument, or "".
func idLabel(args []agent.Argument) string {
	for i, a := range args {
		if a.Name == "id" || (a.Name == "" && i == 0) {
			switch v := a.Value.(type) {
			case int64:
				return fmt.Sprintf(" #%d", v)
			case float64:
				return fmt.Sprintf(" #%g", v)
			}
			return ""
		}
	}
	return ""
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
