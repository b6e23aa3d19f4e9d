package nlu

import (
	"todo-assistant/internal/agent"
	"todo-assistant/internal/agent/notation"
	"todo-assistant/internal/agent/tools"
	"todo-assistant/internal/model"
)

// Synthesize turns an analysis into call notation. It reports false when the intent
// has no direct call, a required entity is missing, or confidence is below the
// threshold. Confidence exactly at the threshold synthesizes.
func (e *Engine) Synthesize(a Analysis) (string, bool) {
	if a.Intent == IntentNone {
		synthesisTotal.WithLabelValues("no_call").Inc()
		return "", false
	}
	if a.Confidence < e.threshold {
		synthesisTotal.WithLabelValues("below_threshold").Inc()
		return "", false
	}

	call, ok := synthesize(a)
	if !ok {
		synthesisTotal.WithLabelValues("no_call").Inc()
		return "", false
	}
	synthesisTotal.WithLabelValues("call").Inc()
	return call, true
}

func synthesize(a Analysis) (string, bool) {
	ent := a.Entities
	prio := priorityArg(ent.Priority)

	switch a.Intent {
	case IntentView:
		switch {
		case prio != nil:
			return notation.Format(tools.NameGetTodosByPriority, notation.Positional(prio)...), true
		case ent.Category != "":
			return notation.Format(tools.NameGetTodosByCategory, notation.Positional(ent.Category)...), true
		}
		return notation.Format(tools.NameGetAllTodos), true

	case IntentCreate:
		args := notation.Positional(ent.FreeText)
		args = appendOptional(args, []string{"priority", "category"}, prio, stringArg(ent.Category))
		return notation.Format(tools.NameCreateTodo, args...), true

	case IntentDelete:
		switch len(ent.Numbers) {
		case 0:
			return "", false
		case 1:
			return notation.Format(tools.NameDeleteTodoByID, notation.Positional(ent.Numbers[0])...), true
		}
		return notation.Format(tools.NameDeleteTodosByIDs, notation.Positional(ent.Numbers)...), true

	case IntentComplete, IntentIncomplete:
		if len(ent.Numbers) == 0 {
			return "", false
		}
		name := tools.NameMarkTodoCompleted
		if a.Intent == IntentIncomplete {
			name = tools.NameMarkTodoIncomplete
		}
		return notation.Format(name, notation.Positional(ent.Numbers[0])...), true

	case IntentUpdate:
		if len(ent.Numbers) == 0 {
			return "", false
		}
		args := notation.Positional(ent.Numbers[0])
		args = appendOptional(args, []string{"text", "priority", "category"},
			stringArg(ent.FreeText), prio, stringArg(ent.Category))
		return notation.Format(tools.NameUpdateTodo, args...), true

	case IntentSearch:
		if ent.SearchTerm == "" {
			return "", false
		}
		return notation.Format(tools.NameSearchTodos, notation.Positional(ent.SearchTerm)...), true

	case IntentStats:
		return notation.Format(tools.NameGetTodoStats), true

	case IntentClearCompleted:
		return notation.Format(tools.NameClearCompleted), true
	}
	return "", false
}

// appendOptional emits optional arguments positionally until one is absent; every
// argument after that gap is emitted by name so no position shifts.
func appendOptional(args []agent.Argument, names []string, values ...any) []agent.Argument {
	gap := false
	for i, v := range values {
		if v == nil {
			gap = true
			continue
		}
		if gap {
			args = append(args, agent.Argument{Name: names[i], Value: v})
		} else {
			args = append(args, agent.Argument{Value: v})
		}
	}
	return args
}

// priorityArg returns nil for the default priority.
func priorityArg(p model.Priority) any {
	if p == "" || p == model.PriorityMedium {
		return nil
	}
	return string(p)
}

func stringArg(s string) any {
	if s == "" {
		return nil
	}
	return s
}
