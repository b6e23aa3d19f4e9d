package notation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"todo-assistant/internal/agent"
)

// Format writes a call in notation that Parse reads back to the same values.
// Strings are double-quoted, or single-quoted when they contain a double quote.
// A string containing both quote kinds cannot be represented exactly.
func Format(name string, args ...agent.Argument) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		if a.Name != "" {
			sb.WriteString(a.Name)
			sb.WriteByte('=')
		}
		sb.WriteString(formatValue(a.Value))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Positional wraps values as positional arguments.
func Positional(values ...any) []agent.Argument {
	args := make([]agent.Argument, len(values))
	for i, v := range values {
		args[i] = agent.Argument{Value: v}
	}
	return args
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(x)
	case string:
		if strings.Contains(x, `"`) && !strings.Contains(x, "'") {
			return "'" + x + "'"
		}
		return `"` + x + `"`
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case []int64:
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = formatElement(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%q", fmt.Sprint(x))
		}
		return string(b)
	}
}

// formatElement writes a list element. Lists are read back as JSON, so strings
// inside them use JSON quoting.
func formatElement(v any) string {
	if s, ok := v.(string); ok {
		b, _ := json.Marshal(s)
		return string(b)
	}
	return formatValue(v)
}
