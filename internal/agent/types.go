package agent

import (
	"context"
	"fmt"
	"strings"
)

// ParamType is the semantic type of a tool parameter.
type ParamType int

const (
	String ParamType = iota
	Integer
	Boolean
	IntegerList
)

func (t ParamType) String() string {
	switch t {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case IntegerList:
		return "list[integer]"
	default:
		return "unknown"
	}
}

// Param describes one tool parameter. Order within Tool.Parameters is significant:
// positional arguments bind in that order.
type Param struct {
	Name        string
	Type        ParamType
	Optional    bool
	Description string
}

// Argument is one call argument as written in call notation. An empty Name means positional.
type Argument struct {
	Name  string
	Value any
}

// Tool represents an operation that can be requested through call notation.
type Tool interface {
	// Name returns the tool name (exact, case-sensitive).
	Name() string

	// Description returns what the tool does (for help output and model prompts).
	Description() string

	// Parameters returns the ordered parameter schema.
	Parameters() []Param

	// Execute runs the tool with bound arguments.
	Execute(ctx context.Context, args Args) (any, error)
}

// ToolRegistry is the static catalog of tools. It is populated once at startup and
// read-only afterwards, so lookups need no locking.
type ToolRegistry struct {
	tools map[string]Tool
	order []string
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) error {
	if tool == nil || tool.Name() == "" {
		return ErrInvalidTool
	}
	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}
	r.tools[name] = tool
	r.order = append(r.order, name)
	return nil
}

// MustRegister is Register for startup wiring; it panics on error.
func (r *ToolRegistry) MustRegister(tools ...Tool) {
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			panic(err)
		}
	}
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools in registration order.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Describe renders one line per tool, e.g.
//
//	createTodo(text: string, [priority: string], [category: string]) - Create a todo
func (r *ToolRegistry) Describe() string {
	var sb strings.Builder
	for _, tool := range r.List() {
		sb.WriteString(Signature(tool))
		if desc := tool.Description(); desc != "" {
			sb.WriteString(" - ")
			sb.WriteString(desc)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Signature renders name(param: type, [optional: type]).
func Signature(tool Tool) string {
	params := tool.Parameters()
	parts := make([]string, len(params))
	for i, p := range params {
		s := p.Name + ": " + p.Type.String()
		if p.Optional {
			s = "[" + s + "]"
		}
		parts[i] = s
	}
	return tool.Name() + "(" + strings.Join(parts, ", ") + ")"
}

// FuncTool adapts a plain function to the Tool interface.
type FuncTool struct {
	name        string
	description string
	params      []Param
	fn          func(ctx context.Context, args Args) (any, error)
}

// NewFuncTool creates a Tool backed by fn.
func NewFuncTool(name, description string, params []Param, fn func(ctx context.Context, args Args) (any, error)) *FuncTool {
	return &FuncTool{name: name, description: description, params: params, fn: fn}
}

func (t *FuncTool) Name() string        { return t.name }
func (t *FuncTool) Description() string { return t.description }
func (t *FuncTool) Parameters() []Param { return t.params }

func (t *FuncTool) Execute(ctx context.Context, args Args) (any, error) {
	return t.fn(ctx, args)
}
