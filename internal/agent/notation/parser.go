// Package notation reads and writes textual call notation: name(arg, arg, ...).
package notation

import (
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"todo-assistant/internal/agent"
)

// ToolLookup resolves tool names. *agent.ToolRegistry satisfies it.
type ToolLookup interface {
	Get(name string) (agent.Tool, bool)
}

// Call is one call found in text. Tool is always a registered tool.
type Call struct {
	ToolName string
	Args     []agent.Argument
	Tool     agent.Tool
}

// Parser extracts calls to registered tools from arbitrary text. It keeps no state
// between Parse calls.
type Parser struct {
	tools ToolLookup
}

// New creates a Parser that only emits calls to tools known by lookup.
func New(lookup ToolLookup) *Parser {
	return &Parser{tools: lookup}
}

var (
	namedArg   = regexp.MustCompile(`(?s)^([A-Za-z_]\w*)\s*=\s*(.*)$`)
	decimal    = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	errLiteral = errors.New("invalid literal")
)

// Parse scans text left to right and returns every call to a registered tool, in order.
// Unregistered names are skipped and scanning resumes just after their '(' so calls
// nested in prose parentheses are still found.
func (p *Parser) Parse(text string) []Call {
	var calls []Call

	i := 0
	for i < len(text) {
		if !isWord(text[i]) || (i > 0 && isWord(text[i-1])) {
			i++
			continue
		}

		j := i
		for j < len(text) && isWord(text[j]) {
			j++
		}
		k := j
		for k < len(text) && isSpace(text[k]) {
			k++
		}
		if k >= len(text) || text[k] != '(' {
			i = j
			continue
		}

		name := text[i:j]
		tool, ok := p.tools.Get(name)
		if !ok {
			i = k + 1
			continue
		}

		end := closingParen(text, k+1)
		if end < 0 {
			i = k + 1
			continue
		}

		calls = append(calls, Call{
			ToolName: name,
			Args:     parseArgs(text[k+1 : end]),
			Tool:     tool,
		})
		i = end + 1
	}
	return calls
}

// closingParen returns the index of the first ')' outside quotes at or after start.
// With an unterminated quote it falls back to the first ')' at all.
func closingParen(s string, start int) int {
	var quote byte
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ')':
			return i
		}
	}
	if quote != 0 {
		if i := strings.IndexByte(s[start:], ')'); i >= 0 {
			return start + i
		}
	}
	return -1
}

func parseArgs(raw string) []agent.Argument {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	args := make([]agent.Argument, 0, 4)
	for _, tok := range splitTopLevel(raw) {
		arg, err := parseToken(tok, true)
		if err != nil {
			return naiveArgs(raw)
		}
		args = append(args, arg)
	}
	return args
}

// naiveArgs re-tokenizes the whole argument list on every comma with scalar coercion only.
func naiveArgs(raw string) []agent.Argument {
	parts := strings.Split(raw, ",")
	args := make([]agent.Argument, 0, len(parts))
	for _, tok := range parts {
		arg, _ := parseToken(tok, false)
		args = append(args, arg)
	}
	return args
}

func parseToken(tok string, literals bool) (agent.Argument, error) {
	tok = strings.TrimSpace(tok)
	if m := namedArg.FindStringSubmatch(tok); m != nil {
		v, err := parseValue(strings.TrimSpace(m[2]), literals)
		return agent.Argument{Name: m[1], Value: v}, err
	}
	v, err := parseValue(tok, literals)
	return agent.Argument{Value: v}, err
}

func parseValue(tok string, literals bool) (any, error) {
	if n := len(tok); n >= 2 && (tok[0] == '"' || tok[0] == '\'') && tok[n-1] == tok[0] {
		return tok[1 : n-1], nil
	}

	switch tok {
	case "null":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	if decimal.MatchString(tok) {
		if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return f, nil
		}
	}

	if literals && (strings.HasPrefix(tok, "[") || strings.Contains(tok, "{")) {
		return parseLiteral(tok)
	}
	return tok, nil
}

// parseLiteral decodes a JSON list or object. Nothing is ever evaluated.
func parseLiteral(tok string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(tok))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errLiteral
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errLiteral
	}
	return normalize(v), nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		f, _ := x.Float64()
		return f
	case []any:
		for i := range x {
			x[i] = normalize(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = normalize(x[k])
		}
		return x
	}
	return v
}

// splitTopLevel splits on commas outside quotes and [] {} nesting. Unbalanced input
// falls back to a split on every comma.
func splitTopLevel(s string) []string {
	var (
		parts []string
		quote byte
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth < 0 {
				return strings.Split(s, ",")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if quote != 0 || depth != 0 {
		return strings.Split(s, ",")
	}
	return append(parts, s[start:])
}

func isWord(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
