package agent

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Args holds bound, type-coerced arguments keyed by parameter name.
// Absent optional parameters have no key.
type Args map[string]any

// Has reports whether the parameter was supplied.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns a string argument.
func (a Args) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

// Int returns an integer argument.
func (a Args) Int(name string) (int64, bool) {
	v, ok := a[name].(int64)
	return v, ok
}

// Bool returns a boolean argument.
func (a Args) Bool(name string) (bool, bool) {
	v, ok := a[name].(bool)
	return v, ok
}

// IntList returns a list[integer] argument.
func (a Args) IntList(name string) ([]int64, bool) {
	v, ok := a[name].([]int64)
	return v, ok
}

// BindArguments matches call arguments to a parameter schema. Positional arguments
// fill parameters in schema order; named arguments bind by name. A null value for
// an optional parameter leaves it absent.
func BindArguments(params []Param, args []Argument) (Args, error) {
	index := make(map[string]int, len(params))
	for i, p := range params {
		index[p.Name] = i
	}

	bound := make(Args, len(args))
	seen := make([]bool, len(params))
	pos := 0

	for _, arg := range args {
		var i int
		if arg.Name == "" {
			if pos >= len(params) {
				return nil, fmt.Errorf("%w: expected at most %d", ErrTooManyArguments, len(params))
			}
			i = pos
			pos++
		} else {
			var ok bool
			if i, ok = index[arg.Name]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownArgument, arg.Name)
			}
		}

		p := params[i]
		if seen[i] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateArgument, p.Name)
		}
		seen[i] = true

		if arg.Value == nil {
			if !p.Optional {
				return nil, fmt.Errorf("%w: %s", ErrMissingArgument, p.Name)
			}
			continue
		}

		v, err := coerce(p.Type, arg.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArgument, p.Name, err)
		}
		bound[p.Name] = v
	}

	for i, p := range params {
		if !p.Optional && !seen[i] {
			return nil, fmt.Errorf("%w: %s", ErrMissingArgument, p.Name)
		}
	}
	return bound, nil
}

func coerce(t ParamType, v any) (any, error) {
	switch t {
	case String:
		return toString(v)
	case Integer:
		return toInt(v)
	case Boolean:
		return toBool(v)
	case IntegerList:
		return toIntList(v)
	}
	return nil, fmt.Errorf("unsupported parameter type %d", t)
}

func toString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	}
	return "", fmt.Errorf("want string, got %T", v)
}

func toInt(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("want integer, got %v", x)
		}
		if x < math.MinInt64 || x >= -math.MinInt64 {
			return 0, fmt.Errorf("integer out of range: %v", x)
		}
		return int64(x), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("want integer, got %q", x)
		}
		return n, nil
	}
	return 0, fmt.Errorf("want integer, got %T", v)
}

func toBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, fmt.Errorf("want boolean, got %q", x)
	}
	return false, fmt.Errorf("want boolean, got %T", v)
}

func toIntList(v any) ([]int64, error) {
	switch x := v.(type) {
	case []int64:
		return x, nil
	case []any:
		out := make([]int64, 0, len(x))
		for _, e := range x {
			n, err := toInt(e)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}
	// A single integer is accepted as a one-element list.
	n, err := toInt(v)
	if err != nil {
		return nil, fmt.Errorf("want list[integer], got %T", v)
	}
	return []int64{n}, nil
}
