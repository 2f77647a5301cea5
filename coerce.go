// File: caep/coerce.go
package caep

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the target type of a declared field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// coerceScalar converts v to the Go type for kind. Strings are parsed with
// strconv; parse failures propagate with the underlying error wrapped, so
// they stay distinguishable from *FieldError.
func coerceScalar(kind Kind, v any) (any, error) {
	switch kind {
	case KindString:
		switch s := v.(type) {
		case string:
			return s, nil
		case bool:
			return strconv.FormatBool(s), nil
		case int:
			return strconv.Itoa(s), nil
		case int64:
			return strconv.FormatInt(s, 10), nil
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64), nil
		default:
			return fmt.Sprintf("%v", v), nil
		}

	case KindInt:
		switch s := v.(type) {
		case int:
			return s, nil
		case int64:
			return int(s), nil
		case float64:
			return int(s), nil
		case string:
			i, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("cannot convert %q to int: %w", s, err)
			}
			return i, nil
		}

	case KindFloat:
		switch s := v.(type) {
		case float64:
			return s, nil
		case int:
			return float64(s), nil
		case int64:
			return float64(s), nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("cannot convert %q to float: %w", s, err)
			}
			return f, nil
		}

	case KindBool:
		switch s := v.(type) {
		case bool:
			return s, nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("cannot convert %q to bool: %w", s, err)
			}
			return b, nil
		}
	}

	return nil, fmt.Errorf("cannot convert %T to %s", v, kind)
}

// formatValue renders a coerced value back to its string form for the flag
// surface. The string conversion in coerceScalar cannot fail.
func formatValue(v any) string {
	s, _ := coerceScalar(KindString, v)
	return s.(string)
}
