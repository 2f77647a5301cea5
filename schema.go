// File: caep/schema.go
package caep

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

const (
	// DefaultSplit separates collection elements in raw values.
	DefaultSplit = ","
	// DefaultKVSplit separates keys from values inside map elements.
	DefaultKVSplit = ":"
)

// Field describes one declared configuration option. Descriptors are
// derived once from the target struct and never mutated afterwards.
type Field struct {
	Name    string // canonical key, used for file section and env lookup
	Flag    string // long-form command-line flag (hyphenated)
	GoName  string // struct field name, maps validation errors back
	Kind    Kind
	Elem    Kind // element type for list and map fields
	Split   string
	KVSplit string
	MinSize int
	Default any // nil when the field has no declared default
	Help    string
}

var scalarKinds = map[reflect.Kind]Kind{
	reflect.String:  KindString,
	reflect.Int:     KindInt,
	reflect.Int64:   KindInt,
	reflect.Float64: KindFloat,
	reflect.Bool:    KindBool,
}

// fieldsFromStruct derives field descriptors from the exported fields of
// target, which must be a non-nil pointer to a struct. The values held by
// the struct become the declared defaults; a nil pointer field or an empty
// collection means "no default". Required fields cannot be expressed at
// this layer: tag them `validate:"required"` and they are enforced after
// the merge.
func fieldsFromStruct(target any) ([]*Field, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, fmt.Errorf("%w: target must be a non-nil struct pointer, got %T", ErrSchema, target)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: target must point to a struct, got %T", ErrSchema, target)
	}

	rt := rv.Type()
	fields := make([]*Field, 0, rt.NumField())
	seen := make(map[string]bool, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, opts := parseTag(sf)
		if name == "-" {
			continue
		}

		f, err := classifyField(sf, rv.Field(i), name, opts)
		if err != nil {
			return nil, err
		}
		if seen[f.Name] {
			return nil, fieldErrorf(f.Name, "duplicate field name")
		}
		seen[f.Name] = true
		fields = append(fields, f)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: struct %s declares no usable fields", ErrSchema, rt.Name())
	}
	return fields, nil
}

// parseTag returns the field name and the remaining tag options.
func parseTag(sf reflect.StructField) (string, []string) {
	tag := sf.Tag.Get("caep")
	if tag == "" {
		return toSnake(sf.Name), nil
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = toSnake(sf.Name)
	}
	return name, parts[1:]
}

// classifyField inspects one struct field and builds its descriptor.
func classifyField(sf reflect.StructField, value reflect.Value, name string, opts []string) (*Field, error) {
	for _, opt := range opts {
		if opt == "required" {
			return nil, fmt.Errorf(
				`%w: "required" on field %s; the merge step makes every field optional, use validate:"required" and check after Load`,
				ErrNotSupported, name)
		}
	}
	if !isValidName(name) {
		return nil, fieldErrorf(name, "invalid field name")
	}

	f := &Field{
		Name:    name,
		Flag:    strings.ReplaceAll(name, "_", "-"),
		GoName:  sf.Name,
		Split:   DefaultSplit,
		KVSplit: DefaultKVSplit,
		Help:    sf.Tag.Get("help"),
	}
	if s := sf.Tag.Get("split"); s != "" {
		f.Split = s
	}
	if s := sf.Tag.Get("kvsplit"); s != "" {
		f.KVSplit = s
	}
	if s := sf.Tag.Get("min"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, fieldErrorf(name, "invalid min size %q", s)
		}
		f.MinSize = n
	}

	ft := sf.Type
	hasValue := true
	if ft.Kind() == reflect.Ptr {
		ft = ft.Elem()
		hasValue = !value.IsNil()
		if hasValue {
			value = value.Elem()
		}
	}

	switch ft.Kind() {
	case reflect.Slice:
		elem, ok := scalarKinds[ft.Elem().Kind()]
		if !ok {
			return nil, fieldErrorf(name, "unsupported list element type %s", ft.Elem())
		}
		f.Kind = KindList
		f.Elem = elem
		if hasValue && value.Len() > 0 {
			f.Default = renderListDefault(value, f.Split)
		}

	case reflect.Map:
		if ft.Key().Kind() != reflect.String {
			return nil, fieldErrorf(name, "unsupported map key type %s, keys must be strings", ft.Key())
		}
		elem, ok := scalarKinds[ft.Elem().Kind()]
		if !ok {
			return nil, fieldErrorf(name, "unsupported map value type %s", ft.Elem())
		}
		f.Kind = KindMap
		f.Elem = elem
		if hasValue && value.Len() > 0 {
			f.Default = renderMapDefault(value, f.Split, f.KVSplit)
		}

	case reflect.Struct:
		return nil, fieldErrorf(name, "nested structs are not supported")

	default:
		kind, ok := scalarKinds[ft.Kind()]
		if !ok {
			return nil, fieldErrorf(name, "cannot determine type for %s", sf.Type)
		}
		f.Kind = kind
		if kind == KindBool {
			// Absent bool defaults resolve to false, exposing a flag
			// that sets the field true.
			f.Default = hasValue && value.Bool()
		} else if hasValue {
			f.Default = scalarDefault(kind, value)
		}
	}

	return f, nil
}

// scalarDefault extracts the declared default for a scalar field.
func scalarDefault(kind Kind, value reflect.Value) any {
	switch kind {
	case KindInt:
		return int(value.Int())
	case KindFloat:
		return value.Float()
	default:
		return value.String()
	}
}

// renderListDefault renders a declared slice default as a raw delimited
// string, so it follows the same post-parse split path as every other
// source.
func renderListDefault(value reflect.Value, split string) string {
	parts := make([]string, value.Len())
	for i := 0; i < value.Len(); i++ {
		parts[i] = formatValue(value.Index(i).Interface())
	}
	return joinList(parts, split)
}

// renderMapDefault renders a declared map default as a raw delimited
// string with deterministic key order.
func renderMapDefault(value reflect.Value, split, kvSplit string) string {
	keys := make([]string, 0, value.Len())
	for _, k := range value.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	items := make([]string, len(keys))
	for i, k := range keys {
		v := formatValue(value.MapIndex(reflect.ValueOf(k)).Interface())
		items[i] = escapeToken(k, split, kvSplit) + kvSplit + escapeToken(v, split, kvSplit)
	}
	return strings.Join(items, split)
}

// toSnake converts a Go field name to its canonical snake_case key.
func toSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isValidName reports whether a canonical field name maps cleanly onto
// file keys, environment variables and flag names.
func isValidName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		isLower := r >= 'a' && r <= 'z'
		isDigit := r >= '0' && r <= '9'
		if !(isLower || isDigit || r == '_') {
			return false
		}
	}
	return true
}
