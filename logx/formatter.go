package logx

import (
	"fmt"
	"reflect"
	"strings"
)

// formatCompact renders a value on a single line: Response{Message:"bad",Code:400}.
func formatCompact(v any) string {
	return formatValue(reflect.ValueOf(v), 0)
}

// compactArgs applies formatCompact to the arguments consumed by %v or %s.
// Other verbs, strings and Stringers keep their argument as is.
func compactArgs(msg string, args []any) []any {
	verbs, ok := argVerbs(msg)
	if !ok {
		return args
	}

	out := make([]any, len(args))
	copy(out, args)
	for i, arg := range args {
		if i >= len(verbs) || (verbs[i] != 'v' && verbs[i] != 's') {
			continue
		}
		switch arg.(type) {
		case string, fmt.Stringer:
			continue
		}
		out[i] = formatCompact(arg)
	}
	return out
}

// argVerbs lists, in order, the verb that consumes each argument of msg.
// A '*' width or precision consumes an argument too. It reports false
// when msg uses explicit argument indexes.
func argVerbs(msg string) ([]byte, bool) {
	var verbs []byte
	for i := 0; i < len(msg); i++ {
		if msg[i] != '%' {
			continue
		}
		i++
		for i < len(msg) && strings.IndexByte("+-# 0123456789.*", msg[i]) >= 0 {
			if msg[i] == '*' {
				verbs = append(verbs, '*')
			}
			i++
		}
		if i == len(msg) {
			break
		}
		switch msg[i] {
		case '%':
			continue
		case '[':
			return nil, false
		}
		verbs = append(verbs, msg[i])
	}
	return verbs, true
}

const maxDepth = 6

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func formatValue(v reflect.Value, depth int) string {
	if !v.IsValid() {
		return "<nil>"
	}
	if depth > maxDepth {
		return "..."
	}

	if v.Type().Implements(errorType) && v.CanInterface() {
		if (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && v.IsNil() {
			return "nil"
		}
		if err, ok := v.Interface().(error); ok {
			return fmt.Sprintf("Error(%q)", err.Error())
		}
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return "nil"
		}
		return "&" + formatValue(v.Elem(), depth)
	case reflect.Interface:
		if v.IsNil() {
			return "<nil>"
		}
		return formatValue(v.Elem(), depth)
	case reflect.String:
		return fmt.Sprintf("%q", v.String())
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return "[]"
		}
		parts := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts = append(parts, formatValue(v.Index(i), depth+1))
		}
		return "[" + strings.Join(parts, ",") + "]"
	case reflect.Map:
		if v.Len() == 0 {
			return "map{}"
		}
		parts := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			parts = append(parts, formatValue(iter.Key(), depth+1)+":"+formatValue(iter.Value(), depth+1))
		}
		return "map{" + strings.Join(parts, ",") + "}"
	case reflect.Struct:
		return formatStruct(v, depth)
	default:
		if v.CanInterface() {
			return fmt.Sprintf("%v", v.Interface())
		}
		return fmt.Sprintf("<%s>", v.Type().String())
	}
}

func formatStruct(v reflect.Value, depth int) string {
	t := v.Type()
	name := t.Name()
	if name == "" {
		name = "struct"
	}

	var parts []string
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanInterface() {
			continue
		}
		parts = append(parts, t.Field(i).Name+":"+formatValue(field, depth+1))
	}
	return name + "{" + strings.Join(parts, ",") + "}"
}
