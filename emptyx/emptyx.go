package emptyx

import (
	"math"
	"reflect"
)

// Nil reports whether v is nil or a typed nil (nil pointer, map, slice,
// func, chan or interface).
func Nil(v any) bool {
	if v == nil {
		return true
	}
	return isNilValue(reflect.ValueOf(v))
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Falsy reports whether v is unusable as a value: nil, a typed nil, false,
// numeric zero, NaN or "". Structs, arrays and non-nil containers are
// never falsy, even when empty.
func Falsy(v any) bool {
	if v == nil {
		return true
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Bool:
		return !val.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return val.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := val.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.String:
		return val.String() == ""
	default:
		return isNilValue(val)
	}
}

// String checks if a string is empty
func String(s string) bool {
	return s == ""
}
