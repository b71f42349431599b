package container

import (
	"fmt"
	"reflect"
)

// Factory builds a value from its resolved dependencies. The values arrive
// in the order the dependency names were declared.
type Factory func(deps ...any) (any, error)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// asFactory reports whether v is callable and adapts it to a Factory.
//
// Besides Factory itself, plain func(...any) any values and arbitrary typed
// functions are accepted. Typed functions are called through reflection with
// the dependencies as positional arguments; they may return nothing, T, or
// (T, error).
func asFactory(v any) (Factory, bool) {
	switch fn := v.(type) {
	case nil:
		return nil, false
	case Factory:
		return fn, fn != nil
	case func(...any) (any, error):
		return fn, fn != nil
	case func(...any) any:
		if fn == nil {
			return nil, false
		}
		return func(deps ...any) (any, error) { return fn(deps...), nil }, true
	}

	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Func || val.IsNil() {
		return nil, false
	}
	return reflected(val), true
}

// reflected wraps a typed function value. Missing trailing arguments are
// zero-filled and surplus ones dropped, unless the function is variadic.
func reflected(fn reflect.Value) Factory {
	typ := fn.Type()
	return func(deps ...any) (any, error) {
		args, err := callArgs(typ, deps)
		if err != nil {
			return nil, err
		}
		return unpack(typ, fn.Call(args))
	}
}

func callArgs(typ reflect.Type, deps []any) ([]reflect.Value, error) {
	n := typ.NumIn()
	count := n
	if typ.IsVariadic() {
		count = max(n-1, len(deps))
	}

	args := make([]reflect.Value, count)
	for i := range args {
		param := paramType(typ, i)

		var dep any
		if i < len(deps) {
			dep = deps[i]
		}
		if dep == nil {
			args[i] = reflect.Zero(param)
			continue
		}

		val := reflect.ValueOf(dep)
		if !val.Type().AssignableTo(param) {
			return nil, fmt.Errorf("%w: argument %d is %s, want %s", ErrArgumentType, i, val.Type(), param)
		}
		args[i] = val
	}
	return args, nil
}

func paramType(typ reflect.Type, i int) reflect.Type {
	if typ.IsVariadic() && i >= typ.NumIn()-1 {
		return typ.In(typ.NumIn() - 1).Elem()
	}
	return typ.In(i)
}

// unpack turns the results of a typed factory into a value and an error.
// A trailing error result, including a lone one, is never the value.
func unpack(typ reflect.Type, out []reflect.Value) (any, error) {
	switch {
	case len(out) == 0:
		return nil, nil
	case len(out) == 1 && typ.Out(0) == errorType:
		if err := out[0]; !err.IsNil() {
			return nil, err.Interface().(error)
		}
		return nil, nil
	case len(out) > 1 && typ.Out(len(out)-1).Implements(errorType):
		if last := out[len(out)-1]; !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}
	return out[0].Interface(), nil
}
