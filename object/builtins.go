// ==============================================================================================
// FILE: object/builtins.go
// ==============================================================================================
package object

import (
	"fmt"
	"strings"
)

// Builtins is the list of available native functions.
var Builtins = []struct {
	Name    string
	Builtin *Builtin
}{
	{
		"len",
		&Builtin{Fn: func(out *strings.Builder, args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("wrong number of arguments. got=%d, want=%d", len(args), 1)
			}
			switch arg := args[0].(type) {
			case *Array:
				return &Integer{Value: int64(len(arg.Elements))}
			case *String:
				return &Integer{Value: int64(len(arg.Value))}
			default:
				return newBuiltinError("argument to 'len' not supported, got %s", args[0].Type())
			}
		}},
	},
	{
		"first",
		&Builtin{Fn: func(out *strings.Builder, args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("wrong number of arguments. got=%d, want=%d", len(args), 1)
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newBuiltinError("argument to 'first' not supported, got %s", args[0].Type())
			}
			if len(arr.Elements) > 0 {
				return arr.Elements[0]
			}
			return &Null{}
		}},
	},
	{
		"last",
		&Builtin{Fn: func(out *strings.Builder, args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("wrong number of arguments. got=%d, want=%d", len(args), 1)
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newBuiltinError("argument to 'last' not supported, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			if length > 0 {
				return arr.Elements[length-1]
			}
			return &Null{}
		}},
	},
	{
		"rest",
		&Builtin{Fn: func(out *strings.Builder, args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("wrong number of arguments. got=%d, want=%d", len(args), 1)
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newBuiltinError("argument to 'rest' not supported, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			if length > 0 {
				newElements := make([]Object, length-1)
				copy(newElements, arr.Elements[1:length])
				return &Array{Elements: newElements}
			}
			return &Null{}
		}},
	},
	{
		"push",
		&Builtin{Fn: func(out *strings.Builder, args ...Object) Object {
			if len(args) != 2 {
				return newBuiltinError("wrong number of arguments. got=%d, want=%d", len(args), 2)
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newBuiltinError("argument to 'push' not supported, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			newElements := make([]Object, length+1)
			copy(newElements, arr.Elements)
			newElements[length] = args[1]
			return &Array{Elements: newElements}
		}},
	},
	{
		"puts",
		&Builtin{Fn: func(out *strings.Builder, args ...Object) Object {
			for _, arg := range args {
				out.WriteString(arg.Inspect())
				out.WriteString("\n")
			}
			return &Null{}
		}},
	},
}

// GetBuiltin is a helper to find a function by name.
func GetBuiltin(name string) (*Builtin, bool) {
	for _, def := range Builtins {
		if def.Name == name {
			return def.Builtin, true
		}
	}
	return nil, false
}

// newBuiltinError creates an Error object from inside the object package.
func newBuiltinError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}
