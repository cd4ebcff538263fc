package lisp

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// registerIO binds the file and console I/O builtins (spec.md §4.4).
// readline shares one buffered stdin reader across calls so repeated
// invocations don't lose buffered input between reads.
func registerIO(env *Environment) {
	stdin := bufio.NewReader(os.Stdin)

	env.Set("slurp", builtin("slurp", func(args []Value) (Value, error) {
		if err := arity("slurp", args, 1); err != nil {
			return nil, err
		}
		path, ok := args[0].(Str)
		if !ok {
			return nil, newTypeError("Str path", args[0])
		}
		data, err := os.ReadFile(string(path))
		if err != nil {
			return nil, &IOError{Op: "slurp", Path: string(path), Err: err}
		}
		return Str(data), nil
	}))

	env.Set("readline", builtin("readline", func(args []Value) (Value, error) {
		if len(args) > 1 {
			return nil, newArityError("readline expects 0-1 arguments, got %d", len(args))
		}
		if len(args) == 1 {
			prompt, ok := args[0].(Str)
			if !ok {
				return nil, newTypeError("Str prompt", args[0])
			}
			fmt.Print(string(prompt))
		}
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return Nil{}, nil
		}
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		return Str(line), nil
	}))

	env.Set("time-ms", builtin("time-ms", func(args []Value) (Value, error) {
		if err := arity("time-ms", args, 0); err != nil {
			return nil, err
		}
		return Int(time.Now().UnixMilli()), nil
	}))
}
