package lisp

// registerCollections binds the sequence and hash-map builtins (spec.md
// §4.4).
func registerCollections(env *Environment) {
	env.Set("list", builtin("list", func(args []Value) (Value, error) {
		return NewList(args...), nil
	}))

	env.Set("list?", builtin("list?", func(args []Value) (Value, error) {
		if err := arity("list?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(*List)
		return Bool(ok), nil
	}))

	env.Set("vector", builtin("vector", func(args []Value) (Value, error) {
		return NewVector(args...), nil
	}))

	env.Set("vector?", builtin("vector?", func(args []Value) (Value, error) {
		if err := arity("vector?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(*Vector)
		return Bool(ok), nil
	}))

	env.Set("sequential?", builtin("sequential?", func(args []Value) (Value, error) {
		if err := arity("sequential?", args, 1); err != nil {
			return nil, err
		}
		switch args[0].(type) {
		case *List, *Vector:
			return Bool(true), nil
		default:
			return Bool(false), nil
		}
	}))

	env.Set("empty?", builtin("empty?", func(args []Value) (Value, error) {
		if err := arity("empty?", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case Nil:
			return Bool(true), nil
		case *List:
			return Bool(v.IsEmpty()), nil
		case *Vector:
			return Bool(v.Count() == 0), nil
		case Str:
			return Bool(len(v) == 0), nil
		default:
			return nil, newTypeError("collection", args[0])
		}
	}))

	env.Set("count", builtin("count", func(args []Value) (Value, error) {
		if err := arity("count", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case Nil:
			return Int(0), nil
		case *List:
			return Int(v.Len()), nil
		case *Vector:
			return Int(v.Count()), nil
		case *HashMap:
			return Int(v.Count()), nil
		case Str:
			return Int(len(v)), nil
		default:
			return nil, newTypeError("collection", args[0])
		}
	}))

	env.Set("cons", builtin("cons", func(args []Value) (Value, error) {
		if err := arity("cons", args, 2); err != nil {
			return nil, err
		}
		rest, err := asSeqList(args[1])
		if err != nil {
			return nil, err
		}
		return Cons(args[0], rest), nil
	}))

	env.Set("concat", builtin("concat", func(args []Value) (Value, error) {
		var elems []Value
		for _, arg := range args {
			seq, err := asSeqList(arg)
			if err != nil {
				return nil, err
			}
			elems = append(elems, seq.Slice()...)
		}
		return NewList(elems...), nil
	}))

	env.Set("nth", builtin("nth", func(args []Value) (Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return nil, newArityError("nth expects 2-3 arguments, got %d", len(args))
		}
		idx, ok := args[1].(Int)
		if !ok {
			return nil, newTypeError("Int index", args[1])
		}
		index := int(idx)
		var elems []Value
		switch v := args[0].(type) {
		case *List:
			elems = v.Slice()
		case *Vector:
			elems = v.Elements
		default:
			return nil, newTypeError("collection", args[0])
		}
		if index < 0 || index >= len(elems) {
			if len(args) == 3 {
				return args[2], nil
			}
			return nil, &IndexError{Index: index}
		}
		return elems[index], nil
	}))

	env.Set("first", builtin("first", func(args []Value) (Value, error) {
		if err := arity("first", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case Nil:
			return Nil{}, nil
		case *List:
			return v.First(), nil
		case *Vector:
			if v.Count() == 0 {
				return Nil{}, nil
			}
			return v.Get(0), nil
		default:
			return nil, newTypeError("collection", args[0])
		}
	}))

	env.Set("rest", builtin("rest", func(args []Value) (Value, error) {
		if err := arity("rest", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case Nil:
			return (*List)(nil), nil
		case *List:
			return v.Rest(), nil
		case *Vector:
			if v.Count() == 0 {
				return (*List)(nil), nil
			}
			return NewList(v.Elements[1:]...), nil
		default:
			return nil, newTypeError("collection", args[0])
		}
	}))

	env.Set("map", builtin("map", func(args []Value) (Value, error) {
		if err := arity("map", args, 2); err != nil {
			return nil, err
		}
		fn, ok := args[0].(Callable)
		if !ok {
			return nil, &NotAFunctionError{Value: args[0]}
		}
		seq, err := asSeqList(args[1])
		if err != nil {
			return nil, err
		}
		var out []Value
		for c := seq; c != nil; c = c.Rest() {
			r, err := fn.Call([]Value{c.First()})
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return NewList(out...), nil
	}))

	env.Set("apply", builtin("apply", func(args []Value) (Value, error) {
		if len(args) < 2 {
			return nil, newArityError("apply expects at least 2 arguments, got %d", len(args))
		}
		fn, ok := args[0].(Callable)
		if !ok {
			return nil, &NotAFunctionError{Value: args[0]}
		}
		last, err := asSeqList(args[len(args)-1])
		if err != nil {
			return nil, err
		}
		callArgs := append([]Value{}, args[1:len(args)-1]...)
		callArgs = append(callArgs, last.Slice()...)
		return fn.Call(callArgs)
	}))

	env.Set("conj", builtin("conj", func(args []Value) (Value, error) {
		if len(args) < 1 {
			return nil, newArityError("conj expects at least 1 argument, got %d", len(args))
		}
		switch coll := args[0].(type) {
		case *List:
			result := coll
			for _, elem := range args[1:] {
				result = Cons(elem, result)
			}
			return result, nil
		case *Vector:
			out := append(append([]Value{}, coll.Elements...), args[1:]...)
			return NewVector(out...), nil
		default:
			return nil, newTypeError("collection", args[0])
		}
	}))

	env.Set("seq", builtin("seq", func(args []Value) (Value, error) {
		if err := arity("seq", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case Nil:
			return Nil{}, nil
		case *List:
			if v.IsEmpty() {
				return Nil{}, nil
			}
			return v, nil
		case *Vector:
			if v.Count() == 0 {
				return Nil{}, nil
			}
			return NewList(v.Elements...), nil
		case Str:
			if len(v) == 0 {
				return Nil{}, nil
			}
			chars := make([]Value, 0, len(v))
			for _, r := range string(v) {
				chars = append(chars, Str(string(r)))
			}
			return NewList(chars...), nil
		default:
			return nil, newTypeError("collection or string", args[0])
		}
	}))

	env.Set("hash-map", builtin("hash-map", func(args []Value) (Value, error) {
		return NewHashMapWithPairs(args...)
	}))

	env.Set("map?", builtin("map?", func(args []Value) (Value, error) {
		if err := arity("map?", args, 1); err != nil {
			return nil, err
		}
		_, ok := args[0].(*HashMap)
		return Bool(ok), nil
	}))

	env.Set("assoc", builtin("assoc", func(args []Value) (Value, error) {
		if len(args) < 1 {
			return nil, newArityError("assoc expects at least 1 argument, got %d", len(args))
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, newTypeError("HashMap", args[0])
		}
		return hm.Assoc(args[1:]...)
	}))

	env.Set("dissoc", builtin("dissoc", func(args []Value) (Value, error) {
		if len(args) < 1 {
			return nil, newArityError("dissoc expects at least 1 argument, got %d", len(args))
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, newTypeError("HashMap", args[0])
		}
		return hm.Dissoc(args[1:]...), nil
	}))

	env.Set("get", builtin("get", func(args []Value) (Value, error) {
		if err := arity("get", args, 2); err != nil {
			return nil, err
		}
		if _, ok := args[0].(Nil); ok {
			return Nil{}, nil
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, newTypeError("HashMap", args[0])
		}
		return hm.Get(args[1]), nil
	}))

	env.Set("contains?", builtin("contains?", func(args []Value) (Value, error) {
		if err := arity("contains?", args, 2); err != nil {
			return nil, err
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, newTypeError("HashMap", args[0])
		}
		return Bool(hm.Contains(args[1])), nil
	}))

	env.Set("keys", builtin("keys", func(args []Value) (Value, error) {
		if err := arity("keys", args, 1); err != nil {
			return nil, err
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, newTypeError("HashMap", args[0])
		}
		return NewList(hm.Keys()...), nil
	}))

	env.Set("vals", builtin("vals", func(args []Value) (Value, error) {
		if err := arity("vals", args, 1); err != nil {
			return nil, err
		}
		hm, ok := args[0].(*HashMap)
		if !ok {
			return nil, newTypeError("HashMap", args[0])
		}
		return NewList(hm.Values()...), nil
	}))
}

// asSeqList coerces Nil/List/Vector into a *List, the common case
// needed by cons/concat/map/apply.
func asSeqList(v Value) (*List, error) {
	switch val := v.(type) {
	case Nil:
		return nil, nil
	case *List:
		return val, nil
	case *Vector:
		return NewList(val.Elements...), nil
	default:
		return nil, newTypeError("sequence", v)
	}
}

func arity(name string, args []Value, n int) error {
	if len(args) != n {
		return newArityError("%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}
