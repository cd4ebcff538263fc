package lisp

import "testing"

func TestEnvSetGetShadowing(t *testing.T) {
	root := NewEnvironment(nil)
	root.Set("x", Int(1))
	child := NewEnvironment(root)
	child.Set("x", Int(2))

	got, err := child.Get("x")
	if err != nil || got != Int(2) {
		t.Fatalf("child x = %v, %v, want 2, nil", got, err)
	}
	got, err = root.Get("x")
	if err != nil || got != Int(1) {
		t.Fatalf("root x = %v, %v, want 1, nil (shadowing leaked into parent)", got, err)
	}
}

func TestEnvGetUnboundReturnsSymbolNotFound(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get("missing")
	if _, ok := err.(*SymbolNotFoundError); !ok {
		t.Fatalf("got err = %v (%T), want *SymbolNotFoundError", err, err)
	}
}

func TestBindParamsRestArgs(t *testing.T) {
	params := NewList(Symbol("a"), Symbol("&"), Symbol("rest"))
	env, err := bindParams(params, []Value{Int(1), Int(2), Int(3)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := env.Get("a")
	if a != Int(1) {
		t.Fatalf("a = %v, want 1", a)
	}
	rest, _ := env.Get("rest")
	restList, ok := rest.(*List)
	if !ok || restList.Len() != 2 {
		t.Fatalf("rest = %v, want a 2-element list", rest)
	}
}

func TestBindParamsArityErrors(t *testing.T) {
	params := NewList(Symbol("a"), Symbol("b"))
	if _, err := bindParams(params, []Value{Int(1)}, nil); err == nil {
		t.Fatal("expected arity error for too few args")
	}
	if _, err := bindParams(params, []Value{Int(1), Int(2), Int(3)}, nil); err == nil {
		t.Fatal("expected arity error for too many args")
	}
}

func TestEnvNamesWalksChain(t *testing.T) {
	root := NewEnvironment(nil)
	root.Set("foo", Int(1))
	child := NewEnvironment(root)
	child.Set("bar", Int(2))

	names := map[string]bool{}
	for _, n := range child.Names() {
		names[n] = true
	}
	if !names["foo"] || !names["bar"] {
		t.Fatalf("Names() = %v, want foo and bar", names)
	}
}
