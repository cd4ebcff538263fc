package lisp

import "testing"

// TestFactorialRecursion exercises non-tail recursion through ordinary
// Go-stack recursion (the multiplication happens after the recursive
// call returns, so this is not a trampoline tail call).
func TestFactorialRecursion(t *testing.T) {
	env := newTestEnv(t)
	evalSrc(t, env, `(def! fact
		(fn* (n)
			(if (<= n 1)
				1
				(* n (fact (- n 1))))))`)
	if got := evalSrc(t, env, "(fact 10)"); got != Int(3628800) {
		t.Fatalf("(fact 10) = %v, want 3628800", got)
	}
}

// TestFibonacciViaAtomAccumulator covers atoms, swap! and iteration
// built from def!/let*/if, a combination spec.md §8 calls out.
func TestFibonacciViaAtomAccumulator(t *testing.T) {
	env := newTestEnv(t)
	evalSrc(t, env, `(def! fib-iter
		(fn* (n)
			(let* (state (atom (list 0 1)))
				(do
					(def! step
						(fn* (i)
							(if (= i n)
								(first (deref state))
								(do
									(swap! state (fn* (s) (list (nth s 1) (+ (nth s 0) (nth s 1)))))
									(step (+ i 1))))))
					(step 0)))))`)
	if got := evalSrc(t, env, "(fib-iter 10)"); got != Int(55) {
		t.Fatalf("(fib-iter 10) = %v, want 55", got)
	}
}

// TestHigherOrderFunctionsComposeWithMapAndApply mirrors spec.md §8's
// closures + map/apply interaction scenario.
func TestHigherOrderFunctionsComposeWithMapAndApply(t *testing.T) {
	env := newTestEnv(t)
	evalSrc(t, env, `(def! compose (fn* (f g) (fn* (x) (f (g x)))))`)
	evalSrc(t, env, `(def! inc (fn* (x) (+ x 1)))`)
	evalSrc(t, env, `(def! double (fn* (x) (* x 2)))`)
	evalSrc(t, env, `(def! inc-then-double (compose double inc))`)
	got := evalSrc(t, env, "(map inc-then-double (list 1 2 3))")
	want, _ := ReadString("(4 6 8)")
	if !Equal(got, want) {
		t.Fatalf("map over composed closures = %v, want (4 6 8)", PrintString(got, true))
	}
	if got := evalSrc(t, env, "(apply inc-then-double (list 5))"); got != Int(12) {
		t.Fatalf("apply over composed closure = %v, want 12", got)
	}
}

// TestMacroBuiltLanguageFeature defines a user-level "when" macro out of
// quasiquote/unquote, exercising macros + quasiquote together.
func TestMacroBuiltLanguageFeature(t *testing.T) {
	env := newTestEnv(t)
	evalSrc(t, env, `(defmacro! when
		(fn* (pred & body)
			` + "`" + `(if ~pred (do ~@body) nil)))`)
	if got := evalSrc(t, env, "(when true 1 2 3)"); got != Int(3) {
		t.Fatalf("(when true 1 2 3) = %v, want 3", got)
	}
	if got := evalSrc(t, env, "(when false 1 2 3)"); got != (Nil{}) {
		t.Fatalf("(when false 1 2 3) = %v, want nil", got)
	}
}

// TestErrorPropagationThroughTryAcrossFunctionCalls checks that a
// thrown value escapes several stack frames intact until caught.
func TestErrorPropagationThroughTryAcrossFunctionCalls(t *testing.T) {
	env := newTestEnv(t)
	evalSrc(t, env, `(def! risky (fn* (n) (if (< n 0) (throw :negative) n)))`)
	evalSrc(t, env, `(def! wrapper (fn* (n) (risky n)))`)
	got := evalSrc(t, env, `(try* (wrapper -1) (catch* e e))`)
	if got != Keyword("negative") {
		t.Fatalf("caught value = %v, want :negative", got)
	}
}

// TestArgvDefaultsToEmptyList checks that *ARGV* starts as an empty list
// and that SetArgv rebinds it to the given arguments.
func TestArgvDefaultsToEmptyList(t *testing.T) {
	env := newTestEnv(t)
	got := evalSrc(t, env, "(count *ARGV*)")
	if got != Int(0) {
		t.Fatalf("(count *ARGV*) = %v, want 0 before SetArgv is called", got)
	}
	SetArgv(env, []string{"a", "b"})
	if got := evalSrc(t, env, "(count *ARGV*)"); got != Int(2) {
		t.Fatalf("(count *ARGV*) after SetArgv = %v, want 2", got)
	}
}
