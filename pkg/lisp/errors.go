package lisp

import "fmt"

// ReaderErrorKind distinguishes the reader's error taxonomy (spec.md §7).
type ReaderErrorKind int

const (
	// ErrUnbalanced covers an unterminated list, vector or map: EOF
	// reached before the matching closing delimiter.
	ErrUnbalanced ReaderErrorKind = iota
	// ErrUnterminatedString covers a string literal missing its
	// closing quote.
	ErrUnterminatedString
	// ErrEmptyInput marks input that tokenized to nothing, so the
	// driver can silently re-prompt instead of reporting an error.
	ErrEmptyInput
	// ErrInvalidMapKey covers a {} literal whose key is not a
	// Symbol, Keyword or Str, or that has an odd element count.
	ErrInvalidMapKey
)

// ReaderError is raised by the reader; its Kind lets callers (the REPL)
// special-case ErrEmptyInput.
type ReaderError struct {
	Kind    ReaderErrorKind
	Message string
}

func (e *ReaderError) Error() string { return e.Message }

func newUnbalanced(what string) *ReaderError {
	return &ReaderError{Kind: ErrUnbalanced, Message: fmt.Sprintf("unbalanced %s", what)}
}

func newUnterminatedString() *ReaderError {
	return &ReaderError{Kind: ErrUnterminatedString, Message: "unterminated string"}
}

func newEmptyInput() *ReaderError {
	return &ReaderError{Kind: ErrEmptyInput, Message: "empty input"}
}

func newInvalidMapKey(got Value) *ReaderError {
	return &ReaderError{Kind: ErrInvalidMapKey, Message: fmt.Sprintf("invalid hash-map key: %s", PrintString(got, true))}
}

func newMissingMapValue() *ReaderError {
	return &ReaderError{Kind: ErrInvalidMapKey, Message: "hash-map literal is missing a value"}
}

// SymbolNotFoundError is raised by Environment.Get when a symbol is
// unbound anywhere in the env chain.
type SymbolNotFoundError struct {
	Symbol Symbol
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("'%s' not found", string(e.Symbol))
}

// NotAFunctionError is raised when the evaluator tries to call a
// non-callable value.
type NotAFunctionError struct {
	Value Value
}

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("'%s' is not a function", PrintString(e.Value, true))
}

// ArityError is raised by builtins and the parameter binder on a wrong
// argument count. The / and % builtins also return it for division or
// modulo by zero.
type ArityError struct {
	Message string
}

func (e *ArityError) Error() string { return e.Message }

func newArityError(format string, args ...any) *ArityError {
	return &ArityError{Message: fmt.Sprintf(format, args...)}
}

// TypeError is raised when a value doesn't match the type a built-in or
// special form expects.
type TypeError struct {
	Expected string
	Got      Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, PrintString(e.Got, true))
}

func newTypeError(expected string, got Value) *TypeError {
	return &TypeError{Expected: expected, Got: got}
}

// IndexError is raised by nth on an out-of-range index.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range", e.Index)
}

// ThrownValue wraps a user-thrown Value so try*/catch* can retrieve it
// verbatim, as opposed to a host-originated Go error which catch* sees
// only as a Str description (spec.md §7).
type ThrownValue struct {
	Value Value
}

func (e *ThrownValue) Error() string {
	return PrintString(e.Value, true)
}

// IOError wraps a slurp/load-file filesystem failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// errNotSupported is returned by the host-escape special forms
// (py*, py!*, .), which spec.md §4.5 scopes out of the core.
type errNotSupported struct {
	Form string
}

func (e *errNotSupported) Error() string {
	return fmt.Sprintf("%s is not supported by this host", e.Form)
}
