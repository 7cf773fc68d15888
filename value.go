package bina

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// ValueKind tags the runtime type of a Value. The enumeration is closed:
// every operator and statement matches on it exhaustively, so a new kind
// fails to compile until every site handles it.
type ValueKind int

const (
	NumberValue ValueKind = iota
	BooleanValue
	StringValue
)

func (k ValueKind) String() string {
	switch k {
	case NumberValue:
		return "number"
	case BooleanValue:
		return "boolean"
	case StringValue:
		return "string"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the runtime representation of a computed result: a 64-bit signed
// integer, a boolean, or a string. Values are small and copied freely.
type Value struct {
	Kind ValueKind
	Num  int64
	Bool bool
	Str  string
}

func Number(n int64) Value { return Value{Kind: NumberValue, Num: n} }
func Boolean(b bool) Value { return Value{Kind: BooleanValue, Bool: b} }
func Str(s string) Value   { return Value{Kind: StringValue, Str: s} }

// String renders the value the way print does: numbers in decimal, booleans
// as true/false, strings as their literal contents.
func (v Value) String() string {
	switch v.Kind {
	case NumberValue:
		return strconv.FormatInt(v.Num, 10)
	case BooleanValue:
		return strconv.FormatBool(v.Bool)
	case StringValue:
		return v.Str
	}
	return fmt.Sprintf("unknown value kind %d", int(v.Kind))
}

// Interface returns the value as a plain Go value, for JSON output and
// environment decoding.
func (v Value) Interface() any {
	switch v.Kind {
	case NumberValue:
		return v.Num
	case BooleanValue:
		return v.Bool
	default:
		return v.Str
	}
}

// Environment is the single flat mapping from variable name to Value shared
// by the whole program. Blocks, loops and conditionals do not open scopes;
// let and plain assignment write through the same table. The environment is
// owned by the evaluation call stack and threaded through every statement,
// never shared.
type Environment struct {
	vars map[string]Value
	out  io.Writer
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// SetOutput redirects print statements to w instead of standard output.
func (e *Environment) SetOutput(w io.Writer) {
	e.out = w
}

func (e *Environment) output() io.Writer {
	if e.out != nil {
		return e.out
	}
	return os.Stdout
}

func (e *Environment) Lookup(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Define inserts or overwrites the binding for name.
func (e *Environment) Define(name string, v Value) {
	e.vars[name] = v
}

func (e *Environment) Len() int {
	return len(e.vars)
}

// Vars returns a snapshot of the variable table.
func (e *Environment) Vars() map[string]Value {
	snapshot := make(map[string]Value, len(e.vars))
	for name, v := range e.vars {
		snapshot[name] = v
	}
	return snapshot
}
