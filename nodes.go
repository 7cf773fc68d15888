package bina

import (
	"fmt"
	"strconv"
	"strings"
)

// Statement is one executable unit of a program. Eval threads the variable
// environment through the statement and returns it; the first failing
// operation aborts the whole run.
type Statement interface {
	Eval(env *Environment) (*Environment, error)
}

// Expr is a term or a single binary relation between two terms. The grammar
// permits no chaining and no parenthesized grouping.
type Expr interface {
	Eval(env *Environment) (Value, error)
}

// Term is the smallest evaluable unit: a literal, a variable reference, or a
// single-character index into a string variable.
type Term interface {
	Eval(env *Environment) (Value, error)
}

type IntegerTerm struct {
	Value int64
}

func (t *IntegerTerm) Eval(env *Environment) (Value, error) {
	return Number(t.Value), nil
}

type StringTerm struct {
	Value string
}

func (t *StringTerm) Eval(env *Environment) (Value, error) {
	return Str(t.Value), nil
}

type BooleanTerm struct {
	Value bool
}

func (t *BooleanTerm) Eval(env *Environment) (Value, error) {
	return Boolean(t.Value), nil
}

type VariableTerm struct {
	Name string
}

func (t *VariableTerm) Eval(env *Environment) (Value, error) {
	v, ok := env.Lookup(t.Name)
	if !ok {
		return Value{}, evalErrorf("variable not found: %s", t.Name)
	}
	return v, nil
}

// IndexTerm evaluates name[index]. The base variable must hold a string and
// the index expression a number counting characters; the result is a
// one-character string.
type IndexTerm struct {
	Name  string
	Index Expr
}

func (t *IndexTerm) Eval(env *Environment) (Value, error) {
	base, ok := env.Lookup(t.Name)
	if !ok {
		return Value{}, evalErrorf("variable not found: %s", t.Name)
	}
	index, err := t.Index.Eval(env)
	if err != nil {
		return Value{}, err
	}
	if base.Kind != StringValue || index.Kind != NumberValue {
		return Value{}, evalErrorf("cannot index %s %q with %s %q: base must be a string and index a number",
			base.Kind, base.String(), index.Kind, index.String())
	}
	runes := []rune(base.Str)
	if index.Num < 0 || index.Num >= int64(len(runes)) {
		return Value{}, evalErrorf("index %d out of range for string of length %d", index.Num, len(runes))
	}
	return Str(string(runes[index.Num])), nil
}

// BinaryExpr is exactly one relation between two terms.
type BinaryExpr struct {
	Op    Token
	Left  Term
	Right Term
}

func (e *BinaryExpr) Eval(env *Environment) (Value, error) {
	left, err := e.Left.Eval(env)
	if err != nil {
		return Value{}, err
	}
	right, err := e.Right.Eval(env)
	if err != nil {
		return Value{}, err
	}
	switch e.Op {
	case PLUS:
		return evalArith(left, right, "add", func(a, b int64) int64 { return a + b })
	case STAR:
		return evalArith(left, right, "multiply", func(a, b int64) int64 { return a * b })
	case EQ:
		switch {
		case left.Kind == NumberValue && right.Kind == NumberValue:
			return Boolean(left.Num == right.Num), nil
		case left.Kind == BooleanValue && right.Kind == BooleanValue:
			return Boolean(left.Bool == right.Bool), nil
		}
		return Value{}, evalErrorf("cannot compare %s %q and %s %q for equality",
			left.Kind, left.String(), right.Kind, right.String())
	case NEQ:
		switch {
		case left.Kind == NumberValue && right.Kind == NumberValue:
			return Boolean(left.Num != right.Num), nil
		case left.Kind == BooleanValue && right.Kind == BooleanValue:
			return Boolean(left.Bool != right.Bool), nil
		case left.Kind == StringValue && right.Kind == StringValue:
			return Boolean(left.Str != right.Str), nil
		}
		return Value{}, evalErrorf("cannot compare %s %q and %s %q for disequality",
			left.Kind, left.String(), right.Kind, right.String())
	case LT:
		if left.Kind == NumberValue && right.Kind == NumberValue {
			return Boolean(left.Num < right.Num), nil
		}
		return Value{}, evalErrorf("cannot order %s %q and %s %q",
			left.Kind, left.String(), right.Kind, right.String())
	case IN:
		// left in right asks whether right contains left
		if left.Kind == StringValue && right.Kind == StringValue {
			return Boolean(strings.Contains(right.Str, left.Str)), nil
		}
		return Value{}, evalErrorf("'in' requires string operands, got %s %q and %s %q",
			left.Kind, left.String(), right.Kind, right.String())
	default:
		return Value{}, evalErrorf("unimplemented operator %s", e.Op)
	}
}

// evalArith adds or multiplies two numbers. A string operand paired with a
// number is parsed as an integer first; that narrow coercion exists only on
// these two operators and fails with an EvalError on non-numeric input.
func evalArith(left, right Value, opName string, op func(a, b int64) int64) (Value, error) {
	switch {
	case left.Kind == NumberValue && right.Kind == NumberValue:
		return Number(op(left.Num, right.Num)), nil
	case left.Kind == StringValue && right.Kind == NumberValue:
		n, err := strconv.ParseInt(left.Str, 10, 64)
		if err != nil {
			return Value{}, &EvalError{
				Message: fmt.Sprintf("cannot %s non-numeric string %q", opName, left.Str),
				Cause:   err,
			}
		}
		return Number(op(n, right.Num)), nil
	case left.Kind == NumberValue && right.Kind == StringValue:
		n, err := strconv.ParseInt(right.Str, 10, 64)
		if err != nil {
			return Value{}, &EvalError{
				Message: fmt.Sprintf("cannot %s non-numeric string %q", opName, right.Str),
				Cause:   err,
			}
		}
		return Number(op(left.Num, n)), nil
	default:
		return Value{}, evalErrorf("cannot %s %s %q and %s %q", opName,
			left.Kind, left.String(), right.Kind, right.String())
	}
}

// TermExpr wraps a bare term with no operator; it evaluates to the term's
// value unchanged.
type TermExpr struct {
	Term Term
}

func (e *TermExpr) Eval(env *Environment) (Value, error) {
	return e.Term.Eval(env)
}

type AssignStatement struct {
	Name    string
	Expr    Expr
	Declare bool // 'let' prefix; carries no distinct behavior at evaluation
}

func (s *AssignStatement) Eval(env *Environment) (*Environment, error) {
	v, err := s.Expr.Eval(env)
	if err != nil {
		return nil, err
	}
	env.Define(s.Name, v)
	return env, nil
}

type PrintStatement struct {
	Expr Expr
}

func (s *PrintStatement) Eval(env *Environment) (*Environment, error) {
	v, err := s.Expr.Eval(env)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(env.output(), v.String()); err != nil {
		return nil, &EvalError{Message: "print failed", Cause: err}
	}
	return env, nil
}

type IfStatement struct {
	Cond Expr
	Body Statement
}

// Eval runs the body only when the predicate is exactly Boolean(true); any
// other value, boolean or not, skips it without error.
func (s *IfStatement) Eval(env *Environment) (*Environment, error) {
	cond, err := s.Cond.Eval(env)
	if err != nil {
		return nil, err
	}
	if cond.Kind == BooleanValue && cond.Bool {
		return s.Body.Eval(env)
	}
	return env, nil
}

type WhileStatement struct {
	Cond Expr
	Body Statement
}

// Eval re-evaluates the predicate before every iteration; the loop stops
// without error on any value other than Boolean(true). The body is walked
// again each iteration, never re-parsed.
func (s *WhileStatement) Eval(env *Environment) (*Environment, error) {
	for {
		cond, err := s.Cond.Eval(env)
		if err != nil {
			return nil, err
		}
		if cond.Kind != BooleanValue || !cond.Bool {
			return env, nil
		}
		env, err = s.Body.Eval(env)
		if err != nil {
			return nil, err
		}
	}
}

type BlockStatement struct {
	Statements []Statement
}

func (s *BlockStatement) Eval(env *Environment) (*Environment, error) {
	var err error
	for _, stmt := range s.Statements {
		env, err = stmt.Eval(env)
		if err != nil {
			return nil, err
		}
	}
	return env, nil
}

// RunProgram executes a parsed program against env and returns the final
// environment.
func RunProgram(program []Statement, env *Environment) (*Environment, error) {
	var err error
	for _, stmt := range program {
		env, err = stmt.Eval(env)
		if err != nil {
			return nil, err
		}
	}
	return env, nil
}
