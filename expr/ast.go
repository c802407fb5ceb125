/*
NAME
  ast.go

DESCRIPTION
  ast.go defines the typed sum-of-variants AST for the template expression
  language: ints, bools and strings, unary and binary operators, builtin
  calls, and variable references. Nodes are immutable once parsed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package expr implements the small typed expression language used
// throughout format templates: integers, booleans and strings, with
// arithmetic, comparison, logical operators, and a handful of builtins.
// Expressions are parsed once into an immutable AST and may be evaluated
// repeatedly against different environments.
package expr

// Kind identifies a Go value produced by evaluating an Expression.
type Kind int

const (
	KindInt Kind = iota
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the three scalar types the language
// supports. Exactly one of the fields is meaningful, as indicated by Kind.
type Value struct {
	Kind Kind
	I    int64
	B    bool
	S    string
}

// Int, Bool and Str construct Values of the matching Kind.
func Int(v int64) Value  { return Value{Kind: KindInt, I: v} }
func Bool(v bool) Value  { return Value{Kind: KindBool, B: v} }
func Str(v string) Value { return Value{Kind: KindString, S: v} }

// Expression is a node in the AST. Every concrete type in this package
// implements it.
type Expression interface {
	// eval evaluates the expression against env, returning a Value or an
	// error (TypeError or EvalError).
	eval(env Env) (Value, error)

	// freeVars appends every identifier referenced anywhere within the
	// expression to out, without deduplication; callers dedupe as needed.
	freeVars(out []string) []string

	// isConst reports whether the expression's value is independent of
	// any variable binding, i.e. it contains no Var nodes.
	isConst() bool
}

// Env is an evaluation environment: a mapping from identifier to Value.
// A reference to an identifier absent from Env fails evaluation with an
// EvalError.
type Env map[string]Value

// Lookup returns the bound value for name, or ok == false if unbound.
func (e Env) Lookup(name string) (Value, bool) {
	v, ok := e[name]
	return v, ok
}

// IntLit is a literal integer.
type IntLit struct{ Value int64 }

// BoolLit is a literal boolean.
type BoolLit struct{ Value bool }

// StrLit is a literal string.
type StrLit struct{ Value string }

// VarRef is a reference to an identifier resolved against an Env at
// evaluation time.
type VarRef struct{ Name string }

// BinOp is a binary operator application.
type BinOp struct {
	Op       string
	LHS, RHS Expression
}

// UnOp is a unary operator application.
type UnOp struct {
	Op  string
	Arg Expression
}

// Call is a builtin function application.
type Call struct {
	Name string
	Args []Expression
}

func (n *IntLit) eval(Env) (Value, error)  { return Int(n.Value), nil }
func (n *BoolLit) eval(Env) (Value, error) { return Bool(n.Value), nil }
func (n *StrLit) eval(Env) (Value, error)  { return Str(n.Value), nil }

func (n *IntLit) freeVars(out []string) []string  { return out }
func (n *BoolLit) freeVars(out []string) []string { return out }
func (n *StrLit) freeVars(out []string) []string  { return out }

func (n *IntLit) isConst() bool  { return true }
func (n *BoolLit) isConst() bool { return true }
func (n *StrLit) isConst() bool  { return true }

func (n *VarRef) eval(env Env) (Value, error) {
	v, ok := env.Lookup(n.Name)
	if !ok {
		return Value{}, newEvalError("unbound identifier %q", n.Name)
	}
	return v, nil
}

func (n *VarRef) freeVars(out []string) []string { return append(out, n.Name) }
func (n *VarRef) isConst() bool                  { return false }

func (n *BinOp) freeVars(out []string) []string {
	out = n.LHS.freeVars(out)
	return n.RHS.freeVars(out)
}

func (n *BinOp) isConst() bool { return n.LHS.isConst() && n.RHS.isConst() }

func (n *UnOp) freeVars(out []string) []string { return n.Arg.freeVars(out) }
func (n *UnOp) isConst() bool                  { return n.Arg.isConst() }

func (n *Call) freeVars(out []string) []string {
	for _, a := range n.Args {
		out = a.freeVars(out)
	}
	return out
}

func (n *Call) isConst() bool {
	for _, a := range n.Args {
		if !a.isConst() {
			return false
		}
	}
	return true
}

// FreeVars returns the set (deduplicated, order of first appearance) of
// identifiers that e references, directly or through sub-expressions.
// This backs the inflater's dependency-graph construction (spec §4.1,
// §4.2).
func FreeVars(e Expression) []string {
	raw := e.freeVars(nil)
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// IsConst reports whether e's value is the same for every environment,
// i.e. it contains no variable references. Grounded on the original
// implementation's AST::node::is_const() walk (original_source
// xyuv/src/config-parser/minicalc/ast.cpp), and computed without
// evaluating e.
func IsConst(e Expression) bool { return e.isConst() }

// Eval evaluates e against env.
func Eval(e Expression, env Env) (Value, error) { return e.eval(env) }
