/*
NAME
  errors.go

DESCRIPTION
  Error types raised while parsing and evaluating expressions.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package expr

import "fmt"

// ParseError reports an ill-formed expression.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: parse error at %d: %s", e.Pos, e.Msg)
}

// TypeError reports an operator/operand type mismatch.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return "expr: type error: " + e.Msg }

// EvalError reports a domain violation or unbound identifier discovered
// during evaluation.
type EvalError struct {
	Msg string
}

func (e *EvalError) Error() string { return "expr: eval error: " + e.Msg }

func newTypeError(format string, args ...interface{}) error {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

func newEvalError(format string, args ...interface{}) error {
	return &EvalError{Msg: fmt.Sprintf(format, args...)}
}

func newParseError(pos int, format string, args ...interface{}) error {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
