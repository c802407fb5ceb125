/*
NAME
  eval.go

DESCRIPTION
  eval.go implements evaluation of binary operators, unary operators and
  builtin calls against an Env.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package expr

func (n *BinOp) eval(env Env) (Value, error) {
	lhs, err := n.LHS.eval(env)
	if err != nil {
		return Value{}, err
	}
	rhs, err := n.RHS.eval(env)
	if err != nil {
		return Value{}, err
	}

	switch n.Op {
	case "+", "-", "*", "/", "%", "**":
		return evalArith(n.Op, lhs, rhs)
	case "==", "!=":
		return evalEquality(n.Op, lhs, rhs)
	case "<", "<=", ">", ">=":
		return evalOrdering(n.Op, lhs, rhs)
	case "&&", "||":
		return evalLogical(n.Op, lhs, rhs)
	default:
		return Value{}, newTypeError("unknown binary operator %q", n.Op)
	}
}

func evalArith(op string, lhs, rhs Value) (Value, error) {
	if lhs.Kind != KindInt || rhs.Kind != KindInt {
		return Value{}, newTypeError("operator %q requires two ints, got %s and %s", op, lhs.Kind, rhs.Kind)
	}
	a, b := lhs.I, rhs.I
	switch op {
	case "+":
		return Int(a + b), nil
	case "-":
		return Int(a - b), nil
	case "*":
		return Int(a * b), nil
	case "/":
		if b == 0 {
			return Value{}, newEvalError("division by zero")
		}
		return Int(a / b), nil
	case "%":
		if b == 0 {
			return Value{}, newEvalError("modulo by zero")
		}
		return Int(a % b), nil
	case "**":
		if b < 0 {
			return Value{}, newEvalError("negative exponent %d", b)
		}
		return Int(ipow(a, b)), nil
	default:
		return Value{}, newTypeError("unknown arithmetic operator %q", op)
	}
}

// ipow is iterated multiplication, per spec.md §4.1: "** is iterated
// multiplication (non-negative exponent required)".
func ipow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func evalEquality(op string, lhs, rhs Value) (Value, error) {
	if lhs.Kind != rhs.Kind {
		return Value{}, newTypeError("operator %q requires matching types, got %s and %s", op, lhs.Kind, rhs.Kind)
	}
	var eq bool
	switch lhs.Kind {
	case KindInt:
		eq = lhs.I == rhs.I
	case KindBool:
		eq = lhs.B == rhs.B
	case KindString:
		eq = lhs.S == rhs.S
	}
	if op == "!=" {
		eq = !eq
	}
	return Bool(eq), nil
}

func evalOrdering(op string, lhs, rhs Value) (Value, error) {
	if lhs.Kind != rhs.Kind || (lhs.Kind != KindInt && lhs.Kind != KindBool) {
		return Value{}, newTypeError("operator %q requires two ints or two bools, got %s and %s", op, lhs.Kind, rhs.Kind)
	}
	var a, b int64
	if lhs.Kind == KindInt {
		a, b = lhs.I, rhs.I
	} else {
		a, b = boolToInt(lhs.B), boolToInt(rhs.B)
	}
	var res bool
	switch op {
	case "<":
		res = a < b
	case "<=":
		res = a <= b
	case ">":
		res = a > b
	case ">=":
		res = a >= b
	}
	return Bool(res), nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func evalLogical(op string, lhs, rhs Value) (Value, error) {
	if lhs.Kind != KindBool || rhs.Kind != KindBool {
		return Value{}, newTypeError("operator %q requires two bools, got %s and %s", op, lhs.Kind, rhs.Kind)
	}
	switch op {
	case "&&":
		return Bool(lhs.B && rhs.B), nil
	case "||":
		return Bool(lhs.B || rhs.B), nil
	default:
		return Value{}, newTypeError("unknown logical operator %q", op)
	}
}

func (n *UnOp) eval(env Env) (Value, error) {
	v, err := n.Arg.eval(env)
	if err != nil {
		return Value{}, err
	}
	switch n.Op {
	case "-":
		if v.Kind != KindInt {
			return Value{}, newTypeError("unary - requires int, got %s", v.Kind)
		}
		return Int(-v.I), nil
	case "!":
		if v.Kind != KindBool {
			return Value{}, newTypeError("unary ! requires bool, got %s", v.Kind)
		}
		return Bool(!v.B), nil
	default:
		return Value{}, newTypeError("unknown unary operator %q", n.Op)
	}
}

func (n *Call) eval(env Env) (Value, error) {
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := a.eval(env)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return callBuiltin(n.Name, args)
}

func callBuiltin(name string, args []Value) (Value, error) {
	switch name {
	case "abs":
		if err := arity(name, args, 1); err != nil {
			return Value{}, err
		}
		if args[0].Kind != KindInt {
			return Value{}, newTypeError("abs requires an int argument, got %s", args[0].Kind)
		}
		v := args[0].I
		if v < 0 {
			v = -v
		}
		return Int(v), nil

	case "gcd":
		if err := arity(name, args, 2); err != nil {
			return Value{}, err
		}
		a, b, err := twoPositiveInts(name, args)
		if err != nil {
			return Value{}, err
		}
		return Int(gcd(a, b)), nil

	case "lcm":
		if err := arity(name, args, 2); err != nil {
			return Value{}, err
		}
		a, b, err := twoPositiveInts(name, args)
		if err != nil {
			return Value{}, err
		}
		return Int(a / gcd(a, b) * b), nil

	case "next_multiple":
		if err := arity(name, args, 2); err != nil {
			return Value{}, err
		}
		if args[0].Kind != KindInt || args[1].Kind != KindInt {
			return Value{}, newTypeError("next_multiple requires two ints")
		}
		base, mult := args[0].I, args[1].I
		if mult < 1 {
			return Value{}, newEvalError("next_multiple requires multiplier >= 1, got %d", mult)
		}
		if base <= 0 {
			return Int(0), nil
		}
		rem := base % mult
		if rem == 0 {
			return Int(base), nil
		}
		return Int(base + (mult - rem)), nil

	case "int":
		if err := arity(name, args, 1); err != nil {
			return Value{}, err
		}
		switch args[0].Kind {
		case KindInt:
			return args[0], nil
		case KindBool:
			return Int(boolToInt(args[0].B)), nil
		default:
			return Value{}, newTypeError("int() does not support %s", args[0].Kind)
		}

	case "bool":
		if err := arity(name, args, 1); err != nil {
			return Value{}, err
		}
		switch args[0].Kind {
		case KindBool:
			return args[0], nil
		case KindInt:
			return Bool(args[0].I != 0), nil
		default:
			return Value{}, newTypeError("bool() does not support %s", args[0].Kind)
		}

	case "str":
		if err := arity(name, args, 1); err != nil {
			return Value{}, err
		}
		switch args[0].Kind {
		case KindString:
			return args[0], nil
		case KindInt:
			return Str(itoa(args[0].I)), nil
		case KindBool:
			if args[0].B {
				return Str("true"), nil
			}
			return Str("false"), nil
		}
		return Value{}, newTypeError("str() does not support %s", args[0].Kind)

	case "if":
		if err := arity(name, args, 3); err != nil {
			return Value{}, err
		}
		if args[0].Kind != KindBool {
			return Value{}, newTypeError("if() condition must be bool, got %s", args[0].Kind)
		}
		if args[1].Kind != args[2].Kind {
			return Value{}, newTypeError("if() branches must match in type, got %s and %s", args[1].Kind, args[2].Kind)
		}
		if args[0].B {
			return args[1], nil
		}
		return args[2], nil

	default:
		return Value{}, newTypeError("unknown builtin %q", name)
	}
}

func arity(name string, args []Value, n int) error {
	if len(args) != n {
		return newTypeError("%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func twoPositiveInts(name string, args []Value) (int64, int64, error) {
	if args[0].Kind != KindInt || args[1].Kind != KindInt {
		return 0, 0, newTypeError("%s requires two ints", name)
	}
	a, b := args[0].I, args[1].I
	if a <= 0 || b <= 0 {
		return 0, 0, newEvalError("%s requires positive arguments, got %d and %d", name, a, b)
	}
	return a, b, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
