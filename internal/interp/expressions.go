package interp

import (
	"math"
	"strings"

	"github.com/redis-eval/redis-eval/internal/ast"
	"github.com/redis-eval/redis-eval/internal/token"
	"github.com/redis-eval/redis-eval/internal/value"
)

// evalExpr evaluates e to a single value, truncating any multi-value
// result (call, method call, varargs) to its first value per spec.md
// §4.4's expansion rule.
func (ip *Interpreter) evalExpr(env *Environment, e ast.Expr) (value.Value, error) {
	vals, err := ip.evalMulti(env, e)
	if err != nil {
		return value.Nil, err
	}
	return at(vals, 0), nil
}

// evalMulti evaluates e, returning every value it yields. Only
// CallExpr/MethodCallExpr/VarargsExpr can yield more than one.
func (ip *Interpreter) evalMulti(env *Environment, e ast.Expr) ([]value.Value, error) {
	switch ex := e.(type) {
	case *ast.NilLit:
		return []value.Value{value.Nil}, nil
	case *ast.BoolLit:
		return []value.Value{value.Bool(ex.Value)}, nil
	case *ast.NumberLit:
		return []value.Value{value.Number(ex.Value)}, nil
	case *ast.StringLit:
		return []value.Value{value.String(ex.Value)}, nil
	case *ast.VarargsExpr:
		return env.Varargs(), nil
	case *ast.NameExpr:
		return []value.Value{ip.lookupName(env, ex.Name)}, nil
	case *ast.IndexExpr:
		v, err := ip.evalIndex(env, ex)
		return []value.Value{v}, err
	case *ast.FieldExpr:
		v, err := ip.evalField(env, ex)
		return []value.Value{v}, err
	case *ast.FunctionExpr:
		fn := &value.Function{Params: ex.Params, IsVariadic: ex.IsVariadic, Body: ex.Body}
		return []value.Value{value.FunctionVal(fn)}, nil
	case *ast.TableConstructorExpr:
		v, err := ip.evalTableConstructor(env, ex)
		return []value.Value{v}, err
	case *ast.UnaryExpr:
		v, err := ip.evalUnary(env, ex)
		return []value.Value{v}, err
	case *ast.BinaryExpr:
		v, err := ip.evalBinary(env, ex)
		return []value.Value{v}, err
	case *ast.CallExpr:
		return ip.evalCall(env, ex)
	case *ast.MethodCallExpr:
		return ip.evalMethodCall(env, ex)
	default:
		return nil, typeErr(e.Pos(), "cannot evaluate this expression")
	}
}

// evalExprList evaluates a list of expressions, truncating every element
// but the last to its first value and expanding the last if it is a
// call/method-call/varargs expression, per spec.md §4.4.
func (ip *Interpreter) evalExprList(env *Environment, exprs []ast.Expr) ([]value.Value, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	var out []value.Value
	for i, e := range exprs {
		if i == len(exprs)-1 && ast.IsMultiValue(e) {
			vals, err := ip.evalMulti(env, e)
			if err != nil {
				return nil, err
			}
			out = append(out, vals...)
			continue
		}
		v, err := ip.evalExpr(env, e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (ip *Interpreter) evalIndex(env *Environment, e *ast.IndexExpr) (value.Value, error) {
	target, err := ip.evalExpr(env, e.Target)
	if err != nil {
		return value.Nil, err
	}
	if target.Kind != value.KindTable {
		return value.Nil, typeErr(e.Pos(), "attempt to index a %s value", target.TypeName())
	}
	key, err := ip.evalExpr(env, e.Key)
	if err != nil {
		return value.Nil, err
	}
	return target.Table.Get(key), nil
}

func (ip *Interpreter) evalField(env *Environment, e *ast.FieldExpr) (value.Value, error) {
	target, err := ip.evalExpr(env, e.Target)
	if err != nil {
		return value.Nil, err
	}
	if target.Kind != value.KindTable {
		return value.Nil, typeErr(e.Pos(), "attempt to index a %s value", target.TypeName())
	}
	return target.Table.Get(value.String(e.Name)), nil
}

func (ip *Interpreter) evalTableConstructor(env *Environment, e *ast.TableConstructorExpr) (value.Value, error) {
	tbl := value.NewTable()
	for i, field := range e.Fields {
		if field.Key != nil {
			key, err := ip.evalExpr(env, field.Key)
			if err != nil {
				return value.Nil, err
			}
			v, err := ip.evalExpr(env, field.Value)
			if err != nil {
				return value.Nil, err
			}
			tbl.Set(key, v)
			continue
		}
		if i == len(e.Fields)-1 && ast.IsMultiValue(field.Value) {
			vals, err := ip.evalMulti(env, field.Value)
			if err != nil {
				return value.Nil, err
			}
			for _, v := range vals {
				tbl.Append(v)
			}
			continue
		}
		v, err := ip.evalExpr(env, field.Value)
		if err != nil {
			return value.Nil, err
		}
		tbl.Append(v)
	}
	return value.TableVal(tbl), nil
}

func (ip *Interpreter) evalUnary(env *Environment, e *ast.UnaryExpr) (value.Value, error) {
	switch e.Op {
	case token.NOT:
		v, err := ip.evalExpr(env, e.Operand)
		if err != nil {
			return value.Nil, err
		}
		return value.Bool(!v.Truthy()), nil
	case token.MINUS:
		v, err := ip.evalExpr(env, e.Operand)
		if err != nil {
			return value.Nil, err
		}
		n, ok := value.ToNumber(v)
		if !ok {
			return value.Nil, typeErr(e.Pos(), "attempt to perform arithmetic on a %s value", v.TypeName())
		}
		return value.Number(-n), nil
	case token.HASH:
		v, err := ip.evalExpr(env, e.Operand)
		if err != nil {
			return value.Nil, err
		}
		switch v.Kind {
		case value.KindString:
			return value.Number(float64(len(v.Str))), nil
		case value.KindTable:
			return value.Number(float64(v.Table.Len())), nil
		default:
			return value.Nil, typeErr(e.Pos(), "attempt to get length of a %s value", v.TypeName())
		}
	default:
		return value.Nil, typeErr(e.Pos(), "unsupported unary operator %s", e.Op)
	}
}

func (ip *Interpreter) evalBinary(env *Environment, e *ast.BinaryExpr) (value.Value, error) {
	switch e.Op {
	case token.AND:
		left, err := ip.evalExpr(env, e.Left)
		if err != nil {
			return value.Nil, err
		}
		if !left.Truthy() {
			return left, nil
		}
		return ip.evalExpr(env, e.Right)
	case token.OR:
		left, err := ip.evalExpr(env, e.Left)
		if err != nil {
			return value.Nil, err
		}
		if left.Truthy() {
			return left, nil
		}
		return ip.evalExpr(env, e.Right)
	}

	left, err := ip.evalExpr(env, e.Left)
	if err != nil {
		return value.Nil, err
	}
	right, err := ip.evalExpr(env, e.Right)
	if err != nil {
		return value.Nil, err
	}

	switch e.Op {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.CARET:
		return ip.evalArith(e, left, right)
	case token.CONCAT:
		return ip.evalConcat(e, left, right)
	case token.EQ:
		return value.Bool(value.RawEqual(left, right)), nil
	case token.NEQ:
		return value.Bool(!value.RawEqual(left, right)), nil
	case token.LT, token.LE, token.GT, token.GE:
		return ip.evalCompare(e, left, right)
	default:
		return value.Nil, typeErr(e.Pos(), "unsupported binary operator %s", e.Op)
	}
}

func (ip *Interpreter) evalArith(e *ast.BinaryExpr, left, right value.Value) (value.Value, error) {
	a, ok1 := value.ToNumber(left)
	b, ok2 := value.ToNumber(right)
	if !ok1 || !ok2 {
		bad := left
		if ok1 {
			bad = right
		}
		return value.Nil, typeErr(e.Pos(), "attempt to perform arithmetic on a %s value", bad.TypeName())
	}
	switch e.Op {
	case token.PLUS:
		return value.Number(a + b), nil
	case token.MINUS:
		return value.Number(a - b), nil
	case token.STAR:
		return value.Number(a * b), nil
	case token.SLASH:
		return value.Number(a / b), nil
	case token.PERCENT:
		return value.Number(a - math.Floor(a/b)*b), nil
	case token.CARET:
		return value.Number(math.Pow(a, b)), nil
	default:
		return value.Nil, typeErr(e.Pos(), "unsupported arithmetic operator %s", e.Op)
	}
}

// evalConcat coerces both operands via ToDisplayString (§4.3): `..` never
// raises a TypeError, it renders booleans as true/false, nil as nil, and
// tables/functions as their bare type name, the same as tostring does.
func (ip *Interpreter) evalConcat(e *ast.BinaryExpr, left, right value.Value) (value.Value, error) {
	var b strings.Builder
	b.WriteString(value.ToDisplayString(left))
	b.WriteString(value.ToDisplayString(right))
	return value.String(b.String()), nil
}

func (ip *Interpreter) evalCompare(e *ast.BinaryExpr, left, right value.Value) (value.Value, error) {
	if left.Kind == value.KindNumber && right.Kind == value.KindNumber {
		return value.Bool(compareNum(e.Op, left.Num, right.Num)), nil
	}
	if left.Kind == value.KindString && right.Kind == value.KindString {
		return value.Bool(compareStr(e.Op, left.Str, right.Str)), nil
	}
	return value.Nil, typeErr(e.Pos(), "attempt to compare %s with %s", left.TypeName(), right.TypeName())
}

func compareNum(op token.Kind, a, b float64) bool {
	switch op {
	case token.LT:
		return a < b
	case token.LE:
		return a <= b
	case token.GT:
		return a > b
	case token.GE:
		return a >= b
	}
	return false
}

func compareStr(op token.Kind, a, b string) bool {
	switch op {
	case token.LT:
		return a < b
	case token.LE:
		return a <= b
	case token.GT:
		return a > b
	case token.GE:
		return a >= b
	}
	return false
}

func (ip *Interpreter) evalCall(env *Environment, e *ast.CallExpr) ([]value.Value, error) {
	fn, err := ip.evalExpr(env, e.Fn)
	if err != nil {
		return nil, err
	}
	args, err := ip.evalExprList(env, e.Args)
	if err != nil {
		return nil, err
	}
	return ip.callValue(e.Pos(), fn, args)
}

func (ip *Interpreter) evalMethodCall(env *Environment, e *ast.MethodCallExpr) ([]value.Value, error) {
	target, err := ip.evalExpr(env, e.Target)
	if err != nil {
		return nil, err
	}
	if target.Kind != value.KindTable {
		return nil, typeErr(e.Pos(), "attempt to index a %s value", target.TypeName())
	}
	fn := target.Table.Get(value.String(e.Name))
	args, err := ip.evalExprList(env, e.Args)
	if err != nil {
		return nil, err
	}
	args = append([]value.Value{target}, args...)
	return ip.callValue(e.Pos(), fn, args)
}
