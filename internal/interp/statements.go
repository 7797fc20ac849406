package interp

import (
	"github.com/redis-eval/redis-eval/internal/ast"
	"github.com/redis-eval/redis-eval/internal/value"
)

// execBlock runs a block's statements in the scope the caller has
// already set up (blocks share a scope per spec.md §3; callers create a
// fresh Environment per if-branch/loop-iteration/do-block before
// calling this, not per statement).
func (ip *Interpreter) execBlock(env *Environment, block ast.Block) (controlFlow, error) {
	for _, stmt := range block {
		if err := ip.tick(stmt.Pos()); err != nil {
			return none, err
		}
		cf, err := ip.execStmt(env, stmt)
		if err != nil {
			return none, err
		}
		if cf.Kind != cfNone {
			return cf, nil
		}
	}
	return none, nil
}

func (ip *Interpreter) execStmt(env *Environment, stmt ast.Stmt) (controlFlow, error) {
	switch s := stmt.(type) {
	case *ast.IfStmt:
		return ip.execIf(env, s)
	case *ast.WhileStmt:
		return ip.execWhile(env, s)
	case *ast.RepeatStmt:
		return ip.execRepeat(env, s)
	case *ast.NumericForStmt:
		return ip.execNumericFor(env, s)
	case *ast.GenericForStmt:
		return ip.execGenericFor(env, s)
	case *ast.DoStmt:
		inner := NewEnclosedEnvironment(env)
		return ip.execBlock(inner, s.Body)
	case *ast.LocalStmt:
		return none, ip.execLocal(env, s)
	case *ast.LocalFunctionStmt:
		fn := &value.Function{Params: s.Params, IsVariadic: s.IsVariadic, Body: s.Body}
		env.Define(s.Name, value.FunctionVal(fn))
		return none, nil
	case *ast.FunctionDeclStmt:
		return none, ip.execFunctionDecl(env, s)
	case *ast.ReturnStmt:
		vals, err := ip.evalExprList(env, s.Exprs)
		if err != nil {
			return none, err
		}
		return ret(vals), nil
	case *ast.BreakStmt:
		return brk, nil
	case *ast.AssignStmt:
		return none, ip.execAssign(env, s)
	case *ast.ExprStmt:
		_, err := ip.evalMulti(env, s.X)
		return none, err
	default:
		return none, nil
	}
}

func (ip *Interpreter) execIf(env *Environment, s *ast.IfStmt) (controlFlow, error) {
	for _, branch := range s.Branches {
		cond, err := ip.evalExpr(env, branch.Cond)
		if err != nil {
			return none, err
		}
		if cond.Truthy() {
			inner := NewEnclosedEnvironment(env)
			return ip.execBlock(inner, branch.Body)
		}
	}
	if s.Else != nil {
		inner := NewEnclosedEnvironment(env)
		return ip.execBlock(inner, s.Else)
	}
	return none, nil
}

func (ip *Interpreter) execWhile(env *Environment, s *ast.WhileStmt) (controlFlow, error) {
	for {
		if err := ip.tick(s.Pos()); err != nil {
			return none, err
		}
		cond, err := ip.evalExpr(env, s.Cond)
		if err != nil {
			return none, err
		}
		if !cond.Truthy() {
			return none, nil
		}
		inner := NewEnclosedEnvironment(env)
		cf, err := ip.execBlock(inner, s.Body)
		if err != nil {
			return none, err
		}
		switch cf.Kind {
		case cfBreak:
			return none, nil
		case cfReturn:
			return cf, nil
		}
	}
}

func (ip *Interpreter) execRepeat(env *Environment, s *ast.RepeatStmt) (controlFlow, error) {
	for {
		inner := NewEnclosedEnvironment(env)
		cf, err := ip.execBlock(inner, s.Body)
		if err != nil {
			return none, err
		}
		switch cf.Kind {
		case cfBreak:
			return none, nil
		case cfReturn:
			return cf, nil
		}
		cond, err := ip.evalExpr(inner, s.Cond)
		if err != nil {
			return none, err
		}
		if cond.Truthy() {
			return none, nil
		}
	}
}

func (ip *Interpreter) execNumericFor(env *Environment, s *ast.NumericForStmt) (controlFlow, error) {
	startV, err := ip.evalExpr(env, s.Start)
	if err != nil {
		return none, err
	}
	start, ok := value.ToNumber(startV)
	if !ok {
		return none, typeErr(s.Pos(), "'for' initial value must be a number")
	}
	stopV, err := ip.evalExpr(env, s.Stop)
	if err != nil {
		return none, err
	}
	stop, ok := value.ToNumber(stopV)
	if !ok {
		return none, typeErr(s.Pos(), "'for' limit must be a number")
	}
	step := 1.0
	if s.Step != nil {
		stepV, err := ip.evalExpr(env, s.Step)
		if err != nil {
			return none, err
		}
		step, ok = value.ToNumber(stepV)
		if !ok {
			return none, typeErr(s.Pos(), "'for' step must be a number")
		}
	}
	if step == 0 {
		return none, typeErr(s.Pos(), "'for' step is zero")
	}

	for i := start; (step > 0 && i <= stop) || (step < 0 && i >= stop); i += step {
		if err := ip.tick(s.Pos()); err != nil {
			return none, err
		}
		inner := NewEnclosedEnvironment(env)
		inner.Define(s.Name, value.Number(i))
		cf, err := ip.execBlock(inner, s.Body)
		if err != nil {
			return none, err
		}
		switch cf.Kind {
		case cfBreak:
			return none, nil
		case cfReturn:
			return cf, nil
		}
	}
	return none, nil
}

func (ip *Interpreter) execGenericFor(env *Environment, s *ast.GenericForStmt) (controlFlow, error) {
	init, err := ip.evalExprList(env, s.Exprs)
	if err != nil {
		return none, err
	}
	iterFn := at(init, 0)
	state := at(init, 1)
	control := at(init, 2)

	for {
		if err := ip.tick(s.Pos()); err != nil {
			return none, err
		}
		results, err := ip.callValue(s.Pos(), iterFn, []value.Value{state, control})
		if err != nil {
			return none, err
		}
		if len(results) == 0 || results[0].IsNil() {
			return none, nil
		}
		control = results[0]
		inner := NewEnclosedEnvironment(env)
		for i, name := range s.Names {
			inner.Define(name, at(results, i))
		}
		cf, err := ip.execBlock(inner, s.Body)
		if err != nil {
			return none, err
		}
		switch cf.Kind {
		case cfBreak:
			return none, nil
		case cfReturn:
			return cf, nil
		}
	}
}

func at(vals []value.Value, i int) value.Value {
	if i < 0 || i >= len(vals) {
		return value.Nil
	}
	return vals[i]
}

func (ip *Interpreter) execLocal(env *Environment, s *ast.LocalStmt) error {
	vals, err := ip.evalExprList(env, s.Exprs)
	if err != nil {
		return err
	}
	for i, name := range s.Names {
		env.Define(name, at(vals, i))
	}
	return nil
}

func (ip *Interpreter) execFunctionDecl(env *Environment, s *ast.FunctionDeclStmt) error {
	fn := value.FunctionVal(&value.Function{Params: s.Params, IsVariadic: s.IsVariadic, Body: s.Body})
	if len(s.Names) == 1 {
		ip.globals[s.Names[0]] = fn
		return nil
	}
	root := ip.lookupName(env, s.Names[0])
	if root.Kind != value.KindTable {
		return typeErr(s.Pos(), "attempt to index a %s value", root.TypeName())
	}
	tbl := root.Table
	for _, name := range s.Names[1 : len(s.Names)-1] {
		next := tbl.Get(value.String(name))
		if next.Kind != value.KindTable {
			return typeErr(s.Pos(), "attempt to index a %s value", next.TypeName())
		}
		tbl = next.Table
	}
	tbl.Set(value.String(s.Names[len(s.Names)-1]), fn)
	return nil
}

func (ip *Interpreter) execAssign(env *Environment, s *ast.AssignStmt) error {
	vals, err := ip.evalExprList(env, s.Rhs)
	if err != nil {
		return err
	}
	for i, lhs := range s.Lhs {
		v := at(vals, i)
		if err := ip.assignLvalue(env, lhs, v); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) assignLvalue(env *Environment, lhs ast.Expr, v value.Value) error {
	switch e := lhs.(type) {
	case *ast.NameExpr:
		ip.assignName(env, e.Name, v)
		return nil
	case *ast.IndexExpr:
		target, err := ip.evalExpr(env, e.Target)
		if err != nil {
			return err
		}
		if target.Kind != value.KindTable {
			return typeErr(e.Pos(), "attempt to index a %s value", target.TypeName())
		}
		key, err := ip.evalExpr(env, e.Key)
		if err != nil {
			return err
		}
		target.Table.Set(key, v)
		return nil
	case *ast.FieldExpr:
		target, err := ip.evalExpr(env, e.Target)
		if err != nil {
			return err
		}
		if target.Kind != value.KindTable {
			return typeErr(e.Pos(), "attempt to index a %s value", target.TypeName())
		}
		target.Table.Set(value.String(e.Name), v)
		return nil
	default:
		return typeErr(lhs.Pos(), "cannot assign to this expression")
	}
}
