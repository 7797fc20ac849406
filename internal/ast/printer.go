package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders a block as an indented S-expression tree, the way the
// `parse` CLI subcommand dumps a script's AST for inspection.
func Sprint(b Block) string {
	var sb strings.Builder
	for _, s := range b {
		printStmt(&sb, s, 0)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func printStmt(sb *strings.Builder, s Stmt, depth int) {
	indent(sb, depth)
	switch s := s.(type) {
	case *IfStmt:
		sb.WriteString("(if\n")
		for _, br := range s.Branches {
			indent(sb, depth+1)
			sb.WriteString("(branch ")
			sb.WriteString(printExpr(br.Cond))
			sb.WriteString("\n")
			for _, st := range br.Body {
				printStmt(sb, st, depth+2)
			}
			indent(sb, depth+1)
			sb.WriteString(")\n")
		}
		if s.Else != nil {
			indent(sb, depth+1)
			sb.WriteString("(else\n")
			for _, st := range s.Else {
				printStmt(sb, st, depth+2)
			}
			indent(sb, depth+1)
			sb.WriteString(")\n")
		}
		indent(sb, depth)
		sb.WriteString(")\n")
	case *WhileStmt:
		fmt.Fprintf(sb, "(while %s\n", printExpr(s.Cond))
		for _, st := range s.Body {
			printStmt(sb, st, depth+1)
		}
		indent(sb, depth)
		sb.WriteString(")\n")
	case *RepeatStmt:
		sb.WriteString("(repeat\n")
		for _, st := range s.Body {
			printStmt(sb, st, depth+1)
		}
		indent(sb, depth)
		fmt.Fprintf(sb, "until %s)\n", printExpr(s.Cond))
	case *NumericForStmt:
		step := "1"
		if s.Step != nil {
			step = printExpr(s.Step)
		}
		fmt.Fprintf(sb, "(for %s = %s, %s, %s\n", s.Name, printExpr(s.Start), printExpr(s.Stop), step)
		for _, st := range s.Body {
			printStmt(sb, st, depth+1)
		}
		indent(sb, depth)
		sb.WriteString(")\n")
	case *GenericForStmt:
		fmt.Fprintf(sb, "(for-in (%s) (%s)\n", strings.Join(s.Names, " "), joinExprs(s.Exprs))
		for _, st := range s.Body {
			printStmt(sb, st, depth+1)
		}
		indent(sb, depth)
		sb.WriteString(")\n")
	case *DoStmt:
		sb.WriteString("(do\n")
		for _, st := range s.Body {
			printStmt(sb, st, depth+1)
		}
		indent(sb, depth)
		sb.WriteString(")\n")
	case *LocalStmt:
		fmt.Fprintf(sb, "(local (%s) (%s))\n", strings.Join(s.Names, " "), joinExprs(s.Exprs))
	case *LocalFunctionStmt:
		fmt.Fprintf(sb, "(local-function %s (%s)\n", s.Name, strings.Join(s.Params, " "))
		for _, st := range s.Body {
			printStmt(sb, st, depth+1)
		}
		indent(sb, depth)
		sb.WriteString(")\n")
	case *FunctionDeclStmt:
		fmt.Fprintf(sb, "(function %s (%s)\n", strings.Join(s.Names, "."), strings.Join(s.Params, " "))
		for _, st := range s.Body {
			printStmt(sb, st, depth+1)
		}
		indent(sb, depth)
		sb.WriteString(")\n")
	case *ReturnStmt:
		fmt.Fprintf(sb, "(return %s)\n", joinExprs(s.Exprs))
	case *BreakStmt:
		sb.WriteString("(break)\n")
	case *AssignStmt:
		fmt.Fprintf(sb, "(assign (%s) (%s))\n", joinExprs(s.Lhs), joinExprs(s.Rhs))
	case *ExprStmt:
		fmt.Fprintf(sb, "%s\n", printExpr(s.X))
	default:
		fmt.Fprintf(sb, "(unknown-stmt %T)\n", s)
	}
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = printExpr(e)
	}
	return strings.Join(parts, " ")
}

func printExpr(e Expr) string {
	switch e := e.(type) {
	case *NilLit:
		return "nil"
	case *BoolLit:
		return strconv.FormatBool(e.Value)
	case *NumberLit:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case *StringLit:
		return strconv.Quote(e.Value)
	case *VarargsExpr:
		return "..."
	case *NameExpr:
		return e.Name
	case *IndexExpr:
		return fmt.Sprintf("(index %s %s)", printExpr(e.Target), printExpr(e.Key))
	case *FieldExpr:
		return fmt.Sprintf("(field %s %s)", printExpr(e.Target), e.Name)
	case *CallExpr:
		return fmt.Sprintf("(call %s %s)", printExpr(e.Fn), joinExprs(e.Args))
	case *MethodCallExpr:
		return fmt.Sprintf("(methodcall %s %s %s)", printExpr(e.Target), e.Name, joinExprs(e.Args))
	case *FunctionExpr:
		return fmt.Sprintf("(function (%s) ...)", strings.Join(e.Params, " "))
	case *TableConstructorExpr:
		return fmt.Sprintf("(table %d-fields)", len(e.Fields))
	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", e.Op, printExpr(e.Operand))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", e.Op, printExpr(e.Left), printExpr(e.Right))
	default:
		return fmt.Sprintf("(unknown-expr %T)", e)
	}
}
