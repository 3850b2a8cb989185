package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintExpr renders an expression tree in parenthesised prefix form,
// e.g. "1 + 2 * 3" becomes "(+ 1 (* 2 3))".
func PrintExpr(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		return printLiteral(e.Value)
	case *Grouping:
		return fmt.Sprintf("(group %s)", PrintExpr(e.Expression))
	case *Unary:
		return fmt.Sprintf("(%s %s)", e.Operator.Type, PrintExpr(e.Right))
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", e.Operator.Type, PrintExpr(e.Left), PrintExpr(e.Right))
	case *Comma:
		return fmt.Sprintf("(, %s %s)", PrintExpr(e.Left), PrintExpr(e.Right))
	case *Ternary:
		return fmt.Sprintf("(?: %s %s %s)", PrintExpr(e.Cond), PrintExpr(e.Then), PrintExpr(e.Else))
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return fmt.Sprintf("(assign %s %s)", e.Name.Lexeme, PrintExpr(e.Value))
	default:
		return fmt.Sprintf("<unknown expr %T>", expr)
	}
}

// PrintStatement renders a single statement in the same prefix form.
func PrintStatement(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return fmt.Sprintf("(expr %s)", PrintExpr(s.Expression))
	case *PrintStmt:
		return fmt.Sprintf("(print %s)", PrintExpr(s.Expression))
	case *VarStmt:
		if s.Initializer == nil {
			return fmt.Sprintf("(var %s)", s.Name.Lexeme)
		}
		return fmt.Sprintf("(var %s %s)", s.Name.Lexeme, PrintExpr(s.Initializer))
	case *BlockStmt:
		parts := make([]string, 0, len(s.Statements)+1)
		parts = append(parts, "block")
		for _, inner := range s.Statements {
			parts = append(parts, PrintStatement(inner))
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("<unknown stmt %T>", stmt)
	}
}

// PrintProgram renders a statement list, one statement per line.
func PrintProgram(stmts []Stmt) string {
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = PrintStatement(stmt)
	}
	return strings.Join(lines, "\n")
}

func printLiteral(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
