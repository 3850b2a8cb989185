package lang

import (
	"fmt"
	"io"
	"os"

	"github.com/Maitgon/rlox/parser"
)

// RuntimeError halts the remaining statements of a run. Exactly one is
// reported per execution; earlier side effects stay.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

func runtimeErrorf(line int, format string, args ...interface{}) error {
	return &RuntimeError{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

// Interpreter walks the AST and executes it. The global environment
// persists for the interpreter's lifetime, so one instance can serve a
// whole REPL session.
type Interpreter struct {
	globals *Env
	stdout  io.Writer
}

// NewInterpreter constructs an interpreter rooted at a fresh global
// environment. A nil stdout falls back to os.Stdout.
func NewInterpreter(stdout io.Writer) *Interpreter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Interpreter{
		globals: NewEnv(nil),
		stdout:  stdout,
	}
}

// Globals exposes the global environment.
func (in *Interpreter) Globals() *Env {
	return in.globals
}

// Interpret executes statements in source order against the global
// environment. The first runtime error aborts the remainder.
func (in *Interpreter) Interpret(stmts []parser.Stmt) error {
	for _, stmt := range stmts {
		if err := in.execute(stmt, in.globals); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate computes a single expression in the global environment. The
// REPL uses it for implicit printing of bare expressions.
func (in *Interpreter) Evaluate(expr parser.Expr) (Value, error) {
	return in.evaluate(expr, in.globals)
}

func (in *Interpreter) execute(stmt parser.Stmt, env *Env) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := in.evaluate(s.Expression, env)
		return err
	case *parser.PrintStmt:
		val, err := in.evaluate(s.Expression, env)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(in.stdout, val.String())
		return err
	case *parser.VarStmt:
		val := Nil
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer, env)
			if err != nil {
				return err
			}
			val = v
		}
		env.Define(s.Name.Lexeme, val)
		return nil
	case *parser.BlockStmt:
		return in.executeBlock(s.Statements, NewEnv(env))
	default:
		return fmt.Errorf("unknown statement type %T", stmt)
	}
}

func (in *Interpreter) executeBlock(stmts []parser.Stmt, env *Env) error {
	for _, stmt := range stmts {
		if err := in.execute(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr parser.Expr, env *Env) (Value, error) {
	switch e := expr.(type) {
	case *parser.Literal:
		return literalValue(e)
	case *parser.Grouping:
		return in.evaluate(e.Expression, env)
	case *parser.Variable:
		val, err := env.Get(e.Name.Lexeme)
		if err != nil {
			return Value{}, runtimeErrorf(e.Name.Line, "%s", err.Error())
		}
		return val, nil
	case *parser.Assign:
		val, err := in.evaluate(e.Value, env)
		if err != nil {
			return Value{}, err
		}
		if err := env.Assign(e.Name.Lexeme, val); err != nil {
			return Value{}, runtimeErrorf(e.Name.Line, "%s", err.Error())
		}
		return val, nil
	case *parser.Unary:
		return in.evaluateUnary(e, env)
	case *parser.Binary:
		return in.evaluateBinary(e, env)
	case *parser.Comma:
		// Left operand runs for its side effects only.
		if _, err := in.evaluate(e.Left, env); err != nil {
			return Value{}, err
		}
		return in.evaluate(e.Right, env)
	case *parser.Ternary:
		cond, err := in.evaluate(e.Cond, env)
		if err != nil {
			return Value{}, err
		}
		// The non-taken branch is never evaluated.
		if cond.Truthy() {
			return in.evaluate(e.Then, env)
		}
		return in.evaluate(e.Else, env)
	default:
		return Value{}, fmt.Errorf("unknown expression type %T", expr)
	}
}

func literalValue(e *parser.Literal) (Value, error) {
	switch v := e.Value.(type) {
	case nil:
		return Nil, nil
	case bool:
		return BoolValue(v), nil
	case float64:
		return NumberValue(v), nil
	case string:
		return StringValue(v), nil
	default:
		return Value{}, runtimeErrorf(e.Token.Line, "Unexpected literal value %v.", v)
	}
}

func (in *Interpreter) evaluateUnary(e *parser.Unary, env *Env) (Value, error) {
	right, err := in.evaluate(e.Right, env)
	if err != nil {
		return Value{}, err
	}
	switch e.Operator.Type {
	case parser.TokenMinus:
		if right.Type != TypeNumber {
			return Value{}, runtimeErrorf(e.Operator.Line, "Operand must be a number.")
		}
		return NumberValue(-right.Num()), nil
	case parser.TokenBang:
		return BoolValue(!right.Truthy()), nil
	default:
		return Value{}, runtimeErrorf(e.Operator.Line, "Unexpected unary operator '%s'.", e.Operator.Type)
	}
}

func (in *Interpreter) evaluateBinary(e *parser.Binary, env *Env) (Value, error) {
	left, err := in.evaluate(e.Left, env)
	if err != nil {
		return Value{}, err
	}
	right, err := in.evaluate(e.Right, env)
	if err != nil {
		return Value{}, err
	}

	op := e.Operator
	switch op.Type {
	case parser.TokenEqualEqual:
		return BoolValue(left.Equal(right)), nil
	case parser.TokenBangEqual:
		return BoolValue(!left.Equal(right)), nil
	case parser.TokenPlus:
		return addValues(op, left, right)
	case parser.TokenMinus, parser.TokenStar, parser.TokenSlash:
		if left.Type != TypeNumber || right.Type != TypeNumber {
			return Value{}, runtimeErrorf(op.Line, "Operands must be numbers.")
		}
		switch op.Type {
		case parser.TokenMinus:
			return NumberValue(left.Num() - right.Num()), nil
		case parser.TokenStar:
			return NumberValue(left.Num() * right.Num()), nil
		default:
			if right.Num() == 0 {
				return Value{}, runtimeErrorf(op.Line, "Division by zero.")
			}
			return NumberValue(left.Num() / right.Num()), nil
		}
	case parser.TokenGreater, parser.TokenGreaterEqual, parser.TokenLess, parser.TokenLessEqual:
		if left.Type != TypeNumber || right.Type != TypeNumber {
			return Value{}, runtimeErrorf(op.Line, "Operands must be numbers.")
		}
		switch op.Type {
		case parser.TokenGreater:
			return BoolValue(left.Num() > right.Num()), nil
		case parser.TokenGreaterEqual:
			return BoolValue(left.Num() >= right.Num()), nil
		case parser.TokenLess:
			return BoolValue(left.Num() < right.Num()), nil
		default:
			return BoolValue(left.Num() <= right.Num()), nil
		}
	default:
		return Value{}, runtimeErrorf(op.Line, "Unexpected binary operator '%s'.", op.Type)
	}
}

// addValues implements +: numeric addition when both operands are numbers,
// string concatenation when either operand is a string (the other side is
// rendered first), a type error otherwise.
func addValues(op parser.Token, left, right Value) (Value, error) {
	if left.Type == TypeNumber && right.Type == TypeNumber {
		return NumberValue(left.Num() + right.Num()), nil
	}
	if left.Type == TypeString || right.Type == TypeString {
		return StringValue(left.String() + right.String()), nil
	}
	return Value{}, runtimeErrorf(op.Line, "Operands must be two numbers or include a string.")
}
