package parser

// Expr represents an expression node. Expression trees are built once per
// parse and never mutated afterwards.
type Expr interface {
	exprNode()
}

// Literal is a number, string, boolean or nil literal. Value holds the
// decoded Go representation (float64, string, bool or nil).
type Literal struct {
	Token Token
	Value interface{}
}

func (*Literal) exprNode() {}

// Grouping is a parenthesised expression.
type Grouping struct {
	Expression Expr
}

func (*Grouping) exprNode() {}

// Unary represents prefix operator application.
type Unary struct {
	Operator Token
	Right    Expr
}

func (*Unary) exprNode() {}

// Binary represents infix operator application.
type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (*Binary) exprNode() {}

// Comma evaluates the left operand for its side effects only, then yields
// the right operand's value.
type Comma struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (*Comma) exprNode() {}

// Ternary is the conditional operator cond ? then : else.
type Ternary struct {
	Cond     Expr
	Operator Token // the '?' token
	Then     Expr
	Else     Expr
}

func (*Ternary) exprNode() {}

// Variable refers to a binding by name.
type Variable struct {
	Name Token
}

func (*Variable) exprNode() {}

// Assign mutates an existing binding and yields the assigned value.
type Assign struct {
	Name  Token
	Value Expr
}

func (*Assign) exprNode() {}

// Stmt represents a statement node.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates an expression for side effects.
type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) stmtNode() {}

// PrintStmt writes the rendered value of its expression to standard output.
type PrintStmt struct {
	Keyword    Token
	Expression Expr
}

func (*PrintStmt) stmtNode() {}

// VarStmt declares a binding, optionally initialised. A nil Initializer
// binds nil.
type VarStmt struct {
	Name        Token
	Initializer Expr // may be nil
}

func (*VarStmt) stmtNode() {}

// BlockStmt is a braced statement sequence executed in a child scope.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}
