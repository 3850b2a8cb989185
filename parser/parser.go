package parser

// Parser consumes the scanner's token sequence and produces the program's
// statement list. Errors never abort the pass: each one is recorded and
// the parser synchronizes to the next statement boundary before resuming,
// so a single run surfaces every independent syntax error.
type Parser struct {
	tokens  []Token
	current int
	errs    ErrorList
}

func newParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) parseProgram() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

func (p *Parser) declaration() (Stmt, error) {
	if p.match(TokenVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(TokenIdentifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer Expr
	if p.match(TokenEqual) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TokenSemicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{
		Name:        name,
		Initializer: initializer,
	}, nil
}

func (p *Parser) statement() (Stmt, error) {
	if p.match(TokenPrint) {
		return p.printStatement()
	}
	if p.match(TokenLeftBrace) {
		return p.blockStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (Stmt, error) {
	keyword := p.previous()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{
		Keyword:    keyword,
		Expression: expr,
	}, nil
}

func (p *Parser) blockStatement() (Stmt, error) {
	var stmts []Stmt
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(TokenRightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return &BlockStmt{Statements: stmts}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}

// expression -> comma
func (p *Parser) expression() (Expr, error) {
	return p.comma()
}

// comma -> assignment ("," assignment)*
func (p *Parser) comma() (Expr, error) {
	expr, err := p.assignment()
	if err != nil {
		return nil, err
	}
	for p.match(TokenComma) {
		op := p.previous()
		right, err := p.assignment()
		if err != nil {
			return nil, err
		}
		expr = &Comma{
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}
	return expr, nil
}

// assignment -> ternary ("=" assignment)?
//
// The left side is parsed as an ordinary expression first; only a bare
// Variable node may be reinterpreted as an assignment target.
func (p *Parser) assignment() (Expr, error) {
	expr, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if p.match(TokenEqual) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if target, ok := expr.(*Variable); ok {
			return &Assign{
				Name:  target.Name,
				Value: value,
			}, nil
		}
		// Recorded but not propagated: the expression itself parsed fine,
		// so no synchronization is needed.
		p.errorAt(equals, "Invalid assignment target.")
	}
	return expr, nil
}

// ternary -> equality ("?" expression ":" ternary)?
//
// Right-associative: the else branch recurses into ternary, not the full
// expression, which keeps the comma operator out of the dangling branch.
func (p *Parser) ternary() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.match(TokenQuestion) {
		op := p.previous()
		thenExpr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenColon, "Expect ':' after expression."); err != nil {
			return nil, err
		}
		elseExpr, err := p.ternary()
		if err != nil {
			return nil, err
		}
		return &Ternary{
			Cond:     expr,
			Operator: op,
			Then:     thenExpr,
			Else:     elseExpr,
		}, nil
	}
	return expr, nil
}

// equality -> comparison (("!=" | "==") comparison)*
func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(TokenBangEqual, TokenEqualEqual) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &Binary{
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}
	return expr, nil
}

// comparison -> term ((">" | ">=" | "<" | "<=") term)*
func (p *Parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &Binary{
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}
	return expr, nil
}

// term -> factor (("-" | "+") factor)*
func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(TokenMinus, TokenPlus) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &Binary{
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}
	return expr, nil
}

// factor -> unary (("/" | "*") unary)*
func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(TokenSlash, TokenStar) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &Binary{
			Left:     expr,
			Operator: op,
			Right:    right,
		}
	}
	return expr, nil
}

// unary -> ("!" | "-") unary | primary
func (p *Parser) unary() (Expr, error) {
	if p.match(TokenBang, TokenMinus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{
			Operator: op,
			Right:    right,
		}, nil
	}
	return p.primary()
}

// primary -> NUMBER | STRING | "true" | "false" | "nil"
//          | "(" expression ")" | IDENTIFIER
func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(TokenFalse):
		return &Literal{Token: p.previous(), Value: false}, nil
	case p.match(TokenTrue):
		return &Literal{Token: p.previous(), Value: true}, nil
	case p.match(TokenNil):
		return &Literal{Token: p.previous(), Value: nil}, nil
	case p.match(TokenNumber, TokenString):
		tok := p.previous()
		return &Literal{Token: tok, Value: tok.Literal}, nil
	case p.match(TokenIdentifier):
		return &Variable{Name: p.previous()}, nil
	case p.match(TokenLeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &Grouping{Expression: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}

// synchronize discards tokens until a likely statement boundary: just past
// a semicolon, or just before a keyword that begins a declaration or
// statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == TokenSemicolon {
			return
		}
		switch p.peek().Type {
		case TokenClass, TokenFun, TokenVar, TokenFor,
			TokenIf, TokenWhile, TokenPrint, TokenReturn:
			return
		}
		p.advance()
	}
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, message string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return tt == TokenEOF
	}
	return p.peek().Type == tt
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == TokenEOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

// errorAt records a SyntaxError against the given token and returns it.
// Errors at the EOF token are marked incomplete: the construct may still
// be finished by further input.
func (p *Parser) errorAt(tok Token, message string) error {
	where := " at '" + tok.Lexeme + "'"
	incomplete := false
	if tok.Type == TokenEOF {
		where = " at end"
		incomplete = true
	}
	return p.errs.add(&SyntaxError{
		Line:       tok.Line,
		Where:      where,
		Message:    message,
		Incomplete: incomplete,
	})
}
