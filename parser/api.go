package parser

// Parse scans and parses a complete source unit. On failure the returned
// error is an ErrorList carrying every scan and parse error found in one
// synchronization-enabled pass; callers must not evaluate the statements
// when the error is non-nil.
func Parse(src string) ([]Stmt, error) {
	scanner := NewScanner(src)
	tokens, lexErrs := scanner.ScanTokens()
	p := newParser(tokens)
	p.errs = lexErrs
	stmts := p.parseProgram()
	return stmts, p.errs.Err()
}

// ParseExpression parses a source unit consisting of exactly one bare
// expression with no trailing statement form. The REPL uses it to echo
// expression values without requiring a print statement or semicolon.
func ParseExpression(src string) (Expr, error) {
	scanner := NewScanner(src)
	tokens, lexErrs := scanner.ScanTokens()
	p := newParser(tokens)
	p.errs = lexErrs
	expr, err := p.expression()
	if err == nil && !p.isAtEnd() {
		p.errorAt(p.peek(), "Expect end of expression.")
	}
	if err := p.errs.Err(); err != nil {
		return nil, err
	}
	return expr, nil
}
