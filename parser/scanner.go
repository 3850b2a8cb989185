package parser

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Scanner converts raw source text into a finite token sequence terminated
// by an EOF token. Scan errors are collected, not fatal: the scanner skips
// the offending input and keeps going so the parser can report everything
// found in one pass.
type Scanner struct {
	source  string
	tokens  []Token
	errs    ErrorList
	start   int
	current int
	line    int
}

// NewScanner prepares a scanner over the given source text.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// ScanTokens scans the whole source and returns the token sequence plus
// any lexical errors encountered along the way.
func (s *Scanner) ScanTokens() ([]Token, ErrorList) {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{
		Type: TokenEOF,
		Line: s.line,
	})
	return s.tokens, s.errs
}

func (s *Scanner) scanToken() {
	r := s.advance()
	switch r {
	case '(':
		s.addToken(TokenLeftParen)
	case ')':
		s.addToken(TokenRightParen)
	case '{':
		s.addToken(TokenLeftBrace)
	case '}':
		s.addToken(TokenRightBrace)
	case ',':
		s.addToken(TokenComma)
	case '.':
		s.addToken(TokenDot)
	case '-':
		s.addToken(TokenMinus)
	case '+':
		s.addToken(TokenPlus)
	case ';':
		s.addToken(TokenSemicolon)
	case '*':
		s.addToken(TokenStar)
	case '?':
		s.addToken(TokenQuestion)
	case ':':
		s.addToken(TokenColon)
	case '!':
		if s.match('=') {
			s.addToken(TokenBangEqual)
		} else {
			s.addToken(TokenBang)
		}
	case '=':
		if s.match('=') {
			s.addToken(TokenEqualEqual)
		} else {
			s.addToken(TokenEqual)
		}
	case '<':
		if s.match('=') {
			s.addToken(TokenLessEqual)
		} else {
			s.addToken(TokenLess)
		}
	case '>':
		if s.match('=') {
			s.addToken(TokenGreaterEqual)
		} else {
			s.addToken(TokenGreater)
		}
	case '/':
		if s.match('/') {
			s.skipLineComment()
		} else if s.match('*') {
			s.skipBlockComment()
		} else {
			s.addToken(TokenSlash)
		}
	case ' ', '\r', '\t':
		// whitespace
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(r):
			s.scanNumber()
		case isIdentifierStart(r):
			s.scanIdentifier()
		default:
			s.errorf("Unexpected character: %c", r)
		}
	}
}

func (s *Scanner) skipLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

// Block comments do not nest: the first */ closes the comment.
func (s *Scanner) skipBlockComment() {
	for !s.isAtEnd() {
		r := s.advance()
		if r == '\n' {
			s.line++
			continue
		}
		if r == '*' && s.match('/') {
			return
		}
	}
	s.incompleteErrorf("Unterminated block comment.")
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.incompleteErrorf("Unterminated string.")
		return
	}
	s.advance() // closing quote
	value := s.source[s.start+1 : s.current-1]
	s.addLiteralToken(TokenString, value)
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	value, err := strconv.ParseFloat(s.source[s.start:s.current], 64)
	if err != nil {
		s.errorf("Invalid number literal.")
		return
	}
	s.addLiteralToken(TokenNumber, value)
}

func (s *Scanner) scanIdentifier() {
	for isIdentifierPart(s.peek()) {
		s.advance()
	}
	lexeme := s.source[s.start:s.current]
	if keyword, ok := keywordToken(lexeme); ok {
		s.addToken(keyword)
		return
	}
	s.addToken(TokenIdentifier)
}

func keywordToken(lexeme string) (TokenType, bool) {
	switch lexeme {
	case "and":
		return TokenAnd, true
	case "class":
		return TokenClass, true
	case "else":
		return TokenElse, true
	case "false":
		return TokenFalse, true
	case "for":
		return TokenFor, true
	case "fun":
		return TokenFun, true
	case "if":
		return TokenIf, true
	case "nil":
		return TokenNil, true
	case "or":
		return TokenOr, true
	case "print":
		return TokenPrint, true
	case "return":
		return TokenReturn, true
	case "super":
		return TokenSuper, true
	case "this":
		return TokenThis, true
	case "true":
		return TokenTrue, true
	case "var":
		return TokenVar, true
	case "while":
		return TokenWhile, true
	default:
		return TokenEOF, false
	}
}

func (s *Scanner) advance() rune {
	r, w := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += w
	return r
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}
	r, w := utf8.DecodeRuneInString(s.source[s.current:])
	if r != expected {
		return false
	}
	s.current += w
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) peekNext() rune {
	if s.isAtEnd() {
		return 0
	}
	_, w := utf8.DecodeRuneInString(s.source[s.current:])
	if s.current+w >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current+w:])
	return r
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) addToken(tt TokenType) {
	s.addLiteralToken(tt, nil)
}

func (s *Scanner) addLiteralToken(tt TokenType, literal interface{}) {
	s.tokens = append(s.tokens, Token{
		Type:    tt,
		Lexeme:  s.source[s.start:s.current],
		Literal: literal,
		Line:    s.line,
	})
}

func (s *Scanner) errorf(format string, args ...interface{}) {
	s.errs.add(&SyntaxError{
		Line:    s.line,
		Message: fmt.Sprintf(format, args...),
	})
}

func (s *Scanner) incompleteErrorf(format string, args ...interface{}) {
	s.errs.add(&SyntaxError{
		Line:       s.line,
		Message:    fmt.Sprintf(format, args...),
		Incomplete: true,
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}
