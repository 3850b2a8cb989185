package parser

import (
	"strings"
	"testing"
)

func scanAllTokens(t *testing.T, src string) []Token {
	t.Helper()
	tokens, errs := NewScanner(src).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	return tokens
}

func TestScannerOperatorsAndPunctuation(t *testing.T) {
	src := "( ) { } , . - + ; / * ? : ! != = == > >= < <="
	tokens := scanAllTokens(t, src)
	tokens = tokens[:len(tokens)-1] // drop EOF

	want := []TokenType{
		TokenLeftParen, TokenRightParen, TokenLeftBrace, TokenRightBrace,
		TokenComma, TokenDot, TokenMinus, TokenPlus, TokenSemicolon,
		TokenSlash, TokenStar, TokenQuestion, TokenColon,
		TokenBang, TokenBangEqual, TokenEqual, TokenEqualEqual,
		TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual,
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: expected type %v, got %v", i, tt, tokens[i].Type)
		}
	}
}

func TestScannerIdentifiersAndKeywords(t *testing.T) {
	src := "and class else false for fun if nil or print return super this true var while foo _bar baz123"
	tokens := scanAllTokens(t, src)
	tokens = tokens[:len(tokens)-1]

	want := []struct {
		typ    TokenType
		lexeme string
	}{
		{TokenAnd, "and"},
		{TokenClass, "class"},
		{TokenElse, "else"},
		{TokenFalse, "false"},
		{TokenFor, "for"},
		{TokenFun, "fun"},
		{TokenIf, "if"},
		{TokenNil, "nil"},
		{TokenOr, "or"},
		{TokenPrint, "print"},
		{TokenReturn, "return"},
		{TokenSuper, "super"},
		{TokenThis, "this"},
		{TokenTrue, "true"},
		{TokenVar, "var"},
		{TokenWhile, "while"},
		{TokenIdentifier, "foo"},
		{TokenIdentifier, "_bar"},
		{TokenIdentifier, "baz123"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		tok := tokens[i]
		if tok.Type != tt.typ {
			t.Errorf("token %d: expected type %v, got %v", i, tt.typ, tok.Type)
		}
		if tok.Lexeme != tt.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, tt.lexeme, tok.Lexeme)
		}
	}
}

func TestScannerNumberLiterals(t *testing.T) {
	src := "0 123 3.14 10"
	tokens := scanAllTokens(t, src)
	tokens = tokens[:len(tokens)-1]

	want := []float64{0, 123, 3.14, 10}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, value := range want {
		tok := tokens[i]
		if tok.Type != TokenNumber {
			t.Errorf("token %d: expected number type, got %v", i, tok.Type)
		}
		if tok.Literal != value {
			t.Errorf("token %d: expected literal %v, got %v", i, value, tok.Literal)
		}
	}
}

func TestScannerNumberDotWithoutFraction(t *testing.T) {
	// A trailing dot is not part of the number.
	tokens := scanAllTokens(t, "1.foo")
	if tokens[0].Type != TokenNumber || tokens[0].Literal != 1.0 {
		t.Fatalf("expected number 1, got %v %v", tokens[0].Type, tokens[0].Literal)
	}
	if tokens[1].Type != TokenDot {
		t.Fatalf("expected dot token, got %v", tokens[1].Type)
	}
	if tokens[2].Type != TokenIdentifier || tokens[2].Lexeme != "foo" {
		t.Fatalf("expected identifier foo, got %v %q", tokens[2].Type, tokens[2].Lexeme)
	}
}

func TestScannerStringLiterals(t *testing.T) {
	tokens := scanAllTokens(t, `"hello" "two words"`)
	tokens = tokens[:len(tokens)-1]

	want := []string{"hello", "two words"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, value := range want {
		tok := tokens[i]
		if tok.Type != TokenString {
			t.Errorf("token %d: expected string type, got %v", i, tok.Type)
		}
		if tok.Literal != value {
			t.Errorf("token %d: expected literal %q, got %v", i, value, tok.Literal)
		}
	}
}

func TestScannerMultilineStringAdvancesLine(t *testing.T) {
	tokens := scanAllTokens(t, "\"a\nb\" x")
	if tokens[0].Type != TokenString || tokens[0].Literal != "a\nb" {
		t.Fatalf("expected multiline string literal, got %v %v", tokens[0].Type, tokens[0].Literal)
	}
	if tokens[1].Type != TokenIdentifier || tokens[1].Line != 2 {
		t.Fatalf("expected identifier on line 2, got %v line %d", tokens[1].Type, tokens[1].Line)
	}
}

func TestScannerUnterminatedString(t *testing.T) {
	_, errs := NewScanner(`"never closed`).ScanTokens()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Error(), "Unterminated string.") {
		t.Fatalf("expected unterminated string error, got %v", errs[0])
	}
	if !errs[0].Incomplete {
		t.Fatalf("expected unterminated string to be marked incomplete")
	}
}

func TestScannerComments(t *testing.T) {
	src := "1 // line comment\n/* block\ncomment */ 2"
	tokens := scanAllTokens(t, src)
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Literal != 1.0 || tokens[1].Literal != 2.0 {
		t.Fatalf("expected numbers 1 and 2, got %v and %v", tokens[0].Literal, tokens[1].Literal)
	}
	if tokens[1].Line != 3 {
		t.Fatalf("expected second number on line 3, got %d", tokens[1].Line)
	}
}

func TestScannerBlockCommentsDoNotNest(t *testing.T) {
	// The first */ closes the comment, so the trailing */ is scanned as
	// tokens in their own right.
	tokens, errs := NewScanner("/* outer /* inner */ 1 */").ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	tokens = tokens[:len(tokens)-1]
	want := []TokenType{TokenNumber, TokenStar, TokenSlash}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: expected %v, got %v", i, tt, tokens[i].Type)
		}
	}
}

func TestScannerUnterminatedBlockComment(t *testing.T) {
	_, errs := NewScanner("1 /* never closed").ScanTokens()
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "Unterminated block comment.") {
		t.Fatalf("expected unterminated block comment error, got %v", errs)
	}
	if !errs[0].Incomplete {
		t.Fatalf("expected unterminated block comment to be marked incomplete")
	}
}

func TestScannerUnexpectedCharacter(t *testing.T) {
	tokens, errs := NewScanner("1 @ 2").ScanTokens()
	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "Unexpected character") {
		t.Fatalf("expected unexpected character error, got %v", errs)
	}
	// Scanning continues past the bad character.
	tokens = tokens[:len(tokens)-1]
	if len(tokens) != 2 {
		t.Fatalf("expected scanning to continue, got %d tokens", len(tokens))
	}
}

func TestScannerTracksLines(t *testing.T) {
	tokens := scanAllTokens(t, "1\n2\n\n3")
	wantLines := []int{1, 2, 4}
	for i, line := range wantLines {
		if tokens[i].Line != line {
			t.Errorf("token %d: expected line %d, got %d", i, line, tokens[i].Line)
		}
	}
}
