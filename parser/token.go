package parser

// TokenType enumerates lexical categories recognised by the Lox scanner.
type TokenType int

const (
	TokenEOF TokenType = iota

	// Single-character tokens
	TokenLeftParen  // (
	TokenRightParen // )
	TokenLeftBrace  // {
	TokenRightBrace // }
	TokenComma      // ,
	TokenDot        // .
	TokenMinus      // -
	TokenPlus       // +
	TokenSemicolon  // ;
	TokenSlash      // /
	TokenStar       // *
	TokenQuestion   // ?
	TokenColon      // :

	// One or two character tokens
	TokenBang         // !
	TokenBangEqual    // !=
	TokenEqual        // =
	TokenEqualEqual   // ==
	TokenGreater      // >
	TokenGreaterEqual // >=
	TokenLess         // <
	TokenLessEqual    // <=

	// Literals
	TokenIdentifier
	TokenNumber
	TokenString

	// Keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFor
	TokenFun
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile
)

func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenComma:
		return ","
	case TokenDot:
		return "."
	case TokenMinus:
		return "-"
	case TokenPlus:
		return "+"
	case TokenSemicolon:
		return ";"
	case TokenSlash:
		return "/"
	case TokenStar:
		return "*"
	case TokenQuestion:
		return "?"
	case TokenColon:
		return ":"
	case TokenBang:
		return "!"
	case TokenBangEqual:
		return "!="
	case TokenEqual:
		return "="
	case TokenEqualEqual:
		return "=="
	case TokenGreater:
		return ">"
	case TokenGreaterEqual:
		return ">="
	case TokenLess:
		return "<"
	case TokenLessEqual:
		return "<="
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenAnd:
		return "and"
	case TokenClass:
		return "class"
	case TokenElse:
		return "else"
	case TokenFalse:
		return "false"
	case TokenFor:
		return "for"
	case TokenFun:
		return "fun"
	case TokenIf:
		return "if"
	case TokenNil:
		return "nil"
	case TokenOr:
		return "or"
	case TokenPrint:
		return "print"
	case TokenReturn:
		return "return"
	case TokenSuper:
		return "super"
	case TokenThis:
		return "this"
	case TokenTrue:
		return "true"
	case TokenVar:
		return "var"
	case TokenWhile:
		return "while"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit produced by the scanner.
// Immutable once produced.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw source text of the token
	Literal interface{} // decoded literal value (float64 for numbers, string for strings)
	Line    int         // one-based source line
}
