package lexer

import "fmt"

// TokenType represents the kind of lexical token produced while
// scanning a TOML document.
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ERROR
	TOKEN_COMMENT
	TOKEN_NEWLINE

	// Literals
	TOKEN_IDENTIFIER
	TOKEN_STRING
	TOKEN_INT
	TOKEN_DOUBLE
	TOKEN_DATE

	// Punctuation
	TOKEN_EQUALS
	TOKEN_COMMA
	TOKEN_COLON
	TOKEN_DOT
	TOKEN_BRACE_OPEN
	TOKEN_BRACE_CLOSE
	TOKEN_BRACKET_OPEN
	TOKEN_BRACKET_CLOSE
)

// Token represents a single lexical token.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{} // decoded value for STRING/INT/DOUBLE/DATE tokens
	Line    int
	Column  int
	File    string // source file path, empty for in-memory input
	Start   int    // rune offset in source where token starts
	End     int    // rune offset in source where token ends (exclusive)
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ERROR:
		return "ERROR"
	case TOKEN_COMMENT:
		return "COMMENT"
	case TOKEN_NEWLINE:
		return "NEWLINE"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_INT:
		return "INT"
	case TOKEN_DOUBLE:
		return "DOUBLE"
	case TOKEN_DATE:
		return "DATE"
	case TOKEN_EQUALS:
		return "EQUALS"
	case TOKEN_COMMA:
		return "COMMA"
	case TOKEN_COLON:
		return "COLON"
	case TOKEN_DOT:
		return "DOT"
	case TOKEN_BRACE_OPEN:
		return "BRACE_OPEN"
	case TOKEN_BRACE_CLOSE:
		return "BRACE_CLOSE"
	case TOKEN_BRACKET_OPEN:
		return "BRACKET_OPEN"
	case TOKEN_BRACKET_CLOSE:
		return "BRACKET_CLOSE"
	default:
		return "UNKNOWN"
	}
}

// String returns a string representation of the token, used in test
// failure messages.
func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s(%v) [%d:%d]", t.Type, t.Literal, t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%s) [%d:%d]", t.Type, t.Lexeme, t.Line, t.Column)
}
