package lox

import (
	"encoding/json"
	"fmt"
)

// Token represents group a characters with additional information that was
// obtained during the scanning phase. Tokens of type ERROR carry a diagnostic
// in Err instead of failing the scan.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal string
	Line    int
	Err     string
}

// NewToken creates a new valid token
func NewToken(typ TokenType, lexeme string, literal string, line int) *Token {
	return &Token{Typ: typ, Lexeme: lexeme, Literal: literal, Line: line}
}

// NewErrorToken creates a token flagged with the given diagnostic
func NewErrorToken(lexeme string, message string, line int) *Token {
	return &Token{Typ: ERROR, Lexeme: lexeme, Line: line, Err: message}
}

// OK returns true if the token was scanned without errors
func (t *Token) OK() bool {
	return t.Err == ""
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %s", t.Typ, t.Lexeme, t.Literal)
}

// MarshalJSON encodes the token in the shape consumed by external drivers.
func (t *Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    TokenType `json:"kind"`
		Lexeme  string    `json:"lexeme"`
		Line    int       `json:"line"`
		Literal string    `json:"literal,omitempty"`
		Error   string    `json:"error"`
	}{t.Typ, t.Lexeme, t.Line, t.Literal, t.Err})
}

// KeywordTokens maps reserved words to their token type
var KeywordTokens = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// TokenType is the lexical category of a token
type TokenType int

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two chracter tokens
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals
	IDENTIFIER
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	EOF
	ERROR
)

var tokenTypeNames = [...]string{
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	COMMA:         "COMMA",
	DOT:           "DOT",
	MINUS:         "MINUS",
	PLUS:          "PLUS",
	SEMICOLON:     "SEMICOLON",
	SLASH:         "SLASH",
	STAR:          "STAR",
	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	IDENTIFIER:    "IDENTIFIER",
	STRING:        "STRING",
	NUMBER:        "NUMBER",
	AND:           "AND",
	CLASS:         "CLASS",
	ELSE:          "ELSE",
	FALSE:         "FALSE",
	FUN:           "FUN",
	FOR:           "FOR",
	IF:            "IF",
	NIL:           "NIL",
	OR:            "OR",
	PRINT:         "PRINT",
	RETURN:        "RETURN",
	SUPER:         "SUPER",
	THIS:          "THIS",
	TRUE:          "TRUE",
	VAR:           "VAR",
	WHILE:         "WHILE",
	EOF:           "EOF",
	ERROR:         "ERROR",
}

// TokenTypes returns every token type in declaration order
func TokenTypes() []TokenType {
	types := make([]TokenType, len(tokenTypeNames))
	for i := range tokenTypeNames {
		types[i] = TokenType(i)
	}
	return types
}

func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenTypeNames) {
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
	return tokenTypeNames[tt]
}

func (tt TokenType) MarshalText() ([]byte, error) {
	return []byte(tt.String()), nil
}
