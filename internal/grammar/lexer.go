package grammar

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ltungv/lox/plox/internal/lox"
)

// LoxLexer exposes the Lox scanner as a participle lexer. Symbol names are the
// token type names, e.g. NUMBER or LEFT_PAREN.
var LoxLexer lexer.Definition = &loxLexerDefinition{}

type loxLexerDefinition struct{}

func (d *loxLexerDefinition) Symbols() map[string]lexer.TokenType {
	symbols := make(map[string]lexer.TokenType)
	for _, tt := range lox.TokenTypes() {
		symbols[tt.String()] = symbolType(tt)
	}
	return symbols
}

func (d *loxLexerDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(src))
}

func (d *loxLexerDefinition) LexString(filename string, src string) (lexer.Lexer, error) {
	return &loxLexer{
		filename: filename,
		tokens:   lox.NewScanner(src).Scan(),
	}, nil
}

// symbolType maps a Lox token type onto participle's token type space, where
// EOF has a fixed value.
func symbolType(tt lox.TokenType) lexer.TokenType {
	if tt == lox.EOF {
		return lexer.EOF
	}
	return lexer.TokenType(tt)
}

type loxLexer struct {
	filename string
	tokens   []*lox.Token
	current  int
}

// Next returns the next token. An ERROR token from the scanner is returned as
// a lexing error carrying its diagnostic.
func (l *loxLexer) Next() (lexer.Token, error) {
	tok := l.tokens[l.current]
	if tok.Typ != lox.EOF {
		l.current++
	}
	pos := lexer.Position{Filename: l.filename, Line: tok.Line, Column: 1}
	if !tok.OK() {
		return lexer.Token{}, participle.Errorf(pos, "%s", tok.Err)
	}
	return lexer.Token{Type: symbolType(tok.Typ), Value: tok.Lexeme, Pos: pos}, nil
}
