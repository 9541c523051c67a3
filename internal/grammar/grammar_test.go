package grammar

import (
	"io"
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltungv/lox/plox/internal/lox"
)

func TestLexerSymbols(t *testing.T) {
	symbols := LoxLexer.Symbols()

	assert.Equal(t, lexer.EOF, symbols["EOF"])
	assert.Equal(t, lexer.TokenType(lox.NUMBER), symbols["NUMBER"])
	assert.Len(t, symbols, len(lox.TokenTypes()))
}

func TestLexerTokens(t *testing.T) {
	lex, err := LoxLexer.Lex("test.lox", strings.NewReader("1 +\n\"a\""))
	require.NoError(t, err)

	var got []lexer.Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		got = append(got, tok)
		if tok.EOF() {
			break
		}
	}

	require.Len(t, got, 4)
	assert.Equal(t, "1", got[0].Value)
	assert.Equal(t, lexer.TokenType(lox.PLUS), got[1].Type)
	assert.Equal(t, "\"a\"", got[2].Value)
	assert.Equal(t, 2, got[2].Pos.Line)
	assert.Equal(t, "test.lox", got[2].Pos.Filename)
	assert.Equal(t, lexer.EOF, got[3].Type)

	// the lexer stays at EOF once reached
	tok, err := lex.Next()
	require.NoError(t, err)
	assert.True(t, tok.EOF())
}

func TestLexerErrorToken(t *testing.T) {
	lex, err := LoxLexer.Lex("", strings.NewReader("@"))
	require.NoError(t, err)

	_, err = lex.Next()
	assert.ErrorContains(t, err, "Unexpected character.")
}

func TestReferenceAgreesWithParser(t *testing.T) {
	sources := []string{
		"1",
		"\"str\"",
		"true",
		"false",
		"nil",
		"-(10 + 5)",
		"1 - 2 - 3",
		"6 / 3 * 2",
		"2 * -3",
		"6 - 3 * 2",
		"1 == 2 < 3",
		"false == 3 < 2",
		"!true == !!false",
		"(1 + 2) * (3 - 4) / 5",
		"1 <= 2 >= 3 > 4 < 5",
		"((((1))))",
		"1 != 2 == \"x\"",
	}

	printer := &lox.AstPrinter{}
	for _, src := range sources {
		report := lox.NewSimpleReporter(io.Discard)
		expr, _ := lox.Run(src, report)
		require.NotNil(t, expr, "source %q", src)

		ref, err := Parse(src)
		require.NoError(t, err, "source %q", src)

		assert.Equal(t, printer.Print(expr), Render(ref), "source %q", src)
	}
}

func TestParsersRejectInvalid(t *testing.T) {
	sources := []string{
		"",
		"(1",
		"()",
		"1 +",
		"+1",
		"x",
		"@",
		"1 2",
		"1 )",
		"1 + 2 3 4",
	}

	for _, src := range sources {
		_, err := Parse(src)
		assert.Error(t, err, "source %q", src)

		expr, _ := lox.Run(src, lox.NewSimpleReporter(io.Discard))
		assert.Nil(t, expr, "source %q", src)
	}
}

func TestEBNF(t *testing.T) {
	ebnf := EBNF()

	for _, rule := range []string{"Expression", "Equality", "Comparison", "Term", "Factor", "Unary", "Primary"} {
		assert.Contains(t, ebnf, rule)
	}
	assert.Contains(t, ebnf, "NUMBER")
}
