// Package grammar is a declarative reference for the Lox expression grammar.
// It is built with participle on top of the Lox scanner and is used as an
// oracle for the hand written parser and to print the grammar as EBNF.
package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

type Expression struct {
	Equality *Equality `parser:"@@"`
}

type Equality struct {
	Left  *Comparison   `parser:"@@"`
	Right []*OpEquality `parser:"@@*"`
}

type OpEquality struct {
	Op    string      `parser:"@( '!=' | '==' )"`
	Right *Comparison `parser:"@@"`
}

type Comparison struct {
	Left  *Term           `parser:"@@"`
	Right []*OpComparison `parser:"@@*"`
}

type OpComparison struct {
	Op    string `parser:"@( '>' | '>=' | '<' | '<=' )"`
	Right *Term  `parser:"@@"`
}

type Term struct {
	Left  *Factor   `parser:"@@"`
	Right []*OpTerm `parser:"@@*"`
}

type OpTerm struct {
	Op    string  `parser:"@( '-' | '+' )"`
	Right *Factor `parser:"@@"`
}

type Factor struct {
	Left  *Unary      `parser:"@@"`
	Right []*OpFactor `parser:"@@*"`
}

type OpFactor struct {
	Op    string `parser:"@( '/' | '*' )"`
	Right *Unary `parser:"@@"`
}

type Unary struct {
	Op      string   `parser:"  ( @( '!' | '-' )"`
	Operand *Unary   `parser:"    @@ )"`
	Primary *Primary `parser:"| @@"`
}

type Primary struct {
	Literal *string     `parser:"  @( NUMBER | STRING | 'true' | 'false' | 'nil' )"`
	Group   *Expression `parser:"| '(' @@ ')'"`
}

var exprParser = participle.MustBuild[Expression](
	participle.Lexer(LoxLexer),
)

// Parse parses a complete expression. Unlike the hand written parser, any
// token left after the expression is an error.
func Parse(src string) (*Expression, error) {
	return exprParser.ParseString("", src)
}

// EBNF returns the grammar in EBNF form.
func EBNF() string {
	return exprParser.String()
}

// Render prints the tree in the same parenthesized form as lox.AstPrinter.
func Render(expr *Expression) string {
	var b strings.Builder
	renderEquality(&b, expr.Equality)
	return b.String()
}

// fold writes `(op (op left r1) r2)...` for a left-associative chain.
func fold(b *strings.Builder, ops []string, left func(), rights []func()) {
	for i := len(ops) - 1; i >= 0; i-- {
		b.WriteString("(")
		b.WriteString(ops[i])
		b.WriteString(" ")
	}
	left()
	for _, right := range rights {
		b.WriteString(" ")
		right()
		b.WriteString(")")
	}
}

func renderEquality(b *strings.Builder, e *Equality) {
	ops := make([]string, len(e.Right))
	rights := make([]func(), len(e.Right))
	for i, r := range e.Right {
		r := r
		ops[i] = r.Op
		rights[i] = func() { renderComparison(b, r.Right) }
	}
	fold(b, ops, func() { renderComparison(b, e.Left) }, rights)
}

func renderComparison(b *strings.Builder, e *Comparison) {
	ops := make([]string, len(e.Right))
	rights := make([]func(), len(e.Right))
	for i, r := range e.Right {
		r := r
		ops[i] = r.Op
		rights[i] = func() { renderTerm(b, r.Right) }
	}
	fold(b, ops, func() { renderTerm(b, e.Left) }, rights)
}

func renderTerm(b *strings.Builder, e *Term) {
	ops := make([]string, len(e.Right))
	rights := make([]func(), len(e.Right))
	for i, r := range e.Right {
		r := r
		ops[i] = r.Op
		rights[i] = func() { renderFactor(b, r.Right) }
	}
	fold(b, ops, func() { renderFactor(b, e.Left) }, rights)
}

func renderFactor(b *strings.Builder, e *Factor) {
	ops := make([]string, len(e.Right))
	rights := make([]func(), len(e.Right))
	for i, r := range e.Right {
		r := r
		ops[i] = r.Op
		rights[i] = func() { renderUnary(b, r.Right) }
	}
	fold(b, ops, func() { renderUnary(b, e.Left) }, rights)
}

func renderUnary(b *strings.Builder, e *Unary) {
	if e.Primary != nil {
		renderPrimary(b, e.Primary)
		return
	}
	b.WriteString("(")
	b.WriteString(e.Op)
	b.WriteString(" ")
	renderUnary(b, e.Operand)
	b.WriteString(")")
}

func renderPrimary(b *strings.Builder, e *Primary) {
	if e.Literal != nil {
		b.WriteString(*e.Literal)
		return
	}
	b.WriteString("(group ")
	renderEquality(b, e.Group.Equality)
	b.WriteString(")")
}
