package lox

import "fmt"

// Parser composes the syntax tree for the Lox language from a sequence of
// tokens, following the expression grammar in the package documentation.
//
// A "+", "/" or "*" in prefix position is still a syntax error, but it gets a
// dedicated message instead of "Expect expression.":
// + Unary '+' expressions are not supported.
// + Unary '/' expressions are not supported.
// + Unary '*' expressions are not supported.
type Parser struct {
	current  int
	tokens   []*Token
	reporter Reporter
}

// NewParser creates a new parser for the Lox language. A sequence that is not
// terminated by an EOF token gets one appended.
func NewParser(tokens []*Token, reporter Reporter) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Typ != EOF {
		line := 1
		if n > 0 {
			line = tokens[n-1].Line
		}
		terminated := make([]*Token, n, n+1)
		copy(terminated, tokens)
		tokens = append(terminated, NewToken(EOF, "", "", line))
	}
	return &Parser{0, tokens, reporter}
}

// Parse returns the expression at the start of the token sequence, or nil if
// the tokens contain a syntax error. The error is sent to the reporter.
func (parser *Parser) Parse() Expr {
	expr, err := parser.expression()
	if err != nil {
		parser.reporter.Report(err)
		return nil
	}
	return expr
}

// ParseAll is like Parse but also requires the expression to cover every
// token. Leftover tokens are reported as a syntax error at the first of them.
func (parser *Parser) ParseAll() Expr {
	expr := parser.Parse()
	if expr == nil {
		return nil
	}
	if !parser.isEOF() {
		parser.reporter.Report(NewParseError(parser.peek(), "Expect end of expression."))
		return nil
	}
	return expr
}

// expression --> equality ;
func (parser *Parser) expression() (Expr, error) {
	return parser.equality()
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `comparison` if does not hits "!=" or "==".
//
// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	return parser.binary(parser.comparison, BANG_EQUAL, EQUAL_EQUAL)
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (Expr, error) {
	return parser.binary(parser.term, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL)
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	return parser.binary(parser.factor, MINUS, PLUS)
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	return parser.binary(parser.unary, SLASH, STAR)
}

// binary parses one operand with the given higher precedence rule, then folds
// every following (operator, operand) pair to the left.
func (parser *Parser) binary(operand func() (Expr, error), ops ...TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for parser.match(ops...) {
		op := parser.prev()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// unary --> ( "!" | "-" | "+" | "/" | "*" ) unary
//         | primary ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(BANG, MINUS, PLUS, SLASH, STAR) {
		op := parser.prev()
		switch expr, err := parser.unary(); op.Typ {
		case PLUS, SLASH, STAR:
			err = NewParseError(
				op,
				fmt.Sprintf("Unary '%s' expressions are not supported.", op.Lexeme),
			)
			fallthrough
		default:
			if err != nil {
				return nil, err
			}
			return NewUnaryExpr(op, expr), nil
		}
	}
	return parser.primary()
}

// primary --> NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(FALSE, TRUE, NIL, NUMBER, STRING) {
		return NewLiteralExpr(parser.prev()), nil
	}
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return NewGroupingExpr(expr), nil
	}
	if tok := parser.peek(); !tok.OK() {
		return nil, NewParseError(tok, fmt.Sprintf("Invalid token: %s", tok.Err))
	}
	return nil, NewParseError(parser.peek(), "Expect expression.")
}

// match consumes the current token if its type is one of the given types,
// which are tried in order.
func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return NewParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	return parser.peek().Typ == tt
}

// advance consumes the current token and returns it. The cursor never moves
// past EOF.
func (parser *Parser) advance() *Token {
	if parser.isEOF() {
		return parser.peek()
	}
	parser.current++
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

// synchronize discards tokens until the parser is likely at the beginning of
// the next statement.
func (parser *Parser) synchronize() {
	parser.advance()
	for !parser.isEOF() {
		if parser.prev().Typ == SEMICOLON {
			return
		}
		switch parser.peek().Typ {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		parser.advance()
	}
}
