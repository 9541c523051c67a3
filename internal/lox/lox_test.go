package lox

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func tokEOF(line int) *Token {
	return NewToken(EOF, "", "", line)
}

func tok(typ TokenType, lexeme string) *Token {
	return NewToken(typ, lexeme, "", 1)
}

func num(lexeme string) *Token {
	return NewToken(NUMBER, lexeme, lexeme, 1)
}

func lit(t *Token) Expr {
	return NewLiteralExpr(t)
}
