package lox

import "unicode"

// Run scans the source, reports every lexical error, and parses the tokens
// into a single expression when the scan was clean. Tokens left after the
// expression are a syntax error. The expression is nil if any error was
// reported.
func Run(source string, reporter Reporter) (Expr, []*Token) {
	tokens := NewScanner(source).Scan()
	if ReportScanErrors(tokens, reporter) > 0 {
		return nil, tokens
	}
	return NewParser(tokens, reporter).ParseAll(), tokens
}

// ReportScanErrors sends every ERROR token to the reporter in source order and
// returns how many there were.
func ReportScanErrors(tokens []*Token, reporter Reporter) int {
	n := 0
	for _, tok := range tokens {
		if !tok.OK() {
			reporter.Report(newScanErrorFromToken(tok))
			n++
		}
	}
	return n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return isBeginIdent(r) || unicode.IsDigit(r)
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
