package lox

import "fmt"

// ScanError wraps a lexical error with the line where it occured.
type ScanError struct {
	line    int
	message string
}

// NewScanError creates a new scanning error
func NewScanError(line int, message string) error {
	return &ScanError{line, message}
}

// newScanErrorFromToken converts an ERROR token into a reportable error
func newScanErrorFromToken(tok *Token) error {
	return NewScanError(tok.Line, tok.Err)
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"[line %d] Error: %s",
		err.line,
		err.message,
	)
}

// Line returns the line where the error occured
func (err *ScanError) Line() int {
	return err.line
}

// ParseError wraps a syntax error with the token where it was detected.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new syntax error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.token.Line,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.token.Line,
		err.token.Lexeme,
		err.message,
	)
}

// Token returns the offending token
func (err *ParseError) Token() *Token {
	return err.token
}

// Line returns the line of the offending token
func (err *ParseError) Line() int {
	return err.token.Line
}
