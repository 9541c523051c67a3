package lox

import "unicode/utf8"

// Scanner parses the input source and collects all the tokens that can be
// found. Malformed input never stops the scan, it is recorded in the output as
// ERROR tokens.
type Scanner struct {
	line      int
	startLine int
	start     int
	current   int
	source    string
	tokens    []*Token
}

// NewScanner creates a new Lox token scanner. Lexemes are byte slices of the
// source, so malformed UTF-8 is kept as is.
func NewScanner(source string) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. The returned sequence always ends with exactly one EOF token.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		scanner.startLine = scanner.line
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.line++
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN, "")
		case ')':
			scanner.addToken(RIGHT_PAREN, "")
		case '{':
			scanner.addToken(LEFT_BRACE, "")
		case '}':
			scanner.addToken(RIGHT_BRACE, "")
		case ',':
			scanner.addToken(COMMA, "")
		case '.':
			scanner.addToken(DOT, "")
		case '-':
			scanner.addToken(MINUS, "")
		case '+':
			scanner.addToken(PLUS, "")
		case ';':
			scanner.addToken(SEMICOLON, "")
		case '*':
			scanner.addToken(STAR, "")
		// Double character tokens
		case '!':
			if scanner.match('=') {
				scanner.addToken(BANG_EQUAL, "")
			} else {
				scanner.addToken(BANG, "")
			}
		case '=':
			if scanner.match('=') {
				scanner.addToken(EQUAL_EQUAL, "")
			} else {
				scanner.addToken(EQUAL, "")
			}
		case '<':
			if scanner.match('=') {
				scanner.addToken(LESS_EQUAL, "")
			} else {
				scanner.addToken(LESS, "")
			}
		case '>':
			if scanner.match('=') {
				scanner.addToken(GREATER_EQUAL, "")
			} else {
				scanner.addToken(GREATER, "")
			}
		case '/':
			if scanner.match('/') {
				// consume the comment, but keep the \n at the end of line so line
				// counting can work correctly
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else {
				scanner.addToken(SLASH, "")
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if isDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.addError("Unexpected character.")
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", "", scanner.line),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanString() {
	// read until EOF or found a maching '"' --> our string includes \n
	for scanner.peek() != '"' && scanner.hasNext() {
		if scanner.peek() == '\n' {
			scanner.line++
		}
		scanner.advance()
	}

	if !scanner.hasNext() {
		scanner.addError("Unterminated string.")
		return
	}
	// consume '"'
	scanner.advance()
	// content between '"' pair
	literal := scanner.source[scanner.start+1 : scanner.current-1]
	scanner.addToken(STRING, literal)
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// a '.' only belongs to the number when a digit follows it
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	lexeme := scanner.source[scanner.start:scanner.current]
	scanner.addToken(NUMBER, lexeme)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := scanner.source[scanner.start:scanner.current]
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		scanner.addToken(tokenType, "")
	} else {
		scanner.addToken(IDENTIFIER, "")
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal
func (scanner *Scanner) addToken(typ TokenType, literal string) {
	lexeme := scanner.source[scanner.start:scanner.current]
	tok := NewToken(typ, lexeme, literal, scanner.startLine)
	scanner.tokens = append(scanner.tokens, tok)
}

// addError appends the lexeme from `start` to `current` as an ERROR token
func (scanner *Scanner) addError(message string) {
	lexeme := scanner.source[scanner.start:scanner.current]
	tok := NewErrorToken(lexeme, message, scanner.startLine)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(scanner.source[scanner.current:])
	scanner.current += size
	return r
}

// match checks if the rune at the current possition is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	r, size := utf8.DecodeRuneInString(scanner.source[scanner.current:])
	if r != expected {
		return false
	}
	scanner.current += size
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	r, _ := utf8.DecodeRuneInString(scanner.source[scanner.current:])
	return r
}

// peekNext returns the rune after the current one, but does not consume it
func (scanner *Scanner) peekNext() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	_, size := utf8.DecodeRuneInString(scanner.source[scanner.current:])
	if scanner.current+size >= len(scanner.source) {
		return '\x00'
	}
	r, _ := utf8.DecodeRuneInString(scanner.source[scanner.current+size:])
	return r
}
