/*
Package lox implements the front end of the Lox language: a scanner that turns
source text into tokens, a recursive descent parser that turns tokens into an
expression tree, and a printer for that tree.

Grammars

	expression --> equality ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" ) unary
	             | primary ;
	primary    --> NUMBER | STRING
	             | "true" | "false" | "nil"
	             | "(" expression ")" ;

"unary" rule has some matches for error generations:
+ Unary '+' expressions are not supported.
+ Unary '/' expressions are not supported.
+ Unary '*' expressions are not supported.

Lexical errors do not stop the scanner. They are kept in the token sequence as
ERROR tokens so that one pass collects all of them. Syntax errors stop the
current parse and no tree is returned.
*/
package lox

//go:generate go run ../cmd/ast_codegen ../lox
