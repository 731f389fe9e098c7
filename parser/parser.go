// Package parser turns a lexer.Token stream into an *ast.Program via
// recursive-descent, precedence-climbing parsing, following the ladder
// specified in spec.md §4.2 exactly — including its deliberately
// nonstandard precedence choices (see parser_expressions.go).
package parser

import (
	"fmt"
	"os"

	"github.com/akashmaji946/bussin/ast"
	"github.com/akashmaji946/bussin/lexer"
)

// Parser holds the token stream and a cursor into it.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New constructs a Parser over src, running it through the lexer first.
func New(src string) *Parser {
	return &Parser{tokens: lexer.New(src).Tokenize()}
}

// Parse consumes the whole token stream and returns the resulting
// Program. Any grammar violation is fatal: a diagnostic is printed and
// the process exits with status 1 (spec.md §4.2: "emit a diagnostic ...
// then terminate fatally").
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{}
	for !p.isEOF() {
		program.Body = append(program.Body, p.parseStmt())
	}
	return program
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) isEOF() bool {
	return p.current().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches typ, otherwise fails
// fatally naming both the expected and offending kind.
func (p *Parser) expect(typ lexer.TokenType, context string) lexer.Token {
	tok := p.current()
	if tok.Type != typ {
		p.fail(fmt.Sprintf("expected %s %s, got %s(%s)", typ, context, tok.Type, tok.Literal))
	}
	return p.advance()
}

// isLexeme reports whether the current token is an Identifier whose
// literal text matches word — used to discriminate "try"/"catch", which
// the lexer does not treat as keywords (spec.md §4.1 rule 5).
func (p *Parser) isLexeme(word string) bool {
	tok := p.current()
	return tok.Type == lexer.Identifier && tok.Literal == word
}

func (p *Parser) fail(msg string) {
	fmt.Fprintf(os.Stdout, "parse error: %s\n", msg)
	os.Exit(1)
}
