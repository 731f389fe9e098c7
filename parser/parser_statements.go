package parser

import (
	"github.com/akashmaji946/bussin/ast"
	"github.com/akashmaji946/bussin/lexer"
)

// parseStmt implements `stmt := var_decl | fn_decl | if_stmt | for_stmt | expr`.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.current().Type {
	case lexer.Let, lexer.Const:
		return p.parseVarDeclaration()
	case lexer.Fn:
		return p.parseFunctionDeclaration()
	case lexer.If:
		return p.parseIfStatement()
	case lexer.For:
		return p.parseForStatement()
	default:
		expr := p.parseExpr()
		if p.current().Type == lexer.Semicolon {
			p.advance()
		}
		return expr
	}
}

// parseBlock consumes `{ stmt* }` and returns the contained statements.
func (p *Parser) parseBlock() []ast.Stmt {
	p.expect(lexer.OpenBrace, "to start a block")
	var body []ast.Stmt
	for !p.isEOF() && p.current().Type != lexer.CloseBrace {
		body = append(body, p.parseStmt())
	}
	p.expect(lexer.CloseBrace, "to close a block")
	return body
}

// parseVarDeclaration implements:
//
//	('let'|'const') ident (';' | '=' expr ';')
//
// A bare `let x;` declares x = null; forbidden for const. A quirk from
// the original grammar is preserved: if a String token immediately
// follows the value expression and precedes the terminating ';', it is
// silently consumed and discarded (spec.md §4.2).
func (p *Parser) parseVarDeclaration() *ast.VarDeclaration {
	constant := p.advance().Type == lexer.Const
	name := p.expect(lexer.Identifier, "in variable declaration").Literal

	if p.current().Type == lexer.Semicolon {
		if constant {
			p.fail("const declaration must have a value")
		}
		p.advance()
		return &ast.VarDeclaration{Constant: false, Name: name}
	}

	p.expect(lexer.Equals, "in variable declaration")
	value := p.parseExpr()

	if p.current().Type == lexer.String {
		p.advance()
	}

	p.expect(lexer.Semicolon, "to terminate a variable declaration")
	return &ast.VarDeclaration{Constant: constant, Name: name, Value: value}
}

// parseFunctionDeclaration implements `fn ident '(' params ')' block`.
func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	p.advance() // 'fn'
	name := p.expect(lexer.Identifier, "as a function name").Literal
	p.expect(lexer.OpenParen, "after a function name")

	var params []string
	for p.current().Type != lexer.CloseParen {
		params = append(params, p.expect(lexer.Identifier, "as a parameter name").Literal)
		if p.current().Type == lexer.Comma {
			p.advance()
		}
	}
	p.expect(lexer.CloseParen, "after a parameter list")
	body := p.parseBlock()

	return &ast.FunctionDeclaration{Name: name, Params: params, Body: body}
}

// parseIfStatement implements `if ( expr ) block ( else ( if_stmt | block ) )?`.
// The alternate is always populated — an absent else becomes an empty
// *ast.BlockStatement (spec.md §4.2).
func (p *Parser) parseIfStatement() *ast.IfStatement {
	p.advance() // 'if'
	p.expect(lexer.OpenParen, "after if")
	test := p.parseExpr()
	p.expect(lexer.CloseParen, "after an if condition")
	body := p.parseBlock()

	var alternate ast.Stmt = &ast.BlockStatement{}
	if p.current().Type == lexer.Else {
		p.advance()
		if p.current().Type == lexer.If {
			alternate = p.parseIfStatement()
		} else {
			alternate = &ast.BlockStatement{Body: p.parseBlock()}
		}
	}

	return &ast.IfStatement{Test: test, Body: body, Alternate: alternate}
}

// parseForStatement implements `for ( var_decl test ';' assignment ) block`.
// var_decl consumes its own trailing ';', so the visible surface is
// `for (let i = 0; i < 10; i = i + 1) { ... }`.
func (p *Parser) parseForStatement() *ast.ForStatement {
	p.advance() // 'for'
	p.expect(lexer.OpenParen, "after for")

	init := p.parseVarDeclaration()
	test := p.parseExpr()
	p.expect(lexer.Semicolon, "after a for condition")
	update := p.parseExpr()
	p.expect(lexer.CloseParen, "after a for update")
	body := p.parseBlock()

	return &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}
}
