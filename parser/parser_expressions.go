package parser

import (
	"strconv"

	"github.com/akashmaji946/bussin/ast"
	"github.com/akashmaji946/bussin/lexer"
)

// parseExpr is the entry point of the expression ladder: `expr := assignment`.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignmentExpr()
}

// parseAssignmentExpr implements `assignment := object_expr ( '=' assignment )?`.
func (p *Parser) parseAssignmentExpr() ast.Expr {
	left := p.parseObjectExpr()
	if p.current().Type == lexer.Equals {
		p.advance()
		value := p.parseAssignmentExpr()
		return &ast.AssignmentExpr{Target: left, Value: value}
	}
	return left
}

// parseObjectExpr implements:
//
//	object_expr := '{' (prop (',' prop)* )? '}' | try_catch
//
// A `{` in expression position is always an object literal; blocks only
// appear in statement position (function/if/for/try bodies).
func (p *Parser) parseObjectExpr() ast.Expr {
	if p.current().Type != lexer.OpenBrace {
		return p.parseTryCatch()
	}
	p.advance() // '{'

	var props []ast.Property
	for p.current().Type != lexer.CloseBrace {
		key := p.expect(lexer.Identifier, "as an object property key").Literal
		if p.current().Type == lexer.Colon {
			p.advance()
			value := p.parseAssignmentExpr()
			props = append(props, ast.Property{Key: key, Value: value})
		} else {
			props = append(props, ast.Property{Key: key})
		}
		if p.current().Type == lexer.Comma {
			p.advance()
		}
	}
	p.expect(lexer.CloseBrace, "to close an object literal")

	return &ast.ObjectLiteral{Properties: props}
}

// parseTryCatch implements `try_catch := 'try' block 'catch' block | and_expr`,
// dispatching by lexeme since "try"/"catch" are plain Identifier tokens,
// not keywords (spec.md §4.1 rule 5, §4.2).
func (p *Parser) parseTryCatch() ast.Expr {
	if !p.isLexeme("try") {
		return p.parseAndExpr()
	}
	p.advance() // 'try'
	body := p.parseBlock()

	if !p.isLexeme("catch") {
		p.fail("expected 'catch' after a try block")
	}
	p.advance() // 'catch'
	handler := p.parseBlock()

	return &ast.TryCatchStatement{Body: body, Handler: handler}
}

// parseAndExpr implements `and_expr := additive ( ('&&' | '|') additive )?`.
// Deliberately non-associative: at most one logical operator is
// consumed per invocation, never left-folded (spec.md §4.2).
func (p *Parser) parseAndExpr() ast.Expr {
	left := p.parseAdditiveExpr()
	if p.current().Type == lexer.And || p.current().Type == lexer.Bar {
		op := p.advance().Literal
		right := p.parseAdditiveExpr()
		return &ast.BinaryExpr{Left: left, Right: right, Operator: op}
	}
	return left
}

// parseAdditiveExpr implements:
//
//	additive := multiplicative ( ('+' | '-' | '==' | '!=' | '<' | '>') multiplicative )*
//
// Equality and comparison are parsed at THIS level, not their
// conventional lower precedence — deliberate, per spec.md §4.2, and
// load-bearing for existing program compatibility.
func (p *Parser) parseAdditiveExpr() ast.Expr {
	left := p.parseMultiplicativeExpr()
	for isAdditiveLevel(p.current()) {
		op := p.advance().Literal
		right := p.parseMultiplicativeExpr()
		left = &ast.BinaryExpr{Left: left, Right: right, Operator: op}
	}
	return left
}

func isAdditiveLevel(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.BinaryOperator:
		return tok.Literal == "+" || tok.Literal == "-"
	case lexer.EqualsCompare, lexer.NotEquals, lexer.Lesser, lexer.Greater:
		return true
	}
	return false
}

// parseMultiplicativeExpr implements
// `multiplicative := call_member ( ('*' | '/' | '%') call_member )*`.
func (p *Parser) parseMultiplicativeExpr() ast.Expr {
	left := p.parseCallMemberExpr()
	for p.current().Type == lexer.BinaryOperator && isMultiplicative(p.current().Literal) {
		op := p.advance().Literal
		right := p.parseCallMemberExpr()
		left = &ast.BinaryExpr{Left: left, Right: right, Operator: op}
	}
	return left
}

func isMultiplicative(lit string) bool {
	return lit == "*" || lit == "/" || lit == "%"
}

// parseCallMemberExpr implements `call_member := member ( '(' args ')' )?`,
// applied recursively so chained calls like `f()()` parse correctly.
func (p *Parser) parseCallMemberExpr() ast.Expr {
	expr := p.parseMemberExpr()
	for p.current().Type == lexer.OpenParen {
		expr = p.parseCallExpr(expr)
	}
	return expr
}

func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	args := p.parseArgs()
	return &ast.CallExpr{Callee: callee, Args: args}
}

func (p *Parser) parseArgs() []ast.Expr {
	p.expect(lexer.OpenParen, "to start an argument list")
	var args []ast.Expr
	for p.current().Type != lexer.CloseParen {
		args = append(args, p.parseAssignmentExpr())
		if p.current().Type == lexer.Comma {
			p.advance()
		}
	}
	p.expect(lexer.CloseParen, "to close an argument list")
	return args
}

// parseMemberExpr implements `member := primary ( ('.' ident) | ('[' expr ']') )*`.
func (p *Parser) parseMemberExpr() ast.Expr {
	object := p.parsePrimaryExpr()
	for p.current().Type == lexer.Dot || p.current().Type == lexer.OpenBracket {
		if p.current().Type == lexer.Dot {
			p.advance()
			property := &ast.Identifier{Symbol: p.expect(lexer.Identifier, "after '.'").Literal}
			object = &ast.MemberExpr{Object: object, Property: property, Computed: false}
		} else {
			p.advance() // '['
			property := p.parseExpr()
			p.expect(lexer.CloseBracket, "to close a computed member access")
			object = &ast.MemberExpr{Object: object, Property: property, Computed: true}
		}
	}
	return object
}

// parsePrimaryExpr implements `primary := Ident | Number | String | '(' expr ')'`.
func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.current()
	switch tok.Type {
	case lexer.Identifier:
		p.advance()
		return &ast.Identifier{Symbol: tok.Literal}
	case lexer.Number:
		p.advance()
		n, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.fail("malformed numeric literal " + tok.Literal)
		}
		return &ast.NumericLiteral{Value: n}
	case lexer.String:
		p.advance()
		return &ast.StringLiteral{Value: tok.Literal}
	case lexer.OpenParen:
		p.advance()
		expr := p.parseExpr()
		p.expect(lexer.CloseParen, "to close a parenthesized expression")
		return expr
	default:
		p.fail("unexpected token " + string(tok.Type) + "(" + tok.Literal + ") in expression position")
		return nil
	}
}
