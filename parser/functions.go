package parser

import (
	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/lexer"
)

// parseFunctionLiteral parses both function literal forms:
//
//	fn [name](params) body end
//	fn [name](params) => expression
//
// A bare expression after `=>` is wrapped in a single Return so the
// evaluator needs no separate lambda case. The name is optional; a
// named Fn binds itself when evaluated, while an anonymous one is just
// an expression.
func (p *Parser) parseFunctionLiteral() ast.Node {
	pos := p.pos()
	p.nextToken() // consume 'fn'

	name := ""
	if p.curIs(lexer.IDENT) {
		name = p.cur.Literal
		p.nextToken()
	}

	params := p.parseParamList()

	if p.curIs(lexer.ARROW) {
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		body := []ast.Node{&ast.Return{Base: ast.Base{P: pos}, Value: expr}}
		return &ast.Fn{Base: ast.Base{P: pos}, Name: name, Params: params, Body: body}
	}

	body := p.parseBlockUntil(lexer.END)
	p.expect(lexer.END)
	return &ast.Fn{Base: ast.Base{P: pos}, Name: name, Params: params, Body: body}
}

// parseParamList parses `(ident, ident, ...)`, consuming both parens.
func (p *Parser) parseParamList() []string {
	p.expect(lexer.LPAREN)
	var params []string
	if p.curIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}
	params = append(params, p.cur.Literal)
	p.expect(lexer.IDENT)
	for p.curIs(lexer.COMMA) {
		p.nextToken()
		params = append(params, p.cur.Literal)
		p.expect(lexer.IDENT)
	}
	p.expect(lexer.RPAREN)
	return params
}
