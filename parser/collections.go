package parser

import (
	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/lexer"
)

// parseListLiteral parses `[ expr, expr, ... ]`.
func (p *Parser) parseListLiteral() ast.Node {
	pos := p.pos()
	p.nextToken() // consume '['
	elems := p.parseExpressionList(lexer.RBRACKET)
	return &ast.List{Base: ast.Base{P: pos}, Elements: elems}
}

// parseMapLiteral parses `{ key: expr, key: expr, ... }`. A key is an
// identifier, a string literal, or a number literal — each used
// as the entry's string key.
func (p *Parser) parseMapLiteral() ast.Node {
	pos := p.pos()
	p.nextToken() // consume '{'

	var entries []ast.MapEntry
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		key := p.parseMapKey()
		p.expect(lexer.COLON)
		val := p.parseExpression(LOWEST)
		entries = append(entries, ast.MapEntry{Key: key, Value: val})
		if p.curIs(lexer.COMMA) {
			p.nextToken()
			continue
		}
		break
	}
	p.expect(lexer.RBRACE)
	return &ast.Map{Base: ast.Base{P: pos}, Entries: entries}
}

func (p *Parser) parseMapKey() string {
	switch p.cur.Type {
	case lexer.IDENT, lexer.STRING, lexer.NUMBER:
		key := p.cur.Literal
		p.nextToken()
		return key
	default:
		p.errorf("expected map key, got %s", p.cur.Type)
		key := p.cur.Literal
		p.nextToken()
		return key
	}
}
