package parser

import (
	"strconv"

	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/lexer"
)

func (p *Parser) registerExpressionFns() {
	p.prefixFns[lexer.NUMBER] = p.parseNumberLiteral
	p.prefixFns[lexer.STRING] = p.parseStringLiteral
	p.prefixFns[lexer.TRUE] = p.parseBoolLiteral
	p.prefixFns[lexer.FALSE] = p.parseBoolLiteral
	p.prefixFns[lexer.NIL] = p.parseNilLiteral
	p.prefixFns[lexer.IDENT] = p.parseIdentifier
	p.prefixFns[lexer.SELF] = p.parseIdentifier
	p.prefixFns[lexer.LPAREN] = p.parseGroupedExpression
	p.prefixFns[lexer.LBRACKET] = p.parseListLiteral
	p.prefixFns[lexer.LBRACE] = p.parseMapLiteral
	p.prefixFns[lexer.MINUS] = p.parseUnaryExpression
	p.prefixFns[lexer.NOT] = p.parseUnaryExpression
	p.prefixFns[lexer.TILDE] = p.parseUnaryExpression
	p.prefixFns[lexer.INCR] = p.parsePrefixIncrement
	p.prefixFns[lexer.DECR] = p.parsePrefixIncrement
	p.prefixFns[lexer.FN] = p.parseFunctionLiteral
	p.prefixFns[lexer.NEW] = p.parseNewExpression

	for _, t := range []lexer.TokenType{
		lexer.OR, lexer.AND, lexer.PIPE, lexer.CARET, lexer.AMP,
		lexer.EQ, lexer.NE, lexer.LT, lexer.LE, lexer.GT, lexer.GE,
		lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT,
	} {
		p.infixFns[t] = p.parseBinaryExpression
	}
	p.infixFns[lexer.POWER] = p.parsePowerExpression
	p.infixFns[lexer.LPAREN] = p.parseCallExpression
	p.infixFns[lexer.LBRACKET] = p.parseIndexExpression
	p.infixFns[lexer.DOT] = p.parseAttrExpression
	p.infixFns[lexer.INCR] = p.parsePostfixIncrement
	p.infixFns[lexer.DECR] = p.parsePostfixIncrement
}

func (p *Parser) parseExpression(precedence int) ast.Node {
	prefix := p.prefixFns[p.cur.Type]
	if prefix == nil {
		p.errorf("unexpected token %s in expression", p.cur.Type)
		return nil
	}
	left := prefix()

	for precedence < p.curPrecedence() {
		infix := p.infixFns[p.cur.Type]
		if infix == nil {
			return left
		}
		left = infix(left)
	}
	return left
}

func (p *Parser) parseNumberLiteral() ast.Node {
	n, _ := strconv.ParseFloat(p.cur.Literal, 64)
	lit := &ast.Literal{Base: ast.Base{P: p.pos()}, Kind: ast.LitNumber, Number: n}
	p.nextToken()
	return lit
}

func (p *Parser) parseStringLiteral() ast.Node {
	lit := &ast.Literal{Base: ast.Base{P: p.pos()}, Kind: ast.LitString, Str: p.cur.Literal}
	p.nextToken()
	return lit
}

func (p *Parser) parseBoolLiteral() ast.Node {
	lit := &ast.Literal{Base: ast.Base{P: p.pos()}, Kind: ast.LitBool, Bool: p.curIs(lexer.TRUE)}
	p.nextToken()
	return lit
}

func (p *Parser) parseNilLiteral() ast.Node {
	lit := &ast.Literal{Base: ast.Base{P: p.pos()}, Kind: ast.LitNil}
	p.nextToken()
	return lit
}

func (p *Parser) parseIdentifier() ast.Node {
	v := &ast.Var{Base: ast.Base{P: p.pos()}, Name: p.cur.Literal}
	p.nextToken()
	return v
}

func (p *Parser) parseGroupedExpression() ast.Node {
	p.nextToken() // consume '('
	expr := p.parseExpression(LOWEST)
	p.expect(lexer.RPAREN)
	return expr
}

func (p *Parser) parseUnaryExpression() ast.Node {
	pos := p.pos()
	op := string(p.cur.Type)
	p.nextToken()
	operand := p.parseExpression(UNARY_PREC)
	return &ast.UnaryOp{Base: ast.Base{P: pos}, Op: op, Operand: operand}
}

func (p *Parser) parseBinaryExpression(left ast.Node) ast.Node {
	pos := p.pos()
	op := string(p.cur.Type)
	prec := precedences[p.cur.Type]
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryOp{Base: ast.Base{P: pos}, Op: op, Left: left, Right: right}
}

// parsePowerExpression is ** — right-associative, so the right operand
// is parsed at one precedence level below POWER_PREC.
func (p *Parser) parsePowerExpression(left ast.Node) ast.Node {
	pos := p.pos()
	p.nextToken()
	right := p.parseExpression(POWER_PREC - 1)
	return &ast.BinaryOp{Base: ast.Base{P: pos}, Op: "**", Left: left, Right: right}
}

func (p *Parser) parsePrefixIncrement() ast.Node {
	pos := p.pos()
	op := string(p.cur.Type)
	p.nextToken()
	if !p.curIs(lexer.IDENT) && !p.curIs(lexer.SELF) {
		p.errorf("expected identifier after %s", op)
		return &ast.Literal{Base: ast.Base{P: pos}, Kind: ast.LitNil}
	}
	name := p.cur.Literal
	p.nextToken()
	return &ast.Increment{Base: ast.Base{P: pos}, Name: name, Op: op, Postfix: false}
}

func (p *Parser) parsePostfixIncrement(left ast.Node) ast.Node {
	pos := p.pos()
	op := string(p.cur.Type)
	v, ok := left.(*ast.Var)
	if !ok {
		p.errorf("%s may only follow a variable", op)
		return left
	}
	p.nextToken()
	return &ast.Increment{Base: ast.Base{P: pos}, Name: v.Name, Op: op, Postfix: true}
}

func (p *Parser) parseCallExpression(callee ast.Node) ast.Node {
	pos := p.pos()
	p.nextToken() // consume '('
	args := p.parseExpressionList(lexer.RPAREN)
	return &ast.Call{Base: ast.Base{P: pos}, Callee: callee, Args: args}
}

func (p *Parser) parseExpressionList(end lexer.TokenType) []ast.Node {
	var list []ast.Node
	if p.curIs(end) {
		p.nextToken()
		return list
	}
	list = append(list, p.parseExpression(LOWEST))
	for p.curIs(lexer.COMMA) {
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	p.expect(end)
	return list
}

func (p *Parser) parseIndexExpression(obj ast.Node) ast.Node {
	pos := p.pos()
	p.nextToken() // consume '['
	idx := p.parseExpression(LOWEST)
	p.expect(lexer.RBRACKET)
	return &ast.Index{Base: ast.Base{P: pos}, Object: obj, Index: idx}
}

func (p *Parser) parseAttrExpression(obj ast.Node) ast.Node {
	pos := p.pos()
	p.nextToken() // consume '.'
	name := p.cur.Literal
	p.expect(lexer.IDENT)
	return &ast.Attr{Base: ast.Base{P: pos}, Object: obj, Name: name}
}

func (p *Parser) parseNewExpression() ast.Node {
	pos := p.pos()
	p.nextToken() // consume 'new'
	className := p.cur.Literal
	p.expect(lexer.IDENT)
	var args []ast.Node
	if p.curIs(lexer.LPAREN) {
		p.nextToken()
		args = p.parseExpressionList(lexer.RPAREN)
	}
	return &ast.New{Base: ast.Base{P: pos}, Class: className, Args: args}
}
