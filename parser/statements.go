package parser

import (
	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/lexer"
)

// parseStatement dispatches on the leading token of a statement. Every
// keyword-led form is handled by its own parseXStatement; anything else
// falls through to an expression statement, where assignment is
// detected after the fact.
func (p *Parser) parseStatement() ast.Node {
	switch p.cur.Type {
	case lexer.LET, lexer.CONST:
		return p.parseLetStatement()
	case lexer.FN:
		return p.parseFunctionLiteral()
	case lexer.CLASS:
		return p.parseClassStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.TRY:
		return p.parseTryStatement()
	case lexer.THROW:
		return p.parseThrowStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.BREAK:
		pos := p.pos()
		p.nextToken()
		return &ast.Break{Base: ast.Base{P: pos}}
	case lexer.CONTINUE:
		pos := p.pos()
		p.nextToken()
		return &ast.Continue{Base: ast.Base{P: pos}}
	case lexer.INCLUDE:
		return p.parseIncludeStatement()
	case lexer.MATCH:
		return p.parseMatchStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Node {
	pos := p.pos()
	isConst := p.curIs(lexer.CONST)
	p.nextToken() // consume 'let'/'const'
	name := p.cur.Literal
	p.expect(lexer.IDENT)
	p.expect(lexer.ASSIGN)
	val := p.parseExpression(LOWEST)
	return &ast.Let{Base: ast.Base{P: pos}, Name: name, Const: isConst, Value: val}
}

func (p *Parser) parseIncludeStatement() ast.Node {
	pos := p.pos()
	p.nextToken() // consume 'include'
	name := p.cur.Literal
	p.expect(lexer.STRING)
	return &ast.Include{Base: ast.Base{P: pos}, Name: name}
}

func (p *Parser) parseThrowStatement() ast.Node {
	pos := p.pos()
	p.nextToken() // consume 'throw'
	val := p.parseExpression(LOWEST)
	return &ast.Throw{Base: ast.Base{P: pos}, Value: val}
}

// returnStops are the tokens that can immediately follow a bare `return`
// with no expression — every block terminator a return can appear
// before.
var returnStops = map[lexer.TokenType]bool{
	lexer.END: true, lexer.ELIF: true, lexer.ELSE: true,
	lexer.CATCH: true, lexer.FINALLY: true, lexer.CASE: true,
	lexer.EOF: true,
}

func (p *Parser) parseReturnStatement() ast.Node {
	pos := p.pos()
	p.nextToken() // consume 'return'
	if returnStops[p.cur.Type] {
		return &ast.Return{Base: ast.Base{P: pos}}
	}
	val := p.parseExpression(LOWEST)
	return &ast.Return{Base: ast.Base{P: pos}, Value: val}
}

// parseIfStatement consumes the outer `if` ... `end` pair; the
// elif/else chain in between is built by parseIfBody without consuming
// the final `end` itself.
func (p *Parser) parseIfStatement() ast.Node {
	p.nextToken() // consume 'if'
	node := p.parseIfBody()
	p.expect(lexer.END)
	return node
}

func (p *Parser) parseIfBody() *ast.If {
	pos := p.pos()
	cond := p.parseExpression(LOWEST)
	then := p.parseBlockUntil(lexer.ELIF, lexer.ELSE, lexer.END)
	node := &ast.If{Base: ast.Base{P: pos}, Cond: cond, Then: then}

	switch {
	case p.curIs(lexer.ELIF):
		p.nextToken() // consume 'elif'
		node.Else = p.parseIfBody()
	case p.curIs(lexer.ELSE):
		elsePos := p.pos()
		p.nextToken() // consume 'else'
		elseBody := p.parseBlockUntil(lexer.END)
		node.Else = &ast.Program{Base: ast.Base{P: elsePos}, Statements: elseBody}
	}
	return node
}

func (p *Parser) parseForStatement() ast.Node {
	pos := p.pos()
	p.nextToken() // consume 'for'
	varName := p.cur.Literal
	p.expect(lexer.IDENT)
	p.expect(lexer.IN)
	iterable := p.parseExpression(LOWEST)
	body := p.parseBlockUntil(lexer.END)
	p.expect(lexer.END)
	return &ast.For{Base: ast.Base{P: pos}, Var: varName, Iterable: iterable, Body: body}
}

func (p *Parser) parseWhileStatement() ast.Node {
	pos := p.pos()
	p.nextToken() // consume 'while'
	cond := p.parseExpression(LOWEST)
	body := p.parseBlockUntil(lexer.END)
	p.expect(lexer.END)
	return &ast.While{Base: ast.Base{P: pos}, Cond: cond, Body: body}
}

// parseTryStatement builds the three-list Try: Catch may bind its
// thrown value with a bare name or a parenthesized one, both accepted.
func (p *Parser) parseTryStatement() ast.Node {
	pos := p.pos()
	p.nextToken() // consume 'try'
	body := p.parseBlockUntil(lexer.CATCH, lexer.FINALLY, lexer.END)
	node := &ast.Try{Base: ast.Base{P: pos}, Body: body}

	if p.curIs(lexer.CATCH) {
		p.nextToken() // consume 'catch'
		switch {
		case p.curIs(lexer.LPAREN):
			p.nextToken()
			node.CatchVar = p.cur.Literal
			p.expect(lexer.IDENT)
			p.expect(lexer.RPAREN)
		case p.curIs(lexer.IDENT):
			node.CatchVar = p.cur.Literal
			p.nextToken()
		}
		node.Catch = p.parseBlockUntil(lexer.FINALLY, lexer.END)
	}
	if p.curIs(lexer.FINALLY) {
		p.nextToken() // consume 'finally'
		node.Finally = p.parseBlockUntil(lexer.END)
	}
	p.expect(lexer.END)
	return node
}

// parseMatchStatement is the supplemental match/case form, desugared
// later at evaluation time is not needed: the parser keeps it as an
// ast.Match and the evaluator walks it directly, since Match/MatchCase
// already carry everything an If-chain would.
func (p *Parser) parseMatchStatement() ast.Node {
	pos := p.pos()
	p.nextToken() // consume 'match'
	subject := p.parseExpression(LOWEST)

	var cases []ast.MatchCase
	for p.curIs(lexer.CASE) {
		p.nextToken() // consume 'case'
		pattern := p.parseExpression(LOWEST)
		body := p.parseBlockUntil(lexer.CASE, lexer.ELSE, lexer.END)
		cases = append(cases, ast.MatchCase{Pattern: pattern, Body: body})
	}
	if p.curIs(lexer.ELSE) {
		p.nextToken() // consume 'else'
		body := p.parseBlockUntil(lexer.END)
		cases = append(cases, ast.MatchCase{Pattern: nil, Body: body})
	}
	p.expect(lexer.END)
	return &ast.Match{Base: ast.Base{P: pos}, Subject: subject, Cases: cases}
}

// compoundOps maps a compound-assignment token to the binary operator
// it desugars to.
var compoundOps = map[lexer.TokenType]string{
	lexer.PLUS_EQ:  "+",
	lexer.MINUS_EQ: "-",
	lexer.STAR_EQ:  "*",
	lexer.SLASH_EQ: "/",
}

// parseExpressionStatement parses a full expression and then checks
// whether it's actually the left side of an assignment. A plain Var
// produces Assign/CompoundAssign; an Attr produces AttrAssign, with
// compound forms desugared to a read-modify-write BinaryOp over the
// same Attr. Anything else just stands as an expression statement.
func (p *Parser) parseExpressionStatement() ast.Node {
	pos := p.pos()
	expr := p.parseExpression(LOWEST)

	if p.curIs(lexer.ASSIGN) {
		p.nextToken()
		val := p.parseExpression(LOWEST)
		switch lhs := expr.(type) {
		case *ast.Var:
			return &ast.Assign{Base: ast.Base{P: pos}, Name: lhs.Name, Value: val}
		case *ast.Attr:
			return &ast.AttrAssign{Base: ast.Base{P: pos}, Object: lhs.Object, Name: lhs.Name, Value: val}
		default:
			p.errorf("invalid assignment target")
			return expr
		}
	}

	if op, ok := compoundOps[p.cur.Type]; ok {
		p.nextToken()
		val := p.parseExpression(LOWEST)
		switch lhs := expr.(type) {
		case *ast.Var:
			return &ast.CompoundAssign{Base: ast.Base{P: pos}, Name: lhs.Name, Op: op, Value: val}
		case *ast.Attr:
			return &ast.AttrAssign{
				Base:   ast.Base{P: pos},
				Object: lhs.Object,
				Name:   lhs.Name,
				Value: &ast.BinaryOp{
					Base:  ast.Base{P: pos},
					Op:    op,
					Left:  lhs,
					Right: val,
				},
			}
		default:
			p.errorf("invalid assignment target")
			return expr
		}
	}

	return expr
}
