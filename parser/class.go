package parser

import (
	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/lexer"
)

// parseClassStatement parses `class Name ... end`. Only `fn` members
// become methods; any other statement inside the body is skipped,
// matching the original's tolerant class-body scan.
func (p *Parser) parseClassStatement() ast.Node {
	pos := p.pos()
	p.nextToken() // consume 'class'
	name := p.cur.Literal
	p.expect(lexer.IDENT)

	var methods []*ast.Fn
	for !p.curIs(lexer.END) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.FN) {
			fn := p.parseFunctionLiteral().(*ast.Fn)
			methods = append(methods, fn)
			continue
		}
		p.nextToken()
	}
	p.expect(lexer.END)
	return &ast.Class{Base: ast.Base{P: pos}, Name: name, Methods: methods}
}
