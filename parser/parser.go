// Package parser implements a Pratt (top-down operator precedence)
// recursive-descent parser that turns a lexer.Token stream into an
// ast.Program. Unary and binary parse functions are registered by
// token type, and blocks are terminated by `end` rather than braces.
package parser

import (
	"fmt"

	"github.com/akashmaji946/veureka/ast"
	"github.com/akashmaji946/veureka/lexer"
)

type prefixParseFn func() ast.Node
type infixParseFn func(left ast.Node) ast.Node

// Parser holds the token-by-token parsing state for one source unit. It
// never panics on malformed input; syntax problems are collected into
// Errors and Parse returns what it could build.
type Parser struct {
	lex *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn

	Errors []string
}

// New creates a Parser over src, ready to Parse().
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.prefixFns = make(map[lexer.TokenType]prefixParseFn)
	p.infixFns = make(map[lexer.TokenType]infixParseFn)
	p.registerExpressionFns()

	// Prime cur/peek, skipping NEWLINE tokens (the parser discards them
	// outside of string/number scanning; statements are terminated by
	// their introducer tokens or `end`, not by line breaks).
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
	for p.peek.Type == lexer.NEWLINE {
		p.peek = p.lex.NextToken()
	}
}

func (p *Parser) pos() ast.Pos { return ast.Pos{Line: p.cur.Line, Column: p.cur.Column} }

func (p *Parser) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.Errors = append(p.Errors, fmt.Sprintf("[%d:%d] %s", p.cur.Line, p.cur.Column, msg))
}

// HasErrors reports whether any syntax errors were collected.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek.Type == t }

// expect checks that cur is of type t, advances past it, and returns
// whether it matched; on mismatch it records a diagnostic naming the
// expected token.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.curIs(t) {
		p.nextToken()
		return true
	}
	p.errorf("expected %s, got %s (%q)", t, p.cur.Type, p.cur.Literal)
	return false
}

// Parse consumes the whole token stream into a Program. NEWLINE tokens
// never reach the parser (nextToken skips them), so this just runs
// parseStatement until EOF.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{Base: ast.Base{P: ast.Pos{Line: 1, Column: 1}}}
	for !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		} else {
			// Avoid an infinite loop on unparseable input.
			p.nextToken()
		}
	}
	return prog
}

// parseBlockUntil parses statements until cur is one of the given
// terminator token types (not consumed), used for every `end`-style
// block: if/elif/else, for, while, fn, try/catch/finally, match/case
// (a class body has its own loop in parseClassStatement).
func (p *Parser) parseBlockUntil(terminators ...lexer.TokenType) []ast.Node {
	isTerm := func(t lexer.TokenType) bool {
		for _, term := range terminators {
			if t == term {
				return true
			}
		}
		return false
	}
	var stmts []ast.Node
	for !p.curIs(lexer.EOF) && !isTerm(p.cur.Type) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		} else {
			p.nextToken()
		}
	}
	return stmts
}
