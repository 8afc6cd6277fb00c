package parser

import "github.com/akashmaji946/veureka/lexer"

// Precedence tiers, lowest to highest. Assignment is handled outside
// this climb (detected after a logical-or parse), so OR is the
// weakest tier the Pratt loop itself climbs.
const (
	LOWEST = iota
	OR_PREC
	AND_PREC
	BITOR_PREC
	BITXOR_PREC
	BITAND_PREC
	EQUALITY_PREC
	ADDITIVE_PREC
	MULT_PREC
	POWER_PREC
	UNARY_PREC
	POSTFIX_PREC
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:       OR_PREC,
	lexer.AND:      AND_PREC,
	lexer.PIPE:     BITOR_PREC,
	lexer.CARET:    BITXOR_PREC,
	lexer.AMP:      BITAND_PREC,
	lexer.EQ:       EQUALITY_PREC,
	lexer.NE:       EQUALITY_PREC,
	lexer.LT:       EQUALITY_PREC,
	lexer.LE:       EQUALITY_PREC,
	lexer.GT:       EQUALITY_PREC,
	lexer.GE:       EQUALITY_PREC,
	lexer.PLUS:     ADDITIVE_PREC,
	lexer.MINUS:    ADDITIVE_PREC,
	lexer.STAR:     MULT_PREC,
	lexer.SLASH:    MULT_PREC,
	lexer.PERCENT:  MULT_PREC,
	lexer.POWER:    POWER_PREC,
	lexer.LPAREN:   POSTFIX_PREC,
	lexer.LBRACKET: POSTFIX_PREC,
	lexer.DOT:      POSTFIX_PREC,
	lexer.INCR:     POSTFIX_PREC,
	lexer.DECR:     POSTFIX_PREC,
}

// curPrecedence looks up the precedence of the token the parser is
// currently sitting on. Every prefix/infix parse function leaves cur
// positioned on the first unconsumed token of whatever it just built,
// so the Pratt loop climbs by inspecting cur, not peek.
func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}
