/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package calc

import "io"

// Parser is a recursive-descent parser with one token of pushback. One call
// to Parse consumes one expression including its terminator.
type Parser struct {
	lex    *Lexer
	peeked *Token
}

func NewParser(r io.Reader) *Parser {
	return &Parser{lex: NewLexer(r)}
}

func (p *Parser) next() Token {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t
	}
	return p.lex.Next()
}

func (p *Parser) pushBack(t Token) {
	p.peeked = &t
}

// parsePrimary reads one token and builds the leaf or prefix form it starts.
// An identifier must be followed by '=' (definition) or '.' (call); 'if'
// is reserved and takes three sub-expressions.
func (p *Parser) parsePrimary() *Expr {
	t := p.next()
	switch t.Kind {
	case TokenIntLit:
		return &Expr{Kind: ExprInt, Int: t.Int}
	case TokenLParen:
		return p.Parse()
	case TokenDot:
		return &Expr{Kind: ExprArg}
	case TokenIdent:
		if t.Name == "if" {
			e := &Expr{Kind: ExprIf}
			e.L = p.Parse()
			e.R = p.Parse()
			e.Else = p.Parse()
			return e
		}
		next := p.next()
		switch next.Kind {
		case TokenEq:
			return &Expr{Kind: ExprFuncDef, Name: t.Name, L: p.Parse()}
		case TokenDot:
			return &Expr{Kind: ExprFuncCall, Name: t.Name, L: p.Parse()}
		default:
			panic("parse: expected = or . after identifier " + t.Name)
		}
	default:
		return &Expr{Kind: ExprNothing}
	}
}

// Parse builds one full expression: a primary followed by a left-associative
// chain of + - < at a single precedence level. FuncDef and If are complete
// forms and take no infix continuation. A token that cannot continue the
// chain is pushed back for the enclosing form — that is what lets the three
// sub-expressions of 'if' sit next to each other without separators.
func (p *Parser) Parse() *Expr {
	l := p.parsePrimary()
	if l.Kind == ExprFuncDef || l.Kind == ExprIf || l.Kind == ExprNothing {
		return l
	}
	for {
		op := p.next()
		switch op.Kind {
		case TokenPlus:
			l = &Expr{Kind: ExprAdd, L: l, R: p.parsePrimary()}
		case TokenMinus:
			l = &Expr{Kind: ExprSub, L: l, R: p.parsePrimary()}
		case TokenLesser:
			l = &Expr{Kind: ExprLesser, L: l, R: p.parsePrimary()}
		case TokenEnd:
			return l
		default:
			p.pushBack(op)
			return l
		}
	}
}
