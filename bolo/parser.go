package bolo

import (
	"fmt"
	"io"
)

// binopPrecedence holds the binding strength of each binary operator.
// Higher binds tighter; only relative order matters. The map is never
// mutated after initialization, so parser instances may share it freely.
var binopPrecedence = map[byte]int{
	'<': 10,
	'+': 20,
	'-': 20,
	'*': 40,
	'/': 40,
}

// Parser builds an AST from a token stream using recursive descent with a
// single token of lookahead. Each Parser owns its Lexer and lookahead
// exclusively; independent inputs need independent Parser instances.
type Parser struct {
	l   *Lexer
	cur Token
}

// NewParser creates a parser over input and primes the first lookahead
// token.
func NewParser(input string) *Parser {
	p := &Parser{l: NewLexer(input)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.l.NextToken()
}

// tokPrecedence returns the precedence of the pending binary operator, or
// -1 when the lookahead is not a declared operator.
func (p *Parser) tokPrecedence() int {
	op := p.cur.Symbol()
	if op == 0 {
		return -1
	}
	if prec, ok := binopPrecedence[op]; ok {
		return prec
	}
	return -1
}

// Next parses and returns the next top-level unit: a *Function for `def`
// and for bare expressions, or a *Prototype for `extern`. Top-level
// semicolons are pure separators and are skipped. io.EOF signals the end of
// the input. After a parse failure the parser discards tokens through the
// next ';' or end of input, so callers can keep pulling units after an
// error.
func (p *Parser) Next() (TopLevel, error) {
	for {
		switch {
		case p.cur.Type == TokenEOF:
			return nil, io.EOF
		case p.cur.Symbol() == ';':
			p.advance()
		case p.cur.Type == TokenDef:
			fn, err := p.parseDefinition()
			if err != nil {
				p.synchronize()
				return nil, err
			}
			return fn, nil
		case p.cur.Type == TokenExtern:
			proto, err := p.parseExtern()
			if err != nil {
				p.synchronize()
				return nil, err
			}
			return proto, nil
		default:
			fn, err := p.parseTopLevelExpr()
			if err != nil {
				p.synchronize()
				return nil, err
			}
			return fn, nil
		}
	}
}

// synchronize skips to the next top-level separator so one malformed
// construct cannot poison the rest of the input.
func (p *Parser) synchronize() {
	for p.cur.Type != TokenEOF && p.cur.Symbol() != ';' {
		p.advance()
	}
}

// ParseProgram consumes the whole input and collects every top-level unit
// alongside every parse error.
func (p *Parser) ParseProgram() (*Program, []error) {
	program := &Program{}
	var errs []error

	for {
		unit, err := p.Next()
		if err == io.EOF {
			return program, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		program.Units = append(program.Units, unit)
	}
}

// expression ::= primary binoprhs
func (p *Parser) parseExpression() (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, left)
}

// primary ::= identifierexpr | numberexpr | parenexpr
func (p *Parser) parsePrimary() (Expr, error) {
	switch {
	case p.cur.Type == TokenIdent:
		return p.parseIdentifierExpr()
	case p.cur.Type == TokenNumber:
		return p.parseNumberExpr()
	case p.cur.Symbol() == '(':
		return p.parseParenExpr()
	default:
		return nil, p.errorAt(ErrUnexpectedToken, p.cur,
			fmt.Sprintf("unknown token %s when expecting an expression", tokenLabel(p.cur)))
	}
}

// numberexpr ::= number
func (p *Parser) parseNumberExpr() (Expr, error) {
	expr := &NumberExpr{Value: p.cur.Value, position: p.cur.Pos}
	p.advance()
	return expr, nil
}

// parenexpr ::= '(' expression ')'
func (p *Parser) parseParenExpr() (Expr, error) {
	p.advance() // eat '('

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.cur.Symbol() != ')' {
		return nil, p.errorAt(ErrExpectedCloseParen, p.cur, "expected ')'")
	}
	p.advance() // eat ')'

	return expr, nil
}

// identifierexpr ::= identifier | identifier '(' expression* ')'
func (p *Parser) parseIdentifierExpr() (Expr, error) {
	name := p.cur.Literal
	pos := p.cur.Pos
	p.advance() // eat identifier

	if p.cur.Symbol() != '(' {
		return &VariableExpr{Name: name, position: pos}, nil
	}

	p.advance() // eat '('
	args := []Expr{}
	if p.cur.Symbol() != ')' {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.cur.Symbol() == ')' {
				break
			}
			if p.cur.Symbol() != ',' {
				return nil, p.errorAt(ErrExpectedArgSeparator, p.cur, "expected ')' or ',' in argument list")
			}
			p.advance() // eat ','
		}
	}
	p.advance() // eat ')'

	return &CallExpr{Callee: name, Args: args, position: pos}, nil
}

// parseBinOpRHS folds operator/primary pairs into left while the pending
// operator binds at least as tightly as minPrec. A tighter operator after
// the provisional right-hand side is absorbed into it first; equal
// precedence returns to the enclosing loop, which is what makes the
// operators left-associative.
func (p *Parser) parseBinOpRHS(minPrec int, left Expr) (Expr, error) {
	for {
		prec := p.tokPrecedence()
		if prec < minPrec {
			return left, nil
		}

		op := p.cur.Symbol()
		pos := p.cur.Pos
		p.advance() // eat operator

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if prec < p.tokPrecedence() {
			right, err = p.parseBinOpRHS(prec+1, right)
			if err != nil {
				return nil, err
			}
		}

		left = &BinaryExpr{Op: op, Left: left, Right: right, position: pos}
	}
}

// prototype ::= identifier '(' identifier* ')'
//
// Parameter names are separated by whitespace only, no commas.
func (p *Parser) parsePrototype() (*Prototype, error) {
	if p.cur.Type != TokenIdent {
		return nil, p.errorAt(ErrExpectedFunctionName, p.cur, "expected function name in prototype")
	}
	name := p.cur.Literal
	pos := p.cur.Pos
	p.advance()

	if p.cur.Symbol() != '(' {
		return nil, p.errorAt(ErrExpectedOpenParen, p.cur, "expected '(' in prototype")
	}
	p.advance()

	params := []string{}
	for p.cur.Type == TokenIdent {
		params = append(params, p.cur.Literal)
		p.advance()
	}

	if p.cur.Symbol() != ')' {
		return nil, p.errorAt(ErrExpectedCloseParenInPrototype, p.cur, "expected ')' in prototype")
	}
	p.advance() // eat ')'

	return &Prototype{Name: name, Params: params, position: pos}, nil
}

// definition ::= 'def' prototype expression
func (p *Parser) parseDefinition() (*Function, error) {
	pos := p.cur.Pos
	p.advance() // eat 'def'

	proto, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}

	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &Function{Proto: proto, Body: body, position: pos}, nil
}

// external ::= 'extern' prototype
func (p *Parser) parseExtern() (*Prototype, error) {
	p.advance() // eat 'extern'
	return p.parsePrototype()
}

// toplevelexpr ::= expression
//
// The expression is wrapped in a zero-parameter function named AnonFuncName
// so all top-level units share the Function/Prototype shape.
func (p *Parser) parseTopLevelExpr() (*Function, error) {
	pos := p.cur.Pos

	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	proto := &Prototype{Name: AnonFuncName, Params: []string{}, position: pos}
	return &Function{Proto: proto, Body: body, position: pos}, nil
}
