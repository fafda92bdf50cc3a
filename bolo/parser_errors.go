package bolo

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrCode classifies a parse failure.
type ErrCode int

const (
	// ErrUnexpectedToken reports a token that starts no known production.
	ErrUnexpectedToken ErrCode = iota
	// ErrExpectedCloseParen reports a missing ')' after a parenthesized
	// expression.
	ErrExpectedCloseParen
	// ErrExpectedArgSeparator reports a missing ',' or ')' in a call
	// argument list.
	ErrExpectedArgSeparator
	// ErrExpectedFunctionName, ErrExpectedOpenParen and
	// ErrExpectedCloseParenInPrototype report prototype shape violations.
	ErrExpectedFunctionName
	ErrExpectedOpenParen
	ErrExpectedCloseParenInPrototype
)

// ParseError reports a parse failure together with the position at which
// parsing stopped.
type ParseError struct {
	Code ErrCode
	Pos  Position
	Msg  string

	source string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
	if frame := codeFrame(e.source, e.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

func (p *Parser) errorAt(code ErrCode, tok Token, msg string) *ParseError {
	return &ParseError{Code: code, Pos: tok.Pos, Msg: msg, source: p.l.input}
}

// tokenLabel names a token for diagnostics.
func tokenLabel(tok Token) string {
	switch tok.Type {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return fmt.Sprintf("identifier %q", tok.Literal)
	case TokenNumber:
		return fmt.Sprintf("number %s", tok.Literal)
	case TokenDef:
		return "'def'"
	case TokenExtern:
		return "'extern'"
	case TokenInvalid:
		return fmt.Sprintf("invalid byte %q", tok.Literal)
	default:
		return "'" + tok.Literal + "'"
	}
}

// codeFrame renders the offending source line with a caret under the error
// column.
func codeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}
	lineText := lines[pos.Line-1]

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineText)+1 {
		column = len(lineText) + 1
	}

	label := strconv.Itoa(pos.Line)
	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line,
		column,
		label,
		lineText,
		strings.Repeat(" ", len(label)),
		strings.Repeat(" ", column-1),
	)
}
