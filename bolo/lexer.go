package bolo

import "strconv"

// Lexer converts Bologna source text into a stream of tokens. It scans
// byte-wise and keeps exactly one unconsumed byte of pushback, so multi
// character literals and comment skipping never backtrack past a returned
// token. Construct with NewLexer; the zero value is not usable.
type Lexer struct {
	input string

	offset int // one past the position of ch
	line   int
	column int

	ch byte // current unconsumed byte, 0 once input is exhausted
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readByte()
	return l
}

func (l *Lexer) readByte() {
	if l.offset >= len(l.input) {
		l.ch = 0
		return
	}

	b := l.input[l.offset]
	l.offset++

	if b == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = b
}

func (l *Lexer) peekByte() byte {
	if l.offset >= len(l.input) {
		return 0
	}
	return l.input[l.offset]
}

// NextToken returns the next token. It never fails: unrecognized ASCII
// bytes become single-character symbol tokens and non-ASCII bytes become
// invalid tokens, deferring the operator question to the parser. After the
// input is exhausted every call returns a TokenEOF token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	tok := Token{Pos: l.pos()}

	switch {
	case l.ch == 0:
		tok.Type = TokenEOF
	case isLetter(l.ch):
		literal := l.readIdentifier()
		tok.Type = lookupIdent(literal)
		tok.Literal = literal
	case isDigit(l.ch) || l.ch == '.':
		literal := l.readNumber()
		tok.Type = TokenNumber
		tok.Literal = literal
		tok.Value = parseNumber(literal)
	case l.ch < 0x80:
		tok.Type = TokenSymbol
		tok.Literal = string(l.ch)
		l.readByte()
	default:
		tok.Type = TokenInvalid
		tok.Literal = string(l.ch)
		l.readByte()
	}

	return tok
}

func (l *Lexer) pos() Position {
	if l.ch == 0 {
		// One column past the last consumed byte.
		return Position{Offset: len(l.input), Line: l.line, Column: l.column + 1}
	}
	return Position{Offset: l.offset - 1, Line: l.line, Column: l.column}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readByte()
			continue
		case '#':
			l.skipComment()
			continue
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for l.ch != 0 && l.ch != '\n' {
		l.readByte()
	}
}

// readIdentifier consumes a letter followed by any run of letters and
// digits.
func (l *Lexer) readIdentifier() string {
	start := l.offset - 1
	for isLetter(l.peekByte()) || isDigit(l.peekByte()) {
		l.readByte()
	}
	literal := l.input[start:l.offset]
	l.readByte()
	return literal
}

// readNumber consumes a maximal run of digits and dots. Malformed runs like
// "1.2.3" are not rejected here; parseNumber decides what they mean.
func (l *Lexer) readNumber() string {
	start := l.offset - 1
	for isDigit(l.peekByte()) || l.peekByte() == '.' {
		l.readByte()
	}
	literal := l.input[start:l.offset]
	l.readByte()
	return literal
}

// parseNumber mirrors strtod: the longest prefix of the literal that forms
// a valid decimal number wins, so "1.2.3" yields 1.2 and a lone "." yields
// 0.
func parseNumber(literal string) float64 {
	for end := len(literal); end > 0; end-- {
		if v, err := strconv.ParseFloat(literal[:end], 64); err == nil {
			return v
		}
	}
	return 0
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
