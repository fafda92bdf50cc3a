package bolo

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	TokenInvalid TokenType = "INVALID"
	TokenEOF     TokenType = "EOF"

	TokenIdent  TokenType = "IDENT"
	TokenNumber TokenType = "NUMBER"
	TokenSymbol TokenType = "SYMBOL"

	TokenDef    TokenType = "DEF"
	TokenExtern TokenType = "EXTERN"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Value   float64 // set only for TokenNumber
	Pos     Position
}

// Symbol returns the punctuation or operator byte of a symbol token, or 0
// for every other token type.
func (t Token) Symbol() byte {
	if t.Type != TokenSymbol || len(t.Literal) != 1 {
		return 0
	}
	return t.Literal[0]
}

// Position identifies a location in the source text.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "def":
		return TokenDef
	case "extern":
		return TokenExtern
	}
	return TokenIdent
}
