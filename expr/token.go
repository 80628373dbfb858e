package expr

const (
	TOKEN_TEXT_LIMIT = 31 // Maximum captured text length per token
)

// TokenKind classifies a single lexical unit of a monitor expression.
type TokenKind int

const (
	TK_NOTYPE = TokenKind(0)  // whitespace, discarded
	TK_UINT   = TokenKind(1)  // decimal literal
	TK_HEX    = TokenKind(2)  // 0x hexadecimal literal
	TK_REG    = TokenKind(3)  // $-prefixed register reference
	TK_ADD    = TokenKind(4)  // +
	TK_SUB    = TokenKind(5)  // binary -
	TK_MUL    = TokenKind(6)  // binary *
	TK_DIV    = TokenKind(7)  // /
	TK_EQ     = TokenKind(8)  // ==
	TK_NE     = TokenKind(9)  // !=
	TK_AND    = TokenKind(10) // &&
	TK_LPAREN = TokenKind(11) // (
	TK_RPAREN = TokenKind(12) // )
	TK_DEREF  = TokenKind(13) // unary *, memory read
	TK_NEG    = TokenKind(14) // unary -
)

// String returns the source spelling of the token kind.
func (kind TokenKind) String() (out string) {
	switch kind {
	case TK_NOTYPE:
		out = "space"
	case TK_UINT:
		out = "uint"
	case TK_HEX:
		out = "hex"
	case TK_REG:
		out = "reg"
	case TK_ADD:
		out = "+"
	case TK_SUB:
		out = "-"
	case TK_MUL:
		out = "*"
	case TK_DIV:
		out = "/"
	case TK_EQ:
		out = "=="
	case TK_NE:
		out = "!="
	case TK_AND:
		out = "&&"
	case TK_LPAREN:
		out = "("
	case TK_RPAREN:
		out = ")"
	case TK_DEREF:
		out = "deref"
	case TK_NEG:
		out = "neg"
	default:
		out = "unknown"
	}

	return
}

// Token is a classified lexical unit. Text is populated only for the
// literal and register kinds.
type Token struct {
	Kind TokenKind
	Text string
}

// String returns the token as it appeared in the input.
func (token Token) String() (out string) {
	if len(token.Text) != 0 {
		return token.Text
	}

	return token.Kind.String()
}
