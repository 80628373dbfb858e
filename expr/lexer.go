// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package expr

import (
	"regexp"
)

// rule associates a pattern with the token kind it produces.
type rule struct {
	pattern string
	kind    TokenKind
}

// Table order is significant: at any scan position the first rule that
// matches wins, so rules that share a prefix must be ordered with care
// (0x... hexadecimals before plain decimals).
var rules = []rule{
	{` +`, TK_NOTYPE},
	{`\+`, TK_ADD},
	{`==`, TK_EQ},
	{`-`, TK_SUB},
	{`\*`, TK_MUL},
	{`/`, TK_DIV},
	{`\(`, TK_LPAREN},
	{`\)`, TK_RPAREN},
	{`0x[0-9a-fA-F]+`, TK_HEX},
	{`[0-9]+`, TK_UINT},
	{`!=`, TK_NE},
	{`&&`, TK_AND},
	{`\$\$?[a-zA-Z0-9]+`, TK_REG},
}

// matchers holds the compiled rule patterns, anchored to the scan position.
// Compiled once; a malformed table is a programming error and faults at
// process start.
var matchers = make([]*regexp.Regexp, len(rules))

func init() {
	for n, r := range rules {
		matchers[n] = regexp.MustCompile(`^(?:` + r.pattern + `)`)
	}
}

// unaryContext reports whether a preceding token kind leaves the scan in
// operand position, where '*' and '-' are unary. Only the immediately
// preceding token is consulted.
func unaryContext(kind TokenKind) bool {
	switch kind {
	case TK_ADD, TK_SUB, TK_MUL, TK_DIV, TK_LPAREN, TK_EQ, TK_NE, TK_AND:
		return true
	}

	return false
}

// Tokenize splits an expression into a fresh token sequence using the rule
// table. The limit bounds the number of tokens produced; exceeding it is a
// recoverable error, as is input that no rule matches.
func Tokenize(input string, limit int) (tokens []Token, err error) {
	position := 0

	for position < len(input) {
		matched := false
		for n, re := range matchers {
			loc := re.FindStringIndex(input[position:])
			if loc == nil {
				continue
			}
			matched = true

			text := input[position : position+loc[1]]
			position += loc[1]

			kind := rules[n].kind
			if kind == TK_NOTYPE {
				break
			}

			token := Token{Kind: kind}
			switch kind {
			case TK_UINT, TK_HEX, TK_REG:
				if len(text) > TOKEN_TEXT_LIMIT {
					err = ErrTokenTooLong
					return
				}
				token.Text = text
			case TK_MUL:
				if len(tokens) == 0 || unaryContext(tokens[len(tokens)-1].Kind) {
					token.Kind = TK_DEREF
				}
			case TK_SUB:
				if len(tokens) == 0 || unaryContext(tokens[len(tokens)-1].Kind) {
					token.Kind = TK_NEG
				}
			}

			if len(tokens) >= limit {
				err = ErrTooManyTokens
				return
			}
			tokens = append(tokens, token)
			break
		}

		if !matched {
			err = &ErrNoMatch{Position: position, Remain: input[position:]}
			return
		}
	}

	return
}
