package expr

// paired reports whether tokens[p..q] is a single parenthesized group:
// '(' at p, ')' at q, and the inner depth never goes negative and ends at
// zero. "(1)+(2)" as a whole is not paired; "(1+2)" is.
func paired(tokens []Token, p, q int) bool {
	if tokens[p].Kind != TK_LPAREN || tokens[q].Kind != TK_RPAREN {
		return false
	}

	depth := 0
	for i := p + 1; i <= q-1; i++ {
		switch tokens[i].Kind {
		case TK_LPAREN:
			depth++
		case TK_RPAREN:
			depth--
			if depth < 0 {
				return false
			}
		}
	}

	return depth == 0
}

// priority returns the binding strength of an operator kind. Lower values
// bind loosest and split first. Non-operator kinds return -1.
func priority(kind TokenKind) int {
	switch kind {
	case TK_AND:
		return 0
	case TK_EQ, TK_NE:
		return 1
	case TK_ADD, TK_SUB:
		return 2
	case TK_MUL, TK_DIV:
		return 3
	case TK_DEREF, TK_NEG:
		return 4
	}

	return -1
}

// mainOperator locates the split point of tokens[p..q]: the rightmost
// operator of lowest priority outside any parentheses. Replacing the best
// candidate on priority ties keeps same-priority binary operators
// left-associative; "1-2-3" splits at the second '-'. Returns -1 when the
// range holds no depth-0 operator.
func mainOperator(tokens []Token, p, q int) int {
	best := -1
	depth := 0

	for i := p; i <= q; i++ {
		kind := tokens[i].Kind
		switch kind {
		case TK_LPAREN:
			depth++
		case TK_RPAREN:
			depth--
		default:
			if depth != 0 {
				continue
			}
			pri := priority(kind)
			if pri < 0 {
				continue
			}
			if best < 0 || pri <= priority(tokens[best].Kind) {
				best = i
			}
		}
	}

	return best
}
