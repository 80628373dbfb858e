// Package expr implements the expression evaluator for the rvmon debug
// monitor.
//
// An expression is a machine-word computation over decimal and hexadecimal
// literals, register references ($sp, $a0, $pc, ...), parenthesized
// sub-expressions, unary negation, unary memory dereference (*ADDR), and the
// binary operators + - * / == != &&.
//
// Lexing is table driven: an ordered list of patterns is tried at each scan
// position, and the first pattern that matches wins. Evaluation is a
// recursive split of the token sequence at its main operator, the rightmost
// operator of lowest priority outside any parentheses. Register and memory
// state is reached through the Machine interface, so the evaluator itself
// holds no machine state and each call is self-contained.
package expr
