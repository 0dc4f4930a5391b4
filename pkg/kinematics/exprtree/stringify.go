// Package exprtree re-parses a stringified symbolic matrix entry into the
// additive-monomial form (SumExpr/Monomial) the trig simplifier operates
// on, and provides the textual normalisation pass (the "stringifier")
// that sits between the symbolic engine and the parser.
package exprtree

import "strings"

// Stringify takes raw, an entry's textual form, and applies the
// normalisation the simplifier/parser depend on, in order:
//
//  1. collapse " * " to " "
//  2. delete "[*]*" wrapper markers
//  3. guard scientific-exponent literals: "e+" -> "P", "e-" -> "N", so
//     sign-based tokenisation downstream never splits a literal like
//     "1.06e-26"
//  4. replace sin(qi)/cos(qi) with s_qi/c_qi for every actuated joint name
//
// raw is expected to come from (*symbolic.Expr).String(); this function only
// knows the string, not the tree, matching the original pipeline's
// string-round-trip intermediate representation.
func Stringify(raw string, actuatedJoints []string) string {
	s := raw
	s = strings.ReplaceAll(s, " * ", " ")
	s = strings.ReplaceAll(s, "[*]*", "")
	s = strings.ReplaceAll(s, "e+", "P")
	s = strings.ReplaceAll(s, "e-", "N")

	for _, q := range actuatedJoints {
		s = strings.ReplaceAll(s, "sin("+q+")", "s_"+q)
		s = strings.ReplaceAll(s, "cos("+q+")", "c_"+q)
	}
	return s
}

// RestoreExponents reverses the scientific-exponent guard applied by
// Stringify, restoring "P"/"N" placeholders to "e+"/"e-". The emitter calls
// this once per matrix entry, after simplification and re-serialisation.
func RestoreExponents(s string) string {
	s = strings.ReplaceAll(s, "P", "e+")
	s = strings.ReplaceAll(s, "N", "e-")
	return s
}
