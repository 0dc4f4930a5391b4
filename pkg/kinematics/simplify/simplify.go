// Package simplify implements the trig-polynomial simplifier: it collapses
// pairs of monomials that match the cosine-sum or sine-sum angle identity
// into a single monomial carrying a fresh compound trig atom, emitting the
// auxiliary declaration that defines it.
//
// It deliberately omits the source's common-factor extractor (disabled
// there as non-terminating); see spec's open questions.
package simplify

import (
	"fmt"

	"github.com/itohio/dhgen/pkg/kinematics/exprtree"
)

// Simplify runs the angle-sum/difference collapse on s until a full pass
// finds no reducible pair. It returns the (possibly smaller) SumExpr and
// the ordered, deduplicated set of auxiliary declaration strings
// introduced along the way. The simplifier never fails: unrecognised
// patterns are left unchanged.
func Simplify(s exprtree.SumExpr) (exprtree.SumExpr, []string) {
	cur := append(exprtree.SumExpr(nil), s...)
	var decls []string
	seen := map[string]bool{}

	for {
		reduced := false
		for i := 0; i < len(cur) && !reduced; i++ {
			for j := i + 1; j < len(cur) && !reduced; j++ {
				merged, decl, ok := tryReduce(cur[i], cur[j])
				if !ok {
					continue
				}
				next := make(exprtree.SumExpr, 0, len(cur)-1)
				for k, m := range cur {
					if k == i || k == j {
						continue
					}
					next = append(next, m)
				}
				cur = append(next, merged)
				if decl != "" && !seen[decl] {
					seen[decl] = true
					decls = append(decls, decl)
				}
				reduced = true
			}
		}
		if !reduced {
			break
		}
	}
	return cur, decls
}

// scalar returns the first factor of m beginning with a digit or '.', or ""
// if none.
func scalar(m exprtree.Monomial) string {
	for _, f := range m.Factors {
		if f == "" {
			continue
		}
		if (f[0] >= '0' && f[0] <= '9') || f[0] == '.' {
			return f
		}
	}
	return ""
}

// partition splits f1/f2 into their shared factors and each side's
// exclusive remainder: each element of f1 is classified by first-
// occurrence search in f2 (set-difference semantics over ordered lists),
// and symmetrically for what's left of f2.
func partition(f1, f2 []string) (common, excl1, excl2 []string) {
	remaining2 := append([]string(nil), f2...)
	for _, f := range f1 {
		idx := indexOf(remaining2, f)
		if idx >= 0 {
			common = append(common, f)
			remaining2 = append(remaining2[:idx], remaining2[idx+1:]...)
		} else {
			excl1 = append(excl1, f)
		}
	}
	excl2 = remaining2
	return
}

func indexOf(haystack []string, needle string) int {
	for i, h := range haystack {
		if h == needle {
			return i
		}
	}
	return -1
}

func stripTrigPrefix(f string) string {
	if len(f) > 2 && (f[0] == 'c' || f[0] == 's') && f[1] == '_' {
		return f[2:]
	}
	return f
}

func unorderedEqual(a, b, a2, b2 string) bool {
	return (a == a2 && b == b2) || (a == b2 && b == a2)
}

func isTrigAtom(f string) bool {
	return len(f) > 0 && (f[0] == 'c' || f[0] == 's')
}

// tryReduce attempts to collapse mi and mj (i<j by caller convention) via
// the cosine-sum identity first, then the sine-sum identity.
func tryReduce(mi, mj exprtree.Monomial) (exprtree.Monomial, string, bool) {
	if scalar(mi) != scalar(mj) {
		return exprtree.Monomial{}, "", false
	}
	common, excl1, excl2 := partition(mi.Factors, mj.Factors)
	if len(excl1) != 2 || len(excl2) != 2 {
		return exprtree.Monomial{}, "", false
	}
	for _, f := range [][]string{excl1, excl2} {
		for _, factor := range f {
			if !isTrigAtom(factor) {
				return exprtree.Monomial{}, "", false
			}
		}
	}

	// Cosine-sum: cos(a+b) = cos(a)cos(b) - sin(a)sin(b). Tested first.
	if excl1[0][0] == excl1[1][0] && excl2[0][0] == excl2[1][0] && excl1[0][0] != excl2[0][0] {
		if mi.Positive != mj.Positive {
			a, b := stripTrigPrefix(excl1[0]), stripTrigPrefix(excl1[1])
			a2, b2 := stripTrigPrefix(excl2[0]), stripTrigPrefix(excl2[1])
			if unorderedEqual(a, b, a2, b2) {
				ccPositive := mi.Positive
				if excl1[0][0] != 'c' {
					ccPositive = mj.Positive
				}
				name := a + "_" + b
				atom := "c_" + name
				factors := append(append([]string{}, common...), atom)
				decl := fmt.Sprintf("double %s = cos(%s+%s);", atom, a, b)
				return exprtree.Monomial{Positive: ccPositive, Factors: factors}, decl, true
			}
		}
	}

	// Sine-sum: sin(a+b) = sin(a)cos(b) + cos(a)sin(b).
	if excl1[0][0] != excl1[1][0] && excl2[0][0] != excl2[1][0] {
		if mi.Positive == mj.Positive {
			a, b := stripTrigPrefix(excl1[0]), stripTrigPrefix(excl1[1])
			a2, b2 := stripTrigPrefix(excl2[0]), stripTrigPrefix(excl2[1])
			if unorderedEqual(a, b, a2, b2) {
				name := a + "_" + b
				atom := "s_" + name
				factors := append(append([]string{}, common...), atom)
				decl := fmt.Sprintf("double %s = sin(%s+%s);", atom, a, b)
				return exprtree.Monomial{Positive: mi.Positive, Factors: factors}, decl, true
			}
		}
	}

	return exprtree.Monomial{}, "", false
}
