// Package codegen is the numerical code emitter: it walks a chain's
// symbolic pose and per-joint differentials, runs each of the 12 matrix
// entries of rows 0-2 through the stringifier, parser and trig simplifier
// (row 3 is emitted as the literal [0,0,0,1]), and prints one
// self-contained Go function per kinematic matrix.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/itohio/dhgen/pkg/kinematics/dh"
	"github.com/itohio/dhgen/pkg/kinematics/exprtree"
	"github.com/itohio/dhgen/pkg/kinematics/simplify"
	"github.com/itohio/dhgen/pkg/symbolic"
	"github.com/itohio/dhgen/x/options"
)

// settings are the emitter's functional-option knobs.
type settings struct {
	aggregator bool
}

func defaultSettings() *settings {
	return &settings{aggregator: true}
}

// WithAggregator controls whether the differential_kinematics aggregator
// function (§6's "optionally an aggregator") is emitted. Enabled by
// default.
func WithAggregator(enabled bool) options.Option {
	return func(cfg interface{}) {
		cfg.(*settings).aggregator = enabled
	}
}

// Emit writes a self-contained Go source file to w: package header, one
// forward_kinematics function for the pose, one differential_kinematics_dq<id>
// function per actuated joint, and (by default) an aggregator
// differential_kinematics.
func Emit(w io.Writer, chain *dh.Chain, packageName string, opts ...options.Option) error {
	cfg := defaultSettings()
	options.ApplyOptions(cfg, opts...)

	pose, err := chain.Pose()
	if err != nil {
		return err
	}
	diffs, err := chain.Differentials()
	if err != nil {
		return err
	}
	joints := chain.ActuatedJoints()

	if _, err := fmt.Fprintf(w, "package %s\n\nimport \"math\"\n\n", packageName); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	if err := emitMatrixFunc(w, "forward_kinematics", joints, pose); err != nil {
		return err
	}

	for _, joint := range joints {
		m, ok := diffs[joint]
		if !ok {
			continue
		}
		name := "differential_kinematics_d" + joint
		if err := emitMatrixFunc(w, name, joints, m); err != nil {
			return err
		}
	}

	if cfg.aggregator {
		if err := emitAggregator(w, joints); err != nil {
			return err
		}
	}

	return nil
}

func paramList(joints []string) string {
	parts := make([]string, len(joints))
	for i, j := range joints {
		parts[i] = j + " float64"
	}
	return strings.Join(parts, ", ")
}

func argList(joints []string) string {
	return strings.Join(joints, ", ")
}

// emitMatrixFunc stringifies, parses and simplifies the 12 non-literal
// entries of matrix (row 3 is always the literal [0,0,0,1] per the DH
// construction invariant), then prints one Go function computing all 16.
func emitMatrixFunc(w io.Writer, funcName string, joints []string, matrix [4][4]*symbolic.Expr) error {
	var cells [3][4]exprtree.SumExpr
	var decls []string
	seen := map[string]bool{}

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			raw := matrix[r][c].String()
			guarded := exprtree.Stringify(raw, joints)
			parsed, err := exprtree.Parse(guarded)
			if err != nil {
				return err
			}
			simplified, ds := simplify.Simplify(parsed)
			cells[r][c] = simplified
			for _, d := range ds {
				if !seen[d] {
					seen[d] = true
					decls = append(decls, d)
				}
			}
		}
	}

	if _, err := fmt.Fprintf(w, "func %s(%s) [4][4]float64 {\n", funcName, paramList(joints)); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	// A joint's trig atoms are only worth hoisting when some entry still
	// carries the raw c_<j>/s_<j> factor after simplification. A
	// Prismatic joint's free variable is "d": it never passes through
	// sin/cos of itself, so neither atom appears anywhere and the local
	// would be declared and unused - a compile error Go doesn't tolerate
	// the way the source's C++ output did.
	usedTrig := map[string]bool{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			for _, m := range cells[r][c] {
				for _, f := range m.Factors {
					usedTrig[f] = true
				}
			}
		}
	}
	for _, j := range joints {
		cj, sj := "c_"+j, "s_"+j
		if usedTrig[cj] {
			if _, err := fmt.Fprintf(w, "\tc_%s := math.Cos(%s)\n", j, j); err != nil {
				return fmt.Errorf("%w: %v", ErrIOFailure, err)
			}
		}
		if usedTrig[sj] {
			if _, err := fmt.Fprintf(w, "\ts_%s := math.Sin(%s)\n", j, j); err != nil {
				return fmt.Errorf("%w: %v", ErrIOFailure, err)
			}
		}
	}

	for _, d := range decls {
		name, fn, a, b := parseDecl(d)
		goFn := map[string]string{"cos": "Cos", "sin": "Sin"}[fn]
		if _, err := fmt.Fprintf(w, "\t%s := math.%s(%s + %s)\n", name, goFn, a, b); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}

	if _, err := fmt.Fprint(w, "\tvar m [4][4]float64\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			text := cells[r][c].String()
			if text == "" || text == "0" {
				text = "0"
			}
			text = exprtree.RestoreExponents(text)
			if _, err := fmt.Fprintf(w, "\tm[%d][%d] = %s\n", r, c, text); err != nil {
				return fmt.Errorf("%w: %v", ErrIOFailure, err)
			}
		}
	}
	// Row 3 is always [0,0,0,1]: a literal emission, guaranteed by DH
	// construction, never computed symbolically.
	for c := 0; c < 4; c++ {
		lit := "0"
		if c == 3 {
			lit = "1"
		}
		if _, err := fmt.Fprintf(w, "\tm[3][%d] = %s\n", c, lit); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}

	if _, err := fmt.Fprint(w, "\treturn m\n}\n\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return nil
}

// emitAggregator prints differential_kinematics, which returns every
// differential_kinematics_dq<id> result in declaration order.
func emitAggregator(w io.Writer, joints []string) error {
	if _, err := fmt.Fprintf(w, "func differential_kinematics(%s) [][4][4]float64 {\n", paramList(joints)); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if _, err := fmt.Fprintf(w, "\treturn [][4][4]float64{\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	for _, j := range joints {
		if _, err := fmt.Fprintf(w, "\t\tdifferential_kinematics_d%s(%s),\n", j, argList(joints)); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}
	if _, err := fmt.Fprint(w, "\t}\n}\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return nil
}

// parseDecl extracts name/fn/a/b from a declaration string of the form
// "double <name> = <fn>(<a>+<b>);".
func parseDecl(s string) (name, fn, a, b string) {
	s = strings.TrimPrefix(s, "double ")
	s = strings.TrimSuffix(s, ";")
	parts := strings.SplitN(s, " = ", 2)
	name = parts[0]
	rhs := parts[1]
	open := strings.Index(rhs, "(")
	fn = rhs[:open]
	inner := rhs[open+1 : len(rhs)-1]
	ab := strings.SplitN(inner, "+", 2)
	return name, fn, ab[0], ab[1]
}
