package dh

import (
	"fmt"

	"github.com/itohio/dhgen/pkg/kinematics/mat4"
	"github.com/itohio/dhgen/pkg/symbolic"
)

// Chain is an ordered sequence of link transforms plus the ordered list of
// actuated joint symbols, in the order their owning links appear.
type Chain struct {
	links []*Transform
}

// NewChain wraps an ordered list of link transforms.
func NewChain(links ...*Transform) *Chain {
	return &Chain{links: links}
}

// Links returns the chain's links in declaration order.
func (c *Chain) Links() []*Transform { return c.links }

// ActuatedJoints returns the joint symbol names of every non-Static link,
// in declaration order.
func (c *Chain) ActuatedJoints() []string {
	joints := make([]string, 0, len(c.links))
	for _, l := range c.links {
		if l.IsActuated() {
			joints = append(joints, l.jointSym)
		}
	}
	return joints
}

// Pose builds the symbolic end-effector pose M(q) = L1*L2*...*Ln by
// repeated symbolic 4x4 multiplication, left to right.
func (c *Chain) Pose() ([4][4]*symbolic.Expr, error) {
	if len(c.links) == 0 {
		return [4][4]*symbolic.Expr{}, fmt.Errorf("%w: empty chain", symbolic.ErrMalformedExpression)
	}
	pose := c.links[0].Matrix()
	for _, l := range c.links[1:] {
		pose = mulSym4(pose, l.Matrix())
	}
	return pose, nil
}

// Differentials returns dM/dqi for every actuated joint, keyed by joint
// symbol. The map is unordered; ActuatedJoints gives the declaration order.
func (c *Chain) Differentials() (map[string][4][4]*symbolic.Expr, error) {
	pose, err := c.Pose()
	if err != nil {
		return nil, err
	}

	out := make(map[string][4][4]*symbolic.Expr, len(c.links))
	for _, joint := range c.ActuatedJoints() {
		var d [4][4]*symbolic.Expr
		for r := 0; r < 4; r++ {
			for col := 0; col < 4; col++ {
				entry, err := pose[r][col].Diff(joint)
				if err != nil {
					return nil, err
				}
				d[r][col] = entry
			}
		}
		out[joint] = d
	}
	return out, nil
}

// Positions evaluates the cumulative numeric transforms T1, T1*T2, ...,
// T1*...*Tn, one per link in declaration order. jointValues must carry at
// least as many entries as the chain has actuated links; the joint-value
// index only advances when an actuated link is consumed.
func (c *Chain) Positions(jointValues []float64) ([]mat4.M, error) {
	actuated := 0
	for _, l := range c.links {
		if l.IsActuated() {
			actuated++
		}
	}
	if len(jointValues) < actuated {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrJointUnderflow, actuated, len(jointValues))
	}

	positions := make([]mat4.M, 0, len(c.links))
	cumulative := mat4.Eye()
	idx := 0
	for _, l := range c.links {
		var jointValue float64
		if l.IsActuated() {
			jointValue = jointValues[idx]
			idx++
		}
		t, err := l.Evaluate(jointValue)
		if err != nil {
			return nil, err
		}
		cumulative = cumulative.Mul(t)
		positions = append(positions, cumulative)
	}
	return positions, nil
}

// mulSym4 performs the standard symbolic 4x4 matrix product, every entry
// kept in expanded sum-of-products form (no common-subterm sharing).
func mulSym4(a, b [4][4]*symbolic.Expr) [4][4]*symbolic.Expr {
	var out [4][4]*symbolic.Expr
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := symbolic.Mul(a[r][0], b[0][c])
			for k := 1; k < 4; k++ {
				sum = symbolic.Add(sum, symbolic.Mul(a[r][k], b[k][c]))
			}
			out[r][c] = sum
		}
	}
	return out
}
