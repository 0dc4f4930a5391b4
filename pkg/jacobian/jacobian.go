// Package jacobian is the downstream numerical Jacobian assembly and
// pseudo-inverse consumer described informationally in spec §6: it is not
// part of the three core kinematics subsystems, but it is the natural
// consumer of the emitted forward_kinematics/differential_kinematics_dqi
// functions, assembling a 6xn Jacobian and solving it the way
// robot_template.h's get_jacobian/inverse_differential_kinematics did with
// Eigen, here with gonum.
package jacobian

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix4 mirrors the [4][4]float64 shape the emitted module returns.
type Matrix4 = [4][4]float64

// Assemble builds the 6xn Jacobian at the joint values implied by pose and
// diffs: rows 0-2 are the translational partials (the X,Y,Z column of each
// dM/dqi), rows 3-5 are the rotational partials obtained by differentiating
// the atan2-based Euler-angle extraction
//
//	thetaX = atan2(R32, R33)
//	thetaY = atan2(-R31, sqrt(R32^2+R33^2))
//	thetaZ = atan2(R21, R11)
//
// through the chain rule, exactly as the original's downstream IK layer
// does against the emitted forward/differential kinematics.
func Assemble(pose Matrix4, diffs []Matrix4) *mat.Dense {
	n := len(diffs)
	J := mat.NewDense(6, n, nil)

	r11, r21 := pose[0][0], pose[1][0]
	r31, r32, r33 := pose[2][0], pose[2][1], pose[2][2]
	denomY := math.Sqrt(r32*r32 + r33*r33)

	for i, d := range diffs {
		J.Set(0, i, d[0][3])
		J.Set(1, i, d[1][3])
		J.Set(2, i, d[2][3])

		dr11, dr21 := d[0][0], d[1][0]
		dr31, dr32, dr33 := d[2][0], d[2][1], d[2][2]

		dThetaX := (dr32*r33 - r32*dr33) / (r32*r32 + r33*r33)
		dDenomY := 0.0
		if denomY != 0 {
			dDenomY = (r32*dr32 + r33*dr33) / denomY
		}
		dThetaY := (-dr31*denomY + r31*dDenomY) / (denomY*denomY + r31*r31)
		dThetaZ := (dr21*r11 - r21*dr11) / (r21*r21 + r11*r11)

		J.Set(3, i, dThetaX)
		J.Set(4, i, dThetaY)
		J.Set(5, i, dThetaZ)
	}
	return J
}

// PseudoInverse solves J+ = V*S+*U^T via gonum's thin SVD, the consumer's
// inverse_differential_kinematics step.
func PseudoInverse(J *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(J, mat.SVDThin); !ok {
		return nil, ErrSingular
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	k := len(values)
	sPlus := mat.NewDense(k, k, nil)
	for i, s := range values {
		if s > 1e-12 {
			sPlus.Set(i, i, 1/s)
		}
	}

	var tmp, out mat.Dense
	tmp.Mul(&v, sPlus)
	out.Mul(&tmp, u.T())
	return &out, nil
}
