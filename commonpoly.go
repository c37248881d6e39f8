package shplonk

import (
	"math/big"

	"github.com/halo2shplonk/verifier/loader"
	"github.com/halo2shplonk/verifier/protocol"
)

// CommonPolynomialEvaluation holds every domain-derived scalar the
// expression evaluator and statement-evaluation step need at the opening
// point z: z^n, the inverse of the vanishing polynomial z^n - 1, and one Lagrange basis
// evaluation per index actually referenced by the relations or the
// statement columns.
type CommonPolynomialEvaluation[S any] struct {
	Zn            S
	ZnMinusOneInv S
	lagrange      map[int32]S
}

// Get resolves a CommonPolynomial to its evaluation at z. The caller is
// expected to have requested every Lagrange index it will later look up
// via the lagranges argument of NewCommonPolynomialEvaluation.
func (c CommonPolynomialEvaluation[S]) Get(p protocol.CommonPolynomial) S {
	v, ok := c.lagrange[p.LagrangeIndex]
	if !ok {
		panic("shplonk: common polynomial evaluation missing requested lagrange index")
	}
	return v
}

// NewCommonPolynomialEvaluation computes Z_H(z) = z^n - 1, its inverse,
// and L_i(z) for each requested Lagrange index i via the standard
// barycentric identity L_i(z) = omega^i * (z^n - 1) / (n * (z - omega^i)).
// z^n is folded by K successive squarings rather than n-1 multiplications.
func NewCommonPolynomialEvaluation[S any, P any](
	ld loader.Loader[S, P],
	dom *protocol.Domain,
	lagranges []int32,
	z S,
) (CommonPolynomialEvaluation[S], error) {
	zn := z
	for i := 0; i < dom.K; i++ {
		zn = ld.Mul(zn, zn)
	}
	znMinusOne := ld.Sub(zn, ld.One())
	znMinusOneInv, err := ld.Invert(znMinusOne)
	if err != nil {
		return CommonPolynomialEvaluation[S]{}, err
	}

	nInv := new(big.Int).ModInverse(new(big.Int).SetUint64(dom.N), dom.Modulus)
	nInvS := ld.LoadConstScalar(nInv)

	lagrange := make(map[int32]S, len(lagranges))
	for _, i := range lagranges {
		omegaI := dom.RotateScalar(big.NewInt(1), protocol.Rotation(i))
		omegaIS := ld.LoadConstScalar(omegaI)
		numer := ld.Mul(omegaIS, znMinusOne)
		denom, err := ld.Invert(ld.Sub(z, omegaIS))
		if err != nil {
			return CommonPolynomialEvaluation[S]{}, err
		}
		lagrange[i] = ld.Mul(ld.Mul(numer, denom), nInvS)
	}

	return CommonPolynomialEvaluation[S]{
		Zn:            zn,
		ZnMinusOneInv: znMinusOneInv,
		lagrange:      lagrange,
	}, nil
}
