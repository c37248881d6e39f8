package shplonk

import (
	"github.com/halo2shplonk/verifier/loader"
	"github.com/halo2shplonk/verifier/msm"
	"github.com/halo2shplonk/verifier/protocol"
)

// Commitments builds the poly_index -> MSM mapping of ยง4.5: preprocessed
// polys at their own index, auxiliaries offset past the statement gap
// (statements are evaluated via the Lagrange basis, never committed),
// and the vanishing/quotient aggregate folded by powers of z^n.
func (pf *Proof[S, P]) Commitments(
	ld loader.Loader[S, P],
	proto *protocol.Protocol[P],
	common CommonPolynomialEvaluation[S],
) map[int]msm.MSM[S, P] {
	out := make(map[int]msm.MSM[S, P], len(proto.Preprocessed)+len(pf.Auxiliaries)+1)

	for i, g := range proto.Preprocessed {
		out[i] = msm.Base[S, P](ld, g)
	}

	auxiliaryOffset := len(proto.Preprocessed) + proto.NumStatement
	for i, aux := range pf.Auxiliaries {
		out[auxiliaryOffset+i] = msm.Base[S, P](ld, aux)
	}

	quotientMSM := msm.Scalar[S, P](ld, ld.Zero())
	if len(pf.Quotients) > 0 {
		powersOfZn := ld.Powers(common.Zn, len(pf.Quotients))
		quotientMSM = msm.Base[S, P](ld, pf.Quotients[0]).Mul(powersOfZn[0])
		for i := 1; i < len(pf.Quotients); i++ {
			quotientMSM = quotientMSM.Add(msm.Base[S, P](ld, pf.Quotients[i]).Mul(powersOfZn[i]))
		}
	}
	out[proto.VanishingPoly()] = quotientMSM

	return out
}
