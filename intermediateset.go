package shplonk

import (
	"math/big"

	"github.com/halo2shplonk/verifier/loader"
	"github.com/halo2shplonk/verifier/msm"
	"github.com/halo2shplonk/verifier/protocol"
)

// IntermediateSet groups every poly opened at the same rotation set into
// one barycentric combination (spec ยง4.6). One is built per distinct
// rotation set encountered among the protocol's queries, in first-seen
// order.
type IntermediateSet[S any, P any] struct {
	Polys            []int
	Rotations        []protocol.Rotation
	ZS               S
	CommitmentCoeff  *S // nil for the first set encountered
	EvaluationCoeffs []S
	RemainderCoeff   S
}

// powZKMinusOne computes z^(k-1) by repeated-squaring exponentiation. The
// Rust source this package is ported from instead folds set bits of
// (k-1) against a table of squarings, but its bit test only ever
// inspects bit 0 (`& (1 << i) == 1`) and silently drops every higher bit
// — so this computes the exponent directly instead of reusing that table.
// The test suite in this package checks it against naive repeated
// multiplication for small k.
func powZKMinusOne[S any, P any](ld loader.Loader[S, P], z S, k int) S {
	kMinusOne := k - 1
	result := ld.One()
	base := z
	for kMinusOne > 0 {
		if kMinusOne&1 == 1 {
			result = ld.Mul(result, base)
		}
		base = ld.Mul(base, base)
		kMinusOne >>= 1
	}
	return result
}

func newIntermediateSet[S any, P any](
	ld loader.Loader[S, P],
	dom *protocol.Domain,
	rotations []protocol.Rotation,
	z S,
	zPrime S,
	zPrimeMinusZOmega map[protocol.Rotation]S,
	zSFirst *S,
) (IntermediateSet[S, P], error) {
	omegas := make([]*big.Int, len(rotations))
	for i, r := range rotations {
		omegas[i] = dom.RotateScalar(big.NewInt(1), r)
	}

	normalizedEllPrimes := make([]*big.Int, len(omegas))
	for j, omegaJ := range omegas {
		acc := big.NewInt(1)
		for i, omegaI := range omegas {
			if i == j {
				continue
			}
			diff := new(big.Int).Sub(omegaJ, omegaI)
			diff.Mod(diff, dom.Modulus)
			acc.Mul(acc, diff)
			acc.Mod(acc, dom.Modulus)
		}
		normalizedEllPrimes[j] = acc
	}

	zPowKMinusOne := powZKMinusOne[S, P](ld, z, len(rotations))

	barycentricWeights := make([]S, len(rotations))
	for j, omegaJ := range omegas {
		ellPrimeJ := ld.LoadConstScalar(normalizedEllPrimes[j])
		negEllPrimeOmegaJ := new(big.Int).Mul(normalizedEllPrimes[j], omegaJ)
		negEllPrimeOmegaJ.Mod(negEllPrimeOmegaJ, dom.Modulus)
		negEllPrimeOmegaJ.Sub(dom.Modulus, negEllPrimeOmegaJ)
		negEllPrimeOmegaJ.Mod(negEllPrimeOmegaJ, dom.Modulus)
		negEllPrimeOmegaJS := ld.LoadConstScalar(negEllPrimeOmegaJ)

		value := ld.SumProductsWithCoeffAndConstant([]loader.Term[S]{
			{Coeff: ellPrimeJ, A: zPowKMinusOne, B: zPrime},
			{Coeff: negEllPrimeOmegaJS, A: zPowKMinusOne, B: z},
		}, ld.Zero())
		inv, err := ld.Invert(value)
		if err != nil {
			return IntermediateSet[S, P]{}, err
		}
		barycentricWeights[j] = inv
	}

	zs := zPrimeMinusZOmega[rotations[0]]
	for _, r := range rotations[1:] {
		zs = ld.Mul(zs, zPrimeMinusZOmega[r])
	}

	var commitmentCoeff *S
	if zSFirst != nil {
		zsInv, err := ld.Invert(zs)
		if err != nil {
			return IntermediateSet[S, P]{}, err
		}
		c := ld.Mul(*zSFirst, zsInv)
		commitmentCoeff = &c
	}

	weightsSum := ld.Sum(barycentricWeights)
	weightsSumInv, err := ld.Invert(weightsSum)
	if err != nil {
		return IntermediateSet[S, P]{}, err
	}
	remainderCoeff := weightsSumInv
	if commitmentCoeff != nil {
		remainderCoeff = ld.Mul(*commitmentCoeff, weightsSumInv)
	}

	return IntermediateSet[S, P]{
		Rotations:        rotations,
		ZS:               zs,
		CommitmentCoeff:  commitmentCoeff,
		EvaluationCoeffs: barycentricWeights,
		RemainderCoeff:   remainderCoeff,
	}, nil
}

// msm folds the set's polys against powersOfMu, descending, per ยง4.6's
// "Set MSM" step.
func (set IntermediateSet[S, P]) msm(
	ld loader.Loader[S, P],
	commitments map[int]msm.MSM[S, P],
	evaluations map[protocol.Query]S,
	powersOfMu []S,
) (msm.MSM[S, P], error) {
	var acc msm.MSM[S, P]
	initialized := false

	for t, poly := range set.Polys {
		powerOfMu := powersOfMu[len(set.Polys)-1-t]

		commitment, ok := commitments[poly]
		if !ok {
			return msm.MSM[S, P]{}, &MissingQueryError{Query: protocol.Query{Poly: poly, Rotation: set.Rotations[0]}}
		}
		if set.CommitmentCoeff != nil {
			commitment = commitment.Mul(*set.CommitmentCoeff)
		}

		terms := make([]S, len(set.Rotations))
		for j, r := range set.Rotations {
			v, ok := evaluations[protocol.Query{Poly: poly, Rotation: r}]
			if !ok {
				return msm.MSM[S, P]{}, &MissingQueryError{Query: protocol.Query{Poly: poly, Rotation: r}}
			}
			terms[j] = ld.Mul(set.EvaluationCoeffs[j], v)
		}
		remainder := ld.Mul(set.RemainderCoeff, ld.Sum(terms))

		termMSM := commitment.Sub(msm.Scalar[S, P](ld, remainder)).Mul(powerOfMu)
		if !initialized {
			acc = termMSM
			initialized = true
		} else {
			acc = acc.Add(termMSM)
		}
	}

	return acc, nil
}

// buildIntermediateSets groups protocol.queries by rotation set (ยง4.6,
// "Grouping") and constructs one IntermediateSet per distinct set, in
// first-seen order.
func buildIntermediateSets[S any, P any](
	ld loader.Loader[S, P],
	proto *protocol.Protocol[P],
	z S,
	zPrime S,
) ([]IntermediateSet[S, P], error) {
	type polyRotations struct {
		poly      int
		rotations []protocol.Rotation
		set       map[protocol.Rotation]struct{}
	}

	var ordered []*polyRotations
	byPoly := map[int]*polyRotations{}
	superset := map[protocol.Rotation]struct{}{}

	for _, q := range proto.Queries {
		superset[q.Rotation] = struct{}{}
		pr, ok := byPoly[q.Poly]
		if !ok {
			pr = &polyRotations{poly: q.Poly, set: map[protocol.Rotation]struct{}{}}
			byPoly[q.Poly] = pr
			ordered = append(ordered, pr)
		}
		if _, seen := pr.set[q.Rotation]; !seen {
			pr.set[q.Rotation] = struct{}{}
			pr.rotations = append(pr.rotations, q.Rotation)
		}
	}

	zPrimeMinusZOmega := make(map[protocol.Rotation]S, len(superset))
	for r := range superset {
		omega := domRotate(proto.Domain, r)
		omegaS := ld.LoadConstScalar(omega)
		zPrimeMinusZOmega[r] = ld.Sub(zPrime, ld.Mul(z, omegaS))
	}

	var sets []IntermediateSet[S, P]
	var zSFirst *S

	for _, pr := range ordered {
		matchIdx := -1
		for i := range sets {
			if sameRotationSet(sets[i].Rotations, pr.rotations) {
				matchIdx = i
				break
			}
		}
		if matchIdx >= 0 {
			already := false
			for _, p := range sets[matchIdx].Polys {
				if p == pr.poly {
					already = true
					break
				}
			}
			if !already {
				sets[matchIdx].Polys = append(sets[matchIdx].Polys, pr.poly)
			}
			continue
		}

		newSet, err := newIntermediateSet[S, P](ld, proto.Domain, pr.rotations, z, zPrime, zPrimeMinusZOmega, zSFirst)
		if err != nil {
			return nil, err
		}
		newSet.Polys = []int{pr.poly}
		if zSFirst == nil {
			zs := newSet.ZS
			zSFirst = &zs
		}
		sets = append(sets, newSet)
	}

	return sets, nil
}

func sameRotationSet(a, b []protocol.Rotation) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[protocol.Rotation]struct{}, len(a))
	for _, r := range a {
		set[r] = struct{}{}
	}
	for _, r := range b {
		if _, ok := set[r]; !ok {
			return false
		}
	}
	return true
}

func domRotate(dom *protocol.Domain, r protocol.Rotation) *big.Int {
	return dom.RotateScalar(big.NewInt(1), r)
}
