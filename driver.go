// Package shplonk implements a SHPLONK multi-open verifier core for
// Halo2-shaped proof systems: given an already-compiled Protocol, a
// Proof read off a transcript, and a loader backend, it assembles the
// two group elements a pairing check (or an in-circuit accumulator) must
// relate, and hands them to a pluggable Strategy.
package shplonk

import (
	"math/big"

	"github.com/consensys/gnark/logger"

	"github.com/halo2shplonk/verifier/loader"
	"github.com/halo2shplonk/verifier/msm"
	"github.com/halo2shplonk/verifier/protocol"
	"github.com/halo2shplonk/verifier/transcript"
)

// VerifyProof reads a proof off tr, evaluates the protocol's relations at
// the opening point, folds the multi-open reduction into a single
// (lhs, rhs) pair, and invokes strategy.Process. The strategy decides
// what its return value O means; VerifyProof itself never calls
// strategy.Finalize (callers combine several VerifyProof calls, e.g. a
// batch verifier, before finalizing once).
func VerifyProof[S any, P any, O any](
	proto *protocol.Protocol[P],
	ld loader.Loader[S, P],
	statements [][]*big.Int,
	tr transcript.Transcript[S, P],
	strategy Strategy[S, P, O],
) (O, error) {
	var zero O
	log := logger.Logger().With().Str("function", "VerifyProof").Logger()

	pf, err := ReadProof(proto, ld, statements, tr)
	if err != nil {
		log.Error().Err(err).Msg("reading proof off transcript")
		return zero, err
	}

	maxStatementLen := 0
	for _, column := range statements {
		if len(column) > maxStatementLen {
			maxStatementLen = len(column)
		}
	}
	lagrangeSet := make(map[int32]struct{})
	for _, i := range protocol.UsedLagrangeOf(proto.Relations) {
		lagrangeSet[i] = struct{}{}
	}
	for i := 0; i < maxStatementLen; i++ {
		lagrangeSet[int32(i)] = struct{}{}
	}
	lagranges := make([]int32, 0, len(lagrangeSet))
	for i := range lagrangeSet {
		lagranges = append(lagranges, i)
	}

	common, err := NewCommonPolynomialEvaluation[S, P](ld, proto.Domain, lagranges, pf.Z)
	if err != nil {
		log.Error().Err(err).Msg("evaluating common polynomials")
		return zero, err
	}

	commitments := pf.Commitments(ld, proto, common)
	evaluations, err := pf.EvaluationTable(ld, proto, common)
	if err != nil {
		log.Error().Err(err).Msg("building evaluation table")
		return zero, err
	}

	sets, err := buildIntermediateSets[S, P](ld, proto, pf.Z, pf.ZPrime)
	if err != nil {
		log.Error().Err(err).Msg("building intermediate sets")
		return zero, err
	}
	log.Debug().Int("num_sets", len(sets)).Msg("intermediate sets built")

	maxPolys := 0
	for _, set := range sets {
		if len(set.Polys) > maxPolys {
			maxPolys = len(set.Polys)
		}
	}
	powersOfMu := ld.Powers(pf.Mu, maxPolys)

	setMSMs := make([]msm.MSM[S, P], len(sets))
	for i, set := range sets {
		m, err := set.msm(ld, commitments, evaluations, powersOfMu)
		if err != nil {
			log.Error().Err(err).Int("set", i).Msg("folding intermediate set")
			return zero, err
		}
		setMSMs[i] = m
	}

	powersOfGamma := ld.Powers(pf.Gamma, len(sets))

	f := msm.Scalar[S, P](ld, ld.Zero())
	if len(setMSMs) > 0 {
		f = setMSMs[0].Mul(powersOfGamma[len(sets)-1])
		for i := 1; i < len(setMSMs); i++ {
			f = f.Add(setMSMs[i].Mul(powersOfGamma[len(sets)-1-i]))
		}
		f = f.Sub(msm.Base[S, P](ld, pf.W).Mul(sets[0].ZS))
	}

	rhs := msm.Base[S, P](ld, pf.WPrime)
	lhs := f.Add(rhs.Mul(pf.ZPrime))

	return strategy.Process(pf, lhs, rhs)
}
