package shplonk

import (
	"math/big"

	"github.com/halo2shplonk/verifier/loader"
	"github.com/halo2shplonk/verifier/protocol"
	"github.com/halo2shplonk/verifier/transcript"
)

// Proof is a deserialized transcript output, built once by ReadProof,
// consumed once by VerifyProof, and passed by pointer to the strategy.
type Proof[S any, P any] struct {
	Statements  [][]S
	Auxiliaries []P
	Challenges  []S
	Alpha       S
	Quotients   []P
	Z           S
	Evaluations []S
	Mu          S
	Gamma       S
	W           P
	ZPrime      S
	WPrime      P
}

// ReadProof absorbs and squeezes the transcript in the fixed order the
// prover side committed to (spec ยง4.4): deviating from this sequence
// yields a transcript that simply never agrees with a real proof, rather
// than a clean rejection.
func ReadProof[S any, P any](
	proto *protocol.Protocol[P],
	ld loader.Loader[S, P],
	statements [][]*big.Int,
	tr transcript.Transcript[S, P],
) (*Proof[S, P], error) {
	if err := tr.CommonScalar(ld.LoadConstScalar(proto.TranscriptInitialState)); err != nil {
		return nil, err
	}

	if len(statements) != proto.NumStatement {
		return nil, ErrInvalidInstances
	}
	loadedStatements := make([][]S, len(statements))
	for i, column := range statements {
		loaded := make([]S, len(column))
		for j, v := range column {
			s := ld.LoadVarScalar(v)
			if err := tr.CommonScalar(s); err != nil {
				return nil, err
			}
			loaded[j] = s
		}
		loadedStatements[i] = loaded
	}

	var auxiliaries []P
	var challenges []S
	for i, n := range proto.NumAuxiliary {
		points, err := tr.ReadNEcPoints(n)
		if err != nil {
			return nil, err
		}
		auxiliaries = append(auxiliaries, points...)
		challenges = append(challenges, tr.SqueezeNChallenges(proto.NumChallenge[i])...)
	}

	alpha := tr.SqueezeChallenge()

	maxDegree := proto.MaxRelationDegree()
	quotients, err := tr.ReadNEcPoints(maxDegree - 1)
	if err != nil {
		return nil, err
	}

	z := tr.SqueezeChallenge()
	evaluations, err := tr.ReadNScalars(len(proto.Evaluations))
	if err != nil {
		return nil, err
	}

	mu := tr.SqueezeChallenge()
	gamma := tr.SqueezeChallenge()
	w, err := tr.ReadEcPoint()
	if err != nil {
		return nil, err
	}
	zPrime := tr.SqueezeChallenge()
	wPrime, err := tr.ReadEcPoint()
	if err != nil {
		return nil, err
	}

	return &Proof[S, P]{
		Statements:  loadedStatements,
		Auxiliaries: auxiliaries,
		Challenges:  challenges,
		Alpha:       alpha,
		Quotients:   quotients,
		Z:           z,
		Evaluations: evaluations,
		Mu:          mu,
		Gamma:       gamma,
		W:           w,
		ZPrime:      zPrime,
		WPrime:      wPrime,
	}, nil
}
