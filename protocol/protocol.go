package protocol

import "math/big"

// Protocol is the compiled, immutable description of a circuit's shape and
// query plan. It is produced by a protocol compiler (out of scope here) and
// consumed, never mutated, by the verifier driver.
//
// Protocol is generic over its preprocessed commitment type P so the same
// shape can in principle describe a proof over any curve; every call site
// in this repository instantiates P as bn254.G1Affine.
type Protocol[P any] struct {
	Domain       *Domain
	Preprocessed []P

	NumStatement int
	NumAuxiliary []int
	NumChallenge []int

	Relations   []Expression
	Queries     []Query
	Evaluations []Query

	TranscriptInitialState *big.Int
}

// VanishingPoly returns the synthetic poly index assigned to the quotient
// commitment, disjoint from every preprocessed and auxiliary poly index.
func (p *Protocol[P]) VanishingPoly() int {
	total := len(p.Preprocessed) + p.NumStatement
	for _, n := range p.NumAuxiliary {
		total += n
	}
	return total
}

// MaxRelationDegree returns the largest degree among the protocol's
// relations, used to size the quotient commitment read from the
// transcript (max_degree - 1 points).
func (p *Protocol[P]) MaxRelationDegree() int {
	max := 0
	for _, r := range p.Relations {
		if d := r.Degree(); d > max {
			max = d
		}
	}
	return max
}
