package shplonk

import (
	"math/big"

	"github.com/halo2shplonk/verifier/loader"
	"github.com/halo2shplonk/verifier/protocol"
)

// EvaluationTable builds the Query -> S lookup of ยง4.8: the
// transcript-provided evaluations, one Lagrange-weighted sum per
// statement column, and the quotient evaluation folded from every
// relation by descending powers of alpha.
func (pf *Proof[S, P]) EvaluationTable(
	ld loader.Loader[S, P],
	proto *protocol.Protocol[P],
	common CommonPolynomialEvaluation[S],
) (map[protocol.Query]S, error) {
	evaluations := make(map[protocol.Query]S, len(proto.Evaluations)+len(pf.Statements)+1)

	for i, column := range pf.Statements {
		terms := make([]S, len(column))
		for j, stmt := range column {
			terms[j] = ld.Mul(stmt, common.Get(protocol.LagrangePoly(int32(j))))
		}
		evaluations[protocol.Query{Poly: len(proto.Preprocessed) + i, Rotation: protocol.Cur()}] = ld.Sum(terms)
	}

	for i, q := range proto.Evaluations {
		if i >= len(pf.Evaluations) {
			return nil, &MissingQueryError{Query: q}
		}
		evaluations[q] = pf.Evaluations[i]
	}

	powersOfAlpha := ld.Powers(pf.Alpha, len(proto.Relations))
	relationTerms := make([]S, len(proto.Relations))
	for i, relation := range proto.Relations {
		handlers := protocol.Handlers[S]{
			Constant: func(v *big.Int) (S, error) { return ld.LoadConstScalar(v), nil },
			Common:   func(c protocol.CommonPolynomial) (S, error) { return common.Get(c), nil },
			Query: func(q protocol.Query) (S, error) {
				v, ok := evaluations[q]
				if !ok {
					var zero S
					return zero, &MissingQueryError{Query: q}
				}
				return v, nil
			},
			Challenge: func(idx int) (S, error) {
				if idx < 0 || idx >= len(pf.Challenges) {
					var zero S
					return zero, &MissingChallengeError{Index: idx}
				}
				return pf.Challenges[idx], nil
			},
			Negate:  func(a S) (S, error) { return ld.Neg(a), nil },
			Sum:     func(a, b S) (S, error) { return ld.Add(a, b), nil },
			Product: func(a, b S) (S, error) { return ld.Mul(a, b), nil },
			Scale:   func(a S, s *big.Int) (S, error) { return ld.Mul(a, ld.LoadConstScalar(s)), nil },
		}

		value, err := protocol.Evaluate(relation, handlers)
		if err != nil {
			return nil, err
		}
		powerOfAlpha := powersOfAlpha[len(proto.Relations)-1-i]
		relationTerms[i] = ld.Mul(powerOfAlpha, value)
	}

	quotientEvaluation := ld.Mul(ld.Sum(relationTerms), common.ZnMinusOneInv)
	evaluations[protocol.Query{Poly: proto.VanishingPoly(), Rotation: protocol.Cur()}] = quotientEvaluation

	return evaluations, nil
}
