package protocol

import "math/big"

// ExprKind tags the node kind of an Expression.
type ExprKind int

const (
	ExprConstant ExprKind = iota
	ExprCommon
	ExprQuery
	ExprChallenge
	ExprNegated
	ExprSum
	ExprProduct
	ExprScaled
)

// Expression is an inductive tree describing a symbolic circuit relation
// that must vanish on the domain's subgroup. It never touches a loader
// type: it is built once, elsewhere (protocol compilation is out of
// scope), and evaluated by Evaluate against whichever loader backend the
// caller picked.
type Expression struct {
	Kind ExprKind

	Constant  *big.Int          // ExprConstant
	Common    CommonPolynomial  // ExprCommon
	Query     Query             // ExprQuery
	Challenge int               // ExprChallenge
	Operands  []Expression      // ExprNegated (Operands[0]), ExprSum, ExprProduct
	Scale     *big.Int          // ExprScaled, applies to Operands[0]
}

func Const(v *big.Int) Expression { return Expression{Kind: ExprConstant, Constant: v} }

func CommonExpr(c CommonPolynomial) Expression { return Expression{Kind: ExprCommon, Common: c} }

func QueryExpr(q Query) Expression { return Expression{Kind: ExprQuery, Query: q} }

func ChallengeExpr(index int) Expression { return Expression{Kind: ExprChallenge, Challenge: index} }

func Neg(a Expression) Expression {
	return Expression{Kind: ExprNegated, Operands: []Expression{a}}
}

func Sum(a, b Expression) Expression {
	return Expression{Kind: ExprSum, Operands: []Expression{a, b}}
}

func Product(a, b Expression) Expression {
	return Expression{Kind: ExprProduct, Operands: []Expression{a, b}}
}

func Scaled(a Expression, s *big.Int) Expression {
	return Expression{Kind: ExprScaled, Operands: []Expression{a}, Scale: s}
}

// Degree returns the polynomial degree of the expression, used to size the
// quotient commitment read out of the transcript.
func (e Expression) Degree() int {
	switch e.Kind {
	case ExprConstant, ExprCommon, ExprChallenge:
		return 0
	case ExprQuery:
		return 1
	case ExprNegated, ExprScaled:
		return e.Operands[0].Degree()
	case ExprSum:
		a, b := e.Operands[0].Degree(), e.Operands[1].Degree()
		if a > b {
			return a
		}
		return b
	case ExprProduct:
		return e.Operands[0].Degree() + e.Operands[1].Degree()
	default:
		return 0
	}
}

// UsedLagrange returns the set of Lagrange indices this expression
// references, deduplicated, in no particular order.
func (e Expression) UsedLagrange() []int32 {
	seen := map[int32]struct{}{}
	e.collectLagrange(seen)
	out := make([]int32, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	return out
}

func (e Expression) collectLagrange(seen map[int32]struct{}) {
	switch e.Kind {
	case ExprCommon:
		if e.Common.Kind == Lagrange {
			seen[e.Common.LagrangeIndex] = struct{}{}
		}
	case ExprNegated, ExprScaled:
		e.Operands[0].collectLagrange(seen)
	case ExprSum, ExprProduct:
		e.Operands[0].collectLagrange(seen)
		e.Operands[1].collectLagrange(seen)
	}
}

// UsedLagrangeOf is a convenience that unions UsedLagrange over a slice of
// relations, matching the driver's "sum of relations" shorthand in the
// reference verifier.
func UsedLagrangeOf(relations []Expression) []int32 {
	seen := map[int32]struct{}{}
	for _, r := range relations {
		r.collectLagrange(seen)
	}
	out := make([]int32, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	return out
}

// Handlers bundles the loader-typed primitive callbacks Evaluate folds an
// Expression through. Keeping Expression itself loader-agnostic and
// threading these closures instead is what lets one AST serve every loader
// backend without becoming generic over S.
type Handlers[S any] struct {
	Constant  func(*big.Int) (S, error)
	Common    func(CommonPolynomial) (S, error)
	Query     func(Query) (S, error)
	Challenge func(int) (S, error)
	Negate    func(S) (S, error)
	Sum       func(S, S) (S, error)
	Product   func(S, S) (S, error)
	Scale     func(S, *big.Int) (S, error)
}

// Evaluate homomorphically folds e through h, producing a loaded scalar of
// type S.
func Evaluate[S any](e Expression, h Handlers[S]) (S, error) {
	switch e.Kind {
	case ExprConstant:
		return h.Constant(e.Constant)
	case ExprCommon:
		return h.Common(e.Common)
	case ExprQuery:
		return h.Query(e.Query)
	case ExprChallenge:
		return h.Challenge(e.Challenge)
	case ExprNegated:
		a, err := Evaluate(e.Operands[0], h)
		if err != nil {
			var zero S
			return zero, err
		}
		return h.Negate(a)
	case ExprSum:
		a, err := Evaluate(e.Operands[0], h)
		if err != nil {
			var zero S
			return zero, err
		}
		b, err := Evaluate(e.Operands[1], h)
		if err != nil {
			var zero S
			return zero, err
		}
		return h.Sum(a, b)
	case ExprProduct:
		a, err := Evaluate(e.Operands[0], h)
		if err != nil {
			var zero S
			return zero, err
		}
		b, err := Evaluate(e.Operands[1], h)
		if err != nil {
			var zero S
			return zero, err
		}
		return h.Product(a, b)
	case ExprScaled:
		a, err := Evaluate(e.Operands[0], h)
		if err != nil {
			var zero S
			return zero, err
		}
		return h.Scale(a, e.Scale)
	default:
		var zero S
		return zero, nil
	}
}
