// Package msm implements the deferred multi-scalar-multiplication value
// used to compose pairing inputs without ever flattening into a concrete
// group element until the final step. An MSM stays symbolic through the
// whole verifier driver: collapsing it early would inflate group ops and,
// more importantly, would make the in-circuit loader infeasible (each
// coefficient would become a variable-base scalar multiplication).
package msm

// Ring is the scalar arithmetic MSM itself needs: enough to merge, scale
// and negate a linear combination without requiring the full loader
// capability set.
type Ring[S any] interface {
	Zero() S
	One() S
	Add(a, b S) S
	Sub(a, b S) S
	Mul(a, b S) S
	Neg(a S) S
}

// GroupOps is the group arithmetic needed only to collapse an MSM into a
// concrete point (Evaluate). Only a native loader backend needs to supply
// this; an in-circuit strategy never calls Evaluate and so never needs it.
type GroupOps[S any, P any] interface {
	Identity() P
	Add(a, b P) P
	ScalarMul(p P, s S) P
}

// MSM is a deferred linear combination: sum(coeffs[i] * bases[i]) +
// constant * (the generator Evaluate is eventually called with).
type MSM[S any, P any] struct {
	ring     Ring[S]
	bases    []P
	coeffs   []S
	constant S
}

// Base returns the MSM for 1*g: a single base with a unit coefficient.
func Base[S any, P any](ring Ring[S], g P) MSM[S, P] {
	return MSM[S, P]{
		ring:     ring,
		bases:    []P{g},
		coeffs:   []S{ring.One()},
		constant: ring.Zero(),
	}
}

// Scalar returns the MSM for the constant term s*1, with no bases.
func Scalar[S any, P any](ring Ring[S], s S) MSM[S, P] {
	return MSM[S, P]{ring: ring, constant: s}
}

// Add merges two MSMs: concatenates bases/coefficients and sums the
// constant terms. Addition is commutative and associative by construction.
func (m MSM[S, P]) Add(other MSM[S, P]) MSM[S, P] {
	bases := make([]P, 0, len(m.bases)+len(other.bases))
	coeffs := make([]S, 0, len(m.coeffs)+len(other.coeffs))
	bases = append(bases, m.bases...)
	bases = append(bases, other.bases...)
	coeffs = append(coeffs, m.coeffs...)
	coeffs = append(coeffs, other.coeffs...)
	return MSM[S, P]{
		ring:     m.ring,
		bases:    bases,
		coeffs:   coeffs,
		constant: m.ring.Add(m.constant, other.constant),
	}
}

// Sub is Add(other.Mul(-1)).
func (m MSM[S, P]) Sub(other MSM[S, P]) MSM[S, P] {
	return m.Add(other.Neg())
}

// Mul scales every coefficient and the constant term by s, distributing
// scalar multiplication over the linear combination.
func (m MSM[S, P]) Mul(s S) MSM[S, P] {
	coeffs := make([]S, len(m.coeffs))
	for i, c := range m.coeffs {
		coeffs[i] = m.ring.Mul(c, s)
	}
	return MSM[S, P]{
		ring:     m.ring,
		bases:    m.bases,
		coeffs:   coeffs,
		constant: m.ring.Mul(m.constant, s),
	}
}

// Neg negates every coefficient and the constant term.
func (m MSM[S, P]) Neg() MSM[S, P] {
	coeffs := make([]S, len(m.coeffs))
	for i, c := range m.coeffs {
		coeffs[i] = m.ring.Neg(c)
	}
	return MSM[S, P]{
		ring:     m.ring,
		bases:    m.bases,
		coeffs:   coeffs,
		constant: m.ring.Neg(m.constant),
	}
}

// Evaluate collapses the MSM against a generator g1: sum(coeffs[i] *
// bases[i]) + constant * g1. This is the one step that requires actual
// group arithmetic; only a native strategy ever calls it.
func (m MSM[S, P]) Evaluate(ops GroupOps[S, P], g1 P) P {
	acc := ops.ScalarMul(g1, m.constant)
	for i, base := range m.bases {
		acc = ops.Add(acc, ops.ScalarMul(base, m.coeffs[i]))
	}
	return acc
}

// Bases and Coeffs expose the accumulated terms read-only, for strategies
// that fold several MSMs before a single Evaluate (e.g. batch verifiers).
func (m MSM[S, P]) Bases() []P   { return m.bases }
func (m MSM[S, P]) Coeffs() []S  { return m.coeffs }
func (m MSM[S, P]) Constant() S  { return m.constant }
