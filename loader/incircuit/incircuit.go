// Package incircuit implements loader.Loader over a gnark frontend.API,
// building a same-field witness: the outer circuit's native field is taken
// to equal the inner proof's scalar field, which is what lets this loader
// serve a parent circuit composing (accumulating) this verifier rather
// than re-deriving pairing arithmetic in-circuit — pairing stays external
// per the core's scope (spec ยง1).
package incircuit

import (
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/halo2shplonk/verifier/loader"
)

// Point is the in-circuit representation of a constant group element: its
// affine coordinates as loaded witness/constant variables. No group
// arithmetic is defined on Point — the MSM type keeps bases and
// coefficients symbolic, and an in-circuit strategy never calls
// MSM.Evaluate, so Point never needs Add or ScalarMul.
type Point struct {
	X, Y frontend.Variable
}

// Loader is a loader.Loader[frontend.Variable, Point] backed by a single
// frontend.API call site, as gnark's own std/algebra packages are built.
type Loader struct {
	API frontend.API
}

var _ loader.Loader[frontend.Variable, Point] = Loader{}

func (l Loader) LoadConstScalar(v any) frontend.Variable {
	return frontend.Variable(v)
}

func (l Loader) LoadVarScalar(v any) frontend.Variable {
	return frontend.Variable(v)
}

func (l Loader) LoadConstPoint(p any) Point {
	switch x := p.(type) {
	case Point:
		return x
	case [2]frontend.Variable:
		return Point{X: x[0], Y: x[1]}
	default:
		panic(fmt.Sprintf("incircuit loader: unsupported point input type %T", p))
	}
}

func (l Loader) Zero() frontend.Variable { return frontend.Variable(0) }

func (l Loader) One() frontend.Variable { return frontend.Variable(1) }

func (l Loader) Add(a, b frontend.Variable) frontend.Variable { return l.API.Add(a, b) }

func (l Loader) Sub(a, b frontend.Variable) frontend.Variable { return l.API.Sub(a, b) }

func (l Loader) Mul(a, b frontend.Variable) frontend.Variable { return l.API.Mul(a, b) }

func (l Loader) Neg(a frontend.Variable) frontend.Variable { return l.API.Neg(a) }

// Invert returns a^-1. Unlike the native backend, an in-circuit inverse of
// a witnessed zero does not fail at verification build time: the
// constraint `a * inv == 1` becomes unsatisfiable and the circuit simply
// fails to prove, which is the in-circuit equivalent of "fatal."
func (l Loader) Invert(a frontend.Variable) (frontend.Variable, error) {
	return l.API.Inverse(a), nil
}

func (l Loader) Powers(s frontend.Variable, n int) []frontend.Variable {
	out := make([]frontend.Variable, n)
	if n == 0 {
		return out
	}
	out[0] = l.One()
	for i := 1; i < n; i++ {
		out[i] = l.Mul(out[i-1], s)
	}
	return out
}

func (l Loader) Sum(xs []frontend.Variable) frontend.Variable {
	if len(xs) == 0 {
		return l.Zero()
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = l.API.Add(acc, x)
	}
	return acc
}

func (l Loader) SumProductsWithCoeffAndConstant(terms []loader.Term[frontend.Variable], constant frontend.Variable) frontend.Variable {
	acc := constant
	for _, t := range terms {
		acc = l.API.Add(acc, l.API.Mul(t.Coeff, t.A, t.B))
	}
	return acc
}
