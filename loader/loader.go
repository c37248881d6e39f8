// Package loader defines the capability set every downstream component of
// the verifier core is polymorphic over: uniform field and group
// arithmetic mediated entirely through a Loader, never by touching
// coordinates directly. Two variants are provided by this repository
// (loader/native and loader/incircuit); the interface is resolved at
// compile time via Go generics rather than runtime dispatch, so the native
// path carries no indirection overhead.
package loader

import "math/big"

// Term is one summand of a sum_products_with_coeff_and_constant call:
// coeff * a * b. Coeff is itself a loaded scalar so native callers can fold
// in a plain field constant at no extra cost.
type Term[S any] struct {
	Coeff S
	A     S
	B     S
}

// Loader mediates every scalar and group operation the verifier core
// needs. LoadConstScalar, LoadVarScalar and LoadConstPoint accept `any`
// raw inputs (mirroring gnark's own frontend.Variable = any convention) so
// the same method signature serves a *big.Int-driven native loader and a
// frontend.Variable-driven in-circuit loader.
type Loader[S any, P any] interface {
	// LoadConstScalar loads a scalar known at compile time (no witness).
	LoadConstScalar(v any) S
	// LoadVarScalar loads a scalar that may be witnessed (absorbed into a
	// circuit's constraint system by the in-circuit backend; a plain value
	// conversion for the native backend).
	LoadVarScalar(v any) S
	// LoadConstPoint loads a constant group element, e.g. a preprocessed
	// commitment baked into the protocol.
	LoadConstPoint(p any) P

	Zero() S
	One() S
	Add(a, b S) S
	Sub(a, b S) S
	Mul(a, b S) S
	Neg(a S) S
	// Invert returns a^-1; inverting zero is fatal, per spec.
	Invert(a S) (S, error)
	// Powers returns [s^0, s^1, ..., s^(n-1)].
	Powers(s S, n int) []S
	Sum(xs []S) S
	// SumProductsWithCoeffAndConstant computes
	// sum(coeff_i * a_i * b_i) + constant in one fused pass.
	SumProductsWithCoeffAndConstant(terms []Term[S], constant S) S
}

// BigInt is a small convenience so native call sites can build *big.Int
// literals tersely; it has no behavior of its own.
func BigInt(v int64) *big.Int { return big.NewInt(v) }
