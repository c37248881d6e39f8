// Package native implements loader.Loader with plain bn254 field and group
// arithmetic: no witness, no constraint system, just gnark-crypto calls.
package native

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/halo2shplonk/verifier/loader"
)

// ErrInvertZero is returned by Invert when asked to invert the zero
// element; the spec treats this as fatal, never a recoverable zero result.
var ErrInvertZero = errors.New("native: cannot invert zero")

// Loader is the zero-value-usable native loader.Loader[fr.Element,
// bn254.G1Affine] implementation.
type Loader struct{}

var _ loader.Loader[fr.Element, bn254.G1Affine] = Loader{}

func toBigInt(v any) *big.Int {
	switch x := v.(type) {
	case *big.Int:
		return x
	case big.Int:
		return &x
	case int64:
		return big.NewInt(x)
	case int:
		return big.NewInt(int64(x))
	case fr.Element:
		var out big.Int
		x.BigInt(&out)
		return &out
	default:
		panic(fmt.Sprintf("native loader: unsupported scalar input type %T", v))
	}
}

func (Loader) LoadConstScalar(v any) fr.Element {
	var s fr.Element
	s.SetBigInt(toBigInt(v))
	return s
}

func (Loader) LoadVarScalar(v any) fr.Element {
	var s fr.Element
	s.SetBigInt(toBigInt(v))
	return s
}

func (Loader) LoadConstPoint(p any) bn254.G1Affine {
	switch x := p.(type) {
	case bn254.G1Affine:
		return x
	case *bn254.G1Affine:
		return *x
	default:
		panic(fmt.Sprintf("native loader: unsupported point input type %T", p))
	}
}

func (Loader) Zero() fr.Element { var z fr.Element; return z }

func (Loader) One() fr.Element { var o fr.Element; o.SetOne(); return o }

func (Loader) Add(a, b fr.Element) fr.Element { var o fr.Element; o.Add(&a, &b); return o }

func (Loader) Sub(a, b fr.Element) fr.Element { var o fr.Element; o.Sub(&a, &b); return o }

func (Loader) Mul(a, b fr.Element) fr.Element { var o fr.Element; o.Mul(&a, &b); return o }

func (Loader) Neg(a fr.Element) fr.Element { var o fr.Element; o.Neg(&a); return o }

func (Loader) Invert(a fr.Element) (fr.Element, error) {
	if a.IsZero() {
		return fr.Element{}, ErrInvertZero
	}
	var o fr.Element
	o.Inverse(&a)
	return o, nil
}

func (l Loader) Powers(s fr.Element, n int) []fr.Element {
	out := make([]fr.Element, n)
	if n == 0 {
		return out
	}
	out[0] = l.One()
	for i := 1; i < n; i++ {
		out[i] = l.Mul(out[i-1], s)
	}
	return out
}

func (Loader) Sum(xs []fr.Element) fr.Element {
	var acc fr.Element
	for _, x := range xs {
		acc.Add(&acc, &x)
	}
	return acc
}

func (Loader) SumProductsWithCoeffAndConstant(terms []loader.Term[fr.Element], constant fr.Element) fr.Element {
	acc := constant
	var tmp fr.Element
	for _, t := range terms {
		tmp.Mul(&t.A, &t.B)
		tmp.Mul(&tmp, &t.Coeff)
		acc.Add(&acc, &tmp)
	}
	return acc
}

// GroupOps implements msm.GroupOps[fr.Element, bn254.G1Affine].
type GroupOps struct{}

func (GroupOps) Identity() bn254.G1Affine {
	var id bn254.G1Affine
	id.X.SetZero()
	id.Y.SetZero()
	return id
}

func (GroupOps) Add(a, b bn254.G1Affine) bn254.G1Affine {
	var aJac, bJac, outJac bn254.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	outJac.Set(&aJac).AddAssign(&bJac)
	var out bn254.G1Affine
	out.FromJacobian(&outJac)
	return out
}

func (GroupOps) ScalarMul(p bn254.G1Affine, s fr.Element) bn254.G1Affine {
	var bi big.Int
	s.BigInt(&bi)
	var out bn254.G1Affine
	out.ScalarMultiplication(&p, &bi)
	return out
}
