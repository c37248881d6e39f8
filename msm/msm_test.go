package msm_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/halo2shplonk/verifier/loader/native"
	"github.com/halo2shplonk/verifier/msm"
)

func TestBaseEvaluatesToTheBaseItself(t *testing.T) {
	l := native.Loader{}
	ops := native.GroupOps{}
	_, _, g, _ := bn254.Generators()

	m := msm.Base[fr.Element, bn254.G1Affine](l, g)
	got := m.Evaluate(ops, g)
	require.True(t, got.Equal(&g))
}

func TestScalarEvaluatesToScalarTimesGenerator(t *testing.T) {
	l := native.Loader{}
	ops := native.GroupOps{}
	_, _, g, _ := bn254.Generators()

	s := l.LoadConstScalar(big.NewInt(7))
	m := msm.Scalar[fr.Element, bn254.G1Affine](l, s)
	got := m.Evaluate(ops, g)

	var sBig big.Int
	s.BigInt(&sBig)
	var want bn254.G1Affine
	want.ScalarMultiplication(&g, &sBig)
	require.True(t, got.Equal(&want))
}

func TestAddIsDistributiveOverEvaluate(t *testing.T) {
	l := native.Loader{}
	ops := native.GroupOps{}
	_, _, g, _ := bn254.Generators()

	a := msm.Scalar[fr.Element, bn254.G1Affine](l, l.LoadConstScalar(big.NewInt(3)))
	b := msm.Base[fr.Element, bn254.G1Affine](l, g).Mul(l.LoadConstScalar(big.NewInt(2)))

	sum := a.Add(b)
	got := sum.Evaluate(ops, g)

	// 3*g (constant term) + 2*g (base term) = 5*g
	var five big.Int
	five.SetInt64(5)
	var want bn254.G1Affine
	want.ScalarMultiplication(&g, &five)
	require.True(t, got.Equal(&want))
}

func TestSubIsInverseOfAdd(t *testing.T) {
	l := native.Loader{}
	ops := native.GroupOps{}
	_, _, g, _ := bn254.Generators()

	a := msm.Base[fr.Element, bn254.G1Affine](l, g).Mul(l.LoadConstScalar(big.NewInt(9)))
	b := msm.Base[fr.Element, bn254.G1Affine](l, g).Mul(l.LoadConstScalar(big.NewInt(4)))

	diff := a.Sub(b)
	got := diff.Evaluate(ops, g)

	var five big.Int
	five.SetInt64(5)
	var want bn254.G1Affine
	want.ScalarMultiplication(&g, &five)
	require.True(t, got.Equal(&want))
}

func TestNegFlipsSign(t *testing.T) {
	l := native.Loader{}
	ops := native.GroupOps{}
	_, _, g, _ := bn254.Generators()

	m := msm.Scalar[fr.Element, bn254.G1Affine](l, l.LoadConstScalar(big.NewInt(6)))
	sum := m.Add(m.Neg())
	got := sum.Evaluate(ops, g)
	id := ops.Identity()
	require.True(t, got.Equal(&id))
}
