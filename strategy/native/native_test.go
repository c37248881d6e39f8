package native

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	shplonk "github.com/halo2shplonk/verifier"
	loadernative "github.com/halo2shplonk/verifier/loader/native"
	"github.com/halo2shplonk/verifier/msm"
)

func TestSingleProofAcceptsIdentityPair(t *testing.T) {
	ld := loadernative.Loader{}
	_, _, g1, g2 := bn254.Generators()

	var sg2 bn254.G2Affine
	sg2.ScalarMultiplication(&g2, big.NewInt(5))

	sp := NewSingleProof(g1, g2, sg2)

	lhs := msm.Scalar[fr.Element, bn254.G1Affine](ld, ld.Zero())
	rhs := msm.Scalar[fr.Element, bn254.G1Affine](ld, ld.Zero())

	var pf *shplonk.Proof[fr.Element, bn254.G1Affine]
	ok, err := sp.Process(pf, lhs, rhs)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, sp.Finalize())
}

func TestSingleProofRejectsMismatchedPair(t *testing.T) {
	ld := loadernative.Loader{}
	_, _, g1, g2 := bn254.Generators()

	var sg2 bn254.G2Affine
	sg2.ScalarMultiplication(&g2, big.NewInt(5))

	sp := NewSingleProof(g1, g2, sg2)

	lhs := msm.Base[fr.Element, bn254.G1Affine](ld, g1)
	rhs := msm.Scalar[fr.Element, bn254.G1Affine](ld, ld.Zero())

	var pf *shplonk.Proof[fr.Element, bn254.G1Affine]
	ok, err := sp.Process(pf, lhs, rhs)
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, sp.Finalize())
}

func TestSingleProofVerifiesGenuineKzgOpening(t *testing.T) {
	ld := loadernative.Loader{}
	_, _, g1, g2 := bn254.Generators()

	// toy trapdoor tau = 7; SRS tau*G2 only, no toxic-waste discarding since
	// this purely exercises the pairing equation on a hand-built opening.
	tau := big.NewInt(7)
	var sg2 bn254.G2Affine
	sg2.ScalarMultiplication(&g2, tau)

	// p(X) = 3 + 5X, opened at z = 2: p(z) = 13, commitment C = p(tau)*G1.
	a0, a1 := int64(3), int64(5)
	z := int64(2)

	pTau := new(big.Int).Add(big.NewInt(a0), new(big.Int).Mul(big.NewInt(a1), tau))
	var commitment bn254.G1Affine
	commitment.ScalarMultiplication(&g1, pTau)

	pz := a0 + a1*z
	// witness polynomial w(X) = (p(X)-p(z))/(X-z) = a1, a constant here.
	var witness bn254.G1Affine
	witness.ScalarMultiplication(&g1, big.NewInt(a1))

	// KZG check: e(C - p(z)*G1, G2) == e(W, tau*G2 - z*G2)
	var pzG1 bn254.G1Affine
	pzG1.ScalarMultiplication(&g1, big.NewInt(pz))
	var lhsPoint bn254.G1Affine
	lhsPoint.Sub(&commitment, &pzG1)

	var zG2 bn254.G2Affine
	zG2.ScalarMultiplication(&g2, big.NewInt(z))
	var rhsG2 bn254.G2Affine
	rhsG2.Sub(&sg2, &zG2)

	sp := NewSingleProof(g1, g2, rhsG2)

	lhs := msm.Base[fr.Element, bn254.G1Affine](ld, lhsPoint)
	rhs := msm.Base[fr.Element, bn254.G1Affine](ld, witness)

	var pf *shplonk.Proof[fr.Element, bn254.G1Affine]
	ok, err := sp.Process(pf, lhs, rhs)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBatchFinalizeTrueWithNoTerms(t *testing.T) {
	_, _, _, g2 := bn254.Generators()
	b := NewBatch(bn254.G1Affine{}, g2, g2, func(i int) fr.Element { return fr.Element{} })
	require.True(t, b.Finalize())
}

func TestBatchFoldsIdentityPairs(t *testing.T) {
	ld := loadernative.Loader{}
	_, _, g1, g2 := bn254.Generators()

	var sg2 bn254.G2Affine
	sg2.ScalarMultiplication(&g2, big.NewInt(11))

	factors := []fr.Element{ld.LoadConstScalar(big.NewInt(3)), ld.LoadConstScalar(big.NewInt(4))}
	b := NewBatch(g1, g2, sg2, func(i int) fr.Element { return factors[i] })

	lhs := msm.Scalar[fr.Element, bn254.G1Affine](ld, ld.Zero())
	rhs := msm.Scalar[fr.Element, bn254.G1Affine](ld, ld.Zero())

	var pf *shplonk.Proof[fr.Element, bn254.G1Affine]
	for i := 0; i < 2; i++ {
		ok, err := b.Process(pf, lhs, rhs)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.True(t, b.Finalize())
}
