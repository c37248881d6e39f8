// Package native provides shplonk.Strategy implementations over plain
// bn254 arithmetic, grounded on gnark-crypto's own KZG verifier
// (ecc/bls12-377/fr/kzg.Verify), which folds its opening check down to a
// single bn254.PairingCheck call the same way SingleProof does here.
package native

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	shplonk "github.com/halo2shplonk/verifier"
	loadernative "github.com/halo2shplonk/verifier/loader/native"
	"github.com/halo2shplonk/verifier/msm"
)

// ErrPairingFailed names a failed pairing check. SingleProof and Batch do
// not return it: they report a failed check as false from Process or
// Finalize.
var ErrPairingFailed = errors.New("native: pairing check failed")

// SingleProof runs one pairing check per Process call: e(lhs, -g2) *
// e(rhs, s*g2) == 1, the direct SHPLONK analogue of gnark-crypto's own
// single-opening KZG verifier.
type SingleProof struct {
	G1  bn254.G1Affine
	G2  bn254.G2Affine
	SG2 bn254.G2Affine

	ok bool
}

func NewSingleProof(g1 bn254.G1Affine, g2 bn254.G2Affine, sg2 bn254.G2Affine) *SingleProof {
	return &SingleProof{G1: g1, G2: g2, SG2: sg2, ok: true}
}

func (s *SingleProof) Process(_ *shplonk.Proof[fr.Element, bn254.G1Affine], lhs, rhs msm.MSM[fr.Element, bn254.G1Affine]) (bool, error) {
	ops := loadernative.GroupOps{}
	lhsPoint := lhs.Evaluate(ops, s.G1)
	rhsPoint := rhs.Evaluate(ops, s.G1)

	var negG2 bn254.G2Affine
	negG2.Neg(&s.G2)

	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{lhsPoint, rhsPoint},
		[]bn254.G2Affine{negG2, s.SG2},
	)
	if err != nil {
		return false, err
	}
	s.ok = s.ok && ok
	return ok, nil
}

func (s *SingleProof) Finalize() bool { return s.ok }

// Batch folds several proofs' (lhs, rhs) pairs with an independent random
// factor per proof before running a single pairing check in Finalize,
// mirroring kzg.go's BatchVerifyMultiPoints folding of several openings
// into one pairing via a caller-supplied random scalar per opening.
type Batch struct {
	G1  bn254.G1Affine
	G2  bn254.G2Affine
	SG2 bn254.G2Affine

	// RandomFactor returns the folding scalar for the i-th Process call.
	// Callers are expected to supply independent, transcript-derived or
	// otherwise unpredictable values; a constant function would make the
	// fold a linear combination an adversary could cancel.
	RandomFactor func(i int) fr.Element

	accLHS   msm.MSM[fr.Element, bn254.G1Affine]
	accRHS   msm.MSM[fr.Element, bn254.G1Affine]
	count    int
	hasTerms bool
}

func NewBatch(g1 bn254.G1Affine, g2, sg2 bn254.G2Affine, randomFactor func(i int) fr.Element) *Batch {
	return &Batch{G1: g1, G2: g2, SG2: sg2, RandomFactor: randomFactor}
}

func (b *Batch) Process(_ *shplonk.Proof[fr.Element, bn254.G1Affine], lhs, rhs msm.MSM[fr.Element, bn254.G1Affine]) (bool, error) {
	r := b.RandomFactor(b.count)
	b.count++

	scaledLHS := lhs.Mul(r)
	scaledRHS := rhs.Mul(r)
	if !b.hasTerms {
		b.accLHS = scaledLHS
		b.accRHS = scaledRHS
		b.hasTerms = true
	} else {
		b.accLHS = b.accLHS.Add(scaledLHS)
		b.accRHS = b.accRHS.Add(scaledRHS)
	}
	return true, nil
}

func (b *Batch) Finalize() bool {
	if !b.hasTerms {
		return true
	}
	ops := loadernative.GroupOps{}
	lhsPoint := b.accLHS.Evaluate(ops, b.G1)
	rhsPoint := b.accRHS.Evaluate(ops, b.G1)

	var negG2 bn254.G2Affine
	negG2.Neg(&b.G2)

	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{lhsPoint, rhsPoint},
		[]bn254.G2Affine{negG2, b.SG2},
	)
	return err == nil && ok
}
