// Package testkzg builds a toy bn254 KZG setup for this repository's own
// tests. It is adapted from the teacher's setup.Run test-only path
// (kzg_bn254.NewSRS with a random, discarded toxic-waste scalar): that
// function picked between a trusted embedded setup and this throwaway
// one depending on a Conf flag, but a verifier core has no proving
// pipeline to hand a ProvingKey to, so only the SRS half survives here.
package testkzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	kzgbn254 "github.com/consensys/gnark-crypto/ecc/bn254/kzg"
)

// SRS is a toy structured reference string: fine for exercising the
// verifier core's arithmetic in tests, unusable for anything claiming
// soundness since its toxic waste is never discarded.
type SRS struct {
	G1 bn254.G1Affine
	G2 bn254.G2Affine
	// SG2 is the SRS's [s]*G2 point, the pairing counterpart VerifyProof's
	// native strategies check the SHPLONK quotient commitment against.
	SG2 bn254.G2Affine
}

// NewSRS derives a toy SRS of the given size (at least size+1 G1 points
// internally; only the first is exposed, since this verifier core never
// needs more than a single generator to collapse an MSM).
func NewSRS(size uint64) (*SRS, error) {
	raw, err := kzgbn254.NewSRS(size, big.NewInt(-1))
	if err != nil {
		return nil, err
	}
	return &SRS{
		G1:  raw.Pk.G1[0],
		G2:  raw.Vk.G2[0],
		SG2: raw.Vk.G2[1],
	}, nil
}
