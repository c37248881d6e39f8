// Package fiatshamir is a concrete transcript.Transcript[fr.Element,
// bn254.G1Affine] used by this repository's own tests. It derives
// challenges with github.com/consensys/gnark-crypto/fiat-shamir — the same
// helper gnark-crypto's own KZG verifier uses to fold its batch-opening
// challenge (ecc/bls12-377/fr/kzg/kzg.go:deriveGamma) — seeded with
// golang.org/x/crypto/blake2b, the hash spec.md names as the transcript's
// external hash primitive.
package fiatshamir

import (
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	fiatshamirfs "github.com/consensys/gnark-crypto/fiat-shamir"

	"github.com/halo2shplonk/verifier/transcript"
)

// Transcript reads a proof byte stream while maintaining a running buffer
// of absorbed bytes used to derive every squeezed challenge.
type Transcript struct {
	absorbed []byte
	stream   []byte
}

var _ transcript.Transcript[fr.Element, bn254.G1Affine] = (*Transcript)(nil)

// Init wraps proofBytes as the stream to read scalars/points from.
func Init(proofBytes []byte) *Transcript {
	return &Transcript{stream: proofBytes}
}

func (t *Transcript) absorb(b []byte) {
	t.absorbed = append(t.absorbed, b...)
}

func (t *Transcript) CommonScalar(s fr.Element) error {
	b := s.Bytes()
	t.absorb(b[:])
	return nil
}

func (t *Transcript) CommonEcPoint(p bn254.G1Affine) error {
	b := p.Bytes()
	t.absorb(b[:])
	return nil
}

func (t *Transcript) readBytes(n int) ([]byte, error) {
	if len(t.stream) < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", transcript.ErrRead, n, len(t.stream))
	}
	out := t.stream[:n]
	t.stream = t.stream[n:]
	return out, nil
}

func (t *Transcript) ReadScalar() (fr.Element, error) {
	raw, err := t.readBytes(fr.Bytes)
	if err != nil {
		return fr.Element{}, err
	}
	var s fr.Element
	s.SetBytes(raw)
	if err := t.CommonScalar(s); err != nil {
		return fr.Element{}, err
	}
	return s, nil
}

func (t *Transcript) ReadEcPoint() (bn254.G1Affine, error) {
	raw, err := t.readBytes(bn254.SizeOfG1AffineCompressed)
	if err != nil {
		return bn254.G1Affine{}, err
	}
	var p bn254.G1Affine
	if _, err := p.SetBytes(raw); err != nil {
		return bn254.G1Affine{}, fmt.Errorf("%w: malformed point: %v", transcript.ErrRead, err)
	}
	if err := t.CommonEcPoint(p); err != nil {
		return bn254.G1Affine{}, err
	}
	return p, nil
}

func (t *Transcript) ReadNScalars(n int) ([]fr.Element, error) {
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		s, err := t.ReadScalar()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func (t *Transcript) ReadNEcPoints(n int) ([]bn254.G1Affine, error) {
	out := make([]bn254.G1Affine, n)
	for i := 0; i < n; i++ {
		p, err := t.ReadEcPoint()
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// SqueezeChallenge derives the next challenge from everything absorbed so
// far, then chains the challenge bytes back into the absorbed state so
// consecutive squeezes never repeat.
func (t *Transcript) SqueezeChallenge() fr.Element {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	fs := fiatshamirfs.NewTranscript(h, "challenge")
	if err := fs.Bind("challenge", t.absorbed); err != nil {
		panic(err)
	}
	out, err := fs.ComputeChallenge("challenge")
	if err != nil {
		panic(err)
	}
	var s fr.Element
	s.SetBytes(out)
	t.absorbed = append(t.absorbed, out...)
	return s
}

func (t *Transcript) SqueezeNChallenges(n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		out[i] = t.SqueezeChallenge()
	}
	return out
}
