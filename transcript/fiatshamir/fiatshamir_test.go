package fiatshamir

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/halo2shplonk/verifier/transcript"
)

func TestReadScalarAbsorbsAndAdvances(t *testing.T) {
	var s fr.Element
	s.SetUint64(42)
	b := s.Bytes()

	tr := Init(b[:])
	got, err := tr.ReadScalar()
	require.NoError(t, err)
	require.True(t, got.Equal(&s))
	require.Empty(t, tr.stream)
	require.Equal(t, b[:], tr.absorbed)
}

func TestReadScalarShortInputFails(t *testing.T) {
	tr := Init([]byte{1, 2, 3})
	_, err := tr.ReadScalar()
	require.ErrorIs(t, err, transcript.ErrRead)
}

func TestReadEcPointRoundTrips(t *testing.T) {
	_, _, g, _ := bn254.Generators()
	b := g.Bytes()

	tr := Init(b[:])
	got, err := tr.ReadEcPoint()
	require.NoError(t, err)
	require.True(t, got.Equal(&g))
}

func TestSqueezeIsDeterministic(t *testing.T) {
	var s fr.Element
	s.SetUint64(7)
	b := s.Bytes()

	tr1 := Init(b[:])
	_, _ = tr1.ReadScalar()
	c1 := tr1.SqueezeNChallenges(3)

	tr2 := Init(b[:])
	_, _ = tr2.ReadScalar()
	c2 := tr2.SqueezeNChallenges(3)

	require.Len(t, c1, 3)
	for i := range c1 {
		require.True(t, c1[i].Equal(&c2[i]))
	}
}

func TestSuccessiveSqueezesDiffer(t *testing.T) {
	tr := Init(nil)
	a := tr.SqueezeChallenge()
	b := tr.SqueezeChallenge()
	require.False(t, a.Equal(&b))
}

func TestDifferentAbsorbedBytesYieldDifferentChallenges(t *testing.T) {
	var s1, s2 fr.Element
	s1.SetUint64(1)
	s2.SetUint64(2)
	b1 := s1.Bytes()
	b2 := s2.Bytes()

	tr1 := Init(b1[:])
	_, _ = tr1.ReadScalar()
	c1 := tr1.SqueezeChallenge()

	tr2 := Init(b2[:])
	_, _ = tr2.ReadScalar()
	c2 := tr2.SqueezeChallenge()

	require.False(t, c1.Equal(&c2))
}
