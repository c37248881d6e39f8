package protocol

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// modulus/generator for a tiny multiplicative subgroup of order 4 inside
// Z/13.
func smallDomain(t *testing.T) *Domain {
	t.Helper()
	modulus := big.NewInt(13)
	// order of 3 mod 13: 3^1=3 3^2=9 3^3=27%13=1 -> order 3, not 4. Use 5.
	// 5^1=5 5^2=25%13=12 5^3=60%13=8 5^4=40%13=1 -> order 4. Good.
	generator := big.NewInt(5)
	return NewDomain(2, generator, modulus)
}

func TestRotateScalarPositive(t *testing.T) {
	d := smallDomain(t)
	one := big.NewInt(1)
	require.Equal(t, big.NewInt(1), d.RotateScalar(one, Rotation(0)))
	require.Equal(t, big.NewInt(5), d.RotateScalar(one, Rotation(1)))
	require.Equal(t, big.NewInt(12), d.RotateScalar(one, Rotation(2)))
}

func TestRotateScalarNegativeMatchesWraparound(t *testing.T) {
	d := smallDomain(t)
	one := big.NewInt(1)
	// omega^-1 must equal omega^(n-1) = omega^3 since omega has order 4.
	negOne := d.RotateScalar(one, Rotation(-1))
	posThree := d.RotateScalar(one, Rotation(3))
	require.Equal(t, posThree, negOne)
}

func TestRotateScalarScalesInput(t *testing.T) {
	d := smallDomain(t)
	s := big.NewInt(2)
	got := d.RotateScalar(s, Rotation(1))
	require.Equal(t, big.NewInt(10), got)
}
