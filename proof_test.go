package shplonk

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/halo2shplonk/verifier/loader/native"
	"github.com/halo2shplonk/verifier/protocol"
	"github.com/halo2shplonk/verifier/transcript/fiatshamir"
)

func TestReadProofHappyPath(t *testing.T) {
	l := native.Loader{}

	evalQuery := protocol.Query{Poly: 5, Rotation: protocol.Cur()}
	proto := &protocol.Protocol[bn254.G1Affine]{
		NumStatement: 1,
		NumAuxiliary: []int{0},
		NumChallenge: []int{0},
		Relations: []protocol.Expression{
			protocol.Product(
				protocol.QueryExpr(protocol.Query{Poly: 0, Rotation: protocol.Cur()}),
				protocol.QueryExpr(protocol.Query{Poly: 1, Rotation: protocol.Cur()}),
			),
		},
		Evaluations:            []protocol.Query{evalQuery},
		TranscriptInitialState: big.NewInt(1),
	}

	_, _, g, _ := bn254.Generators()
	gBytes := g.Bytes()

	var evalScalar fr.Element
	evalScalar.SetUint64(99)
	evalBytes := evalScalar.Bytes()

	var stream []byte
	stream = append(stream, gBytes[:]...)    // quotients[0]
	stream = append(stream, evalBytes[:]...) // evaluations[0]
	stream = append(stream, gBytes[:]...)    // w
	stream = append(stream, gBytes[:]...)    // w_prime

	tr := fiatshamir.Init(stream)
	statements := [][]*big.Int{{big.NewInt(7)}}

	pf, err := ReadProof[fr.Element, bn254.G1Affine](proto, l, statements, tr)
	require.NoError(t, err)
	require.Len(t, pf.Quotients, 1)
	require.Len(t, pf.Evaluations, 1)
	require.True(t, pf.Quotients[0].Equal(&g))
	require.True(t, pf.W.Equal(&g))
	require.True(t, pf.WPrime.Equal(&g))
	want := l.LoadConstScalar(big.NewInt(99))
	require.True(t, pf.Evaluations[0].Equal(&want))
}

func TestReadProofInvalidInstances(t *testing.T) {
	l := native.Loader{}
	proto := &protocol.Protocol[bn254.G1Affine]{
		NumStatement:           2,
		TranscriptInitialState: big.NewInt(1),
	}
	tr := fiatshamir.Init(nil)
	_, err := ReadProof[fr.Element, bn254.G1Affine](proto, l, [][]*big.Int{{big.NewInt(1)}}, tr)
	require.ErrorIs(t, err, ErrInvalidInstances)
}

func TestReadProofShortStreamFails(t *testing.T) {
	l := native.Loader{}
	proto := &protocol.Protocol[bn254.G1Affine]{
		NumStatement: 0,
		NumAuxiliary: []int{0},
		NumChallenge: []int{0},
		Relations: []protocol.Expression{
			protocol.Product(
				protocol.QueryExpr(protocol.Query{}),
				protocol.QueryExpr(protocol.Query{}),
			),
		},
		TranscriptInitialState: big.NewInt(1),
	}
	tr := fiatshamir.Init(nil)
	_, err := ReadProof[fr.Element, bn254.G1Affine](proto, l, nil, tr)
	require.ErrorIs(t, err, ErrTranscriptRead)
}
