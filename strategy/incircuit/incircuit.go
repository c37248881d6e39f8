// Package incircuit provides a shplonk.Strategy that defers pairing
// arithmetic entirely: it exists to let a recursive (accumulation-based)
// verifier circuit compose this core without this package ever touching
// pairing gates itself.
package incircuit

import (
	"github.com/consensys/gnark/frontend"

	shplonk "github.com/halo2shplonk/verifier"
	"github.com/halo2shplonk/verifier/loader/incircuit"
	"github.com/halo2shplonk/verifier/msm"
)

// Pair is one deferred (lhs, rhs) MSM pair a parent circuit must still
// relate via pairing, typically after folding with other accumulators'
// pairs outside this circuit.
type Pair struct {
	LHS msm.MSM[frontend.Variable, incircuit.Point]
	RHS msm.MSM[frontend.Variable, incircuit.Point]
}

// Accumulator records every (lhs, rhs) pair VerifyProof produces without
// ever collapsing them: pairing arithmetic in-circuit is the parent
// circuit's problem, out of scope for this verifier core.
type Accumulator struct {
	Pairs []Pair
}

func (a *Accumulator) Process(
	_ *shplonk.Proof[frontend.Variable, incircuit.Point],
	lhs, rhs msm.MSM[frontend.Variable, incircuit.Point],
) (int, error) {
	a.Pairs = append(a.Pairs, Pair{LHS: lhs, RHS: rhs})
	return len(a.Pairs) - 1, nil
}

// Finalize always succeeds: deciding what the accumulated pairs mean
// (fold into a recursive accumulator, defer to one final native pairing)
// belongs to whatever circuit embeds this strategy, never to it.
func (a *Accumulator) Finalize() bool { return true }
