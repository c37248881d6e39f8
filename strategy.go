package shplonk

import "github.com/halo2shplonk/verifier/msm"

// Strategy decides what a verified (lhs, rhs) MSM pair means. A single
// proof strategy runs a pairing check immediately; a batch strategy folds
// several proofs' pairs with a random factor before running one pairing;
// an in-circuit strategy defers both operands into an accumulator for a
// parent circuit to check. O is the strategy's own per-call output type.
type Strategy[S any, P any, O any] interface {
	Process(proof *Proof[S, P], lhs, rhs msm.MSM[S, P]) (O, error)
	Finalize() bool
}
