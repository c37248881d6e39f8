// Package protocol describes the compiled circuit shape and query plan the
// verifier core consumes. A Protocol is produced elsewhere (protocol
// compilation from a circuit description is out of scope here) and treated
// as an immutable, read-only input.
package protocol

// Rotation is a signed offset against the multiplicative subgroup generator
// omega. Rotation(0) is the current row.
type Rotation int32

// Cur returns the rotation for the current row.
func Cur() Rotation { return Rotation(0) }

// Query identifies an opening of a polynomial at a rotated point. Two
// queries with equal Poly and Rotation are the same key; Query is a plain
// comparable struct so it can be used directly as a map key.
type Query struct {
	Poly     int
	Rotation Rotation
}
