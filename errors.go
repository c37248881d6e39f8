package shplonk

import (
	"errors"
	"fmt"

	"github.com/halo2shplonk/verifier/protocol"
	"github.com/halo2shplonk/verifier/transcript"
)

// ErrInvalidInstances is returned when the number of statement columns
// handed to VerifyProof does not match the compiled protocol.
var ErrInvalidInstances = errors.New("shplonk: invalid instances")

// ErrTranscriptRead wraps any failure reading from the transcript (short
// input, malformed encoding).
var ErrTranscriptRead = transcript.ErrRead

// MissingQueryError is returned when an expression references a query the
// proof reader never populated an evaluation for.
type MissingQueryError struct {
	Query protocol.Query
}

func (e *MissingQueryError) Error() string {
	return fmt.Sprintf("shplonk: missing evaluation for query %+v", e.Query)
}

// MissingChallengeError is returned when an expression references a
// challenge index beyond what the proof reader squeezed.
type MissingChallengeError struct {
	Index int
}

func (e *MissingChallengeError) Error() string {
	return fmt.Sprintf("shplonk: missing challenge at index %d", e.Index)
}
