package x12

import (
	"fmt"
	"math/rand"
)

// newControlNumber returns a pseudo-random interchange or group control
// number, always zero-padded to exactly 9 digits so the fixed-width
// envelope contract holds for any generated value.
func newControlNumber() string {
	return fmt.Sprintf("%09d", rand.Int63n(1_000_000_000))
}

// transactionControlNumber returns the 4-digit control number for the
// n-th transaction set in a batch (1-based).
func transactionControlNumber(n int) string {
	return fmt.Sprintf("%04d", n)
}
