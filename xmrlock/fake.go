package xmrlock

import (
	"context"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
)

// Fake is a Verifier that always reports the configured outcome, for
// exercising swapproto's VerifyXmrLock phase without a real Monero chain
// client.
type Fake struct {
	Locked bool
	Err    error
}

// VerifyLock implements Verifier.
func (f Fake) VerifyLock(_ context.Context, _ swapcrypto.PkEd, _ uint64) (bool, error) {
	return f.Locked, f.Err
}
