// Package xmrlock defines the boundary between the Bitcoin-side swap core
// and Monero lock-transaction construction/verification, which are out of
// scope for this module. Callers supply a Verifier that checks a lock
// transaction against the swap's combined spend key on their own chain
// client.
package xmrlock

import (
	"context"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
)

// Verifier checks whether a Monero output locking amount piconeros to the
// one-time address derived from spendKey has reached the confirmation
// depth the caller requires. Implementations own all chain access; this
// module never parses or broadcasts Monero transactions itself.
type Verifier interface {
	VerifyLock(ctx context.Context, spendKey swapcrypto.PkEd, amount uint64) (bool, error)
}
