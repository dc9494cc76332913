// Package swapproto implements the Buyer and Seller protocol engines: the
// pure Setup/VerifySetup/phase-execution functions that drive a swap. The
// Buyer holds Bitcoin and wants Monero; the Seller holds Monero and wants
// Bitcoin. Every function here is stateless — swapnode wraps these in a
// stateful façade that enforces call order.
package swapproto

import (
	"github.com/h4sh3d/monero-swap-go/locktime"
	"github.com/h4sh3d/monero-swap-go/swapcrypto"
)

// Params carries the two relative locktimes both parties must agree on
// before a swap can proceed.
type Params struct {
	T0 locktime.RelativeLocktime
	T1 locktime.RelativeLocktime
}

// BuyerSetupParams is the Buyer's half of the swap's key material, held
// privately until exported to the Seller.
type BuyerSetupParams struct {
	A1    swapcrypto.SkEd
	X1    swapcrypto.SkEd
	Bb    swapcrypto.Sk256
	PubBb swapcrypto.Pk256
	S     [32]byte
	H1    swapcrypto.Hash32
	H2    swapcrypto.Hash32
	T0    locktime.RelativeLocktime
	T1    locktime.RelativeLocktime
}

// BuyerExportedSetupParams is the subset of BuyerSetupParams safe to hand
// to the Seller: the view-key share a_1 in the clear (it carries no
// spending power), the spend-key share's public point X_1 rather than the
// scalar x_1, and the public commitments the Seller must verify against.
type BuyerExportedSetupParams struct {
	A1 swapcrypto.SkEd
	X1 swapcrypto.PkEd
	Bb swapcrypto.Pk256
	H1 swapcrypto.Hash32
	H2 swapcrypto.Hash32
	T0 locktime.RelativeLocktime
	T1 locktime.RelativeLocktime
}

// Export strips BuyerSetupParams down to the fields safe to send to the
// Seller.
func (p BuyerSetupParams) Export() BuyerExportedSetupParams {
	return BuyerExportedSetupParams{
		A1: p.A1,
		X1: p.X1.BasepointMul(),
		Bb: p.PubBb,
		H1: p.H1,
		H2: p.H2,
		T0: p.T0,
		T1: p.T1,
	}
}

// BuyerSetup is the Buyer's fully cross-checked common state, produced by
// BuyerVerifySetup once the Seller's export has been validated against it.
type BuyerSetup struct {
	A     swapcrypto.SkEd
	X1    swapcrypto.SkEd
	X     swapcrypto.PkEd
	Ba    swapcrypto.Pk256
	Bb    swapcrypto.Sk256
	PubBb swapcrypto.Pk256
	S     [32]byte
	H0    swapcrypto.Hash32
	H1    swapcrypto.Hash32
	H2    swapcrypto.Hash32
	T0    locktime.RelativeLocktime
	T1    locktime.RelativeLocktime
}

// SellerSetupParams is the Seller's half of the swap's key material, held
// privately until exported to the Buyer.
type SellerSetupParams struct {
	A0    swapcrypto.SkEd
	X0    swapcrypto.SkEd
	Ba    swapcrypto.Sk256
	PubBa swapcrypto.Pk256
	H0    swapcrypto.Hash32
	T0    locktime.RelativeLocktime
	T1    locktime.RelativeLocktime
}

// SellerExportedSetupParams is the subset of SellerSetupParams safe to
// hand to the Buyer.
type SellerExportedSetupParams struct {
	A0 swapcrypto.SkEd
	X0 swapcrypto.PkEd
	Ba swapcrypto.Pk256
	H0 swapcrypto.Hash32
	T0 locktime.RelativeLocktime
	T1 locktime.RelativeLocktime
}

// Export strips SellerSetupParams down to the fields safe to send to the
// Buyer.
func (p SellerSetupParams) Export() SellerExportedSetupParams {
	return SellerExportedSetupParams{
		A0: p.A0,
		X0: p.X0.BasepointMul(),
		Ba: p.PubBa,
		H0: p.H0,
		T0: p.T0,
		T1: p.T1,
	}
}

// SellerSetup is the Seller's fully cross-checked common state, produced
// by SellerVerifySetup once the Buyer's export has been validated against
// it.
type SellerSetup struct {
	A     swapcrypto.SkEd
	X0    swapcrypto.SkEd
	X     swapcrypto.PkEd
	Ba    swapcrypto.Sk256
	PubBa swapcrypto.Pk256
	PubBb swapcrypto.Pk256
	H0    swapcrypto.Hash32
	H1    swapcrypto.Hash32
	H2    swapcrypto.Hash32
	T0    locktime.RelativeLocktime
	T1    locktime.RelativeLocktime
}
