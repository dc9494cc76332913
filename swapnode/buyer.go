package swapnode

import (
	"context"
	"io"
	"sync"

	"github.com/h4sh3d/monero-swap-go/locktime"
	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaperr"
	"github.com/h4sh3d/monero-swap-go/swapproto"
	"github.com/h4sh3d/monero-swap-go/swaptx"
	"github.com/h4sh3d/monero-swap-go/xmrlock"
)

// Buyer is the stateful façade an external orchestrator drives through the
// Bitcoin-holding side of a swap. Every method is synchronous; the mutex
// only guards against a caller invoking the façade from more than one
// goroutine, since the protocol itself never does so.
type Buyer struct {
	mu sync.Mutex

	state state

	setupParams swapproto.BuyerSetupParams
	setup       swapproto.BuyerSetup

	fundingHex string
	refundHex  string
}

// NewBuyer returns an uninitialized Buyer façade.
func NewBuyer() *Buyer {
	return &Buyer{}
}

// GenerateParams draws the Buyer's half of the swap's key material and
// returns the subset safe to export to the Seller.
func (b *Buyer) GenerateParams(t0, t1 locktime.RelativeLocktime, rng io.Reader) (swapproto.BuyerExportedSetupParams, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	setupParams, err := swapproto.BuyerSetupKeys(swapproto.Params{T0: t0, T1: t1}, rng)
	if err != nil {
		return swapproto.BuyerExportedSetupParams{}, err
	}

	b.setupParams = setupParams
	b.state = paramsGenerated

	log.Debugf("buyer generated setup params")

	return setupParams.Export(), nil
}

// ExportSetup returns the previously generated export, failing
// MissingValue if GenerateParams has not run yet.
func (b *Buyer) ExportSetup() (swapproto.BuyerExportedSetupParams, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state < paramsGenerated {
		return swapproto.BuyerExportedSetupParams{}, swaperr.New(
			swaperr.MissingValue, "setup params have not been generated",
		)
	}
	return b.setupParams.Export(), nil
}

// VerifySetup cross-checks the Seller's export against the Buyer's own
// params and, on success, marks the façade's setup ready.
func (b *Buyer) VerifySetup(sellerExport swapproto.SellerExportedSetupParams) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state < paramsGenerated {
		return swaperr.New(swaperr.MissingValue, "setup params have not been generated")
	}

	setup, err := swapproto.BuyerVerifySetup(b.setupParams, sellerExport)
	if err != nil {
		return err
	}

	b.setup = setup
	b.state = setupReady

	log.Debugf("buyer setup is ready")

	return nil
}

// IsSetupReady reports whether VerifySetup has succeeded.
func (b *Buyer) IsSetupReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state >= setupReady
}

// CreateTransactions builds BTX1 and BTX2, failing TransactionNotComplete
// if the setup is not yet ready.
func (b *Buyer) CreateTransactions(utxo swaptx.Utxo, feeRate swaptx.FeeRate) (swapproto.InitialTransactions, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state < setupReady {
		return swapproto.InitialTransactions{}, swaperr.New(
			swaperr.TransactionNotComplete, "setup is not ready",
		)
	}

	initial, err := swapproto.CreateTransactions(b.setup, utxo, feeRate)
	if err != nil {
		return swapproto.InitialTransactions{}, err
	}

	b.fundingHex = initial.FundingHex
	b.refundHex = initial.RefundHex
	b.state = transactionsReady

	return initial, nil
}

// LockFunds checks the Seller's countersignature on BTX2 and commits the
// Buyer's coins to the swaplock output, failing TransactionNotComplete if
// CreateTransactions has not run yet.
func (b *Buyer) LockFunds(refundSignedHex string, input swapproto.FundingInput) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state < transactionsReady {
		return "", swaperr.New(swaperr.TransactionNotComplete, "transactions have not been created")
	}

	fundingHex, err := swapproto.LockFunds(b.setup, b.fundingHex, refundSignedHex, input)
	if err != nil {
		return "", err
	}

	b.fundingHex = fundingHex
	b.refundHex = refundSignedHex
	b.state = fundsLocked

	log.Debugf("buyer locked funds")

	return fundingHex, nil
}

// VerifyXmrLock checks the Seller's Monero lock and returns s once
// satisfied, failing TransactionNotComplete if LockFunds has not run yet.
func (b *Buyer) VerifyXmrLock(ctx context.Context, verifier xmrlock.Verifier, amount uint64) ([32]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state < fundsLocked {
		return [32]byte{}, swaperr.New(swaperr.TransactionNotComplete, "funds have not been locked")
	}

	return swapproto.VerifyXmrLock(ctx, b.setup, verifier, amount)
}

// SpendRefund reclaims the Buyer's coins from BTX2 on the exceptional
// path, failing TransactionNotComplete if funds were never locked.
func (b *Buyer) SpendRefund(finalPkScript []byte, feeRate swaptx.FeeRate) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state < fundsLocked {
		return "", swaperr.New(swaperr.TransactionNotComplete, "funds have not been locked")
	}

	hex, err := swapproto.SpendRefund(b.setup, b.refundHex, finalPkScript, feeRate)
	if err != nil {
		return "", err
	}

	b.state = completed

	log.Debugf("buyer reclaimed funds via spend-refund")

	return hex, nil
}

// ReleaseXmr reads x_0 out of the Seller's published BuyTx and returns the
// combined Monero spend scalar, completing the happy path. Fails
// TransactionNotComplete if funds were never locked.
func (b *Buyer) ReleaseXmr(buyHex string) (swapcrypto.SkEd, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state < fundsLocked {
		return swapcrypto.SkEd{}, swaperr.New(swaperr.TransactionNotComplete, "funds have not been locked")
	}

	_, x0, err := swapproto.ParseBuyWitness(buyHex)
	if err != nil {
		return swapcrypto.SkEd{}, err
	}

	b.state = completed

	log.Debugf("buyer released combined monero spend key")

	return swapproto.ReleaseXmr(b.setup, x0), nil
}
