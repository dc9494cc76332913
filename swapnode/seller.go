package swapnode

import (
	"io"
	"sync"

	"github.com/h4sh3d/monero-swap-go/locktime"
	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaperr"
	"github.com/h4sh3d/monero-swap-go/swapproto"
	"github.com/h4sh3d/monero-swap-go/swaptx"
)

// Seller is the stateful façade an external orchestrator drives through
// the Monero-holding side of a swap.
type Seller struct {
	mu sync.Mutex

	state state

	setupParams swapproto.SellerSetupParams
	setup       swapproto.SellerSetup

	fundingHex      string
	refundSignedHex string
}

// NewSeller returns an uninitialized Seller façade.
func NewSeller() *Seller {
	return &Seller{}
}

// GenerateParams draws the Seller's half of the swap's key material and
// returns the subset safe to export to the Buyer.
func (s *Seller) GenerateParams(t0, t1 locktime.RelativeLocktime, rng io.Reader) (swapproto.SellerExportedSetupParams, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	setupParams, err := swapproto.SellerSetupKeys(swapproto.Params{T0: t0, T1: t1}, rng)
	if err != nil {
		return swapproto.SellerExportedSetupParams{}, err
	}

	s.setupParams = setupParams
	s.state = paramsGenerated

	log.Debugf("seller generated setup params")

	return setupParams.Export(), nil
}

// ExportSetup returns the previously generated export, failing
// MissingValue if GenerateParams has not run yet.
func (s *Seller) ExportSetup() (swapproto.SellerExportedSetupParams, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state < paramsGenerated {
		return swapproto.SellerExportedSetupParams{}, swaperr.New(
			swaperr.MissingValue, "setup params have not been generated",
		)
	}
	return s.setupParams.Export(), nil
}

// VerifySetup cross-checks the Buyer's export against the Seller's own
// params and, on success, marks the façade's setup ready.
func (s *Seller) VerifySetup(buyerExport swapproto.BuyerExportedSetupParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state < paramsGenerated {
		return swaperr.New(swaperr.MissingValue, "setup params have not been generated")
	}

	setup, err := swapproto.SellerVerifySetup(s.setupParams, buyerExport)
	if err != nil {
		return err
	}

	s.setup = setup
	s.state = setupReady

	log.Debugf("seller setup is ready")

	return nil
}

// IsSetupReady reports whether VerifySetup has succeeded.
func (s *Seller) IsSetupReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state >= setupReady
}

// VerifyTransactions checks the Buyer's signature on BTX2 and returns the
// fully-signed transaction, failing TransactionNotComplete if the setup is
// not yet ready.
func (s *Seller) VerifyTransactions(fundingHex, refundHex string, sigB swapcrypto.Sig256) (swapproto.VerifiedInitialTransactions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state < setupReady {
		return swapproto.VerifiedInitialTransactions{}, swaperr.New(
			swaperr.TransactionNotComplete, "setup is not ready",
		)
	}

	verified, err := swapproto.VerifyTransactions(s.setup, fundingHex, refundHex, sigB)
	if err != nil {
		return swapproto.VerifiedInitialTransactions{}, err
	}

	s.fundingHex = fundingHex
	s.refundSignedHex = verified.RefundSignedHex
	s.state = transactionsReady

	return verified, nil
}

// InitiateSwap marks the point at which the Seller would broadcast the
// Monero lock transaction; out of scope for this module (see
// swapproto.InitiateSwap).
func (s *Seller) InitiateSwap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state < transactionsReady {
		return swaperr.New(swaperr.TransactionNotComplete, "transactions have not been verified")
	}

	return swapproto.InitiateSwap(s.setup)
}

// Swap records that the Buyer's BTX1 has been confirmed on-chain and
// builds, signs, and finalizes BTX3, revealing x_0. Fails
// TransactionNotComplete if BTX2 has not been verified yet.
func (s *Seller) Swap(fundingHex string, secret [32]byte, finalPkScript []byte, feeRate swaptx.FeeRate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state < transactionsReady {
		return "", swaperr.New(swaperr.TransactionNotComplete, "transactions have not been verified")
	}

	s.fundingHex = fundingHex

	hex, err := swapproto.Swap(s.setup, fundingHex, secret, finalPkScript, feeRate)
	if err != nil {
		return "", err
	}

	s.state = completed

	log.Debugf("seller bought the swaplock output")

	return hex, nil
}

// ClaimRefund reclaims the Seller's collateral from BTX2 on the
// exceptional path, failing TransactionNotComplete if BTX2 has not been
// verified yet.
func (s *Seller) ClaimRefund(finalPkScript []byte, feeRate swaptx.FeeRate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state < transactionsReady {
		return "", swaperr.New(swaperr.TransactionNotComplete, "transactions have not been verified")
	}

	hex, err := swapproto.ClaimRefund(s.setup, s.refundSignedHex, finalPkScript, feeRate)
	if err != nil {
		return "", err
	}

	s.state = completed

	log.Debugf("seller claimed refund collateral")

	return hex, nil
}
