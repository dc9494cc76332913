package swapproto

import (
	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaptx"
)

// VerifiedInitialTransactions is BTX2 with both signatures attached, ready
// for the Buyer to check before locking funds.
type VerifiedInitialTransactions struct {
	RefundSignedHex string
}

// VerifyTransactions checks the Buyer's signature on BTX2 and adds the
// Seller's own, producing the fully-signed refund transaction the Buyer
// needs before committing BTX1 to the chain.
func VerifyTransactions(setup SellerSetup, fundingHex, refundHex string, sigB swapcrypto.Sig256) (VerifiedInitialTransactions, error) {
	swaplock, err := swaplockScriptFor(setup.PubBa, setup.PubBb, setup.H0, setup.H2, setup.T0.Encode())
	if err != nil {
		return VerifiedInitialTransactions{}, err
	}

	refund := swaptx.RefundTxFromHex(refundHex, swaptx.Built, fundingHex)
	if err := refund.VerifySig(setup.PubBb, sigB, swaplock); err != nil {
		return VerifiedInitialTransactions{}, err
	}

	sigA, err := refund.Sign(setup.Ba, swaplock)
	if err != nil {
		return VerifiedInitialTransactions{}, err
	}

	if err := refund.Finalize(sigA, sigB, swaplock); err != nil {
		return VerifiedInitialTransactions{}, err
	}

	log.Debugf("seller verified and countersigned refund transaction")

	return VerifiedInitialTransactions{RefundSignedHex: refund.Hex()}, nil
}

// InitiateSwap is a deliberate stub: publishing the Monero lock transaction
// is out of scope here, so there is nothing for this phase to do beyond
// marking the point in the sequence where a caller would broadcast it.
//
// TODO: once a Monero wallet RPC client is wired in, this phase should
// build and broadcast the lock transaction paying setup.X's one-time
// address, and confirm the broadcast before returning.
func InitiateSwap(setup SellerSetup) error {
	return nil
}

// Swap builds, signs, and finalizes BTX3 (BuyTx) once the Buyer has
// revealed s: the Seller's own signature over the swaplock's IF branch,
// combined with the preimages s and x_0, claims the Bitcoin while
// publishing x_0 on-chain — the same value the Buyer needs to assemble the
// combined Monero spend key.
func Swap(setup SellerSetup, fundingHex string, s [32]byte, finalPkScript []byte, feeRate swaptx.FeeRate) (string, error) {
	swaplock, err := swaplockScriptFor(setup.PubBa, setup.PubBb, setup.H0, setup.H2, setup.T0.Encode())
	if err != nil {
		return "", err
	}

	funding := swaptx.FundingTxFromHex(fundingHex, swaptx.Finalized)
	buy := swaptx.NewBuyTx(funding)
	if err := buy.Build(finalPkScript, feeRate); err != nil {
		return "", err
	}

	sigA, err := buy.Sign(setup.Ba, swaplock)
	if err != nil {
		return "", err
	}

	if err := buy.Finalize(sigA, s, setup.X0, swaplock); err != nil {
		return "", err
	}

	log.Debugf("seller bought the swaplock output, revealing x_0")

	return buy.Hex(), nil
}

// ClaimRefund claims BTX2's output for the Seller through the refund
// script's ELSE branch once t_1 has elapsed without the Buyer having spent
// it through SpendRefund.
func ClaimRefund(setup SellerSetup, refundSignedHex string, finalPkScript []byte, feeRate swaptx.FeeRate) (string, error) {
	refundScript, err := refundScriptFor(setup.PubBa, setup.PubBb, setup.H1, setup.T1.Encode())
	if err != nil {
		return "", err
	}

	refund := swaptx.RefundTxFromHex(refundSignedHex, swaptx.Finalized, "")
	claim := swaptx.NewClaimRefundTx(refund)
	if err := claim.Build(finalPkScript, setup.T1, feeRate); err != nil {
		return "", err
	}

	sigA, err := claim.Sign(setup.Ba, refundScript)
	if err != nil {
		return "", err
	}

	if err := claim.Finalize(sigA, refundScript); err != nil {
		return "", err
	}

	log.Debugf("seller claimed refund collateral")

	return claim.Hex(), nil
}
