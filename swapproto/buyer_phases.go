package swapproto

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaperr"
	"github.com/h4sh3d/monero-swap-go/swapscript"
	"github.com/h4sh3d/monero-swap-go/swaptx"
	"github.com/h4sh3d/monero-swap-go/xmrlock"
)

// InitialTransactions bundles BTX1 (unsigned funding) and BTX2 (refund,
// with the Buyer's partial signature) for the Seller to verify and
// countersign.
type InitialTransactions struct {
	FundingHex string
	RefundHex  string
	SigB       swapcrypto.Sig256
}

// FundingInput is the Buyer's UTXO spending key material. It is kept out
// of BuyerSetup since it belongs to wallet/UTXO management rather than the
// swap's key material.
type FundingInput struct {
	PrivKey swapcrypto.Sk256
	Amount  btcutil.Amount
}

func swaplockScriptFor(ba, bb swapcrypto.Pk256, h0, h2 swapcrypto.Hash32, t0 uint32) ([]byte, error) {
	return swapscript.Swaplock(ba, bb, h0, h2, t0)
}

// refundScriptFor builds the refund redeem script committed to by BTX2's
// output, gated on t_1: the relative locktime enforced by the refund
// script's own ELSE branch, not by the CSV sequence spending BTX1 (that one
// is t_0, see CreateTransactions below). Every call site that builds this
// script (CreateTransactions, and SpendRefund and ClaimRefund, which
// rebuild it to spend BTX2) must agree on which locktime it was built with, since a
// mismatch would commit a script hash that later spends could never
// reproduce; this module uses t_1 consistently wherever the refund script
// is built.
func refundScriptFor(ba, bb swapcrypto.Pk256, h1 swapcrypto.Hash32, t1 uint32) ([]byte, error) {
	return swapscript.Refund(ba, bb, h1, t1)
}

// CreateTransactions builds BTX1 (unsigned) and BTX2 (the Buyer's half
// signed), ready to hand to the Seller for verification and
// countersignature.
func CreateTransactions(setup BuyerSetup, utxo swaptx.Utxo, feeRate swaptx.FeeRate) (InitialTransactions, error) {
	swaplock, err := swaplockScriptFor(setup.Ba, setup.PubBb, setup.H0, setup.H2, setup.T0.Encode())
	if err != nil {
		return InitialTransactions{}, err
	}
	refundScript, err := refundScriptFor(setup.Ba, setup.PubBb, setup.H1, setup.T1.Encode())
	if err != nil {
		return InitialTransactions{}, err
	}

	funding := swaptx.NewFundingTx()
	if err := funding.Build(utxo, swaplock, feeRate); err != nil {
		return InitialTransactions{}, err
	}

	refund := swaptx.NewRefundTx(funding)
	if err := refund.Build(refundScript, setup.T0, feeRate); err != nil {
		return InitialTransactions{}, err
	}

	sigB, err := refund.Sign(setup.Bb, swaplock)
	if err != nil {
		return InitialTransactions{}, err
	}

	log.Debugf("buyer built funding and refund transactions")

	return InitialTransactions{
		FundingHex: funding.Hex(),
		RefundHex:  refund.Hex(),
		SigB:       sigB,
	}, nil
}

// LockFunds checks the Seller's countersignature on the now fully-signed
// BTX2, then signs and finalizes BTX1, committing the Buyer's coins to the
// swaplock output.
func LockFunds(setup BuyerSetup, fundingHex, refundSignedHex string, input FundingInput) (string, error) {
	swaplock, err := swaplockScriptFor(setup.Ba, setup.PubBb, setup.H0, setup.H2, setup.T0.Encode())
	if err != nil {
		return "", err
	}

	refund := swaptx.RefundTxFromHex(refundSignedHex, swaptx.Finalized, fundingHex)
	witness, err := swaptx.WitnessOf(refundSignedHex)
	if err != nil {
		return "", err
	}
	if len(witness) < 3 {
		return "", swaperr.New(swaperr.TransactionNotComplete, "refund transaction witness is incomplete")
	}
	sigA, err := swapcrypto.ParseSig256(witness[1])
	if err != nil {
		return "", err
	}
	if err := refund.VerifySig(setup.Ba, sigA, swaplock); err != nil {
		return "", err
	}

	funding := swaptx.FundingTxFromHex(fundingHex, swaptx.Built)
	sig, err := funding.Sign(input.PrivKey, input.Amount)
	if err != nil {
		return "", err
	}
	if err := funding.Finalize(sig, input.PrivKey.PubKey()); err != nil {
		return "", err
	}

	log.Debugf("buyer locked funds into swaplock output")

	return funding.Hex(), nil
}

// SpendRefund reclaims the Buyer's coins from the already-published BTX2
// through the refund script's IF branch, which carries no relative
// locktime; the Buyer must spend it before t_1 lets the Seller claim it
// through ClaimRefund. Revealing x_1 on-chain is harmless to the Buyer: x_0 must also be
// revealed before the combined Monero spend key can be assembled, and the
// Seller never learns x_1 from any other source.
func SpendRefund(setup BuyerSetup, refundSignedHex string, finalPkScript []byte, feeRate swaptx.FeeRate) (string, error) {
	refundScript, err := refundScriptFor(setup.Ba, setup.PubBb, setup.H1, setup.T1.Encode())
	if err != nil {
		return "", err
	}

	refund := swaptx.RefundTxFromHex(refundSignedHex, swaptx.Finalized, "")
	spend := swaptx.NewSpendRefundTx(refund)
	if err := spend.Build(finalPkScript, feeRate); err != nil {
		return "", err
	}

	sigB, err := spend.Sign(setup.Bb, refundScript)
	if err != nil {
		return "", err
	}

	if err := spend.Finalize(sigB, setup.X1, refundScript); err != nil {
		return "", err
	}

	log.Debugf("buyer reclaimed funds via spend-refund")

	return spend.Hex(), nil
}

// VerifyXmrLock checks the Seller's Monero lock against the swap's combined
// spend key X and returns the preimage s once it is satisfied, ready to
// hand to the Seller so they can build BTX3 (BuyTx).
func VerifyXmrLock(ctx context.Context, setup BuyerSetup, verifier xmrlock.Verifier, amount uint64) ([32]byte, error) {
	locked, err := verifier.VerifyLock(ctx, setup.X, amount)
	if err != nil {
		return [32]byte{}, err
	}
	if !locked {
		return [32]byte{}, swaperr.New(swaperr.MissingValue, "monero lock transaction not yet confirmed")
	}
	return setup.S, nil
}

// ParseBuyWitness extracts the s and x_0 preimages a finalized BuyTx
// reveals on-chain, grounded on swapscript.BuyWitness's element order.
func ParseBuyWitness(buyHex string) (s [32]byte, x0 swapcrypto.SkEd, err error) {
	witness, err := swaptx.WitnessOf(buyHex)
	if err != nil {
		return s, x0, err
	}
	if len(witness) < 3 {
		return s, x0, swaperr.New(swaperr.TransactionNotComplete, "buy transaction witness is incomplete")
	}
	if len(witness[1]) != 32 || len(witness[2]) != 32 {
		return s, x0, swaperr.New(swaperr.BitcoinEncoding, "buy transaction witness preimages are malformed")
	}
	copy(s[:], witness[1])
	var x0Bytes [32]byte
	copy(x0Bytes[:], witness[2])
	x0, err = swapcrypto.SkEdFromCanonicalBytes(x0Bytes)
	return s, x0, err
}

// ReleaseXmr computes the combined Monero spend scalar x = x_0 + x_1 once
// x_0 has appeared on the Bitcoin chain in a finalized BuyTx, completing
// the Buyer's side of the swap.
func ReleaseXmr(setup BuyerSetup, x0 swapcrypto.SkEd) swapcrypto.SkEd {
	return setup.X1.Add(x0)
}
