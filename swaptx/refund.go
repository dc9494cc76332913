package swaptx

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/h4sh3d/monero-swap-go/locktime"
	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaperr"
	"github.com/h4sh3d/monero-swap-go/swapscript"
)

// RefundTx is BTX2: spends the swaplock output's 2-of-2 multisig branch
// into a new P2WSH output guarded by the refund script, gated by the
// relative locktime t_0 on the swaplock's CSV path.
//
// RefundTx keeps a value copy of its parent FundingTx's hex rather than a
// live reference: once built, it must remain independently serializable
// even after the FundingTx that produced it goes out of scope.
type RefundTx struct {
	Transaction
	fundingHex string
}

// NewRefundTx starts a fresh refund transaction tied to fundingTx's current
// serialized form.
func NewRefundTx(fundingTx *FundingTx) *RefundTx {
	return &RefundTx{fundingHex: fundingTx.Hex()}
}

// RefundTxFromHex reconstructs a RefundTx received from the counterparty,
// pairing it with the funding transaction's hex it was built against.
func RefundTxFromHex(h string, stage Stage, fundingHex string) *RefundTx {
	return &RefundTx{Transaction: fromHex(h, stage), fundingHex: fundingHex}
}

// Build spends the captured funding transaction's output into a new P2WSH
// output committing to refundScript, sequence-gated by t0.
func (r *RefundTx) Build(refundScript []byte, t0 locktime.RelativeLocktime, feeRate FeeRate) error {
	fundingOut, fundingHash, err := parentOutput(r.fundingHex)
	if err != nil {
		return err
	}

	pkScript, err := swapscript.WitnessScriptHash(refundScript)
	if err != nil {
		return err
	}

	outAmount := btcutil.Amount(fundingOut.Value) - fee(feeRate, false)

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: fundingHash, Index: 0},
		Sequence:         t0.Encode(),
	})
	tx.AddTxOut(wire.NewTxOut(int64(outAmount), pkScript))

	return r.setBuilt(tx)
}

// Sign computes the BIP-143 sighash over swaplockScript and the captured
// funding output's amount, and signs it.
func (r *RefundTx) Sign(privKey swapcrypto.Sk256, swaplockScript []byte) (swapcrypto.Sig256, error) {
	if err := r.requireStage(Built); err != nil {
		return swapcrypto.Sig256{}, err
	}
	tx, err := r.MsgTx()
	if err != nil {
		return swapcrypto.Sig256{}, err
	}
	fundingOut, _, err := parentOutput(r.fundingHex)
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	sigHash, err := witnessSigHash(tx, swaplockScript, btcutil.Amount(fundingOut.Value))
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	return privKey.Sign(sigHash), nil
}

// VerifySig checks that sig is a valid signature by pub over this
// transaction's swaplock sighash. Used by each party to validate the
// counterparty's partial signature before finalizing, for either of the
// two multisig keys.
func (r *RefundTx) VerifySig(pub swapcrypto.Pk256, sig swapcrypto.Sig256, swaplockScript []byte) error {
	if err := r.requireStage(Built); err != nil {
		return err
	}
	tx, err := r.MsgTx()
	if err != nil {
		return err
	}
	fundingOut, _, err := parentOutput(r.fundingHex)
	if err != nil {
		return err
	}

	sigHash, err := witnessSigHash(tx, swaplockScript, btcutil.Amount(fundingOut.Value))
	if err != nil {
		return err
	}

	if !swapcrypto.Verify(pub, sigHash, sig) {
		return swaperr.New(swaperr.InvalidSignature, "refund transaction signature does not verify")
	}
	return nil
}

// Finalize attaches the 2-of-2 multisig witness and marks the transaction
// ready to broadcast.
func (r *RefundTx) Finalize(sigA, sigB swapcrypto.Sig256, swaplockScript []byte) error {
	if err := r.requireStage(Built); err != nil {
		return err
	}
	tx, err := r.MsgTx()
	if err != nil {
		return err
	}

	tx.TxIn[0].Witness = swapscript.RefundWitness(swaplockScript, sigA, sigB)

	return r.setFinalized(tx)
}
