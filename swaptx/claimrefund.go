package swaptx

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/h4sh3d/monero-swap-go/locktime"
	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swapscript"
)

// ClaimRefundTx is BTX5: the Seller's exceptional-path spend of the refund
// output's ELSE branch, claiming the locked coins after the relative
// locktime t_1 expires without the Buyer having spent the refund output.
type ClaimRefundTx struct {
	Transaction
	refundHex string
}

// NewClaimRefundTx starts a fresh claim-refund transaction tied to
// refundTx's current serialized form.
func NewClaimRefundTx(refundTx *RefundTx) *ClaimRefundTx {
	return &ClaimRefundTx{refundHex: refundTx.Hex()}
}

// Build spends the captured refund transaction's output to finalPkScript,
// sequence-gated by t1.
func (c *ClaimRefundTx) Build(finalPkScript []byte, t1 locktime.RelativeLocktime, feeRate FeeRate) error {
	refundOut, refundHash, err := parentOutput(c.refundHex)
	if err != nil {
		return err
	}

	outAmount := btcutil.Amount(refundOut.Value) - fee(feeRate, false)

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: refundHash, Index: 0},
		Sequence:         t1.Encode(),
	})
	tx.AddTxOut(wire.NewTxOut(int64(outAmount), finalPkScript))

	return c.setBuilt(tx)
}

// Sign computes the BIP-143 sighash over refundScript and signs it.
func (c *ClaimRefundTx) Sign(privKey swapcrypto.Sk256, refundScript []byte) (swapcrypto.Sig256, error) {
	if err := c.requireStage(Built); err != nil {
		return swapcrypto.Sig256{}, err
	}
	tx, err := c.MsgTx()
	if err != nil {
		return swapcrypto.Sig256{}, err
	}
	refundOut, _, err := parentOutput(c.refundHex)
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	sigHash, err := witnessSigHash(tx, refundScript, btcutil.Amount(refundOut.Value))
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	return privKey.Sign(sigHash), nil
}

// Finalize attaches the ClaimRefund witness and marks the transaction
// ready to broadcast.
func (c *ClaimRefundTx) Finalize(sigA swapcrypto.Sig256, refundScript []byte) error {
	if err := c.requireStage(Built); err != nil {
		return err
	}
	tx, err := c.MsgTx()
	if err != nil {
		return err
	}

	tx.TxIn[0].Witness = swapscript.ClaimRefundWitness(refundScript, sigA)

	return c.setFinalized(tx)
}
