package swaptx

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swapscript"
)

// SpendRefundTx is BTX4: the Buyer's exceptional-path spend of the refund
// output's IF branch, reclaiming the locked coins while revealing the
// Buyer's Monero spend-key share x_1 on-chain.
type SpendRefundTx struct {
	Transaction
	refundHex string
}

// NewSpendRefundTx starts a fresh spend-refund transaction tied to
// refundTx's current serialized form.
func NewSpendRefundTx(refundTx *RefundTx) *SpendRefundTx {
	return &SpendRefundTx{refundHex: refundTx.Hex()}
}

// Build spends the captured refund transaction's output to finalPkScript.
func (s *SpendRefundTx) Build(finalPkScript []byte, feeRate FeeRate) error {
	refundOut, refundHash, err := parentOutput(s.refundHex)
	if err != nil {
		return err
	}

	outAmount := btcutil.Amount(refundOut.Value) - fee(feeRate, false)

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: refundHash, Index: 0},
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(int64(outAmount), finalPkScript))

	return s.setBuilt(tx)
}

// Sign computes the BIP-143 sighash over refundScript and signs it.
func (s *SpendRefundTx) Sign(privKey swapcrypto.Sk256, refundScript []byte) (swapcrypto.Sig256, error) {
	if err := s.requireStage(Built); err != nil {
		return swapcrypto.Sig256{}, err
	}
	tx, err := s.MsgTx()
	if err != nil {
		return swapcrypto.Sig256{}, err
	}
	refundOut, _, err := parentOutput(s.refundHex)
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	sigHash, err := witnessSigHash(tx, refundScript, btcutil.Amount(refundOut.Value))
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	return privKey.Sign(sigHash), nil
}

// Finalize attaches the SpendRefund witness, revealing x1, and marks the
// transaction ready to broadcast.
func (s *SpendRefundTx) Finalize(sigB swapcrypto.Sig256, x1 swapcrypto.SkEd, refundScript []byte) error {
	if err := s.requireStage(Built); err != nil {
		return err
	}
	tx, err := s.MsgTx()
	if err != nil {
		return err
	}

	tx.TxIn[0].Witness = swapscript.SpendRefundWitness(refundScript, sigB, x1)

	return s.setFinalized(tx)
}
