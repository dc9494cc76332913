package swaptx

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swapscript"
)

// BuyTx is BTX3: the Seller's happy-path spend of the swaplock output's IF
// branch, claiming the locked Bitcoin to the Seller's own final output
// while revealing s and the Seller's Monero spend-key share x_0 on-chain.
// The Buyer later combines x_0 with the privately-held x_1 to claim the
// Monero side — this is the atomicity hinge of the whole protocol.
type BuyTx struct {
	Transaction
	fundingHex string
}

// NewBuyTx starts a fresh buy transaction tied to fundingTx's current
// serialized form.
func NewBuyTx(fundingTx *FundingTx) *BuyTx {
	return &BuyTx{fundingHex: fundingTx.Hex()}
}

// Build spends the captured funding transaction's output to finalPkScript.
func (b *BuyTx) Build(finalPkScript []byte, feeRate FeeRate) error {
	fundingOut, fundingHash, err := parentOutput(b.fundingHex)
	if err != nil {
		return err
	}

	outAmount := btcutil.Amount(fundingOut.Value) - fee(feeRate, false)

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: fundingHash, Index: 0},
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(int64(outAmount), finalPkScript))

	return b.setBuilt(tx)
}

// Sign computes the BIP-143 sighash over swaplockScript and signs it.
func (b *BuyTx) Sign(privKey swapcrypto.Sk256, swaplockScript []byte) (swapcrypto.Sig256, error) {
	if err := b.requireStage(Built); err != nil {
		return swapcrypto.Sig256{}, err
	}
	tx, err := b.MsgTx()
	if err != nil {
		return swapcrypto.Sig256{}, err
	}
	fundingOut, _, err := parentOutput(b.fundingHex)
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	sigHash, err := witnessSigHash(tx, swaplockScript, btcutil.Amount(fundingOut.Value))
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	return privKey.Sign(sigHash), nil
}

// Finalize attaches the Buy witness, revealing s and x0, and marks the
// transaction ready to broadcast.
func (b *BuyTx) Finalize(sigA swapcrypto.Sig256, s [32]byte, x0 swapcrypto.SkEd, swaplockScript []byte) error {
	if err := b.requireStage(Built); err != nil {
		return err
	}
	tx, err := b.MsgTx()
	if err != nil {
		return err
	}

	tx.TxIn[0].Witness = swapscript.BuyWitness(swaplockScript, sigA, s, x0)

	return b.setFinalized(tx)
}
