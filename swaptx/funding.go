package swaptx

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swapscript"
)

// Utxo identifies a confirmed Bitcoin output the Buyer spends from to fund
// the swap.
type Utxo struct {
	Txid   chainhash.Hash
	Vout   uint32
	Amount btcutil.Amount
}

// FundingTx is BTX1: the single-input, single-output transaction that locks
// the Buyer's coins into the swaplock P2WSH output.
type FundingTx struct {
	Transaction
}

// NewFundingTx starts a fresh, unbuilt funding transaction.
func NewFundingTx() *FundingTx {
	return &FundingTx{}
}

// FundingTxFromHex reconstructs a FundingTx received from the
// counterparty, without re-running Build.
func FundingTxFromHex(h string, stage Stage) *FundingTx {
	return &FundingTx{Transaction: fromHex(h, stage)}
}

// Build spends utxo into a P2WSH output committing to swaplockScript, minus
// the funding transaction's full fee.
func (f *FundingTx) Build(utxo Utxo, swaplockScript []byte, feeRate FeeRate) error {
	pkScript, err := swapscript.WitnessScriptHash(swaplockScript)
	if err != nil {
		return err
	}

	outAmount := utxo.Amount - fee(feeRate, true)

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: utxo.Txid, Index: utxo.Vout},
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(int64(outAmount), pkScript))

	return f.setBuilt(tx)
}

// Sign computes the BIP-143 sighash over the P2PKH redeem script matching
// privKey's public key and the spent UTXO's amount, and signs it.
func (f *FundingTx) Sign(privKey swapcrypto.Sk256, inputAmount btcutil.Amount) (swapcrypto.Sig256, error) {
	if err := f.requireStage(Built); err != nil {
		return swapcrypto.Sig256{}, err
	}
	tx, err := f.MsgTx()
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	redeemScript, err := swapscript.RedeemP2PKH(privKey.PubKey())
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	sigHash, err := witnessSigHash(tx, redeemScript, inputAmount)
	if err != nil {
		return swapcrypto.Sig256{}, err
	}

	return privKey.Sign(sigHash), nil
}

// Finalize attaches the standard P2WPKH witness {sig, pubkey} and marks the
// transaction ready to broadcast.
func (f *FundingTx) Finalize(sig swapcrypto.Sig256, pubKey swapcrypto.Pk256) error {
	if err := f.requireStage(Built); err != nil {
		return err
	}
	tx, err := f.MsgTx()
	if err != nil {
		return err
	}

	tx.TxIn[0].Witness = wire.TxWitness{sig.Serialize(), pubKey.SerializeCompressed()}

	return f.setFinalized(tx)
}
