// Package swaptx implements the New→Sign→Finalize pipeline for the five
// Bitcoin transaction kinds the swap protocol constructs (Fund, Refund,
// Buy, SpendRefund, ClaimRefund), following the BIP-143 witness sighash
// call shape (txscript.CalcWitnessSigHash) for every signature.
//
// Every kind is modeled as a tagged union over {Build, Sign, Finalize}
// operation-input variants rather than a class hierarchy: a *Transaction
// carries its stage and current hex, and each kind's methods guard on that
// stage.
package swaptx

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/h4sh3d/monero-swap-go/swaperr"
)

// Stage tags where a Transaction sits in the New→Sign→Finalize pipeline.
type Stage uint8

const (
	// Uninitialized transactions have no serialized form yet.
	Uninitialized Stage = iota
	// Built transactions have inputs/outputs/nSequence set, but no
	// witness.
	Built
	// Signed is not set by any method in this package: Sign returns a
	// partial signature without changing the transaction's stage, which
	// stays Built until Finalize. Partial signatures are exchanged
	// out-of-band between the two parties.
	Signed
	// Finalized transactions carry a complete witness and are ready to
	// broadcast.
	Finalized
)

// DefaultFeeKB is the default per-kB fee, in satoshis, charged against the
// funding amount when a caller does not supply its own FeeRate.
const DefaultFeeKB = btcutil.Amount(10000)

// FeeRate lets a caller override the constant fee model with its own
// per-kB value while keeping every other pipeline semantic unchanged.
type FeeRate struct {
	// FeeKB is charged in full on the funding transaction and halved on
	// every transaction that spends a swap output.
	FeeKB btcutil.Amount
}

// DefaultFeeRate is the FeeRate built from DefaultFeeKB, for callers that
// do not choose their own; every Build method still takes it explicitly.
var DefaultFeeRate = FeeRate{FeeKB: DefaultFeeKB}

// Transaction is the shared envelope every tx kind embeds: its pipeline
// stage and its current serialized form. The tx is carried between phases
// as hex and re-parsed when needed, which keeps stages decoupled and
// partial signatures freely transferable between parties.
type Transaction struct {
	stage Stage
	hex   string
}

// Stage reports the transaction's current pipeline stage.
func (t *Transaction) Stage() Stage {
	return t.stage
}

// Hex returns the transaction's current serialized form. It is valid at
// every stage past Uninitialized, including partially-signed ones: a
// refund transaction with a single signature still serializes and
// re-parses without discarding its skeleton.
func (t *Transaction) Hex() string {
	return t.hex
}

// MsgTx re-parses the transaction's current hex into a *wire.MsgTx.
func (t *Transaction) MsgTx() (*wire.MsgTx, error) {
	if t.stage == Uninitialized {
		return nil, swaperr.New(swaperr.TransactionNotComplete, "transaction has not been built")
	}
	return parseHex(t.hex)
}

func parseHex(h string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(h)
	if err != nil {
		return nil, swaperr.Wrap(swaperr.HexError, err)
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, swaperr.Wrap(swaperr.BitcoinEncoding, err)
	}
	return tx, nil
}

func serializeHex(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return "", swaperr.Wrap(swaperr.BitcoinEncoding, err)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

func (t *Transaction) setBuilt(tx *wire.MsgTx) error {
	h, err := serializeHex(tx)
	if err != nil {
		return err
	}
	t.hex = h
	t.stage = Built
	return nil
}

func (t *Transaction) setFinalized(tx *wire.MsgTx) error {
	h, err := serializeHex(tx)
	if err != nil {
		return err
	}
	t.hex = h
	t.stage = Finalized
	return nil
}

func (t *Transaction) requireStage(min Stage) error {
	if t.stage < min {
		return swaperr.New(swaperr.TransactionNotComplete,
			"transaction pipeline stage too early for this operation")
	}
	return nil
}

// fromHex wraps an already-serialized transaction at the given stage,
// letting a party reconstruct a *Transaction received from its
// counterparty without re-running Build.
func fromHex(h string, stage Stage) Transaction {
	return Transaction{hex: h, stage: stage}
}

// WitnessOf parses h and returns its sole input's witness stack, for
// callers that need to read a revealed secret or signature back out of a
// transaction received from a counterparty.
func WitnessOf(h string) (wire.TxWitness, error) {
	tx, err := parseHex(h)
	if err != nil {
		return nil, err
	}
	if len(tx.TxIn) == 0 {
		return nil, swaperr.New(swaperr.TransactionNotComplete, "transaction has no inputs")
	}
	return tx.TxIn[0].Witness, nil
}

// parentOutput parses parentHex and returns its sole output along with the
// parent transaction's hash. Every tx kind in this package other than
// FundingTx spends output 0 of exactly one parent, so each of their Build
// methods uses this to assemble its single TxIn/TxOut pair without holding
// a live reference to the parent.
func parentOutput(parentHex string) (*wire.TxOut, chainhash.Hash, error) {
	parent, err := parseHex(parentHex)
	if err != nil {
		return nil, chainhash.Hash{}, err
	}
	if len(parent.TxOut) == 0 {
		return nil, chainhash.Hash{}, swaperr.New(
			swaperr.TransactionNotComplete, "parent transaction has no outputs",
		)
	}
	return parent.TxOut[0], parent.TxHash(), nil
}

// fee reports feeRate.FeeKB's contribution to a transaction's output
// value: the full rate for a funding transaction, half for every
// transaction that spends a swap output.
func fee(feeRate FeeRate, full bool) btcutil.Amount {
	if full {
		return feeRate.FeeKB
	}
	return feeRate.FeeKB / 2
}

// sigHashes builds the BIP-143 sighash midstate for a transaction with a
// single input spending prevScript/prevAmount.
func sigHashes(tx *wire.MsgTx, prevScript []byte, prevAmount btcutil.Amount) *txscript.TxSigHashes {
	fetcher := txscript.NewCannedPrevOutputFetcher(prevScript, int64(prevAmount))
	return txscript.NewTxSigHashes(tx, fetcher)
}

// witnessSigHash computes the raw BIP-143 sighash for tx's single input
// spending prevScript/prevAmount under SIGHASH_ALL.
func witnessSigHash(tx *wire.MsgTx, prevScript []byte, prevAmount btcutil.Amount) ([32]byte, error) {
	var out [32]byte
	hashes := sigHashes(tx, prevScript, prevAmount)
	sigHash, err := txscript.CalcWitnessSigHash(
		prevScript, hashes, txscript.SigHashAll, tx, 0, int64(prevAmount),
	)
	if err != nil {
		return out, swaperr.Wrap(swaperr.BitcoinEncoding, err)
	}
	copy(out[:], sigHash)
	return out, nil
}
