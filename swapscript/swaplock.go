// Package swapscript builds the two custom Bitcoin Script redeem scripts
// that encode the swap protocol (swaplock, refund) and assembles the
// witness stacks for each of their spend paths, using the same
// IF/ELSE-branch, CSV-gated builder shape as an HTLC timeout script:
// txscript.NewScriptBuilder chaining opcodes for each branch in turn.
package swapscript

import (
	"github.com/btcsuite/btcd/txscript"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaperr"
)

// Swaplock builds the redeem script gating BTX1's single output:
//
//	IF
//	  OP_SHA256 <h_0> OP_EQUALVERIFY
//	  OP_SHA256 <h_2> OP_EQUALVERIFY
//	  <B_a> OP_CHECKSIG
//	ELSE
//	  <t_0> OP_CSV OP_DROP
//	  OP_2 <B_a> <B_b> OP_2 OP_CHECKMULTISIG
//	ENDIF
//
// The IF-branch (spent by Buy) requires the two hashlock preimages (Seller's
// Monero spend-key share x_0, and Buyer's secret s) plus Seller's
// signature. The ELSE-branch (spent by Refund) requires a t_0 relative
// delay and a 2-of-2 multisig under B_a, B_b.
func Swaplock(bA, bB swapcrypto.Pk256, h0, h2 swapcrypto.Hash32, t0 uint32) ([]byte, error) {
	builder := txscript.NewScriptBuilder()

	builder.AddOp(txscript.OP_IF)
	builder.AddOp(txscript.OP_SHA256)
	builder.AddData(h0.Bytes())
	builder.AddOp(txscript.OP_EQUALVERIFY)
	builder.AddOp(txscript.OP_SHA256)
	builder.AddData(h2.Bytes())
	builder.AddOp(txscript.OP_EQUALVERIFY)
	builder.AddData(bA.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)
	builder.AddOp(txscript.OP_ELSE)
	builder.AddInt64(int64(t0))
	builder.AddOp(txscript.OP_CHECKSEQUENCEVERIFY)
	builder.AddOp(txscript.OP_DROP)
	builder.AddOp(txscript.OP_2)
	builder.AddData(bA.SerializeCompressed())
	builder.AddData(bB.SerializeCompressed())
	builder.AddOp(txscript.OP_2)
	builder.AddOp(txscript.OP_CHECKMULTISIG)
	builder.AddOp(txscript.OP_ENDIF)

	script, err := builder.Script()
	if err != nil {
		return nil, swaperr.Wrap(swaperr.BitcoinEncoding, err)
	}
	return script, nil
}

// Refund builds the redeem script gating BTX2's single output:
//
//	IF OP_SHA256 <h_1> OP_EQUALVERIFY <B_b> OP_CHECKSIG
//	ELSE <t_1> OP_CSV OP_DROP <B_a> OP_CHECKSIG
//	ENDIF
//
// The IF-branch (spent by SpendRefund) requires Buyer's x_1 preimage plus
// Buyer's signature. The ELSE-branch (spent by ClaimRefund) requires a t_1
// relative delay and Seller's signature.
func Refund(bA, bB swapcrypto.Pk256, h1 swapcrypto.Hash32, t1 uint32) ([]byte, error) {
	builder := txscript.NewScriptBuilder()

	builder.AddOp(txscript.OP_IF)
	builder.AddOp(txscript.OP_SHA256)
	builder.AddData(h1.Bytes())
	builder.AddOp(txscript.OP_EQUALVERIFY)
	builder.AddData(bB.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)
	builder.AddOp(txscript.OP_ELSE)
	builder.AddInt64(int64(t1))
	builder.AddOp(txscript.OP_CHECKSEQUENCEVERIFY)
	builder.AddOp(txscript.OP_DROP)
	builder.AddData(bA.SerializeCompressed())
	builder.AddOp(txscript.OP_CHECKSIG)
	builder.AddOp(txscript.OP_ENDIF)

	script, err := builder.Script()
	if err != nil {
		return nil, swaperr.Wrap(swaperr.BitcoinEncoding, err)
	}
	return script, nil
}

// RedeemP2PKH builds the standard P2PKH redeem template used to sign the
// funding transaction's single P2WPKH input, grounded on the original
// source's scripts::redeem_p2pkh.
func RedeemP2PKH(pub swapcrypto.Pk256) ([]byte, error) {
	builder := txscript.NewScriptBuilder()
	builder.AddOp(txscript.OP_DUP)
	builder.AddOp(txscript.OP_HASH160)
	builder.AddData(swapcrypto.Hash160(pub.SerializeCompressed()))
	builder.AddOp(txscript.OP_EQUALVERIFY)
	builder.AddOp(txscript.OP_CHECKSIG)

	script, err := builder.Script()
	if err != nil {
		return nil, swaperr.Wrap(swaperr.BitcoinEncoding, err)
	}
	return script, nil
}
