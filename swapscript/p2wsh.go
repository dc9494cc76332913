package swapscript

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaperr"
)

// WitnessScriptHash builds the P2WSH output script `OP_0 <32-byte
// SHA256(redeemScript)>` for redeemScript.
func WitnessScriptHash(redeemScript []byte) ([]byte, error) {
	scriptHash := swapcrypto.Sha256(redeemScript)

	builder := txscript.NewScriptBuilder()
	builder.AddOp(txscript.OP_0)
	builder.AddData(scriptHash.Bytes())

	script, err := builder.Script()
	if err != nil {
		return nil, swaperr.Wrap(swaperr.BitcoinEncoding, err)
	}
	return script, nil
}

// WitnessScriptHashAddress renders redeemScript's P2WSH output as a
// human-displayable address for the given network, exercising btcutil's
// address types beyond the bare pkScript.
func WitnessScriptHashAddress(redeemScript []byte, params *chaincfg.Params) (btcutil.Address, error) {
	scriptHash := swapcrypto.Sha256(redeemScript)
	addr, err := btcutil.NewAddressWitnessScriptHash(scriptHash.Bytes(), params)
	if err != nil {
		return nil, swaperr.Wrap(swaperr.BitcoinEncoding, err)
	}
	return addr, nil
}
