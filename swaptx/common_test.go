package swaptx

import (
	"crypto/rand"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaperr"
)

func mustSk(t *testing.T) swapcrypto.Sk256 {
	t.Helper()
	sk, err := swapcrypto.GenerateSk256(rand.Reader)
	require.NoError(t, err)
	return sk
}

func dummyFinalScript(t *testing.T) []byte {
	t.Helper()
	script, err := txscript.NewScriptBuilder().AddOp(txscript.OP_TRUE).Script()
	require.NoError(t, err)
	return script
}

func TestTransactionUninitializedRejectsMsgTx(t *testing.T) {
	var tx Transaction
	require.Equal(t, Uninitialized, tx.Stage())

	_, err := tx.MsgTx()
	require.Error(t, err)
	require.True(t, swaperr.Is(err, swaperr.TransactionNotComplete))
}

func TestFeeHalvesPastFunding(t *testing.T) {
	rate := FeeRate{FeeKB: 10000}
	require.Equal(t, rate.FeeKB, fee(rate, true))
	require.Equal(t, rate.FeeKB/2, fee(rate, false))
}

func TestParentOutputRejectsInvalidHex(t *testing.T) {
	f := NewFundingTx()
	require.NoError(t, f.Build(Utxo{
		Txid:   chainhash.Hash{},
		Vout:   0,
		Amount: 100000,
	}, make([]byte, 140), DefaultFeeRate))

	_, _, err := parentOutput("not-hex")
	require.Error(t, err)
	require.True(t, swaperr.Is(err, swaperr.HexError))
}
