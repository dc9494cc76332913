package swaptx

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func TestFundingTxBuildSignFinalize(t *testing.T) {
	sk := mustSk(t)
	utxo := Utxo{Txid: chainhash.Hash{1, 2, 3}, Vout: 1, Amount: 200000}
	swaplockScript := make([]byte, 140)

	f := NewFundingTx()
	require.Equal(t, Uninitialized, f.Stage())

	require.NoError(t, f.Build(utxo, swaplockScript, DefaultFeeRate))
	require.Equal(t, Built, f.Stage())

	tx, err := f.MsgTx()
	require.NoError(t, err)
	require.Len(t, tx.TxOut, 1)
	require.EqualValues(t, 200000-10000, tx.TxOut[0].Value)

	sig, err := f.Sign(sk, utxo.Amount)
	require.NoError(t, err)

	require.NoError(t, f.Finalize(sig, sk.PubKey()))
	require.Equal(t, Finalized, f.Stage())

	finalTx, err := f.MsgTx()
	require.NoError(t, err)
	require.Len(t, finalTx.TxIn[0].Witness, 2)
	require.Equal(t, sig.Serialize(), []byte(finalTx.TxIn[0].Witness[0]))
	require.Equal(t, sk.PubKey().SerializeCompressed(), []byte(finalTx.TxIn[0].Witness[1]))
}

func TestFundingTxSignBeforeBuildFails(t *testing.T) {
	f := NewFundingTx()
	_, err := f.Sign(mustSk(t), 1000)
	require.Error(t, err)
}
