package swaptx

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"

	"github.com/h4sh3d/monero-swap-go/locktime"
)

func builtFunding(t *testing.T, amount btcutil.Amount) *FundingTx {
	t.Helper()
	f := NewFundingTx()
	require.NoError(t, f.Build(Utxo{
		Txid:   chainhash.Hash{9, 9, 9},
		Vout:   0,
		Amount: amount,
	}, make([]byte, 140), DefaultFeeRate))
	sk := mustSk(t)
	sig, err := f.Sign(sk, amount)
	require.NoError(t, err)
	require.NoError(t, f.Finalize(sig, sk.PubKey()))
	return f
}

func TestRefundTxBuildSignVerifyFinalize(t *testing.T) {
	funding := builtFunding(t, 200000)
	skA, skB := mustSk(t), mustSk(t)

	r := NewRefundTx(funding)
	require.NoError(t, r.Build(make([]byte, 140), locktime.Blocks(144), DefaultFeeRate))
	require.Equal(t, Built, r.Stage())

	swaplockScript := make([]byte, 140)
	sigA, err := r.Sign(skA, swaplockScript)
	require.NoError(t, err)
	sigB, err := r.Sign(skB, swaplockScript)
	require.NoError(t, err)

	require.NoError(t, r.VerifySig(skA.PubKey(), sigA, swaplockScript))
	require.NoError(t, r.VerifySig(skB.PubKey(), sigB, swaplockScript))

	// A signature from the wrong key must not verify.
	require.Error(t, r.VerifySig(skA.PubKey(), sigB, swaplockScript))

	require.NoError(t, r.Finalize(sigA, sigB, swaplockScript))
	require.Equal(t, Finalized, r.Stage())
}

func TestRefundTxSurvivesParentGoingOutOfScope(t *testing.T) {
	fundingHex := func() string {
		funding := builtFunding(t, 150000)
		return funding.Hex()
	}()

	r := &RefundTx{fundingHex: fundingHex}
	require.NoError(t, r.Build(make([]byte, 140), locktime.Blocks(10), DefaultFeeRate))
	require.Equal(t, Built, r.Stage())
}
