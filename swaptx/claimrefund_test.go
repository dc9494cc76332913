package swaptx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/h4sh3d/monero-swap-go/locktime"
)

func TestClaimRefundTxBuildSignFinalize(t *testing.T) {
	funding := builtFunding(t, 200000)
	r := NewRefundTx(funding)
	require.NoError(t, r.Build(make([]byte, 140), locktime.Blocks(144), DefaultFeeRate))
	skA, skB := mustSk(t), mustSk(t)
	swaplockScript := make([]byte, 140)
	sigA, err := r.Sign(skA, swaplockScript)
	require.NoError(t, err)
	sigB, err := r.Sign(skB, swaplockScript)
	require.NoError(t, err)
	require.NoError(t, r.Finalize(sigA, sigB, swaplockScript))

	c := NewClaimRefundTx(r)
	require.NoError(t, c.Build(dummyFinalScript(t), locktime.Time(5), DefaultFeeRate))
	require.Equal(t, Built, c.Stage())

	refundScript := make([]byte, 140)
	skSeller := mustSk(t)
	sig, err := c.Sign(skSeller, refundScript)
	require.NoError(t, err)

	require.NoError(t, c.Finalize(sig, refundScript))
	require.Equal(t, Finalized, c.Stage())

	tx, err := c.MsgTx()
	require.NoError(t, err)
	require.Len(t, tx.TxIn[0].Witness, 3)
}
