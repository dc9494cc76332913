package swapproto

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"

	"github.com/h4sh3d/monero-swap-go/locktime"
	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaperr"
	"github.com/h4sh3d/monero-swap-go/swaptx"
	"github.com/h4sh3d/monero-swap-go/xmrlock"
)

func mustSk(t *testing.T) swapcrypto.Sk256 {
	t.Helper()
	sk, err := swapcrypto.GenerateSk256(rand.Reader)
	require.NoError(t, err)
	return sk
}

func dummyScript(t *testing.T) []byte {
	t.Helper()
	s, err := txscript.NewScriptBuilder().AddOp(txscript.OP_TRUE).Script()
	require.NoError(t, err)
	return s
}

func setupPair(t *testing.T) (BuyerSetup, SellerSetup) {
	t.Helper()
	params := Params{T0: locktime.Blocks(144), T1: locktime.Blocks(72)}

	buyerParams, err := BuyerSetupKeys(params, rand.Reader)
	require.NoError(t, err)
	sellerParams, err := SellerSetupKeys(params, rand.Reader)
	require.NoError(t, err)

	buyerSetup, err := BuyerVerifySetup(buyerParams, sellerParams.Export())
	require.NoError(t, err)
	sellerSetup, err := SellerVerifySetup(sellerParams, buyerParams.Export())
	require.NoError(t, err)

	return buyerSetup, sellerSetup
}

func TestVerifySetupRejectsLocktimeMismatch(t *testing.T) {
	paramsA := Params{T0: locktime.Blocks(144), T1: locktime.Blocks(72)}
	paramsB := Params{T0: locktime.Blocks(100), T1: locktime.Blocks(72)}

	buyerParams, err := BuyerSetupKeys(paramsA, rand.Reader)
	require.NoError(t, err)
	sellerParams, err := SellerSetupKeys(paramsB, rand.Reader)
	require.NoError(t, err)

	_, err = BuyerVerifySetup(buyerParams, sellerParams.Export())
	require.Error(t, err)
	require.True(t, swaperr.Is(err, swaperr.MismatchCommonParameters))

	_, err = SellerVerifySetup(sellerParams, buyerParams.Export())
	require.Error(t, err)
	require.True(t, swaperr.Is(err, swaperr.MismatchCommonParameters))
}

func TestSwapHappyPath(t *testing.T) {
	buyerSetup, sellerSetup := setupPair(t)

	utxo := swaptx.Utxo{Txid: chainhash.Hash{1}, Vout: 0, Amount: 1_000_000}

	initial, err := CreateTransactions(buyerSetup, utxo, swaptx.DefaultFeeRate)
	require.NoError(t, err)

	verified, err := VerifyTransactions(sellerSetup, initial.FundingHex, initial.RefundHex, initial.SigB)
	require.NoError(t, err)

	lockedFundingHex, err := LockFunds(buyerSetup, initial.FundingHex, verified.RefundSignedHex, FundingInput{
		PrivKey: mustSk(t),
		Amount:  utxo.Amount,
	})
	require.NoError(t, err)

	s, err := VerifyXmrLock(context.Background(), buyerSetup, xmrlock.Fake{Locked: true}, 1000)
	require.NoError(t, err)
	require.Equal(t, buyerSetup.S, s)

	buyHex, err := Swap(sellerSetup, lockedFundingHex, s, dummyScript(t), swaptx.DefaultFeeRate)
	require.NoError(t, err)

	gotS, x0, err := ParseBuyWitness(buyHex)
	require.NoError(t, err)
	require.Equal(t, s, gotS)
	require.Equal(t, sellerSetup.X0.Bytes(), x0.Bytes())

	combined := ReleaseXmr(buyerSetup, x0)
	require.Equal(t, buyerSetup.X.Bytes(), combined.BasepointMul().Bytes())
}

func TestVerifyXmrLockFailsWhenNotLocked(t *testing.T) {
	buyerSetup, _ := setupPair(t)
	_, err := VerifyXmrLock(context.Background(), buyerSetup, xmrlock.Fake{Locked: false}, 1000)
	require.Error(t, err)
	require.True(t, swaperr.Is(err, swaperr.MissingValue))
}

func TestSwapExceptionalPath(t *testing.T) {
	buyerSetup, sellerSetup := setupPair(t)
	utxo := swaptx.Utxo{Txid: chainhash.Hash{2}, Vout: 0, Amount: 1_000_000}

	initial, err := CreateTransactions(buyerSetup, utxo, swaptx.DefaultFeeRate)
	require.NoError(t, err)

	verified, err := VerifyTransactions(sellerSetup, initial.FundingHex, initial.RefundHex, initial.SigB)
	require.NoError(t, err)

	spendHex, err := SpendRefund(buyerSetup, verified.RefundSignedHex, dummyScript(t), swaptx.DefaultFeeRate)
	require.NoError(t, err)
	require.NotEmpty(t, spendHex)

	claimHex, err := ClaimRefund(sellerSetup, verified.RefundSignedHex, dummyScript(t), swaptx.DefaultFeeRate)
	require.NoError(t, err)
	require.NotEmpty(t, claimHex)
}

func TestInitiateSwapIsANoop(t *testing.T) {
	_, sellerSetup := setupPair(t)
	require.NoError(t, InitiateSwap(sellerSetup))
}
