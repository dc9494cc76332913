package swapscript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
)

// derSig is a minimal DER signature r=1, s=1, with the trailing SIGHASH_ALL
// byte this module always appends.
var derSig = []byte{48, 6, 2, 1, 1, 2, 1, 1, 1}

func mustSig(t *testing.T) swapcrypto.Sig256 {
	t.Helper()
	sig, err := swapcrypto.ParseSig256(derSig)
	require.NoError(t, err)
	return sig
}

func mustShare(t *testing.T) swapcrypto.SkEd {
	t.Helper()
	var b [32]byte
	b[31] = 1
	share, err := swapcrypto.SkEdFromCanonicalBytes(b)
	require.NoError(t, err)
	return share
}

func TestRefundWitnessLayout(t *testing.T) {
	script := make([]byte, 140)
	sig := mustSig(t)

	w := RefundWitness(script, sig, sig)
	require.Len(t, w, 5)
	require.Nil(t, w[0])
	require.Equal(t, derSig, w[1])
	require.Equal(t, derSig, w[2])
	require.Nil(t, w[3])
	require.Equal(t, script, w[4])
}

func TestBuyWitnessLayout(t *testing.T) {
	script := make([]byte, 140)
	sig := mustSig(t)
	share := mustShare(t)
	var s [32]byte

	w := BuyWitness(script, sig, s, share)
	require.Len(t, w, 5)
	require.Equal(t, derSig, w[0])
	require.Equal(t, s[:], w[1])

	wantShare := make([]byte, 32)
	wantShare[31] = 1
	require.Equal(t, wantShare, w[2])

	require.Equal(t, []byte{1}, w[3])
	require.Equal(t, script, w[4])

	// The revealed share hashes to the commitment the swaplock script
	// checks on-chain.
	h0 := swapcrypto.Sha256(w[2])
	require.Equal(t, swapcrypto.Sha256(share.Bytes()[:]), h0)
}

func TestClaimRefundWitnessLayout(t *testing.T) {
	script := make([]byte, 140)
	sig := mustSig(t)

	w := ClaimRefundWitness(script, sig)
	require.Len(t, w, 3)
	require.Equal(t, derSig, w[0])
	require.Nil(t, w[1])
	require.Equal(t, script, w[2])
}

func TestSpendRefundWitnessLayout(t *testing.T) {
	script := make([]byte, 140)
	sig := mustSig(t)
	share := mustShare(t)

	w := SpendRefundWitness(script, sig, share)
	require.Len(t, w, 4)
	require.Equal(t, derSig, w[0])

	wantShare := make([]byte, 32)
	wantShare[31] = 1
	require.Equal(t, wantShare, w[1])

	require.Equal(t, []byte{1}, w[2])
	require.Equal(t, script, w[3])
}

func TestWitnessAssemblyDeterministic(t *testing.T) {
	script := make([]byte, 140)
	sig := mustSig(t)
	share := mustShare(t)
	var s [32]byte

	w1 := BuyWitness(script, sig, s, share)
	w2 := BuyWitness(script, sig, s, share)
	require.Equal(t, w1, w2)
}
