package swapscript

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/h4sh3d/monero-swap-go/swapcrypto"
)

// These expected byte strings pin script construction to be byte-exact
// across changes.

func mustPk256(t *testing.T, hexStr string) swapcrypto.Pk256 {
	t.Helper()
	b, err := hex.DecodeString(hexStr)
	require.NoError(t, err)
	pk, err := swapcrypto.Pk256FromCompressed(b)
	require.NoError(t, err)
	return pk
}

func TestSwaplockScriptBytesExact(t *testing.T) {
	bA := mustPk256(t, "02ea5b20f5e0ff2266a2670a5b96216c11f6760ef796d3ef5c846704c89bdd1099")
	bB := mustPk256(t, "03580314ac61e993d67dc247aa742a89568f1018efdaa1d29b848aa933563442a8")

	var h0, h2 swapcrypto.Hash32
	for i := range h0 {
		h0[i] = 2
		h2[i] = 4
	}

	script, err := Swaplock(bA, bB, h0, h2, 144)
	require.NoError(t, err)

	want := "63a820020202020202020202020202020202020202020202020202020202020202020288a8200404040404040404040404040404040404040404040404040404040404040404882102ea5b20f5e0ff2266a2670a5b96216c11f6760ef796d3ef5c846704c89bdd1099ac67029000b275522102ea5b20f5e0ff2266a2670a5b96216c11f6760ef796d3ef5c846704c89bdd10992103580314ac61e993d67dc247aa742a89568f1018efdaa1d29b848aa933563442a852ae68"
	require.Equal(t, want, hex.EncodeToString(script))
}

func TestRefundScriptBytesExact(t *testing.T) {
	bA := mustPk256(t, "02ea5b20f5e0ff2266a2670a5b96216c11f6760ef796d3ef5c846704c89bdd1099")
	bB := mustPk256(t, "03580314ac61e993d67dc247aa742a89568f1018efdaa1d29b848aa933563442a8")

	var h1 swapcrypto.Hash32 // all-zero

	script, err := Refund(bA, bB, h1, 144)
	require.NoError(t, err)

	want := "63a8200000000000000000000000000000000000000000000000000000000000000000882103580314ac61e993d67dc247aa742a89568f1018efdaa1d29b848aa933563442a8ac67029000b2752102ea5b20f5e0ff2266a2670a5b96216c11f6760ef796d3ef5c846704c89bdd1099ac68"
	require.Equal(t, want, hex.EncodeToString(script))
}

func TestWitnessScriptHashIsP2WSH(t *testing.T) {
	bA := mustPk256(t, "02ea5b20f5e0ff2266a2670a5b96216c11f6760ef796d3ef5c846704c89bdd1099")
	bB := mustPk256(t, "03580314ac61e993d67dc247aa742a89568f1018efdaa1d29b848aa933563442a8")
	var h0, h2 swapcrypto.Hash32
	script, err := Swaplock(bA, bB, h0, h2, 10)
	require.NoError(t, err)

	pkScript, err := WitnessScriptHash(script)
	require.NoError(t, err)

	// OP_0 <32-byte-push>
	require.Len(t, pkScript, 34)
	require.Equal(t, byte(0x00), pkScript[0])
	require.Equal(t, byte(0x20), pkScript[1])
}
