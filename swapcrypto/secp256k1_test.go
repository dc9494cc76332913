package swapcrypto

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSk256RejectsZero(t *testing.T) {
	var zero [32]byte
	_, err := Sk256FromBytes(zero)
	require.Error(t, err)
}

func TestGenerateSk256(t *testing.T) {
	sk, err := GenerateSk256(rand.Reader)
	require.NoError(t, err)

	pub := sk.PubKey()
	require.Len(t, pub.SerializeCompressed(), 33)
}

func TestSig256RoundTrip(t *testing.T) {
	sk, err := GenerateSk256(rand.Reader)
	require.NoError(t, err)

	var sigHash [32]byte
	_, err = rand.Read(sigHash[:])
	require.NoError(t, err)

	sig := sk.Sign(sigHash)
	encoded := sig.Serialize()

	// SIGHASH_ALL is always appended last.
	require.Equal(t, byte(0x01), encoded[len(encoded)-1])

	decoded, err := ParseSig256(encoded)
	require.NoError(t, err)
	require.Equal(t, encoded, decoded.Serialize())

	require.True(t, Verify(sk.PubKey(), sigHash, decoded))

	// Flipping a bit of the sighash must break verification.
	flipped := sigHash
	flipped[0] ^= 0xff
	require.False(t, Verify(sk.PubKey(), flipped, decoded))
}

func TestParseSig256RejectsWrongSighashByte(t *testing.T) {
	sk, err := GenerateSk256(rand.Reader)
	require.NoError(t, err)

	var sigHash [32]byte
	sig := sk.Sign(sigHash)
	encoded := sig.Serialize()
	encoded[len(encoded)-1] = 0x02

	_, err = ParseSig256(encoded)
	require.Error(t, err)
}

func TestPk256RoundTrip(t *testing.T) {
	sk, err := GenerateSk256(rand.Reader)
	require.NoError(t, err)

	compressed := sk.PubKey().SerializeCompressed()
	parsed, err := Pk256FromCompressed(compressed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(compressed, parsed.SerializeCompressed()))
}
