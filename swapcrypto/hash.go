package swapcrypto

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil"
)

// Hash32 is an opaque 32-byte digest: a SHA-256 output, a commitment hash,
// or a hash-lock preimage's expected image. The swap core never interprets
// these bytes arithmetically on the Bitcoin side — OP_SHA256 in the script
// only ever compares digests.
type Hash32 [32]byte

// Bytes returns a copy of the digest.
func (h Hash32) Bytes() []byte {
	b := make([]byte, 32)
	copy(b, h[:])
	return b
}

// Sha256 computes the single SHA-256 digest of data. Every hash-lock
// commitment (h_0, h_1, h_2) in the protocol is produced with this.
func Sha256(data []byte) Hash32 {
	return sha256.Sum256(data)
}

// Sha256d computes the double SHA-256 digest used for Bitcoin txids and
// the BIP-143 hashPrevouts/hashSequence/hashOutputs components.
func Sha256d(data []byte) Hash32 {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Hash160 computes RIPEMD160(SHA256(data)), used for P2PKH/P2WPKH script
// hashing (the funding UTXO's redeem template).
func Hash160(data []byte) []byte {
	return btcutil.Hash160(data)
}
