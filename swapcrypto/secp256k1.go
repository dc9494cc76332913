package swapcrypto

import (
	"io"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/h4sh3d/monero-swap-go/swaperr"
)

// sigHashAll is appended to every DER-encoded signature this module
// produces, matching the trailing sighash-type byte Bitcoin Script expects
// on a CHECKSIG witness element.
const sigHashAll = 0x01

// Sk256 is a secp256k1 secret key: 32 bytes, nonzero, and less than the
// curve order. It backs the Bitcoin multisig keys b_a/b_b.
type Sk256 struct {
	priv *btcec.PrivateKey
}

// Sk256FromBytes parses a 32-byte secret key, rejecting zero and
// out-of-range values.
func Sk256FromBytes(b [32]byte) (Sk256, error) {
	// btcec.PrivKeyFromBytes reduces its input mod n instead of rejecting
	// it, so check the range before parsing.
	if new(big.Int).SetBytes(b[:]).Cmp(btcec.S256().Params().N) >= 0 {
		return Sk256{}, swaperr.New(swaperr.EcdsaError, "secp256k1 scalar is not below the curve order")
	}
	priv, pub := btcec.PrivKeyFromBytes(b[:])
	if priv == nil || pub == nil {
		return Sk256{}, swaperr.New(swaperr.EcdsaError, "invalid secp256k1 scalar")
	}
	// btcec.PrivKeyFromBytes does not itself reject the zero scalar; a
	// zero-valued key round-trips to the point at infinity, which has no
	// valid compressed serialization, so detect it explicitly.
	var zero [32]byte
	if b == zero {
		return Sk256{}, swaperr.New(swaperr.EcdsaError, "secp256k1 scalar is zero")
	}
	return Sk256{priv: priv}, nil
}

// GenerateSk256 rejection-samples a valid secp256k1 secret key from rng,
// retrying on the rare out-of-range draw.
func GenerateSk256(rng io.Reader) (Sk256, error) {
	for attempt := 0; attempt < 16; attempt++ {
		var buf [32]byte
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return Sk256{}, swaperr.Wrap(swaperr.RandError, err)
		}
		sk, err := Sk256FromBytes(buf)
		if err == nil {
			return sk, nil
		}
		log.Tracef("rejecting invalid secp256k1 candidate: %v", err)
	}
	return Sk256{}, swaperr.New(swaperr.RandError, "exhausted rejection-sampling attempts")
}

// Bytes returns the 32-byte big-endian scalar.
func (s Sk256) Bytes() [32]byte {
	var out [32]byte
	b := s.priv.Serialize()
	copy(out[:], b)
	return out
}

// PubKey returns the corresponding compressed public key, B = s·G.
func (s Sk256) PubKey() Pk256 {
	return Pk256{pub: s.priv.PubKey()}
}

// Sign produces a low-S ECDSA signature over a 32-byte sighash, per spec
// §4.1's BIP-146 requirement. btcec/v2/ecdsa.Sign already normalizes S to
// the lower half of the curve order internally.
func (s Sk256) Sign(sigHash [32]byte) Sig256 {
	sig := ecdsa.Sign(s.priv, sigHash[:])
	return Sig256{sig: sig}
}

// Pk256 is a secp256k1 point, serialized compressed (33 bytes).
type Pk256 struct {
	pub *btcec.PublicKey
}

// Pk256FromCompressed parses a 33-byte compressed public key.
func Pk256FromCompressed(b []byte) (Pk256, error) {
	pub, err := btcec.ParsePubKey(b)
	if err != nil {
		return Pk256{}, swaperr.Wrap(swaperr.EcdsaError, err)
	}
	return Pk256{pub: pub}, nil
}

// SerializeCompressed returns the 33-byte compressed encoding.
func (p Pk256) SerializeCompressed() []byte {
	return p.pub.SerializeCompressed()
}

// BtcecPubKey exposes the underlying btcec key for callers (swapscript,
// swaptx) that need to hand it to txscript helpers directly.
func (p Pk256) BtcecPubKey() *btcec.PublicKey {
	return p.pub
}

// Sig256 is a low-S secp256k1 ECDSA signature over a BIP-143 sighash.
type Sig256 struct {
	sig *ecdsa.Signature
}

// Serialize renders the signature as BIP-66 DER with a trailing
// SIGHASH_ALL byte — the exact witness element pushed by every spend path.
func (s Sig256) Serialize() []byte {
	der := s.sig.Serialize()
	out := make([]byte, len(der)+1)
	copy(out, der)
	out[len(der)] = sigHashAll
	return out
}

// ParseSig256 is the inverse of Serialize: it strips the trailing
// SIGHASH_ALL byte and DER-parses the rest.
func ParseSig256(b []byte) (Sig256, error) {
	if len(b) == 0 {
		return Sig256{}, swaperr.New(swaperr.BitcoinEncoding, "empty signature")
	}
	if b[len(b)-1] != sigHashAll {
		return Sig256{}, swaperr.New(swaperr.BitcoinEncoding, "unsupported sighash type")
	}
	sig, err := ecdsa.ParseDERSignature(b[:len(b)-1])
	if err != nil {
		return Sig256{}, swaperr.Wrap(swaperr.EcdsaError, err)
	}
	return Sig256{sig: sig}, nil
}

// Verify reports whether sig is a valid signature over sigHash under pub.
func Verify(pub Pk256, sigHash [32]byte, sig Sig256) bool {
	return sig.sig.Verify(sigHash[:], pub.pub)
}
