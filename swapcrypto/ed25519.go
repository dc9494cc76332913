package swapcrypto

import (
	"io"

	"filippo.io/edwards25519"

	"github.com/h4sh3d/monero-swap-go/swaperr"
)

// SkEd is an ed25519 scalar modulo the group order ℓ. It backs the Monero
// view/spend-key shares (a_0, a_1, x_0, x_1); the Buy/SpendRefund witnesses
// reveal its raw bytes as an opaque 32-byte preimage on the Bitcoin side —
// Script never interprets these bytes arithmetically, only hashes them.
type SkEd struct {
	scalar *edwards25519.Scalar
}

// GenerateSkEd draws a uniformly random scalar from rng using
// curve25519-dalek-style wide-reduction sampling: 64 bytes of entropy are
// reduced mod ℓ so the result is unbiased.
func GenerateSkEd(rng io.Reader) (SkEd, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rng, wide[:]); err != nil {
		return SkEd{}, swaperr.Wrap(swaperr.RandError, err)
	}
	scalar, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return SkEd{}, swaperr.Wrap(swaperr.EcdsaError, err)
	}
	return SkEd{scalar: scalar}, nil
}

// SkEdFromCanonicalBytes parses a 32-byte little-endian scalar already
// reduced mod ℓ, rejecting non-canonical encodings.
func SkEdFromCanonicalBytes(b [32]byte) (SkEd, error) {
	scalar, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		return SkEd{}, swaperr.Wrap(swaperr.EcdsaError, err)
	}
	return SkEd{scalar: scalar}, nil
}

// Bytes returns the 32-byte little-endian canonical encoding. This is the
// exact value hashed to produce h_0/h_1 and later pushed onto the witness
// stack on the Buy/SpendRefund spend paths.
func (s SkEd) Bytes() [32]byte {
	var out [32]byte
	copy(out[:], s.scalar.Bytes())
	return out
}

// Add returns s + other mod ℓ, used to combine the two parties' view-key
// shares into the swap's shared Monero view key `a`.
func (s SkEd) Add(other SkEd) SkEd {
	sum := edwards25519.NewScalar().Add(s.scalar, other.scalar)
	return SkEd{scalar: sum}
}

// BasepointMul returns s · G_ed, the public spend-key share X_i = x_i·G_ed.
func (s SkEd) BasepointMul() PkEd {
	p := edwards25519.NewIdentityPoint().ScalarBaseMult(s.scalar)
	return PkEd{point: p}
}

// PkEd is an ed25519 point on the base-point subgroup, serialized as the
// standard 32-byte little-endian compressed encoding.
type PkEd struct {
	point *edwards25519.Point
}

// PkEdFromBytes parses a 32-byte compressed point.
func PkEdFromBytes(b [32]byte) (PkEd, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(b[:])
	if err != nil {
		return PkEd{}, swaperr.Wrap(swaperr.EcdsaError, err)
	}
	return PkEd{point: p}, nil
}

// Bytes returns the 32-byte compressed encoding.
func (p PkEd) Bytes() [32]byte {
	var out [32]byte
	copy(out[:], p.point.Bytes())
	return out
}

// Add returns p + other, used by both parties to independently reconstruct
// the shared Monero public spend key X = (x_0 + x_1)·G_ed from their own
// share's basepoint multiple and the counterparty's exported point.
func (p PkEd) Add(other PkEd) PkEd {
	sum := edwards25519.NewIdentityPoint().Add(p.point, other.point)
	return PkEd{point: sum}
}

// Equal reports whether p and other encode to the same point. Used to
// verify both sides of the protocol compute an identical public key.
func (p PkEd) Equal(other PkEd) bool {
	return p.Bytes() == other.Bytes()
}
