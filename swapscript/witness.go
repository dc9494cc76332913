package swapscript

import "github.com/h4sh3d/monero-swap-go/swapcrypto"

// The four witness stacks below match the Swaplock and Refund scripts'
// IF/ELSE branches element for element. Order matters: elements are listed
// top-of-stack last, matching the order Script evaluation consumes them.

// RefundWitness assembles the witness stack for the Refund spend path: the
// swaplock script's ELSE branch, a 2-of-2 CHECKMULTISIG. The leading nil
// element is the well-known CHECKMULTISIG off-by-one dummy; the trailing
// empty element selects the ELSE branch.
func RefundWitness(swaplockScript []byte, sigA, sigB swapcrypto.Sig256) [][]byte {
	return [][]byte{
		nil,
		sigA.Serialize(),
		sigB.Serialize(),
		nil,
		swaplockScript,
	}
}

// BuyWitness assembles the witness stack for the Buy spend path: the
// swaplock script's IF branch. Reveals s and x_0 (Seller's Monero
// spend-key share) in the clear on-chain — this is the atomicity hinge of
// the whole protocol.
func BuyWitness(swaplockScript []byte, sigA swapcrypto.Sig256, s [32]byte, x0 swapcrypto.SkEd) [][]byte {
	x0Bytes := x0.Bytes()
	return [][]byte{
		sigA.Serialize(),
		s[:],
		x0Bytes[:],
		{1},
		swaplockScript,
	}
}

// ClaimRefundWitness assembles the witness stack for the ClaimRefund spend
// path: the refund script's ELSE branch (Seller's timeout claim).
func ClaimRefundWitness(refundScript []byte, sigA swapcrypto.Sig256) [][]byte {
	return [][]byte{
		sigA.Serialize(),
		nil,
		refundScript,
	}
}

// SpendRefundWitness assembles the witness stack for the SpendRefund spend
// path: the refund script's IF branch. Reveals x_1 (Buyer's Monero
// spend-key share).
func SpendRefundWitness(refundScript []byte, sigB swapcrypto.Sig256, x1 swapcrypto.SkEd) [][]byte {
	x1Bytes := x1.Bytes()
	return [][]byte{
		sigB.Serialize(),
		x1Bytes[:],
		{1},
		refundScript,
	}
}
