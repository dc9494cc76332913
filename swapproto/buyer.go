package swapproto

import (
	"io"

	"github.com/h4sh3d/monero-swap-go/locktime"
	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaperr"
)

// BuyerSetupKeys draws the Buyer's half of the swap's key material from
// rng.
func BuyerSetupKeys(params Params, rng io.Reader) (BuyerSetupParams, error) {
	a1, err := swapcrypto.GenerateSkEd(rng)
	if err != nil {
		return BuyerSetupParams{}, err
	}
	x1, err := swapcrypto.GenerateSkEd(rng)
	if err != nil {
		return BuyerSetupParams{}, err
	}
	bb, err := swapcrypto.GenerateSk256(rng)
	if err != nil {
		return BuyerSetupParams{}, err
	}

	var s [32]byte
	if _, err := io.ReadFull(rng, s[:]); err != nil {
		return BuyerSetupParams{}, swaperr.Wrap(swaperr.RandError, err)
	}

	x1Bytes := x1.Bytes()
	h1 := swapcrypto.Sha256(x1Bytes[:])
	h2 := swapcrypto.Sha256(s[:])

	log.Debugf("generated buyer setup params, t_0=%v t_1=%v", params.T0, params.T1)

	return BuyerSetupParams{
		A1:    a1,
		X1:    x1,
		Bb:    bb,
		PubBb: bb.PubKey(),
		S:     s,
		H1:    h1,
		H2:    h2,
		T0:    params.T0,
		T1:    params.T1,
	}, nil
}

// BuyerVerifySetup cross-checks own against the Seller's export, combining
// the two parties' Monero key shares into the swap's common Setup.
func BuyerVerifySetup(own BuyerSetupParams, sellerExport SellerExportedSetupParams) (BuyerSetup, error) {
	if !locktime.Equal(own.T0, sellerExport.T0) || !locktime.Equal(own.T1, sellerExport.T1) {
		return BuyerSetup{}, swaperr.New(
			swaperr.MismatchCommonParameters,
			"buyer and seller disagree on t_0/t_1",
		)
	}

	a := own.A1.Add(sellerExport.A0)
	x1G := own.X1.BasepointMul()
	x := x1G.Add(sellerExport.X0)

	return BuyerSetup{
		A:     a,
		X1:    own.X1,
		X:     x,
		Ba:    sellerExport.Ba,
		Bb:    own.Bb,
		PubBb: own.PubBb,
		S:     own.S,
		H0:    sellerExport.H0,
		H1:    own.H1,
		H2:    own.H2,
		T0:    own.T0,
		T1:    own.T1,
	}, nil
}
