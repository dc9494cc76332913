package swapproto

import (
	"io"

	"github.com/h4sh3d/monero-swap-go/locktime"
	"github.com/h4sh3d/monero-swap-go/swapcrypto"
	"github.com/h4sh3d/monero-swap-go/swaperr"
)

// SellerSetupKeys draws the Seller's half of the swap's key material from
// rng.
func SellerSetupKeys(params Params, rng io.Reader) (SellerSetupParams, error) {
	a0, err := swapcrypto.GenerateSkEd(rng)
	if err != nil {
		return SellerSetupParams{}, err
	}
	x0, err := swapcrypto.GenerateSkEd(rng)
	if err != nil {
		return SellerSetupParams{}, err
	}
	ba, err := swapcrypto.GenerateSk256(rng)
	if err != nil {
		return SellerSetupParams{}, err
	}

	x0Bytes := x0.Bytes()
	h0 := swapcrypto.Sha256(x0Bytes[:])

	log.Debugf("generated seller setup params, t_0=%v t_1=%v", params.T0, params.T1)

	return SellerSetupParams{
		A0:    a0,
		X0:    x0,
		Ba:    ba,
		PubBa: ba.PubKey(),
		H0:    h0,
		T0:    params.T0,
		T1:    params.T1,
	}, nil
}

// SellerVerifySetup cross-checks own against the Buyer's export, combining
// the two parties' Monero key shares into the swap's common Setup.
func SellerVerifySetup(own SellerSetupParams, buyerExport BuyerExportedSetupParams) (SellerSetup, error) {
	if !locktime.Equal(own.T0, buyerExport.T0) || !locktime.Equal(own.T1, buyerExport.T1) {
		return SellerSetup{}, swaperr.New(
			swaperr.MismatchCommonParameters,
			"seller and buyer disagree on t_0/t_1",
		)
	}

	a := own.A0.Add(buyerExport.A1)
	x0G := own.X0.BasepointMul()
	x := x0G.Add(buyerExport.X1)

	return SellerSetup{
		A:     a,
		X0:    own.X0,
		X:     x,
		Ba:    own.Ba,
		PubBa: own.PubBa,
		PubBb: buyerExport.Bb,
		H0:    own.H0,
		H1:    buyerExport.H1,
		H2:    buyerExport.H2,
		T0:    own.T0,
		T1:    own.T1,
	}, nil
}
