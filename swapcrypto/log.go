package swapcrypto

import (
	"github.com/btcsuite/btclog"

	"github.com/h4sh3d/monero-swap-go/swaplog"
)

var log = swaplog.Disabled

func init() {
	swaplog.Register("CRPT", UseLogger)
}

// UseLogger sets the package-wide logger used by swapcrypto.
func UseLogger(logger btclog.Logger) {
	log = logger
}
