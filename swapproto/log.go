package swapproto

import (
	"github.com/btcsuite/btclog"

	"github.com/h4sh3d/monero-swap-go/swaplog"
)

var log = swaplog.Disabled

func init() {
	swaplog.Register("PROT", UseLogger)
}

// UseLogger sets the package-wide logger used by swapproto.
func UseLogger(logger btclog.Logger) {
	log = logger
}
