package swapscript

import (
	"github.com/btcsuite/btclog"

	"github.com/h4sh3d/monero-swap-go/swaplog"
)

var log = swaplog.Disabled

func init() {
	swaplog.Register("SCRP", UseLogger)
}

// UseLogger sets the package-wide logger used by swapscript.
func UseLogger(logger btclog.Logger) {
	log = logger
}
