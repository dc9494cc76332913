// Package swapconfig is the single entry point for a caller embedding this
// module to override its defaults: fee rate, Bitcoin network, and the t_0/t_1
// locktimes. Logging backends are installed through swaplog.SetupLoggers,
// not through Config. Config is tagged for github.com/jessevdk/go-flags so an
// external CLI can parse the same struct directly without this module
// itself depending on any flag-parsing invocation.
package swapconfig

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/h4sh3d/monero-swap-go/locktime"
	"github.com/h4sh3d/monero-swap-go/swaperr"
	"github.com/h4sh3d/monero-swap-go/swaptx"
)

// Config holds every caller-overridable knob. The zero value is not valid;
// use DefaultConfig and override fields from there, or populate it via
// go-flags from a conf file/CLI.
type Config struct {
	// Network selects the Bitcoin network to derive addresses and
	// sighash rules for: one of "mainnet", "testnet3", "regtest", or
	// "simnet".
	Network string `long:"network" description:"Bitcoin network to use {mainnet, testnet3, regtest, simnet}"`

	// FeeKB is the per-kB fee in satoshis charged on the funding
	// transaction and halved on every transaction that spends a swap
	// output.
	FeeKB uint64 `long:"feekb" description:"fee rate in satoshis per kilobyte"`

	// T0 and T1 are the two relative locktimes both parties must agree
	// on, expressed in blocks (BIP-68 block-based encoding).
	T0Blocks uint16 `long:"t0blocks" description:"relative locktime t_0, in blocks, on the swaplock CSV path"`
	T1Blocks uint16 `long:"t1blocks" description:"relative locktime t_1, in blocks, on the refund CSV path"`
}

// DefaultConfig returns a Config populated with this module's defaults:
// mainnet, swaptx.DefaultFeeKB, and no locktimes set (a caller must choose
// t_0/t_1 for its own deployment; there is no safe default).
func DefaultConfig() Config {
	return Config{
		Network: "mainnet",
		FeeKB:   uint64(swaptx.DefaultFeeKB),
	}
}

// ChainParams resolves Network into the chaincfg.Params a caller needs to
// render swap addresses for display or to validate them against.
func (c Config) ChainParams() (*chaincfg.Params, error) {
	switch c.Network {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	default:
		return nil, swaperr.New(swaperr.MissingValue, "unknown network: "+c.Network)
	}
}

// FeeRate converts FeeKB into the swaptx.FeeRate the transaction-builder
// pipeline expects.
func (c Config) FeeRate() swaptx.FeeRate {
	return swaptx.FeeRate{FeeKB: btcutil.Amount(c.FeeKB)}
}

// Locktimes converts T0Blocks/T1Blocks into the locktime.RelativeLocktime
// pair swapproto.Params expects, rejecting a config that never set them.
func (c Config) Locktimes() (t0, t1 locktime.RelativeLocktime, err error) {
	if c.T0Blocks == 0 || c.T1Blocks == 0 {
		return nil, nil, swaperr.New(swaperr.MissingValue, "t0blocks and t1blocks must both be set")
	}
	return locktime.Blocks(c.T0Blocks), locktime.Blocks(c.T1Blocks), nil
}

// Validate checks that every field holds a value this module can act on,
// beyond what the individual accessor methods already check.
func (c Config) Validate() error {
	if _, err := c.ChainParams(); err != nil {
		return err
	}
	if c.FeeKB == 0 {
		return swaperr.New(swaperr.MissingValue, "feekb must be nonzero")
	}
	if _, _, err := c.Locktimes(); err != nil {
		return err
	}

	log.Debugf("validated config: network=%s feekb=%d t0=%d t1=%d",
		c.Network, c.FeeKB, c.T0Blocks, c.T1Blocks)

	return nil
}
