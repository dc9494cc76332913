package swapconfig

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigRejectsWithoutLocktimes(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Validate())
}

func TestValidateAcceptsFullyPopulatedConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.T0Blocks = 144
	cfg.T1Blocks = 72
	require.NoError(t, cfg.Validate())

	params, err := cfg.ChainParams()
	require.NoError(t, err)
	require.Equal(t, &chaincfg.MainNetParams, params)

	t0, t1, err := cfg.Locktimes()
	require.NoError(t, err)
	require.Equal(t, uint32(144), t0.Encode())
	require.Equal(t, uint32(72), t1.Encode())
}

func TestChainParamsRejectsUnknownNetwork(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Network = "nonsense"
	_, err := cfg.ChainParams()
	require.Error(t, err)
}

func TestFeeRateReflectsFeeKB(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FeeKB = 5000
	require.EqualValues(t, 5000, cfg.FeeRate().FeeKB)
}
