package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/aggregate"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
)

func TestFilterLowRisk_SubstringMatchOrderPreserved(t *testing.T) {
	t.Parallel()

	in := []provider.Record{
		rec("Coinbase", "USDC", 4.5),
		rec("Lido", "Ethereum", 3.8),
		rec("KuCoin", "Polygon-USDT", 7.2),
		rec("Nexo", "usdc.e", 9.0),
		rec("Kraken", "DOT", 12),
		rec("Nexo", "EURS", 5.5),
	}

	got := aggregate.FilterLowRisk(in)
	require.Len(t, got, 4)
	require.Equal(t, "USDC", got[0].Network)
	require.Equal(t, "Polygon-USDT", got[1].Network)
	require.Equal(t, "usdc.e", got[2].Network)
	require.Equal(t, "EURS", got[3].Network)
}

func TestFilterLowRisk_Idempotent(t *testing.T) {
	t.Parallel()

	in := []provider.Record{
		rec("Coinbase", "USDC", 4.5),
		rec("KuCoin", "Polygon-USDT", 7.2),
	}

	once := aggregate.FilterLowRisk(in)
	twice := aggregate.FilterLowRisk(once)
	require.Equal(t, once, twice)
}

func TestFilterLowRisk_EmptyInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, aggregate.FilterLowRisk(nil))
}
