package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/render"
)

func TestTable_Empty(t *testing.T) {
	t.Parallel()

	require.Equal(t, "No staking rates available.", render.Table(nil))
}

func TestTable_AlignmentAndFormatting(t *testing.T) {
	t.Parallel()

	records := []provider.Record{
		{Provider: "Lido", Network: "Ethereum", Rate: 3.8, Metric: provider.MetricAPY, SourceURL: "https://stake.lido.fi/api/networks"},
		{Provider: "Rocket Pool", Network: "Ethereum", Rate: 4.257, Metric: provider.MetricAPR, SourceURL: "https://api.rocketpool.net/api/apr"},
	}

	got := render.Table(records)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)

	// the Source header cell is padded out to the widest URL
	require.Equal(t, "Provider    | Network  | Rate  | Metric | Source"+strings.Repeat(" ", 28), lines[0])
	require.Equal(t, "------------+----------+-------+--------+-----------------------------------", lines[1])
	require.Equal(t, "Lido        | Ethereum | 3.80% | APY    | https://stake.lido.fi/api/networks", lines[2])
	require.Equal(t, "Rocket Pool | Ethereum | 4.26% | APR    | https://api.rocketpool.net/api/apr", lines[3])

	// the rule is the column widths joined with "-+-"
	segs := make([]string, 0, 5)
	for _, w := range []int{11, 8, 5, 6, 34} {
		segs = append(segs, strings.Repeat("-", w))
	}
	require.Equal(t, strings.Join(segs, "-+-"), lines[1])

	// every line padded to the same visual width
	require.Equal(t, len(lines[0]), len(lines[1]))
	require.Equal(t, len(lines[0]), len(lines[2]))
}
