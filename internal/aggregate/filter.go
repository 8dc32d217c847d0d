package aggregate

import (
	"strings"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
)

// stablecoinKeywords is the fixed vocabulary behind the low-risk view.
var stablecoinKeywords = []string{
	"USDC", "USDT", "DAI", "BUSD", "TUSD", "USDP", "GUSD",
	"USDD", "USTC", "EURT", "FRAX", "EURS", "LUSD",
}

func isStablecoinNetwork(name string) bool {
	normalized := strings.ToUpper(name)
	for _, keyword := range stablecoinKeywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

// FilterLowRisk keeps records whose network label references a known
// stablecoin. Substring match, so "USDC.e" and "Polygon-USDT" count.
// Order-preserving and non-mutating.
func FilterLowRisk(records []provider.Record) []provider.Record {
	out := make([]provider.Record, 0, len(records))
	for _, r := range records {
		if isStablecoinNetwork(r.Network) {
			out = append(out, r)
		}
	}
	return out
}
