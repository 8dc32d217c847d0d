package provider

import (
	"context"
)

// Metric names the annualized-return convention a provider reports.
// It is fixed per provider (or per entry for Lido), never computed.
type Metric string

const (
	MetricAPR Metric = "apr"
	MetricAPY Metric = "apy"
)

// Record is the normalized shape returned by all providers.
// Raw holds the specific sub-object the record was derived from,
// kept for debugging only; downstream code must not interpret it.
type Record struct {
	Provider  string         `json:"provider"`
	Network   string         `json:"network"`
	Rate      float64        `json:"rate"`
	Metric    Metric         `json:"metric"`
	SourceURL string         `json:"source_url"`
	Raw       map[string]any `json:"raw"`
}

type Provider interface {
	Name() string
	Fetch(ctx context.Context) ([]Record, error)
}

// Registration binds a stable registry key (used in diagnostics and
// config) to a provider instance.
type Registration struct {
	Key      string
	Provider Provider
}

// Registry is an ordered provider list. Registration order determines
// output order but carries no semantic weight.
type Registry []Registration
