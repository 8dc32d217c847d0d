package coinbase

import (
	"context"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/httpx"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
)

type Config struct {
	Name    string
	URL     string
	Headers map[string]string
}

// Provider fetches staking APYs from Coinbase's staking product
// catalog. Coinbase requires a CB-VERSION header on v2 endpoints.
type Provider struct {
	cfg    Config
	client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Provider {
	if cfg.Name == "" {
		cfg.Name = "Coinbase"
	}
	if cfg.URL == "" {
		cfg.URL = "https://api.coinbase.com/v2/staking/products"
	}
	if cfg.Headers == nil {
		cfg.Headers = map[string]string{"CB-VERSION": "2024-01-01"}
	}
	return &Provider{cfg: cfg, client: hc}
}

func (p *Provider) Name() string { return p.cfg.Name }

func (p *Provider) Fetch(ctx context.Context) ([]provider.Record, error) {
	payload, err := p.client.GetJSON(ctx, p.cfg.URL, p.cfg.Headers)
	if err != nil {
		return nil, err
	}
	return p.parse(payload)
}

func (p *Provider) parse(payload any) ([]provider.Record, error) {
	root, ok := payload.(map[string]any)
	if !ok {
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Coinbase payload format")
	}
	products, ok := root["data"].([]any)
	if !ok {
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Coinbase payload format")
	}

	out := make([]provider.Record, 0, len(products))
	for _, entry := range products {
		product, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		raw, _ := provider.PickFirst(product, "apy", "apr", "rewards_apy", "estimated_apy", "rewardRate", "rewardsRate")
		rate, ok := provider.NormalizePercentage(raw)
		if !ok {
			continue
		}
		network := "Unknown"
		if v, _ := provider.PickFirst(product, "asset_name", "asset", "name", "asset_symbol"); provider.Truthy(v) {
			network = provider.AsString(v)
		}
		out = append(out, provider.Record{
			Provider:  p.cfg.Name,
			Network:   network,
			Rate:      rate,
			Metric:    provider.MetricAPY,
			SourceURL: p.cfg.URL,
			Raw:       product,
		})
	}
	return out, nil
}
