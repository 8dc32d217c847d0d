package cryptocom

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

// Provider fetches staking rates from Crypto.com's Earn product
// catalog, a list of products under data.items.
type Provider struct {
	cfg    Config
	client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Provider {
	if cfg.Name == "" {
		cfg.Name = "Crypto.com"
	}
	if cfg.URL == "" {
		cfg.URL = "https://crypto.com/earn/api/v2/products"
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
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Crypto.com payload format")
	}
	data, ok := root["data"].(map[string]any)
	if !ok {
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Crypto.com payload format")
	}
	products, ok := data["items"].([]any)
	if !ok {
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Crypto.com payload format")
	}

	out := make([]provider.Record, 0, len(products))
	for _, entry := range products {
		product, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		raw, _ := provider.PickFirst(product, "rate", "apy", "apr", "reward_rate")
		rate, ok := provider.NormalizePercentage(raw)
		if !ok {
			continue
		}
		network := "Unknown"
		if v, _ := provider.PickFirst(product, "displayName", "asset", "symbol", "name"); provider.Truthy(v) {
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
