package rocketpool

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

// Provider fetches the Rocket Pool staking APR. The API reports one
// aggregate figure for Ethereum rather than a per-asset catalog.
type Provider struct {
	cfg    Config
	client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Provider {
	if cfg.Name == "" {
		cfg.Name = "Rocket Pool"
	}
	if cfg.URL == "" {
		cfg.URL = "https://api.rocketpool.net/api/apr"
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
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Rocket Pool payload format")
	}
	data, ok := root["data"].(map[string]any)
	if !ok {
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Rocket Pool payload format")
	}
	raw, ok := provider.PickFirst(data, "staking", "total")
	if !ok {
		return nil, provider.SchemaErr(p.cfg.URL, "Rocket Pool response missing staking rate")
	}
	rate, ok := provider.ToFloat(raw)
	if !ok {
		return nil, provider.SchemaErr(p.cfg.URL, "Rocket Pool staking rate is not numeric")
	}
	if rate <= 0 {
		return nil, nil
	}
	return []provider.Record{{
		Provider:  p.cfg.Name,
		Network:   "Ethereum",
		Rate:      rate,
		Metric:    provider.MetricAPR,
		SourceURL: p.cfg.URL,
		Raw:       data,
	}}, nil
}
