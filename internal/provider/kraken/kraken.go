package kraken

import (
	"context"
	"sort"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/httpx"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
)

type Config struct {
	Name    string
	URL     string
	Headers map[string]string
}

// Provider fetches staking rates from Kraken's public staking assets
// endpoint. The result object is keyed by Kraken's internal asset
// codes; staking_asset carries the display name when present.
type Provider struct {
	cfg    Config
	client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Provider {
	if cfg.Name == "" {
		cfg.Name = "Kraken"
	}
	if cfg.URL == "" {
		cfg.URL = "https://api.kraken.com/0/public/Staking/Assets"
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
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Kraken payload format")
	}
	result, ok := root["result"].(map[string]any)
	if !ok {
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Kraken payload format")
	}

	codes := make([]string, 0, len(result))
	for code := range result {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]provider.Record, 0, len(codes))
	for _, code := range codes {
		details, ok := result[code].(map[string]any)
		if !ok {
			continue
		}
		raw, ok := provider.PickFirst(details, "apy", "apr", "reward_apr")
		if !ok {
			continue
		}
		rate, ok := provider.ToFloat(raw)
		if !ok || rate <= 0 {
			continue
		}
		network := code
		if v, ok := details["staking_asset"]; ok && provider.Truthy(v) {
			network = provider.AsString(v)
		}
		out = append(out, provider.Record{
			Provider:  p.cfg.Name,
			Network:   network,
			Rate:      rate,
			Metric:    provider.MetricAPR,
			SourceURL: p.cfg.URL,
			Raw:       details,
		})
	}
	return out, nil
}
