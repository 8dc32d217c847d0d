package binance

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

// Provider fetches flexible staking product rates from Binance. The
// product list has moved between data.result and data.data across API
// revisions, so both spots are checked.
type Provider struct {
	cfg    Config
	client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Provider {
	if cfg.Name == "" {
		cfg.Name = "Binance"
	}
	if cfg.URL == "" {
		cfg.URL = "https://www.binance.com/bapi/earn/v2/friendly/pos/product/list"
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
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Binance payload format")
	}
	data, ok := root["data"].(map[string]any)
	if !ok {
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Binance payload format")
	}

	var products []any
	for _, key := range []string{"result", "data"} {
		v, ok := data[key]
		if !ok || !provider.Truthy(v) {
			continue
		}
		list, ok := v.([]any)
		if !ok {
			return nil, provider.SchemaErr(p.cfg.URL, "unexpected Binance product payload")
		}
		products = list
		break
	}

	out := make([]provider.Record, 0, len(products))
	for _, entry := range products {
		product, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		raw, _ := provider.PickFirst(product, "configAnnualInterestRate", "apr", "apy", "maxApy")
		rate, ok := provider.NormalizePercentage(raw)
		if !ok {
			continue
		}
		network := "Unknown"
		if v, _ := provider.PickFirst(product, "asset", "productName", "displayName"); provider.Truthy(v) {
			network = provider.AsString(v)
		}
		out = append(out, provider.Record{
			Provider:  p.cfg.Name,
			Network:   network,
			Rate:      rate,
			Metric:    provider.MetricAPR,
			SourceURL: p.cfg.URL,
			Raw:       product,
		})
	}
	return out, nil
}
