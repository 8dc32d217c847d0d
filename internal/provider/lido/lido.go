package lido

import (
	"context"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/httpx"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
)

type Config struct {
	Name    string
	URL     string
	Headers map[string]string
}

// Provider fetches staking APY values from Lido's public API.
type Provider struct {
	cfg    Config
	client *httpx.Client
}

func New(cfg Config, hc *httpx.Client) *Provider {
	if cfg.Name == "" {
		cfg.Name = "Lido"
	}
	if cfg.URL == "" {
		cfg.URL = "https://stake.lido.fi/api/networks"
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

// The payload is a dictionary keyed by network names, either at the
// root or under "data". Each entry reports apy or apr on its own.
func (p *Provider) parse(payload any) ([]provider.Record, error) {
	// a Caser is stateful, so build one per call
	titleCaser := cases.Title(language.English)
	root, ok := payload.(map[string]any)
	if !ok {
		return nil, provider.SchemaErr(p.cfg.URL, "unexpected Lido payload format")
	}
	networks := root
	if d, ok := root["data"]; ok && provider.Truthy(d) {
		m, ok := d.(map[string]any)
		if !ok {
			return nil, provider.SchemaErr(p.cfg.URL, "unexpected Lido payload format")
		}
		networks = m
	}

	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]provider.Record, 0, len(names))
	for _, name := range names {
		details, ok := networks[name].(map[string]any)
		if !ok {
			continue
		}
		metric := provider.MetricAPR
		if _, ok := details["apy"]; ok {
			metric = provider.MetricAPY
		}
		rate, ok := provider.ToFloat(details[string(metric)])
		if !ok || rate <= 0 {
			continue
		}
		label := name
		if v, ok := details["displayName"]; ok && provider.Truthy(v) {
			label = provider.AsString(v)
		}
		out = append(out, provider.Record{
			Provider:  p.cfg.Name,
			Network:   titleCaser.String(label),
			Rate:      rate,
			Metric:    metric,
			SourceURL: p.cfg.URL,
			Raw:       details,
		})
	}
	return out, nil
}
