package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Source configures one provider feed. Endpoint overrides exist mainly
// for testing and for the feeds that occasionally move paths.
type Source struct {
	Enabled  bool   `json:"enabled"`
	Endpoint string `json:"endpoint"`
}

type Config struct {
	Output            string `json:"output"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`

	Lido       Source `json:"lido"`
	RocketPool Source `json:"rocket_pool"`
	Kraken     Source `json:"kraken"`
	Coinbase   Source `json:"coinbase"`
	CryptoCom  Source `json:"crypto_com"`
	KuCoin     Source `json:"kucoin"`
	Binance    Source `json:"binance"`
	Nexo       Source `json:"nexo"`
}

func Default() Config {
	return Config{
		Output:            "staking_rates.json",
		RequestTimeoutSec: 15,
		Lido:              Source{Enabled: true},
		RocketPool:        Source{Enabled: true},
		Kraken:            Source{Enabled: true},
		Coinbase:          Source{Enabled: true},
		CryptoCom:         Source{Enabled: true},
		KuCoin:            Source{Enabled: true},
		Binance:           Source{Enabled: true},
		Nexo:              Source{Enabled: true},
	}
}

// Load reads JSON config from path. If path is empty or the file does
// not exist, it returns defaults. Environment variables override the
// file for select fields.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OUTPUT_FILE"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		if x, err := strconv.Atoi(v); err == nil && x > 0 {
			cfg.RequestTimeoutSec = x
		}
	}

	sources := []struct {
		prefix string
		src    *Source
	}{
		{"LIDO", &cfg.Lido},
		{"ROCKET_POOL", &cfg.RocketPool},
		{"KRAKEN", &cfg.Kraken},
		{"COINBASE", &cfg.Coinbase},
		{"CRYPTO_COM", &cfg.CryptoCom},
		{"KUCOIN", &cfg.KuCoin},
		{"BINANCE", &cfg.Binance},
		{"NEXO", &cfg.Nexo},
	}
	for _, s := range sources {
		if v := os.Getenv(s.prefix + "_ENABLED"); v != "" {
			switch strings.ToLower(v) {
			case "1", "true", "yes", "y":
				s.src.Enabled = true
			case "0", "false", "no", "n":
				s.src.Enabled = false
			}
		}
		if v := os.Getenv(s.prefix + "_ENDPOINT"); v != "" {
			s.src.Endpoint = v
		}
	}
}
