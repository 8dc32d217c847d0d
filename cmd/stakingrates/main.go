package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/aggregate"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/config"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/httpx"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider/binance"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider/coinbase"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider/cryptocom"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider/kraken"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider/kucoin"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider/lido"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider/nexo"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider/rocketpool"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/render"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/store"
)

func main() {
	_ = godotenv.Load()

	var lowRisk bool
	var configPath string
	var outPath string
	var timeout int

	flag.BoolVar(&lowRisk, "low-risk", false, "filter results to listings whose network references a known stablecoin (e.g. USDC, USDT, DAI)")
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
	flag.StringVar(&outPath, "out", "", "output file path (default from config: staking_rates.json)")
	flag.IntVar(&timeout, "timeout", 0, "per-provider request timeout in seconds (default from config: 15)")
	flag.Parse()

	// Diagnostics go to stderr so they never corrupt the stdout table.
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if outPath != "" {
		cfg.Output = outPath
	}
	if timeout > 0 {
		cfg.RequestTimeoutSec = timeout
	}

	perCall := time.Duration(cfg.RequestTimeoutSec) * time.Second
	httpClient := httpx.New(perCall)

	registry := buildRegistry(cfg, httpClient)
	if len(registry) == 0 {
		log.Fatal().Msg("no providers enabled; check config.json or *_ENABLED env overrides")
	}

	records, failures := aggregate.Collect(context.Background(), registry, perCall)
	for _, f := range failures {
		log.Warn().Str("provider", f.Key).Err(f.Err).Msg("failed to fetch rates")
	}
	log.Info().Int("records", len(records)).Int("failed_providers", len(failures)).Msg("collection finished")

	if lowRisk {
		records = aggregate.FilterLowRisk(records)
	}

	if err := store.Save(records, cfg.Output); err != nil {
		log.Fatal().Err(err).Msg("save rates")
	}

	if lowRisk {
		fmt.Println("Low-Risk Stablecoin View")
		fmt.Println()
	}
	fmt.Println(render.Table(records))
}

// buildRegistry wires every enabled provider in fixed registration
// order; that order is what the output follows.
func buildRegistry(cfg config.Config, hc *httpx.Client) provider.Registry {
	var reg provider.Registry
	add := func(key string, src config.Source, p provider.Provider) {
		if src.Enabled {
			reg = append(reg, provider.Registration{Key: key, Provider: p})
		}
	}
	add("lido", cfg.Lido, lido.New(lido.Config{URL: cfg.Lido.Endpoint}, hc))
	add("rocket_pool", cfg.RocketPool, rocketpool.New(rocketpool.Config{URL: cfg.RocketPool.Endpoint}, hc))
	add("kraken", cfg.Kraken, kraken.New(kraken.Config{URL: cfg.Kraken.Endpoint}, hc))
	add("coinbase", cfg.Coinbase, coinbase.New(coinbase.Config{URL: cfg.Coinbase.Endpoint}, hc))
	add("crypto_com", cfg.CryptoCom, cryptocom.New(cryptocom.Config{URL: cfg.CryptoCom.Endpoint}, hc))
	add("kucoin", cfg.KuCoin, kucoin.New(kucoin.Config{URL: cfg.KuCoin.Endpoint}, hc))
	add("binance", cfg.Binance, binance.New(binance.Config{URL: cfg.Binance.Endpoint}, hc))
	add("nexo", cfg.Nexo, nexo.New(nexo.Config{URL: cfg.Nexo.Endpoint}, hc))
	return reg
}
