package kucoin_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/httpx"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider/kucoin"
)

func serve(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_AliasPriority(t *testing.T) {
	srv := serve(t, `{"data": {"items": [
		{"currency": "ETH", "apr": "0.032", "apy": "0.04"},
		{"name": "KCS Staking", "yieldRate": 12.4},
		{"displayName": "Empty one"}
	]}}`)
	p := kucoin.New(kucoin.Config{URL: srv.URL}, httpx.New(0))

	records, err := p.Fetch(t.Context())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// apr wins over apy for KuCoin
	require.Equal(t, "ETH", records[0].Network)
	require.InDelta(t, 3.2, records[0].Rate, 1e-9)
	require.Equal(t, provider.MetricAPR, records[0].Metric)

	require.Equal(t, "KCS Staking", records[1].Network)
	require.InDelta(t, 12.4, records[1].Rate, 1e-9)
}

func TestFetch_WrongShapeIsSchemaError(t *testing.T) {
	srv := serve(t, `{"data": {"items": "nope"}}`)
	p := kucoin.New(kucoin.Config{URL: srv.URL}, httpx.New(0))

	_, err := p.Fetch(t.Context())
	var fe *provider.FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, provider.ErrSchema, fe.Kind)
}
