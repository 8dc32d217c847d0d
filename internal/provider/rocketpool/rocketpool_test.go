package rocketpool_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/httpx"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider/rocketpool"
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

func TestFetch_StakingRate(t *testing.T) {
	srv := serve(t, `{"data": {"staking": "4.25", "total": "6.9"}}`)
	p := rocketpool.New(rocketpool.Config{URL: srv.URL}, httpx.New(0))

	records, err := p.Fetch(t.Context())
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	require.Equal(t, "Rocket Pool", got.Provider)
	require.Equal(t, "Ethereum", got.Network)
	require.InDelta(t, 4.25, got.Rate, 1e-9)
	require.Equal(t, provider.MetricAPR, got.Metric)
	require.Equal(t, "6.9", got.Raw["total"])
}

func TestFetch_FallsBackToTotal(t *testing.T) {
	srv := serve(t, `{"data": {"total": 3.1}}`)
	p := rocketpool.New(rocketpool.Config{URL: srv.URL}, httpx.New(0))

	records, err := p.Fetch(t.Context())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.InDelta(t, 3.1, records[0].Rate, 1e-9)
}

func TestFetch_MissingRateIsSchemaError(t *testing.T) {
	srv := serve(t, `{"data": {}}`)
	p := rocketpool.New(rocketpool.Config{URL: srv.URL}, httpx.New(0))

	_, err := p.Fetch(t.Context())
	require.Error(t, err)
	var fe *provider.FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, provider.ErrSchema, fe.Kind)
}

func TestFetch_WrongShapeIsSchemaError(t *testing.T) {
	srv := serve(t, `{"data": [1, 2]}`)
	p := rocketpool.New(rocketpool.Config{URL: srv.URL}, httpx.New(0))

	_, err := p.Fetch(t.Context())
	var fe *provider.FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, provider.ErrSchema, fe.Kind)
}

func TestFetch_NonPositiveRateYieldsNothing(t *testing.T) {
	srv := serve(t, `{"data": {"staking": 0}}`)
	p := rocketpool.New(rocketpool.Config{URL: srv.URL}, httpx.New(0))

	records, err := p.Fetch(t.Context())
	require.NoError(t, err)
	require.Empty(t, records)
}
