package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"phygital/internal/phygital/chain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlockNumberServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &req)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":"0x10"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunAllUp(t *testing.T) {
	srv := newBlockNumberServer(t)
	t.Setenv("BASE_RPC_URL", srv.URL)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--json", "--env-file", "testdata-missing.env", "base"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var reports []chain.HealthReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Connected)
	assert.Equal(t, uint64(16), reports[0].BlockNumber)
	assert.Equal(t, uint64(8453), reports[0].ChainID)
}

func TestRunReportsDownChain(t *testing.T) {
	srv := newBlockNumberServer(t)
	t.Setenv("BASE_RPC_URL", srv.URL)
	t.Setenv("POLYGON_RPC_URL", "")
	t.Setenv("NEXT_PUBLIC_POLYGON_RPC_URL", "")
	t.Setenv("ALCHEMY_API_KEY", "")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--env-file", "testdata-missing.env", "base", "polygon"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "CHAIN")
	assert.Contains(t, stdout.String(), "base")
	assert.Contains(t, stdout.String(), "polygon")
	assert.Contains(t, stdout.String(), "down")
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"--bogus"}, &stdout, &stderr))
}

func TestRunJSONStaysParseableWithLogs(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	closedURL := srv.URL
	srv.Close()
	t.Setenv("POLYGON_RPC_URL", closedURL)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--json", "--log-level", "warn", "--env-file", "testdata-missing.env", "polygon"}, &stdout, &stderr)
	assert.Equal(t, 1, code)

	var reports []chain.HealthReport
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &reports), stdout.String())
	require.Len(t, reports, 1)
	assert.False(t, reports[0].Connected)
	assert.Contains(t, stderr.String(), "chain rpc call failed")
}
