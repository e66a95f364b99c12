package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"phygital/internal/phygital/chain"
	"phygital/internal/phygital/handler"
	"phygital/internal/phygital/model"
	"phygital/internal/phygital/router"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e       *echo.Echo
	users   *MockUserRepository
	history *MockHealthCheckRepository
	chains  *MockChainService
}

func setupServer() *testServer {
	ts := &testServer{
		e:       echo.New(),
		users:   new(MockUserRepository),
		history: new(MockHealthCheckRepository),
		chains:  new(MockChainService),
	}
	h := handler.NewHandler(ts.users, ts.history, ts.chains)
	guard := handler.NewPermissionGuard(ts.users, nil)
	router.RegisterRoutes(ts.e, h, guard)
	return ts
}

func performRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func asUser(id string) map[string]string {
	return map[string]string{handler.HeaderUserID: id}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

var (
	ethereumConfig = chain.Config{
		Key:      "ethereum",
		Name:     "Ethereum",
		Family:   chain.FamilyEVM,
		ChainID:  1,
		RPCURL:   "https://eth-mainnet.g.alchemy.com/v2/secret",
		Currency: chain.Currency{Name: "Ether", Symbol: "ETH", Decimals: 18},
	}
	solanaDevnetConfig = chain.Config{
		Key:       "solana",
		Name:      "Solana Devnet",
		Family:    chain.FamilySolana,
		ChainID:   103,
		RPCURL:    "https://solana-devnet.g.alchemy.com/v2/secret",
		Currency:  chain.Currency{Name: "Solana", Symbol: "SOL", Decimals: 9},
		IsTestnet: true,
	}
)
