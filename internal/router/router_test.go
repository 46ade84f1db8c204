package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradesdk/internal/exchange"
	"tradesdk/internal/handler/instrument"
	"tradesdk/internal/handler/order"
	"tradesdk/internal/handler/portfolio"
	"tradesdk/internal/handler/trade"
	"tradesdk/internal/middleware"
	"tradesdk/internal/model"
	"tradesdk/internal/service"
	"tradesdk/pkg/errors/ecode"
	"tradesdk/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	RequestId string          `json:"request_id"`
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.LazyInitGinValidator("en")

	c, err := exchange.NewCatalog(exchange.DefaultInstruments())
	require.NoError(t, err)
	ts := service.NewTradingService(exchange.NewSimulatedExchange(c))

	g := gin.New()
	middleware.NewMiddleware().Load(g)
	NewApiRouter(Info{Name: "Bajaj Broking Trading SDK", Version: "1.0.0"}, 16,
		instrument.NewHandler(ts),
		order.NewHandler(ts),
		trade.NewHandler(ts),
		portfolio.NewHandler(ts),
	).Load(g)
	return g
}

func do(t *testing.T, g *gin.Engine, method, path, body string, headers ...string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestRootAndPing(t *testing.T) {
	g := newTestEngine(t)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Bajaj Broking Trading SDK","version":"1.0.0"}`, w.Body.String())

	w = httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInstrumentsInSeedOrder(t *testing.T) {
	g := newTestEngine(t)

	status, env := do(t, g, http.MethodGet, "/api/v1/instruments", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, ecode.Success, env.Code)
	assert.NotEmpty(t, env.RequestId)

	list := decode[[]model.Instrument](t, env.Data)
	require.Len(t, list, 5)
	symbols := make([]string, 0, len(list))
	for _, inst := range list {
		symbols = append(symbols, inst.Symbol)
	}
	assert.Equal(t, []string{"RELIANCE", "TCS", "INFY", "HDFC", "ICICIBANK"}, symbols)
	assert.True(t, decimal.RequireFromString("945.30").Equal(list[4].LastTradedPrice))
}

func TestMarketOrderFlow(t *testing.T) {
	g := newTestEngine(t)

	status, env := do(t, g, http.MethodPost, "/api/v1/orders",
		`{"symbol":"RELIANCE","orderType":"BUY","orderStyle":"MARKET","quantity":10}`)
	require.Equal(t, http.StatusOK, status, env.Message)
	placed := decode[model.Order](t, env.Data)
	assert.Equal(t, model.OrderExecuted, placed.Status)
	assert.NotEmpty(t, placed.OrderId)

	status, env = do(t, g, http.MethodGet, "/api/v1/orders/"+placed.OrderId, "")
	require.Equal(t, http.StatusOK, status)
	got := decode[model.Order](t, env.Data)
	assert.Equal(t, placed.OrderId, got.OrderId)
	assert.Equal(t, model.OrderExecuted, got.Status)

	_, env = do(t, g, http.MethodGet, "/api/v1/trades", "")
	trades := decode[[]model.Trade](t, env.Data)
	require.Len(t, trades, 1)
	assert.Equal(t, placed.OrderId, trades[0].OrderId)
	assert.True(t, decimal.RequireFromString("2450.50").Equal(trades[0].Price))

	_, env = do(t, g, http.MethodGet, "/api/v1/portfolio", "")
	positions := decode[[]model.Portfolio](t, env.Data)
	require.Len(t, positions, 1)
	assert.Equal(t, int64(10), positions[0].Quantity)
	assert.True(t, decimal.RequireFromString("24505").Equal(positions[0].CurrentValue))

	_, env = do(t, g, http.MethodGet, "/api/v1/portfolio/summary", "")
	sum := decode[model.PortfolioSummary](t, env.Data)
	assert.Equal(t, 1, sum.Holdings)
	assert.True(t, sum.UnrealizedPnl.IsZero())

	_, env = do(t, g, http.MethodGet, "/api/v1/orders", "")
	assert.Len(t, decode[[]model.Order](t, env.Data), 1)
}

func TestLimitOrderStaysPlaced(t *testing.T) {
	g := newTestEngine(t)

	status, env := do(t, g, http.MethodPost, "/api/v1/orders",
		`{"symbol":"TCS","orderType":"SELL","orderStyle":"LIMIT","quantity":5,"price":3900.00}`)
	require.Equal(t, http.StatusOK, status, env.Message)
	placed := decode[model.Order](t, env.Data)
	assert.Equal(t, model.OrderPlaced, placed.Status)
	require.NotNil(t, placed.Price)
	assert.True(t, decimal.RequireFromString("3900").Equal(*placed.Price))

	_, env = do(t, g, http.MethodGet, "/api/v1/trades", "")
	assert.Empty(t, decode[[]model.Trade](t, env.Data))
}

func TestPlaceOrderRejected(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		status  int
		code    int
		message string
	}{
		{"zero quantity", `{"symbol":"RELIANCE","orderType":"BUY","orderStyle":"MARKET","quantity":0}`, http.StatusBadRequest, ecode.ValidateErr, "Quantity must be greater than 0"},
		{"limit without price", `{"symbol":"TCS","orderType":"BUY","orderStyle":"LIMIT","quantity":1}`, http.StatusBadRequest, ecode.ValidateErr, "Price is mandatory for LIMIT orders"},
		{"bad order type", `{"symbol":"TCS","orderType":"HOLD","orderStyle":"MARKET","quantity":1}`, http.StatusBadRequest, ecode.ValidateErr, ""},
		{"missing symbol", `{"orderType":"BUY","orderStyle":"MARKET","quantity":1}`, http.StatusBadRequest, ecode.ValidateErr, ""},
		{"blank symbol", `{"symbol":"  ","orderType":"BUY","orderStyle":"MARKET","quantity":1}`, http.StatusBadRequest, ecode.ValidateErr, "symbol is required"},
		{"malformed json", `{"symbol":`, http.StatusBadRequest, ecode.ValidateErr, ""},
		{"unknown symbol", `{"symbol":"UNKNOWN","orderType":"BUY","orderStyle":"MARKET","quantity":1}`, http.StatusNotFound, ecode.NotFoundErr, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestEngine(t)
			status, env := do(t, g, http.MethodPost, "/api/v1/orders", tc.body)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, env.Code)
			if tc.message != "" {
				assert.Equal(t, tc.message, env.Message)
			}

			_, env = do(t, g, http.MethodGet, "/api/v1/orders", "")
			assert.Empty(t, decode[[]model.Order](t, env.Data))
			_, env = do(t, g, http.MethodGet, "/api/v1/trades", "")
			assert.Empty(t, decode[[]model.Trade](t, env.Data))
		})
	}
}

func TestGetOrderNotFound(t *testing.T) {
	g := newTestEngine(t)

	status, env := do(t, g, http.MethodGet, "/api/v1/orders/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, ecode.NotFoundErr, env.Code)
}

func TestIdempotentOrderPlacement(t *testing.T) {
	g := newTestEngine(t)
	body := `{"symbol":"INFY","orderType":"BUY","orderStyle":"MARKET","quantity":2}`

	_, first := do(t, g, http.MethodPost, "/api/v1/orders", body, "Idempotency-Key", "retry-1")
	_, second := do(t, g, http.MethodPost, "/api/v1/orders", body, "Idempotency-Key", "retry-1")
	assert.Equal(t, decode[model.Order](t, first.Data).OrderId, decode[model.Order](t, second.Data).OrderId)

	_, env := do(t, g, http.MethodGet, "/api/v1/trades", "")
	assert.Len(t, decode[[]model.Trade](t, env.Data), 1)

	do(t, g, http.MethodPost, "/api/v1/orders", body, "Idempotency-Key", "retry-2")
	_, env = do(t, g, http.MethodGet, "/api/v1/portfolio", "")
	positions := decode[[]model.Portfolio](t, env.Data)
	require.Len(t, positions, 1)
	assert.Equal(t, int64(4), positions[0].Quantity)
}
