package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/ticket_marketplace/internal/adapter/handler"
	"github.com/srgjo27/ticket_marketplace/internal/adapter/payment"
	"github.com/srgjo27/ticket_marketplace/internal/adapter/tickets"
	"github.com/srgjo27/ticket_marketplace/internal/core/ledger"
	"github.com/srgjo27/ticket_marketplace/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router   http.Handler
	auth     *handler.Authenticator
	operator uuid.UUID
}

func newTestServer() *testServer {
	operator := uuid.New()
	registry := tickets.NewRegistry()
	wallet := payment.NewWallet()
	auth := handler.NewAuthenticator("test-secret")

	market := services.NewMarketplaceService(ledger.New(), registry, wallet, nil, nil, nil, services.MarketplaceConfig{Operator: operator})
	events := services.NewEventService(registry, operator)

	return &testServer{
		router:   handler.NewRouter(auth, handler.NewEventHandler(events), handler.NewMarketplaceHandler(market, wallet)),
		auth:     auth,
		operator: operator,
	}
}

func (s *testServer) do(t *testing.T, method, path string, account *uuid.UUID, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if account != nil {
		token, err := s.auth.IssueToken(*account, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	return rec
}

func TestRouter_RequiresToken(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/listings", nil, map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/listings", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ListAndBuy(t *testing.T) {
	s := newTestServer()
	seller, buyer := uuid.New(), uuid.New()

	rec := s.do(t, http.MethodPost, "/events", &seller, map[string]string{"name": "New Event"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var ev struct {
		ID uuid.UUID `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&ev))

	rec = s.do(t, http.MethodPost, fmt.Sprintf("/events/%s/ticket-types", ev.ID), &seller,
		map[string]any{"name": "Ticket Type A", "supply": 100, "value": "20"})
	require.Equal(t, http.StatusCreated, rec.Code)

	listing := map[string]any{"event_id": ev.ID.String(), "ticket_type_id": 1, "price": "20", "amount": 100}

	rec = s.do(t, http.MethodPost, "/listings", &seller, listing)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPost, fmt.Sprintf("/events/%s/approvals", ev.ID), &seller, map[string]any{"approved": true})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodPost, "/listings", &seller, listing)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, "/wallet/deposit", &s.operator, map[string]string{"account": buyer.String(), "amount": "20"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":"20"}`, rec.Body.String())

	purchase := map[string]any{
		"event_id":       ev.ID.String(),
		"ticket_type_id": 1,
		"seller_id":      seller.String(),
		"quantity":       1,
		"payment":        "19",
	}
	rec = s.do(t, http.MethodPost, "/purchases", &buyer, purchase)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	purchase["payment"] = "20"
	rec = s.do(t, http.MethodPost, "/purchases", &buyer, purchase)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/events/%s/sellers/%s/listings/1", ev.ID, seller), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Price  string `json:"price"`
		Amount uint64 `json:"amount"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "20", got.Price)
	assert.Equal(t, uint64(99), got.Amount)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/events/%s/balances/%s/1", ev.ID, buyer), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":1}`, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/proceeds/withdraw", &seller, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"withdrawn":"20"}`, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/proceeds/withdraw", &seller, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_CancelUnknownListing(t *testing.T) {
	s := newTestServer()
	seller := uuid.New()

	rec := s.do(t, http.MethodDelete, "/listings", &seller,
		map[string]any{"event_id": uuid.New().String(), "ticket_type_id": 1, "amount": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/events/not-a-uuid/sellers", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_DepositRequiresOperator(t *testing.T) {
	s := newTestServer()
	account := uuid.New()

	rec := s.do(t, http.MethodPost, "/wallet/deposit", &account,
		map[string]string{"account": account.String(), "amount": "1000000000000000000000000"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodGet, "/wallet", &account, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":"0"}`, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/wallet/deposit", &s.operator, map[string]string{"account": "nobody", "amount": "5"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_SalesWithoutHistory(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodGet, fmt.Sprintf("/events/%s/sales", uuid.New()), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sales":[]}`, rec.Body.String())
}
