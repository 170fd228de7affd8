package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/laundrylady/order-intake/internal/orders"
	"github.com/laundrylady/order-intake/internal/pricing"
	"github.com/laundrylady/order-intake/internal/schedule"
	"github.com/laundrylady/order-intake/pkg/logging"
)

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(ctx context.Context, draft *orders.Draft, breakdown pricing.Breakdown) (string, error) {
	return "sub-test", nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.Default()
	ordersHandler := orders.NewHandler(noopDispatcher{}, pricing.Default, schedule.DefaultWindow, nil, logger)

	cfg := &Config{
		Logger:        logger,
		OrdersHandler: ordersHandler,
	}

	return New(cfg)
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestRouterSubmitEndpoint(t *testing.T) {
	router := newTestRouter(t)

	payload := orders.Draft{
		Name:              "Router Test",
		Email:             "router@example.com",
		Phone:             "+12223334444",
		PickupAddress:     "12 Main St",
		DropoffAddress:    "34 Oak Ave",
		PickupDate:        "2026-09-05",
		PickupTime:        "07:30",
		DetergentType:     orders.DetergentScented,
		EstimatedWeightLb: 10,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	var resp orders.SubmitResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.SubmissionID != "sub-test" {
		t.Errorf("expected submission ID from dispatcher, got %q", resp.SubmissionID)
	}
}

func TestRouterSlotsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/slots", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp orders.SlotsResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Slots) == 0 {
		t.Fatal("expected generated slots")
	}
}

func TestRouterQuoteEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/quote?weight=10&pressing=true&items=3", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var b pricing.Breakdown
	if err := json.NewDecoder(rr.Body).Decode(&b); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(b.Lines) != 2 {
		t.Fatalf("expected two breakdown lines, got %d", len(b.Lines))
	}
}

func TestRouterRateLimit(t *testing.T) {
	logger := logging.Default()
	ordersHandler := orders.NewHandler(noopDispatcher{}, pricing.Default, schedule.DefaultWindow, nil, logger)

	router := New(&Config{
		Logger:             logger,
		OrdersHandler:      ordersHandler,
		RateLimitPerSecond: 1,
		RateLimitBurst:     1,
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/slots", nil)
	req.RemoteAddr = "10.1.1.1:1234"

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", rr.Code)
	}
}
