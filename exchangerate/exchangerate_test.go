package exchangerate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestClient returns a client hitting srv directly, without the disk cache
// and without retries so failures surface immediately.
func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		client:  srv.Client(),
		retries: 1,
	}
}

func TestRates(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"result": "success", "conversion_rates": {"USD": 1, "EUR": 0.9, "TWD": 29.5}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	rates, err := c.Rates(context.Background(), "USD")
	if err != nil {
		t.Fatalf("Rates: %v", err)
	}
	if want := "/test-key/latest/USD"; gotPath != want {
		t.Errorf("request path = %q, want %q", gotPath, want)
	}
	if got := rates["EUR"].String(); got != "0.9" {
		t.Errorf("EUR rate = %s, want 0.9", got)
	}
	// aliased currencies are reachable under both codes
	if got := rates["NTD"].String(); got != "29.5" {
		t.Errorf("NTD rate = %s, want 29.5", got)
	}
	if got := rates["TWD"].String(); got != "29.5" {
		t.Errorf("TWD rate = %s, want 29.5", got)
	}
}

func TestRatesAliasesBaseCurrency(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"conversion_rates": {"USD": 0.033}}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Rates(context.Background(), "NTD"); err != nil {
		t.Fatalf("Rates(NTD): %v", err)
	}
	if !strings.HasSuffix(gotPath, "/latest/TWD") {
		t.Errorf("request path = %q, want the TWD standard code", gotPath)
	}
}

func TestRatesMissingAPIKey(t *testing.T) {
	c := &Client{}
	if _, err := c.Rates(context.Background(), "USD"); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Rates without key = %v, want ErrMissingAPIKey", err)
	}
}

func TestRatesRetriesOnRateLimit(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"conversion_rates": {"EUR": 0.9}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.retries = 2
	rates, err := c.Rates(context.Background(), "USD")
	if err != nil {
		t.Fatalf("Rates: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if got := rates["EUR"].String(); got != "0.9" {
		t.Errorf("EUR rate = %s, want 0.9", got)
	}
}

func TestRatesRateLimitExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Rates(context.Background(), "USD"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("Rates = %v, want ErrRateLimited", err)
	}
}

func TestRatesErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ``, ErrInvalidAPIKey},
		{"forbidden", http.StatusForbidden, ``, ErrInvalidAPIKey},
		{"unsupported code", http.StatusNotFound, `{"result": "error", "error-type": "unsupported-code"}`, ErrUnknownCurrency},
		{"invalid key", http.StatusForbidden, `{"result": "error", "error-type": "invalid-key"}`, ErrInvalidAPIKey},
		{"inactive account", http.StatusBadRequest, `{"result": "error", "error-type": "inactive-account"}`, ErrInvalidAPIKey},
		{"quota reached", http.StatusBadRequest, `{"result": "error", "error-type": "quota-reached"}`, ErrRateLimited},
		{"unknown error type", http.StatusBadRequest, `{"result": "error", "error-type": "malformed-request"}`, ErrInvalidResponse},
		{"no error payload", http.StatusInternalServerError, `oops`, ErrInvalidResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			if _, err := newTestClient(srv).Rates(context.Background(), "USD"); !errors.Is(err, tt.want) {
				t.Errorf("Rates = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRatesInvalidResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `not json`},
		{"no rates", `{"result": "success"}`},
		{"empty rates", `{"conversion_rates": {}}`},
		{"non numeric rate", `{"conversion_rates": {"EUR": "0.9"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			if _, err := newTestClient(srv).Rates(context.Background(), "USD"); !errors.Is(err, ErrInvalidResponse) {
				t.Errorf("Rates = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestStandardCode(t *testing.T) {
	if got := standardCode("NTD"); got != "TWD" {
		t.Errorf("standardCode(NTD) = %q, want TWD", got)
	}
	if got := standardCode("EUR"); got != "EUR" {
		t.Errorf("standardCode(EUR) = %q, want EUR", got)
	}
	if got := customCode("TWD"); got != "NTD" {
		t.Errorf("customCode(TWD) = %q, want NTD", got)
	}
	if got := customCode("EUR"); got != "EUR" {
		t.Errorf("customCode(EUR) = %q, want EUR", got)
	}
}
