package explorer

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newExplorerServer(t *testing.T, balances map[string]string, ticker string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ticker" {
			fmt.Fprint(w, ticker)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/q/addressbalance/") {
			if r.URL.Query().Get("confirmations") != "6" {
				http.Error(w, "missing confirmations", http.StatusBadRequest)
				return
			}
			address := strings.TrimPrefix(r.URL.Path, "/q/addressbalance/")
			body, ok := balances[address]
			if !ok {
				http.Error(w, "unknown address", http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, body)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestClientBalance(t *testing.T) {
	srv := newExplorerServer(t, map[string]string{
		"half":       "50000000",
		"dust":       "  123\n",
		"not-number": "I'm a teapot",
	}, "{}")
	client := NewClient(srv.URL)

	tests := []struct {
		address    string
		expected   float64
		expectFail bool
	}{
		{"half", 0.5, false},
		{"dust", 0.00000123, false},
		{"not-number", 0, true},
		{"unknown", 0, true},
	}

	for _, tt := range tests {
		result := client.Balance(tt.address)
		if result.Failed != tt.expectFail {
			t.Errorf("Balance(%q).Failed = %v; want %v", tt.address, result.Failed, tt.expectFail)
			continue
		}
		if !tt.expectFail && result.BTC != tt.expected {
			t.Errorf("Balance(%q).BTC = %v; want %v", tt.address, result.BTC, tt.expected)
		}
	}
}

func TestClientBalance_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL)
	result := client.Balance("whatever")
	if !result.Failed {
		t.Error("expected Failed result when the explorer is unreachable")
	}
}

func TestClientQuote(t *testing.T) {
	ticker := `{"USD": {"15m": 20000.0, "last": 20001.0, "buy": 19999.0, "sell": 20002.0, "symbol": "$"},
		"EUR": {"15m": 18500.5, "last": 18500.0, "buy": 18499.0, "sell": 18501.0, "symbol": "€"}}`
	srv := newExplorerServer(t, nil, ticker)
	client := NewClient(srv.URL)

	rate, err := client.Quote("USD")
	if err != nil {
		t.Fatalf("Quote(USD) failed: %v", err)
	}
	if rate != 20000.0 {
		t.Errorf("Quote(USD) = %v; want 20000", rate)
	}

	rate, err = client.Quote("EUR")
	if err != nil {
		t.Fatalf("Quote(EUR) failed: %v", err)
	}
	if rate != 18500.5 {
		t.Errorf("Quote(EUR) = %v; want 18500.5", rate)
	}
}

func TestClientQuote_Errors(t *testing.T) {
	srv := newExplorerServer(t, nil, `{"USD": {"15m": 20000.0}}`)
	client := NewClient(srv.URL)

	_, err := client.Quote("BRL")
	if err == nil {
		t.Error("expected error for a currency missing from the ticker")
	}

	broken := newExplorerServer(t, nil, "not json at all")
	client = NewClient(broken.URL)
	_, err = client.Quote("USD")
	if err == nil {
		t.Error("expected error for a malformed ticker response")
	}
}
