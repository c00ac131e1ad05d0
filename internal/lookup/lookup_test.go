package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"summaryfetcher/internal/fetcher"
)

func searchServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Query().Get("q")]
		if !ok {
			body = `{"quotes": []}`
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestClient_Resolve(t *testing.T) {
	server := searchServer(t, map[string]string{
		"Apple": `{"quotes": [
			{"symbol": "AAPL", "shortname": "Apple Inc.", "exchange": "NMS", "quoteType": "EQUITY"},
			{"symbol": "APC.F", "shortname": "Apple Inc.", "exchange": "FRA", "quoteType": "EQUITY"}
		]}`,
	})
	defer server.Close()

	client := NewClient(server.URL, nil)

	match, err := client.Resolve(context.Background(), "Apple")
	if err != nil {
		t.Fatalf("Resolve() returned unexpected error: %v", err)
	}
	if match == nil {
		t.Fatal("Resolve() = nil, want first match")
	}
	if match.Symbol != "AAPL" {
		t.Errorf("Symbol = %q, want %q", match.Symbol, "AAPL")
	}
	if match.AssetType() != AssetTypeEquity {
		t.Errorf("AssetType() = %q, want %q", match.AssetType(), AssetTypeEquity)
	}
}

func TestClient_Resolve_NoMatch(t *testing.T) {
	server := searchServer(t, nil)
	defer server.Close()

	client := NewClient(server.URL, nil)

	match, err := client.Resolve(context.Background(), "NOT_A_REAL_TICKER_X")
	if err != nil {
		t.Fatalf("Resolve() returned unexpected error: %v", err)
	}
	if match != nil {
		t.Errorf("Resolve() = %v, want nil for an unknown query", match)
	}
}

func TestClient_Resolve_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Resolve(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("Resolve() error = nil, want server error")
	}
	var fetchErr *fetcher.FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Type != fetcher.ErrorTypeServer {
		t.Errorf("Resolve() error = %v, want a %s FetchError", err, fetcher.ErrorTypeServer)
	}
}

func TestClient_Search_AssetTypeFilter(t *testing.T) {
	server := searchServer(t, map[string]string{
		"gold": `{"quotes": [
			{"symbol": "GC=F", "shortname": "Gold Futures", "quoteType": "FUTURE"},
			{"symbol": "GLD", "shortname": "SPDR Gold Shares", "quoteType": "ETF"},
			{"symbol": "GOLD", "shortname": "Barrick Gold", "quoteType": "EQUITY"}
		]}`,
	})
	defer server.Close()

	client := NewClient(server.URL, nil, WithAssetTypes(AssetTypeEquity, AssetTypeETF))

	matches, err := client.Search(context.Background(), "gold")
	if err != nil {
		t.Fatalf("Search() returned unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Search() returned %d matches, want 2: %v", len(matches), matches)
	}
	if matches[0].Symbol != "GLD" || matches[1].Symbol != "GOLD" {
		t.Errorf("matches = [%s %s], want [GLD GOLD]", matches[0].Symbol, matches[1].Symbol)
	}
}

func TestClient_Search_DropsUnknownQuoteTypes(t *testing.T) {
	server := searchServer(t, map[string]string{
		"x": `{"quotes": [
			{"symbol": "XNEWS", "shortname": "A news item", "quoteType": "NEWS"},
			{"symbol": "X", "shortname": "United States Steel", "quoteType": "EQUITY"}
		]}`,
	})
	defer server.Close()

	client := NewClient(server.URL, nil)

	matches, err := client.Search(context.Background(), "x")
	if err != nil {
		t.Fatalf("Search() returned unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Symbol != "X" {
		t.Errorf("Search() = %v, want only the equity match", matches)
	}
}

func TestIsValidAssetType(t *testing.T) {
	for _, valid := range ValidAssetTypes {
		if !IsValidAssetType(valid) {
			t.Errorf("IsValidAssetType(%q) = false, want true", valid)
		}
	}
	if IsValidAssetType(AssetType("News")) {
		t.Error(`IsValidAssetType("News") = true, want false`)
	}
}
