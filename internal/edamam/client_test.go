package edamam

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleBody = `{
	"q": "pasta",
	"count": 2,
	"hits": [
		{"recipe": {
			"uri": "http://example.com/recipe#a",
			"label": "Pasta Primavera",
			"source": "Example Kitchen",
			"url": "http://example.com/a",
			"yield": 4,
			"calories": 1280.5,
			"ingredientLines": ["200g pasta", "1 courgette"],
			"dietLabels": ["Balanced"],
			"healthLabels": ["Vegetarian"],
			"totalNutrients": {
				"FAT": {"label": "Fat", "quantity": 42.1, "unit": "g"}
			}
		}},
		{"recipe": {
			"uri": "http://example.com/recipe#b",
			"label": "Pasta Bake",
			"source": "Example Kitchen",
			"url": "http://example.com/b",
			"yield": 6,
			"calories": 2200,
			"ingredientLines": ["300g pasta"]
		}}
	]
}`

func TestSearchDecodesHits(t *testing.T) {
	var gotQuery, gotID, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotID = r.URL.Query().Get("app_id")
		gotKey = r.URL.Query().Get("app_key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-id", "test-key")
	resp, err := client.Search(context.Background(), "pasta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "pasta" {
		t.Fatalf("expected query parameter pasta, got %q", gotQuery)
	}
	if gotID != "test-id" || gotKey != "test-key" {
		t.Fatalf("expected credentials in query string, got %q/%q", gotID, gotKey)
	}
	if len(resp.Hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(resp.Hits))
	}
	first := resp.Hits[0].Recipe
	if first.Label != "Pasta Primavera" {
		t.Fatalf("unexpected label %q", first.Label)
	}
	if first.Calories != 1280.5 {
		t.Fatalf("unexpected calories %v", first.Calories)
	}
	if n, ok := first.TotalNutrients["FAT"]; !ok || n.Unit != "g" {
		t.Fatalf("expected FAT nutrient with unit g, got %#v", first.TotalNutrients)
	}
}

func TestSearchEmptyHitsIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"q": "zzz", "count": 0, "hits": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "id", "key")
	resp, err := client.Search(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Hits) != 0 {
		t.Fatalf("expected no hits, got %d", len(resp.Hits))
	}
}

func TestSearchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "id", "key")
	_, err := client.Search(context.Background(), "pasta")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", statusErr.StatusCode)
	}
	if statusErr.Query != "pasta" {
		t.Fatalf("expected query carried on error, got %q", statusErr.Query)
	}
}

func TestSearchNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, "id", "key")
	_, err := client.Search(context.Background(), "pasta")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
}

func TestSearchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hits": [`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "id", "key")
	_, err := client.Search(context.Background(), "pasta")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError for malformed body, got %v", err)
	}
}

func TestSearchHonoursContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, "id", "key")
	_, err := client.Search(ctx, "pasta")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError on cancellation, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

func TestRecipeIDFallsBackToURL(t *testing.T) {
	r := Recipe{URI: "uri", URL: "url"}
	if r.ID() != "uri" {
		t.Fatalf("expected URI preferred, got %q", r.ID())
	}
	r.URI = ""
	if r.ID() != "url" {
		t.Fatalf("expected URL fallback, got %q", r.ID())
	}
}
