package capture

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sebv03/captura/pkg/product"
)

func testRecord() *product.Product {
	return &product.Product{
		Name:       "Chocolate Golazo 25 g",
		Price:      890,
		SourceURL:  "https://mialmacen.cl/producto/chocolate-golazo-25-g",
		SiteHost:   "mialmacen.cl",
		Strategy:   "schema.org",
		Confidence: product.ConfidenceHigh,
	}
}

func TestClientSend(t *testing.T) {
	var gotKey string
	var gotRec product.Product
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != capturePath {
			t.Errorf("path = %q, want %q", r.URL.Path, capturePath)
		}
		gotKey = r.Header.Get("X-API-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotRec); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "action": "created"})
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "clave-secreta"})
	action, err := c.Send(context.Background(), testRecord())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if action != "created" {
		t.Errorf("action = %q, want %q", action, "created")
	}
	if gotKey != "clave-secreta" {
		t.Errorf("X-API-Key = %q", gotKey)
	}
	if gotRec.Name != "Chocolate Golazo 25 g" || gotRec.Price != 890 {
		t.Errorf("posted record = %+v", gotRec)
	}
}

func TestClientSend_BadAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "invalid key"})
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "mala"})
	if _, err := c.Send(context.Background(), testRecord()); err == nil {
		t.Error("Send() = nil error, want API-key rejection")
	}
}

func TestClientSend_InvalidRecordNeverSent(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	rec := testRecord()
	rec.SourceURL = ""
	c := NewClient(ClientConfig{BaseURL: srv.URL})
	if _, err := c.Send(context.Background(), rec); err == nil {
		t.Error("Send() = nil error, want validation failure")
	}
	if called {
		t.Error("invalid record must not reach the API")
	}
}
