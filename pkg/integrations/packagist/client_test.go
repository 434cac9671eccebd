package packagist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/packista/packista/pkg/cache"
	"github.com/packista/packista/pkg/integrations"
)

const stablePayload = `{
  "minified": "composer/2.0",
  "packages": {
    "monolog/monolog": [
      {"version": "3.5.0", "license": ["MIT"], "require": {"php": ">=8.1"}},
      {"version": "3.4.0"},
      {"version": "3.3.0", "require": "__unset"}
    ]
  }
}`

const devPayload = `{
  "minified": "composer/2.0",
  "packages": {
    "monolog/monolog": [
      {"version": "dev-main"}
    ]
  }
}`

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	return NewClient(cache.NewNullCache(), serverURL, time.Hour)
}

func TestClient_Metadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/p2/monolog/monolog.json":
			w.Write([]byte(stablePayload))
		case "/p2/monolog/monolog~dev.json":
			w.Write([]byte(devPayload))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)

	deltas, err := c.Metadata(context.Background(), "monolog/monolog", ChannelStable, true)
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if len(deltas) != 3 {
		t.Fatalf("expected 3 delta records, got %d", len(deltas))
	}
	if v, _ := deltas[0].Version(); v != "3.5.0" {
		t.Errorf("first record version = %q, want 3.5.0", v)
	}
	// Records come back raw: the sentinel must survive transport untouched.
	if deltas[2]["require"] != "__unset" {
		t.Errorf("sentinel was altered in transit: %v", deltas[2]["require"])
	}

	dev, err := c.Metadata(context.Background(), "monolog/monolog", ChannelDev, true)
	if err != nil {
		t.Fatalf("Metadata dev channel failed: %v", err)
	}
	if len(dev) != 1 {
		t.Fatalf("expected 1 dev record, got %d", len(dev))
	}
	if v, _ := dev[0].Version(); v != "dev-main" {
		t.Errorf("dev record version = %q, want dev-main", v)
	}
}

func TestClient_Metadata_NameNormalization(t *testing.T) {
	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		w.Write([]byte(stablePayload))
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	if _, err := c.Metadata(context.Background(), "  Monolog/Monolog ", ChannelStable, true); err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if requested != "/p2/monolog/monolog.json" {
		t.Errorf("requested %q, want lowercased path", requested)
	}
}

func TestClient_Metadata_InvalidName(t *testing.T) {
	c := testClient(t, "http://registry.invalid")
	for _, name := range []string{"", "monolog", "a//b", "UPPER CASE/pkg", "-bad/pkg"} {
		if _, err := c.Metadata(context.Background(), name, ChannelStable, true); !errors.Is(err, ErrInvalidName) {
			t.Errorf("name %q: got %v, want ErrInvalidName", name, err)
		}
	}
}

func TestClient_Metadata_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	_, err := c.Metadata(context.Background(), "acme/nonexistent", ChannelStable, true)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestClient_Metadata_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing packages object", `{"minified": "composer/2.0"}`},
		{"missing package entry", `{"packages": {"other/pkg": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := testClient(t, server.URL)
			_, err := c.Metadata(context.Background(), "acme/widget", ChannelStable, true)
			if !errors.Is(err, ErrMalformedPayload) {
				t.Errorf("got %v, want ErrMalformedPayload", err)
			}
		})
	}
}

func TestClient_Metadata_EmptyVersionList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"packages": {"acme/widget": []}}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	deltas, err := c.Metadata(context.Background(), "acme/widget", ChannelStable, true)
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if len(deltas) != 0 {
		t.Errorf("expected empty sequence, got %d records", len(deltas))
	}
}

func TestClient_Metadata_Cached(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(stablePayload))
	}))
	defer server.Close()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	c := NewClient(fc, server.URL, time.Hour)

	for range 2 {
		if _, err := c.Metadata(context.Background(), "monolog/monolog", ChannelStable, false); err != nil {
			t.Fatalf("Metadata failed: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls)
	}
}

func TestClient_Package(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/packages/monolog/monolog.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{
  "package": {
    "name": "monolog/monolog",
    "description": "Sends your logs to files, sockets, inboxes, databases and various web services",
    "type": "library",
    "repository": "https://github.com/Seldaek/monolog",
    "favers": 10000,
    "downloads": {"total": 500000000, "monthly": 9000000, "daily": 300000},
    "versions": {"3.5.0": {"version": "3.5.0"}}
  }
}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	info, err := c.Package(context.Background(), "monolog/monolog", true)
	if err != nil {
		t.Fatalf("Package failed: %v", err)
	}
	if info.Name != "monolog/monolog" {
		t.Errorf("name = %q", info.Name)
	}
	if info.Downloads.Monthly != 9000000 {
		t.Errorf("monthly downloads = %d", info.Downloads.Monthly)
	}
	if _, ok := info.Versions["3.5.0"]; !ok {
		t.Error("versions map missing 3.5.0")
	}
}

func TestClient_Package_Malformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	if _, err := c.Package(context.Background(), "acme/widget", true); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("got %v, want ErrMalformedPayload", err)
	}
}
