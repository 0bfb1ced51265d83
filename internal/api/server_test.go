package api

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

// TestNewServer tests NewServer creation
func TestNewServer(t *testing.T) {
	config := &Config{
		BindAddr: "127.0.0.1",
		BindPort: 8080,
		User:     "nagios",
		Store:    testStore(),
	}

	server := NewServer(config)

	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
	if server.bindAddr != config.BindAddr {
		t.Errorf("NewServer() bindAddr = %q, want %q", server.bindAddr, config.BindAddr)
	}
	if server.bindPort != config.BindPort {
		t.Errorf("NewServer() bindPort = %d, want %d", server.bindPort, config.BindPort)
	}
	if server.store != config.Store {
		t.Error("NewServer() did not set store correctly")
	}
	if server.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", server.Addr())
	}
}

// TestNewServer_NilConfig tests NewServer with nil config
func TestNewServer_NilConfig(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewServer() with nil config should panic")
		}
	}()

	NewServer(nil)
}

// TestServer_StartShutdown tests serving on an OS-assigned port
func TestServer_StartShutdown(t *testing.T) {
	server := NewServer(&Config{BindAddr: "127.0.0.1", BindPort: 0, Store: testStore()})
	if err := server.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer server.Shutdown(context.Background())

	if strings.HasSuffix(server.Addr(), ":0") {
		t.Fatalf("Addr() = %q, want bound port", server.Addr())
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(server.URL() + "/health/")
	if err != nil {
		t.Fatalf("GET /health/ error = %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /health/ status = %d, want 200", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// TestServer_StartPortInUse tests that a busy port fails Start
func TestServer_StartPortInUse(t *testing.T) {
	first := NewServer(&Config{BindAddr: "127.0.0.1", BindPort: 0, Store: testStore()})
	if err := first.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer first.Shutdown(context.Background())

	second := NewServer(&Config{BindAddr: "127.0.0.1", BindPort: first.bindPort, Store: testStore()})
	if err := second.Start(); err == nil {
		second.Shutdown(context.Background())
		t.Fatal("Start() on a busy port should fail")
	}
}
