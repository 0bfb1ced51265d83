package daemon

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/concave-dev/monctl/cmd/monstub/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.ListenAddr = "127.0.0.1:0"
	cfg.Objects = []string{"web01=HTTP,PING"}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestStart(t *testing.T) {
	server, err := Start(testConfig(t))
	require.NoError(t, err)
	defer server.Shutdown(context.Background())

	resp, err := http.Get(server.URL() + "/objects/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"content":{"web01":["HTTP","PING"]}}`, string(body))
}

func TestStartWithAuth(t *testing.T) {
	cfg := testConfig(t)
	cfg.User = "ops"
	cfg.Password = "secret"

	server, err := Start(cfg)
	require.NoError(t, err)
	defer server.Shutdown(context.Background())

	resp, err := http.Get(server.URL() + "/objects/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, server.URL()+"/health/", nil)
	require.NoError(t, err)
	req.SetBasicAuth("ops", "secret")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
}

func TestStartNoTopology(t *testing.T) {
	cfg := config.New()
	cfg.ListenAddr = "127.0.0.1:0"
	cfg.BindAddr = "127.0.0.1"

	_, err := Start(cfg)
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- Run(ctx, cfg) }()

	// Give the server a moment to start before cancelling.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
