package handlers

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/concave-dev/monctl/cmd/monctl/config"
	"github.com/concave-dev/monctl/internal/action"
	"github.com/concave-dev/monctl/internal/api"
	monerrors "github.com/concave-dev/monctl/internal/errors"
	"github.com/concave-dev/monctl/internal/state"
	"github.com/concave-dev/monctl/internal/topology"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stub is a monstub control API served over httptest.
type stub struct {
	store *state.Store
	url   string
}

func newStub(t *testing.T, user, password string) *stub {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := state.NewStore(topology.New(map[string][]string{
		"web01": {"HTTP", "PING"},
		"db01":  {"MySQL"},
	}))
	srv := api.NewServer(&api.Config{
		BindAddr: "127.0.0.1",
		User:     user,
		Password: password,
		Store:    store,
	})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return &stub{store: store, url: ts.URL}
}

func newTestHandler(url string, out *bytes.Buffer) *Handler {
	opts := &config.Options{
		URL:      url,
		LogLevel: "ERROR",
		Timeout:  5,
		Output:   "table",
	}
	return New(opts, out)
}

func mustSpec(t *testing.T, name string) action.Spec {
	t.Helper()
	spec, err := action.DefaultRegistry().Lookup(name)
	require.NoError(t, err)
	return spec
}

func TestAcknowledgeEndToEnd(t *testing.T) {
	s := newStub(t, "", "")
	var out bytes.Buffer
	h := newTestHandler(s.url, &out)

	err := h.Acknowledge(context.Background(), []string{"web01", "HTTP"}, action.AckOptions{Comment: "investigating"})
	require.NoError(t, err)
	assert.Equal(t, "Problem acknowledged for web01/HTTP\n", out.String())

	acks := s.store.Snapshot().Acknowledgements
	require.Len(t, acks, 1)
	assert.Equal(t, "web01/HTTP", acks[0].Object.String())
	assert.Equal(t, "investigating", acks[0].Comment)
	assert.True(t, acks[0].Sticky)
	assert.True(t, acks[0].Notify)
	assert.False(t, acks[0].Persistent)
}

func TestAcknowledgeToggles(t *testing.T) {
	s := newStub(t, "", "")
	h := newTestHandler(s.url, &bytes.Buffer{})

	err := h.Acknowledge(context.Background(), []string{"db01"}, action.AckOptions{
		Comment:    "known",
		Author:     "ops",
		Sticky:     action.Off,
		Notify:     action.Default,
		Persistent: action.On,
	})
	require.NoError(t, err)

	acks := s.store.Snapshot().Acknowledgements
	require.Len(t, acks, 1)
	assert.False(t, acks[0].Sticky)
	assert.True(t, acks[0].Notify)
	assert.True(t, acks[0].Persistent)
	assert.Equal(t, "ops", acks[0].Author)
}

func TestAcknowledgeRequiresComment(t *testing.T) {
	// No server: the comment is checked before any request.
	h := newTestHandler("http://127.0.0.1:1", &bytes.Buffer{})

	err := h.Acknowledge(context.Background(), []string{"web01"}, action.AckOptions{})
	assert.True(t, monerrors.IsKind(err, monerrors.MissingRequiredOption))
}

func TestScheduleDowntimeRecursive(t *testing.T) {
	s := newStub(t, "", "")
	var out bytes.Buffer
	h := newTestHandler(s.url, &out)

	opts := action.DowntimeOptions{TargetOptions: action.TargetOptions{Recursive: true}, Comment: "patching"}
	err := h.ScheduleDowntime(context.Background(), []string{"web01", "2h"}, opts)
	require.NoError(t, err)

	downtimes := s.store.Snapshot().Downtimes
	require.Len(t, downtimes, 3)
	for _, dt := range downtimes {
		assert.Equal(t, int64(7200), dt.Duration)
		assert.Equal(t, "patching", dt.Comment)
	}
	assert.Contains(t, out.String(), `"downtime_ids": [`)
	assert.Contains(t, out.String(), `"web01/PING"`)
}

func TestScheduleDowntimeService(t *testing.T) {
	s := newStub(t, "", "")
	h := newTestHandler(s.url, &bytes.Buffer{})

	err := h.ScheduleDowntime(context.Background(), []string{"web01", "PING", "50m"}, action.DowntimeOptions{})
	require.NoError(t, err)

	downtimes := s.store.Snapshot().Downtimes
	require.Len(t, downtimes, 1)
	assert.Equal(t, "web01/PING", downtimes[0].Object.String())
	assert.Equal(t, int64(3000), downtimes[0].Duration)
}

func TestScheduleDowntimeFailures(t *testing.T) {
	s := newStub(t, "", "")
	h := newTestHandler(s.url, &bytes.Buffer{})
	ctx := context.Background()

	err := h.ScheduleDowntime(ctx, []string{"web01", "2x"}, action.DowntimeOptions{})
	assert.True(t, monerrors.IsKind(err, monerrors.InvalidFormat))

	err = h.ScheduleDowntime(ctx, []string{"web01"}, action.DowntimeOptions{})
	assert.True(t, monerrors.IsKind(err, monerrors.MissingRequiredOption))

	opts := action.DowntimeOptions{TargetOptions: action.TargetOptions{Recursive: true}}
	err = h.ScheduleDowntime(ctx, []string{"web01", "HTTP", "1h"}, opts)
	assert.True(t, monerrors.IsKind(err, monerrors.AmbiguousInput))

	assert.Empty(t, s.store.Snapshot().Downtimes)
}

func TestTargeted(t *testing.T) {
	s := newStub(t, "", "")
	var out bytes.Buffer
	h := newTestHandler(s.url, &out)
	ctx := context.Background()

	err := h.Targeted(ctx, mustSpec(t, action.CmdDisableChecks), []string{"web01", "HTTP"}, action.TargetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Checks disabled for web01/HTTP\n", out.String())

	err = h.Targeted(ctx, mustSpec(t, action.CmdDisableNotifications), []string{"db01"}, action.TargetOptions{Recursive: true})
	require.NoError(t, err)

	flags := s.store.Snapshot().Flags
	assert.False(t, flags["web01/HTTP"].ChecksEnabled)
	assert.True(t, flags["web01/PING"].ChecksEnabled)
	assert.False(t, flags["db01"].NotificationsEnabled)
	assert.False(t, flags["db01/MySQL"].NotificationsEnabled)
}

func TestTargetedFailures(t *testing.T) {
	s := newStub(t, "", "")
	h := newTestHandler(s.url, &bytes.Buffer{})
	ctx := context.Background()
	spec := mustSpec(t, action.CmdEnableChecks)

	tests := []struct {
		name string
		args []string
		opts action.TargetOptions
		kind monerrors.Kind
	}{
		{"unknown host", []string{"nope"}, action.TargetOptions{}, monerrors.TargetNotFound},
		{"no args", nil, action.TargetOptions{}, monerrors.TargetNotFound},
		{"unknown service", []string{"web01", "SSH"}, action.TargetOptions{}, monerrors.TargetNotFound},
		{"recursive service", []string{"web01", "HTTP"}, action.TargetOptions{Recursive: true}, monerrors.AmbiguousInput},
		{"extra argument", []string{"web01", "HTTP", "more"}, action.TargetOptions{}, monerrors.InvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Targeted(ctx, spec, tt.args, tt.opts)
			require.Error(t, err)
			assert.Equal(t, tt.kind, monerrors.KindOf(err))
		})
	}
}

func TestCancelDowntime(t *testing.T) {
	s := newStub(t, "", "")
	var out bytes.Buffer
	h := newTestHandler(s.url, &out)
	ctx := context.Background()

	require.NoError(t, h.ScheduleDowntime(ctx, []string{"db01", "1d"}, action.DowntimeOptions{}))
	require.Len(t, s.store.Snapshot().Downtimes, 1)

	out.Reset()
	require.NoError(t, h.Targeted(ctx, mustSpec(t, action.CmdCancelDowntime), []string{"db01"}, action.TargetOptions{}))
	assert.Equal(t, "Cancelled 1 downtimes for db01\n", out.String())
	assert.Empty(t, s.store.Snapshot().Downtimes)
}

func TestHostsAndServices(t *testing.T) {
	s := newStub(t, "", "")
	var out bytes.Buffer
	h := newTestHandler(s.url, &out)
	ctx := context.Background()

	require.NoError(t, h.Hosts(ctx))
	assert.Contains(t, out.String(), "HOST")
	assert.Contains(t, out.String(), "db01")
	assert.Contains(t, out.String(), "web01")

	out.Reset()
	require.NoError(t, h.Services(ctx, []string{"web01"}))
	assert.Equal(t, "HTTP\nPING\n", out.String())

	err := h.Services(ctx, []string{"nope"})
	assert.True(t, monerrors.IsKind(err, monerrors.TargetNotFound))
}

func TestHostsJSON(t *testing.T) {
	s := newStub(t, "", "")
	var out bytes.Buffer
	h := New(&config.Options{URL: s.url, LogLevel: "ERROR", Output: "json"}, &out)

	require.NoError(t, h.Hosts(context.Background()))
	assert.JSONEq(t, `{"db01":["MySQL"],"web01":["HTTP","PING"]}`, out.String())
}

func TestRaw(t *testing.T) {
	s := newStub(t, "", "")
	var out bytes.Buffer
	h := newTestHandler(s.url, &out)
	ctx := context.Background()

	require.NoError(t, h.Raw(ctx, []string{"schedule_downtime", "host=web01", "duration=60"}))
	downtimes := s.store.Snapshot().Downtimes
	require.Len(t, downtimes, 1)
	assert.Equal(t, int64(60), downtimes[0].Duration)

	out.Reset()
	require.NoError(t, h.Raw(ctx, []string{"cancel_downtime", "1"}))
	assert.Equal(t, "Downtime 1 cancelled\n", out.String())

	// Logical failures come back as protocol failures carrying the server message.
	err := h.Raw(ctx, []string{"cancel_downtime", "1"})
	assert.True(t, monerrors.IsKind(err, monerrors.ProtocolFailure))
	assert.Contains(t, err.Error(), "Downtime 1 not found")

	err = h.Raw(ctx, []string{"schedule_downtime", "host"})
	assert.True(t, monerrors.IsKind(err, monerrors.InvalidFormat))
}

func TestUnauthorized(t *testing.T) {
	s := newStub(t, "admin", "secret")
	h := newTestHandler(s.url, &bytes.Buffer{})

	err := h.Hosts(context.Background())
	assert.True(t, monerrors.IsKind(err, monerrors.Unauthorized))

	authed := New(&config.Options{URL: s.url, User: "admin", Password: "secret", LogLevel: "ERROR", Output: "table"}, &bytes.Buffer{})
	assert.NoError(t, authed.Hosts(context.Background()))
}

func TestTransportFailure(t *testing.T) {
	ts := httptest.NewServer(nil)
	url := ts.URL
	ts.Close()

	h := newTestHandler(url, &bytes.Buffer{})
	err := h.Targeted(context.Background(), mustSpec(t, action.CmdEnableChecks), []string{"web01"}, action.TargetOptions{})
	assert.True(t, monerrors.IsKind(err, monerrors.Transport))
}
