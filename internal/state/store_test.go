package state

import (
	"testing"
	"time"

	monerrors "github.com/concave-dev/monctl/internal/errors"
	"github.com/concave-dev/monctl/internal/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	s := NewStore(topology.New(map[string][]string{
		"web01": {"HTTP", "PING"},
		"db01":  {"MySQL"},
	}))
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	return s
}

func TestObjects(t *testing.T) {
	s := newTestStore()

	objs, err := s.Objects("web01", "", false)
	require.NoError(t, err)
	assert.Equal(t, []Object{{Host: "web01"}}, objs)

	objs, err = s.Objects("web01", "HTTP", false)
	require.NoError(t, err)
	assert.Equal(t, []Object{{Host: "web01", Service: "HTTP"}}, objs)

	objs, err = s.Objects("web01", "", true)
	require.NoError(t, err)
	assert.Equal(t, []Object{
		{Host: "web01"},
		{Host: "web01", Service: "HTTP"},
		{Host: "web01", Service: "PING"},
	}, objs)
}

func TestObjectsFailures(t *testing.T) {
	s := newTestStore()

	_, err := s.Objects("nope", "", false)
	assert.True(t, monerrors.IsKind(err, monerrors.TargetNotFound))

	_, err = s.Objects("web01", "SSH", false)
	assert.True(t, monerrors.IsKind(err, monerrors.TargetNotFound))
	assert.Equal(t, "Service 'SSH' not found on host 'web01'", err.Error())

	_, err = s.Objects("web01", "HTTP", true)
	assert.True(t, monerrors.IsKind(err, monerrors.AmbiguousInput))
}

func TestScheduleAndCancelDowntime(t *testing.T) {
	s := newTestStore()
	objs, err := s.Objects("web01", "", true)
	require.NoError(t, err)

	created := s.ScheduleDowntime(objs, 7200, "", "maintenance")
	require.Len(t, created, 3)
	assert.Equal(t, int64(1), created[0].ID)
	assert.Equal(t, int64(3), created[2].ID)
	assert.Equal(t, DefaultAuthor, created[0].Author)
	assert.Equal(t, 2*time.Hour, created[0].End.Sub(created[0].Start))

	require.NoError(t, s.CancelDowntime(2))
	assert.True(t, monerrors.IsKind(s.CancelDowntime(2), monerrors.TargetNotFound))

	snap := s.Snapshot()
	require.Len(t, snap.Downtimes, 2)
	assert.Equal(t, int64(1), snap.Downtimes[0].ID)
	assert.Equal(t, int64(3), snap.Downtimes[1].ID)

	assert.Equal(t, 2, s.CancelDowntimesFor(objs))
	assert.Empty(t, s.Snapshot().Downtimes)

	// Ids are never reused.
	next := s.ScheduleDowntime([]Object{{Host: "db01"}}, 60, "ops", "")
	assert.Equal(t, int64(4), next[0].ID)
}

func TestAcknowledge(t *testing.T) {
	s := newTestStore()

	s.Acknowledge(Acknowledgement{Object: Object{Host: "web01", Service: "HTTP"}, Comment: "first", Sticky: true})
	s.Acknowledge(Acknowledgement{Object: Object{Host: "web01", Service: "HTTP"}, Comment: "second", Author: "ops"})
	s.Acknowledge(Acknowledgement{Object: Object{Host: "db01"}, Comment: "db"})

	snap := s.Snapshot()
	require.Len(t, snap.Acknowledgements, 2)
	assert.Equal(t, "db01", snap.Acknowledgements[0].Object.String())
	assert.Equal(t, "second", snap.Acknowledgements[1].Comment)
	assert.Equal(t, "ops", snap.Acknowledgements[1].Author)
	assert.Equal(t, DefaultAuthor, snap.Acknowledgements[0].Author)
}

func TestFlags(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, Flags{ChecksEnabled: true, NotificationsEnabled: true}, s.Snapshot().Flags["web01/HTTP"])

	objs, err := s.Objects("web01", "", true)
	require.NoError(t, err)
	s.SetChecks(objs, false)
	s.SetNotifications([]Object{{Host: "web01", Service: "PING"}}, false)

	flags := s.Snapshot().Flags
	assert.Equal(t, Flags{ChecksEnabled: false, NotificationsEnabled: true}, flags["web01"])
	assert.Equal(t, Flags{ChecksEnabled: false, NotificationsEnabled: false}, flags["web01/PING"])
	assert.Equal(t, Flags{ChecksEnabled: true, NotificationsEnabled: true}, flags["db01/MySQL"])
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "nothing", Summary(nil))
	assert.Equal(t, "web01/HTTP", Summary([]Object{{Host: "web01", Service: "HTTP"}}))
	assert.Equal(t, "web01 and 2 services", Summary([]Object{{Host: "web01"}, {Host: "web01", Service: "a"}, {Host: "web01", Service: "b"}}))
}
