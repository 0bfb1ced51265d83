// Package state holds the in-memory monitoring state served by monstub.
//
// The Store owns a fixed topology and records what control actions have done
// to it: scheduled downtimes (with numeric ids), problem acknowledgements, and
// per-object check and notification flags. All methods are safe for
// concurrent use; gin serves requests on multiple goroutines.
package state

import (
	"fmt"
	"sort"
	"sync"
	"time"

	monerrors "github.com/concave-dev/monctl/internal/errors"
	"github.com/concave-dev/monctl/internal/topology"
)

// Object identifies a host (Service empty) or a service on a host.
type Object struct {
	Host    string `json:"host"`
	Service string `json:"service,omitempty"`
}

// String renders "host" or "host/service".
func (o Object) String() string {
	if o.Service == "" {
		return o.Host
	}
	return o.Host + "/" + o.Service
}

// Downtime is one scheduled downtime entry.
type Downtime struct {
	ID       int64     `json:"id"`
	Object   Object    `json:"object"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int64     `json:"duration"`
	Author   string    `json:"author,omitempty"`
	Comment  string    `json:"comment,omitempty"`
}

// Acknowledgement records an acknowledged problem.
type Acknowledgement struct {
	Object     Object    `json:"object"`
	Comment    string    `json:"comment"`
	Author     string    `json:"author"`
	Sticky     bool      `json:"sticky"`
	Notify     bool      `json:"notify"`
	Persistent bool      `json:"persistent"`
	Time       time.Time `json:"time"`
}

// Flags are the per-object switches toggled by the enable/disable verbs.
type Flags struct {
	ChecksEnabled        bool `json:"checks_enabled"`
	NotificationsEnabled bool `json:"notifications_enabled"`
}

// Snapshot is a consistent copy of the store's contents.
type Snapshot struct {
	Downtimes        []Downtime        `json:"downtimes"`
	Acknowledgements []Acknowledgement `json:"acknowledgements"`
	Flags            map[string]Flags  `json:"flags"`
}

// DefaultAuthor is recorded when a request carries no author.
const DefaultAuthor = "monstub"

// Store is the mutable monitoring state behind the stand-in control API.
type Store struct {
	mu sync.Mutex

	topology  *topology.Index
	nextID    int64
	downtimes map[int64]Downtime
	acks      map[Object]Acknowledgement
	flags     map[Object]Flags

	now func() time.Time
}

// NewStore creates a store over idx. Every object starts with checks and
// notifications enabled.
func NewStore(idx *topology.Index) *Store {
	s := &Store{
		topology:  idx,
		nextID:    1,
		downtimes: make(map[int64]Downtime),
		acks:      make(map[Object]Acknowledgement),
		flags:     make(map[Object]Flags),
		now:       time.Now,
	}
	for _, host := range idx.Hosts() {
		s.flags[Object{Host: host}] = Flags{ChecksEnabled: true, NotificationsEnabled: true}
		services, _ := idx.Services(host)
		for _, svc := range services {
			s.flags[Object{Host: host, Service: svc}] = Flags{ChecksEnabled: true, NotificationsEnabled: true}
		}
	}
	return s
}

// Topology returns the snapshot the store was created with.
func (s *Store) Topology() *topology.Index {
	return s.topology
}

// Objects expands a target into the objects it covers. servicesToo adds every
// service of a host-only target.
func (s *Store) Objects(host, service string, servicesToo bool) ([]Object, error) {
	if !s.topology.HasHost(host) {
		return nil, monerrors.Newf(monerrors.TargetNotFound, "Host '%s' not found", host)
	}
	if service != "" {
		if servicesToo {
			return nil, monerrors.New(monerrors.AmbiguousInput, "services_too requires a host-only target")
		}
		if !s.topology.HasService(host, service) {
			return nil, monerrors.Newf(monerrors.TargetNotFound, "Service '%s' not found on host '%s'", service, host)
		}
		return []Object{{Host: host, Service: service}}, nil
	}

	objects := []Object{{Host: host}}
	if servicesToo {
		services, _ := s.topology.Services(host)
		for _, svc := range services {
			objects = append(objects, Object{Host: host, Service: svc})
		}
	}
	return objects, nil
}

// ScheduleDowntime records a downtime of seconds for each object, starting
// now, and returns the new entries in id order.
func (s *Store) ScheduleDowntime(objects []Object, seconds int64, author, comment string) []Downtime {
	s.mu.Lock()
	defer s.mu.Unlock()

	if author == "" {
		author = DefaultAuthor
	}
	start := s.now()
	end := start.Add(time.Duration(seconds) * time.Second)

	created := make([]Downtime, 0, len(objects))
	for _, obj := range objects {
		dt := Downtime{
			ID:       s.nextID,
			Object:   obj,
			Start:    start,
			End:      end,
			Duration: seconds,
			Author:   author,
			Comment:  comment,
		}
		s.downtimes[dt.ID] = dt
		s.nextID++
		created = append(created, dt)
	}
	return created
}

// CancelDowntime removes the downtime with the given id.
func (s *Store) CancelDowntime(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.downtimes[id]; !ok {
		return monerrors.Newf(monerrors.TargetNotFound, "Downtime %d not found", id)
	}
	delete(s.downtimes, id)
	return nil
}

// CancelDowntimesFor removes every downtime on the given objects and returns
// how many were removed.
func (s *Store) CancelDowntimesFor(objects []Object) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[Object]struct{}, len(objects))
	for _, obj := range objects {
		wanted[obj] = struct{}{}
	}

	removed := 0
	for id, dt := range s.downtimes {
		if _, ok := wanted[dt.Object]; ok {
			delete(s.downtimes, id)
			removed++
		}
	}
	return removed
}

// Acknowledge records ack against its object, replacing any earlier one.
func (s *Store) Acknowledge(ack Acknowledgement) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ack.Author == "" {
		ack.Author = DefaultAuthor
	}
	ack.Time = s.now()
	s.acks[ack.Object] = ack
}

// SetChecks switches active checks on or off for objects.
func (s *Store) SetChecks(objects []Object, enabled bool) {
	s.update(objects, func(f *Flags) { f.ChecksEnabled = enabled })
}

// SetNotifications switches notifications on or off for objects.
func (s *Store) SetNotifications(objects []Object, enabled bool) {
	s.update(objects, func(f *Flags) { f.NotificationsEnabled = enabled })
}

func (s *Store) update(objects []Object, fn func(*Flags)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, obj := range objects {
		f := s.flags[obj]
		fn(&f)
		s.flags[obj] = f
	}
}

// Snapshot copies the current state. Downtimes are ordered by id and
// acknowledgements by object.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Downtimes:        make([]Downtime, 0, len(s.downtimes)),
		Acknowledgements: make([]Acknowledgement, 0, len(s.acks)),
		Flags:            make(map[string]Flags, len(s.flags)),
	}
	for _, dt := range s.downtimes {
		snap.Downtimes = append(snap.Downtimes, dt)
	}
	sort.Slice(snap.Downtimes, func(i, j int) bool {
		return snap.Downtimes[i].ID < snap.Downtimes[j].ID
	})

	for _, ack := range s.acks {
		snap.Acknowledgements = append(snap.Acknowledgements, ack)
	}
	sort.Slice(snap.Acknowledgements, func(i, j int) bool {
		return snap.Acknowledgements[i].Object.String() < snap.Acknowledgements[j].Object.String()
	})

	for obj, f := range s.flags {
		snap.Flags[obj.String()] = f
	}
	return snap
}

// Summary describes objects for response messages, e.g. "web01 and 2 services".
func Summary(objects []Object) string {
	switch len(objects) {
	case 0:
		return "nothing"
	case 1:
		return objects[0].String()
	default:
		return fmt.Sprintf("%s and %d services", objects[0].String(), len(objects)-1)
	}
}
