// Package session holds the browser's selection state: which memory is
// selected, the event/record caches backing the rendered tables, and the
// per-workflow state machines.
package session

import (
	"errors"
	"sort"
	"sync"

	"github.com/liakhandrii/agentcore-memory-browser/internal/model"
)

// Workflow names the independent UI workflows.
type Workflow string

const (
	WorkflowAddEvent        Workflow = "add_event"
	WorkflowListEvents      Workflow = "list_events"
	WorkflowListRecords     Workflow = "list_records"
	WorkflowRetrieveRecords Workflow = "retrieve_records"
)

// ErrBusy is returned by Begin while the workflow's previous request is
// still in flight.
var ErrBusy = errors.New("workflow already in progress")

// ViewSession is the single source of truth for what the browser displays.
// Cache maps are replaced wholesale on every successful list/search response
// and must stay consistent with the rendered tables: every rendered row has
// a cache entry, and deletion drops exactly one entry.
type ViewSession struct {
	mu         sync.Mutex
	selected   *model.Memory
	events     map[string]model.Event
	records    map[string]model.Record
	generation uint64
	loading    map[Workflow]bool
}

// New returns an empty session with nothing selected.
func New() *ViewSession {
	return &ViewSession{
		events:  make(map[string]model.Event),
		records: make(map[string]model.Record),
		loading: make(map[Workflow]bool),
	}
}

// Select makes m the current memory, discarding both caches, and returns the
// new generation. Results fetched under an older generation are stale.
func (s *ViewSession) Select(m *model.Memory) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = m
	s.clearLocked()
	s.generation++
	return s.generation
}

// Deselect clears the selection and both caches.
func (s *ViewSession) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.clearLocked()
	s.generation++
}

func (s *ViewSession) clearLocked() {
	s.events = make(map[string]model.Event)
	s.records = make(map[string]model.Record)
}

// Selected returns the currently selected memory, or nil.
func (s *ViewSession) Selected() *model.Memory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Generation returns the current selection generation.
func (s *ViewSession) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Begin marks a workflow as loading and returns the generation its eventual
// result must match. A workflow with a request already in flight is refused.
func (s *ViewSession) Begin(w Workflow) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading[w] {
		return 0, ErrBusy
	}
	s.loading[w] = true
	return s.generation, nil
}

// End returns a workflow to idle.
func (s *ViewSession) End(w Workflow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.loading, w)
}

// ApplyEvents replaces the event cache with evs, keyed by event ID. It
// reports false (leaving the cache untouched) when gen no longer matches the
// current selection, i.e. the response is stale.
func (s *ViewSession) ApplyEvents(gen uint64, evs []model.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.events = make(map[string]model.Event, len(evs))
	for _, ev := range evs {
		s.events[ev.EventID] = ev
	}
	return true
}

// ApplyRecords replaces the record cache with recs, keyed by record ID.
// Stale generations are discarded as in ApplyEvents.
func (s *ViewSession) ApplyRecords(gen uint64, recs []model.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.records = make(map[string]model.Record, len(recs))
	for _, rec := range recs {
		s.records[rec.ID()] = rec
	}
	return true
}

// Event resolves a cached event by ID.
func (s *ViewSession) Event(id string) (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[id]
	return ev, ok
}

// Record resolves a cached record by ID.
func (s *ViewSession) Record(id string) (model.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	return rec, ok
}

// DropEvent removes one event after a successful delete. It reports whether
// the ID was present so the caller can decrement the rendered count.
func (s *ViewSession) DropEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return false
	}
	delete(s.events, id)
	return true
}

// DropRecord removes one record after a successful delete.
func (s *ViewSession) DropRecord(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	return true
}

// EventCount returns the number of cached events.
func (s *ViewSession) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// RecordCount returns the number of cached records.
func (s *ViewSession) RecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Events returns the cached events sorted newest first.
func (s *ViewSession) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].Timestamp().Time, out[j].Timestamp().Time
		if ti.Equal(tj) {
			return out[i].EventID < out[j].EventID
		}
		return ti.After(tj)
	})
	return out
}

// Records returns the cached records sorted newest first.
func (s *ViewSession) Records() []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].CreatedAt.Time, out[j].CreatedAt.Time
		if ti.Equal(tj) {
			return out[i].ID() < out[j].ID()
		}
		return ti.After(tj)
	})
	return out
}
