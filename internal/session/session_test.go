package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liakhandrii/agentcore-memory-browser/internal/model"
)

func TestApplyAndDropEvents(t *testing.T) {
	t.Parallel()

	s := New()
	gen := s.Select(&model.Memory{ID: "mem-1"})

	ok := s.ApplyEvents(gen, []model.Event{{EventID: "e1", SessionID: "s1", ActorID: "a1"}})
	require.True(t, ok)
	assert.Equal(t, 1, s.EventCount())

	ev, found := s.Event("e1")
	require.True(t, found)
	assert.Equal(t, "s1", ev.SessionID)
	assert.Equal(t, "a1", ev.ActorID)

	assert.True(t, s.DropEvent("e1"))
	assert.Equal(t, 0, s.EventCount())
	assert.False(t, s.DropEvent("e1"), "second drop must report absence")
}

func TestApplyReplacesWholesale(t *testing.T) {
	t.Parallel()

	s := New()
	gen := s.Select(&model.Memory{ID: "mem-1"})

	require.True(t, s.ApplyRecords(gen, []model.Record{{RecordID: "r1"}, {RecordID: "r2"}}))
	require.True(t, s.ApplyRecords(gen, []model.Record{{RecordID: "r3"}}))

	// Stale entries from the prior query must not linger.
	_, found := s.Record("r1")
	assert.False(t, found)
	assert.Equal(t, 1, s.RecordCount())
}

func TestStaleGenerationDiscarded(t *testing.T) {
	t.Parallel()

	s := New()
	oldGen := s.Select(&model.Memory{ID: "mem-1"})
	require.True(t, s.ApplyRecords(oldGen, []model.Record{{RecordID: "r1"}}))

	s.Select(&model.Memory{ID: "mem-2"})

	// A response from the previous selection resolves late: it must not
	// write into the new selection's view.
	assert.False(t, s.ApplyEvents(oldGen, []model.Event{{EventID: "stale"}}))
	assert.False(t, s.ApplyRecords(oldGen, []model.Record{{RecordID: "stale"}}))
	assert.Equal(t, 0, s.EventCount())
	assert.Equal(t, 0, s.RecordCount())
}

func TestSelectClearsCaches(t *testing.T) {
	t.Parallel()

	s := New()
	gen := s.Select(&model.Memory{ID: "mem-1"})
	require.True(t, s.ApplyEvents(gen, []model.Event{{EventID: "e1"}}))
	require.True(t, s.ApplyRecords(gen, []model.Record{{RecordID: "r1"}}))

	s.Select(&model.Memory{ID: "mem-2"})
	assert.Equal(t, 0, s.EventCount())
	assert.Equal(t, 0, s.RecordCount())
}

func TestDeselect(t *testing.T) {
	t.Parallel()

	s := New()
	gen := s.Select(&model.Memory{ID: "mem-1"})
	require.True(t, s.ApplyEvents(gen, []model.Event{{EventID: "e1"}}))

	s.Deselect()
	assert.Nil(t, s.Selected())
	assert.Equal(t, 0, s.EventCount())
	assert.Equal(t, 0, s.RecordCount())
}

func TestBeginRefusesConcurrentWorkflow(t *testing.T) {
	t.Parallel()

	s := New()
	_, err := s.Begin(WorkflowListEvents)
	require.NoError(t, err)

	_, err = s.Begin(WorkflowListEvents)
	assert.ErrorIs(t, err, ErrBusy)

	// Other workflows stay independent.
	_, err = s.Begin(WorkflowListRecords)
	assert.NoError(t, err)

	s.End(WorkflowListEvents)
	_, err = s.Begin(WorkflowListEvents)
	assert.NoError(t, err)
}

func TestEventsSortedNewestFirst(t *testing.T) {
	t.Parallel()

	var older, newer model.FlexTime
	require.NoError(t, older.UnmarshalJSON([]byte(`"2025-08-01T10:00:00Z"`)))
	require.NoError(t, newer.UnmarshalJSON([]byte(`"2025-08-01T11:00:00Z"`)))

	s := New()
	gen := s.Select(&model.Memory{ID: "mem-1"})
	require.True(t, s.ApplyEvents(gen, []model.Event{
		{EventID: "old", EventTimestamp: older},
		{EventID: "new", EventTimestamp: newer},
	}))

	evs := s.Events()
	require.Len(t, evs, 2)
	assert.Equal(t, "new", evs[0].EventID)
}
