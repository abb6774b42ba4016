package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTimeUnmarshal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2025-08-01T10:30:00Z"`, time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)},
		{"epoch seconds", `1754044200`, time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)},
		{"epoch fractional", `1754044200.5`, time.Date(2025, 8, 1, 10, 30, 0, 500000000, time.UTC)},
		{"no zone", `"2025-08-01T10:30:00"`, time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ft FlexTime
			require.NoError(t, json.Unmarshal([]byte(tc.in), &ft))
			assert.True(t, ft.Time.Equal(tc.want), "got %v want %v", ft.Time, tc.want)
		})
	}

	var ft FlexTime
	assert.Error(t, json.Unmarshal([]byte(`"not a time"`), &ft))
}

func TestRecordIDAlias(t *testing.T) {
	t.Parallel()

	var r Record
	require.NoError(t, json.Unmarshal([]byte(`{"memoryRecordId":"mr-1","memoryStrategyId":"s1"}`), &r))
	assert.Equal(t, "mr-1", r.ID())

	var r2 Record
	require.NoError(t, json.Unmarshal([]byte(`{"recordId":"r-2"}`), &r2))
	assert.Equal(t, "r-2", r2.ID())
}

func TestEventTimestampFallback(t *testing.T) {
	t.Parallel()

	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{"eventId":"e1","createdAt":"2025-08-01T10:30:00Z"}`), &e))
	assert.False(t, e.Timestamp().IsZero())

	var e2 Event
	require.NoError(t, json.Unmarshal([]byte(`{"eventId":"e2","eventTimestamp":1754044200,"createdAt":"2020-01-01T00:00:00Z"}`), &e2))
	assert.Equal(t, 2025, e2.Timestamp().Year())
}

func TestEventBodyPrefersPayload(t *testing.T) {
	t.Parallel()

	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{"eventId":"e1","payload":[{"text":"hi"}],"data":{"text":"old"}}`), &e))
	assert.JSONEq(t, `[{"text":"hi"}]`, string(e.Body()))
}
