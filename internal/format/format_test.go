package format

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liakhandrii/agentcore-memory-browser/internal/model"
)

func TestStatusBadge(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"AVAILABLE": "success",
		"active":    "success",
		"Creating":  "warning",
		"UPDATING":  "warning",
		"DELETING":  "danger",
		"failed":    "danger",
		"PENDING":   "secondary",
		"":          "secondary",
	}
	for status, want := range cases {
		assert.Equal(t, want, StatusBadge(status), "status %q", status)
	}
}

func TestSimplifiedNamespace(t *testing.T) {
	t.Parallel()

	s := model.Strategy{
		StrategyID: "S1",
		Namespaces: []string{"/strategy/{memoryStrategyId}/"},
	}
	assert.Equal(t, "/strategy/S1/", SimplifiedNamespace(s))

	assert.Equal(t, "/default/", SimplifiedNamespace(model.Strategy{StrategyID: "S1"}))

	// No placeholder: pattern passes through untouched.
	plain := model.Strategy{StrategyID: "S2", Namespaces: []string{"/facts/user-1/"}}
	assert.Equal(t, "/facts/user-1/", SimplifiedNamespace(plain))
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "—", FormatTime(model.FlexTime{}))

	var ft model.FlexTime
	require.NoError(t, ft.UnmarshalJSON([]byte(`"2025-08-01T10:30:00Z"`)))
	assert.Equal(t, "2025-08-01 10:30:00", FormatTime(ft))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde...", Truncate("abcdefgh", 5))

	// Rune counting: a multibyte character at the boundary is kept whole,
	// never split into invalid UTF-8.
	assert.Equal(t, "héllo", Truncate("héllo", 5))
	assert.Equal(t, "日本語...", Truncate("日本語のテキスト", 3))
	assert.True(t, utf8.ValidString(Truncate("aaéé", 3)))
}
