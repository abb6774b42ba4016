package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, root *cobra.Command, path ...string) *cobra.Command {
	t.Helper()
	cmd := root
	for _, name := range path {
		next, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		require.NotEqual(t, cmd, next, "subcommand %q not found", name)
		cmd = next
	}
	return cmd
}

// Each subcommand owns its --max flag; the defaults advertised in help are
// the defaults the command actually runs with.
func TestMaxFlagDefaultsPerCommand(t *testing.T) {
	root := newRootCmd()

	events := findCommand(t, root, "events")
	listRecords := findCommand(t, root, "records", "list")
	searchRecords := findCommand(t, root, "records", "search")

	eventsMax, err := events.Flags().GetInt("max")
	require.NoError(t, err)
	assert.Equal(t, 50, eventsMax)

	listMax, err := listRecords.Flags().GetInt("max")
	require.NoError(t, err)
	assert.Equal(t, 50, listMax)

	searchMax, err := searchRecords.Flags().GetInt("max")
	require.NoError(t, err)
	assert.Equal(t, 10, searchMax)

	// Search's lower default must not bleed into the other commands' values.
	assert.Equal(t, "50", events.Flags().Lookup("max").DefValue)
	assert.Equal(t, "50", listRecords.Flags().Lookup("max").DefValue)
}
