// memory-browser serves a web UI for browsing AgentCore memory resources
// and exposes the same read operations as terminal subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liakhandrii/agentcore-memory-browser/browserservice"
)

// newRootCmd builds the command tree. Per-command option values are read from
// each command's own flag set so one subcommand's defaults never leak into
// another's.
func newRootCmd() *cobra.Command {
	var (
		apiFlag  string
		jsonFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "memory-browser",
		Short: "Browse AgentCore memory resources",
	}
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Memory backend base URL")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print raw JSON instead of a table")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return browserservice.Run()
		},
	})

	memoriesCmd := &cobra.Command{
		Use:   "memories",
		Short: "Memory operations",
	}
	memoriesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all memories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListMemories(cmd.Context(), apiFlag, jsonFlag, os.Stdout)
		},
	})
	memoriesCmd.AddCommand(&cobra.Command{
		Use:   "get <memory-id>",
		Short: "Show full detail for one memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGetMemory(cmd.Context(), apiFlag, args[0], jsonFlag, os.Stdout)
		},
	})
	rootCmd.AddCommand(memoriesCmd)

	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "List events for a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			memoryID, _ := cmd.Flags().GetString("memory")
			sessionID, _ := cmd.Flags().GetString("session")
			actorID, _ := cmd.Flags().GetString("actor")
			max, _ := cmd.Flags().GetInt("max")
			if memoryID == "" {
				return fmt.Errorf("--memory required")
			}
			return runListEvents(cmd.Context(), apiFlag, memoryID, sessionID, actorID, max, jsonFlag, os.Stdout)
		},
	}
	eventsCmd.Flags().StringP("memory", "m", "", "Memory ID (required)")
	eventsCmd.Flags().StringP("session", "s", "", "Session ID (required)")
	eventsCmd.Flags().StringP("actor", "u", "", "Actor ID (required)")
	eventsCmd.Flags().IntP("max", "n", 50, "Maximum results")
	_ = eventsCmd.MarkFlagRequired("session")
	_ = eventsCmd.MarkFlagRequired("actor")
	rootCmd.AddCommand(eventsCmd)

	recordsCmd := &cobra.Command{
		Use:   "records",
		Short: "Record operations",
	}
	listRecordsCmd := &cobra.Command{
		Use:   "list",
		Short: "List records in a namespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			memoryID, _ := cmd.Flags().GetString("memory")
			namespace, _ := cmd.Flags().GetString("namespace")
			max, _ := cmd.Flags().GetInt("max")
			if memoryID == "" {
				return fmt.Errorf("--memory required")
			}
			return runListRecords(cmd.Context(), apiFlag, memoryID, namespace, max, jsonFlag, os.Stdout)
		},
	}
	listRecordsCmd.Flags().StringP("memory", "m", "", "Memory ID (required)")
	listRecordsCmd.Flags().StringP("namespace", "N", "", "Namespace (required)")
	listRecordsCmd.Flags().IntP("max", "n", 50, "Maximum results")
	_ = listRecordsCmd.MarkFlagRequired("namespace")
	recordsCmd.AddCommand(listRecordsCmd)

	searchRecordsCmd := &cobra.Command{
		Use:   "search",
		Short: "Semantic search for records in a namespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			memoryID, _ := cmd.Flags().GetString("memory")
			namespace, _ := cmd.Flags().GetString("namespace")
			query, _ := cmd.Flags().GetString("query")
			max, _ := cmd.Flags().GetInt("max")
			if memoryID == "" {
				return fmt.Errorf("--memory required")
			}
			return runSearchRecords(cmd.Context(), apiFlag, memoryID, namespace, query, max, jsonFlag, os.Stdout)
		},
	}
	searchRecordsCmd.Flags().StringP("memory", "m", "", "Memory ID (required)")
	searchRecordsCmd.Flags().StringP("namespace", "N", "", "Namespace (required)")
	searchRecordsCmd.Flags().StringP("query", "q", "", "Search query text (required)")
	searchRecordsCmd.Flags().IntP("max", "n", 10, "Maximum results")
	_ = searchRecordsCmd.MarkFlagRequired("namespace")
	_ = searchRecordsCmd.MarkFlagRequired("query")
	recordsCmd.AddCommand(searchRecordsCmd)
	rootCmd.AddCommand(recordsCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
