package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/liakhandrii/agentcore-memory-browser/internal/format"
	"github.com/liakhandrii/agentcore-memory-browser/internal/gateway"
	"github.com/liakhandrii/agentcore-memory-browser/internal/model"
)

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runListMemories(ctx context.Context, apiURL string, asJSON bool, out io.Writer) error {
	memories, err := gateway.New(apiURL).ListMemories(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(out, memories)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tCREATED\tUPDATED")
	for _, m := range memories {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.DisplayName(), m.Status,
			format.FormatTime(m.CreatedAt), format.FormatTime(m.UpdatedAt))
	}
	return tw.Flush()
}

func runGetMemory(ctx context.Context, apiURL, memoryID string, asJSON bool, out io.Writer) error {
	m, err := gateway.New(apiURL).GetMemory(ctx, memoryID)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(out, m)
	}
	fmt.Fprintf(out, "ID:      %s\n", m.ID)
	fmt.Fprintf(out, "Name:    %s\n", m.Name)
	fmt.Fprintf(out, "ARN:     %s\n", m.ARN)
	fmt.Fprintf(out, "Status:  %s\n", m.Status)
	fmt.Fprintf(out, "Created: %s\n", format.FormatTime(m.CreatedAt))
	fmt.Fprintf(out, "Updated: %s\n", format.FormatTime(m.UpdatedAt))
	if m.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", m.Description)
	}
	fmt.Fprintf(out, "Strategies (%d):\n", len(m.Strategies))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tTYPE\tSTATUS\tDEFAULT NAMESPACE")
	for _, s := range m.Strategies {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n",
			s.StrategyID, s.Name, s.Type, s.Status, format.SimplifiedNamespace(s))
	}
	return tw.Flush()
}

func runListEvents(ctx context.Context, apiURL, memoryID, sessionID, actorID string, maxResults int, asJSON bool, out io.Writer) error {
	resp, err := gateway.New(apiURL).ListEvents(ctx, memoryID, sessionID, actorID, maxResults)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(out, resp.Events)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EVENT ID\tTIME\tPREVIEW")
	for _, ev := range resp.Events {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			ev.EventID, format.FormatTime(ev.Timestamp()),
			format.PreviewFromRaw(ev.Body(), ev.Metadata))
	}
	return tw.Flush()
}

func runListRecords(ctx context.Context, apiURL, memoryID, namespace string, maxResults int, asJSON bool, out io.Writer) error {
	resp, err := gateway.New(apiURL).ListRecords(ctx, memoryID, namespace, maxResults)
	if err != nil {
		return err
	}
	return printRecords(resp.Records, asJSON, out)
}

func runSearchRecords(ctx context.Context, apiURL, memoryID, namespace, query string, maxResults int, asJSON bool, out io.Writer) error {
	resp, err := gateway.New(apiURL).RetrieveRecords(ctx, memoryID, model.RetrieveRequest{
		Query:      query,
		Namespace:  namespace,
		MaxResults: maxResults,
	})
	if err != nil {
		return err
	}
	return printRecords(resp.Records, asJSON, out)
}

func printRecords(records []model.Record, asJSON bool, out io.Writer) error {
	if asJSON {
		return printJSON(out, records)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECORD ID\tSTRATEGY\tCREATED\tPREVIEW")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			rec.ID(), rec.MemoryStrategyID, format.FormatTime(rec.CreatedAt),
			format.PreviewFromRaw(rec.Content, rec.Metadata))
	}
	return tw.Flush()
}
