// Package view renders typed view-models into HTML. Renderers take a value
// and a writer and never touch the network or the session directly, so they
// can be exercised without a live page.
package view

import (
	"github.com/liakhandrii/agentcore-memory-browser/internal/format"
	"github.com/liakhandrii/agentcore-memory-browser/internal/model"
)

// Item type and action markers used by the delegated click dispatch.
const (
	ItemTypeEvent  = "event"
	ItemTypeRecord = "record"

	ActionView   = "view"
	ActionDelete = "delete"
)

// MemoryOption is one entry of the memory selector. It carries the summary
// fields so selecting does not need a second fetch to show them.
type MemoryOption struct {
	ID       string
	Label    string
	Status   string
	Badge    string
	Created  string
	Updated  string
	Selected bool
}

// StrategyView is one strategy tab.
type StrategyView struct {
	Index            int
	Active           bool
	StrategyID       string
	Name             string
	Type             string
	Status           string
	Badge            string
	Created          string
	Updated          string
	Description      string
	Namespaces       []string
	DefaultNamespace string
}

// MemoryDetail is the detail panel of the selected memory. Optional fields
// are empty strings and hidden by the template.
type MemoryDetail struct {
	ID               string
	Name             string
	ARN              string
	Status           string
	Badge            string
	Created          string
	Updated          string
	Description      string
	EncryptionKeyARN string
	ExecutionRoleARN string
	Strategies       []StrategyView
}

// Row is one table row; ItemType/ItemID drive the delegated click dispatch.
type Row struct {
	ItemType string
	ItemID   string
	Time     string
	Label    string
	Preview  string
}

// Table is a rendered result set.
type Table struct {
	Kind  string // "event" or "record"
	Title string
	Count int
	Rows  []Row
}

// Banner is an inline message scoped to one workflow's results container.
type Banner struct {
	Kind    string // "warning", "error", "info", "loading"
	Message string
}

// Page is the full-page view-model.
type Page struct {
	CacheBust string
	Notice    *Banner
	Memories  []MemoryOption
	Detail    *MemoryDetail
}

// MemoryOptions builds selector entries from memory summaries.
func MemoryOptions(memories []model.MemorySummary, selectedID string) []MemoryOption {
	out := make([]MemoryOption, 0, len(memories))
	for _, m := range memories {
		out = append(out, MemoryOption{
			ID:       m.ID,
			Label:    m.DisplayName(),
			Status:   m.Status,
			Badge:    format.StatusBadge(m.Status),
			Created:  format.FormatTime(m.CreatedAt),
			Updated:  format.FormatTime(m.UpdatedAt),
			Selected: m.ID == selectedID,
		})
	}
	return out
}

// NewMemoryDetail builds the detail panel view-model, including one tab per
// strategy with the first tab active.
func NewMemoryDetail(m *model.Memory) *MemoryDetail {
	d := &MemoryDetail{
		ID:               m.ID,
		Name:             m.Name,
		ARN:              m.ARN,
		Status:           m.Status,
		Badge:            format.StatusBadge(m.Status),
		Created:          format.FormatTime(m.CreatedAt),
		Updated:          format.FormatTime(m.UpdatedAt),
		Description:      m.Description,
		EncryptionKeyARN: m.EncryptionKeyARN,
		ExecutionRoleARN: m.MemoryExecutionRoleARN,
	}
	for i, s := range m.Strategies {
		d.Strategies = append(d.Strategies, StrategyView{
			Index:            i,
			Active:           i == 0,
			StrategyID:       s.StrategyID,
			Name:             s.Name,
			Type:             s.Type,
			Status:           s.Status,
			Badge:            format.StatusBadge(s.Status),
			Created:          format.FormatTime(s.CreatedAt),
			Updated:          format.FormatTime(s.UpdatedAt),
			Description:      s.Description,
			Namespaces:       s.Namespaces,
			DefaultNamespace: format.SimplifiedNamespace(s),
		})
	}
	return d
}

// EventTable builds the event result table.
func EventTable(evs []model.Event) Table {
	t := Table{Kind: ItemTypeEvent, Title: "Events", Count: len(evs)}
	for _, ev := range evs {
		label := ev.EventType
		if label == "" {
			label = "event"
		}
		t.Rows = append(t.Rows, Row{
			ItemType: ItemTypeEvent,
			ItemID:   ev.EventID,
			Time:     format.FormatTime(ev.Timestamp()),
			Label:    label,
			Preview:  format.PreviewFromRaw(ev.Body(), ev.Metadata),
		})
	}
	return t
}

// RecordTable builds the record result table.
func RecordTable(recs []model.Record) Table {
	t := Table{Kind: ItemTypeRecord, Title: "Records", Count: len(recs)}
	for _, rec := range recs {
		label := rec.MemoryStrategyID
		if label == "" {
			label = "record"
		}
		t.Rows = append(t.Rows, Row{
			ItemType: ItemTypeRecord,
			ItemID:   rec.ID(),
			Time:     format.FormatTime(rec.CreatedAt),
			Label:    label,
			Preview:  format.PreviewFromRaw(rec.Content, rec.Metadata),
		})
	}
	return t
}
