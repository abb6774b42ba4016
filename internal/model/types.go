// Package model defines the domain types exchanged with the AgentCore
// memory backend.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// FlexTime unmarshals timestamps that arrive as RFC3339 strings, epoch
// seconds (integer or fractional), or null.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		sec, frac := math.Modf(n)
		t.Time = time.Unix(int64(sec), int64(frac*1e9)).UTC()
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp: unrecognized format %q", raw)
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// MemorySummary is one entry of the memory listing.
type MemorySummary struct {
	ID          string   `json:"id"`
	ARN         string   `json:"arn"`
	Status      string   `json:"status"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	CreatedAt   FlexTime `json:"createdAt"`
	UpdatedAt   FlexTime `json:"updatedAt"`
}

// DisplayName returns the name when present, falling back to the ID.
func (m MemorySummary) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// Strategy is a retrieval/storage policy configured within a memory.
type Strategy struct {
	StrategyID  string   `json:"strategyId"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Namespaces  []string `json:"namespaces"`
	Description string   `json:"description,omitempty"`
	CreatedAt   FlexTime `json:"createdAt"`
	UpdatedAt   FlexTime `json:"updatedAt"`
}

// Memory is the full detail of a memory, including its strategies.
type Memory struct {
	ID                     string     `json:"id"`
	ARN                    string     `json:"arn"`
	Name                   string     `json:"name"`
	Status                 string     `json:"status"`
	Description            string     `json:"description,omitempty"`
	EncryptionKeyARN       string     `json:"encryptionKeyArn,omitempty"`
	MemoryExecutionRoleARN string     `json:"memoryExecutionRoleArn,omitempty"`
	Strategies             []Strategy `json:"strategies"`
	CreatedAt              FlexTime   `json:"createdAt"`
	UpdatedAt              FlexTime   `json:"updatedAt"`
}

// Event is a raw interaction record. SessionID and ActorID are not part of
// the server object; the gateway attaches the query values at fetch time
// because deletion requires them.
type Event struct {
	EventID        string          `json:"eventId"`
	EventType      string          `json:"eventType,omitempty"`
	EventTimestamp FlexTime        `json:"eventTimestamp"`
	CreatedAt      FlexTime        `json:"createdAt"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	Data           json.RawMessage `json:"data,omitempty"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	SessionID      string          `json:"sessionId,omitempty"`
	ActorID        string          `json:"actorId,omitempty"`
}

// Timestamp prefers eventTimestamp, falling back to createdAt.
func (e Event) Timestamp() FlexTime {
	if !e.EventTimestamp.IsZero() {
		return e.EventTimestamp
	}
	return e.CreatedAt
}

// Body prefers the payload field, falling back to data.
func (e Event) Body() json.RawMessage {
	if len(e.Payload) > 0 {
		return e.Payload
	}
	return e.Data
}

// Record is a processed memory item. Namespace is not part of the server
// object; the gateway attaches the query value at fetch time because
// deletion requires it.
type Record struct {
	RecordID         string          `json:"recordId,omitempty"`
	MemoryRecordID   string          `json:"memoryRecordId,omitempty"`
	MemoryStrategyID string          `json:"memoryStrategyId,omitempty"`
	CreatedAt        FlexTime        `json:"createdAt"`
	UpdatedAt        FlexTime        `json:"updatedAt"`
	Content          json.RawMessage `json:"content,omitempty"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
	Namespace        string          `json:"namespace,omitempty"`
}

// ID returns whichever record identifier the backend populated.
func (r Record) ID() string {
	if r.RecordID != "" {
		return r.RecordID
	}
	return r.MemoryRecordID
}

// ListEventsResponse is the envelope of the event listing endpoint.
type ListEventsResponse struct {
	Events    []Event `json:"events"`
	NextToken string  `json:"nextToken,omitempty"`
}

// ListRecordsResponse is the envelope of the record list/retrieve endpoints.
type ListRecordsResponse struct {
	Records   []Record `json:"records"`
	NextToken string   `json:"nextToken,omitempty"`
}

// CreateEventRequest creates a new event (and, through the backend's
// extraction pipeline, memory records).
type CreateEventRequest struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	Role        string `json:"role"`
	ActorID     string `json:"actorId"`
	SessionID   string `json:"sessionId"`
}

// CreateEventResponse acknowledges event creation.
type CreateEventResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID string `json:"eventId"`
}

// RetrieveRequest is the body of the semantic search endpoint.
type RetrieveRequest struct {
	Query      string `json:"query"`
	Namespace  string `json:"namespace"`
	MaxResults int    `json:"maxResults,omitempty"`
}

// DeleteResult acknowledges a deletion.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
