// Package gateway wraps the AgentCore memory backend REST API. Every
// operation issues exactly one HTTP request; failures surface immediately to
// the caller, never retried here.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/liakhandrii/agentcore-memory-browser/internal/metrics"
	"github.com/liakhandrii/agentcore-memory-browser/internal/model"
)

// Client talks to the memory backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client during construction in New.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the underlying http.Client timeout. This is a coarse
// safety net; prefer per-request context deadlines.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger attaches a logger used for skipped-item warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New constructs a Client for the given backend base URL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ping probes backend reachability. Used by the startup health wait, not by
// any UI workflow.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListMemories(ctx)
	return err
}

// ListMemories retrieves all memory summaries.
func (c *Client) ListMemories(ctx context.Context) ([]model.MemorySummary, error) {
	var out []model.MemorySummary
	if err := c.do(ctx, "list memories", http.MethodGet, c.baseURL+"/api/memories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMemory retrieves full detail for one memory, including strategies.
func (c *Client) GetMemory(ctx context.Context, memoryID string) (*model.Memory, error) {
	if err := requireID(memoryID, "memoryId"); err != nil {
		return nil, err
	}
	var out model.Memory
	u := fmt.Sprintf("%s/api/memories/%s", c.baseURL, url.PathEscape(memoryID))
	if err := c.do(ctx, "get memory", http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEvents lists events for a (session, actor) pair. The session and actor
// IDs are attached to each returned event; deletion needs them later.
func (c *Client) ListEvents(ctx context.Context, memoryID, sessionID, actorID string, maxResults int) (*model.ListEventsResponse, error) {
	if err := requireID(memoryID, "memoryId"); err != nil {
		return nil, err
	}
	if err := requireID(sessionID, "sessionId"); err != nil {
		return nil, err
	}
	if err := requireID(actorID, "actorId"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("session_id", sessionID)
	q.Set("actor_id", actorID)
	q.Set("max_results", strconv.Itoa(maxResults))
	u := fmt.Sprintf("%s/api/memories/%s/events?%s", c.baseURL, url.PathEscape(memoryID), q.Encode())

	var raw rawEventList
	if err := c.do(ctx, "list events", http.MethodGet, u, nil, &raw); err != nil {
		return nil, err
	}
	out := &model.ListEventsResponse{NextToken: raw.NextToken}
	for _, item := range raw.Events {
		var ev model.Event
		if err := json.Unmarshal(item, &ev); err != nil {
			c.log.Warn().Err(err).Str("memory_id", memoryID).Msg("skipping malformed event")
			continue
		}
		if ev.EventID == "" {
			c.log.Warn().Str("memory_id", memoryID).Msg("skipping event without eventId")
			continue
		}
		ev.SessionID = sessionID
		ev.ActorID = actorID
		out.Events = append(out.Events, ev)
	}
	return out, nil
}

// CreateEvent appends a new event to a session.
func (c *Client) CreateEvent(ctx context.Context, memoryID string, req model.CreateEventRequest) (*model.CreateEventResponse, error) {
	if err := requireID(memoryID, "memoryId"); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/memories/%s/records", c.baseURL, url.PathEscape(memoryID))
	var out model.CreateEventResponse
	if err := c.do(ctx, "create event", http.MethodPost, u, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEvent removes one event from a session.
func (c *Client) DeleteEvent(ctx context.Context, memoryID, eventID, sessionID, actorID string) (*model.DeleteResult, error) {
	if err := requireID(memoryID, "memoryId"); err != nil {
		return nil, err
	}
	if err := requireID(eventID, "eventId"); err != nil {
		return nil, err
	}
	if err := requireID(sessionID, "sessionId"); err != nil {
		return nil, err
	}
	if err := requireID(actorID, "actorId"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("session_id", sessionID)
	q.Set("actor_id", actorID)
	u := fmt.Sprintf("%s/api/memories/%s/events/%s?%s",
		c.baseURL, url.PathEscape(memoryID), url.PathEscape(eventID), q.Encode())
	var out model.DeleteResult
	if err := c.do(ctx, "delete event", http.MethodDelete, u, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRecords lists records within a namespace. The namespace is attached to
// each returned record; deletion needs it later.
func (c *Client) ListRecords(ctx context.Context, memoryID, namespace string, maxResults int) (*model.ListRecordsResponse, error) {
	if err := requireID(memoryID, "memoryId"); err != nil {
		return nil, err
	}
	if err := requireID(namespace, "namespace"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("namespace", namespace)
	q.Set("max_results", strconv.Itoa(maxResults))
	u := fmt.Sprintf("%s/api/memories/%s/records?%s", c.baseURL, url.PathEscape(memoryID), q.Encode())

	var raw rawRecordList
	if err := c.do(ctx, "list records", http.MethodGet, u, nil, &raw); err != nil {
		return nil, err
	}
	return c.decodeRecords(raw, memoryID, namespace), nil
}

// RetrieveRecords runs a semantic search within a namespace.
func (c *Client) RetrieveRecords(ctx context.Context, memoryID string, req model.RetrieveRequest) (*model.ListRecordsResponse, error) {
	if err := requireID(memoryID, "memoryId"); err != nil {
		return nil, err
	}
	if err := requireID(req.Query, "query"); err != nil {
		return nil, err
	}
	if err := requireID(req.Namespace, "namespace"); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/api/memories/%s/retrieve", c.baseURL, url.PathEscape(memoryID))
	var raw rawRecordList
	if err := c.do(ctx, "retrieve records", http.MethodPost, u, req, &raw); err != nil {
		return nil, err
	}
	return c.decodeRecords(raw, memoryID, req.Namespace), nil
}

// DeleteRecord removes one record from a namespace.
func (c *Client) DeleteRecord(ctx context.Context, memoryID, recordID, namespace string) (*model.DeleteResult, error) {
	if err := requireID(memoryID, "memoryId"); err != nil {
		return nil, err
	}
	if err := requireID(recordID, "recordId"); err != nil {
		return nil, err
	}
	if err := requireID(namespace, "namespace"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("namespace", namespace)
	u := fmt.Sprintf("%s/api/memories/%s/records/%s?%s",
		c.baseURL, url.PathEscape(memoryID), url.PathEscape(recordID), q.Encode())
	var out model.DeleteResult
	if err := c.do(ctx, "delete record", http.MethodDelete, u, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List envelopes are decoded with raw items so one malformed item (an
// unparseable timestamp, a wrong field type) is skipped instead of failing
// the whole response.
type rawEventList struct {
	Events    []json.RawMessage `json:"events"`
	NextToken string            `json:"nextToken"`
}

type rawRecordList struct {
	Records   []json.RawMessage `json:"records"`
	NextToken string            `json:"nextToken"`
}

func (c *Client) decodeRecords(raw rawRecordList, memoryID, namespace string) *model.ListRecordsResponse {
	out := &model.ListRecordsResponse{NextToken: raw.NextToken}
	for _, item := range raw.Records {
		var rec model.Record
		if err := json.Unmarshal(item, &rec); err != nil {
			c.log.Warn().Err(err).Str("memory_id", memoryID).Msg("skipping malformed record")
			continue
		}
		if rec.ID() == "" {
			c.log.Warn().Str("memory_id", memoryID).Msg("skipping record without recordId")
			continue
		}
		rec.Namespace = namespace
		out.Records = append(out.Records, rec)
	}
	return out
}

// do issues one request and decodes a 2xx JSON body into out. Any other
// status becomes an *APIError.
func (c *Client) do(ctx context.Context, op, method, rawURL string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.GatewayRequests.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode/100 != 2 {
		metrics.GatewayRequests.WithLabelValues(op, "error").Inc()
		return newAPIError(op, resp)
	}
	metrics.GatewayRequests.WithLabelValues(op, "success").Inc()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func requireID(v, name string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}
