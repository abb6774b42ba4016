// Package api wires the browser's HTTP surface: the page, the workflow
// fragment endpoints, and the item view/delete dispatch.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/liakhandrii/agentcore-memory-browser/internal/api/respond"
	"github.com/liakhandrii/agentcore-memory-browser/internal/gateway"
	"github.com/liakhandrii/agentcore-memory-browser/internal/metrics"
	"github.com/liakhandrii/agentcore-memory-browser/internal/model"
	"github.com/liakhandrii/agentcore-memory-browser/internal/session"
	"github.com/liakhandrii/agentcore-memory-browser/internal/view"
)

// Handler orchestrates gateway calls, session updates, and view rendering.
type Handler struct {
	gw         *gateway.Client
	sess       *session.ViewSession
	log        zerolog.Logger
	maxResults int
	cacheBust  string
}

// NewHandler builds the handler. The cache-busting token is fixed for the
// process lifetime so stale pages reload after a restart.
func NewHandler(gw *gateway.Client, sess *session.ViewSession, log zerolog.Logger, maxResults int) *Handler {
	return &Handler{
		gw:         gw,
		sess:       sess,
		log:        log,
		maxResults: maxResults,
		cacheBust:  uuid.NewString(),
	}
}

// Home serves the main page. Requests without the current cache-busting
// token are redirected to it with caching disabled.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("v"); v != h.cacheBust {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		http.Redirect(w, r, "/?v="+h.cacheBust, http.StatusFound)
		return
	}

	p := view.Page{CacheBust: h.cacheBust}
	memories, err := h.gw.ListMemories(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list memories")
		p.Notice = &view.Banner{Kind: "error", Message: "Error loading memories: " + err.Error()}
	}

	selectedID := ""
	if m := h.sess.Selected(); m != nil {
		selectedID = m.ID
		p.Detail = view.NewMemoryDetail(m)
	}
	p.Memories = view.MemoryOptions(memories, selectedID)

	h.renderPage(w, p)
}

// Select changes (or clears) the current memory, then redirects back to the
// page. Selecting discards both item caches.
func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	memoryID := strings.TrimSpace(r.FormValue("memory_id"))
	if memoryID == "" {
		h.sess.Deselect()
		http.Redirect(w, r, "/?v="+h.cacheBust, http.StatusSeeOther)
		return
	}

	m, err := h.gw.GetMemory(r.Context(), memoryID)
	if err != nil {
		h.log.Error().Err(err).Str("memory_id", memoryID).Msg("failed to load memory detail")
		h.sess.Deselect()
		p := view.Page{
			CacheBust: h.cacheBust,
			Notice:    &view.Banner{Kind: "error", Message: "Error loading memory: " + err.Error()},
		}
		if memories, lerr := h.gw.ListMemories(r.Context()); lerr == nil {
			p.Memories = view.MemoryOptions(memories, "")
		}
		h.renderPage(w, p)
		return
	}

	h.sess.Select(m)
	http.Redirect(w, r, "/?v="+h.cacheBust, http.StatusSeeOther)
}

// ListEvents runs the list-events workflow and returns a table fragment.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	mem := h.sess.Selected()
	if mem == nil {
		h.warn(w, session.WorkflowListEvents, "Select a memory first.")
		return
	}
	sessionID := strings.TrimSpace(r.FormValue("session_id"))
	actorID := strings.TrimSpace(r.FormValue("actor_id"))
	if sessionID == "" || actorID == "" {
		h.warn(w, session.WorkflowListEvents, "Please provide both Session ID and Actor ID.")
		return
	}

	gen, err := h.sess.Begin(session.WorkflowListEvents)
	if err != nil {
		h.busy(w, session.WorkflowListEvents)
		return
	}
	defer h.sess.End(session.WorkflowListEvents)

	resp, err := h.gw.ListEvents(r.Context(), mem.ID, sessionID, actorID, h.maxResults)
	if err != nil {
		h.workflowError(w, session.WorkflowListEvents, "Error loading events: "+err.Error())
		return
	}
	if !h.sess.ApplyEvents(gen, resp.Events) {
		h.stale(w, session.WorkflowListEvents)
		return
	}
	metrics.WorkflowRuns.WithLabelValues(string(session.WorkflowListEvents), "success").Inc()
	h.fragment(w, http.StatusOK, func() error {
		return view.RenderTable(w, view.EventTable(h.sess.Events()))
	})
}

// AddEvent runs the add-event workflow and returns a banner fragment.
func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	mem := h.sess.Selected()
	if mem == nil {
		h.warn(w, session.WorkflowAddEvent, "Select a memory first.")
		return
	}
	content := strings.TrimSpace(r.FormValue("content"))
	if content == "" {
		h.warn(w, session.WorkflowAddEvent, "Please enter content for the event.")
		return
	}
	contentType := r.FormValue("content_type")
	if contentType == "" {
		contentType = "text"
	}
	if contentType == "json" && !json.Valid([]byte(content)) {
		h.warn(w, session.WorkflowAddEvent, "Content is not valid JSON.")
		return
	}
	role := r.FormValue("role")
	if role == "" {
		role = "USER"
	}
	sessionID := strings.TrimSpace(r.FormValue("session_id"))
	if sessionID == "" {
		sessionID = "default"
	}
	actorID := strings.TrimSpace(r.FormValue("actor_id"))
	if actorID == "" {
		actorID = "default"
	}

	if _, err := h.sess.Begin(session.WorkflowAddEvent); err != nil {
		h.busy(w, session.WorkflowAddEvent)
		return
	}
	defer h.sess.End(session.WorkflowAddEvent)

	res, err := h.gw.CreateEvent(r.Context(), mem.ID, model.CreateEventRequest{
		Content:     content,
		ContentType: contentType,
		Role:        role,
		ActorID:     actorID,
		SessionID:   sessionID,
	})
	if err != nil {
		h.workflowError(w, session.WorkflowAddEvent, "Error adding event: "+err.Error())
		return
	}
	metrics.WorkflowRuns.WithLabelValues(string(session.WorkflowAddEvent), "success").Inc()
	msg := "Event created"
	if res.EventID != "" {
		msg = fmt.Sprintf("Event created: %s", res.EventID)
	}
	h.fragment(w, http.StatusOK, func() error {
		return view.RenderBanner(w, view.Banner{Kind: "info", Message: msg})
	})
}

// ListRecords runs the list-records workflow and returns a table fragment.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	mem := h.sess.Selected()
	if mem == nil {
		h.warn(w, session.WorkflowListRecords, "Select a memory first.")
		return
	}
	namespace := strings.TrimSpace(r.FormValue("namespace"))
	if namespace == "" {
		h.warn(w, session.WorkflowListRecords, "Please provide a namespace.")
		return
	}

	gen, err := h.sess.Begin(session.WorkflowListRecords)
	if err != nil {
		h.busy(w, session.WorkflowListRecords)
		return
	}
	defer h.sess.End(session.WorkflowListRecords)

	resp, err := h.gw.ListRecords(r.Context(), mem.ID, namespace, h.maxResults)
	if err != nil {
		h.workflowError(w, session.WorkflowListRecords, "Error loading records: "+err.Error())
		return
	}
	if !h.sess.ApplyRecords(gen, resp.Records) {
		h.stale(w, session.WorkflowListRecords)
		return
	}
	metrics.WorkflowRuns.WithLabelValues(string(session.WorkflowListRecords), "success").Inc()
	h.fragment(w, http.StatusOK, func() error {
		return view.RenderTable(w, view.RecordTable(h.sess.Records()))
	})
}

// RetrieveRecords runs the semantic-search workflow and returns a table
// fragment. A failure leaves the record cache from the prior query intact.
func (h *Handler) RetrieveRecords(w http.ResponseWriter, r *http.Request) {
	mem := h.sess.Selected()
	if mem == nil {
		h.warn(w, session.WorkflowRetrieveRecords, "Select a memory first.")
		return
	}
	query := strings.TrimSpace(r.FormValue("query"))
	namespace := strings.TrimSpace(r.FormValue("namespace"))
	if query == "" || namespace == "" {
		h.warn(w, session.WorkflowRetrieveRecords, "Please provide both a query and a namespace.")
		return
	}

	gen, err := h.sess.Begin(session.WorkflowRetrieveRecords)
	if err != nil {
		h.busy(w, session.WorkflowRetrieveRecords)
		return
	}
	defer h.sess.End(session.WorkflowRetrieveRecords)

	resp, err := h.gw.RetrieveRecords(r.Context(), mem.ID, model.RetrieveRequest{
		Query:      query,
		Namespace:  namespace,
		MaxResults: h.maxResults,
	})
	if err != nil {
		h.workflowError(w, session.WorkflowRetrieveRecords, "Error retrieving records: "+err.Error())
		return
	}
	if !h.sess.ApplyRecords(gen, resp.Records) {
		h.stale(w, session.WorkflowRetrieveRecords)
		return
	}
	metrics.WorkflowRuns.WithLabelValues(string(session.WorkflowRetrieveRecords), "success").Inc()
	h.fragment(w, http.StatusOK, func() error {
		return view.RenderTable(w, view.RecordTable(h.sess.Records()))
	})
}

// ItemJSON resolves the full cached object for the JSON modal.
func (h *Handler) ItemJSON(w http.ResponseWriter, r *http.Request) {
	h.dispatchItem(w, r, r.URL.Query().Get("item_type"), view.ActionView, r.URL.Query().Get("item_id"))
}

// DeleteItem runs the deletion side workflow. On success the item is dropped
// from the cache and the new count returned; a failure leaves state unchanged.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	h.dispatchItem(w, r, r.FormValue("item_type"), view.ActionDelete, r.FormValue("item_id"))
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --------------------------------------------------------------------
// Item dispatch
// --------------------------------------------------------------------

type itemKey struct {
	ItemType string
	Action   string
}

// itemDispatch maps the delegated (item-type, action) markers to handlers.
var itemDispatch = map[itemKey]func(h *Handler, w http.ResponseWriter, r *http.Request, id string){
	{view.ItemTypeEvent, view.ActionView}:    (*Handler).viewEvent,
	{view.ItemTypeEvent, view.ActionDelete}:  (*Handler).deleteEvent,
	{view.ItemTypeRecord, view.ActionView}:   (*Handler).viewRecord,
	{view.ItemTypeRecord, view.ActionDelete}: (*Handler).deleteRecord,
}

func (h *Handler) dispatchItem(w http.ResponseWriter, r *http.Request, itemType, action, id string) {
	if id == "" {
		respond.WriteBadRequest(w, "item_id is required")
		return
	}
	fn, ok := itemDispatch[itemKey{ItemType: itemType, Action: action}]
	if !ok {
		respond.WriteBadRequest(w, fmt.Sprintf("unknown item action %q/%q", itemType, action))
		return
	}
	fn(h, w, r, id)
}

func (h *Handler) viewEvent(w http.ResponseWriter, r *http.Request, id string) {
	ev, ok := h.sess.Event(id)
	if !ok {
		respond.WriteNotFound(w, "event is no longer cached")
		return
	}
	respond.WriteJSON(w, http.StatusOK, ev)
}

func (h *Handler) viewRecord(w http.ResponseWriter, r *http.Request, id string) {
	rec, ok := h.sess.Record(id)
	if !ok {
		respond.WriteNotFound(w, "record is no longer cached")
		return
	}
	respond.WriteJSON(w, http.StatusOK, rec)
}

type deleteAck struct {
	Success  bool   `json:"success"`
	ItemType string `json:"itemType"`
	Count    int    `json:"count"`
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request, id string) {
	mem := h.sess.Selected()
	if mem == nil {
		respond.WriteBadRequest(w, "no memory selected")
		return
	}
	ev, ok := h.sess.Event(id)
	if !ok {
		respond.WriteNotFound(w, "event is no longer cached")
		return
	}
	if _, err := h.gw.DeleteEvent(r.Context(), mem.ID, id, ev.SessionID, ev.ActorID); err != nil {
		respond.WriteError(w, upstreamStatus(err), err.Error())
		return
	}
	h.sess.DropEvent(id)
	h.log.Info().Str("memory_id", mem.ID).Str("event_id", id).Msg("event deleted")
	respond.WriteJSON(w, http.StatusOK, deleteAck{Success: true, ItemType: view.ItemTypeEvent, Count: h.sess.EventCount()})
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request, id string) {
	mem := h.sess.Selected()
	if mem == nil {
		respond.WriteBadRequest(w, "no memory selected")
		return
	}
	rec, ok := h.sess.Record(id)
	if !ok {
		respond.WriteNotFound(w, "record is no longer cached")
		return
	}
	if _, err := h.gw.DeleteRecord(r.Context(), mem.ID, id, rec.Namespace); err != nil {
		respond.WriteError(w, upstreamStatus(err), err.Error())
		return
	}
	h.sess.DropRecord(id)
	h.log.Info().Str("memory_id", mem.ID).Str("record_id", id).Msg("record deleted")
	respond.WriteJSON(w, http.StatusOK, deleteAck{Success: true, ItemType: view.ItemTypeRecord, Count: h.sess.RecordCount()})
}

// upstreamStatus maps a gateway failure onto the status returned to the page
// script: backend statuses pass through, anything else is a bad gateway.
func upstreamStatus(err error) int {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

// --------------------------------------------------------------------
// Rendering helpers
// --------------------------------------------------------------------

func (h *Handler) renderPage(w http.ResponseWriter, p view.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderPage(w, p); err != nil {
		h.log.Error().Err(err).Msg("failed to render page")
	}
}

func (h *Handler) fragment(w http.ResponseWriter, status int, render func() error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := render(); err != nil {
		h.log.Error().Err(err).Msg("failed to render fragment")
	}
}

func (h *Handler) warn(w http.ResponseWriter, wf session.Workflow, msg string) {
	metrics.WorkflowRuns.WithLabelValues(string(wf), "invalid").Inc()
	h.fragment(w, http.StatusUnprocessableEntity, func() error {
		return view.RenderBanner(w, view.Banner{Kind: "warning", Message: msg})
	})
}

func (h *Handler) busy(w http.ResponseWriter, wf session.Workflow) {
	metrics.WorkflowRuns.WithLabelValues(string(wf), "busy").Inc()
	h.fragment(w, http.StatusConflict, func() error {
		return view.RenderBanner(w, view.Banner{Kind: "warning", Message: "A request is already in progress."})
	})
}

func (h *Handler) stale(w http.ResponseWriter, wf session.Workflow) {
	metrics.WorkflowRuns.WithLabelValues(string(wf), "stale").Inc()
	h.fragment(w, http.StatusOK, func() error {
		return view.RenderBanner(w, view.Banner{Kind: "info", Message: "Selection changed while loading; results discarded."})
	})
}

func (h *Handler) workflowError(w http.ResponseWriter, wf session.Workflow, msg string) {
	metrics.WorkflowRuns.WithLabelValues(string(wf), "error").Inc()
	h.fragment(w, http.StatusBadGateway, func() error {
		return view.RenderBanner(w, view.Banner{Kind: "error", Message: msg})
	})
}
