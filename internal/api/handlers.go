package api

import (
	"encoding/json"
	"net/http"

	"github.com/blockedby/openmeasures-gateway/internal/formatter"
	"github.com/blockedby/openmeasures-gateway/internal/logger"
	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
)

// ServiceName identifies the gateway in health responses.
const ServiceName = "Open Measures API Server"

// requestTimeHeader carries the caller-side timestamp echoed into the
// created field of chat-completion responses.
const requestTimeHeader = "X-Request-Time"

// Handler serves the gateway HTTP API.
type Handler struct {
	gw Gateway
}

// NewHandler creates an HTTP handler backed by the gateway service.
func NewHandler(gw Gateway) *Handler {
	return &Handler{gw: gw}
}

// Health returns service liveness.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Service: ServiceName})
}

// Sites returns the platform registry.
// GET /sites
func (h *Handler) Sites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SitesResponse{
		Sites:      openmeasures.Sites,
		QueryTypes: openmeasures.QueryTypes,
	})
}

// Search interprets a natural-language query, runs it against Open
// Measures, and answers in the shape the caller asked for: the raw
// search envelope for simple requests, a chat-completion object for chat
// requests. Chat responses are always HTTP 200; downstream failures are
// described inside the assistant message.
// POST /search
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Missing request body"})
		return
	}

	chat := req.IsChatFormat()
	query := req.ExtractQuery()
	if query == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "Missing query. Provide either 'query' field or 'messages' array",
		})
		return
	}

	if !h.gw.HasCredential() {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Claude API key not configured",
		})
		return
	}

	ctx := r.Context()
	created := formatter.Created(r.Header.Get(requestTimeHeader))

	params, err := h.gw.Interpret(ctx, query)
	if err != nil {
		logger.Error("query interpretation failed", err)
		if chat {
			writeJSON(w, http.StatusOK, formatter.ChatCompletion(req.Model, created, formatter.ParseFailureNarrative(err)))
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Stage: "parsing"})
		return
	}

	resp, searchErr := h.gw.Search(ctx, params)
	if searchErr != nil {
		logger.Error("search failed", searchErr)
	}

	if chat {
		narrative := formatter.SearchNarrative(query, params, h.gw.RequestURL(params), resp, searchErr)
		writeJSON(w, http.StatusOK, formatter.ChatCompletion(req.Model, created, narrative))
		return
	}
	writeJSON(w, http.StatusOK, formatter.Raw(resp, searchErr))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", err)
	}
}
