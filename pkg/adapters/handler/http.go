package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pthana/linkshort/pkg/core/domain"
	"github.com/pthana/linkshort/pkg/ports"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type HTTPHandler struct {
	service ports.LinkService
	cleanup ports.CleanupService
	baseURL string
}

func NewHTTPHandler(service ports.LinkService, cleanup ports.CleanupService, baseURL string) *HTTPHandler {
	return &HTTPHandler{service: service, cleanup: cleanup, baseURL: baseURL}
}

// CreateLinkRequest payload
type CreateLinkRequest struct {
	OriginalURL string `json:"original_url"`
}

// CreateLinkResponse payload
type CreateLinkResponse struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case domain.IsNotFound(err), domain.IsInvalidAlias(err):
		// Malformed aliases are indistinguishable from unknown ones to callers.
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "link not found"})
	default:
		log.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// Create shortens a URL
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	link, err := h.service.Shorten(r.Context(), req.OriginalURL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateLinkResponse{
		ShortCode: link.ShortCode,
		ShortURL:  h.baseURL + "/" + link.ShortCode,
	})
}

// Redirect resolves a short code and issues a temporary redirect
func (h *HTTPHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["short_code"]

	originalURL, err := h.service.Resolve(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}

	http.Redirect(w, r, originalURL, http.StatusTemporaryRedirect)
}

// List returns links in creation order
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	links, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	if links == nil {
		links = []domain.Link{}
	}
	writeJSON(w, http.StatusOK, links)
}

// ClickCount returns the usage counter for a short code
func (h *HTTPHandler) ClickCount(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["short_code"]

	count, err := h.service.ClickCount(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"short_code":  code,
		"click_count": count,
	})
}

// Cleanup deletes links inactive for more than ?days=N
func (h *HTTPHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: days query parameter is required", domain.ErrValidation))
		return
	}

	deleted, err := h.cleanup.Cleanup(r.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// Health reports liveness
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
