// internal/app/features/announcements/announcements.go
package announcements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dalemusser/campusboard/internal/app/lifecycle"
	"github.com/dalemusser/campusboard/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campusboard/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// errorResponse is the JSON error body: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

// List handles GET /announcements?active_only=bool (default true).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if raw := r.URL.Query().Get("active_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "active_only must be a boolean")
			return
		}
		activeOnly = v
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Manager.List(ctx, activeOnly)
	if err != nil {
		h.Log.Error("failed to list announcements", zap.Error(err), zap.String("path", r.URL.Path))
		writeError(w, http.StatusInternalServerError, "failed to list announcements")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// createRequest is the POST body. is_active defaults to true when omitted.
type createRequest struct {
	Message        string  `json:"message"`
	StartDate      *string `json:"start_date"`
	ExpirationDate string  `json:"expiration_date"`
	IsActive       *bool   `json:"is_active"`
}

// Create handles POST /announcements?teacher_username=... and returns the
// stored record with its assigned id.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	teacher, ok := teacherParam(w, r)
	if !ok {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Manager.Create(ctx, teacher, lifecycle.CreateInput{
		Message:        htmlsanitize.Sanitize(req.Message),
		StartDate:      req.StartDate,
		ExpirationDate: req.ExpirationDate,
		IsActive:       isActive,
	})
	if err != nil {
		h.writeManagerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// updateRequest is the PUT body; every field is optional.
type updateRequest struct {
	Message        *string `json:"message"`
	StartDate      *string `json:"start_date"`
	ExpirationDate *string `json:"expiration_date"`
	IsActive       *bool   `json:"is_active"`
}

// Update handles PUT /announcements/{id}?teacher_username=... Only supplied
// fields change; the response is the record as currently stored.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	teacher, ok := teacherParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	if req.Message != nil {
		clean := htmlsanitize.Sanitize(*req.Message)
		req.Message = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Manager.Update(ctx, teacher, id, lifecycle.UpdateFields{
		Message:        req.Message,
		StartDate:      req.StartDate,
		ExpirationDate: req.ExpirationDate,
		IsActive:       req.IsActive,
	})
	if err != nil {
		h.writeManagerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /announcements/{id}?teacher_username=...
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	teacher, ok := teacherParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Manager.Delete(ctx, teacher, id); err != nil {
		h.writeManagerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Announcement deleted successfully"})
}

// teacherParam extracts the required teacher_username query parameter,
// writing a 400 when it is missing.
func teacherParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	teacher := r.URL.Query().Get("teacher_username")
	if teacher == "" {
		writeError(w, http.StatusBadRequest, "teacher_username is required")
		return "", false
	}
	return teacher, true
}

// writeManagerError maps the lifecycle error classes onto status codes.
// Storage failures and anything unclassified surface as a logged 500.
func (h *Handler) writeManagerError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, lifecycle.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, lifecycle.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.Log.Error("announcement operation failed", zap.Error(err), zap.String("path", r.URL.Path))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
