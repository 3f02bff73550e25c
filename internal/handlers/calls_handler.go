package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"callwatch/internal/monitor"
)

type CallsHandler struct {
	Core *monitor.Core
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status,omitempty"`
}

// Live godoc
//
// @Summary      Live calls
// @Description  Snapshot of all in-progress calls, ordered by start time
// @Tags         Calls
// @Produce      json
// @Success      200 {array} monitor.CallSession
// @Router       /api/calls/live [get]
func (h *CallsHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.Core.Sessions())
}

// Stats godoc
//
// @Summary      Call-center stats
// @Description  Active/waiting counts plus configured agent capacity
// @Tags         Calls
// @Produce      json
// @Success      200 {object} monitor.Stats
// @Router       /api/calls/stats [get]
func (h *CallsHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.Core.Stats())
}

// Answer godoc
//
// @Summary      Answer a waiting call
// @Tags         Calls
// @Produce      json
// @Param        id path string true "Call ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/calls/{id}/answer [post]
func (h *CallsHandler) Answer(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.Core.Actions().Answer, "Call answered successfully")
}

// Hold godoc
//
// @Summary      Put an active call on hold
// @Tags         Calls
// @Produce      json
// @Param        id path string true "Call ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/calls/{id}/hold [post]
func (h *CallsHandler) Hold(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.Core.Actions().Hold, "Call put on hold")
}

// End godoc
//
// @Summary      End a call
// @Description  Always succeeds; ending an already-gone call is a no-op
// @Tags         Calls
// @Produce      json
// @Param        id path string true "Call ID"
// @Success      200 {object} MessageResponse
// @Router       /api/calls/{id}/end [post]
func (h *CallsHandler) End(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.Core.Actions().End, "Call ended successfully")
}

// Mute godoc
//
// @Summary      Toggle mute on an active call
// @Tags         Calls
// @Produce      json
// @Param        id path string true "Call ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/calls/{id}/mute [post]
func (h *CallsHandler) Mute(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.Core.Actions().ToggleMute, "Mute toggled")
}

// Listen godoc
//
// @Summary      Toggle listen-in on an active call
// @Tags         Calls
// @Produce      json
// @Param        id path string true "Call ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/calls/{id}/listen [post]
func (h *CallsHandler) Listen(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, h.Core.Actions().ToggleListen, "Listen toggled")
}

func (h *CallsHandler) action(
	w http.ResponseWriter,
	r *http.Request,
	fn func(string) error,
	message string,
) {
	id := chi.URLParam(r, "id")

	if err := fn(id); err != nil {
		var te *monitor.TransitionError
		switch {
		case errors.Is(err, monitor.ErrNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Call not found"})
		case errors.As(err, &te):
			writeJSON(w, http.StatusConflict, ErrorResponse{
				Error:  te.Error(),
				Status: string(te.Status),
			})
		default:
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
