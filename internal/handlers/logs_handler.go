package handlers

import (
	"log"
	"net/http"

	"callwatch/internal/calllog"
)

type LogsHandler struct {
	Archive calllog.Store
}

// List godoc
//
// @Summary      Call logs
// @Description  Completed calls, newest first, optionally filtered
// @Tags         Calls
// @Produce      json
// @Param        sentiment query string false "Filter by sentiment"
// @Param        intent    query string false "Filter by intent"
// @Success      200 {array} calllog.Entry
// @Failure      500 {object} ErrorResponse
// @Router       /api/calls/logs [get]
func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Archive.List(r.Context(), calllog.Filter{
		Sentiment: r.URL.Query().Get("sentiment"),
		Intent:    r.URL.Query().Get("intent"),
	})
	if err != nil {
		log.Printf("❌ call log listing: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "archive unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
