package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/rollup/internal/adapter/http/dto"
	"github.com/iho/rollup/internal/domain"
	"github.com/iho/rollup/internal/usecase"
)

// EventHandler accepts model events from the surrounding application and
// feeds them to the dispatcher.
type EventHandler struct {
	dispatcher *usecase.Dispatcher
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(dispatcher *usecase.Dispatcher) *EventHandler {
	return &EventHandler{dispatcher: dispatcher}
}

// Dispatch handles POST /api/v1/events.
func (h *EventHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req dto.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	name, err := domain.ParseEventName(req.Name)
	if err != nil {
		writeError(w, mapDomainError(err), "unknown event name", req.Name)
		return
	}

	opts := make([]domain.EventOption, 0, len(req.Params)+len(req.Previous))
	for k, v := range req.Params {
		opts = append(opts, domain.WithParam(k, v))
	}
	for k, v := range req.Previous {
		opts = append(opts, domain.WithPrevious(k, v))
	}

	if err := h.dispatcher.Fire(r.Context(), domain.NewEvent(name, req.Value, opts...)); err != nil {
		writeError(w, http.StatusInternalServerError, "dispatch failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DispatchResponse{
		Status: "dispatched",
		Event:  string(name),
	})
}
