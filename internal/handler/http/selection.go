package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/selection"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/handler/http/response"
	selectionService "github.com/cmlabs-hris/shiftboard-backend-go/internal/service/selection"
	"github.com/go-chi/chi/v5"
)

type SelectionHandler interface {
	GetState(w http.ResponseWriter, r *http.Request)
	ToggleTask(w http.ResponseWriter, r *http.Request)
	ToggleSlot(w http.ResponseWriter, r *http.Request)
	ToggleDay(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
	SnapshotTasks(w http.ResponseWriter, r *http.Request)
	SnapshotSlots(w http.ResponseWriter, r *http.Request)
	SnapshotDays(w http.ResponseWriter, r *http.Request)
}

type selectionHandlerImpl struct {
	tracker *selectionService.Tracker
}

func NewSelectionHandler(tracker *selectionService.Tracker) SelectionHandler {
	return &selectionHandlerImpl{
		tracker: tracker,
	}
}

// requireSession extracts the board session id or writes the error response.
func requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	session := boardSession(r)
	if session == "" {
		response.BadRequest(w, "X-Board-Session header is required", nil)
		return "", false
	}
	return session, true
}

func (h *selectionHandlerImpl) GetState(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	response.Success(w, selection.NewStateResponse(h.tracker.State(session)))
}

func (h *selectionHandlerImpl) ToggleTask(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req selection.ToggleTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	state := h.tracker.ToggleTask(session, req.AssignmentID, req.Multi)
	response.Success(w, selection.NewStateResponse(state))
}

func (h *selectionHandlerImpl) ToggleSlot(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req selection.ToggleSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	state := h.tracker.ToggleSlot(session, req.Ref(), req.Multi)
	response.Success(w, selection.NewStateResponse(state))
}

func (h *selectionHandlerImpl) ToggleDay(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req selection.ToggleDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	state := h.tracker.ToggleDay(session, req.Date, req.Multi)
	response.Success(w, selection.NewStateResponse(state))
}

func (h *selectionHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	h.tracker.Clear(session)
	response.SuccessWithMessage(w, "Selection cleared", nil)
}

// SnapshotTasks captures the task selection for an async bulk action. The
// snapshot is taken at trigger time so later selection changes cannot leak
// into the action.
func (h *selectionHandlerImpl) SnapshotTasks(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req selection.SnapshotTasksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.tracker.SnapshotTasks(session, req.TriggerID))
}

func (h *selectionHandlerImpl) SnapshotSlots(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req selection.ToggleSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.tracker.SnapshotSlots(session, req.Ref()))
}

func (h *selectionHandlerImpl) SnapshotDays(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}

	date := chi.URLParam(r, "date")
	var req selection.ToggleDayRequest
	req.Date = date
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.tracker.SnapshotDays(session, req.Date))
}
