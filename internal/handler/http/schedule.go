package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	CreateAssignment(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	MoveAssignment(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
	BulkUpdateAssignments(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

func (h *scheduleHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CreateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assignment created successfully", schedule.NewPlacementResponse(result))
}

func (h *scheduleHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.AssignmentID = chi.URLParam(r, "id")

	result, err := h.scheduleService.UpdateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedule.NewPlacementResponse(result))
}

func (h *scheduleHandlerImpl) MoveAssignment(w http.ResponseWriter, r *http.Request) {
	var req schedule.MoveAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.AssignmentID = chi.URLParam(r, "id")

	result, err := h.scheduleService.MoveAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedule.NewPlacementResponse(result))
}

func (h *scheduleHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment deleted successfully", nil)
}

func (h *scheduleHandlerImpl) BulkUpdateAssignments(w http.ResponseWriter, r *http.Request) {
	var req schedule.BulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.BulkUpdateAssignments(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]schedule.PlacementResponse, 0, len(result))
	for _, p := range result {
		out = append(out, schedule.NewPlacementResponse(p))
	}
	response.Success(w, out)
}
