package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/validator"
)

type LeaveHandler interface {
	DetectConflicts(w http.ResponseWriter, r *http.Request)
	SetLeave(w http.ResponseWriter, r *http.Request)
	SetHoliday(w http.ResponseWriter, r *http.Request)
	ClearBlocking(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// DetectConflicts previews which assignments a leave or holiday write would
// destroy, without writing anything.
func (h *leaveHandlerImpl) DetectConflicts(w http.ResponseWriter, r *http.Request) {
	var req leave.DetectConflictsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	conflicts, err := h.leaveService.DetectConflicts(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, conflicts)
}

func (h *leaveHandlerImpl) SetLeave(w http.ResponseWriter, r *http.Request) {
	var req leave.SetLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.leaveService.ApplyLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave applied", result)
}

func (h *leaveHandlerImpl) SetHoliday(w http.ResponseWriter, r *http.Request) {
	var req leave.SetHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.leaveService.ApplyHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday applied", result)
}

// ClearBlocking removes blocking state from a date: the holiday plus every
// leave record when no employee is given, or one employee's leave otherwise.
func (h *leaveHandlerImpl) ClearBlocking(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	var employeeID *string
	if id := r.URL.Query().Get("employee_id"); id != "" {
		employeeID = &id
	}

	result, err := h.leaveService.ClearBlocking(r.Context(), date, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Blocking state cleared", result)
}
