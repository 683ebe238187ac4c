package http

import (
	"net/http"

	employeeService "github.com/cmlabs-hris/shiftboard-backend-go/internal/service/employee"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employeeService.Service
}

func NewEmployeeHandler(svc employeeService.Service) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: svc,
	}
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")

	result, err := h.employeeService.ListEmployees(r.Context(), team)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
