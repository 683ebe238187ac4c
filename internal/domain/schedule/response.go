package schedule

import (
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
)

type PlacementResponse struct {
	AssignmentID string  `json:"assignment_id"`
	TaskID       string  `json:"task_id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	Slot         string  `json:"slot"`
	ColumnStart  int     `json:"column_start"`
	Hours        float64 `json:"hours"`
	Title        string  `json:"title"`
	Project      string  `json:"project,omitempty"`
	Priority     string  `json:"priority,omitempty"`
	Status       string  `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func NewPlacementResponse(p TaskPlacement) PlacementResponse {
	return PlacementResponse{
		AssignmentID: p.AssignmentID,
		TaskID:       p.TaskID,
		EmployeeID:   p.EmployeeID,
		Date:         calendar.DateKey(p.Date),
		Slot:         string(p.Slot),
		ColumnStart:  p.ColumnStart,
		Hours:        p.Hours,
		Title:        p.Title,
		Project:      p.Project,
		Priority:     p.Priority,
		Status:       p.Status,
		Notes:        p.Notes,
	}
}

type LeaveMarkerResponse struct {
	LeaveType string  `json:"leave_type"`
	Duration  string  `json:"duration"`
	Slot      *string `json:"slot,omitempty"`
}

func newLeaveMarker(rec *leave.Record) *LeaveMarkerResponse {
	if rec == nil {
		return nil
	}
	marker := &LeaveMarkerResponse{LeaveType: rec.Type, Duration: string(rec.Duration)}
	if rec.Slot != nil {
		s := string(*rec.Slot)
		marker.Slot = &s
	}
	return marker
}

type SlotResponse struct {
	Kind          string               `json:"kind"`
	CapacityHours float64              `json:"capacity_hours"`
	IsOverbooked  bool                 `json:"is_overbooked"`
	Leave         *LeaveMarkerResponse `json:"leave,omitempty"`
	Placements    []PlacementResponse  `json:"placements"`
}

func newSlotResponse(s Slot) SlotResponse {
	capacity := s.CapacityHours
	if capacity == 0 {
		capacity = DefaultSlotCapacityHours
	}
	resp := SlotResponse{
		Kind:          string(s.Kind),
		CapacityHours: capacity,
		IsOverbooked:  s.IsOverbooked(),
		Leave:         newLeaveMarker(s.Leave),
		Placements:    make([]PlacementResponse, 0, len(s.Placements)),
	}
	for _, p := range s.Placements {
		resp.Placements = append(resp.Placements, NewPlacementResponse(p))
	}
	return resp
}

type DayCellResponse struct {
	Date        string               `json:"date"`
	IsHoliday   bool                 `json:"is_holiday"`
	HolidayName *string              `json:"holiday_name,omitempty"`
	Leave       *LeaveMarkerResponse `json:"leave,omitempty"`
	Morning     SlotResponse         `json:"morning"`
	Afternoon   SlotResponse         `json:"afternoon"`
}

type EmployeeRowResponse struct {
	EmployeeID   string                     `json:"employee_id"`
	EmployeeName string                     `json:"employee_name"`
	Team         string                     `json:"team"`
	Days         map[string]DayCellResponse `json:"days"`
}

type GridResponse struct {
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	ViewSpan  string                `json:"view_span"`
	Dates     []string              `json:"dates"`
	Employees []EmployeeRowResponse `json:"employees"`
}

// NewGridResponse flattens a merged grid into the wire shape, row-ordered by
// the supplied employee list.
func NewGridResponse(window calendar.Window, grid Grid, employees []employee.Employee) GridResponse {
	dates := window.Dates()
	resp := GridResponse{
		StartDate: calendar.DateKey(window.Start),
		EndDate:   calendar.DateKey(window.End()),
		ViewSpan:  string(window.Span),
		Dates:     make([]string, 0, len(dates)),
		Employees: make([]EmployeeRowResponse, 0, len(employees)),
	}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, calendar.DateKey(d))
	}

	for _, emp := range employees {
		row := EmployeeRowResponse{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Team:         emp.Team,
			Days:         make(map[string]DayCellResponse, len(dates)),
		}
		for _, d := range dates {
			cell, ok := grid.Cell(emp.ID, d)
			if !ok {
				cell = EmptyCell(emp.ID, d)
			}
			row.Days[calendar.DateKey(d)] = DayCellResponse{
				Date:        calendar.DateKey(d),
				IsHoliday:   cell.IsHoliday,
				HolidayName: cell.HolidayName,
				Leave:       newLeaveMarker(cell.Leave),
				Morning:     newSlotResponse(cell.Morning),
				Afternoon:   newSlotResponse(cell.Afternoon),
			}
		}
		resp.Employees = append(resp.Employees, row)
	}
	return resp
}
