package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/validator"
)

type CalendarHandler interface {
	GetGrid(w http.ResponseWriter, r *http.Request)
	NavigateWindow(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	scheduleService schedule.Service
	jwtService      jwt.Service
	hub             *sse.Hub
}

func NewCalendarHandler(scheduleService schedule.Service, jwtService jwt.Service, hub *sse.Hub) CalendarHandler {
	return &calendarHandlerImpl{
		scheduleService: scheduleService,
		jwtService:      jwtService,
		hub:             hub,
	}
}

// GetGrid returns the fully merged board for a window: placements packed per
// slot with the leave overlay applied.
func (h *calendarHandlerImpl) GetGrid(w http.ResponseWriter, r *http.Request) {
	req := schedule.GridRequest{
		StartDate: r.URL.Query().Get("start_date"),
		ViewSpan:  r.URL.Query().Get("view_span"),
		TeamID:    r.URL.Query().Get("team_id"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.GetCalendarGrid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// NavigateWindow computes the next window for a navigation gesture. The
// transition is stateless; the client posts its current window and receives
// the replacement whole.
func (h *calendarHandlerImpl) NavigateWindow(w http.ResponseWriter, r *http.Request) {
	var req calendar.NavigateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	start, _ := validator.IsValidDate(req.StartDate)
	target, _ := validator.IsValidDate(req.TargetDate)

	window := calendar.Window{
		Start:       start,
		Span:        calendar.ViewSpan(req.ViewSpan),
		CurrentDate: start,
	}
	if req.LastNavigated != nil {
		last, _ := validator.IsValidDate(*req.LastNavigated)
		window.LastNavigated = &last
	}

	if window.Span == calendar.ViewSpanMonth {
		response.Success(w, window.SnapToMonth(target))
		return
	}

	next, err := window.NavigateTo(target)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, next)
}

// Stream handles the SSE connection for live board updates
func (h *calendarHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	clientID, team, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(team)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"client_id\":\"%s\"}\n\n", clientID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\nid: %d\ndata: %s\n\n", event.Event, event.Version, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
