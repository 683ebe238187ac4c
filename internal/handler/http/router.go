package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	calendarHandler CalendarHandler,
	scheduleHandler ScheduleHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
	selectionHandler SelectionHandler,
	corsOrigin string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftboard"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Board-Session"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/token", authHandler.Token)
		})

		// SSE stream authenticates by query token; EventSource cannot set
		// headers.
		r.Get("/events", calendarHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Post("/auth/sse-token", authHandler.SSEToken)
			r.Post("/auth/revoke", authHandler.Revoke)

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/grid", calendarHandler.GetGrid)
				r.Post("/window/navigate", calendarHandler.NavigateWindow)
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Post("/", scheduleHandler.CreateAssignment)
				r.Patch("/bulk", scheduleHandler.BulkUpdateAssignments)
				r.Route("/{id}", func(r chi.Router) {
					r.Patch("/", scheduleHandler.UpdateAssignment)
					r.Post("/move", scheduleHandler.MoveAssignment)
					r.Delete("/", scheduleHandler.DeleteAssignment)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", leaveHandler.SetLeave)
				r.Post("/conflicts", leaveHandler.DetectConflicts)
				r.Delete("/blocking", leaveHandler.ClearBlocking)
			})

			r.Post("/holidays", leaveHandler.SetHoliday)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
			})

			r.Route("/selection", func(r chi.Router) {
				r.Get("/", selectionHandler.GetState)
				r.Delete("/", selectionHandler.Clear)
				r.Post("/tasks/toggle", selectionHandler.ToggleTask)
				r.Post("/slots/toggle", selectionHandler.ToggleSlot)
				r.Post("/days/toggle", selectionHandler.ToggleDay)
				r.Post("/tasks/snapshot", selectionHandler.SnapshotTasks)
				r.Post("/slots/snapshot", selectionHandler.SnapshotSlots)
				r.Post("/days/{date}/snapshot", selectionHandler.SnapshotDays)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
