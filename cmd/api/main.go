package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cmlabs-hris/shiftboard-backend-go/internal/config"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/domain/leave"
	appHTTP "github.com/cmlabs-hris/shiftboard-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/shiftboard-backend-go/internal/repository/sqlitestore"
	employeeService "github.com/cmlabs-hris/shiftboard-backend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/shiftboard-backend-go/internal/service/leave"
	scheduleService "github.com/cmlabs-hris/shiftboard-backend-go/internal/service/schedule"
	selectionService "github.com/cmlabs-hris/shiftboard-backend-go/internal/service/selection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	assignmentRepo := postgresql.NewAssignmentRepository(db)
	leaveRecordRepo := postgresql.NewLeaveRecordRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	// The grid overlay reads leave through a RecordSource: either the live
	// tables or a legacy offline overlay file.
	var leaveSource leave.RecordSource
	var overlayStore *sqlitestore.Store
	switch cfg.Overlay.Store {
	case "postgres":
		leaveSource = postgresql.NewRecordSource(leaveRecordRepo, holidayRepo)
	case "sqlite":
		overlayStore = sqlitestore.NewStore(cfg.Overlay.Path)
		if err := overlayStore.Open(); err != nil {
			log.Fatal("Failed to open overlay store: ", err)
		}
		defer overlayStore.Close()
		leaveSource = overlayStore
	default:
		log.Fatal("Unsupported overlay store: ", cfg.Overlay.Store)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()
	tracker := selectionService.NewTracker(cfg.Selection.IdleTTL)

	leaveSvc := leaveService.NewLeaveService(db, leaveRecordRepo, holidayRepo, assignmentRepo, employeeRepo, hub)
	scheduleSvc := scheduleService.NewScheduleService(assignmentRepo, employeeRepo, leaveSource, hub)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	scheduler := cron.NewScheduler()
	cron.RegisterSelectionSweep(scheduler, tracker, cfg.Selection.SweepInterval)
	if overlayStore != nil {
		scheduler.AddJob("overlay_store_vacuum", 24*time.Hour, func(ctx context.Context) error {
			_, err := overlayStore.Vacuum(ctx, time.Now().AddDate(-1, 0, 0))
			return err
		})
	}
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(JWTService, cfg.Auth.APIKeyHash)
	calendarHandler := appHTTP.NewCalendarHandler(scheduleSvc, JWTService, hub)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	selectionHandler := appHTTP.NewSelectionHandler(tracker)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		calendarHandler,
		scheduleHandler,
		leaveHandler,
		employeeHandler,
		selectionHandler,
		cfg.App.CORSOrigin,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
