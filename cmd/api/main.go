package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/fieldstack/fieldops-backend-go/internal/config"
	"github.com/fieldstack/fieldops-backend-go/internal/domain/leave"
	appHTTP "github.com/fieldstack/fieldops-backend-go/internal/handler/http"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/database"
	"github.com/fieldstack/fieldops-backend-go/internal/pkg/jwt"
	"github.com/fieldstack/fieldops-backend-go/internal/repository/postgresql"
	assignmentService "github.com/fieldstack/fieldops-backend-go/internal/service/assignment"
	serviceAuth "github.com/fieldstack/fieldops-backend-go/internal/service/auth"
	"github.com/fieldstack/fieldops-backend-go/internal/service/conflict"
	leaveService "github.com/fieldstack/fieldops-backend-go/internal/service/leave"
	notificationService "github.com/fieldstack/fieldops-backend-go/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgresql.NewUserRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	vehicleRepo := postgresql.NewVehicleRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveUsageRepo := postgresql.NewLeaveUsageRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	policies := map[leave.Category]leave.QuotaPolicy{
		leave.CategoryAnnual: {
			DefaultAnnualDays: cfg.Leave.AnnualDays,
			ProrateFirstYear:  cfg.Leave.ProrateFirstYear,
		},
		leave.CategorySick: {
			DefaultAnnualDays: cfg.Leave.SickDays,
		},
		leave.CategoryPersonal: {
			DefaultAnnualDays: cfg.Leave.PersonalDays,
		},
	}

	quotaCalculator := leaveService.NewQuotaCalculator(policies, logger)
	quotaSvc := leaveService.NewQuotaService(userRepo, leaveRequestRepo, quotaCalculator)
	requestSvc := leaveService.NewRequestService(leaveRequestRepo, userRepo)
	notifier := notificationService.NewService(logger)
	approvalSvc := leaveService.NewApprovalService(txManager, leaveRequestRepo, leaveUsageRepo, userRepo, notifier, logger)

	detector := conflict.NewDetector(taskRepo, leaveRequestRepo)
	assignmentSvc := assignmentService.NewService(txManager, detector, taskRepo, vehicleRepo, logger)

	authService := serviceAuth.NewAuthService(userRepo, JWTService)

	authHandler := appHTTP.NewAuthHandler(authService)
	leaveHandler := appHTTP.NewLeaveHandler(requestSvc, approvalSvc, quotaSvc)
	taskHandler := appHTTP.NewTaskHandler(assignmentSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		leaveHandler,
		taskHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
