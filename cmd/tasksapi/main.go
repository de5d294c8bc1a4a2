package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pressly/goose/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	commentApp "github.com/tasklab/tasks-management/internal/comment/application"
	commentHttp "github.com/tasklab/tasks-management/internal/comment/infra/inbound/http"
	commentRepo "github.com/tasklab/tasks-management/internal/comment/infra/outbound/db/postgres"
	"github.com/tasklab/tasks-management/internal/config"
	historyApp "github.com/tasklab/tasks-management/internal/history/application"
	historyRepo "github.com/tasklab/tasks-management/internal/history/infra/outbound/db/mongodb"
	projectApp "github.com/tasklab/tasks-management/internal/project/application"
	projectHttp "github.com/tasklab/tasks-management/internal/project/infra/inbound/http"
	projectRepo "github.com/tasklab/tasks-management/internal/project/infra/outbound/db/postgres"
	reportApp "github.com/tasklab/tasks-management/internal/report/application"
	reportHttp "github.com/tasklab/tasks-management/internal/report/infra/inbound/http"
	taskApp "github.com/tasklab/tasks-management/internal/task/application"
	taskHttp "github.com/tasklab/tasks-management/internal/task/infra/inbound/http"
	taskRepo "github.com/tasklab/tasks-management/internal/task/infra/outbound/db/postgres"
	userApp "github.com/tasklab/tasks-management/internal/user/application"
	userRepo "github.com/tasklab/tasks-management/internal/user/infra/outbound/db/postgres"
	"github.com/tasklab/tasks-management/migrations"
	"github.com/tasklab/tasks-management/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ---------------- Main ----------------
func main() {
	logger.Init()
	log := logger.Logger()
	defer log.Sync()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	// ---------------- Postgres ----------------
	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		log.Fatal("failed to open Postgres", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("failed to ping Postgres", zap.Error(err))
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("failed to set goose dialect", zap.Error(err))
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// ---------------- MongoDB ----------------
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	// ---------------- Repositórios ----------------
	users := userRepo.NewUserRepoPostgres(db)
	tasks := taskRepo.NewTaskRepoPostgres(db)
	projects := projectRepo.NewProjectRepoPostgres(db, tasks)
	comments := commentRepo.NewCommentRepoPostgres(db)

	history, err := historyRepo.NewHistoryRepoMongoDB(ctx, mongoClient, cfg.Mongo.Database)
	if err != nil {
		log.Fatal("failed to initialize history repository", zap.Error(err))
	}

	// ---------------- Serviços ----------------
	userService := userApp.NewUserService(users, log)
	historyService := historyApp.NewTaskHistoryService(history, log)
	projectService := projectApp.NewProjectService(userService, projects, tasks, log)
	taskService := taskApp.NewTaskService(projectService, userService, tasks, historyService, log)
	commentService := commentApp.NewCommentService(taskService, userService, comments, historyService, log)
	taskReportService := reportApp.NewTaskReportService(projects, tasks, log)
	projectReportService := reportApp.NewProjectReportService(projects, log)

	// ---------------- HTTP ----------------
	projectHandler := projectHttp.NewProjectHandler(projectService)
	taskHandler := taskHttp.NewTaskHandler(taskService, projectService, historyService)
	commentHandler := commentHttp.NewCommentHandler(commentService)
	reportHandler := reportHttp.NewReportHandler(taskReportService, projectReportService, userService)

	router := gin.Default()
	projectHttp.RegisterProjectRoutes(router, projectHandler)
	taskHttp.RegisterTaskRoutes(router, taskHandler)
	commentHttp.RegisterCommentRoutes(router, commentHandler)
	reportHttp.RegisterReportRoutes(router, reportHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("🚀 Server running", zap.String("addr", cfg.Server.Addr()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// ---------------- Shutdown ----------------
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
