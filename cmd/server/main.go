package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hydrolearn/backend/internal/api"
	"github.com/hydrolearn/backend/internal/infrastructure/config"
	"github.com/hydrolearn/backend/internal/judge"
	"github.com/hydrolearn/backend/internal/service"
	"github.com/hydrolearn/backend/internal/store"

	_ "github.com/hydrolearn/backend/docs" // generated swagger docs
)

// @title           HydroLearn API
// @version         1.0
// @description     Mastery tracking and heuristic evaluation engine for the "Water and Its Treatment" chapter — guided problem solving, teach-back note scoring, and weak-concept remediation.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	st, err := store.NewByEngine(cfg.StoreEngine, cfg.StorePath)
	if err != nil {
		logger.Error("failed to open learner-state store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	learner := service.NewLearnerState(st, logger)
	answerJudge := judge.NewRandomJudge(cfg.JudgeSuccessRate, rand.New(rand.NewSource(time.Now().UnixNano())))
	solverSvc := service.NewSolverService(learner, answerJudge, logger, cfg.SimulatedLatency)
	handler := api.NewHandler(learner, solverSvc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
