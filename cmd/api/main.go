package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"callwatch/internal/calllog"
	"callwatch/internal/config"
	"callwatch/internal/handlers"
	"callwatch/internal/monitor"
	"callwatch/internal/ws"

	_ "callwatch/docs"
)

// @title CallWatch API
// @version 1.0
// @description Live-call monitoring backend for the operator dashboard
// @BasePath /
func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		panic(err)
	}

	// Archive backend: Postgres when a DSN is configured, memory otherwise.
	var archive calllog.Store
	if cfg.Archive.DSN != "" {
		pool, err := calllog.NewPool(cfg.Archive.DSN)
		if err != nil {
			panic(err)
		}
		defer pool.Close()

		pg := calllog.NewPostgres(pool)
		if err := pg.Init(context.Background()); err != nil {
			panic(err)
		}
		archive = pg
		log.Println("✅ call-log archive: postgres")
	} else {
		archive = calllog.NewMemory(cfg.Archive.MemoryCap)
		log.Println("✅ call-log archive: memory")
	}

	core := monitor.NewCore(monitor.Options{
		TickInterval:       time.Duration(cfg.Monitor.TickSeconds) * time.Second,
		ArrivalInterval:    time.Duration(cfg.Monitor.ArrivalSeconds) * time.Second,
		ArrivalProbability: cfg.Monitor.ArrivalProbability,
		MinLifespan:        time.Duration(cfg.Monitor.MinLifespanSeconds) * time.Second,
		MaxLifespan:        time.Duration(cfg.Monitor.MaxLifespanSeconds) * time.Second,
		TotalAgents:        cfg.Agents.Total,
		AvailableAgents:    cfg.Agents.Available,
		OnEnded: func(sess monitor.CallSession) {
			entry := calllog.Entry{
				ID:           sess.ID,
				CallerNumber: sess.CallerNumber,
				CallerName:   sess.CallerName,
				Intent:       sess.Intent,
				Sentiment:    string(sess.Sentiment),
				Duration:     sess.Duration,
				StartTime:    sess.StartTime,
				EndTime:      time.Now(),
				Outcome:      "completed",
			}
			if err := archive.Record(context.Background(), entry); err != nil {
				log.Printf("⚠️ archive record: %v", err)
			}
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core.Start(ctx)
	defer core.Stop()

	r := chi.NewRouter()

	// CORS for the dashboard dev servers
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.HTTP.CORSOrigins,
		AllowedMethods: []string{
			"GET", "POST", "PUT", "DELETE", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept", "Authorization", "Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	callsHandler := &handlers.CallsHandler{Core: core}
	logsHandler := &handlers.LogsHandler{Archive: archive}

	r.Get("/api/calls/live", callsHandler.Live)
	r.Get("/api/calls/stats", callsHandler.Stats)
	r.Get("/api/calls/logs", logsHandler.List)
	r.Post("/api/calls/{id}/answer", callsHandler.Answer)
	r.Post("/api/calls/{id}/hold", callsHandler.Hold)
	r.Post("/api/calls/{id}/end", callsHandler.End)
	r.Post("/api/calls/{id}/mute", callsHandler.Mute)
	r.Post("/api/calls/{id}/listen", callsHandler.Listen)

	r.Get("/ws/monitor", ws.Monitor(core))

	// Swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Println("🚀 listening on", cfg.HTTP.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}
