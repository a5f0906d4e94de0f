package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"crime-evidence/internal/audit"
	"crime-evidence/internal/evidence/client"
	"crime-evidence/internal/evidence/handler"
	evidencemetrics "crime-evidence/internal/evidence/metrics"
	"crime-evidence/internal/evidence/service"
	"crime-evidence/internal/evidence/staticdata"
	"crime-evidence/internal/evidence/store/requirements"
	httpapi "crime-evidence/internal/http"
	"crime-evidence/internal/jwtauth"
	"crime-evidence/internal/platform/config"
	"crime-evidence/internal/platform/httpserver"
	"crime-evidence/internal/platform/logger"
	platformmetrics "crime-evidence/internal/platform/metrics"
	"crime-evidence/internal/platform/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service
// packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	// Static data integrity is a precondition: a rule pointing at a fee
	// level missing from the catalog must fail here, not mid-request.
	if err := staticdata.VerifyFeeLevelCatalog(); err != nil {
		log.Error("fee level catalog verification failed", "error", err.Error())
		os.Exit(1)
	}

	var db *sql.DB
	var reqStore requirements.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("open database failed", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Error("database ping failed", "error", err.Error())
			os.Exit(1)
		}
		reqStore = requirements.NewPostgres(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory seed requirements")
		reqStore = requirements.Seeded()
	}

	domainMetrics := evidencemetrics.New()
	httpMetrics := platformmetrics.New()

	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		cached, err := requirements.NewCached(reqStore, redisClient.Client, cfg.RequirementCacheTTL, log, domainMetrics)
		if err != nil {
			log.Error("requirement cache setup failed", "error", err.Error())
			os.Exit(1)
		}
		reqStore = cached
	}

	publisher := audit.NewPublisher(256, log)
	auditSinks := []audit.Store{audit.NewMemoryStore(1024)}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			log.Error("kafka audit sink setup failed", "error", err.Error())
			os.Exit(1)
		}
		defer kafkaSink.Close()
		auditSinks = append(auditSinks, kafkaSink)
	}
	auditWorker := audit.NewWorker(publisher.Events(), log, auditSinks...)

	courtData := client.NewCourtData(cfg.CourtDataAPIURL, log, domainMetrics)
	meansAssessment := client.NewMeansAssessment(cfg.MeansAssessmentAPIURL, log, domainMetrics)

	svc, err := service.New(reqStore, courtData, meansAssessment, log,
		service.WithMetrics(domainMetrics),
		service.WithAuditor(publisher),
	)
	if err != nil {
		log.Error("service setup failed", "error", err.Error())
		os.Exit(1)
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:    log,
		Metrics:   httpMetrics,
		Validator: jwtauth.New(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience),
		Evidence:  handler.New(svc, log),
		Health: func() error {
			if db != nil {
				return db.Ping()
			}
			return nil
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting crime-evidence server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := auditWorker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err.Error())
		os.Exit(1)
	}
	log.Info("server stopped")
}
