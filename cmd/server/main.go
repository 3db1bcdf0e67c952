package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // loads .env files for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/case-record-tracker/internal/config"
	"github.com/iliyamo/case-record-tracker/internal/database"
	"github.com/iliyamo/case-record-tracker/internal/handler"
	"github.com/iliyamo/case-record-tracker/internal/middleware"
	"github.com/iliyamo/case-record-tracker/internal/queue"
	"github.com/iliyamo/case-record-tracker/internal/repository"
	"github.com/iliyamo/case-record-tracker/internal/router"
	"github.com/iliyamo/case-record-tracker/internal/watch"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}

	// Redis is optional: a nil client disables the response cache and the
	// rate limiter, nothing else.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limiting disabled")
	}

	// Repositories
	users := repository.NewUserRepo(db)
	profiles := repository.NewProfileRepo(db)
	cases := repository.NewCaseRepo(db)
	tokens := repository.NewTokenRepo(db)

	// Live case subscription hub, fed in-process by the handlers and
	// cross-instance by the broker consumer.
	hub := watch.NewHub()
	go func() {
		if err := queue.StartCaseConsumer(hub, cfg.AuditLogPath); err != nil {
			log.Printf("case consumer stopped: %v", err)
		}
	}()

	// Handlers
	authH := handler.NewAuthHandler(cfg, users, profiles, tokens)
	caseH := handler.NewCaseHandler(cases, hub)
	policeH := handler.NewPoliceHandler(cases)
	adminH := handler.NewAdminHandler(cfg, cases, users, profiles)

	e := echo.New()

	// Routes. Auth gets the token-bucket rate limiter; the police reads
	// get the response cache.
	rl := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, profiles, tokens, cfg.JWTSecret, rl)
	router.RegisterCases(e, caseH, profiles, tokens, cfg.JWTSecret)
	router.RegisterPolice(e, policeH, profiles, tokens, cfg.JWTSecret, cache)
	router.RegisterAdmin(e, adminH, profiles, tokens, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
