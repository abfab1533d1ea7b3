package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/headhunter/pkg/config"
	"github.com/Abraxas-365/headhunter/pkg/iam/auth"
	"github.com/Abraxas-365/headhunter/pkg/logx"
	"github.com/Abraxas-365/headhunter/pkg/metrics"
	"github.com/Abraxas-365/headhunter/pkg/ratelimit"
	"github.com/Abraxas-365/headhunter/recruitment/candidate/candidateapi"
	"github.com/Abraxas-365/headhunter/recruitment/candidate/candidateauth"
	"github.com/Abraxas-365/headhunter/recruitment/candidate/candidateinfra"
	"github.com/Abraxas-365/headhunter/recruitment/candidate/candidatesrv"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB       *sqlx.DB
	Redis    *redis.Client
	Registry *prometheus.Registry
	Metrics  *metrics.Recorder
	Limiter  ratelimit.Limiter // nil without Redis

	// Core IAM Services
	TokenService      auth.TokenService
	SignatureVerifier *auth.SignatureVerifier
	Passphrase        *auth.PassphraseChecker

	// Recruitment Services
	CandidateService      *candidatesrv.CandidateService
	CandidateTokenService *candidateauth.CandidateTokenService
	CandidateAuthService  *candidateauth.CandidateAuthService

	// API Handlers
	CandidateHandlers     *candidateapi.Handlers
	CandidateAuthHandlers *candidateauth.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}
	if err := c.initInfrastructure(); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.initServices(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) initInfrastructure() error {
	// 1. Database Connection
	dbCfg := c.Config.Database
	db, err := sqlx.Connect(dbCfg.Driver, dbCfg.DataSourceName())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if dbCfg.Driver == "sqlite" {
		// SQLite allows one writer at a time
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}
	c.DB = db

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := candidateinfra.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logx.Infof("Connected to %s database", dbCfg.Driver)

	// 2. Metrics
	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = metrics.New(c.Registry)

	// 3. Rate limit counters: Redis when configured, process memory otherwise
	if c.Config.Redis.Addr == "" {
		logx.Info("REDIS_ADDR is not set, rate limits are kept in memory")
		return nil
	}

	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Pass,
		DB:       0,
	})
	if err := c.Redis.Ping(ctx).Err(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}
	c.Limiter = ratelimit.NewRedisLimiter(c.Redis, "headhunter:ratelimit")
	return nil
}

func (c *Container) initServices() error {
	authCfg := c.Config.Auth

	// --- Repositories ---
	candidateRepo := candidateinfra.NewSQLCandidateRepository(c.DB)

	// --- IAM Services ---
	c.TokenService = auth.NewJWTService(authCfg.JWT.SecretKey, authCfg.JWT.AccessTokenTTL)
	c.SignatureVerifier = auth.NewSignatureVerifier(authCfg.Signature.SecretKey)

	passphrase, err := auth.NewPassphraseChecker(authCfg.Login.Passphrase)
	if err != nil {
		return fmt.Errorf("invalid login passphrase: %w", err)
	}
	c.Passphrase = passphrase

	// --- Domain Services ---
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo, c.Metrics)
	c.CandidateTokenService = candidateauth.NewCandidateTokenService(c.TokenService)
	c.CandidateAuthService = candidateauth.NewCandidateAuthService(
		candidateRepo,
		c.Passphrase,
		c.CandidateTokenService,
		c.Metrics,
	)

	// --- Handlers ---
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.CandidateAuthHandlers = candidateauth.NewHandlers(c.CandidateAuthService)
	return nil
}

// CandidateMiddlewares builds the per-route guards of the candidate API
func (c *Container) CandidateMiddlewares() candidateapi.Middlewares {
	rl := c.Config.RateLimit
	return candidateapi.Middlewares{
		CreateRateLimit:   c.RateLimit("create", rl.Create),
		RetrieveRateLimit: c.RateLimit("retrieve", rl.Retrieve),
		Signature:         auth.SignatureMiddleware(c.SignatureVerifier, candidateapi.SignedFields, c.Metrics),
		CandidateAuth:     candidateauth.Middleware(c.CandidateTokenService, c.Metrics),
	}
}

// RateLimit guards one endpoint with the shared Redis counters, or with
// in-process counters when Redis is not configured
func (c *Container) RateLimit(endpoint string, rule ratelimit.Rule) fiber.Handler {
	if c.Limiter == nil {
		return ratelimit.MemoryMiddleware(endpoint, rule, c.Metrics)
	}
	return ratelimit.Middleware(c.Limiter, endpoint, rule, c.Metrics)
}

// Health reports the reachability of the backing stores
func (c *Container) Health(ctx context.Context) (db bool, cache bool) {
	db = c.DB.PingContext(ctx) == nil
	cache = true
	if c.Redis != nil {
		cache = c.Redis.Ping(ctx).Err() == nil
	}
	return db, cache
}

// Close releases database and Redis connections
func (c *Container) Close() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Errorf("closing database: %v", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Errorf("closing redis: %v", err)
		}
	}
}
