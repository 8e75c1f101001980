package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"basestation/internal/commerce"
	"basestation/internal/db"
	"basestation/internal/domain/charges"
	"basestation/internal/domain/orders"
	"basestation/internal/downloads"
	"basestation/internal/mailer"
	"basestation/internal/ratelimiter"
	"basestation/internal/tax"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 200
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "0.3.0"

//	@title			Base Station API
//	@description	API for Base Station, a digital file storefront with crypto checkout.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath	/v1
//	@securityDefinitions.basic	BasicAuth

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	downloadExpStr := os.Getenv("DOWNLOAD_TOKEN_EXP")
	if downloadExpStr == "" {
		downloadExpStr = "1h"
	}
	downloadExp, err := time.ParseDuration(downloadExpStr)
	if err != nil {
		log.Fatalf("Invalid value for DOWNLOAD_TOKEN_EXP: %v", err)
	}

	maxConns := 10
	if val := os.Getenv("DB_MAX_CONNS"); val != "" {
		maxConns, err = strconv.Atoi(val)
		if err != nil {
			log.Fatalf("Invalid value for DB_MAX_CONNS: %v", err)
		}
	}

	cfg := config{
		addr:        os.Getenv("ADDR"),
		env:         os.Getenv("ENV"),
		frontendURL: os.Getenv("FRONTEND_URL"),
		apiURL:      os.Getenv("EXTERNAL_URL"),
		db: dbConfig{
			addr:        os.Getenv("DB_ADDR"),
			maxConns:    maxConns,
			maxIdleTime: getEnvDefault("DB_MAX_IDLE_TIME", "15m"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		tax: taxConfig{
			apiKey: os.Getenv("TAXJAR_API_KEY"),
			apiURL: os.Getenv("TAXJAR_API_URL"),
		},
		commerce: commerceConfig{
			apiKey:        os.Getenv("COINBASE_COMMERCE_API_KEY"),
			apiURL:        os.Getenv("COINBASE_COMMERCE_API_URL"),
			webhookSecret: os.Getenv("COINBASE_WEBHOOK_SECRET"),
			provider:      "coinbase",
		},
		downloads: downloadConfig{
			secret:  os.Getenv("DOWNLOAD_TOKEN_SECRET"),
			baseURL: os.Getenv("EXTERNAL_URL"),
			exp:     downloadExp,
		},
		mail: mailConfig{
			fromEmail: os.Getenv("MAILTRAP_FROM_EMAIL"),
			mailtrap: mailTrapConfig{
				apiKey: os.Getenv("MAILTRAP_API_KEY"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Charge status store: Postgres when DB_ADDR is set, otherwise the
	// in-memory store. The in-memory store does not survive restarts and
	// does not share state across instances.
	var chargeStore charges.Store
	if cfg.db.addr != "" {
		pool, err := db.New(cfg.db.addr, int32(cfg.db.maxConns), cfg.db.maxIdleTime)
		if err != nil {
			logger.Fatal(err)
		}
		defer pool.Close()
		logger.Info("database connection pool established")

		chargeStore = charges.NewRepository(pool)

		expvar.Publish("database", expvar.Func(func() any {
			return pool.Stat()
		}))
	} else {
		logger.Warn("DB_ADDR not set; using in-memory charge store (single instance only, not durable)")
		chargeStore = charges.NewMemoryStore()
	}

	// Download link signer
	signer, err := downloads.NewSigner(cfg.downloads.secret, cfg.downloads.baseURL, "basestation", cfg.downloads.exp)
	if err != nil {
		logger.Fatal(err)
	}

	// Commerce gateways
	gateways := commerce.NewManager()
	gateways.RegisterGateway("coinbase", commerce.NewCoinbaseAdapter(cfg.commerce.apiKey, cfg.commerce.apiURL))

	// Tax provider
	taxClient := tax.NewClient(cfg.tax.apiKey, cfg.tax.apiURL)

	// Receipt mailer; optional, confirmations still work without it.
	var mailClient mailer.Client
	if cfg.mail.mailtrap.apiKey != "" {
		mailClient, err = mailer.NewMailTrapClient(cfg.mail.mailtrap.apiKey, cfg.mail.fromEmail)
		if err != nil {
			logger.Fatal(err)
		}
	} else {
		logger.Warn("MAILTRAP_API_KEY not set; receipt emails disabled")
	}

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		charges:     chargeStore,
		gateways:    gateways,
		tax:         taxClient,
		signer:      signer,
		orderRefs:   orders.NewReferenceGenerator(cfg.downloads.secret),
		mailer:      mailClient,
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

func getEnvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
