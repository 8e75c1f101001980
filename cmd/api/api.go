package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"basestation/docs" //this is required to generate swagger docs
	"basestation/internal/commerce"
	"basestation/internal/domain/charges"
	"basestation/internal/domain/orders"
	"basestation/internal/downloads"
	"basestation/internal/mailer"
	"basestation/internal/ratelimiter"
	"basestation/internal/tax"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	charges     charges.Store
	gateways    *commerce.Manager
	tax         tax.Service
	signer      *downloads.Signer
	orderRefs   *orders.ReferenceGenerator
	mailer      mailer.Client
	rateLimiter ratelimiter.Limiter
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	frontendURL string
	auth        authConfig
	tax         taxConfig
	commerce    commerceConfig
	downloads   downloadConfig
	mail        mailConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

type taxConfig struct {
	apiKey string
	apiURL string
}

type commerceConfig struct {
	apiKey        string
	apiURL        string
	webhookSecret string
	provider      string
}

type downloadConfig struct {
	secret  string
	baseURL string
	exp     time.Duration
}

type mailConfig struct {
	fromEmail string
	mailtrap  mailTrapConfig
}

type mailTrapConfig struct {
	apiKey string
}

type dbConfig struct {
	addr        string
	maxConns    int
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Route("/store", func(r chi.Router) {
			r.Get("/products", app.listProductsHandler)
			r.Get("/products/{productID}", app.getProductHandler)

			r.Post("/tax/calculate", app.calculateTaxHandler)

			r.Route("/payments", func(r chi.Router) {
				r.Post("/charges", app.createChargeHandler)
				r.Get("/charge-status", app.chargeStatusHandler)
				r.Post("/coinbase/webhook", app.coinbaseWebhookHandler)
			})

			r.Get("/downloads/{ref}", app.redeemDownloadHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
