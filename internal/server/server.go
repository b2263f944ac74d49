package server

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/mdjukic/inventory-api/internal/config"
	"github.com/mdjukic/inventory-api/internal/modules/auth"
	authcommands "github.com/mdjukic/inventory-api/internal/modules/auth/commands"
	authdomain "github.com/mdjukic/inventory-api/internal/modules/auth/domain"
	"github.com/mdjukic/inventory-api/internal/modules/core"
	"github.com/mdjukic/inventory-api/internal/modules/product"
	productcommands "github.com/mdjukic/inventory-api/internal/modules/product/commands"
	productqueries "github.com/mdjukic/inventory-api/internal/modules/product/queries"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/migrate-go"
	"github.com/go-chi/chi"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = (*HTTPServer)(nil)

// HTTPServer is the composition root. Handler registration happens here
// and nowhere else; a duplicate registration is a configuration error
// that fails process start.
type HTTPServer struct {
	server *http.Server
}

func NewHTTPServer(config config.Config) (Server, error) {
	baseCtx := context.Background()

	core.SetLogger(config.Logger)

	db, err := sql.Open("postgres", config.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := migrate.Run(baseCtx, db, config.MigrationsPath); err != nil {
		return nil, err
	}

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: config.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: config.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	// handler registration

	// product

	repository := product.NewPostgresRepository(db)

	err = mediator.RegisterRequestHandler[productcommands.AddProductCommand, productcommands.AddProductResponse](
		productcommands.NewAddProductCommandHandler(repository),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[productcommands.UpdateProductCommand, productcommands.UpdateProductResponse](
		productcommands.NewUpdateProductCommandHandler(repository),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[productcommands.DeleteProductCommand, productcommands.DeleteProductResponse](
		productcommands.NewDeleteProductCommandHandler(repository),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[productqueries.GetProductQuery, productqueries.GetProductResponse](
		productqueries.NewGetProductQueryHandler(repository),
	)
	if err != nil {
		return nil, err
	}

	err = mediator.RegisterRequestHandler[productqueries.ListProductsQuery, []product.DTO](
		productqueries.NewListProductsQueryHandler(repository),
	)
	if err != nil {
		return nil, err
	}

	// auth

	passwordHasher := authdomain.NewPasswordHasher(sha256.New)

	verifier, err := authdomain.NewFixedAdminVerifier(
		config.Auth.AdminEmail,
		config.Auth.AdminPassword,
		passwordHasher,
	)
	if err != nil {
		return nil, err
	}

	issuer := auth.NewTokenIssuer(
		config.Auth.Secret,
		config.Auth.Issuer,
		config.Auth.Audience,
		time.Duration(config.Auth.ExpirationHours)*time.Hour,
	)

	err = mediator.RegisterRequestHandler[authcommands.LoginCommand, authcommands.LoginResponse](
		authcommands.NewLoginCommandHandler(verifier, issuer),
	)
	if err != nil {
		return nil, err
	}

	// http

	metrics := core.NewHTTPMetrics(prometheus.DefaultRegisterer)
	loginLimiter := core.NewClientRateLimiter(rate.Every(6*time.Second), 10)

	r := chi.NewRouter()
	r.Use(core.CorrelationIDMiddleware)
	r.Use(metrics.Middleware)

	r.Handle("/metrics", core.MetricsHandler(prometheus.DefaultGatherer))

	r.With(loginLimiter.Middleware).Post("/auth/login", authcommands.HandleLogin)

	r.Route("/products", func(r chi.Router) {
		r.Use(auth.AuthenticationMiddleware(issuer))

		r.Post("/", productcommands.HandleAddProduct)
		r.Get("/", productqueries.HandleListProducts)
		r.Get("/{id}", productqueries.HandleGetProduct)
		r.Put("/{id}", productcommands.HandleUpdateProduct)
		r.Delete("/{id}", productcommands.HandleDeleteProduct)
	})

	server := http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(config.Port)),
		Handler: r,
	}

	return &HTTPServer{server: &server}, nil
}

func (s *HTTPServer) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	return s.server.Close()
}
