// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-transfer/internal/analytics"
	"github.com/go-petr/pet-transfer/internal/catalog"
	"github.com/go-petr/pet-transfer/internal/flowdelivery"
	"github.com/go-petr/pet-transfer/internal/flowservice"
	"github.com/go-petr/pet-transfer/internal/gateway"
	"github.com/go-petr/pet-transfer/internal/middleware"
	"github.com/go-petr/pet-transfer/internal/restclient"
	"github.com/go-petr/pet-transfer/pkg/configpkg"
	"github.com/go-petr/pet-transfer/pkg/tokenpkg"
)

// Server holds the handlers router, the flow sessions and configuration.
type Server struct {
	Engine     *gin.Engine
	Config     configpkg.Config
	TokenMaker tokenpkg.Maker

	flows    *flowservice.Service
	notifier *analytics.Notifier
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Close releases every open flow session and flushes pending analytics events.
func (s *Server) Close() error {
	s.flows.Close()
	return s.notifier.Close()
}

func newClient(baseURL, apiKey string, timeout time.Duration) gateway.Client {
	if baseURL == "" {
		return nil
	}

	return restclient.New(baseURL, apiKey, timeout)
}

func newPublisher(logger zerolog.Logger, config configpkg.Config) analytics.Publisher {
	if config.RabbitMQURL == "" {
		return analytics.NopPublisher{}
	}

	producer, err := analytics.NewRabbitProducer(config.RabbitMQURL, config.AnalyticsExchange)
	if err != nil {
		logger.Warn().Err(err).Msg("analytics events are disabled")
		return analytics.NopPublisher{}
	}

	return producer
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	tokenMaker, err := tokenpkg.New(config.TokenType, config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	gw := gateway.New(
		gateway.Clients{
			Payment: newClient(config.PaymentAPIURL, config.APIKey, config.ClientTimeout),
			Contact: newClient(config.ContactAPIURL, config.APIKey, config.ClientTimeout),
			Bank:    newClient(config.BankAPIURL, config.APIKey, config.ClientTimeout),
		},
		gateway.Schemes{
			UD:       config.UDScheme,
			Pesonet:  config.PesonetScheme,
			Instapay: config.InstapayScheme,
		},
		gateway.Options{
			ContactsPageSize: config.ContactsPageSize,
			BanksPageSize:    config.BanksPageSize,
		},
	)

	notifier := analytics.NewNotifier(newPublisher(logger, config), logger)

	flowService := flowservice.New(
		gw,
		catalog.New(config.FeaturedBank),
		notifier,
		flowservice.Config{
			CurrencyCode: config.CurrencyCode,
			SessionTTL:   config.SessionTTL,
		},
		logger,
	)

	flowHandler := flowdelivery.NewHandler(flowService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))
	flowHandler.Register(authRoutes)

	if err := flowdelivery.RegisterValidators(); err != nil {
		return nil, errors.New("cannot register validators")
	}

	server := &Server{
		Engine:     engine,
		Config:     config,
		TokenMaker: tokenMaker,
		flows:      flowService,
		notifier:   notifier,
	}

	return server, nil
}
