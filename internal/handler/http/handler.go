package http

import (
	"time"

	"github.com/MKhiriev/go-foodmap/internal/config"
	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/service"
)

type Handler struct {
	services *service.Services

	limiter           *ipRateLimiter
	requestTimeout    time.Duration
	trustProxyHeaders bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services:          services,
		limiter:           newIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		requestTimeout:    cfg.RequestTimeout,
		trustProxyHeaders: cfg.TrustProxyHeaders,
		logger:            logger,
	}

	logger.Info().
		Bool("rate_limit", h.limiter != nil).
		Dur("request_timeout", h.requestTimeout).
		Bool("trust_proxy_headers", h.trustProxyHeaders).
		Msg("http handler created")
	return h
}
