package http

import (
	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/service"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services
	limiter  *rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().
		Float64("rate_limit", cfg.RateLimit).
		Int("rate_burst", cfg.RateBurst).
		Msg("http handler created")

	return &Handler{
		services: services,
		limiter:  newRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		logger:   logger,
	}
}
