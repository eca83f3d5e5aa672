package http

import (
	"time"

	"github.com/MKhiriev/site-settings/internal/config"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/internal/utils"
)

type Handler struct {
	services *service.Services

	// hashKey enables payload integrity checks on settings writes when set.
	hashKey        string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().Bool("hashing", cfg.App.HashKey != "").Msg("http handler created")
	return &Handler{
		services:       services,
		hashKey:        cfg.App.HashKey,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
