package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/site-settings/internal/adapter"
	"github.com/MKhiriev/site-settings/internal/config"
	"github.com/MKhiriev/site-settings/internal/editor"
	"github.com/MKhiriev/site-settings/internal/logger"
	"github.com/MKhiriev/site-settings/internal/notify"
	"github.com/MKhiriev/site-settings/internal/service"
	"github.com/MKhiriev/site-settings/internal/tui"
	"github.com/MKhiriev/site-settings/internal/workers"
	"github.com/MKhiriev/site-settings/models"
)

// noticeLimit bounds the banner; older notices are dropped first.
const noticeLimit = 5

type App struct {
	auth    service.ClientAuthService
	ui      UI
	workers *workers.Workers
	login   models.Credentials
	closers []func() error
	logger  *logger.Logger
}

// NewApp builds the client from its configuration. The gRPC health checker
// is dialed only when an address is configured.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	var (
		health  adapter.HealthChecker
		closers []func() error
	)
	if cfg.Adapter.GRPCAddress != "" {
		health, err = adapter.NewGRPCHealthChecker(cfg.Adapter.GRPCAddress)
		if err != nil {
			return nil, fmt.Errorf("create health checker: %w", err)
		}
		closers = append(closers, health.Close)
	}

	sectionsPolicy, err := editor.ParsePolicy(cfg.Editor.SectionsPolicy)
	if err != nil {
		return nil, fmt.Errorf("sections policy: %w", err)
	}
	socialPolicy, err := editor.ParsePolicy(cfg.Editor.SocialMediaPolicy)
	if err != nil {
		return nil, fmt.Errorf("social media policy: %w", err)
	}

	services := service.NewClientServices(serverAdapter, health, log)
	queue := notify.NewQueue(cfg.Editor.NotificationTTL, noticeLimit)

	social := editor.NewSocialMediaEditor(services.SettingsService,
		editor.WithPolicy(socialPolicy),
		editor.WithNotifier(queue),
		editor.WithLogger(log.Component("social-editor")),
	)

	ui := tui.New(tui.Dependencies{
		Auth:  services.AuthService,
		Info:  services.InfoService,
		Store: services.SettingsService,
		SectionOptions: []editor.Option{
			editor.WithPolicy(sectionsPolicy),
			editor.WithNotifier(queue),
			editor.WithLogger(log.Component("section-editor")),
		},
		Social:    social,
		Notices:   queue,
		BuildInfo: buildInfo,
		Logger:    log,
	})

	watcher := workers.NewHealthWatcher(services.InfoService, queue, cfg.Workers.HealthInterval, log)

	return &App{
		auth:    services.AuthService,
		ui:      ui,
		workers: workers.NewWorkers(watcher),
		login: models.Credentials{
			Login:    cfg.Adapter.Login,
			Password: cfg.Adapter.Password,
		},
		closers: closers,
		logger:  log,
	}, nil
}

// Run signs in with the configured credentials when both are set, starts the
// background workers and blocks in the UI. A failed automatic sign-in is
// logged and leaves the login screen to the user.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		err = errors.Join(err, a.close())
	}()

	if a.login.Login != "" && a.login.Password != "" {
		if loginErr := a.auth.Login(ctx, a.login); loginErr != nil {
			a.logger.Warn().Err(loginErr).Str("login", a.login.Login).Msg("automatic sign-in failed")
		} else {
			a.logger.Info().Str("login", a.login.Login).Msg("signed in automatically")
		}
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err = a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}

func (a *App) close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	return errors.Join(errs...)
}
