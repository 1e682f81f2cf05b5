package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/kmilner/schoology-mcp/internal/adapters/config"
	browserjar "github.com/kmilner/schoology-mcp/internal/adapters/cookiejar/browser"
	inlinejar "github.com/kmilner/schoology-mcp/internal/adapters/cookiejar/inline"
	"github.com/kmilner/schoology-mcp/internal/adapters/schoology"
	"github.com/kmilner/schoology-mcp/internal/application"
	"github.com/kmilner/schoology-mcp/internal/domain"
	"github.com/kmilner/schoology-mcp/internal/logging"
	"github.com/kmilner/schoology-mcp/internal/ports"
)

type app struct {
	cfg        config.Config
	cfgErr     error
	log        *slog.Logger
	httpClient *http.Client
	now        func() time.Time

	sessionOnce sync.Once
	session     domain.Session
	sessionErr  error
}

func wireApp() *app {
	cfg, cfgErr := config.Load(viper.New())

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &app{
		cfg:        cfg,
		cfgErr:     cfgErr,
		log:        logging.New(os.Stderr, cfg.LogLevel),
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// resolveSession builds the authenticated request context once per process;
// every command and tool invocation afterwards replays the same session.
func (a *app) resolveSession(ctx context.Context) (domain.Session, error) {
	if a.cfgErr != nil {
		return domain.Session{}, a.cfgErr
	}

	a.sessionOnce.Do(func() {
		a.session, a.sessionErr = buildSession(ctx, a.cfg, a.log)
	})

	return a.session, a.sessionErr
}

func (a *app) portalService(ctx context.Context) (*application.Service, error) {
	session, err := a.resolveSession(ctx)
	if err != nil {
		return nil, err
	}

	portal := schoology.NewClient(a.httpClient, session, a.cfg.CoursesEndpoint, a.cfg.UpcomingEndpoint)

	return application.NewService(portal, ports.SystemClock{}, a.log), nil
}

func buildSession(ctx context.Context, cfg config.Config, log *slog.Logger) (domain.Session, error) {
	if cfg.Cookie == "" && cfg.Host() == "" {
		return domain.Session{}, errors.New("browser cookie harvest requires base_url; set SCHOOLOGY_BASE_URL or provide an explicit cookie")
	}

	cookies, err := cookieSource(cfg).Cookies(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("resolve session cookies: %w", err)
	}

	log.DebugContext(ctx, "resolved session cookies", "count", len(cookies))

	var baseURL string
	if host := cfg.Host(); host != "" {
		baseURL = "https://" + host
	}

	return domain.NewSession(baseURL, cookies), nil
}

func cookieSource(cfg config.Config) ports.CookieSource {
	if cfg.Cookie != "" {
		return inlinejar.NewSource(cfg.Cookie)
	}

	return browserjar.NewSource(cfg.Host(), cfg.Browser)
}
