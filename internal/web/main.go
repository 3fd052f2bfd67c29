package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/datasetsmx/storefront/internal/config"
	fiberlog "github.com/datasetsmx/storefront/internal/logger/adapter/fiber"
	"github.com/datasetsmx/storefront/internal/web/handler"
	"github.com/datasetsmx/storefront/internal/web/handler/bundles"
	"github.com/datasetsmx/storefront/internal/web/handler/home"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus registry.
	MetricsPath = "/metrics"

	// SamplesPath serves the files of Webserver.PublicDir.
	SamplesPath = "/muestras"

	staticMaxAge = 86400
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the configured port.
func (s *Service) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Webserver.Port)

	var doneFiber = make(chan bool)

	go func() {
		log.Info().Str("addr", addr).Str("url", s.cfg.Webserver.URL).Msg("storefront listening")

		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// Alive reports whether /checkalive answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// WaitShutdown waits for a signal and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown fails the health check for ShutDownTime seconds, then stops fiber.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// NewEngine returns the template engine over the embedded templates, or
// over the working tree in dev mode.
func NewEngine(devMode bool) *html.Engine {
	if devMode {
		engine := html.New("./internal/web/templates", ".gohtml")
		engine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")

		return engine
	}

	return html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), ".gohtml")
}

// New creates the web service and registers every route.
func New(deps handler.Deps) (*Service, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	cfg := deps.Config

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          NewEngine(cfg.DevMode),
		},
	)

	service := &Service{
		cfg: cfg,
		App: app,
		// dev mode skips the load balancer grace period
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlog.New(fiberlog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))
	app.Use(helmet.New())
	app.Use(compress.New())

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	staticCfg := filesystem.Config{
		Root:       http.FS(embeddedStaticFiles),
		PathPrefix: "static",
		Browse:     cfg.Webserver.BrowseStatic,
	}
	if cfg.Webserver.CacheEnabled {
		staticCfg.MaxAge = staticMaxAge
	}

	app.Use("/static", filesystem.New(staticCfg))

	if cfg.Webserver.PublicDir != "" {
		app.Static(SamplesPath, cfg.Webserver.PublicDir, fiber.Static{
			Download: true,
			Browse:   cfg.Webserver.BrowseStatic,
		})
	}

	for _, h := range []handler.Service{&home.Handler, &bundles.Handler} {
		if err := h.Init(app, deps); err != nil {
			return nil, err
		}
	}

	return service, nil
}
