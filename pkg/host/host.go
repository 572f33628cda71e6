package host

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/glasspane/glasspane/pkg/bridge"
	"github.com/glasspane/glasspane/pkg/commands"
	"github.com/glasspane/glasspane/pkg/common"
	"github.com/glasspane/glasspane/pkg/paths"
	"github.com/glasspane/glasspane/pkg/types"
)

// Host owns the command bridge a frontend connects to. It builds the
// command registry once at startup, serves it over localhost HTTP, and
// coordinates graceful shutdown.
type Host struct {
	Config     types.AppConfig
	httpServer *http.Server
	echo       *echo.Echo
	listener   net.Listener
	ctx        context.Context
	cancelFunc context.CancelFunc

	baseRouteGroup *echo.Group
	ipcRouteGroup  *echo.Group

	registry *bridge.Registry
	bus      *common.EventBus
	resolver *paths.Resolver
}

func NewHost() (*Host, error) {
	configManager, err := common.NewConfigManager[types.AppConfig]()
	if err != nil {
		return nil, err
	}
	return NewHostWithConfig(configManager.GetConfig())
}

// NewHostWithConfig builds a host from an already-loaded config. Use this
// when embedding the host in another process (e.g., CLI).
func NewHostWithConfig(config types.AppConfig) (*Host, error) {
	if err := config.App.Validate(); err != nil {
		return nil, err
	}

	// Setup logging
	if config.DebugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if config.PrettyLogs {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	ctx, cancel := context.WithCancel(context.Background())
	host := &Host{
		Config:     config,
		ctx:        ctx,
		cancelFunc: cancel,
		registry:   bridge.NewRegistry(),
		bus:        common.NewEventBus(),
		resolver:   paths.NewResolver(config.App.Identifier),
	}

	return host, nil
}

// AppInfo returns the identity snapshot exposed to the frontend
func (h *Host) AppInfo() types.AppInfo {
	return types.AppInfo{
		Name:       h.Config.App.Name,
		Identifier: h.Config.App.Identifier,
		Version:    h.Config.App.Version,
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

func (h *Host) initHTTP() error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(middleware.RemoveTrailingSlash())

	// Configure logging middleware
	if h.Config.Bridge.EnablePrettyLogs {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Format: "${time_rfc3339} ${method} ${uri} ${status} ${latency_human}\n",
		}))
	}

	// CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: h.Config.Bridge.CORS.AllowedOrigins,
		AllowHeaders: h.Config.Bridge.CORS.AllowedHeaders,
		AllowMethods: h.Config.Bridge.CORS.AllowedMethods,
	}))

	e.Use(middleware.Recover())

	h.echo = e
	h.httpServer = &http.Server{
		Addr:    h.Config.Bridge.Addr(),
		Handler: e,
	}

	h.baseRouteGroup = e.Group(bridge.HttpServerBaseRoute)
	h.ipcRouteGroup = e.Group(bridge.HttpServerIPCRoute)

	// Invocations require the bridge token; the health check stays open
	h.ipcRouteGroup.Use(h.requireAuthToken())

	bridge.NewHealthGroup(h.baseRouteGroup.Group("/health"), h.AppInfo())

	return nil
}

func (h *Host) registerCommands() error {
	for _, cmd := range commands.Builtin(h.AppInfo(), h.resolver) {
		if err := h.registry.Register(cmd); err != nil {
			return err
		}
		log.Debug().Str("command", cmd.Name()).Msg("registered command")
	}

	bridge.NewIPCGroup(h.ipcRouteGroup, h.registry, h.bus)

	log.Info().
		Int("commands", len(h.registry.List())).
		Strs("available", h.registry.List()).
		Msg("command bridge registered")

	return nil
}

// StartAsync starts the bridge server without blocking. Use this when
// embedding the host in another process (e.g., CLI).
func (h *Host) StartAsync() error {
	err := h.initHTTP()
	if err != nil {
		return fmt.Errorf("failed to initialize http server: %w", err)
	}

	err = h.registerCommands()
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	// Listen synchronously so Addr reports the bound port even when the
	// configured port is 0
	lis, err := net.Listen("tcp", h.Config.Bridge.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on bridge address: %w", err)
	}
	h.listener = lis

	go func() {
		if err := h.httpServer.Serve(lis); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http server error")
		}
	}()

	log.Info().
		Str("addr", h.Addr()).
		Msg("bridge http server running")

	h.bus.Emit(common.Event{Type: common.EventAppReady, Data: map[string]any{
		"addr": h.Addr(),
	}})

	return nil
}

// Addr returns the address the bridge is listening on
func (h *Host) Addr() string {
	if h.listener != nil {
		return h.listener.Addr().String()
	}
	return h.Config.Bridge.Addr()
}

// Registry returns the command registry for registering extra commands.
// Register before StartAsync; the bridge reads it once serving begins.
func (h *Host) Registry() *bridge.Registry {
	return h.registry
}

// EventBus returns the host event bus
func (h *Host) EventBus() *common.EventBus {
	return h.bus
}

func (h *Host) Start() error {
	if err := h.StartAsync(); err != nil {
		return err
	}

	terminationSignal := make(chan os.Signal, 1)
	signal.Notify(terminationSignal, os.Interrupt, syscall.SIGTERM)
	<-terminationSignal

	log.Info().Msg("termination signal received. shutting down...")
	h.shutdown()

	return nil
}

// Shutdown gracefully shuts down the host (exported for external use)
func (h *Host) Shutdown() {
	h.shutdown()
}

func (h *Host) shutdown() {
	h.bus.Emit(common.Event{Type: common.EventAppShutdown})

	ctx, cancel := context.WithTimeout(context.Background(), h.Config.Bridge.ShutdownTimeout)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	// Stop HTTP server
	eg.Go(func() error {
		return h.httpServer.Shutdown(ctx)
	})

	h.cancelFunc()

	if err := eg.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to shutdown host gracefully")
	}

	log.Info().Msg("host stopped")
}

// requireAuthToken returns middleware that validates the bridge token
func (h *Host) requireAuthToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Skip auth if no bridge token is configured
			if h.Config.Bridge.AuthToken == "" {
				return next(c)
			}

			token := c.Request().Header.Get("Authorization")
			expected := "Bearer " + h.Config.Bridge.AuthToken
			if token == "" || token != expected {
				log.Debug().
					Str("path", c.Path()).
					Bool("token_present", token != "").
					Msg("bridge token validation failed")
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "bridge token required",
				})
			}
			return next(c)
		}
	}
}
