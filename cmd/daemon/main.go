package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/mediastage/internal/asset"
	"github.com/genricoloni/mediastage/internal/config"
	"github.com/genricoloni/mediastage/internal/display"
	"github.com/genricoloni/mediastage/internal/domain"
	"github.com/genricoloni/mediastage/internal/element"
	"github.com/genricoloni/mediastage/internal/engine"
	"github.com/genricoloni/mediastage/internal/input"
	"github.com/genricoloni/mediastage/internal/mpris"
	"github.com/genricoloni/mediastage/internal/render"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AppOptions is the full dependency graph of the daemon
var AppOptions = fx.Options(
	// Logger configuration
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	// Provide dependencies
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		display.NewScreenResolution,
		fx.Annotate(asset.NewLoader, fx.As(new(domain.AssetLoader))),
		fx.Annotate(element.NewFactory, fx.As(new(domain.ElementFactory))),
		render.NewCompositor,
		engine.NewEngine,
		newPlayer,
		newConsole,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(AppOptions)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// Wait for interrupt signal
	<-ctx.Done()

	// Stop the application gracefully
	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// newPlayer publishes the engine as an MPRIS player
func newPlayer(logger *zap.Logger, cfg domain.Config, eng *engine.Engine) *mpris.Player {
	return mpris.NewPlayer(logger, cfg, eng)
}

// newConsole drives the engine from standard input
func newConsole(logger *zap.Logger, eng *engine.Engine, compositor *render.Compositor) *input.Console {
	return input.NewConsole(logger, eng, compositor, os.Stdin, os.Stdout)
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, eng *engine.Engine, player *mpris.Player, console *input.Console) {
	var (
		cancel  context.CancelFunc
		runners *errgroup.Group
	)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := eng.Start(ctx); err != nil {
				return err
			}

			eng.Subscribe(player)
			if err := player.Start(ctx); err != nil {
				return err
			}

			var runCtx context.Context
			runCtx, cancel = context.WithCancel(context.Background())
			runners, runCtx = errgroup.WithContext(runCtx)
			runners.Go(func() error {
				return console.Run(runCtx)
			})

			logger.Info("Mediastage Daemon Started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")

			cancel()
			if err := runners.Wait(); err != nil {
				logger.Warn("Runner exited with error", zap.Error(err))
			}

			var g errgroup.Group
			g.Go(func() error { return player.Stop(ctx) })
			g.Go(func() error { return eng.Stop(ctx) })
			return g.Wait()
		},
	})
}
