package main

import (
	"context"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/okhazov/minesweeper-agent/internal/config"
	"github.com/okhazov/minesweeper-agent/internal/middleware"
	"github.com/okhazov/minesweeper-agent/internal/solve"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	solver := solve.New()
	solver.MaxFrontier = config.SolverMaxFrontier(solver.MaxFrontier)
	solver.MaxNodes = config.SolverMaxNodes(solver.MaxNodes)
	solver.Logger = logger

	app := &application{
		logger:   logger,
		solver:   solver,
		sessions: newSessionStore(),
		rnd:      createRand(),
	}

	port := config.Port()
	server := &http.Server{
		Addr:        port,
		ReadTimeout: time.Second * 15,
		IdleTimeout: time.Second * 60,
		Handler: middleware.Wrap(app.routes(),
			middleware.Logging(logger),
			middleware.Cors(),
		),
	}

	logger.Info("solver server online", slog.String("port", port))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Info("exit", slog.Any("reason", err))
	}
}
