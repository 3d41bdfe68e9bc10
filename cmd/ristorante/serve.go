package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kotaroooo0/ristorante"
	"github.com/kotaroooo0/ristorante/server"
)

const shutdownTimeout = 15 * time.Second

func runServe(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	port := fs.Int("port", env.cfg.Server.Port, "port to listen on")
	if err := fs.Parse(args); err != nil {
		return err
	}

	storage, closeStorage, err := openStorage(env)
	if err != nil {
		return err
	}
	defer closeStorage()
	snapshot, err := ristorante.LoadSnapshot(storage)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	s := server.New(ristorante.NewSnapshotHolder(snapshot), ristorante.NewEnglishNormalizer(),
		server.WithScorer(ristorante.NewScorer(env.cfg.Scorer)),
		server.WithLimits(env.cfg.Search.DefaultLimit, env.cfg.Search.MaxLimit),
		server.WithLogger(env.logger),
		server.WithReloader(func() (*ristorante.Snapshot, error) {
			return ristorante.LoadSnapshot(storage)
		}),
	)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		env.logger.Info("listening", zap.String("addr", httpServer.Addr), zap.Int("documents", snapshot.Documents.Len()))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	env.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
