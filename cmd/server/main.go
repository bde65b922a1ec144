package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lockerhub/boxhub/internal/config"
	"github.com/lockerhub/boxhub/internal/db"
	"github.com/lockerhub/boxhub/internal/kafka"
	"github.com/lockerhub/boxhub/internal/kv"
	"github.com/lockerhub/boxhub/internal/kv/filekv"
	"github.com/lockerhub/boxhub/internal/kv/pgkv"
	"github.com/lockerhub/boxhub/internal/logger"
	"github.com/lockerhub/boxhub/internal/server"
	"github.com/lockerhub/boxhub/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	log := logger.New(cfg.Debug)
	defer func() {
		_ = log.Sync()
	}()

	kvStore, cleanup, err := newKVStore(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialize storage backend", zap.Error(err))
	}
	defer cleanup()

	st := store.New(kvStore, log)
	st.Load(ctx)

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewKafkaProducer(cfg.KafkaBrokers, log)
	} else {
		producer = kafka.NewConsoleProducer(log)
	}

	auditManager := server.NewAuditManager(producer, cfg.AuditTopic, log, 2, 5, 500*time.Millisecond)
	srv := server.New(st, auditManager, log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx, cfg.ServerPort)
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}

		// Give pending storage writes a chance to land before exit.
		st.Flush()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}

	log.Info("server stopped")
}

func newKVStore(ctx context.Context, cfg config.Config) (kv.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		database, err := db.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		pgStore := pgkv.New(database)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		return pgStore, database.Close, nil

	default:
		fileStore, err := filekv.New(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return fileStore, func() {}, nil
	}
}
