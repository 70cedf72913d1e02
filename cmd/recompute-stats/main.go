// Command recompute-stats rebuilds every cached statistics block (text word
// counts, comprehension percentages, collection aggregates) from the current
// card set. Run it after bulk imports or schema repairs; normal operation
// keeps the caches current through the service cascades.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/mpetrenko/linguareader-backend/internal/adapter/mongodb"
	cardrepo "github.com/mpetrenko/linguareader-backend/internal/adapter/mongodb/card"
	collectionrepo "github.com/mpetrenko/linguareader-backend/internal/adapter/mongodb/collection"
	textrepo "github.com/mpetrenko/linguareader-backend/internal/adapter/mongodb/text"
	"github.com/mpetrenko/linguareader-backend/internal/app"
	"github.com/mpetrenko/linguareader-backend/internal/config"
	"github.com/mpetrenko/linguareader-backend/internal/service/stats"
	"github.com/mpetrenko/linguareader-backend/pkg/ctxutil"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = ctxutil.WithRequestID(ctx, uuid.NewString())

	client, db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		logger.ErrorContext(ctx, "connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	svc := stats.NewService(logger,
		cardrepo.New(db),
		textrepo.New(db),
		collectionrepo.New(db),
	)

	started := time.Now()
	if err := svc.RecomputeAll(ctx); err != nil {
		logger.ErrorContext(ctx, "recompute failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "recompute completed",
		slog.Duration("elapsed", time.Since(started)),
	)
}
