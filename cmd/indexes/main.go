package main

import (
	"context"
	"flag"
	"time"

	"staysearch/internal/search/repository"
	"staysearch/pkg/config"
)

// Administrative index lifecycle: creates the listing collection indexes,
// optionally wiping all documents first so the consumers can rebuild the
// denormalized view from the event feeds.
func main() {
	recreate := flag.Bool("recreate", false, "delete all indexed listings before creating indexes")
	flag.Parse()

	cfg := config.Load("indexes")
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	repo := repository.NewMongoListingRepository(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *recreate {
		if err := repo.DeleteAll(ctx); err != nil {
			cfg.Log.Fatal("Failed to delete indexed listings", "error", err)
		}
		cfg.Log.Info("Deleted all indexed listings")
	}

	if err := repo.EnsureIndexes(ctx); err != nil {
		cfg.Log.Fatal("Failed to create listing indexes", "error", err)
	}

	cfg.Log.Info("Listing indexes ensured", "database", cfg.MongoDatabaseName)
}
