package main

import (
	"context"

	"staysearch/internal/search/handler"
	"staysearch/internal/search/indexer"
	"staysearch/internal/search/repository"
	"staysearch/internal/search/service"
	"staysearch/internal/search/validator"
	"staysearch/pkg/app"
	"staysearch/pkg/config"
	"staysearch/pkg/kafka"
	kafka_config "staysearch/pkg/kafka/config"
	kafka_middleware "staysearch/pkg/kafka/middleware"
)

const ServiceName = "search"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	kafkaCfg := kafka_config.Load()
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	cfg.Log.Info("Starting Search service")

	repo := repository.NewMongoListingRepository(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoWriteTimeout)
	if err := repo.EnsureIndexes(ctx); err != nil {
		cancel()
		cfg.Log.Fatal("Failed to ensure listing indexes", "error", err)
	}
	cancel()

	searchService := service.NewSearchService(repo, validator.NewRequestValidator(cfg.Log), cfg)
	ix := indexer.New(repo, validator.NewEventValidator(cfg.Log), cfg.Log)

	accommodationConsumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.AccommodationTopic,
		cfg.ConsumerGroup,
		cfg.DLQTopic,
		ix.HandleAccommodationEvent,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create accommodation events consumer", "error", err)
	}
	accommodationConsumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))

	availabilityConsumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.AvailabilityTopic,
		cfg.ConsumerGroup,
		cfg.DLQTopic,
		ix.HandleAvailabilityEvent,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create availability events consumer", "error", err)
	}
	availabilityConsumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewSearchHandler(searchService, cfg.Log))
	serverApp.AddRunner(app.Runner{
		Name:  "accommodation-events-consumer",
		Run:   accommodationConsumer.Start,
		Close: accommodationConsumer.Close,
	})
	serverApp.AddRunner(app.Runner{
		Name:  "availability-events-consumer",
		Run:   availabilityConsumer.Start,
		Close: availabilityConsumer.Close,
	})

	cfg.Log.Info("Search service initialized", "database", cfg.MongoDatabaseName)
	serverApp.Run()
}
