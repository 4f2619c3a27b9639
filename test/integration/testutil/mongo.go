package testutil

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staysearch/pkg/client"
	"staysearch/pkg/config"
	"staysearch/pkg/logger"
)

const (
	DefaultMongoURI     = "mongodb://localhost:27017"
	DefaultDatabaseName = "staysearch_test"
	ConnectionTimeout   = 10 * time.Second
)

// MongoHelper provides MongoDB test utilities for repository-level
// integration tests.
type MongoHelper struct {
	Client   *mongo.Client
	Database *mongo.Database
	DBName   string
}

// NewMongoHelper connects to the integration MongoDB (TEST_MONGO_URI, falling
// back to localhost). When no store is reachable the calling test is skipped,
// so the suite stays runnable without the compose environment.
func NewMongoHelper(t *testing.T) *MongoHelper {
	t.Helper()

	mongoURI := os.Getenv("TEST_MONGO_URI")
	if mongoURI == "" {
		mongoURI = DefaultMongoURI
	}
	dbName := os.Getenv("TEST_MONGO_DATABASE")
	if dbName == "" {
		dbName = DefaultDatabaseName
	}

	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		t.Skipf("skipping integration test, cannot connect to MongoDB at %s: %v", mongoURI, err)
	}
	if err := mc.Ping(ctx, nil); err != nil {
		t.Skipf("skipping integration test, MongoDB at %s not responding: %v", mongoURI, err)
	}

	return &MongoHelper{
		Client:   mc,
		Database: mc.Database(dbName),
		DBName:   dbName,
	}
}

// Close closes the MongoDB connection.
func (m *MongoHelper) Close(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		t.Logf("warning: failed to disconnect from MongoDB: %v", err)
	}
}

// CleanCollection removes all documents from a collection so each test starts
// from a known-empty state.
func (m *MongoHelper) CleanCollection(t *testing.T, collectionName string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := m.Database.Collection(collectionName).DeleteMany(ctx, map[string]interface{}{}); err != nil {
		t.Fatalf("failed to clean collection %s: %v", collectionName, err)
	}
}

// Config builds a service config wired to the helper's live client, for
// constructing repositories against the integration store.
func (m *MongoHelper) Config() *config.Config {
	c := client.NewClient()
	c.Mongo = m.Client

	return &config.Config{
		MongoDatabaseName: m.DBName,
		MongoReadTimeout:  5 * time.Second,
		MongoWriteTimeout: 5 * time.Second,
		Log: logger.New(logger.Config{
			Level:   logger.ERROR,
			Format:  logger.JSON,
			Output:  io.Discard,
			Service: "integration-test",
		}),
		Client: c,
	}
}
