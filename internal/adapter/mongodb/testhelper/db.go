// Package testhelper starts a shared MongoDB container for repository tests.
package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	once      sync.Once
	sharedURI string
	initErr   error
)

// SetupTestDB starts a shared MongoDB container (once for the entire test run)
// and returns a fresh, uniquely named database on it, so parallel tests never
// see each other's documents. The client is closed and the database dropped
// via t.Cleanup; the container lives until the process exits.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	once.Do(func() {
		sharedURI, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(sharedURI))
	if err != nil {
		t.Fatalf("testhelper: failed to connect: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("testhelper: failed to ping: %v", err)
	}

	db := client.Database("test_" + uuid.New().String()[:8])

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := tcmongo.Run(ctx, "mongo:7")
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		return "", fmt.Errorf("get connection string: %w", err)
	}
	return uri, nil
}
