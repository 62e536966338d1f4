package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupTestDB connects to a local test MongoDB. Tests that need it are
// skipped when no server is reachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return client.Database("voltline_test")
}

// CleanupTestDB drops the test collections and closes the connection.
func CleanupTestDB(t *testing.T, db *mongo.Database) {
	t.Helper()
	if db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, name := range []string{"orders", "products", "counters"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			t.Logf("failed to drop collection %s: %v", name, err)
		}
	}

	if err := db.Client().Disconnect(ctx); err != nil {
		t.Logf("failed to disconnect test client: %v", err)
	}
}
