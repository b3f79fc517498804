package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

// SetupSpannerTest creates a test Spanner client and returns a cleanup function.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	// Clean database before test
	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

// GetTestSpannerDB returns the test Spanner database string.
func GetTestSpannerDB() string {
	if db := os.Getenv("TEST_SPANNER_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/booking-test"
}

// CleanDatabase truncates all tables for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	ctx := context.Background()

	mutations := []*spanner.Mutation{
		spanner.Delete("outbox_events", spanner.AllKeys()),
		spanner.Delete("inbox_events", spanner.AllKeys()),
		spanner.Delete("bookings", spanner.AllKeys()),
		spanner.Delete("vehicles", spanner.AllKeys()),
		spanner.Delete("vehicle_models", spanner.AllKeys()),
		spanner.Delete("customers", spanner.AllKeys()),
	}

	_, err := client.Apply(ctx, mutations)
	require.NoError(t, err, "failed to clean database")
}

// AssertRowCount verifies a table holds exactly the expected number of rows.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expected int64) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{SQL: "SELECT COUNT(*) FROM " + table}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to count rows in %s", table)

	var count int64
	require.NoError(t, row.Columns(&count))
	require.Equal(t, expected, count, "unexpected row count in %s", table)

	_, err = iter.Next()
	require.Equal(t, iterator.Done, err)
}
