package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/booking-service/internal/pkg/query"
)

// Config for the outbox/inbox retention job.
type Config struct {
	SpannerDB     string
	RetentionDays int
	DryRun        bool
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&config.RetentionDays, "retention", 30, "Retention days for processed events")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if config.SpannerDB == "" {
		log.Fatal("Error: -database flag is required")
	}

	ctx := context.Background()

	if err := cleanup(ctx, config); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Println("Cleanup completed successfully")
}

func cleanup(ctx context.Context, config Config) error {
	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -config.RetentionDays)

	log.Printf("Starting event store cleanup...")
	log.Printf("  Processed events cutoff: %s (retention: %d days)", cutoff.Format(time.RFC3339), config.RetentionDays)
	log.Printf("  Dry run: %v", config.DryRun)

	// Unprocessed rows are never touched: the relay and drainer still own them.
	for _, table := range []string{"outbox_events", "inbox_events"} {
		if config.DryRun {
			if err := dryRunTable(ctx, client, table, cutoff); err != nil {
				return err
			}
			continue
		}
		if err := cleanupTable(ctx, client, table, cutoff); err != nil {
			return err
		}
	}

	if config.DryRun {
		log.Println("Run without --dry-run to actually delete events")
	}

	return nil
}

func dryRunTable(ctx context.Context, client *spanner.Client, table string, cutoff time.Time) error {
	stmt := query.From(table).
		Where(query.IsNotNull("processed_on")).
		Where(query.Lte("processed_on", cutoff)).
		Count().
		Build()

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return fmt.Errorf("failed to count events in %s: %w", table, err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return fmt.Errorf("failed to parse count: %w", err)
	}

	log.Printf("DRY RUN: would delete %d events from %s", count, table)
	return nil
}

func cleanupTable(ctx context.Context, client *spanner.Client, table string, cutoff time.Time) error {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`DELETE FROM %s WHERE processed_on IS NOT NULL AND processed_on <= @cutoff`, table),
		Params: map[string]interface{}{
			"cutoff": cutoff,
		},
	}

	_, err := client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		rowCount, err := txn.Update(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		log.Printf("Deleted %d events from %s", rowCount, table)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed for %s: %w", table, err)
	}

	return nil
}
