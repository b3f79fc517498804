package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
)

var (
	spannerDB = flag.String("database", envOrDefault("SPANNER_DATABASE",
		"projects/test-project/instances/dev-instance/databases/booking-db"), "Spanner database")
	table = flag.String("table", "outbox_events", "Event table to inspect (outbox_events or inbox_events)")
	limit = flag.Int64("limit", 10, "Maximum rows to print")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	stmt := spanner.Statement{
		SQL: fmt.Sprintf(`SELECT event_id, event_type, occurred_on, processed_on
			FROM %s ORDER BY occurred_on DESC LIMIT @limit`, *table),
		Params: map[string]interface{}{"limit": *limit},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	fmt.Printf("Events in %s:\n", *table)
	count := 0
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Fatalf("Failed to iterate: %v", err)
		}

		var eventID, eventType string
		var occurredOn spanner.NullTime
		var processedOn spanner.NullTime
		if err := row.Columns(&eventID, &eventType, &occurredOn, &processedOn); err != nil {
			log.Fatalf("Failed to scan: %v", err)
		}

		state := "pending"
		if processedOn.Valid {
			state = "processed"
		}
		fmt.Printf("%d. %s - %s (occurred: %v, %s)\n", count+1, eventType, eventID, occurredOn, state)
		count++
	}

	if count == 0 {
		fmt.Println("No events found!")
	} else {
		fmt.Printf("\nTotal: %d events\n", count)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
