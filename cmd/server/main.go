package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/booking-service/internal/services"
	pb "github.com/light-bringer/booking-service/proto/booking/v1"
)

// Config holds application configuration, loaded from the environment.
type Config struct {
	SpannerDB string `envconfig:"SPANNER_DATABASE" default:"projects/test-project/instances/dev-instance/databases/booking-db"`
	GRPCAddr  string `envconfig:"GRPC_ADDR" default:":9090"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaGroupID string   `envconfig:"KAFKA_GROUP_ID" default:"booking-service"`

	// Kill switch for the inbound consumer.
	ConsumerFailureThreshold int           `envconfig:"CONSUMER_FAILURE_THRESHOLD" default:"5"`
	ConsumerCooldown         time.Duration `envconfig:"CONSUMER_COOLDOWN" default:"30s"`

	RelayInterval   time.Duration `envconfig:"RELAY_INTERVAL" default:"3s"`
	DrainerInterval time.Duration `envconfig:"DRAINER_INTERVAL" default:"3s"`
	ScannerInterval time.Duration `envconfig:"SCANNER_INTERVAL" default:"10s"`
	WorkerBatchSize int64         `envconfig:"WORKER_BATCH_SIZE" default:"30"`
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting booking service",
		zap.String("spanner_database", config.SpannerDB),
		zap.String("grpc_addr", config.GRPCAddr),
		zap.Strings("kafka_brokers", config.KafkaBrokers))

	serviceOpts, err := services.NewServiceOptions(ctx, config.SpannerDB,
		services.BrokerOptions{
			Brokers:          config.KafkaBrokers,
			GroupID:          config.KafkaGroupID,
			FailureThreshold: config.ConsumerFailureThreshold,
			Cooldown:         config.ConsumerCooldown,
		},
		services.WorkerOptions{
			RelayInterval:   config.RelayInterval,
			DrainerInterval: config.DrainerInterval,
			ScannerInterval: config.ScannerInterval,
			BatchSize:       config.WorkerBatchSize,
		},
		logger,
	)
	if err != nil {
		return fmt.Errorf("initialize service: %w", err)
	}
	defer serviceOpts.Close()

	grpcServer := grpc.NewServer()
	pb.RegisterBookingServiceServer(grpcServer, serviceOpts.BookingHandler)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", config.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen on gRPC addr: %w", err)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("gRPC server listening", zap.String("addr", config.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server stopped", zap.Error(err))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := serviceOpts.Consumer.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("consumer stopped", zap.Error(err))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		serviceOpts.Relay.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		serviceOpts.Drainer.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		serviceOpts.Scanner.Run(ctx)
	}()

	<-ctx.Done()
	logger.Info("shutting down gracefully")

	grpcServer.GracefulStop()
	wg.Wait()

	return nil
}
