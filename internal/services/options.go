package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	bookingrepo "github.com/light-bringer/booking-service/internal/app/booking/repo"
	"github.com/light-bringer/booking-service/internal/app/booking/usecases/book_vehicle"
	"github.com/light-bringer/booking-service/internal/app/booking/usecases/cancel_booking"
	"github.com/light-bringer/booking-service/internal/app/booking/usecases/complete_booking"
	"github.com/light-bringer/booking-service/internal/app/booking/usecases/expire_booking"
	"github.com/light-bringer/booking-service/internal/app/booking/usecases/process_occupation"
	customerrepo "github.com/light-bringer/booking-service/internal/app/customer/repo"
	"github.com/light-bringer/booking-service/internal/app/customer/usecases/add_customer"
	"github.com/light-bringer/booking-service/internal/app/customer/usecases/record_canceled_booking"
	"github.com/light-bringer/booking-service/internal/app/customer/usecases/record_trip"
	"github.com/light-bringer/booking-service/internal/app/customer/usecases/revoke_booking_rights"
	vehiclerepo "github.com/light-bringer/booking-service/internal/app/vehicle/repo"
	"github.com/light-bringer/booking-service/internal/app/vehicle/usecases/add_vehicle"
	"github.com/light-bringer/booking-service/internal/app/vehicle/usecases/add_vehicle_model"
	"github.com/light-bringer/booking-service/internal/app/vehicle/usecases/change_model_category"
	"github.com/light-bringer/booking-service/internal/app/vehicle/usecases/delete_vehicle"
	"github.com/light-bringer/booking-service/internal/broker"
	"github.com/light-bringer/booking-service/internal/dispatch"
	"github.com/light-bringer/booking-service/internal/inbox"
	"github.com/light-bringer/booking-service/internal/outbox"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
	grpcbooking "github.com/light-bringer/booking-service/internal/transport/grpc/booking"
	"github.com/light-bringer/booking-service/internal/workers"
)

// BrokerOptions configures the Kafka producer and consumer.
type BrokerOptions struct {
	Brokers          []string
	GroupID          string
	FailureThreshold int
	Cooldown         time.Duration
}

// WorkerOptions configures the background loops.
type WorkerOptions struct {
	RelayInterval   time.Duration
	DrainerInterval time.Duration
	ScannerInterval time.Duration
	BatchSize       int64
}

// ServiceOptions holds all wired application dependencies.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	BookingHandler *grpcbooking.Handler

	Producer *broker.Producer
	Consumer *broker.Consumer

	Relay   *workers.Relay
	Drainer *workers.Drainer
	Scanner *workers.Scanner
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(
	ctx context.Context,
	spannerDB string,
	brokerOpts BrokerOptions,
	workerOpts WorkerOptions,
	logger *zap.Logger,
) (*ServiceOptions, error) {
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("create Spanner client: %w", err)
	}

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	bookings := bookingrepo.NewBookingRepo(spannerClient)
	customers := customerrepo.NewCustomerRepo(spannerClient)
	vehicles := vehiclerepo.NewVehicleRepo(spannerClient)
	models := vehiclerepo.NewModelRepo(spannerClient)
	outboxStore := outbox.NewStore(spannerClient)
	inboxStore := inbox.NewStore(spannerClient)

	// Booking commands.
	bookVehicleUseCase := book_vehicle.NewInteractor(bookings, customers, vehicles, models, comm, clk)
	cancelBookingUseCase := cancel_booking.NewInteractor(bookings, comm, clk)
	completeBookingUseCase := complete_booking.NewInteractor(bookings, comm, clk)
	expireBookingUseCase := expire_booking.NewInteractor(bookings, comm, clk)
	processOccupationUseCase := process_occupation.NewInteractor(bookings, comm, clk)

	// Customer commands.
	addCustomerUseCase := add_customer.NewInteractor(customers, comm, clk)
	revokeRightsUseCase := revoke_booking_rights.NewInteractor(customers, comm, clk)
	recordTripUseCase := record_trip.NewInteractor(customers, comm, clk)
	recordCanceledUseCase := record_canceled_booking.NewInteractor(customers, comm, clk)

	// Vehicle commands.
	addModelUseCase := add_vehicle_model.NewInteractor(models, comm, clk)
	changeCategoryUseCase := change_model_category.NewInteractor(models, comm, clk)
	addVehicleUseCase := add_vehicle.NewInteractor(vehicles, models, comm, clk)
	deleteVehicleUseCase := delete_vehicle.NewInteractor(vehicles, comm, clk)

	// Inbound event routing. Every inbound event type must have a handler,
	// enforced at startup so a topic subscription never dead-letters.
	registry := dispatch.NewInboundRegistry(dispatch.Commands{
		AddCustomer:         addCustomerUseCase,
		RevokeBookingRights: revokeRightsUseCase,
		AddVehicleModel:     addModelUseCase,
		ChangeModelCategory: changeCategoryUseCase,
		CompleteBooking:     completeBookingUseCase,
		ProcessOccupation:   processOccupationUseCase,
		AddVehicle:          addVehicleUseCase,
		DeleteVehicle:       deleteVehicleUseCase,
	})
	if err := registry.ValidateTotal(dispatch.InboundTypes()); err != nil {
		spannerClient.Close()
		return nil, fmt.Errorf("inbound registry: %w", err)
	}

	producer, err := broker.NewProducer(brokerOpts.Brokers)
	if err != nil {
		spannerClient.Close()
		return nil, fmt.Errorf("create producer: %w", err)
	}

	consumer, err := broker.NewConsumer(broker.ConsumerConfig{
		Brokers:          brokerOpts.Brokers,
		GroupID:          brokerOpts.GroupID,
		Topics:           dispatch.InboundTypes(),
		FailureThreshold: brokerOpts.FailureThreshold,
		Cooldown:         brokerOpts.Cooldown,
	}, inboxStore, logger)
	if err != nil {
		producer.Close()
		spannerClient.Close()
		return nil, fmt.Errorf("create consumer: %w", err)
	}

	relay := workers.NewRelay(
		outboxStore,
		producer,
		broker.DefaultOutboundTopics(),
		workers.LoyaltyReactions(recordTripUseCase, recordCanceledUseCase),
		clk,
		logger,
		workerOpts.RelayInterval,
		workerOpts.BatchSize,
	)
	drainer := workers.NewDrainer(
		inboxStore,
		registry,
		clk,
		logger,
		workerOpts.DrainerInterval,
		workerOpts.BatchSize,
	)
	scanner := workers.NewScanner(
		bookings,
		expireBookingUseCase,
		clk,
		logger,
		workerOpts.ScannerInterval,
		workerOpts.BatchSize,
	)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		BookingHandler: grpcbooking.NewHandler(bookVehicleUseCase, cancelBookingUseCase),
		Producer:       producer,
		Consumer:       consumer,
		Relay:          relay,
		Drainer:        drainer,
		Scanner:        scanner,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.Consumer != nil {
		_ = s.Consumer.Close()
	}
	if s.Producer != nil {
		_ = s.Producer.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
