package bootstrap

import (
	"log/slog"
	"time"

	"clubvenue/internal/infra/catalogclient"
	"clubvenue/internal/infra/schedulingclient"
	"clubvenue/internal/infra/submissionclient"
	"clubvenue/internal/pkg/config"
	"clubvenue/internal/usecase"

	"go.uber.org/fx"
)

// ClientsModule wires the three upstream HTTP clients onto their engine ports.
var ClientsModule = fx.Module("clients",
	fx.Provide(
		NewBookingLocation,
		fx.Annotate(
			NewCatalogClient,
			fx.As(new(usecase.CatalogGateway)),
		),
		fx.Annotate(
			NewSchedulingClient,
			fx.As(new(usecase.ConflictChecker)),
		),
		fx.Annotate(
			NewSubmissionClient,
			fx.As(new(usecase.SubmissionSink)),
		),
	),
)

func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}

func NewCatalogClient(cfg config.Config, logger *slog.Logger) *catalogclient.Client {
	return catalogclient.New(cfg.Catalog, logger)
}

func NewSchedulingClient(cfg config.Config, logger *slog.Logger) *schedulingclient.Client {
	return schedulingclient.New(cfg.Scheduling, logger)
}

func NewSubmissionClient(cfg config.Config, logger *slog.Logger) *submissionclient.Client {
	return submissionclient.New(cfg.Submission, logger)
}
