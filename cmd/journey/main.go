package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/config"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/middleware"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/delivery/api/router/handler"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/auth"
	logs "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/log"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/persistence/postgres"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/pubsub"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/routing/osrm"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDraftRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			osrm.NewRouteProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewJourneyService,
			impl.NewRouteService,
			impl.NewDraftService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewJourneyHandler,
			handler.NewRouteHandler,
			handler.NewRouteSocketHandler,
			handler.NewDraftHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
