package main

import (
	"context"
	"log/slog"
	"os"

	"wick/config"
	"wick/internal/delivery"
	"wick/internal/delivery/http"
	"wick/internal/delivery/http/middleware"
	"wick/internal/delivery/http/router/handler"
	"wick/internal/infra/auth/firebase"
	logs "wick/internal/infra/log"
	"wick/internal/infra/persistence/firestore"
	"wick/internal/infra/pubsub"
	"wick/internal/usecase"
	"wick/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type startControllerParams struct {
	fx.In
	fx.Lifecycle

	Ctx       context.Context
	Session   usecase.SessionUsecase
	Directory usecase.DirectoryUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startControllers,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.NewClient,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewIdentityProvider,
			firestore.NewListingStore,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewDirectoryService,
			impl.NewSubmissionService,
			impl.NewContactService,
			impl.NewPayoutService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewDirectoryHandler,
			handler.NewListingHandler,
			handler.NewContactHandler,
			handler.NewPayoutHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startControllers boots the session and directory controllers with the
// application lifecycle. The session controller must start first so the
// directory controller observes its initial state.
func startControllers(params startControllerParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Session.Start(params.Ctx); err != nil {
				return err
			}

			return params.Directory.Start(params.Ctx)
		},
		OnStop: func(ctx context.Context) error {
			params.Directory.Close()
			params.Session.Close()

			return nil
		},
	})
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
