package main

import (
	"context"
	"log/slog"
	"os"

	"crave/config"
	"crave/internal/delivery"
	"crave/internal/delivery/http"
	"crave/internal/delivery/http/middleware"
	"crave/internal/delivery/http/router/handler"
	logs "crave/internal/infra/log"
	"crave/internal/infra/mail"
	"crave/internal/infra/persistence/postgres"
	"crave/internal/infra/sms"
	"crave/internal/infra/webpush"
	"crave/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPreferenceRepository,
			postgres.NewPushSubscriptionRepository,
			postgres.NewTemplateRepository,
			postgres.NewNotificationLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			mail.New,
			webpush.New,
			sms.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPreferenceService,
			impl.NewEmailService,
			impl.NewPushService,
			impl.NewSMSService,
			impl.NewNotificationService,
			impl.NewBroadcastService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPreferenceHandler,
			handler.NewSubscriptionHandler,
			handler.NewNotificationHandler,
			handler.NewBroadcastHandler,
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
