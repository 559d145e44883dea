package main

import (
	"context"
	"log/slog"
	"os"

	"internhub/config"
	"internhub/internal/delivery"
	"internhub/internal/delivery/http"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/delivery/http/router/handler"
	"internhub/internal/delivery/http/session"
	"internhub/internal/domain/lifecycle"
	"internhub/internal/infra/auth"
	logs "internhub/internal/infra/log"
	"internhub/internal/infra/persistence/postgres"
	"internhub/internal/usecase"
	"internhub/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// A local .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedAdmin,
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
			postgres.NewTeacherProfileRepository,
			postgres.NewStudentProfileRepository,
			postgres.NewWorkplaceProfileRepository,
			postgres.NewAdminProfileRepository,
			postgres.NewInternshipRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProvisionService,
			impl.NewInternshipService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewPerimeterFilter,
			session.NewCookieManager,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProvisionHandler,
			handler.NewInternshipHandler,
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

// seedAdmin provisions the bootstrap administrator account when configured.
// It runs before the server accepts traffic, so a fresh deployment always
// has at least one account that can log in.
func seedAdmin(cfg *config.Config, logger *slog.Logger, provisionUC usecase.ProvisionUsecase) error {
	if cfg.Bootstrap == nil {
		logger.Info("No bootstrap administrator configured, skipping seed")

		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return provisionUC.EnsureAdmin(ctx,
		cfg.Bootstrap.AdminName,
		cfg.Bootstrap.AdminUsername,
		cfg.Bootstrap.AdminEmail,
		cfg.Bootstrap.AdminPassword,
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
