package main

import (
	"context"
	"log/slog"
	"os"

	"hostelhub/config"
	"hostelhub/internal/delivery"
	"hostelhub/internal/delivery/http"
	"hostelhub/internal/delivery/http/middleware"
	"hostelhub/internal/delivery/http/router/handler"
	"hostelhub/internal/domain/service"
	"hostelhub/internal/infra/auth"
	"hostelhub/internal/infra/clock"
	logs "hostelhub/internal/infra/log"
	"hostelhub/internal/infra/mail"
	"hostelhub/internal/infra/persistence/postgres"
	"hostelhub/internal/infra/qrcode"
	"hostelhub/internal/usecase"
	"hostelhub/internal/usecase/impl"

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
			postgres.NewHostelRepository,
			postgres.NewAdminRepository,
			postgres.NewBookingRepository,
			postgres.NewFeedbackRepository,
			postgres.NewHostelDescriptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			clock.NewSystemClock,
			mail.NewGomailSender,
			newQRCodeService,
		),
	)
}

// newPasswordHasher creates a bcrypt hasher, honoring the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil || cfg.Auth.BcryptCost == 0 {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newVerificationService wires the challenge TTL from configuration
func newVerificationService(
	cfg *config.Config,
	mailer service.MailSender,
	clk service.Clock,
	logger *slog.Logger,
) usecase.VerificationUsecase {
	ttl := impl.DefaultChallengeTTL
	if cfg.Verification != nil && cfg.Verification.CodeTTL > 0 {
		ttl = cfg.Verification.CodeTTL
	}

	return impl.NewVerificationService(mailer, clk, ttl, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newVerificationService,
			impl.NewUserService,
			impl.NewHostelService,
			impl.NewAdminService,
			impl.NewBookingService,
			impl.NewFeedbackService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewVerificationHandler,
			handler.NewUserHandler,
			handler.NewHostelHandler,
			handler.NewBookingHandler,
			handler.NewFeedbackHandler,
			handler.NewAdminHandler,
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
