package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ysn7199/yourmovies/core/internal/config"
	http_auth "github.com/ysn7199/yourmovies/core/internal/delivery/http/auth"
	http_genre "github.com/ysn7199/yourmovies/core/internal/delivery/http/genre"
	http_init "github.com/ysn7199/yourmovies/core/internal/delivery/http/init"
	http_access_middleware "github.com/ysn7199/yourmovies/core/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/ysn7199/yourmovies/core/internal/delivery/http/middleware/auth"
	http_ratelimit_middleware "github.com/ysn7199/yourmovies/core/internal/delivery/http/middleware/ratelimit"
	http_movie "github.com/ysn7199/yourmovies/core/internal/delivery/http/movie"
	http_swagger "github.com/ysn7199/yourmovies/core/internal/delivery/http/swagger"
	infra_postgres_action "github.com/ysn7199/yourmovies/core/internal/infra/postgres/action"
	infra_postgres_genre "github.com/ysn7199/yourmovies/core/internal/infra/postgres/genre"
	infra_pg_init "github.com/ysn7199/yourmovies/core/internal/infra/postgres/init"
	infra_postgres_movie "github.com/ysn7199/yourmovies/core/internal/infra/postgres/movie"
	infra_pg_tx "github.com/ysn7199/yourmovies/core/internal/infra/postgres/tx"
	infra_postgres_user "github.com/ysn7199/yourmovies/core/internal/infra/postgres/user"
	infra_redis_init "github.com/ysn7199/yourmovies/core/internal/infra/redis/init"
	infra_session_cache "github.com/ysn7199/yourmovies/core/internal/infra/redis/session"
	infra_s3 "github.com/ysn7199/yourmovies/core/internal/infra/s3"
	"github.com/ysn7199/yourmovies/core/internal/infra/s3mock"
	service_token "github.com/ysn7199/yourmovies/core/internal/service/auth/token"
	usecase_account "github.com/ysn7199/yourmovies/core/internal/usecase/account"
	usecase_genre "github.com/ysn7199/yourmovies/core/internal/usecase/genre"
	usecase_interaction "github.com/ysn7199/yourmovies/core/internal/usecase/interaction"
	usecase_movie "github.com/ysn7199/yourmovies/core/internal/usecase/movie"
)

func Go(cfg *config.Config) {
	slog.SetDefault(newLogger(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	defer redisConn.Close()
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	defer pgConn.Close()

	posterStorage := mustPosterStorage(ctx, cfg.S3)

	txManager := infra_pg_tx.New(pgConn)
	movieRepository := infra_postgres_movie.New(pgConn)
	userRepository := infra_postgres_user.New(pgConn)
	actionRepository := infra_postgres_action.New(pgConn)
	genreRepository := infra_postgres_genre.New(pgConn)

	tokenService := service_token.New(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	sessionCache := infra_session_cache.New(redisConn, "revoked_tokens")

	accountUC := usecase_account.New(userRepository, actionRepository, movieRepository, tokenService, sessionCache, txManager)
	interactionUC := usecase_interaction.New(userRepository, movieRepository, actionRepository, txManager)
	movieUC := usecase_movie.New(movieRepository, posterStorage)
	genreUC := usecase_genre.New(genreRepository)

	authMiddleware := http_auth_middleware.New(tokenService, sessionCache, accountUC)
	limiter := http_ratelimit_middleware.New(cfg.Auth.RateLimit, cfg.Auth.RateBurst)

	controllerPool := http_init.NewControllerPool(
		http_init.WithCORS(cfg.HTTP.CORSOrigins),
		http_init.WithTrustedProxies(cfg.HTTP.TrustedProxies),
		http_init.WithMiddleware(http_access_middleware.ReadOnly(cfg.HTTP.Mode)),
	)
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_auth.New(accountUC, interactionUC, authMiddleware,
		http_auth.WithRateLimit(limiter.Middleware()),
	))
	controllerPool.Add(http_movie.New(movieUC, interactionUC, authMiddleware))
	controllerPool.Add(http_genre.New(genreUC, authMiddleware))

	controllerPool.Register()
	if err := controllerPool.RunAll(ctx, cfg.HTTP.Host, cfg.HTTP.Port, cfg.HTTP.ShutdownTimeout); err != nil {
		slog.Error("http server stopped", slog.String("error", err.Error()))
	}
}

func mustPosterStorage(ctx context.Context, cfg config.S3) usecase_movie.PosterStorage {
	if infra_s3.ClientTypeFrom(cfg) == infra_s3.ClientTypeNone {
		return s3mock.New()
	}

	storage, err := infra_s3.New(ctx, infra_s3.MustEstablishConn(cfg), cfg.Bucket, cfg.Prefix, cfg.PublicURL)
	if err != nil {
		log.Fatalf("poster storage: %v", err)
	}
	return storage
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
