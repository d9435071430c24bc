package app

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/blogforge/core/internal/config"
	http_auth "github.com/blogforge/core/internal/delivery/http/auth"
	http_blog "github.com/blogforge/core/internal/delivery/http/blog"
	http_init "github.com/blogforge/core/internal/delivery/http/init"
	http_session_middleware "github.com/blogforge/core/internal/delivery/http/middleware/session"
	http_upload "github.com/blogforge/core/internal/delivery/http/upload"
	http_user "github.com/blogforge/core/internal/delivery/http/user"
	infra_oauth_google "github.com/blogforge/core/internal/infra/oauth/google"
	infra_pg_init "github.com/blogforge/core/internal/infra/postgres/init"
	infra_postgres_blog "github.com/blogforge/core/internal/infra/postgres/blog"
	infra_postgres_session "github.com/blogforge/core/internal/infra/postgres/session"
	infra_postgres_user "github.com/blogforge/core/internal/infra/postgres/user"
	infra_redis_init "github.com/blogforge/core/internal/infra/redis/init"
	infra_redis_session_set "github.com/blogforge/core/internal/infra/redis/session_set"
	infra_s3 "github.com/blogforge/core/internal/infra/s3"
	usecase_auth "github.com/blogforge/core/internal/usecase/auth"
	usecase_blog "github.com/blogforge/core/internal/usecase/blog"
	usecase_session "github.com/blogforge/core/internal/usecase/session"
	usecase_upload "github.com/blogforge/core/internal/usecase/upload"
	usecase_user "github.com/blogforge/core/internal/usecase/user"
)

const shutdownTimeout = 10 * time.Second

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
	infra_pg_init.MustMigrate(pgConn)

	sessionRepository := infra_postgres_session.New(pgConn)
	userRepository := infra_postgres_user.New(pgConn)
	blogRepository := infra_postgres_blog.New(pgConn)
	sessionSet := infra_redis_session_set.New(redisConn, "session")

	s3Conn := infra_s3.MustEstablishConn(cfg.S3)
	storage, err := infra_s3.New(cfg.S3.Bucket, s3Conn)
	if err != nil {
		log.Fatalf("s3 bucket check failed: %v", err)
	}

	loginProvider := infra_oauth_google.New(cfg.OAuth, cfg.OAuth.RedirectURL, infra_oauth_google.LoginScopes)
	signOnProvider := infra_oauth_google.New(cfg.OAuth, cfg.OAuth.SignOnRedirectURL, infra_oauth_google.SignOnScopes)

	sessionUC := usecase_session.New(sessionRepository, sessionSet, usecase_session.DefaultTTL)
	authUC := usecase_auth.New(loginProvider, signOnProvider, userRepository, sessionUC)
	userUC := usecase_user.New(userRepository)
	blogUC := usecase_blog.New(blogRepository, userRepository)
	uploadUC := usecase_upload.New(storage, cfg.S3.Bucket, cfg.S3.PublicURLFormat)

	gate := http_session_middleware.New(sessionUC)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(authUC, sessionUC, gate.Gate()))
	controllerPool.Add(http_user.New(userUC, authUC))
	controllerPool.Add(http_blog.New(blogUC))
	controllerPool.Add(http_upload.New(uploadUC))
	controllerPool.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := controllerPool.Run(cfg.HTTP.Host, cfg.HTTP.Port); err != nil {
			log.Printf("http server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := controllerPool.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown did not finish cleanly: %v", err)
	}
}
