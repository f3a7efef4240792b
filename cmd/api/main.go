package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/cliptube/cliptube/internal/api/handler"
	"github.com/cliptube/cliptube/internal/api/middleware"
	"github.com/cliptube/cliptube/internal/config"
	"github.com/cliptube/cliptube/internal/infrastructure/cache"
	"github.com/cliptube/cliptube/internal/infrastructure/postgres"
	"github.com/cliptube/cliptube/internal/infrastructure/queue"
	"github.com/cliptube/cliptube/internal/infrastructure/storage"
	"github.com/cliptube/cliptube/internal/probe"
	"github.com/cliptube/cliptube/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.Upload.TempDir, 0755); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	pgClient, err := postgres.NewClient(ctx, postgres.DefaultClientConfig(cfg.Database.DSN()))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pgClient.Close()
	logger.Info("connected to PostgreSQL")

	storageClient, err := storage.NewClient(ctx, storage.ClientConfig{
		Endpoint:       cfg.MinIO.Endpoint,
		PublicEndpoint: cfg.MinIO.PublicEndpoint,
		AccessKey:      cfg.MinIO.AccessKey,
		SecretKey:      cfg.MinIO.SecretKey,
		Bucket:         cfg.MinIO.Bucket,
		UseSSL:         cfg.MinIO.UseSSL,
	}, probe.NewFFprobe(probe.DefaultFFprobeConfig()))
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	logger.Info("connected to MinIO")

	queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to Redis")

	// Repositories
	videoRepo := postgres.NewVideoRepository(pgClient.Pool())
	userRepo := postgres.NewUserRepository(pgClient.Pool())
	commentRepo := postgres.NewCommentRepository(pgClient.Pool())
	tweetRepo := postgres.NewTweetRepository(pgClient.Pool())
	playlistRepo := postgres.NewPlaylistRepository(pgClient.Pool())
	likeRepo := postgres.NewLikeRepository(pgClient.Pool())
	subRepo := postgres.NewSubscriptionRepository(pgClient.Pool())

	// Services
	videoCache := cache.NewRedisVideoCache(redisClient)
	videoSvc := usecase.NewCachedVideoService(
		usecase.NewVideoService(videoRepo, storageClient, queueClient),
		videoCache,
		usecase.DefaultCachedVideoServiceConfig(),
	)
	toggleSvc := usecase.NewToggleService(likeRepo, subRepo, videoRepo, commentRepo, tweetRepo, userRepo)
	commentSvc := usecase.NewCommentService(commentRepo, videoRepo)
	tweetSvc := usecase.NewTweetService(tweetRepo, userRepo)
	playlistSvc := usecase.NewPlaylistService(playlistRepo, videoRepo, userRepo)
	dashboardSvc := usecase.NewDashboardService(videoRepo, likeRepo, subRepo, userRepo)

	// Handlers
	maxUpload := cfg.Upload.MaxVideoSize + cfg.Upload.MaxImageSize
	videoHandler := handler.NewVideoHandler(videoSvc, cfg.Upload.TempDir, maxUpload)
	likeHandler := handler.NewLikeHandler(toggleSvc)
	subHandler := handler.NewSubscriptionHandler(toggleSvc)
	commentHandler := handler.NewCommentHandler(commentSvc)
	tweetHandler := handler.NewTweetHandler(tweetSvc)
	playlistHandler := handler.NewPlaylistHandler(playlistSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)

	r := setupRouter(routerDeps{
		logger:    logger,
		video:     videoHandler,
		like:      likeHandler,
		sub:       subHandler,
		comment:   commentHandler,
		tweet:     tweetHandler,
		playlist:  playlistHandler,
		dashboard: dashboardHandler,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

type routerDeps struct {
	logger    *slog.Logger
	video     *handler.VideoHandler
	like      *handler.LikeHandler
	sub       *handler.SubscriptionHandler
	comment   *handler.CommentHandler
	tweet     *handler.TweetHandler
	playlist  *handler.PlaylistHandler
	dashboard *handler.DashboardHandler
}

func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/videos", func(r chi.Router) {
			r.Get("/", deps.video.Feed)
			r.Get("/{videoId}", deps.video.Get)
			r.Get("/{videoId}/comments", deps.comment.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Actor)
				r.Post("/", deps.video.Publish)
				r.Patch("/{videoId}", deps.video.Update)
				r.Patch("/{videoId}/thumbnail", deps.video.ReplaceThumbnail)
				r.Patch("/{videoId}/toggle-publish", deps.video.TogglePublish)
				r.Delete("/{videoId}", deps.video.Delete)
				r.Post("/{videoId}/comments", deps.comment.Add)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Use(middleware.Actor)
			r.Patch("/{commentId}", deps.comment.Update)
			r.Delete("/{commentId}", deps.comment.Delete)
		})

		r.Route("/likes", func(r chi.Router) {
			r.Use(middleware.Actor)
			r.Post("/toggle/video/{videoId}", deps.like.ToggleVideoLike)
			r.Post("/toggle/comment/{commentId}", deps.like.ToggleCommentLike)
			r.Post("/toggle/tweet/{tweetId}", deps.like.ToggleTweetLike)
			r.Get("/videos", deps.like.ListLikedVideos)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/{channelId}/subscribers", deps.sub.ListSubscribers)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Actor)
				r.Post("/toggle/{channelId}", deps.sub.Toggle)
				r.Get("/channels", deps.sub.ListSubscribedChannels)
			})
		})

		r.Route("/tweets", func(r chi.Router) {
			r.Get("/user/{userId}", deps.tweet.ListByUser)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Actor)
				r.Post("/", deps.tweet.Create)
				r.Patch("/{tweetId}", deps.tweet.Update)
				r.Delete("/{tweetId}", deps.tweet.Delete)
			})
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Get("/{playlistId}", deps.playlist.Get)
			r.Get("/user/{userId}", deps.playlist.ListByUser)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Actor)
				r.Post("/", deps.playlist.Create)
				r.Patch("/{playlistId}", deps.playlist.Update)
				r.Delete("/{playlistId}", deps.playlist.Delete)
				r.Patch("/{playlistId}/videos/{videoId}", deps.playlist.AddVideo)
				r.Delete("/{playlistId}/videos/{videoId}", deps.playlist.RemoveVideo)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(middleware.Actor)
			r.Get("/stats", deps.dashboard.Stats)
			r.Get("/videos", deps.dashboard.Videos)
		})
	})

	return r
}
