// Command example is a small multilingual blog API built on friendlyid.
//
//	POST   /posts                          {"titles":{"en":"Hello","es":"Hola"}}
//	GET    /{locale}/posts/{post}          slug, old slug, or numeric id
//	PUT    /{locale}/posts/{post}          {"title":"New title"}
//	DELETE /{locale}/posts/{post}
//	GET    /{locale}/posts/{post}/history
//	GET    /posts/{post}                   locale from Accept-Language
package main

import (
	"context"
	"embed"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/friendlyid"
	"github.com/dmitrymomot/friendlyid/pkg/cache"
	"github.com/dmitrymomot/friendlyid/pkg/config"
	"github.com/dmitrymomot/friendlyid/pkg/db"
	"github.com/dmitrymomot/friendlyid/pkg/health"
	"github.com/dmitrymomot/friendlyid/pkg/logger"
	"github.com/dmitrymomot/friendlyid/pkg/redis"
	"github.com/dmitrymomot/friendlyid/pkg/slugroute"
	"github.com/dmitrymomot/friendlyid/pkg/store"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	log := logger.NewWithSentry(cfg.Log, logger.LocaleExtractor())

	if err := run(ctx, cfg, log); err != nil {
		log.Error("application error", logger.Error(err))
		os.Exit(1)
	}
	log.Info("application stopped")
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := store.Migrate(ctx, pool, cfg.DB.MigrationsTable, log.With("component", "migration")); err != nil {
		return err
	}
	if err := db.Migrate(ctx, pool, migrations, "migrations", "example_schema_migrations", log.With("component", "migration")); err != nil {
		return err
	}

	resolver, err := cfg.Locales.Resolver()
	if err != nil {
		return err
	}

	checks := health.Checks{"postgres": db.Healthcheck(pool)}

	var slugCache cache.Cache
	switch cfg.CacheBackend {
	case "redis":
		var rcfg redis.Config
		if err := config.Load(&rcfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, rcfg)
		if err != nil {
			return err
		}
		defer func() { _ = redis.Shutdown(client)(context.Background()) }()
		checks["redis"] = redis.Healthcheck(client)
		slugCache = cache.NewRedis(client, cache.WithRedisTTL(cfg.CacheTTL))
	default:
		slugCache = cache.NewMemory(cache.WithTTL(cfg.CacheTTL))
	}

	repo := &postRepo{pool: pool}
	opts := append(cfg.FriendlyID.Options(),
		friendlyid.WithLogger(log),
		friendlyid.WithLocales(resolver),
		friendlyid.WithCache(slugCache),
		friendlyid.WithIDLookup(func(ctx context.Context, recordType string, id int64) (bool, error) {
			return repo.exists(ctx, id)
		}),
	)
	eng := friendlyid.New(store.NewPostgres(pool), opts...)
	defer func() { _ = eng.Close() }()

	h := &postHandler{eng: eng, repo: repo, log: log}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID, chimiddleware.Recoverer, slugroute.RequestLogger(log))

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(checks, health.WithLogger(log)))

	r.Post("/posts", h.create)
	r.With(
		slugroute.Locale(resolver, slugroute.WithLocaleParam("")),
		slugroute.Resolve(eng, postType, "post", slugroute.WithLogger(log)),
	).Get("/posts/{post}", h.show)

	r.Route("/{locale}/posts/{post}", func(r chi.Router) {
		r.Use(slugroute.Locale(resolver))
		r.Use(slugroute.Resolve(eng, postType, "post", slugroute.WithLogger(log)))
		r.Get("/", h.show)
		r.Put("/", h.rename)
		r.Delete("/", h.destroy)
		r.Get("/history", h.history)
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: r}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.InfoContext(ctx, "starting server", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
