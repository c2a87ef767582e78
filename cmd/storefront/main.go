package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/sync/errgroup"

	cartapp "github.com/elventhreads/storefront/internal/cart/app"
	cartmemory "github.com/elventhreads/storefront/internal/cart/infra/memory"
	cartredis "github.com/elventhreads/storefront/internal/cart/infra/redis"
	catalogapp "github.com/elventhreads/storefront/internal/catalog/app"
	"github.com/elventhreads/storefront/internal/catalog/infra/markup"
	"github.com/elventhreads/storefront/internal/catalog/infra/static"
	newsletterapp "github.com/elventhreads/storefront/internal/newsletter/app"
	newslettermemory "github.com/elventhreads/storefront/internal/newsletter/infra/memory"
	newsletterredis "github.com/elventhreads/storefront/internal/newsletter/infra/redis"
	"github.com/elventhreads/storefront/internal/notify"
	"github.com/elventhreads/storefront/internal/web"
	"github.com/elventhreads/storefront/pkg/config"
	"github.com/elventhreads/storefront/pkg/logger"
	redisx "github.com/elventhreads/storefront/pkg/redis"
	"github.com/elventhreads/storefront/pkg/shutdown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog: built once at startup, from a rendered listing page when one
	// is configured, otherwise from the built-in listing set.
	var source catalogapp.Source = static.NewSource()
	if cfg.CatalogPage != "" {
		source = markup.NewReader(cfg.CatalogPage)
	}
	catalog, err := catalogapp.NewService(ctx, source, log)
	if err != nil {
		log.Error("catalog build failed", slog.Any("err", err))
		os.Exit(1)
	}

	// Storage: redis when configured, in-process otherwise.
	var (
		cartStore       cartapp.Store
		subscriberStore newsletterapp.SubscriberStore
	)
	var redisCfg redisx.Config
	if err := envconfig.Process("redis", &redisCfg); err != nil {
		log.Error("redis config", slog.Any("err", err))
		os.Exit(1)
	}
	if redisCfg.URL != "" {
		client, err := redisCfg.New(ctx)
		if err != nil {
			log.Error("redis connect failed", slog.Any("err", err))
			os.Exit(1)
		}
		defer client.Close()
		cartStore = cartredis.NewCartStore(client, log)
		subscriberStore = newsletterredis.NewSubscriberStore(client)
		log.Info("cart persistence: redis")
	} else {
		cartStore = cartmemory.NewCartStore(log)
		subscriberStore = newslettermemory.NewSubscriberStore()
		log.Warn("cart persistence: in-process only (REDIS_URL not set)")
	}

	notifications := notify.NewCenter(cfg.NotifyDismissAfter, cfg.NotifyRemoveAfter)
	defer notifications.Close()

	cart := cartapp.NewService(cartStore, notifications, log)
	newsletter := newsletterapp.NewService(subscriberStore, log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           web.NewServer(catalog, cart, notifications, newsletter, log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		return server.Shutdown(stopCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}
