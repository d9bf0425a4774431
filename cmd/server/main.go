package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classroom-market/config"
	"classroom-market/internal/cache"
	"classroom-market/internal/database"
	"classroom-market/internal/handler"
	"classroom-market/internal/queue"
	"classroom-market/internal/repository"
	"classroom-market/internal/service"
	"classroom-market/internal/worker"
	"classroom-market/pkg/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		logger.L.Error("server exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run() error {
	cfg := config.LoadConfig()

	var migrate, reconcileWorker bool
	flagSet := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flagSet.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "listen address")
	flagSet.StringVar(&cfg.Server.QueueDriver, "queue", cfg.Server.QueueDriver, `reconcile queue driver: "redis" or "memory"`)
	flagSet.BoolVar(&migrate, "migrate", true, "apply the database schema on startup")
	flagSet.BoolVar(&reconcileWorker, "reconcile-worker", true, "run the reconcile worker in this process")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer pool.Close()

	if migrate {
		if err := database.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("database schema applied")
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return fmt.Errorf("initialize redis: %w", err)
	}
	defer rdb.Close()

	var reconcileQueue queue.ReconcileQueue
	switch cfg.Server.QueueDriver {
	case "memory":
		reconcileQueue = queue.NewMemoryReconcileQueue(256, 5*time.Second)
	case "redis":
		q, err := queue.NewRedisStreamReconcileQueue(ctx, rdb, "", nil)
		if err != nil {
			return fmt.Errorf("initialize reconcile queue: %w", err)
		}
		reconcileQueue = q
	default:
		return fmt.Errorf("unknown queue driver %q", cfg.Server.QueueDriver)
	}

	studentRepo := repository.NewStudentRepository(pool)
	itemRepo := repository.NewItemRepository(pool)
	purchaseRepo := repository.NewPurchaseRepository(pool)
	ledger := repository.NewPostgresLedgerStore(studentRepo, itemRepo, purchaseRepo)

	purchaseService := service.NewPurchaseService(ledger, purchaseRepo, reconcileQueue)
	studentService := service.NewStudentService(studentRepo, purchaseRepo, cfg.Market.DefaultPassword)
	itemService := service.NewItemService(itemRepo)
	dashboardService := service.NewDashboardService(studentRepo, purchaseRepo)
	cartService := service.NewCartService(ledger, cache.NewRedisCartStore(rdb, cfg.Market.CartTTL), purchaseService)
	authService := service.NewTeacherAuthService(cache.NewRedisSessionStore(rdb), cfg.Market)

	if reconcileWorker {
		if err := worker.NewReconcileWorker(purchaseService, reconcileQueue).Start(ctx); err != nil {
			return fmt.Errorf("start reconcile worker: %w", err)
		}
		log.Info("reconcile worker started", zap.String("queue", cfg.Server.QueueDriver))
	}

	router := handler.NewRouter(cfg.Server, authService, handler.Handlers{
		Purchase: handler.NewPurchaseHandler(purchaseService),
		Student:  handler.NewStudentHandler(studentService),
		Item:     handler.NewItemHandler(itemService),
		Cart:     handler.NewCartHandler(cartService),
		Teacher:  handler.NewTeacherHandler(authService, dashboardService),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
