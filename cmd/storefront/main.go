package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/nadanruchi/storefront/internal/adapter/http"
	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/adapter/rabbitmq"
	"github.com/nadanruchi/storefront/internal/app/address"
	"github.com/nadanruchi/storefront/internal/app/auth"
	"github.com/nadanruchi/storefront/internal/app/cart"
	"github.com/nadanruchi/storefront/internal/app/menu"
	"github.com/nadanruchi/storefront/internal/app/order"
	"github.com/nadanruchi/storefront/internal/app/report"
	"github.com/nadanruchi/storefront/internal/app/review"
	"github.com/nadanruchi/storefront/internal/config"
	"github.com/nadanruchi/storefront/internal/interfaces"
	"github.com/nadanruchi/storefront/internal/notify"
	"github.com/nadanruchi/storefront/internal/storage"
	"github.com/nadanruchi/storefront/internal/storage/file"
	"github.com/nadanruchi/storefront/internal/storage/postgres"
	"github.com/nadanruchi/storefront/internal/storage/redisstore"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "storefront",
		Short: "Nadan Ruchi restaurant storefront",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")

	root.AddCommand(serveCommand(&configPath))
	root.AddCommand(tickCommand(&configPath))
	root.AddCommand(resetCommand(&configPath))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP API with the order progression ticker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			lgr := logger.New("storefront")

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			store, err := openStore(ctx, cfg, lgr)
			if err != nil {
				return err
			}

			publisher, mqClose := openPublisher(cfg, lgr)
			defer mqClose()

			bus := notify.NewBus()
			menuService := menu.NewService(store, bus, publisher, lgr)
			cartService := cart.NewService(store, menuService, lgr)
			orderService := order.NewService(store, cartService, bus, publisher, lgr)
			reportService := report.NewService(store, lgr)
			addressService := address.NewService(time.Duration(cfg.Simulation.AddressLatencyMillis) * time.Millisecond)
			authService := auth.NewService(store, lgr)
			reviewService := review.NewService(store, orderService, lgr)

			if err := menuService.SeedIfEmpty(ctx); err != nil {
				return fmt.Errorf("failed to seed menu: %w", err)
			}
			if err := authService.SeedIfEmpty(ctx); err != nil {
				return fmt.Errorf("failed to seed users: %w", err)
			}

			ticker := order.NewTicker(orderService, time.Duration(cfg.Simulation.ProgressIntervalSeconds)*time.Second, lgr)
			go ticker.Run(ctx)

			handler := httpAdapter.NewRouter(httpAdapter.Handlers{
				Menu:    httpAdapter.NewMenuHandler(menuService, authService, lgr),
				Cart:    httpAdapter.NewCartHandler(cartService, authService, lgr),
				Orders:  httpAdapter.NewOrderHandler(orderService, reviewService, authService, lgr),
				Admin:   httpAdapter.NewAdminHandler(orderService, reportService, authService, lgr),
				Address: httpAdapter.NewAddressHandler(addressService, lgr),
				Auth:    httpAdapter.NewAuthHandler(authService, reviewService, lgr),
			}, lgr)

			server := &http.Server{
				Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
				Handler:      handler,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			lgr.Info("service_started", fmt.Sprintf("Storefront started on port %d", cfg.HTTP.Port), "startup", map[string]interface{}{
				"port":    cfg.HTTP.Port,
				"storage": cfg.Storage.Driver,
			})

			go func() {
				sigint := make(chan os.Signal, 1)
				signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
				<-sigint

				lgr.Info("shutdown_initiated", "Shutting down storefront", "shutdown", nil)
				cancel()

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
				}
			}()

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				lgr.Error("server_error", "Server error", "runtime", nil, err)
				return err
			}
			return nil
		},
	}
}

func tickCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Run the order progression worker on its own, without the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			lgr := logger.New("storefront-ticker")

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			store, err := openStore(ctx, cfg, lgr)
			if err != nil {
				return err
			}

			publisher, mqClose := openPublisher(cfg, lgr)
			defer mqClose()

			bus := notify.NewBus()
			menuService := menu.NewService(store, bus, publisher, lgr)
			cartService := cart.NewService(store, menuService, lgr)
			orderService := order.NewService(store, cartService, bus, publisher, lgr)

			if cfg.RabbitMQ.Enabled {
				go consumeStatusEvents(ctx, cfg, lgr)
			}

			ticker := order.NewTicker(orderService, time.Duration(cfg.Simulation.ProgressIntervalSeconds)*time.Second, lgr)
			go ticker.Run(ctx)

			lgr.Info("service_started", "Progression worker started", "startup", map[string]interface{}{
				"interval_seconds": cfg.Simulation.ProgressIntervalSeconds,
			})

			sigint := make(chan os.Signal, 1)
			signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
			<-sigint

			lgr.Info("graceful_shutdown", "Shutting down progression worker", "shutdown", nil)
			return nil
		},
	}
}

func resetCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Wipe all persisted storefront data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			lgr := logger.New("storefront-reset")

			ctx := context.Background()
			store, err := openStore(ctx, cfg, lgr)
			if err != nil {
				return err
			}

			keys, err := store.Keys(ctx)
			if err != nil {
				return fmt.Errorf("failed to list keys: %w", err)
			}

			removed := 0
			for _, key := range keys {
				if !resettable(key) {
					continue
				}
				if err := store.Remove(ctx, key); err != nil {
					return fmt.Errorf("failed to remove key %s: %w", key, err)
				}
				removed++
			}

			lgr.Info("data_reset", "Storefront data wiped", "reset", map[string]interface{}{
				"keys_removed": removed,
			})
			return nil
		},
	}
}

// resettable guards the wipe against unrelated keys sharing the substrate.
func resettable(key string) bool {
	if strings.HasPrefix(key, "nr_cart:") {
		return true
	}
	for _, fixed := range storage.FixedKeys {
		if key == fixed {
			return true
		}
	}
	return false
}

func openStore(ctx context.Context, cfg *config.Config, lgr logger.Logger) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case "", "file":
		return file.New(cfg.Storage.Path, lgr)
	case "redis":
		return redisstore.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	case "postgres":
		return postgres.Connect(ctx, postgres.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Database: cfg.Database.Database,
		})
	case "memory":
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// openPublisher connects to RabbitMQ when enabled. The returned close func is
// always safe to call; a nil publisher means cross-process events are off.
func openPublisher(cfg *config.Config, lgr logger.Logger) (interfaces.EventPublisher, func()) {
	if !cfg.RabbitMQ.Enabled {
		return nil, func() {}
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		lgr.Error("rabbitmq_unavailable", "Running without cross-process events", "startup", nil, err)
		return nil, func() {}
	}

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})
	return rabbitmq.NewPublisher(conn), func() { conn.Close() }
}

// consumeStatusEvents logs order status changes published by other storefront
// processes. The worker does not act on them; progression always reads the
// persisted orders directly.
func consumeStatusEvents(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		lgr.Error("rabbitmq_unavailable", "Status event consumer disabled", "startup", nil, err)
		return
	}
	defer conn.Close()

	consumer := rabbitmq.NewConsumer(conn)
	err = consumer.ConsumeOrderStatus(ctx, func(ctx context.Context, body []byte) error {
		var msg interfaces.OrderStatusMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return err
		}
		lgr.Debug("order_status_event", "Observed order status change", "", map[string]interface{}{
			"order_id":   msg.OrderID,
			"new_status": msg.NewStatus,
			"changed_by": msg.ChangedBy,
		})
		return nil
	})
	if err != nil {
		lgr.Error("consumer_error", "Error consuming status events", "runtime", nil, err)
	}
}
