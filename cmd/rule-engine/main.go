package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mortgage-prequal/internal/common/cache"
	"mortgage-prequal/internal/common/config"
	"mortgage-prequal/internal/common/logger"
	"mortgage-prequal/internal/common/observability"
	"mortgage-prequal/internal/dispatcher"
	"mortgage-prequal/internal/gateway"
	"mortgage-prequal/pkg/registry"

	creditcheck "mortgage-prequal/internal/calculators/credit-check"
	downpayment "mortgage-prequal/internal/calculators/down-payment"
	gdstds "mortgage-prequal/internal/calculators/gds-tds"
	stresstest "mortgage-prequal/internal/calculators/stress-test"
)

// retryWithBackoff attempts to execute a function with exponential backoff.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting mortgage pre-qualification rule engine...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("rule-engine")
	defer obs.Shutdown()

	ctx := context.Background()

	opts := []dispatcher.Option{dispatcher.WithObservability(obs)}

	// --- Init result cache (optional) with retry ---
	if cfg.Cache.Enabled {
		var redisClient *cache.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = cache.NewRedis(cfg.Cache.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()
		zapLog.Info("Redis connected successfully")

		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		opts = append(opts, dispatcher.WithResultCache(cache.NewResultCache(redisClient, ttl)))
	}

	// --- Register calculators ---
	d := dispatcher.New(log, opts...)

	if cc, ok := calculatorSettings(cfg, gdstds.ToolName); ok {
		d.RegisterWithTimeout(gdstds.NewHandler(gdstds.FromConfig(cc), log), cc.ExecutionTimeout())
	}
	if cc, ok := calculatorSettings(cfg, stresstest.ToolName); ok {
		d.RegisterWithTimeout(stresstest.NewHandler(stresstest.FromConfig(cc), log), cc.ExecutionTimeout())
	}
	if cc, ok := calculatorSettings(cfg, downpayment.ToolName); ok {
		d.RegisterWithTimeout(downpayment.NewHandler(log), cc.ExecutionTimeout())
	}
	if cc, ok := calculatorSettings(cfg, creditcheck.ToolName); ok {
		d.RegisterWithTimeout(creditcheck.NewHandler(log), cc.ExecutionTimeout())
	}

	zapLog.Info("calculators registered", zap.Strings("tools", d.ToolNames()))

	// --- Cross-check the tool registry document ---
	if reg, err := registry.LoadRegistry(cfg.Registry.Path); err != nil {
		zapLog.Warn("tool registry not loaded", zap.Error(err))
	} else if err := reg.Validate(); err != nil {
		zapLog.Warn("tool registry invalid", zap.Error(err))
	} else {
		for _, name := range reg.Names() {
			if !contains(d.ToolNames(), name) {
				zapLog.Warn("registry advertises a tool with no calculator", zap.String("tool", name))
			}
		}
	}

	// --- Metrics & pprof server ---
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("metrics server listening", zap.String("address", cfg.Server.MetricsAddress))
		if err := http.ListenAndServe(cfg.Server.MetricsAddress, nil); err != nil {
			zapLog.Error("metrics server failed", zap.Error(err))
		}
	}()

	// --- Gateway server ---
	srv := gateway.New(d, log)
	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      srv.Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("gateway listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("gateway server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("gateway shutdown failed", zap.Error(err))
	}

	zapLog.Info("rule engine stopped")
}

// calculatorSettings returns the calculator's config section and whether it
// should be registered. Calculators absent from the config run with defaults.
func calculatorSettings(cfg *config.Config, name string) (config.CalculatorConfig, bool) {
	c, ok := cfg.Calculators[name]
	if !ok {
		return config.CalculatorConfig{}, true
	}
	return c, c.Enabled
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
