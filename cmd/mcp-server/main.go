package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mortgage-prequal/internal/common/config"
	"mortgage-prequal/internal/common/logger"
	"mortgage-prequal/internal/dispatcher"
	"mortgage-prequal/internal/mcpserver"
	"mortgage-prequal/pkg/registry"

	creditcheck "mortgage-prequal/internal/calculators/credit-check"
	downpayment "mortgage-prequal/internal/calculators/down-payment"
	gdstds "mortgage-prequal/internal/calculators/gds-tds"
	stresstest "mortgage-prequal/internal/calculators/stress-test"
)

func main() {
	// Logs go to stderr so they never corrupt JSON-RPC on stdout.
	zapLog := stderrLogger()
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	reg, err := registry.LoadRegistry(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("tool registry load failed", zap.Error(err))
	}
	if err := reg.Validate(); err != nil {
		zapLog.Fatal("tool registry invalid", zap.Error(err))
	}

	d := dispatcher.New(log)
	gdsCfg := cfg.Calculators[gdstds.ToolName]
	d.RegisterWithTimeout(gdstds.NewHandler(gdstds.FromConfig(gdsCfg), log), gdsCfg.ExecutionTimeout())
	stressCfg := cfg.Calculators[stresstest.ToolName]
	d.RegisterWithTimeout(stresstest.NewHandler(stresstest.FromConfig(stressCfg), log), stressCfg.ExecutionTimeout())
	d.RegisterWithTimeout(downpayment.NewHandler(log), cfg.Calculators[downpayment.ToolName].ExecutionTimeout())
	d.RegisterWithTimeout(creditcheck.NewHandler(log), cfg.Calculators[creditcheck.ToolName].ExecutionTimeout())

	srv, err := mcpserver.NewServer(d, reg, cfg.App.Version, log)
	if err != nil {
		zapLog.Fatal("mcp server init failed", zap.Error(err))
	}

	switch cfg.MCP.Transport {
	case "stdio":
		zapLog.Info("starting MCP server (stdio)")
		if err := srv.ServeStdio(); err != nil {
			zapLog.Fatal("mcp server execution failed", zap.Error(err))
		}
	case "sse":
		zapLog.Info("starting MCP server (SSE)", zap.Int("port", cfg.MCP.Port))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.ServeSSE(ctx, cfg.MCP.Port); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("mcp server execution failed", zap.Error(err))
		}
		zapLog.Info("MCP server stopped gracefully")
	default:
		zapLog.Fatal("unknown MCP transport", zap.String("transport", cfg.MCP.Transport))
	}
}

func stderrLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, _ := cfg.Build()
	return l
}
