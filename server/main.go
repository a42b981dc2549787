package main

import (
	"flag"
	"go-balance-rates/config"
	"go-balance-rates/exchange"
	"go-balance-rates/http"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	nhttp "net/http"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config, config.json when present")
	flag.Parse()

	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.Load(*configPath)
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, level.Allow(cfg.Level()))

	exchangeService := exchange.NewService(cfg.ExchangePolicy(), cfg.Mode())
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	handler := http.NewServer(exchangeService, log.With(logger, "component", "http"), http.Options{
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	level.Info(logger).Log("msg", "listening", "addr", cfg.Server.Addr)
	if err := nhttp.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
