package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-balance-rates/config"
	"go-balance-rates/exchange"
	"io"
	"os"
	"os/signal"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		level.Error(logger).Log("msg", "augment failed", "err", err)
		os.Exit(1)
	}
}

// run augments one page: from -in or stdin, to -out or stdout
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, logger log.Logger) error {
	flags := flag.NewFlagSet("balance-rates", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to JSON config, config.json when present")
	in := flags.String("in", "", "page to read, stdin when empty")
	out := flags.String("out", "", "file to write, stdout when empty")
	mode := flags.String("mode", "", "row mode: append or replace, overrides config")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *mode != "" {
		cfg.RowMode = *mode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logger = level.NewFilter(logger, level.Allow(cfg.Level()))

	var r io.Reader = stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var dst io.Writer = stdout
	var file *os.File
	if *out != "" {
		file, err = os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		dst = file
	}

	s := exchange.NewService(cfg.ExchangePolicy(), cfg.Mode())
	s = exchange.NewLoggingService(log.With(logger, "component", "exchange"), s)

	summary, err := s.Augment(ctx, r, dst)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "page augmented", "cards", summary.Cards, "rows", summary.Rows)

	if file != nil {
		return file.Close()
	}
	return nil
}
