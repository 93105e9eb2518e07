package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"StrIndex/config"
	indexmanager "StrIndex/index_manager"
	"StrIndex/logging"
	"StrIndex/session"
	"StrIndex/terminal"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	flag.StringVar(&cfg.Input, "input", cfg.Input, "command script to run (default stdin)")
	flag.StringVar(&cfg.Output, "output", cfg.Output, "file receiving command results (default stdout)")
	flag.IntVar(&cfg.Order, "order", cfg.Order, "order of indexes created by Use")
	flag.Int64Var(&cfg.CacheSize, "cache", cfg.CacheSize, "cached point lookups per index, 0 disables")
	flag.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "debug, info, warn or error")
	flag.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "console or json")
	flag.Parse()

	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		}
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("session failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	in := io.Reader(os.Stdin)
	var prompt io.Writer
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
	} else if terminal.IsTerminal(os.Stdin) {
		prompt = os.Stdout
	}

	out := io.Writer(os.Stdout)
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		out = f
	}

	im, err := indexmanager.NewIndexManager(indexmanager.Options{
		DefaultOrder: cfg.Order,
		CacheSize:    cfg.CacheSize,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer im.CloseAll()

	sess := session.New(im, out, logger)
	sum, err := sess.Run(in, prompt)
	if err != nil {
		return err
	}
	logger.Info("session finished",
		zap.Int("commands", sum.Commands),
		zap.Int("errors", sum.Errors),
		zap.Strings("indexes", im.Names()))
	return nil
}
