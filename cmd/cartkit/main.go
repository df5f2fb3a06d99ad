package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cartkit/internal/config"
	"cartkit/internal/pricing"
	"cartkit/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if err := configureLogger(logger, cfg); err != nil {
		logger.Fatalf("configure logger: %v", err)
	}

	policy, err := pricing.ParsePolicy(cfg.Pricing.Missing)
	if err != nil {
		logger.Fatalf("pricing policy: %v", err)
	}

	entry := logger.WithField("run_id", uuid.NewString())
	checkout := service.NewCheckoutService(pricing.Calculator{Policy: policy}, entry)

	if err := run(os.Stdin, os.Stdout, checkout); err != nil {
		entry.Fatalf("checkout: %v", err)
	}
}

func configureLogger(logger *logrus.Logger, cfg config.Config) error {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	switch strings.ToLower(strings.TrimSpace(cfg.Log.Format)) {
	case "", "text":
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}
	return nil
}

func run(in io.Reader, out io.Writer, checkout service.CheckoutService) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read order: %w", err)
	}

	order, err := service.DecodeOrder(data)
	if err != nil {
		return err
	}

	receipt, err := checkout.Checkout(order)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(receipt)
}
