package main

import (
	"fmt"
	"os"

	"cartcalc/internal/cart"
	"cartcalc/internal/catalog"
	"cartcalc/internal/cli"
	"cartcalc/internal/config"
	"cartcalc/internal/obs"
	"cartcalc/internal/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)

	catalogue := catalog.Default()
	table := pricing.DefaultDeliveryTable()
	offers := cfg.Offers()

	runner, err := cli.NewRunner(cli.RunnerConfig{
		In:             os.Stdin,
		Out:            os.Stdout,
		Logger:         logger,
		NewCart:        func() *cart.Cart { return cart.New(catalogue, table, offers) },
		CurrencySymbol: cfg.CurrencySymbol,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("build runner")
	}

	logger.Debug().
		Str("env", cfg.AppEnv).
		Int("products", catalogue.Len()).
		Str("half_price_code", cfg.OfferPairHalfPriceCode).
		Msg("cart calculator starting")

	if err := runner.Run(); err != nil {
		logger.Fatal().Err(err).Msg("session failed")
	}
}
