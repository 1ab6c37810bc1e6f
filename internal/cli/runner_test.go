package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"cartcalc/internal/cart"
	"cartcalc/internal/catalog"
	"cartcalc/internal/cli"
	"cartcalc/internal/pricing"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	catalogue := catalog.Default()
	table := pricing.DefaultDeliveryTable()
	offers := pricing.Offers{PairHalfPriceCode: "R01"}

	var out bytes.Buffer
	runner, err := cli.NewRunner(cli.RunnerConfig{
		In:             strings.NewReader(input),
		Out:            &out,
		Logger:         zerolog.Nop(),
		NewCart:        func() *cart.Cart { return cart.New(catalogue, table, offers) },
		CurrencySymbol: "$",
	})
	require.NoError(t, err)
	require.NoError(t, runner.Run())
	return out.String()
}

func TestRunRendersOrderSummary(t *testing.T) {
	out := runSession(t, "B01 G01\nexit\n")

	require.Contains(t, out, "Welcome to Cart Calculator!")
	require.Contains(t, out, "Order Summary:")
	require.Contains(t, out, "Blue Widget (B01) x1: $7.95")
	require.Contains(t, out, "Green Widget (G01) x1: $24.95")
	require.Contains(t, out, "Subtotal: $32.90")
	require.Contains(t, out, "Delivery: $4.95")
	require.Contains(t, out, "Grand Total: $37.85")
	require.NotContains(t, out, "Discount:")
	require.Contains(t, out, "Thank you for using Cart Calculator!")
}

func TestRunRendersDiscountLineWhenPositive(t *testing.T) {
	out := runSession(t, "R01 R01\nexit\n")

	require.Contains(t, out, "Red Widget (R01) x2: $65.90")
	require.Contains(t, out, "Subtotal: $65.90")
	require.Contains(t, out, "Discount: -$16.48")
	require.Contains(t, out, "Delivery: $4.95")
	require.Contains(t, out, "Grand Total: $54.37")
}

func TestRunReportsUnknownCodeAndStopsTheLine(t *testing.T) {
	out := runSession(t, "B01 INVALID G01\nexit\n")

	require.Contains(t, out, "Error: product INVALID not found")
	// The failed line renders no summary; G01 was never processed.
	require.NotContains(t, out, "Order Summary:")
	require.NotContains(t, out, "Green Widget")
}

func TestRunRecoversAfterFailedLine(t *testing.T) {
	out := runSession(t, "NOPE\nB01 G01\nexit\n")

	require.Contains(t, out, "Error: product NOPE not found")
	require.Contains(t, out, "Grand Total: $37.85")
}

func TestRunSkipsBlankLinesAndExitsOnEOF(t *testing.T) {
	out := runSession(t, "\n   \nB01\n")

	require.Contains(t, out, "Grand Total: $12.90")
	require.Contains(t, out, "Thank you for using Cart Calculator!")
}

func TestRunExitIsCaseInsensitive(t *testing.T) {
	out := runSession(t, "EXIT\n")
	require.Contains(t, out, "Thank you for using Cart Calculator!")
	require.NotContains(t, out, "Order Summary:")
}

func TestNewRunnerValidatesConfig(t *testing.T) {
	_, err := cli.NewRunner(cli.RunnerConfig{})
	require.Error(t, err)

	_, err = cli.NewRunner(cli.RunnerConfig{In: strings.NewReader(""), Out: &bytes.Buffer{}})
	require.ErrorContains(t, err, "cart factory")
}
