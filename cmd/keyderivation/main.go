// Command keyderivation shows a line chart of the key derivation time of
// the interval, logarithmic and compression storage methods.
package main

import (
	"log/slog"
	"os"

	"github.com/DeltaTestSoftware/teslaplot/internal/figures"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := figures.Show(figures.KeyDerivation(), logger); err != nil {
		logger.Error("cannot show figure", slog.Any("error", err))
		os.Exit(1)
	}
}
