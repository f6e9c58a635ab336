// Command disclosuredelay shows a line chart of the storage overhead of the
// deterministic and probabilistic disclosure delay modes.
package main

import (
	"log/slog"
	"os"

	"github.com/DeltaTestSoftware/teslaplot/internal/figures"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := figures.Show(figures.DisclosureDelay(), logger); err != nil {
		logger.Error("cannot show figure", slog.Any("error", err))
		os.Exit(1)
	}
}
