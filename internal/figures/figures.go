// Package figures holds the literal data of the storage comparison charts
// and knows how to put them on a plot.
package figures

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	plot "github.com/DeltaTestSoftware/teslaplot"
)

var (
	ErrEmpty         = errors.New("no data")
	ErrNotIncreasing = errors.New("x values not strictly increasing")
	ErrLength        = errors.New("series length differs from x")
	ErrNoLabel       = errors.New("series without label")
	ErrNotFinite     = errors.New("value is NaN or infinite")
)

// Series is one named line. Y[i] belongs to the figure's X[i].
type Series struct {
	Label  string
	Y      []float64
	Marker plot.Marker
	Color  plot.Color
}

type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
	X      []float64
	// XTicks, if set, are the only x ticks shown.
	XTicks []float64
	Series []Series
	Grid   bool
}

func (f Figure) Validate() error {
	if len(f.X) == 0 {
		return fmt.Errorf("%s: x: %w", f.Title, ErrEmpty)
	}
	if i := firstNonFinite(f.X); i >= 0 {
		return fmt.Errorf("%s: x[%d]: %w", f.Title, i, ErrNotFinite)
	}
	for i := 1; i < len(f.X); i++ {
		if f.X[i] <= f.X[i-1] {
			return fmt.Errorf("%s: x[%d]=%v after %v: %w", f.Title, i, f.X[i], f.X[i-1], ErrNotIncreasing)
		}
	}
	if len(f.Series) == 0 {
		return fmt.Errorf("%s: series: %w", f.Title, ErrEmpty)
	}
	for i, s := range f.Series {
		if s.Label == "" {
			return fmt.Errorf("%s: series %d: %w", f.Title, i+1, ErrNoLabel)
		}
		if len(s.Y) != len(f.X) {
			return fmt.Errorf("%s: %q has %d values, x has %d: %w", f.Title, s.Label, len(s.Y), len(f.X), ErrLength)
		}
		if j := firstNonFinite(s.Y); j >= 0 {
			return fmt.Errorf("%s: %q[%d]: %w", f.Title, s.Label, j, ErrNotFinite)
		}
	}
	return nil
}

func firstNonFinite(values []float64) int {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

// Draw describes the figure on p. It is called once per frame.
func (f Figure) Draw(p *plot.Plotter) {
	for _, s := range f.Series {
		p.New().X(f.X).Y(s.Y).Label(s.Label).Marker(s.Marker).Color(s.Color)
	}
	if f.XTicks != nil {
		p.XTicks(f.XTicks)
	}
	p.Title(f.Title)
	p.XLabel(f.XLabel)
	p.YLabel(f.YLabel)
	p.Legend()
	if f.Grid {
		p.Grid()
	}
}

// Show validates f and displays it until the window is closed. A nil logger
// means slog.Default().
func Show(f Figure, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := f.Validate(); err != nil {
		return err
	}
	logger.Info("showing figure",
		slog.String("title", f.Title),
		slog.Int("series", len(f.Series)),
		slog.Int("points", len(f.X)),
	)
	if err := plot.Run(f.Title, f.Width, f.Height, f.Draw); err != nil {
		return fmt.Errorf("show %q: %w", f.Title, err)
	}
	logger.Info("window closed", slog.String("title", f.Title))
	return nil
}
