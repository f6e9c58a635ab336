package figures

import (
	plot "github.com/DeltaTestSoftware/teslaplot"
)

// KeyDerivation compares the key derivation time of the interval,
// logarithmic and compression storage methods over the number of slots.
func KeyDerivation() Figure {
	return Figure{
		Title:  "Comparison of Interval, Logarithmic, and Compression Storage Methods",
		XLabel: "Number of Slots",
		YLabel: "Key derivation time",
		Width:  1000,
		Height: 600,
		X:      []float64{2, 4, 6, 8, 10},
		Series: []Series{
			{
				Label:  "Interval",
				Y:      []float64{1569.008, 778.027, 586.823, 506.258, 455.127},
				Marker: plot.Circle,
				Color:  plot.Blue,
			},
			{
				Label:  "Logarithmic",
				Y:      []float64{1540.87, 1260.98, 1070.678, 930.256, 929.548},
				Marker: plot.Square,
				Color:  plot.Green,
			},
			{
				Label:  "Compression",
				Y:      []float64{2040.276, 1354.65, 1207.957, 1090.856, 989.074},
				Marker: plot.Triangle,
				Color:  plot.Red,
			},
		},
		Grid: true,
	}
}

// DisclosureDelay compares the storage overhead in bytes of the
// deterministic and probabilistic modes over the disclosure delay.
func DisclosureDelay() Figure {
	delays := []float64{1, 2, 3, 4, 5}
	return Figure{
		Title:  "Storage overhead vs Disclosure delay",
		XLabel: "Disclosure delay",
		YLabel: "Storage overhead (bytes)",
		Width:  800,
		Height: 600,
		X:      delays,
		XTicks: delays,
		Series: []Series{
			{
				Label:  "Deterministic mode",
				Y:      []float64{128, 256, 384, 512, 640},
				Marker: plot.Circle,
				Color:  plot.LightBlue,
			},
			{
				Label:  "Probabilistic mode",
				Y:      []float64{32, 64, 96, 128, 160},
				Marker: plot.Cross,
				Color:  plot.Orange,
			},
		},
		Grid: true,
	}
}
