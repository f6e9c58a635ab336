package plot_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plot "github.com/DeltaTestSoftware/teslaplot"
	"github.com/DeltaTestSoftware/teslaplot/plottest"
)

func textsInRowOf(r *plottest.Recorder, text string) []string {
	var y int
	found := false
	for _, op := range r.Ops {
		if op.Kind == plottest.Text && op.Text == text {
			y, found = op.Y, true
			break
		}
	}
	if !found {
		return nil
	}
	var row []string
	for _, op := range r.Filter(func(op plottest.Op) bool { return op.Kind == plottest.Text && op.Y == y }) {
		row = append(row, op.Text)
	}
	return row
}

func TestExplicitXTicks(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	plot.Render(r, func(p *plot.Plotter) {
		p.New().X([]int{1, 2, 3, 4, 5}).Y([]int{10, 20, 30, 40, 50})
		p.XTicks([]int{1, 2, 3, 4, 5})
	})

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, textsInRowOf(r, "3"))
	for _, s := range r.Texts() {
		assert.NotContains(t, s, ".", "no fractional tick labels expected")
	}
}

func TestAutoTicks(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	plot.Render(r, func(p *plot.Plotter) {
		p.New().X([]float64{2, 4, 6, 8, 10}).Y([]float64{0, 20, 10, 40, 30})
	})

	assert.Equal(t, []string{"2", "3", "4", "5", "6", "7", "8", "9", "10"}, textsInRowOf(r, "6"))
	assert.True(t, r.Has("0"))
	assert.True(t, r.Has("35"))
	assert.False(t, r.Has("45"))
}

func TestLegendListsLabeledGraphs(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	plot.Render(r, func(p *plot.Plotter) {
		p.New().Y([]int{3, 2, 1}).Label("first").Marker(plot.Circle)
		p.New().Y([]int{4, 3, 2}).Label("second").Marker(plot.Square)
		p.New().Y([]int{5, 4, 3})
		p.New().Y([]int{6, 5, 4}).Label("third").Marker(plot.Triangle)
		p.Legend()
	})

	assert.Equal(t, 1, r.Count(plottest.Fill))
	assert.Equal(t, []string{"first", "second", "third"}, textsAmong(r, "first", "second", "third"))
	// three points plus one legend sample
	assert.Equal(t, 4, r.Count(plottest.Ellipse))
}

func textsAmong(r *plottest.Recorder, texts ...string) []string {
	var found []string
	for _, s := range r.Texts() {
		for _, want := range texts {
			if s == want {
				found = append(found, s)
			}
		}
	}
	return found
}

func TestNoLegendWithoutCall(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	plot.Render(r, func(p *plot.Plotter) {
		p.New().Y([]int{1, 2, 3}).Label("hidden")
	})

	assert.False(t, r.Has("hidden"))
	assert.Zero(t, r.Count(plottest.Fill))
}

func TestLegendAvoidsData(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	plot.Render(r, func(p *plot.Plotter) {
		p.New().X([]int{1, 2, 3, 4, 5}).Y([]int{128, 256, 384, 512, 640}).Label("Deterministic mode")
		p.New().X([]int{1, 2, 3, 4, 5}).Y([]int{32, 64, 96, 128, 160}).Label("Probabilistic mode")
		p.Legend()
	})

	fills := r.Filter(func(op plottest.Op) bool { return op.Kind == plottest.Fill })
	require.Len(t, fills, 1)
	assert.Less(t, fills[0].X, 400, "rising data leaves the upper left corner free")
	assert.Less(t, fills[0].Y, 300)
}

func TestGrid(t *testing.T) {
	draw := func(grid bool) *plottest.Recorder {
		r := plottest.NewRecorder(800, 600)
		plot.Render(r, func(p *plot.Plotter) {
			p.New().X([]int{1, 2, 3}).Y([]int{1, 2, 3})
			p.XTicks([]int{1, 2, 3})
			if grid {
				p.Grid()
			}
		})
		return r
	}

	gridLines := func(r *plottest.Recorder) int {
		return len(r.Filter(func(op plottest.Op) bool {
			return op.Kind == plottest.Line && op.Color == plot.DarkGray
		}))
	}

	assert.Zero(t, gridLines(draw(false)))
	with := draw(true)
	// three x ticks plus the y ticks
	assert.Greater(t, gridLines(with), 3)
}

func TestTitleAndLabels(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	plot.Render(r, func(p *plot.Plotter) {
		p.New().Y([]int{1, 2})
		p.Title("The Title")
		p.XLabel("Along")
		p.YLabel("Up")
	})

	assert.True(t, r.Has("The Title"))
	assert.True(t, r.Has("Along"))
	assert.True(t, r.Has("U"))
	assert.True(t, r.Has("p"))
}

func TestMarkersPerPoint(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	plot.Render(r, func(p *plot.Plotter) {
		p.New().Y([]int{1, 2, 3, 4, 5}).Marker(plot.Square)
		p.New().Y([]int{5, 4, 3, 2, 1}).Marker(plot.Circle)
	})

	// the plot frame is a rect too
	assert.Equal(t, 5+1, r.Count(plottest.Rect))
	assert.Equal(t, 5, r.Count(plottest.Ellipse))
}

func TestMismatchedLengthsAreReported(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	require.NotPanics(t, func() {
		plot.Render(r, func(p *plot.Plotter) {
			p.New().X([]int{1, 2, 3}).Y([]int{1, 2})
			p.New().Y([]int{1, 2, 3}).RGB(0, 255, 0)
		})
	})

	errs := redTexts(r)
	require.Len(t, errs, 1)
	assert.Equal(t, "graph 1: 3 x values but 2 y values", errs[0])

	green := r.Filter(func(op plottest.Op) bool {
		return op.Kind == plottest.Line && op.Color == plot.RGB(0, 255, 0)
	})
	assert.Len(t, green, 2)
}

func TestInvalidInputIsReported(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	require.NotPanics(t, func() {
		plot.Render(r, func(p *plot.Plotter) {
			p.New().Y([]string{"a"})
			p.New().XY([]int{1, 2, 3})
			p.XTicks(42)
		})
	})

	errs := redTexts(r)
	require.Len(t, errs, 3)
	assert.Equal(t, "x ticks: invalid type, slice of numbers expected but have int", errs[0])
	assert.Equal(t, "graph 1: invalid type, slice of numbers expected but have []string", errs[1])
	assert.True(t, strings.HasPrefix(errs[2], "graph 2: invalid XY values"))
}

func renderWithin(t *testing.T, r *plottest.Recorder, frame func(p *plot.Plotter)) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		plot.Render(r, frame)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Render did not return")
	}
}

func TestNonFiniteInputIsReported(t *testing.T) {
	tests := []struct {
		name  string
		frame func(p *plot.Plotter)
		want  []string
	}{
		{
			name: "NaN y",
			frame: func(p *plot.Plotter) {
				p.New().X([]float64{1, 2, 3}).Y([]float64{1, math.NaN(), 3})
				p.New().Y([]int{1, 2, 3}).Color(plot.Cyan)
			},
			want: []string{"graph 1: non-finite value"},
		},
		{
			name: "infinite x",
			frame: func(p *plot.Plotter) {
				p.New().X([]float64{1, math.Inf(1)}).Y([]float64{1, 2})
			},
			want: []string{"graph 1: non-finite value"},
		},
		{
			name: "infinite tick",
			frame: func(p *plot.Plotter) {
				p.New().Y([]int{1, 2})
				p.XTicks([]float64{0, math.Inf(-1)})
			},
			want: []string{"x ticks: non-finite value"},
		},
		{
			name: "overflowing range",
			frame: func(p *plot.Plotter) {
				p.New().Y([]float64{-1e308, 0, 1e308})
			},
			want: []string{"data range too large to draw"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := plottest.NewRecorder(800, 600)
			renderWithin(t, r, tt.frame)
			assert.Equal(t, tt.want, redTexts(r))
		})
	}
}

func TestNonFiniteGraphDoesNotHideOthers(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	renderWithin(t, r, func(p *plot.Plotter) {
		p.New().Y([]float64{math.NaN()})
		p.New().Y([]int{1, 2, 3}).Color(plot.Cyan)
	})

	cyan := r.Filter(func(op plottest.Op) bool {
		return op.Kind == plottest.Line && op.Color == plot.Cyan
	})
	assert.Len(t, cyan, 2)
}

func TestXY(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	plot.Render(r, func(p *plot.Plotter) {
		p.New().XY([]float32{0, 0, 1, 1, 2, 0}).Color(plot.Yellow)
	})

	yellow := r.Filter(func(op plottest.Op) bool { return op.Color == plot.Yellow })
	// two segments and the closing point
	assert.Len(t, yellow, 3)
	assert.Empty(t, redTexts(r))
}

func TestRenderIsDeterministic(t *testing.T) {
	frame := func(p *plot.Plotter) {
		p.New().X([]float64{2, 4, 6}).Y([]float64{3.5, 1.25, 2}).Label("a").Marker(plot.Cross)
		p.Legend()
		p.Grid()
		p.Title("same")
	}
	r := plottest.NewRecorder(1000, 600)
	plot.Render(r, frame)
	first := append([]plottest.Op(nil), r.Ops...)

	r.Reset()
	require.Empty(t, r.Ops)
	plot.Render(r, frame)

	assert.Equal(t, first, r.Ops)
}

func TestDeferRunsAfterGraphs(t *testing.T) {
	r := plottest.NewRecorder(800, 600)
	var opsBefore int
	plot.Render(r, func(p *plot.Plotter) {
		p.New().Y([]int{1, 2, 3})
		p.Defer(func() {
			opsBefore = len(r.Ops)
		})
	})

	assert.NotZero(t, opsBefore)
	assert.Equal(t, len(r.Ops), opsBefore)
}

func TestDeferDrawsOnRenderCanvas(t *testing.T) {
	r := plottest.NewRecorder(640, 480)
	require.NotPanics(t, func() {
		plot.Render(r, func(p *plot.Plotter) {
			p.New().Y([]int{1, 2, 3})
			p.Defer(func() {
				w, h := p.Size()
				textW, textH := p.GetTextSize("note")
				p.DrawText("note", w-textW, h-textH, plot.Yellow)
			})
		})
	})

	last := r.Ops[len(r.Ops)-1]
	assert.Equal(t, plottest.Op{
		Kind:  plottest.Text,
		X:     640 - 4*plottest.GlyphWidth,
		Y:     480 - plottest.GlyphHeight,
		Text:  "note",
		Color: plot.Yellow,
	}, last)
}

func TestTinyCanvas(t *testing.T) {
	r := plottest.NewRecorder(50, 50)
	require.NotPanics(t, func() {
		plot.Render(r, func(p *plot.Plotter) {
			p.New().Y([]int{1, 2, 3})
			p.Title("t")
		})
	})
	assert.Equal(t, []string{"t"}, r.Texts())
}

func redTexts(r *plottest.Recorder) []string {
	var texts []string
	for _, op := range r.Filter(func(op plottest.Op) bool {
		return op.Kind == plottest.Text && op.Color == plot.Red
	}) {
		texts = append(texts, op.Text)
	}
	return texts
}
