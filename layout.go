package plot

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	errNotFinite  = errors.New("non-finite value")
	errRangeLarge = errors.New("data range too large to draw")
)

const (
	marginLeft   = 80
	marginRight  = 20
	marginTop    = 40
	marginBottom = 56
	tickLength   = 4
	legendInset  = 10
	legendSample = 30
	legendPad    = 8
	maxTicks     = 100
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return r.x <= x && x < r.x+r.w && r.y <= y && y < r.y+r.h
}

// crosses reports whether the segment from (x1, y1) to (x2, y2) touches r.
func (r rect) crosses(x1, y1, x2, y2 int) bool {
	dx, dy := float64(x2-x1), float64(y2-y1)
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{
		float64(x1 - r.x),
		float64(r.x + r.w - 1 - x1),
		float64(y1 - r.y),
		float64(r.y + r.h - 1 - y1),
	}
	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = math.Min(t1, t)
		}
	}
	return true
}

type bounds struct {
	minX, maxX float64
	minY, maxY float64
}

// finite is false when the padded bounds or their extent overflow.
func (b bounds) finite() bool {
	return allFinite([]float64{b.minX, b.maxX, b.minY, b.maxY, b.maxX - b.minX, b.maxY - b.minY})
}

type tick struct {
	value float64
	label string
}

func (p *Plotter) drawFigure() {
	c := p.canvas
	width, height := c.Size()
	area := rect{
		x: marginLeft,
		y: marginTop,
		w: width - marginLeft - marginRight,
		h: height - marginTop - marginBottom,
	}

	var errs []error
	if p.xTicksErr == nil && !allFinite(p.xTicks) {
		p.xTicksErr = errNotFinite
	}
	if p.xTicksErr != nil {
		errs = append(errs, fmt.Errorf("x ticks: %w", p.xTicksErr))
	}

	// The user does not need to specify values for x. If unspecified, we just
	// make x count up like: 0, 1, 2, 3, 4, ...
	var graphs []*Graph
	for i, g := range p.graphs {
		if g.err == nil && len(g.x) == 0 {
			g.x = make([]float64, len(g.y))
			for i := range g.x {
				g.x[i] = float64(i)
			}
		}
		if g.err == nil && len(g.x) != len(g.y) {
			g.err = fmt.Errorf("%d x values but %d y values", len(g.x), len(g.y))
		}
		if g.err == nil && !(allFinite(g.x) && allFinite(g.y)) {
			g.err = errNotFinite
		}
		if g.err != nil {
			errs = append(errs, fmt.Errorf("graph %d: %w", i+1, g.err))
			continue
		}
		graphs = append(graphs, g)
	}

	p.drawTitles(area)
	if area.w <= 1 || area.h <= 1 {
		return
	}
	defer p.drawErrors(area, &errs)

	xTickValues := p.xTicks
	if p.xTicksErr != nil {
		xTickValues = nil
	}
	b := dataBounds(graphs, xTickValues)
	if !b.finite() {
		errs = append(errs, errRangeLarge)
		return
	}
	t := newTransformer(b, area)

	var xTicks []tick
	if xTickValues != nil {
		xTicks = explicitTicks(xTickValues)
	} else {
		xTicks = autoTicks(b.minX, b.maxX)
	}
	yTicks := autoTicks(b.minY, b.maxY)

	bottom := area.y + area.h - 1
	right := area.x + area.w - 1

	if p.grid {
		for _, tk := range xTicks {
			x, _ := t.toScreen(tk.value, b.minY)
			c.DrawLine(x, area.y+1, x, bottom, DarkGray)
		}
		for _, tk := range yTicks {
			_, y := t.toScreen(b.minX, tk.value)
			c.DrawLine(area.x+1, y, right, y, DarkGray)
		}
	}

	c.DrawRect(area.x, area.y, area.w, area.h, White)

	for _, tk := range xTicks {
		x, _ := t.toScreen(tk.value, b.minY)
		c.DrawLine(x, bottom, x, bottom+tickLength+1, White)
		textW, _ := c.GetTextSize(tk.label)
		c.DrawText(tk.label, x-textW/2, bottom+tickLength+2, White)
	}
	for _, tk := range yTicks {
		_, y := t.toScreen(b.minX, tk.value)
		c.DrawLine(area.x-tickLength, y, area.x, y, White)
		textW, textH := c.GetTextSize(tk.label)
		c.DrawText(tk.label, area.x-tickLength-2-textW, y-textH/2, White)
	}

	for _, g := range graphs {
		if len(g.x) == 0 {
			continue
		}

		x, y := t.toScreen(g.x[0], g.y[0])
		for i := 1; i < len(g.x); i++ {
			x2, y2 := t.toScreen(g.x[i], g.y[i])
			c.DrawLine(x, y, x2, y2, g.color)
			x, y = x2, y2
		}
		// DrawLine does not draw the last point in a line, so we have to draw
		// the very last line in the graph ourselves.
		c.DrawPoint(x, y, g.color)

		if g.marker != NoMarker {
			for i := range g.x {
				mx, my := t.toScreen(g.x[i], g.y[i])
				drawMarker(c, g.marker, mx, my, g.color)
			}
		}
	}

	if p.legend {
		p.drawLegend(graphs, area, t)
	}
}

func (p *Plotter) drawErrors(area rect, errs *[]error) {
	y := area.y + 4
	for _, err := range *errs {
		text := err.Error()
		_, textH := p.canvas.GetTextSize(text)
		p.canvas.DrawText(text, area.x+6, y, Red)
		y += textH
	}
}

func (p *Plotter) drawTitles(area rect) {
	c := p.canvas

	if p.title != "" {
		textW, textH := c.GetTextSize(p.title)
		c.DrawText(p.title, area.x+(area.w-textW)/2, (marginTop-textH)/2, White)
	}

	if p.xLabel != "" {
		textW, textH := c.GetTextSize(p.xLabel)
		c.DrawText(p.xLabel, area.x+(area.w-textW)/2, area.y+area.h+marginBottom-textH-4, White)
	}

	// Text cannot be rotated so the y label is written top to bottom, one
	// glyph per row.
	if p.yLabel != "" {
		glyphs := []rune(p.yLabel)
		_, textH := c.GetTextSize(p.yLabel)
		y := area.y + (area.h-len(glyphs)*textH)/2
		for _, r := range glyphs {
			s := string(r)
			textW, _ := c.GetTextSize(s)
			c.DrawText(s, 12-textW/2, y, White)
			y += textH
		}
	}
}

func (p *Plotter) drawLegend(graphs []*Graph, area rect, t transformer) {
	c := p.canvas

	var entries []*Graph
	maxTextW, rowH := 0, 2*markerRadius+1
	for _, g := range graphs {
		if g.label == "" {
			continue
		}
		entries = append(entries, g)
		textW, textH := c.GetTextSize(g.label)
		if textW > maxTextW {
			maxTextW = textW
		}
		if textH > rowH {
			rowH = textH
		}
	}
	if len(entries) == 0 {
		return
	}
	rowH += 4

	box := rect{
		w: legendPad + legendSample + legendPad + maxTextW + legendPad,
		h: len(entries)*rowH + legendPad,
	}
	box = bestLegendPlace(box, area, graphs, t)

	c.FillRect(box.x, box.y, box.w, box.h, Black)
	c.DrawRect(box.x, box.y, box.w, box.h, Gray)

	for i, g := range entries {
		cy := box.y + legendPad/2 + i*rowH + rowH/2
		x0 := box.x + legendPad
		c.DrawLine(x0, cy, x0+legendSample, cy, g.color)
		drawMarker(c, g.marker, x0+legendSample/2, cy, g.color)
		_, textH := c.GetTextSize(g.label)
		c.DrawText(g.label, x0+legendSample+legendPad, cy-textH/2, White)
	}
}

// bestLegendPlace tries the corners upper right, upper left, lower left and
// lower right, in that order, and keeps the first one covering the fewest
// data points and line segments.
func bestLegendPlace(box, area rect, graphs []*Graph, t transformer) rect {
	left := area.x + legendInset
	right := area.x + area.w - legendInset - box.w
	top := area.y + legendInset
	bottom := area.y + area.h - legendInset - box.h
	corners := [][2]int{
		{right, top},
		{left, top},
		{left, bottom},
		{right, bottom},
	}

	best, bestCount := box, math.MaxInt
	for _, corner := range corners {
		candidate := rect{x: corner[0], y: corner[1], w: box.w, h: box.h}
		count := 0
		for _, g := range graphs {
			for i := range g.x {
				x, y := t.toScreen(g.x[i], g.y[i])
				if candidate.contains(x, y) {
					count++
				}
				if i > 0 {
					prevX, prevY := t.toScreen(g.x[i-1], g.y[i-1])
					if candidate.crosses(prevX, prevY, x, y) {
						count++
					}
				}
			}
		}
		if count < bestCount {
			best, bestCount = candidate, count
		}
	}
	return best
}

// dataBounds returns the extent of all graphs and extra x values, padded by a
// tenth of the range on every side.
func dataBounds(graphs []*Graph, extraX []float64) bounds {
	b := bounds{
		minX: math.Inf(1),
		maxX: math.Inf(-1),
		minY: math.Inf(1),
		maxY: math.Inf(-1),
	}
	includeX := func(x float64) {
		b.minX = math.Min(b.minX, x)
		b.maxX = math.Max(b.maxX, x)
	}
	for _, g := range graphs {
		for _, x := range g.x {
			includeX(x)
		}
		for _, y := range g.y {
			b.minY = math.Min(b.minY, y)
			b.maxY = math.Max(b.maxY, y)
		}
	}
	for _, x := range extraX {
		includeX(x)
	}

	if isInf(b.minX) {
		b.minX, b.maxX = 0, 0
	}
	if isInf(b.minY) {
		b.minY, b.maxY = 0, 0
	}

	var xMargin float64 = 1
	if b.minX < b.maxX {
		xMargin = (b.maxX - b.minX) / 10
	}
	b.minX -= xMargin
	b.maxX += xMargin

	var yMargin float64 = 1
	if b.minY < b.maxY {
		yMargin = (b.maxY - b.minY) / 10
	}
	b.minY -= yMargin
	b.maxY += yMargin

	return b
}

func explicitTicks(values []float64) []tick {
	ticks := make([]tick, len(values))
	for i, v := range values {
		ticks[i] = tick{value: v, label: strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return ticks
}

func autoTicks(lo, hi float64) []tick {
	step, precision := calcStepsAndPrecision(hi - lo)
	first := math.Ceil(lo/step) * step
	if !allFinite([]float64{first, hi}) {
		return nil
	}
	var ticks []tick
	for i := 0; i < maxTicks; i++ {
		v := first + float64(i)*step
		if v > hi {
			break
		}
		if abs(v) < step/1e6 {
			v = 0
		}
		ticks = append(ticks, tick{value: v, label: fmt.Sprintf("%.*f", precision, v)})
	}
	return ticks
}

// calcStepsAndPrecision picks a tick step of 1, 2 or 5 times a power of ten
// that splits theRange into roughly eight parts, and the number of decimals
// needed to print it.
func calcStepsAndPrecision(theRange float64) (float64, int) {
	if !(theRange > 0) || isInf(theRange) {
		return 1, 0
	}

	raw := theRange / 8
	scale := math.Pow(10, math.Floor(math.Log10(raw)))
	var step float64
	switch f := raw / scale; {
	case f < 1.5:
		step = scale
	case f < 3:
		step = 2 * scale
	case f < 7:
		step = 5 * scale
	default:
		step = 10 * scale
	}

	prec := -int(math.Floor(math.Log10(step)))
	if prec < 0 {
		prec = 0
	}
	return step, prec
}

type transformer struct {
	b         bounds
	area      rect
	xToScreen float64
	yToScreen float64
}

func newTransformer(b bounds, area rect) transformer {
	return transformer{
		b:         b,
		area:      area,
		xToScreen: float64(area.w-1) / (b.maxX - b.minX),
		yToScreen: float64(area.h-1) / (b.maxY - b.minY),
	}
}

func (t transformer) toScreen(x, y float64) (screenX, screenY int) {
	screenX = t.area.x + round((x-t.b.minX)*t.xToScreen)
	screenY = t.area.y + t.area.h - 1 - round((y-t.b.minY)*t.yToScreen)
	return
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func isInf(x float64) bool {
	return math.IsInf(x, 1) || math.IsInf(x, -1)
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || isInf(v) {
			return false
		}
	}
	return true
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
