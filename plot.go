package plot

import (
	"github.com/gonutz/prototype/draw"
)

// Run opens a window with the given title and size and calls plot every
// frame to describe the graphs. It blocks until the window is closed. Escape
// closes the window, F11 toggles fullscreen.
func Run(title string, width, height int, plot func(p *Plotter)) error {
	p := &Plotter{}
	return draw.RunWindow(title, width, height, func(window draw.Window) {
		if window.WasKeyPressed(draw.KeyEscape) {
			window.Close()
			return
		}

		if window.WasKeyPressed(draw.KeyF11) {
			p.fullscreen = !p.fullscreen
		}
		window.SetFullscreen(p.fullscreen)

		p.Window = window
		p.frame(window, plot)
	})
}

// Render draws a single frame onto c. The embedded Window of the Plotter is
// nil during Render, so plot may use the plotting and Canvas methods but no
// keyboard or mouse input.
func Render(c Canvas, plot func(p *Plotter)) {
	p := &Plotter{}
	p.frame(c, plot)
}

// Canvas is the set of drawing primitives a frame needs. Every draw.Window
// is a Canvas.
type Canvas interface {
	Size() (width, height int)
	DrawPoint(x, y int, color Color)
	DrawLine(fromX, fromY, toX, toY int, color Color)
	DrawRect(x, y, width, height int, color Color)
	FillRect(x, y, width, height int, color Color)
	DrawEllipse(x, y, width, height int, color Color)
	GetTextSize(text string) (width, height int)
	DrawText(text string, x, y int, color Color)
}

type Plotter struct {
	draw.Window
	canvas     Canvas
	fullscreen bool
	title      string
	xLabel     string
	yLabel     string
	legend     bool
	grid       bool
	xTicks     []float64
	xTicksErr  error
	graphs     []*Graph
	doAtEnd    func()
}

func (p *Plotter) SetFullscreen(f bool) {
	p.fullscreen = f
}

// The Canvas methods draw onto whatever the current frame renders to, a
// window in Run and the given Canvas in Render.

func (p *Plotter) Size() (width, height int) {
	return p.canvas.Size()
}

func (p *Plotter) DrawPoint(x, y int, color Color) {
	p.canvas.DrawPoint(x, y, color)
}

func (p *Plotter) DrawLine(fromX, fromY, toX, toY int, color Color) {
	p.canvas.DrawLine(fromX, fromY, toX, toY, color)
}

func (p *Plotter) DrawRect(x, y, width, height int, color Color) {
	p.canvas.DrawRect(x, y, width, height, color)
}

func (p *Plotter) FillRect(x, y, width, height int, color Color) {
	p.canvas.FillRect(x, y, width, height, color)
}

func (p *Plotter) DrawEllipse(x, y, width, height int, color Color) {
	p.canvas.DrawEllipse(x, y, width, height, color)
}

func (p *Plotter) GetTextSize(text string) (width, height int) {
	return p.canvas.GetTextSize(text)
}

func (p *Plotter) DrawText(text string, x, y int, color Color) {
	p.canvas.DrawText(text, x, y, color)
}

func (p *Plotter) frame(c Canvas, plot func(p *Plotter)) {
	p.canvas = c
	p.reset()
	plot(p)
	p.drawFigure()

	if p.doAtEnd != nil {
		p.doAtEnd()
	}
}

func (p *Plotter) reset() {
	p.graphs = p.graphs[:0]
	p.doAtEnd = nil
	p.title = ""
	p.xLabel = ""
	p.yLabel = ""
	p.legend = false
	p.grid = false
	p.xTicks = nil
	p.xTicksErr = nil
}

// New adds a graph to the current frame. Graphs are drawn in the order they
// were created.
func (p *Plotter) New() *Graph {
	g := &Graph{
		color: draw.White,
	}
	p.graphs = append(p.graphs, g)
	return g
}

// Defer registers f to be called after the graphs of this frame are drawn,
// for example to draw annotations on top of them.
func (p *Plotter) Defer(f func()) {
	p.doAtEnd = f
}

func (p *Plotter) Title(text string) {
	p.title = text
}

func (p *Plotter) XLabel(text string) {
	p.xLabel = text
}

func (p *Plotter) YLabel(text string) {
	p.yLabel = text
}

// Legend shows a box listing every graph that has a label.
func (p *Plotter) Legend() {
	p.legend = true
}

// Grid draws a line across the plot area at every tick.
func (p *Plotter) Grid() {
	p.grid = true
}

// XTicks replaces the automatic x ticks with exactly the given values.
func (p *Plotter) XTicks(ticks any) {
	p.xTicks, p.xTicksErr = cast(ticks)
}

type Graph struct {
	x      []float64
	y      []float64
	color  draw.Color
	label  string
	marker Marker
	err    error
}

func (g *Graph) X(x any) *Graph {
	xs, err := cast(x)
	g.x = xs
	g.setErr(err)
	return g
}

func (g *Graph) Y(y any) *Graph {
	ys, err := cast(y)
	g.y = ys
	g.setErr(err)
	return g
}

// XY takes interleaved values x0, y0, x1, y1, ...
func (g *Graph) XY(xy any) *Graph {
	xys, err := cast(xy)
	if err != nil {
		g.setErr(err)
		return g
	}
	if len(xys)%2 != 0 {
		g.setErr(errOddXY)
		return g
	}
	g.x = make([]float64, len(xys)/2)
	g.y = make([]float64, len(xys)/2)
	for i := range g.x {
		g.x[i] = xys[i*2]
		g.y[i] = xys[i*2+1]
	}
	return g
}

func (g *Graph) Label(text string) *Graph {
	g.label = text
	return g
}

func (g *Graph) Marker(m Marker) *Graph {
	g.marker = m
	return g
}

func (g *Graph) Color(c Color) *Graph {
	g.color = c
	return g
}

func (g *Graph) RGB(red, green, blue uint8) *Graph {
	g.color = RGB(red, green, blue)
	return g
}

func (g *Graph) setErr(err error) {
	if g.err == nil {
		g.err = err
	}
}

type Color = draw.Color

func RGB(r, g, b uint8) Color {
	return draw.RGB(float32(r)/255, float32(g)/255, float32(b)/255)
}

var (
	Black     = draw.Black
	White     = draw.White
	Gray      = draw.Gray
	LightGray = draw.LightGray
	DarkGray  = draw.DarkGray
	Red       = draw.Red
	LightRed  = draw.LightRed
	Green     = draw.Green
	Blue      = draw.Blue
	LightBlue = draw.LightBlue
	Purple    = draw.Purple
	Yellow    = draw.Yellow
	Cyan      = draw.Cyan
	Brown     = draw.Brown
	// Orange is the second default series color of most charting tools.
	Orange = RGB(255, 127, 14)
)
