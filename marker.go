package plot

// Marker is the shape drawn at every data point of a graph.
type Marker int

const (
	NoMarker Marker = iota
	Circle
	Square
	Triangle
	Cross
)

const markerRadius = 4

func drawMarker(c Canvas, m Marker, x, y int, color Color) {
	const r = markerRadius
	switch m {
	case Circle:
		c.DrawEllipse(x-r, y-r, 2*r+1, 2*r+1, color)
	case Square:
		c.DrawRect(x-r, y-r, 2*r+1, 2*r+1, color)
	case Triangle:
		c.DrawLine(x, y-r, x-r, y+r, color)
		c.DrawLine(x-r, y+r, x+r, y+r, color)
		c.DrawLine(x+r, y+r, x, y-r, color)
	case Cross:
		c.DrawLine(x-r, y-r, x+r+1, y+r+1, color)
		c.DrawLine(x-r, y+r, x+r+1, y-r-1, color)
	}
}
