package main

// Viewport is the fixed region of mathematical space shown on the canvas,
// plus the pixels reserved on each canvas edge for labels.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
	Padding    float64
}

var defaultViewport = Viewport{
	XMin:    viewXMin,
	XMax:    viewXMax,
	YMin:    viewYMin,
	YMax:    viewYMax,
	Padding: viewPadding,
}

// Transform maps between a viewport and a canvas of Width x Height pixels.
// It is only meaningful when Valid reports true; otherwise the inverse
// functions produce non-finite values.
type Transform struct {
	Viewport
	Width, Height float64
}

func newTransform(vp Viewport, width, height float64) Transform {
	return Transform{Viewport: vp, Width: width, Height: height}
}

// Valid reports whether the canvas is large enough to hold the padded plot.
func (t Transform) Valid() bool {
	return t.Width > 2*t.Padding && t.Height > 2*t.Padding &&
		t.XMax > t.XMin && t.YMax > t.YMin && t.Padding >= 0
}

func (t Transform) ToPixelX(x float64) float64 {
	return (x-t.XMin)/(t.XMax-t.XMin)*(t.Width-2*t.Padding) + t.Padding
}

func (t Transform) ToPixelY(y float64) float64 {
	return t.Height - ((y-t.YMin)/(t.YMax-t.YMin)*(t.Height-2*t.Padding) + t.Padding)
}

func (t Transform) ToMathX(px float64) float64 {
	return (px-t.Padding)/(t.Width-2*t.Padding)*(t.XMax-t.XMin) + t.XMin
}

func (t Transform) ToMathY(py float64) float64 {
	return t.YMax - (py-t.Padding)/(t.Height-2*t.Padding)*(t.YMax-t.YMin)
}

func (t Transform) ToPixel(p Point) Pixel {
	return Pixel{X: t.ToPixelX(p.X), Y: t.ToPixelY(p.Y)}
}

func (t Transform) ToMath(px Pixel) Point {
	return Point{X: t.ToMathX(px.X), Y: t.ToMathY(px.Y)}
}

// PlotRect returns the padded plot area in pixels.
func (t Transform) PlotRect() (minX, minY, maxX, maxY float64) {
	return t.Padding, t.Padding, t.Width - t.Padding, t.Height - t.Padding
}
