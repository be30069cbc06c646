package untangle

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

// Padding around the drawing so stray probe points and splice stubs near the
// bounding box stay visible.
const dbgDrawPadding = 100

func dbgContext(minX, minY, maxX, maxY, scale float64) *gg.Context {
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)
	return c
}

// Helper to draw a fragment pool in the terminal (iTerm only) for debugging.
// Outer fragments are green, Inner red, with endpoints dotted so stitch
// candidates are easy to eyeball.
func (fl FragmentList) dbgDraw(scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, f := range fl {
		for _, p := range f.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	c := dbgContext(minX, minY, maxX, maxY, scale)
	c.SetLineWidth(2)
	for _, f := range fl {
		c.MoveTo(f.Points[0].X, f.Points[0].Y)
		for _, p := range f.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		if f.Tag == Inner {
			c.SetRGB(1, 0, 0)
		} else {
			c.SetRGB(0, 1, 0)
		}
		c.Stroke()
		for _, p := range []Point{f.First(), f.Last()} {
			c.DrawCircle(p.X, p.Y, 3/scale)
			c.SetRGB(1, 1, 0)
			c.Fill()
		}
	}

	c.SavePNG("/tmp/fragment_pool.png")
	imgcat.CatFile("/tmp/fragment_pool.png", os.Stdout)
}

// DrawPolygons renders a decomposition to a PNG. Each polygon is filled and
// stroked; loops are distinguished by hue stepping.
func DrawPolygons(polys []Polygon, scale float64, path string) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	c := dbgContext(minX, minY, maxX, maxY, scale)
	c.SetLineWidth(2)
	for i, poly := range polys {
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		hue := float64(i) / float64(len(polys))
		c.SetRGB(0.2+0.6*hue, 0.5, 0.8-0.6*hue)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}
	return c.SavePNG(path)
}

// dbgDrawPolygons renders to a temp file and shows it inline in the
// terminal.
func dbgDrawPolygons(polys []Polygon, scale float64) {
	DrawPolygons(polys, scale, "/tmp/decomposition.png")
	imgcat.CatFile("/tmp/decomposition.png", os.Stdout)
}
