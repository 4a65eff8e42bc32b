// Package render rasterizes triangulation snapshots: every triangle's edges,
// and its circumcircle in a faint red.
package render

import (
	"image"
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/triangulation"
	"github.com/pkg/errors"
)

const lineWidth = 1.5

// Draw the triangles onto the whole context. Coordinates are normalized, so
// [-1,1] spans the context on both axes, with y pointing down the way input
// coordinates arrive from the window.
func Draw(c *gg.Context, views []triangulation.TriangleView) {
	c.SetRGB(1, 1, 1)
	c.Clear()

	c.SetLineWidth(lineWidth)
	c.SetRGB(0, 0, 0)
	for _, view := range views {
		for i := range view.Vertices {
			fromX, fromY := toWindow(c, view.Vertices[i].X(), view.Vertices[i].Y())
			next := view.Vertices[triangulation.CircularIndex(i+1, 3)]
			toX, toY := toWindow(c, next.X(), next.Y())
			c.DrawLine(fromX, fromY, toX, toY)
		}
	}
	c.Stroke()

	// The window need not be square, so circles become ellipses
	c.SetRGBA255(200, 0, 0, 50)
	for _, view := range views {
		x, y := toWindow(c, float32(view.Center[0]), float32(view.Center[1]))
		rx := view.Radius * 0.5 * float64(c.Width())
		ry := view.Radius * 0.5 * float64(c.Height())
		c.DrawEllipse(x, y, rx, ry)
		c.Stroke()
	}
}

func toWindow(c *gg.Context, x, y float32) (float64, float64) {
	return (float64(x)*0.5 + 0.5) * float64(c.Width()), (float64(y)*0.5 + 0.5) * float64(c.Height())
}

func Image(views []triangulation.TriangleView, width, height int) image.Image {
	c := gg.NewContext(width, height)
	Draw(c, views)
	return c.Image()
}

func SavePNG(path string, views []triangulation.TriangleView, width, height int) error {
	c := gg.NewContext(width, height)
	Draw(c, views)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Print a saved PNG to the terminal (iTerm only)
func Cat(path string, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}
	if err := imgcat.CatFile(path, w); err != nil {
		return errors.Wrapf(err, "printing %s", path)
	}
	return nil
}
