// Interactive host: click inside the window to insert a point.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/osuushi/delaunay/render"
	"github.com/osuushi/delaunay/triangulation"
	"go.uber.org/zap"
)

func main() {
	var width, height int
	var verbose bool
	flag.IntVar(&width, "width", 640, "Window width in pixels.")
	flag.IntVar(&height, "height", 640, "Window height in pixels.")
	flag.BoolVar(&verbose, "v", false, "Log every insertion step.")
	flag.Parse()

	logger, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	g := newGame(triangulation.New(triangulation.WithLogger(logger)), logger, width, height)
	ebiten.SetWindowTitle("Delaunay")
	ebiten.SetWindowSize(width, height)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config.Build()
}

// Update and Draw are both called from ebiten's game loop goroutine, so the
// triangulation is never touched concurrently.
type game struct {
	tri    *triangulation.Triangulation
	logger *zap.Logger
	width  int
	height int
	frame  *ebiten.Image
	dirty  bool
}

func newGame(tri *triangulation.Triangulation, logger *zap.Logger, width, height int) *game {
	return &game{tri: tri, logger: logger, width: width, height: height, dirty: true}
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.click(x, y)
	}
	return nil
}

// Insert the point under the cursor. A rejected point only gets logged; the
// previous triangulation stays on screen.
func (g *game) click(x, y int) {
	p := normalize(x, y, g.width, g.height)
	if err := g.tri.AddVertex(p); err != nil {
		g.logger.Warn("rejected point", zap.Stringer("point", p), zap.Error(err))
		return
	}
	g.dirty = true
}

// Map window pixels to [-1, 1] on both axes. y stays pointing down.
func normalize(x, y, width, height int) triangulation.Point {
	return triangulation.Pt(
		float32(x)/float32(width)*2-1,
		float32(y)/float32(height)*2-1,
	)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty || g.frame == nil {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImageFromImage(render.Image(g.tri.Triangles(), g.width, g.height))
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
