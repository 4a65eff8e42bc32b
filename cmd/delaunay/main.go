package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/render"
	"github.com/osuushi/delaunay/triangulation"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Triangulate a point script. Input is newline separated points in the form
// "x y" (blank lines and lines starting with # are skipped), or, for .yaml and
// .yml files, a document with a "points" list of [x, y] pairs. Coordinates are
// normalized to [-1, 1] on both axes, with y pointing down.
//
// Points that can't be inserted are logged and skipped; the triangulation so
// far is kept.
func main() {
	app := kingpin.New("delaunay", "Incrementally build a Delaunay triangulation of the square [-1,1]².")
	input := app.Arg("input", "Point script. Reads stdin when omitted.").String()
	pngPath := app.Flag("png", "Write a rendering of the triangulation to this file.").Short('o').String()
	size := app.Flag("size", "Size of the rendering in pixels.").Default("512").Int()
	preview := app.Flag("imgcat", "Print the rendering to the terminal (iTerm only).").Bool()
	dumpYAML := app.Flag("yaml", "Print the points and triangles as YAML.").Bool()
	verbose := app.Flag("verbose", "Log every insertion step.").Short('v').Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *input, *pngPath, *size, *preview, *dumpYAML, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("triangulation failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config.Build()
}

func run(logger *zap.Logger, input, pngPath string, size int, preview, dumpYAML bool, stdin io.Reader, stdout io.Writer) error {
	points, err := loadPoints(input, stdin)
	if err != nil {
		return err
	}

	tri := triangulation.New(triangulation.WithLogger(logger))
	inserted, rejected := insertAll(logger, tri, points)
	logger.Info("triangulated",
		zap.Int("inserted", inserted),
		zap.Int("rejected", rejected),
		zap.Int("triangles", tri.Len()),
	)

	if dumpYAML {
		if err := writeSnapshot(stdout, tri); err != nil {
			return err
		}
	}

	if preview && pngPath == "" {
		dir, err := os.MkdirTemp("", "delaunay")
		if err != nil {
			return errors.Wrap(err, "creating preview directory")
		}
		defer os.RemoveAll(dir)
		pngPath = filepath.Join(dir, "triangulation.png")
	}
	if pngPath != "" {
		if err := render.SavePNG(pngPath, tri.Triangles(), size, size); err != nil {
			return err
		}
		logger.Debug("saved rendering", zap.String("path", pngPath))
		if preview {
			if err := render.Cat(pngPath, stdout); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadPoints(input string, stdin io.Reader) ([]triangulation.Point, error) {
	if input == "" {
		return readPoints(stdin)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, errors.Wrap(err, "opening point script")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(input)) {
	case ".yaml", ".yml":
		return readYAMLPoints(f)
	}
	return readPoints(f)
}

func readPoints(in io.Reader) ([]triangulation.Point, error) {
	var points []triangulation.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading point script")
	}
	return points, nil
}

func parsePoint(line string) (triangulation.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return triangulation.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 32)
	if err != nil {
		return triangulation.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 32)
	if err != nil {
		return triangulation.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return triangulation.Pt(float32(x), float32(y)), nil
}

type pointScript struct {
	Points [][2]float32 `yaml:"points"`
}

func readYAMLPoints(in io.Reader) ([]triangulation.Point, error) {
	var script pointScript
	if err := yaml.NewDecoder(in).Decode(&script); err != nil {
		return nil, errors.Wrap(err, "decoding point script")
	}
	points := make([]triangulation.Point, len(script.Points))
	for i, p := range script.Points {
		points[i] = triangulation.Point(p)
	}
	return points, nil
}

// Insert every point, skipping the ones the triangulation rejects
func insertAll(logger *zap.Logger, tri *triangulation.Triangulation, points []triangulation.Point) (inserted, rejected int) {
	for i, p := range points {
		if err := tri.AddVertex(p); err != nil {
			logger.Warn("skipping point", zap.Int("index", i), zap.Stringer("point", p), zap.Error(err))
			rejected++
			continue
		}
		inserted++
	}
	return inserted, rejected
}

type snapshot struct {
	Points    [][2]float32                 `yaml:"points"`
	Triangles []triangulation.TriangleView `yaml:"triangles"`
}

func writeSnapshot(w io.Writer, tri *triangulation.Triangulation) error {
	points := tri.Points()
	s := snapshot{
		Points:    make([][2]float32, len(points)),
		Triangles: tri.Triangles(),
	}
	for i, p := range points {
		s.Points[i] = [2]float32(p)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return errors.Wrap(err, "encoding snapshot")
	}
	return errors.Wrap(encoder.Close(), "encoding snapshot")
}
