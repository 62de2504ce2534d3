// Command camoffset computes tool paths for the shapes of a job file and
// prints a summary, optionally rendering a PNG preview.
//
// Usage:
//
//	camoffset -job job.toml [-png preview.png] [-workers n] [-v]
package main

import (
	"flag"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/golang/geo/r2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/cam"
	"github.com/gogpu/cam/internal/preview"
	"github.com/gogpu/cam/toolpath"
)

func main() {
	var (
		jobPath = flag.String("job", "", "job file (.toml, .yaml)")
		pngPath = flag.String("png", "", "write a preview image to this file")
		width   = flag.Int("width", 800, "preview width")
		height  = flag.Int("height", 600, "preview height")
		workers = flag.Int("workers", 0, "concurrent operations (0 = GOMAXPROCS)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	cam.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	job, err := LoadJob(*jobPath)
	if err != nil {
		log.Fatalf("Failed to load job: %v", err)
	}
	ops, err := job.Operations()
	if err != nil {
		log.Fatalf("Invalid job: %v", err)
	}

	results := toolpath.Run(ops, *workers)
	failed := printSummary(os.Stdout, ops, results)

	if *pngPath != "" {
		if err := writePreview(*pngPath, *width, *height, ops, results); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("Preview saved to %s (%dx%d)\n", *pngPath, *width, *height)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// printSummary prints one line per operation and returns the number of
// failed operations.
func printSummary(w io.Writer, ops []toolpath.Operation, results []toolpath.Result) int {
	p := message.NewPrinter(language.English)
	var failed, segments int
	var length float64
	for i, r := range results {
		if r.Err != nil {
			p.Fprintf(w, "%-16s %-8s error: %v\n", r.Name, ops[i].Direction, r.Err)
			failed++
			continue
		}
		var n int
		var l float64
		for _, path := range r.Paths {
			n += len(path)
			l += path.Length()
		}
		tabs := 0
		for _, s := range r.Slices {
			for _, sl := range s {
				if sl.Tab {
					tabs++
				}
			}
		}
		p.Fprintf(w, "%-16s %-8s %4d paths %7d segments %12.3f length %3d tabs\n",
			r.Name, ops[i].Direction, len(r.Paths), n, l, tabs)
		segments += n
		length += l
	}
	p.Fprintf(w, "total: %d operations, %d segments, %.3f length, %d failed\n",
		len(results), segments, length, failed)
	return failed
}

var (
	shapeColor = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	pathColor  = color.RGBA{R: 0x20, G: 0x60, B: 0xd0, A: 0xff}
	tabColor   = color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
)

func writePreview(path string, width, height int, ops []toolpath.Operation, results []toolpath.Result) error {
	bounds := r2.EmptyRect()
	var shapes, paths, tabs []cam.Contour
	for i, op := range ops {
		shapes = append(shapes, op.Shape)
		bounds = bounds.Union(op.Shape.Bounds())
		for j, p := range results[i].Paths {
			bounds = bounds.Union(p.Bounds())
			if results[i].Slices == nil {
				paths = append(paths, p)
				continue
			}
			cuts, t := toolpath.ApplyTabs(p, results[i].Slices[j])
			paths = append(paths, cuts...)
			tabs = append(tabs, t...)
		}
	}
	if bounds.IsEmpty() {
		bounds = r2.RectFromPoints(r2.Point{}, r2.Point{X: 1, Y: 1})
	}

	c := preview.New(bounds, width, height, 24)
	c.Draw(preview.Layer{Contours: shapes, Color: shapeColor, Fill: true})
	c.Draw(preview.Layer{Contours: paths, Color: pathColor, Width: 1.5})
	c.Draw(preview.Layer{Contours: tabs, Color: tabColor, Width: 3})
	for _, op := range ops {
		label := message.NewPrinter(language.English).Sprintf("%s: %s, tool %.2f", op.Name, op.Direction, op.Tool.Diameter)
		if err := c.Label(label, color.Black); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
