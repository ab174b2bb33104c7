// Command floorplan inspects, renders and normalizes floor documents.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/elektrokombinacija/floorplan/internal/config"
	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/grid"
	"github.com/elektrokombinacija/floorplan/internal/logger"
	"github.com/elektrokombinacija/floorplan/internal/render"
	"github.com/elektrokombinacija/floorplan/internal/serial"
)

const usage = `usage: floorplan <command> [flags] <document.json>

commands:
  info       print dimensions and element counts
  labels     list table labels in stacking order
  svg        render the floor to SVG
  normalize  snap every element to the grid and write the document back
`

var errUsage = errors.New("invalid arguments")

func main() {
	log := logger.Must(os.Getenv("LOG_LEVEL"), "console", "floorplan")
	defer log.Sync()

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, log *zap.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	output := fs.String("o", "", "Output file (default: stdout for svg, in place for normalize)")
	withGrid := fs.Bool("grid", false, "Draw the grid overlay (svg)")
	configPath := fs.String("config", "", "YAML config file supplying the grid resolution")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	path := fs.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	doc, err := serial.ReadFile(path)
	if err != nil {
		return err
	}
	elements, err := serial.DefaultRegistry().Import(doc.Scene)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	warnDuplicateLabels(log, elements)

	switch cmd {
	case "info":
		return printInfo(stdout, doc, elements)
	case "labels":
		for _, t := range core.Tables(elements) {
			fmt.Fprintln(stdout, t.Label())
		}
		return nil
	case "svg":
		return writeSVG(stdout, *output, doc, elements, *withGrid, cfg.Grid.Resolution)
	case "normalize":
		out := *output
		if out == "" {
			out = path
		}
		snapper := cfg.Snapper()
		for _, el := range elements {
			snapElement(snapper, el)
		}
		normalized := serial.Export(elements, doc.Width, doc.Height).Document(doc.ID, doc.Name)
		if err := serial.WriteFile(out, normalized); err != nil {
			return err
		}
		log.Info("document normalized", zap.String("path", out), zap.Int("elements", len(elements)))
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func printInfo(w io.Writer, doc *serial.FloorDocument, elements []core.Element) error {
	counts := make(map[core.Tag]int)
	for _, el := range elements {
		counts[el.Tag()]++
	}
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, string(tag))
	}
	sort.Strings(tags)

	tables := core.Tables(elements)
	free := 0
	for _, t := range tables {
		if t.Reservation() == nil {
			free++
		}
	}

	fmt.Fprintf(w, "Floor:    %s (%s)\n", doc.Name, doc.ID)
	fmt.Fprintf(w, "Size:     %.0fx%.0f\n", doc.Width, doc.Height)
	fmt.Fprintf(w, "Elements: %d\n", len(elements))
	for _, tag := range tags {
		fmt.Fprintf(w, "  %-12s %d\n", tag, counts[core.Tag(tag)])
	}
	fmt.Fprintf(w, "Tables:   %d (free %d)\n", len(tables), free)
	return nil
}

func writeSVG(stdout io.Writer, out string, doc *serial.FloorDocument, elements []core.Element, withGrid bool, resolution float64) error {
	opts := render.SVGOptions{Title: doc.Name}
	if withGrid {
		overlay := grid.NewOverlay(doc.Width, doc.Height, resolution, nil)
		overlay.Draw()
		opts.Grid = overlay.Lines()
	}

	w := stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create svg: %w", err)
		}
		defer f.Close()
		w = f
	}
	return render.SVG(w, elements, doc.Width, doc.Height, opts)
}

// snapElement moves an element onto the grid and its angle onto the nearest step.
// Sizes are kept: decor such as walls is intentionally thinner than one cell.
func snapElement(s *grid.Snapper, el core.Element) {
	g := el.Geometry()
	g.Left, g.Top = s.Position(g.Left, g.Top)
	g.Angle = s.Angle(g.Angle)
	el.SetGeometry(g)
}

func warnDuplicateLabels(log *zap.Logger, elements []core.Element) {
	seen := make(map[string]bool)
	var dups []string
	for _, t := range core.Tables(elements) {
		if seen[t.Label()] {
			dups = append(dups, t.Label())
		}
		seen[t.Label()] = true
	}
	if len(dups) > 0 {
		log.Warn("duplicate table labels", zap.String("labels", strings.Join(dups, ",")))
	}
}
