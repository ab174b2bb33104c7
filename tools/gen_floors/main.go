// Package main generates floor documents for manual testing and demos.
// Output is deterministic for a given seed apart from element ids.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/floorplan/internal/core"
	"github.com/elektrokombinacija/floorplan/internal/grid"
	"github.com/elektrokombinacija/floorplan/internal/serial"
)

// FloorParams defines parameters for floor generation.
type FloorParams struct {
	Seed       int64
	Width      float64
	Height     float64
	Resolution float64
	Tables     int
	RoundRatio float64 // Fraction of tables that are round
	Rotated    float64 // Fraction of tables turned by 45 degrees
	Sofas      int
	Stage      bool
	Bar        bool
	Walls      bool
}

// generateFloor lays out decor along the edges and fills the middle with rows of tables.
func generateFloor(p FloorParams) (*serial.FloorDocument, error) {
	rng := rand.New(rand.NewSource(p.Seed))
	factory := core.NewFactory(p.Resolution)
	r := factory.Resolution

	var elements []core.Element
	add := func(opts core.Options) (core.Element, error) {
		el, err := factory.Create(opts)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
		return el, nil
	}

	top := 2 * r
	if p.Walls {
		w, _ := factory.DefaultSize(core.TagWall)
		for x := 0.0; x+w <= p.Width; x += w {
			if _, err := add(core.WallOptions{X: x, Y: 0}); err != nil {
				return nil, err
			}
		}
	}
	if p.Stage {
		w, h := factory.DefaultSize(core.TagStage)
		x := snapDown((p.Width-w)/2, r)
		if _, err := add(core.StageOptions{X: x, Y: top}); err != nil {
			return nil, err
		}
		if _, err := add(core.DJBoothOptions{X: x + w + r, Y: top}); err != nil {
			return nil, err
		}
		top += h + 2*r
	}
	if p.Bar {
		_, h := factory.DefaultSize(core.TagBar)
		bar, err := add(core.BarOptions{X: r, Y: p.Height - h - r})
		if err != nil {
			return nil, err
		}
		bar.(*core.Bar).SetDesign(rng.Intn(core.BarDesigns))
	}
	for i := 0; i < p.Sofas; i++ {
		w, h := factory.DefaultSize(core.TagSofa)
		x := p.Width - w - r
		y := top + float64(i)*(h+r)
		if y+h > p.Height-r {
			break
		}
		tag := core.TagSofa
		if rng.Float64() < 0.3 {
			tag = core.TagSingleSofa
		}
		opts, err := core.NewOptions(tag, x, y, "")
		if err != nil {
			return nil, err
		}
		if _, err := add(opts); err != nil {
			return nil, err
		}
	}

	// Tables go on a lattice of cells large enough for a rotated rect table.
	cw, ch := factory.DefaultSize(core.TagRectTable)
	cell := cw + 2*r
	cols := int((p.Width - 2*r - cell) / cell)
	if cols < 1 {
		cols = 1
	}
	for i := 0; i < p.Tables; i++ {
		col, row := i%cols, i/cols
		x := 2*r + float64(col)*cell
		y := top + float64(row)*(ch+2*r)
		if y+ch > p.Height-4*r {
			fmt.Fprintf(os.Stderr, "warning: floor full after %d tables\n", i)
			break
		}

		label := fmt.Sprintf("T%d", i+1)
		var opts core.Options = core.RectTableOptions{X: x, Y: y, Label: label}
		if rng.Float64() < p.RoundRatio {
			opts = core.RoundTableOptions{X: x + r, Y: y, Label: label}
		}
		el, err := add(opts)
		if err != nil {
			return nil, err
		}
		if !core.IsRound(el) && rng.Float64() < p.Rotated {
			g := el.Geometry()
			g.Angle = 45
			el.SetGeometry(g)
		}
	}

	name := fmt.Sprintf("floor_%d_%.0fx%.0f_%d", p.Tables, p.Width, p.Height, p.Seed)
	id := fmt.Sprintf("gen-%d-%d", p.Seed, p.Tables)
	return serial.Export(elements, p.Width, p.Height).Document(id, name), nil
}

func snapDown(v, res float64) float64 {
	return float64(int(v/res)) * res
}

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	width := flag.Float64("width", 1500, "Floor width")
	height := flag.Float64("height", 1000, "Floor height")
	resolution := flag.Float64("resolution", grid.DefaultResolution, "Grid resolution")
	tables := flag.Int("tables", 20, "Number of tables")
	roundRatio := flag.Float64("round", 0.3, "Fraction of tables that are round")
	rotated := flag.Float64("rotated", 0.1, "Fraction of rect tables turned by 45 degrees")
	sofas := flag.Int("sofas", 3, "Number of sofas along the right edge")
	stage := flag.Bool("stage", true, "Add a stage and DJ booth")
	bar := flag.Bool("bar", true, "Add a bar")
	walls := flag.Bool("walls", true, "Add a wall along the top edge")
	outputDir := flag.String("output", "testdata", "Output directory")
	scalingMode := flag.Bool("scaling", false, "Generate scaling floors (10, 50, 100, 250 tables)")

	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	base := FloorParams{
		Seed:       *seed,
		Width:      *width,
		Height:     *height,
		Resolution: *resolution,
		Tables:     *tables,
		RoundRatio: *roundRatio,
		Rotated:    *rotated,
		Sofas:      *sofas,
		Stage:      *stage,
		Bar:        *bar,
		Walls:      *walls,
	}

	runs := []FloorParams{base}
	if *scalingMode {
		runs = runs[:0]
		for _, n := range []int{10, 50, 100, 250} {
			p := base
			p.Tables = n
			// Grow the floor so every table fits.
			for p.Height < float64(n)*40+600 {
				p.Height += 500
			}
			runs = append(runs, p)
		}
	}

	for _, p := range runs {
		doc, err := generateFloor(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating floor: %v\n", err)
			os.Exit(1)
		}
		path := filepath.Join(*outputDir, doc.Name+".json")
		if err := serial.WriteFile(path, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s (%d elements)\n", path, len(doc.Scene.Objects))
	}
}
