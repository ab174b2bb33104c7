// Command floorvis opens a floor plan in the editor or the live viewer.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/floorplan/internal/config"
	"github.com/elektrokombinacija/floorplan/internal/logger"
	"github.com/elektrokombinacija/floorplan/internal/vis"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	profile := flag.String("profile", config.ProfileDesktop, "Config profile when no file is given (desktop, touch)")
	docPath := flag.String("doc", "floor.json", "Floor document to open; created on save when missing")
	live := flag.Bool("live", false, "Open in live mode (locked elements, reservations)")
	flag.Parse()

	cfg := config.ForProfile(*profile)
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	l, err := logger.New(cfg.Log.Level, cfg.Log.Format, "floorvis")
	if err != nil {
		log.Fatal(err)
	}
	defer l.Sync()

	application, err := vis.NewApp(vis.Options{
		DocPath: *docPath,
		Live:    *live,
		Config:  cfg,
		Logger:  l,
	})
	if err != nil {
		l.Fatal("failed to open floor", zap.String("path", *docPath), zap.Error(err))
	}

	title := "Floor Plan Editor"
	if *live {
		title = "Floor Plan Live View"
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title(title+" - "+application.Floor().Name()),
			app.Size(unit.Dp(float32(cfg.Window.Width)), unit.Dp(float32(cfg.Window.Height))),
		)

		if err := application.Run(window); err != nil {
			l.Error("window closed with error", zap.Error(err))
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}
