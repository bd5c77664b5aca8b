package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"localboard/internal/config"
	"localboard/internal/export"
	"localboard/internal/logging"
	"localboard/internal/ui"
)

const usage = `usage:
  localboard                          open the whiteboard
  localboard render <in.json> <out>   render a saved board to .png or .pdf
  localboard config                   write the current settings to the config file`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()}))
	slog.SetDefault(logger)
	logging.SetLogger(logger)

	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warn("Using default settings", "path", cfgPath, "err", err)
		cfg = config.Default()
	}

	args := os.Args
	if len(args) > 1 {
		switch args[1] {
		case "render":
			if len(args) != 4 {
				fmt.Fprintln(os.Stderr, usage)
				os.Exit(2)
			}
			if err := render(cfg, args[2], args[3]); err != nil {
				logger.Error("Render failed", "err", err)
				os.Exit(1)
			}
			return
		case "config":
			if err := config.Save(cfgPath, cfg); err != nil {
				logger.Error("Writing config failed", "path", cfgPath, "err", err)
				os.Exit(1)
			}
			fmt.Println(cfgPath)
			return
		case "-h", "--help", "help":
			fmt.Println(usage)
			return
		default:
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
	}

	logger.Info("Starting whiteboard", "site", siteLabel())
	ui.RunApp(cfg)
}

// render draws a saved document headlessly at the configured canvas size.
func render(cfg config.Config, in, out string) error {
	shapes, err := export.LoadJSONFile(in)
	if err != nil {
		return err
	}
	bg, err := export.ParseColor(cfg.Drawing.Background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	opts := export.Options{Background: bg, Images: export.LoadImageFile}
	w, h := cfg.Canvas.Width, cfg.Canvas.Height

	return export.SaveFile(out, func(f io.Writer) error {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".pdf":
			return export.WritePDF(f, shapes, w, h, opts)
		case ".png":
			return export.WritePNG(f, export.RenderToRaster(shapes, int(w), int(h), opts))
		}
		return fmt.Errorf("unsupported output format %q", filepath.Ext(out))
	})
}

func logLevel() slog.Level {
	if os.Getenv("LOCALBOARD_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func siteLabel() string {
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}
