// Command ledswatch previews an LED color blend.
//
// It reads a YAML strip description, blends the two end colors across the
// strip, reports the estimated current draw and writes the strip as a PNG or
// BMP swatch.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ledcolor"
	"github.com/gogpu/ledcolor/cmd/ledswatch/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "strip description (YAML)")
		output     = flag.String("output", "swatch.png", "output file (.png or .bmp)")
		scale      = flag.Int("scale", 16, "swatch size per pixel")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ledcolor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	s, err := buildStrip(cfg)
	if err != nil {
		log.Fatalf("Failed to build strip: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := encode(f, *output, s.render(*scale)); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("%d pixels in %s: %d.%d mA estimated", cfg.Pixels, cfg.Space, s.total/10, s.total%10)
	if s.ratio != 255 {
		p.Printf(", dimmed by %d/256 to %d.%d mA", int(s.ratio)+1, s.drawn/10, s.drawn%10)
	}
	p.Printf("\n")

	log.Printf("Swatch saved to %s\n", *output)
}
