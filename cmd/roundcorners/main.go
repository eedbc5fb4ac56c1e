// Command roundcorners clips the corners of a PNG image to circular arcs.
//
// Usage:
//
//	roundcorners -in icon.png -out rounded.png -radius 20
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/rounded"
)

func main() {
	var (
		input   = flag.String("in", "", "input PNG file (required)")
		output  = flag.String("out", "rounded.png", "output PNG file")
		radius  = flag.Int("radius", 20, "corner radius in pixels")
		width   = flag.Int("width", 0, "output width (0 = image width)")
		height  = flag.Int("height", 0, "output height (0 = image height)")
		level   = flag.String("level", "default", "compression: default, none, speed, best")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	lvl, err := parseLevel(*level)
	if err != nil {
		log.Fatal(err)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	w, h, err := resolveSize(data, *width, *height)
	if err != nil {
		log.Fatalf("Failed to read image header: %v", err)
	}

	out, err := rounded.Round(data, w, h, *radius,
		rounded.WithLogger(logger),
		rounded.WithCompression(lvl))
	if err != nil {
		log.Fatalf("Failed to round corners: %v", err)
	}

	if err := os.WriteFile(*output, out, 0o600); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Rounded image saved to %s (%dx%d, radius %d)\n", *output, w, h, *radius)
}

// resolveSize fills zero dimensions from the PNG header.
func resolveSize(data []byte, width, height int) (int, int, error) {
	if width > 0 && height > 0 {
		return width, height, nil
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	if width <= 0 {
		width = cfg.Width
	}
	if height <= 0 {
		height = cfg.Height
	}
	return width, height, nil
}

func parseLevel(s string) (png.CompressionLevel, error) {
	switch s {
	case "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("unknown compression level %q", s)
	}
}
