// Command xbrscale upscales pixel art with the xBR 2x filter.
//
// It reads .png, .jpg/.jpeg, or raw .xbrf frames, applies one or more 2x
// passes (or a conventional reference scaler for comparison), and writes
// .png or .xbrf output.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/jpegn"

	"github.com/gogpu/xbr"
)

func main() {
	var (
		input   = flag.String("input", "", "input image (.png, .jpg, .jpeg, .xbrf)")
		output  = flag.String("output", "", "output image (.png, .xbrf)")
		passes  = flag.Int("passes", 1, "number of 2x passes (1 = 2x, 2 = 4x, ...)")
		workers = flag.Int("workers", 1, "worker goroutines (0 = GOMAXPROCS)")
		method  = flag.String("method", "xbr", "scaler: xbr, nearest, bilinear, catmullrom")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" || *output == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		xbr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, err := loadImage(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	out, err := scale(img, *method, *passes, *workers)
	if err != nil {
		log.Fatalf("Failed to scale: %v", err)
	}

	if err := saveImage(*output, out); err != nil {
		log.Fatalf("Failed to save %s: %v", *output, err)
	}

	log.Printf("%s (%dx%d) -> %s (%dx%d)\n",
		*input, img.Width, img.Height, *output, out.Width, out.Height)
}

func scale(img *xbr.Image, method string, passes, workers int) (*xbr.Image, error) {
	if passes < 1 {
		return nil, fmt.Errorf("passes must be >= 1, got %d", passes)
	}

	if method == "xbr" {
		var opts []xbr.Option
		if workers != 1 {
			opts = append(opts, xbr.WithWorkers(workers))
		}
		for i := 0; i < passes; i++ {
			img = img.Scale2x(opts...)
		}
		return img, nil
	}

	var mode xbr.InterpolationMode
	switch method {
	case "nearest":
		mode = xbr.InterpNearest
	case "bilinear":
		mode = xbr.InterpBilinear
	case "catmullrom":
		mode = xbr.InterpCatmullRom
	default:
		return nil, fmt.Errorf("unknown method %q", method)
	}
	factor := 1 << passes
	return img.Resize(img.Width*factor, img.Height*factor, mode), nil
}

func loadImage(path string) (*xbr.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return xbr.LoadPNG(path)
	case ".jpg", ".jpeg":
		f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		img, err := jpegn.Decode(f, &jpegn.Options{ToRGBA: true})
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return xbr.FromImage(img), nil
	case ".xbrf":
		f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		return xbr.ReadFrame(f)
	default:
		return nil, fmt.Errorf("unsupported input format %q", filepath.Ext(path))
	}
}

func saveImage(path string, img *xbr.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return img.SavePNG(path)
	case ".xbrf":
		f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return err
		}
		if err := xbr.WriteFrame(f, img); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}
