// Command bjpegtool encodes a PNG, BMP or JPEG image as a baseline JFIF
// JPEG.
package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"

	"github.com/hasnain17/bjpeg"
)

func main() {
	app := &cli.App{
		Name:      "bjpegtool",
		Usage:     "encode an image as a baseline JFIF JPEG",
		ArgsUsage: "<input> <output.jpg>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "quality",
				Usage: "JPEG quality, 1-100",
				Value: 90,
			},
			&cli.BoolFlag{
				Name:  "420",
				Usage: "use 4:2:0 chroma subsampling",
				Value: true,
			},
			&cli.StringFlag{
				Name:  "comment",
				Usage: "COM segment text",
			},
			&cli.BoolFlag{
				Name:  "gray",
				Usage: "force grayscale output",
			},
		},
		Action: runCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("expected <input> <output.jpg>", 1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	downsample := bjpeg.Downsample444
	if c.Bool("420") {
		downsample = bjpeg.Downsample420
	}
	return run(logger, c.Args().Get(0), c.Args().Get(1), &bjpeg.Options{
		Quality:    c.Int("quality"),
		Downsample: downsample,
		Comment:    c.String("comment"),
	}, c.Bool("gray"))
}

func run(logger *zap.Logger, in, out string, opts *bjpeg.Options, forceGray bool) error {
	img, err := loadImage(in)
	if err != nil {
		return fmt.Errorf("cant decode input %s: %w", in, err)
	}

	pixels, width, height, rgb := toPixelBuffer(img, forceGray)
	logger.Info("decoded input",
		zap.String("path", in),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("rgb", rgb),
	)

	tmp, err := os.CreateTemp(filepath.Dir(out), filepath.Base(out)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cant create temp file for %s: %w", out, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	w := bufio.NewWriter(tmp)
	encErr := bjpeg.Encode(bjpeg.NewWriterSink(w), pixels, width, height, rgb, opts)
	if encErr == nil {
		encErr = w.Flush()
	}
	closeErr := tmp.Close()
	if encErr != nil {
		return fmt.Errorf("cant encode output %s: %w", out, encErr)
	}
	if closeErr != nil {
		return fmt.Errorf("cant close temp file for %s: %w", out, closeErr)
	}
	if err := os.Rename(tmpPath, out); err != nil {
		return fmt.Errorf("cant rename temp file to %s: %w", out, err)
	}

	logger.Info("wrote output", zap.String("path", out))
	return nil
}

// loadImage decodes a PNG, JPEG (registered via the blank imports above) or
// BMP file.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if filepath.Ext(path) == ".bmp" {
		return bmp.Decode(f)
	}
	img, _, err := image.Decode(f)
	return img, err
}

// toPixelBuffer converts a decoded image into the row-major pixel layout
// Encode expects: one byte per pixel for grayscale, or three interleaved
// R,G,B bytes per pixel. forceGray converts color images down to
// grayscale; otherwise an image.Gray or image.Gray16 source stays
// grayscale and anything else is treated as RGB.
func toPixelBuffer(img image.Image, forceGray bool) (pixels []byte, width, height int, rgb bool) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()

	_, isGray := img.(*image.Gray)
	_, isGray16 := img.(*image.Gray16)
	rgb = !forceGray && !isGray && !isGray16

	if rgb {
		pixels = make([]byte, width*height*3)
	} else {
		pixels = make([]byte, width*height)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rgb {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				off := (y*width + x) * 3
				pixels[off] = byte(r >> 8)
				pixels[off+1] = byte(g >> 8)
				pixels[off+2] = byte(b >> 8)
			} else {
				gray := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
				pixels[y*width+x] = gray.Y
			}
		}
	}
	return pixels, width, height, rgb
}
