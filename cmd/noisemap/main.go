package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/icexin/simplex/field"
	"github.com/pkg/errors"
)

var (
	backend   = flag.String("backend", field.BackendSimplex, "noise backend: simplex, opensimplex or perlin")
	seed      = flag.Float64("seed", 0, "noise seed")
	scale     = flag.Float64("scale", 0.02, "noise units per pixel")
	originX   = flag.Int("x", 0, "left edge of the region")
	originY   = flag.Int("y", 0, "top edge of the region")
	width     = flag.Int("w", 256, "region width")
	height    = flag.Int("h", 256, "region height")
	outPath   = flag.String("o", "noise.png", "output png file")
	dbpath    = flag.String("db", "", "optional db file for sampled chunks")
	cacheSize = flag.Int("cache", 64, "chunks kept in memory")
)

// gray maps a noise value in [-1, 1] to a gray level.
func gray(v float32) color.Gray {
	g := (v + 1) / 2 * 255
	if g < 0 {
		g = 0
	}
	if g > 255 {
		g = 255
	}
	return color.Gray{Y: uint8(g)}
}

func render(f *field.Field, rect image.Rectangle) (*image.Gray, error) {
	img := image.NewGray(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			v, err := f.Sample(x, y)
			if err != nil {
				return nil, err
			}
			img.SetGray(x, y, gray(v))
		}
	}
	return img, nil
}

func writePNG(p string, img image.Image) error {
	file, err := os.Create(p)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return errors.Wrapf(err, "encode %s", p)
	}
	return file.Close()
}

func run() error {
	if *width <= 0 || *height <= 0 {
		return errors.Errorf("bad region size %dx%d", *width, *height)
	}
	src, err := field.NewSource(*backend, *seed)
	if err != nil {
		return err
	}
	name, err := field.SourceName(*backend, *seed)
	if err != nil {
		return err
	}

	var store *field.Store
	if *dbpath != "" {
		store, err = field.OpenStore(*dbpath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	f, err := field.NewField(src, name, *scale, *cacheSize, store)
	if err != nil {
		return err
	}
	rect := image.Rect(*originX, *originY, *originX+*width, *originY+*height)
	log.Printf("rendering %s %v scale %v", name, rect, f.Scale())
	img, err := render(f, rect)
	if err != nil {
		return err
	}
	if err := writePNG(*outPath, img); err != nil {
		return err
	}
	log.Printf("wrote %s (%d chunks cached)", *outPath, f.CachedChunks())
	return nil
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
