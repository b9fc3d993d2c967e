package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"

	"github.com/scott-cotton/cli"

	"github.com/katalvlaran/wfc/raster"
)

// loadSample decodes the sample image at path ("-" reads cc.In) into the
// packed representation the model consumes.
func loadSample(cc *cli.Context, path string) (*raster.Image, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	src, kind, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	im, err := raster.FromImage(src)
	if err != nil {
		return nil, fmt.Errorf("%s sample %q: %w", kind, path, err)
	}
	return im, nil
}

// writePNG encodes im to path ("-" writes cc.Out).
func writePNG(cc *cli.Context, path string, im *raster.Image) error {
	var w io.Writer
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	} else {
		w = cc.Out
	}
	if err := png.Encode(w, im.ToRGBA()); err != nil {
		return fmt.Errorf("error encoding %q: %w", path, err)
	}
	return nil
}
