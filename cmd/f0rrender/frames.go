package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/justyntemme/frei0rgo/pkg/framework/process"
	"github.com/justyntemme/frei0rgo/pkg/frei0r"
)

// readFrame decodes a PNG file into a frame in the given color model
func readFrame(path string, model frei0r.ColorModel) (process.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return process.Frame{}, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return process.Frame{}, fmt.Errorf("%s: %w", path, err)
	}
	return imageToFrame(img, model), nil
}

// writeFrame encodes a frame in the given color model as a PNG file
func writeFrame(path string, frame process.Frame, model frei0r.ColorModel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frameToImage(frame, model)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func imageToFrame(img image.Image, model frei0r.ColorModel) process.Frame {
	b := img.Bounds()
	frame := process.Alloc(b.Dx(), b.Dy())
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			frame.Set(x, y, process.Pack(model, c.R, c.G, c.B, c.A))
		}
	}
	return frame
}

func frameToImage(frame process.Frame, model frei0r.ColorModel) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b, a := process.Unpack(model, frame.At(x, y))
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}
