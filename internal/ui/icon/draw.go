package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const supersample = 4

var (
	wallColor    = color.NRGBA{R: 246, G: 244, B: 240, A: 255}
	outlineColor = color.NRGBA{R: 54, G: 50, B: 48, A: 255}
	emptyColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 96}
	labelBack    = color.NRGBA{R: 0, G: 0, B: 0, A: 170}
	labelFore    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Draw renders a snapshot into a size×size image. It has no side effects.
func Draw(snapshot Snapshot, size int) image.Image {
	if size <= 0 {
		size = DefaultSize
	}
	cup := silhouetteFor(snapshot.Shape)
	fill := cup.body.fillLine(snapshot.Progress)

	work := size * supersample
	canvas := image.NewNRGBA(image.Rect(0, 0, work, work))
	scale := float64(work)
	for y := 0; y < work; y++ {
		v := (float64(y) + 0.5) / scale
		for x := 0; x < work; x++ {
			u := (float64(x) + 0.5) / scale
			canvas.SetNRGBA(x, y, cup.colorAt(u, v, fill))
		}
	}

	icon := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(icon, icon.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)

	if snapshot.RemainingLabel != "" {
		drawLabel(icon, snapshot.RemainingLabel)
	}
	return icon
}

func (cup silhouette) colorAt(u, v, fill float64) color.NRGBA {
	if cup.body.interior(u, v) {
		if v >= fill {
			return cup.liquid
		}
		return emptyColor
	}
	if cup.body.contains(u, v, 0) {
		return wallColor
	}
	for _, extra := range cup.extras {
		if extra.contains(u, v, 0) {
			return wallColor
		}
	}
	if cup.body.contains(u, v, outlineWidth) {
		return outlineColor
	}
	for _, extra := range cup.extras {
		if extra.contains(u, v, outlineWidth) {
			return outlineColor
		}
	}
	return color.NRGBA{}
}

func drawLabel(dst *image.NRGBA, text string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Height
	size := dst.Bounds().Dx()

	left := (size - width) / 2
	top := size - height - 2
	background := image.Rect(left-3, top-1, left+width+3, top+height+1).Intersect(dst.Bounds())
	xdraw.Draw(dst, background, image.NewUniform(labelBack), image.Point{}, xdraw.Over)

	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelFore),
		Face: face,
		Dot:  fixed.P(left, top+face.Ascent),
	}
	drawer.DrawString(text)
}

// EncodePNG returns the PNG encoding of an icon.
func EncodePNG(img image.Image) ([]byte, error) {
	var buffer bytes.Buffer
	if err := png.Encode(&buffer, img); err != nil {
		return nil, fmt.Errorf("encode icon png: %w", err)
	}
	return buffer.Bytes(), nil
}
