package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/vc"
)

// maxTexture bounds each side of a loaded texture. Larger images are
// scaled down to fit.
const maxTexture = 4096

// loadTexture decodes a PNG, BMP or WebP file into shared premultiplied
// pixel data.
func loadTexture(path string) (*vc.SharedPixmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	vc.Logger().Debug("vcdemo: texture decoded",
		"path", path, "format", format, "bounds", src.Bounds().String())
	return textureFromImage(src)
}

// textureFromImage converts any image to shared pixel data.
// image.RGBA is already premultiplied, so its Pix can be used directly.
func textureFromImage(src image.Image) (*vc.SharedPixmap, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxTexture || h > maxTexture {
		scale := float64(maxTexture) / float64(max(w, h))
		w, h = max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}
	return vc.PixmapFromData(dst.Pix, uint32(w), uint32(h))
}

// writeImage encodes pm to path. The format follows the file extension:
// .bmp writes BMP, anything else PNG.
func writeImage(path string, pm *vc.Pixmap) error {
	img := &image.RGBA{
		Pix:    pm.Bytes(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
