package vc

import "github.com/gogpu/vc/internal/cpu"

// ImageQuality selects the filter used when sampling an image.
type ImageQuality uint8

const (
	// QualityLow samples the nearest pixel.
	QualityLow ImageQuality = iota
	// QualityMedium interpolates bilinearly.
	QualityMedium
	// QualityHigh interpolates bicubically.
	QualityHigh
)

// String returns the quality's name.
func (q ImageQuality) String() string {
	switch q {
	case QualityLow:
		return "Low"
	case QualityMedium:
		return "Medium"
	case QualityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

func (q ImageQuality) toCPU() cpu.Quality {
	switch q {
	case QualityMedium:
		return cpu.QualityMedium
	case QualityHigh:
		return cpu.QualityHigh
	default:
		return cpu.QualityLow
	}
}

// Image paints with shared pixel data. The image's top-left corner is at
// the paint-space origin, one pixel per unit.
//
// An Image holds its own reference to the data, independent of the
// SharedPixmap it was created from.
//
// Image implements Paint.
type Image struct {
	cell     *pixmapCell
	xExtend  Extend
	yExtend  Extend
	quality  ImageQuality
	released bool
}

// NewImage creates an image paint over src.
func NewImage(src *SharedPixmap, xExtend, yExtend Extend, quality ImageQuality) *Image {
	c := src.live()
	c.retain()
	return &Image{cell: c, xExtend: xExtend, yExtend: yExtend, quality: quality}
}

func (img *Image) live() *pixmapCell {
	checkNil(img, "image")
	if img.released {
		violation(ErrReleased, "image")
	}
	return img.cell
}

// Extend returns the horizontal and vertical extend modes.
func (img *Image) Extend() (x, y Extend) {
	img.live()
	return img.xExtend, img.yExtend
}

// Quality returns the sampling quality.
func (img *Image) Quality() ImageQuality {
	img.live()
	return img.quality
}

// Destroy drops the image's reference to its pixel data. Contexts that
// still paint with the image keep their own reference.
func (img *Image) Destroy() {
	c := img.live()
	img.released = true
	c.release()
}

func (img *Image) cpuPaint() cpu.Paint {
	return cpu.Image{
		Source:  img.live().pixmap(),
		XExtend: img.xExtend.toCPU(),
		YExtend: img.yExtend.toCPU(),
		Quality: img.quality.toCPU(),
	}
}
