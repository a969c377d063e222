package icon

import (
	"image/color"
	"math"

	"brewbell/internal/core/shape"
)

// Geometry is expressed in unit coordinates: (0,0) is the top-left corner of
// the icon and (1,1) the bottom-right.
const (
	wallWidth    = 0.045
	outlineWidth = 0.02
)

type region interface {
	contains(u, v, grow float64) bool
}

// vessel is the liquid-holding body. The interior spans top..bottom and is
// open at the top.
type vessel struct {
	centerX   float64
	top       float64
	bottom    float64
	halfWidth func(t float64) float64
}

func (body vessel) depth(v float64) float64 {
	t := (v - body.top) / (body.bottom - body.top)
	return math.Max(0, math.Min(1, t))
}

func (body vessel) interior(u, v float64) bool {
	if v < body.top || v > body.bottom {
		return false
	}
	return math.Abs(u-body.centerX) <= body.halfWidth(body.depth(v))
}

func (body vessel) contains(u, v, grow float64) bool {
	if v < body.top-grow || v > body.bottom+wallWidth+grow {
		return false
	}
	return math.Abs(u-body.centerX) <= body.halfWidth(body.depth(v))+wallWidth+grow
}

// fillLine is the v coordinate of the liquid surface.
func (body vessel) fillLine(progress float64) float64 {
	return body.bottom - clampProgress(progress)*(body.bottom-body.top)
}

type ring struct {
	centerX, centerY float64
	outer, inner     float64
	minX             float64
}

func (handle ring) contains(u, v, grow float64) bool {
	if u < handle.minX {
		return false
	}
	distance := math.Hypot(u-handle.centerX, v-handle.centerY)
	return distance >= handle.inner-grow && distance <= handle.outer+grow
}

type ellipse struct {
	centerX, centerY float64
	radiusX, radiusY float64
}

func (oval ellipse) contains(u, v, grow float64) bool {
	dx := (u - oval.centerX) / (oval.radiusX + grow)
	dy := (v - oval.centerY) / (oval.radiusY + grow)
	return dx*dx+dy*dy <= 1
}

type box struct {
	left, top, right, bottom float64
}

func (rect box) contains(u, v, grow float64) bool {
	return u >= rect.left-grow && u <= rect.right+grow && v >= rect.top-grow && v <= rect.bottom+grow
}

type silhouette struct {
	body   vessel
	extras []region
	liquid color.NRGBA
}

func silhouetteFor(value shape.Shape) silhouette {
	switch shape.Normalize(value) {
	case shape.Tea:
		body := vessel{
			centerX: 0.5,
			top:     0.36,
			bottom:  0.72,
			halfWidth: func(t float64) float64 {
				return 0.34 - 0.16*t*t
			},
		}
		return silhouette{
			body: body,
			extras: []region{
				ring{centerX: 0.84, centerY: 0.48, outer: 0.09, inner: 0.045, minX: 0.84},
				ellipse{centerX: 0.5, centerY: 0.8, radiusX: 0.44, radiusY: 0.045},
			},
			liquid: color.NRGBA{R: 181, G: 110, B: 36, A: 255},
		}
	case shape.Mug:
		body := vessel{
			centerX: 0.42,
			top:     0.2,
			bottom:  0.84,
			halfWidth: func(float64) float64 {
				return 0.26
			},
		}
		return silhouette{
			body: body,
			extras: []region{
				ring{centerX: 0.72, centerY: 0.5, outer: 0.17, inner: 0.1, minX: 0.72},
			},
			liquid: color.NRGBA{R: 92, G: 56, B: 31, A: 255},
		}
	case shape.Noodle:
		body := vessel{
			centerX: 0.5,
			top:     0.38,
			bottom:  0.78,
			halfWidth: func(t float64) float64 {
				return math.Max(0.1, 0.42*math.Sqrt(1-t*t))
			},
		}
		return silhouette{
			body: body,
			extras: []region{
				box{left: 0.36, top: 0.8, right: 0.64, bottom: 0.86},
			},
			liquid: color.NRGBA{R: 226, G: 176, B: 84, A: 255},
		}
	default:
		body := vessel{
			centerX: 0.45,
			top:     0.26,
			bottom:  0.82,
			halfWidth: func(t float64) float64 {
				return 0.28 - 0.07*t
			},
		}
		return silhouette{
			body: body,
			extras: []region{
				ring{centerX: 0.74, centerY: 0.5, outer: 0.14, inner: 0.08, minX: 0.74},
			},
			liquid: color.NRGBA{R: 128, G: 76, B: 42, A: 255},
		}
	}
}

// FillLine returns the pixel row of the liquid surface for an icon of the
// given size. Rows at or below it are liquid.
func FillLine(value shape.Shape, progress float64, size int) int {
	line := silhouetteFor(value).body.fillLine(progress)
	return int(math.Round(line * float64(size)))
}

// FillLevel returns the liquid height as a fraction of the vessel depth. It
// is linear in progress: 0 is empty, 1 is full.
func FillLevel(value shape.Shape, progress float64) float64 {
	body := silhouetteFor(value).body
	return (body.bottom - body.fillLine(progress)) / (body.bottom - body.top)
}
