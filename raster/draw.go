// seehuhn.de/go/stroke - polar stroking for 2D paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/stroke"
)

// ErrOutOfBounds is returned by [ImageTarget.PutPixel] for pixels outside
// the image.
var ErrOutOfBounds = errors.New("pixel out of bounds")

// DrawTarget is a pixel surface which meshes can be drawn onto.
type DrawTarget interface {
	PutPixel(x, y int, c color.Color) error
	Dimensions() (w, h int)
}

// ImageTarget is a DrawTarget backed by an RGBA image.
// Pixel coordinates are relative to the top-left corner of the image.
type ImageTarget struct {
	Img *image.RGBA
}

// NewImageTarget allocates a transparent image of the given size.
func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) PutPixel(x, y int, c color.Color) error {
	b := t.Img.Bounds()
	p := image.Pt(b.Min.X+x, b.Min.Y+y)
	if !p.In(b) {
		return fmt.Errorf("(%d, %d): %w", x, y, ErrOutOfBounds)
	}
	t.Img.Set(p.X, p.Y, c)
	return nil
}

func (t *ImageTarget) Dimensions() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

// Draw paints every pixel whose coverage is at least one half in the mesh
// colour. There is no anti-aliasing.
// The first error returned by the target stops drawing.
func (r *Rasteriser) Draw(target DrawTarget, m *stroke.Mesh) error {
	var err error
	col := m.Material.Color
	r.FillMesh(m, func(y, xMin int, coverage []float32) {
		if err != nil {
			return
		}
		for i, c := range coverage {
			if c < 0.5 {
				continue
			}
			if err = target.PutPixel(xMin+i, y, col); err != nil {
				return
			}
		}
	})
	return err
}

// Draw paints the mesh onto the target, using mesh coordinates as pixel
// coordinates. Parts outside the target are clipped.
func Draw(target DrawTarget, m *stroke.Mesh) error {
	w, h := target.Dimensions()
	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	return r.Draw(target, m)
}
