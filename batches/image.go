/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package batches

import (
	"bytes"
	"fmt"

	"github.com/gomlx/augment"
)

// Image is a single image, shaped (Height, Width, Channels), uint8 elements
// in [0, 255]. Pixels is row-major, channels innermost, so the element
// (y, x, c) lives at Pixels[(y*Width+x)*Channels+c].
//
// The zero value is not usable; create images with NewImage, Batch.Image or
// FromImage, or fill in all fields.
type Image struct {
	Height, Width, Channels int
	Pixels                  []uint8
}

// NewImage creates a zero-filled image of the given geometry.
func NewImage(height, width, channels int) *Image {
	if height <= 0 || width <= 0 || channels <= 0 {
		augment.ThrowInputf("batches.NewImage(%d, %d, %d): all dimensions must be > 0", height, width, channels)
	}
	return &Image{
		Height: height, Width: width, Channels: channels,
		Pixels: make([]uint8, height*width*channels),
	}
}

// AssertValid throws an InputError if the image geometry is malformed or the
// pixel buffer length disagrees with it.
func (im *Image) AssertValid() {
	if im == nil {
		augment.ThrowInputf("nil *batches.Image")
	}
	if im.Height <= 0 || im.Width <= 0 || im.Channels <= 0 {
		augment.ThrowInputf("invalid image geometry %s: all dimensions must be > 0", im)
	}
	if len(im.Pixels) != im.Size() {
		augment.ThrowInputf("image %s has %d pixel values, expected %d", im, len(im.Pixels), im.Size())
	}
}

// Size returns the number of uint8 elements, Height*Width*Channels.
func (im *Image) Size() int { return im.Height * im.Width * im.Channels }

// String returns a short description of the image geometry, e.g.
// "(uint8)[64 64 3]".
func (im *Image) String() string {
	return fmt.Sprintf("(uint8)[%d %d %d]", im.Height, im.Width, im.Channels)
}

// At returns the element at (y, x, c). No bounds checking beyond the slice's.
func (im *Image) At(y, x, c int) uint8 {
	return im.Pixels[(y*im.Width+x)*im.Channels+c]
}

// Set assigns the element at (y, x, c).
func (im *Image) Set(y, x, c int, value uint8) {
	im.Pixels[(y*im.Width+x)*im.Channels+c] = value
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	c := &Image{Height: im.Height, Width: im.Width, Channels: im.Channels}
	c.Pixels = append([]uint8(nil), im.Pixels...)
	return c
}

// Equal reports whether the two images have the same geometry and pixels.
func (im *Image) Equal(other *Image) bool {
	if im.Height != other.Height || im.Width != other.Width || im.Channels != other.Channels {
		return false
	}
	return bytes.Equal(im.Pixels, other.Pixels)
}

// SameGeometry reports whether the two images have the same dimensions.
func (im *Image) SameGeometry(other *Image) bool {
	return im.Height == other.Height && im.Width == other.Width && im.Channels == other.Channels
}

// FlipHorizontal returns a copy of the image mirrored along the vertical
// axis (left-right). It is a pure index reversal of the width axis.
func (im *Image) FlipHorizontal() *Image {
	out := NewImage(im.Height, im.Width, im.Channels)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			for c := 0; c < im.Channels; c++ {
				out.Set(y, im.Width-1-x, c, im.At(y, x, c))
			}
		}
	}
	return out
}

// FlipVertical returns a copy of the image mirrored along the horizontal
// axis (top-bottom). It is a pure index reversal of the height axis.
func (im *Image) FlipVertical() *Image {
	out := NewImage(im.Height, im.Width, im.Channels)
	rowSize := im.Width * im.Channels
	for y := 0; y < im.Height; y++ {
		copy(out.Pixels[(im.Height-1-y)*rowSize:(im.Height-y)*rowSize], im.Pixels[y*rowSize:(y+1)*rowSize])
	}
	return out
}

// Plane extracts channel c as a contiguous (Height, Width) plane.
func (im *Image) Plane(c int) []uint8 {
	if c < 0 || c >= im.Channels {
		augment.ThrowInputf("image %s has no channel %d", im, c)
	}
	plane := make([]uint8, im.Height*im.Width)
	for ii := range plane {
		plane[ii] = im.Pixels[ii*im.Channels+c]
	}
	return plane
}

// SetPlane writes a (Height, Width) plane back into channel c.
func (im *Image) SetPlane(c int, plane []uint8) {
	if c < 0 || c >= im.Channels {
		augment.ThrowInputf("image %s has no channel %d", im, c)
	}
	if len(plane) != im.Height*im.Width {
		augment.ThrowInputf("plane has %d values, image %s expects %d", len(plane), im, im.Height*im.Width)
	}
	for ii := range plane {
		im.Pixels[ii*im.Channels+c] = plane[ii]
	}
}
