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

// Package batches defines the batch data model consumed by the augmenters: a
// Batch is an ordered sequence of N images stored as one contiguous
// 4-dimensional uint8 array of shape (count, height, width, channels), with
// all images sharing identical dimensions.
//
// Callers holding a list of single images normalize it to the 4-dimensional
// form with Stack. Batch.Image returns views sharing the underlying buffer,
// so per-image processing does not copy.
package batches

import (
	"bytes"
	"fmt"

	"github.com/gomlx/augment"
)

// Batch is an ordered sequence of Count images of identical geometry, stored
// contiguously: Pixels[((i*Height+y)*Width+x)*Channels+c] is element
// (y, x, c) of image i.
//
// Create one with New or Stack, or fill in all fields; AssertValid reports
// malformed values.
type Batch struct {
	Count, Height, Width, Channels int
	Pixels                         []uint8
}

// New creates a zero-filled batch of the given geometry.
func New(count, height, width, channels int) *Batch {
	if count <= 0 || height <= 0 || width <= 0 || channels <= 0 {
		augment.ThrowInputf("batches.New(%d, %d, %d, %d): all dimensions must be > 0", count, height, width, channels)
	}
	b := &Batch{Count: count, Height: height, Width: width, Channels: channels}
	b.Pixels = make([]uint8, b.Size())
	return b
}

// Stack normalizes a list of single images into a Batch, copying the pixels.
// All images must share identical dimensions, otherwise it throws an
// InputError.
func Stack(images ...*Image) *Batch {
	if len(images) == 0 {
		augment.ThrowInputf("batches.Stack: no images given")
	}
	first := images[0]
	first.AssertValid()
	b := New(len(images), first.Height, first.Width, first.Channels)
	for ii, im := range images {
		im.AssertValid()
		if !im.SameGeometry(first) {
			augment.ThrowInputf("batches.Stack: image %d is %s, but image 0 is %s -- all images in a batch must share dimensions",
				ii, im, first)
		}
		copy(b.Pixels[ii*im.Size():], im.Pixels)
	}
	return b
}

// AssertValid throws an InputError if the batch is nil, has non-positive
// dimensions, or its pixel buffer length disagrees with the declared
// geometry. Every augmenter calls this before touching a batch, so
// malformed input fails once, uniformly, before any child executes.
func (b *Batch) AssertValid() {
	if b == nil {
		augment.ThrowInputf("nil *batches.Batch")
	}
	if b.Count <= 0 || b.Height <= 0 || b.Width <= 0 || b.Channels <= 0 {
		augment.ThrowInputf("invalid batch shape %s: all dimensions must be > 0", b)
	}
	if len(b.Pixels) != b.Size() {
		augment.ThrowInputf("batch %s has %d pixel values, expected %d", b, len(b.Pixels), b.Size())
	}
}

// Size returns the number of uint8 elements, Count*Height*Width*Channels.
func (b *Batch) Size() int { return b.Count * b.Height * b.Width * b.Channels }

// ImageSize returns the number of uint8 elements of one image.
func (b *Batch) ImageSize() int { return b.Height * b.Width * b.Channels }

// String returns a short description of the batch shape, e.g.
// "(uint8)[16 64 64 3]".
func (b *Batch) String() string {
	return fmt.Sprintf("(uint8)[%d %d %d %d]", b.Count, b.Height, b.Width, b.Channels)
}

// Image returns image i as a view: the returned Image shares the batch's
// pixel buffer, so writes through it modify the batch.
func (b *Batch) Image(i int) *Image {
	if i < 0 || i >= b.Count {
		augment.ThrowInputf("batch %s has no image %d", b, i)
	}
	size := b.ImageSize()
	return &Image{
		Height:   b.Height,
		Width:    b.Width,
		Channels: b.Channels,
		Pixels:   b.Pixels[i*size : (i+1)*size : (i+1)*size],
	}
}

// SetImage copies the pixels of img into position i. The image must have the
// batch's geometry.
func (b *Batch) SetImage(i int, img *Image) {
	if i < 0 || i >= b.Count {
		augment.ThrowInputf("batch %s has no image %d", b, i)
	}
	img.AssertValid()
	if img.Height != b.Height || img.Width != b.Width || img.Channels != b.Channels {
		augment.ThrowInputf("cannot set image %s into batch %s: dimensions must match", img, b)
	}
	copy(b.Pixels[i*b.ImageSize():], img.Pixels)
}

// Images unstacks the batch into a list of independent image copies.
func (b *Batch) Images() []*Image {
	out := make([]*Image, b.Count)
	for ii := 0; ii < b.Count; ii++ {
		out[ii] = b.Image(ii).Clone()
	}
	return out
}

// Clone returns a deep copy of the batch.
func (b *Batch) Clone() *Batch {
	c := &Batch{Count: b.Count, Height: b.Height, Width: b.Width, Channels: b.Channels}
	c.Pixels = append([]uint8(nil), b.Pixels...)
	return c
}

// Fill sets every element of the batch to value.
func (b *Batch) Fill(value uint8) *Batch {
	for ii := range b.Pixels {
		b.Pixels[ii] = value
	}
	return b
}

// Equal reports whether the two batches have the same shape and pixels.
func (b *Batch) Equal(other *Batch) bool {
	if b.Count != other.Count || b.Height != other.Height ||
		b.Width != other.Width || b.Channels != other.Channels {
		return false
	}
	return bytes.Equal(b.Pixels, other.Pixels)
}
