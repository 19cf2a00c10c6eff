package batches

import (
	"image"
	"image/color"

	"github.com/gomlx/augment"
)

// FromImage converts an image.Image into an Image with the given number of
// channels: 1 (grayscale), 3 (RGB, alpha dropped) or 4 (RGBA).
func FromImage(src image.Image, channels int) *Image {
	if channels != 1 && channels != 3 && channels != 4 {
		augment.ThrowInputf("batches.FromImage: channels must be 1, 3 or 4, got %d", channels)
	}
	bounds := src.Bounds()
	im := NewImage(bounds.Dy(), bounds.Dx(), channels)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			switch channels {
			case 1:
				g := color.GrayModel.Convert(c).(color.Gray)
				im.Set(y, x, 0, g.Y)
			case 3:
				im.Set(y, x, 0, c.R)
				im.Set(y, x, 1, c.G)
				im.Set(y, x, 2, c.B)
			case 4:
				im.Set(y, x, 0, c.R)
				im.Set(y, x, 1, c.G)
				im.Set(y, x, 2, c.B)
				im.Set(y, x, 3, c.A)
			}
		}
	}
	return im
}

// ToGray converts a single channel plane of the Image to an *image.Gray.
func (im *Image) ToGray(c int) *image.Gray {
	if c < 0 || c >= im.Channels {
		augment.ThrowInputf("Image.ToGray: channel %d out of range, image has %d channels", c, im.Channels)
	}
	out := image.NewGray(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			out.SetGray(x, y, color.Gray{Y: im.At(y, x, c)})
		}
	}
	return out
}

// ToImage converts the Image back to an image.Image: *image.Gray for 1
// channel, *image.NRGBA otherwise (alpha is 255 for 3-channel images; extra
// channels beyond 4 are dropped).
func (im *Image) ToImage() image.Image {
	if im.Channels == 1 {
		out := image.NewGray(image.Rect(0, 0, im.Width, im.Height))
		for y := 0; y < im.Height; y++ {
			for x := 0; x < im.Width; x++ {
				out.SetGray(x, y, color.Gray{Y: im.At(y, x, 0)})
			}
		}
		return out
	}
	out := image.NewNRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			c := color.NRGBA{A: 255}
			c.R = im.At(y, x, 0)
			if im.Channels >= 2 {
				c.G = im.At(y, x, 1)
			}
			if im.Channels >= 3 {
				c.B = im.At(y, x, 2)
			}
			if im.Channels >= 4 {
				c.A = im.At(y, x, 3)
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
