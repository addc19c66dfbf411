package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is tightly packed RGBA8 texel data, row 0 first.
type Image struct {
	Name   string
	Width  int
	Height int
	Pix    []uint8
}

type Options struct {
	// FlipY puts the bottom row first, matching GL's texture origin.
	FlipY bool
	// MaxSize bounds the longer edge; larger images are down-scaled. Zero disables.
	MaxSize int
}

func Load(path string, opts Options) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading texture: %w", err)
	}
	defer f.Close()

	img, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("loading texture %s: %w", path, err)
	}
	img.Name = path
	return img, nil
}

func Decode(r io.Reader, opts Options) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(src, opts), nil
}

// FromImage converts any image to RGBA8, applying opts.
func FromImage(src image.Image, opts Options) *Image {
	b := src.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), opts.MaxSize)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}

	if opts.FlipY {
		flipRows(dst.Pix, dst.Stride, h)
	}

	return &Image{
		Width:  w,
		Height: h,
		Pix:    dst.Pix,
	}
}

func fitSize(w, h, limit int) (int, int) {
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

func flipRows(pix []uint8, stride, rows int) {
	tmp := make([]uint8, stride)
	for top, bottom := 0, rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// Checkerboard builds a size x size pattern of cell-wide squares. Scenes use
// it when a texture file cannot be loaded.
func Checkerboard(size, cell int, a, b color.RGBA) *Image {
	if cell <= 0 {
		cell = 1
	}
	img := &Image{
		Name:   "checkerboard",
		Width:  size,
		Height: size,
		Pix:    make([]uint8, size*size*4),
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			i := (y*size + x) * 4
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// At returns the texel at (x, y) in stored row order.
func (img *Image) At(x, y int) color.RGBA {
	i := (y*img.Width + x) * 4
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}
