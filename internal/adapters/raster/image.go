package raster

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/bft-labs/findclip/internal/domain"
)

// decodeImage reads any registered image format and keeps grayscale models only.
func decodeImage(br *bufio.Reader, opts Options) (domain.Frame, error) {
	img, format, err := image.Decode(br)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return domain.Frame{}, ErrBadMagic
		}
		return domain.Frame{}, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if opts.LumiOnly {
		height = lumaHeight(height)
	}
	pix := make([]uint8, width*height)

	switch m := img.(type) {
	case *image.Gray:
		for y := 0; y < height; y++ {
			off := m.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*width:(y+1)*width], m.Pix[off:off+width])
		}
	case *image.Gray16:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pix[y*width+x] = uint8(m.Gray16At(b.Min.X+x, b.Min.Y+y).Y >> 8)
			}
		}
	default:
		return domain.Frame{}, fmt.Errorf("%w: %s image with %T", ErrUnsupportedColor, format, img)
	}

	return domain.NewFrame("", width, height, pix)
}
