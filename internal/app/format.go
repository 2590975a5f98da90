package app

import (
	"fmt"

	"github.com/bft-labs/findclip/internal/domain"
)

// Format selects how the final rect is printed.
type Format string

const (
	// FormatTuple prints top,left,bottom,right.
	FormatTuple Format = "tuple"
	// FormatCrop prints width:height:left:top of the remaining picture.
	FormatCrop Format = "crop"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTuple, FormatCrop:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want tuple or crop)", domain.ErrInvalidConfig, s)
	}
}

// Render formats r for a width x height frame.
func (f Format) Render(r domain.ClipRect, width, height int) string {
	if f == FormatCrop {
		return fmt.Sprintf("%d:%d:%d:%d", r.ContentWidth(width), r.ContentHeight(height), r.Left, r.Top)
	}
	return fmt.Sprintf("%d,%d,%d,%d", r.Top, r.Left, r.Bottom, r.Right)
}
