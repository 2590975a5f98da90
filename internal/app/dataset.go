package app

import (
	"github.com/bft-labs/findclip/internal/detect"
	"github.com/bft-labs/findclip/internal/domain"
)

// outcome is the per-frame result kept after the frame itself is released.
type outcome struct {
	name   string
	width  int
	height int
	res    detect.Result
}

// Dataset accumulates the valid per-frame rects of a batch.
// It is append-only; the aggregation step consumes it once.
type Dataset struct {
	rects    []domain.ClipRect
	rejected int
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{rects: make([]domain.ClipRect, 0)}
}

// Add records the result of one frame. Invalid results only count as rejected.
func (d *Dataset) Add(res detect.Result) {
	if !res.Valid {
		d.rejected++
		return
	}
	d.rects = append(d.rects, res.Rect)
}

// Rects returns the accepted rects in insertion order.
func (d *Dataset) Rects() []domain.ClipRect {
	return d.rects
}

// Size returns the number of accepted rects.
func (d *Dataset) Size() int {
	return len(d.rects)
}

// Rejected returns the number of frames without a usable border.
func (d *Dataset) Rejected() int {
	return d.rejected
}

// Empty returns true if no frame was accepted.
func (d *Dataset) Empty() bool {
	return len(d.rects) == 0
}
