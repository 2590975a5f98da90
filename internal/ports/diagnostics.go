package ports

import (
	"context"

	"github.com/bft-labs/findclip/internal/detect"
	"github.com/bft-labs/findclip/internal/domain"
)

// PlotExporter writes the profiles behind a detection result.
// Export failures never change the detected rect.
type PlotExporter interface {
	Export(ctx context.Context, name string, res detect.Result) ([]string, error)
}

// MarkerWriter stores a copy of f with the outline of r drawn in and
// returns the written path.
type MarkerWriter interface {
	WriteMarkers(f domain.Frame, r domain.ClipRect) (string, error)
}
