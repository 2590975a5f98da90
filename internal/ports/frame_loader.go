package ports

import (
	"context"

	"github.com/bft-labs/findclip/internal/domain"
)

// FrameLoader provides decoded frames.
type FrameLoader interface {
	// Load decodes the frame at path.
	// Any error is fatal for the batch.
	Load(ctx context.Context, path string) (domain.Frame, error)
}
