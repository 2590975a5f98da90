// Package ports defines the interfaces that connect the batch runner to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [FrameLoader]: Decodes one frame from a source path
//   - [PlotExporter]: Writes diagnostic profiles of a detection result
//   - [MarkerWriter]: Stores a frame with the final crop outline drawn in
//
// The runner in internal/app depends only on these interfaces; the
// implementations live in internal/adapters (raster, plot). Tests swap in
// in-memory fakes.
package ports
