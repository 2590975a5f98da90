// Package domain contains the core entities and value objects for findclip.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (file formats, logging, CLI) and contains only the
// data model shared by the detection, aggregation and alignment stages.
//
// # Entities
//
//   - [Frame]: An immutable 8-bit grayscale raster
//   - [ClipRect]: Border widths in pixels for the four sides of a frame
//
// Errors that cross package boundaries are declared in errors.go and can be
// checked with errors.Is.
package domain
