// Package raster reads and writes grayscale frames.
//
// The primary input format is binary PGM (P5) as dumped by video players.
// Grayscale PNG, JPEG, TIFF and BMP files are accepted as well; color
// images are rejected. With LumiOnly, the decoded height is cut to two
// thirds, which strips the chroma planes some capture tools append below
// the luma plane of a YUV 4:2:0 dump.
package raster
