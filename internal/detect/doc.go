// Package detect finds the letterbox/pillarbox borders of a single frame.
//
// Each of the four sides is located by scanning the row or column profile
// from its own end. Black borders have near-zero dispersion and end in a
// sharp spike of the mean gradient; [FindCandidate] locates that spike with
// an adaptive threshold and [FindBorder] picks the most confident candidate
// of an axis. [Detector] combines the four sides and rejects frames whose
// remaining picture would be implausibly small.
package detect
