// Package log provides the logging abstraction used by findclip.
//
// Library code depends only on the [Logger] interface. The CLI wires a
// zerolog console logger through [NewZerologAdapter]; tests and embedders
// that want silence use [NewNoopLogger].
//
//	logger := log.NewZerologAdapter(os.Stderr, true)
//	logger.Warn("frame and border alignment impossible", log.String("axis", "x"))
package log
