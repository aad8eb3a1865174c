// Package log is the logging abstraction used by corgi.fm host components.
//
// Library code logs through the [Logger] interface so that embedding
// programs decide where output goes. A zerolog adapter and a no-op logger
// are provided:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger := log.NewNoopLogger()
//
// The exported math functions never log.
package log
