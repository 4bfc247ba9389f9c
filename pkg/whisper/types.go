package whisper

import "time"

// Segment is one decoded speech interval. Timing data is diagnostic
// only; callers should rely on Result.Text.
type Segment struct {
	Num   int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Result is the outcome of a transcription. Text may be empty when the
// model detects no speech; that is a valid result, not an error.
type Result struct {
	Text     string
	Segments []Segment
}

// Config holds engine settings, supplied from the service configuration.
type Config struct {
	// ModelPath is the path to the whisper.cpp GGML model file.
	ModelPath string
	// Language is the decode language (e.g. "en", "ar", "auto").
	Language string
	// Workers bounds concurrent decodes. Zero means runtime.NumCPU().
	Workers int
}
