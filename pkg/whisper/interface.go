package whisper

import "context"

// Transcriber converts an audio payload into text.
type Transcriber interface {
	// Transcribe decodes the given WAV payload (16 kHz mono) and returns
	// the transcript. Engine faults are returned as errors; there is no
	// fallback transcript synthesis.
	Transcribe(ctx context.Context, audio []byte) (Result, error)

	// Close releases the underlying model.
	Close() error
}
