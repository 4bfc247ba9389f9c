package whisper

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	wcpp "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// Engine is a whisper.cpp-backed Transcriber. The model is loaded once
// at construction and shared read-only across requests; a semaphore
// bounds concurrent CPU-bound decodes so they cannot starve the
// request-handling goroutines.
type Engine struct {
	model    wcpp.Model
	language string
	sem      chan struct{}
}

var _ Transcriber = (*Engine)(nil)

// New loads the speech-to-text model. The returned engine must be
// closed on shutdown.
func New(cfg Config) (*Engine, error) {
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("whisper model path is required")
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("whisper model not found: %w", err)
	}

	model, err := wcpp.New(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load whisper model: %w", err)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Engine{
		model:    model,
		language: cfg.Language,
		sem:      make(chan struct{}, workers),
	}, nil
}

// Transcribe writes the payload to a scoped temporary file, decodes it
// to samples, and runs the model on a bounded worker slot.
func (e *Engine) Transcribe(ctx context.Context, audio []byte) (Result, error) {
	if len(audio) == 0 {
		return Result{}, fmt.Errorf("empty audio payload")
	}

	tmp, err := os.CreateTemp("", "complaint-audio-*.wav")
	if err != nil {
		return Result{}, fmt.Errorf("failed to create temp audio file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return Result{}, fmt.Errorf("failed to write temp audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to close temp audio file: %w", err)
	}

	samples, err := DecodeWAV(tmp.Name())
	if err != nil {
		return Result{}, err
	}

	// Bound concurrent decodes; the wait is cancellable.
	select {
	case e.sem <- struct{}{}:
		defer func() { <-e.sem }()
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}

	return e.process(samples)
}

func (e *Engine) process(samples []float32) (Result, error) {
	wctx, err := e.model.NewContext()
	if err != nil {
		return Result{}, fmt.Errorf("failed to create whisper context: %w", err)
	}

	if e.language != "" {
		if err := wctx.SetLanguage(e.language); err != nil {
			return Result{}, fmt.Errorf("failed to set language %q: %w", e.language, err)
		}
	}

	if err := wctx.Process(samples, nil, nil); err != nil {
		return Result{}, fmt.Errorf("whisper decode failed: %w", err)
	}

	var res Result
	var text strings.Builder
	for {
		seg, err := wctx.NextSegment()
		if err != nil {
			break
		}
		res.Segments = append(res.Segments, Segment{
			Num:   seg.Num,
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
		text.WriteString(seg.Text)
	}

	res.Text = strings.TrimSpace(text.String())
	return res, nil
}

// Close releases the shared model.
func (e *Engine) Close() error {
	if e.model == nil {
		return nil
	}
	return e.model.Close()
}
