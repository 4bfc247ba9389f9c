package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/internal/complaint/repository"
	pkgLog "smartcity-complaints/pkg/log"
	"smartcity-complaints/pkg/ollama"
	"smartcity-complaints/pkg/vision"
	"smartcity-complaints/pkg/whisper"
)

// Options tunes the pipeline behavior.
type Options struct {
	// ReplyMode selects the reply stage implementation:
	// complaint.ReplyModeModel (generative) or
	// complaint.ReplyModeTemplate (deterministic, no model call).
	ReplyMode string
	// CacheSize bounds the classification cache. Zero means
	// defaultCacheSize.
	CacheSize int
}

type implUseCase struct {
	l           pkgLog.Logger
	llm         ollama.Generator
	transcriber whisper.Transcriber
	vision      vision.Classifier
	repo        repository.Repository
	replyMode   string

	// cache maps normalized complaint text to its resolved category so
	// repeated identical complaints skip the model round trip.
	cache *lru.Cache[string, string]
}

// New creates a new complaint UseCase instance. transcriber may be nil
// when no speech-to-text model is configured; voice submissions then
// fail with complaint.ErrTranscriberUnavailable.
func New(
	l pkgLog.Logger,
	llm ollama.Generator,
	transcriber whisper.Transcriber,
	imageClassifier vision.Classifier,
	repo repository.Repository,
	opts Options,
) *implUseCase {
	if opts.ReplyMode == "" {
		opts.ReplyMode = complaint.ReplyModeModel
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}

	// lru.New only fails on a non-positive size, which is guarded above.
	cache, _ := lru.New[string, string](opts.CacheSize)

	return &implUseCase{
		l:           l,
		llm:         llm,
		transcriber: transcriber,
		vision:      imageClassifier,
		repo:        repo,
		replyMode:   opts.ReplyMode,
		cache:       cache,
	}
}
