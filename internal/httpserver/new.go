package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"smartcity-complaints/pkg/log"
	"smartcity-complaints/pkg/ollama"
	"smartcity-complaints/pkg/vision"
	"smartcity-complaints/pkg/whisper"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Complaint domain
	postgresDB  *sql.DB
	llm         ollama.Generator
	transcriber whisper.Transcriber // nil when voice is disabled
	vision      vision.Classifier
	replyMode   string
	cacheSize   int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Complaint domain
	PostgresDB  *sql.DB
	LLM         ollama.Generator
	Transcriber whisper.Transcriber
	Vision      vision.Classifier
	ReplyMode   string
	CacheSize   int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		llm:         cfg.LLM,
		transcriber: cfg.Transcriber,
		vision:      cfg.Vision,
		replyMode:   cfg.ReplyMode,
		cacheSize:   cfg.CacheSize,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.llm == nil {
		return errors.New("llm client is required")
	}
	if srv.vision == nil {
		return errors.New("vision classifier is required")
	}
	return nil
}
