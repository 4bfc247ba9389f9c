package ollama

// GenerateRequest is the body sent to the /api/generate endpoint.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// StreamChunk is one newline-delimited JSON object of a streamed generation.
// Only Response and Done are meaningful to us; the endpoint sends more
// fields (timings, context) that we ignore.
type StreamChunk struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}
