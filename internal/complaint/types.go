package complaint

import "smartcity-complaints/internal/model"

// PipelineState is the single per-request record threaded through the
// pipeline stages. CitizenName and Message are fixed at construction;
// each later field is written by exactly one stage, in order
// (Category by classify, Action by route, Reply by reply, Saved by
// persist). One state per in-flight request; never shared.
type PipelineState struct {
	CitizenName string
	Message     string

	Category string
	Action   string
	Reply    string

	Saved model.Complaint
}

// NewPipelineState builds the initial state for an entry point. All
// stage-owned fields start empty.
func NewPipelineState(citizenName, message string) *PipelineState {
	return &PipelineState{
		CitizenName: citizenName,
		Message:     message,
	}
}

// --- UseCase Inputs ---

// TextInput is a direct text complaint submission.
type TextInput struct {
	CitizenName string
	Message     string
}

// VoiceInput is a voice complaint submission; Audio is the raw WAV
// payload to transcribe.
type VoiceInput struct {
	CitizenName string
	Audio       []byte
}

// ImageInput is an image complaint submission.
type ImageInput struct {
	Image []byte
}

// ListInput holds filter and pagination parameters for listing
// persisted complaints.
type ListInput struct {
	Category string
	Limit    int
	Offset   int
}

// --- UseCase Outputs ---

// SubmitOutput is the result of a text or voice submission: the
// persisted record, fully populated.
type SubmitOutput struct {
	Complaint model.Complaint
}

// ImageOutput is the result of an image submission. Image complaints
// are classified and described but not persisted by this pipeline.
type ImageOutput struct {
	Category    string
	Confidence  float64
	Description string
}

// ListOutput is a page of persisted complaints.
type ListOutput struct {
	Complaints []model.Complaint
	Total      int
	Limit      int
	Offset     int
}

// DetailOutput is a single persisted complaint.
type DetailOutput struct {
	Complaint model.Complaint
}
