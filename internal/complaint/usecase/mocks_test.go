package usecase_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"smartcity-complaints/internal/complaint/repository"
	"smartcity-complaints/internal/model"
	"smartcity-complaints/pkg/whisper"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockGenerator answers classification prompts by echoing a canned
// category and reply prompts with a canned reply. It records how many
// calls it served so cache tests can assert on round trips.
type mockGenerator struct {
	fail     bool
	classify string // raw model output for classification prompts
	reply    string // raw model output for reply prompts
	calls    int
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	if m.fail {
		return "", errors.New("model endpoint down")
	}
	if strings.Contains(prompt, "Classify this citizen complaint") {
		return m.classify, nil
	}
	return m.reply, nil
}

func (m *mockGenerator) Model() string { return "test-model" }

type mockTranscriber struct {
	fail bool
	text string
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audio []byte) (whisper.Result, error) {
	if m.fail {
		return whisper.Result{}, errors.New("decode failed")
	}
	return whisper.Result{
		Text: m.text,
		Segments: []whisper.Segment{
			{Num: 0, Start: 0, End: 2 * time.Second, Text: m.text},
		},
	}, nil
}

func (m *mockTranscriber) Close() error { return nil }

type mockClassifier struct {
	label string
	conf  float64
}

func (m *mockClassifier) ClassifyImage(ctx context.Context, imageBytes []byte) (string, float64) {
	return m.label, m.conf
}

type mockRepo struct {
	fail    bool
	nextID  int64
	created []repository.CreateComplaintOptions
	records map[int64]model.Complaint
}

func (m *mockRepo) CreateComplaint(ctx context.Context, opt repository.CreateComplaintOptions) (model.Complaint, error) {
	if m.fail {
		return model.Complaint{}, errors.New("db error")
	}
	m.created = append(m.created, opt)
	m.nextID++
	return model.Complaint{
		ID:          m.nextID,
		CitizenName: opt.CitizenName,
		Message:     opt.Message,
		Category:    opt.Category,
		Reply:       opt.Reply,
		Action:      opt.Action,
		CreatedAt:   time.Now(),
	}, nil
}

func (m *mockRepo) GetOneComplaint(ctx context.Context, opt repository.GetOneComplaintOptions) (model.Complaint, error) {
	if m.fail {
		return model.Complaint{}, errors.New("db error")
	}
	return m.records[opt.ID], nil
}

func (m *mockRepo) ListComplaints(ctx context.Context, opt repository.ListComplaintsOptions) ([]model.Complaint, int, error) {
	if m.fail {
		return nil, 0, errors.New("db error")
	}
	var out []model.Complaint
	for _, c := range m.records {
		if opt.Category != "" && c.Category != opt.Category {
			continue
		}
		out = append(out, c)
	}
	return out, len(out), nil
}
