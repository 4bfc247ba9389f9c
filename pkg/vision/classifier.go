package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"math"
	"net/http"
	"time"

	x_draw "golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const imgSize = 224

var defaultClassNames = []string{"accident", "fight", "other"}

// Classifier maps incident image bytes to a category label with a
// confidence in [0,1]. Implementations never fail: every fault path
// degrades to a conservative classification.
type Classifier interface {
	ClassifyImage(ctx context.Context, imageBytes []byte) (label string, confidence float64)
}

// Client classifies images through an external inference service when
// one is configured, with a rule-based placeholder otherwise.
type Client struct {
	endpoint   string
	classNames []string
	httpClient *http.Client
}

var _ Classifier = (*Client)(nil)

// NewClient creates a new image classifier.
func NewClient(cfg Config) *Client {
	if len(cfg.ClassNames) == 0 {
		cfg.ClassNames = defaultClassNames
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		classNames: cfg.ClassNames,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// ClassifyImage decodes, preprocesses, and classifies the image.
// Decode failures and inference faults degrade to LabelGeneric with
// ConfidenceDegraded; they are never surfaced as errors.
func (c *Client) ClassifyImage(ctx context.Context, imageBytes []byte) (string, float64) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return LabelGeneric, ConfidenceDegraded
	}

	if c.endpoint == "" {
		// No model deployed: conservative placeholder for a valid image.
		return LabelGeneric, ConfidencePlaceholder
	}

	logits, err := c.infer(ctx, preprocess(img))
	if err != nil || len(logits) == 0 {
		return LabelGeneric, ConfidenceDegraded
	}

	return Interpret(logits, c.classNames)
}

// Interpret maps a logit vector to (label, confidence). A single value
// is treated as a binary score thresholded at 0.5 between the first two
// classes; multiple values are resolved by arg-max with the softmax of
// the winning logit as confidence.
func Interpret(logits []float64, classNames []string) (string, float64) {
	if len(classNames) == 0 {
		classNames = defaultClassNames
	}

	if len(logits) == 1 {
		score := logits[0]
		if score > 0.5 {
			return classNames[1], score
		}
		return classNames[0], 1 - score
	}

	best := 0
	for i, v := range logits {
		if v > logits[best] {
			best = i
		}
	}

	label := "other"
	if best < len(classNames) {
		label = classNames[best]
	}
	return label, softmax(logits, best)
}

func softmax(logits []float64, idx int) float64 {
	max := logits[0]
	for _, v := range logits {
		if v > max {
			max = v
		}
	}
	var sum float64
	for _, v := range logits {
		sum += math.Exp(v - max)
	}
	return math.Exp(logits[idx]-max) / sum
}

// preprocess resizes to the model's square input and normalizes RGB
// channels to [0,1].
func preprocess(img image.Image) [][][]float64 {
	dst := image.NewRGBA(image.Rect(0, 0, imgSize, imgSize))
	x_draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), x_draw.Src, nil)

	pixels := make([][][]float64, imgSize)
	for y := 0; y < imgSize; y++ {
		row := make([][]float64, imgSize)
		for x := 0; x < imgSize; x++ {
			r, g, b, _ := dst.At(x, y).RGBA()
			row[x] = []float64{
				float64(r>>8) / 255.0,
				float64(g>>8) / 255.0,
				float64(b>>8) / 255.0,
			}
		}
		pixels[y] = row
	}
	return pixels
}

func (c *Client) infer(ctx context.Context, instance [][][]float64) ([]float64, error) {
	body, err := json.Marshal(inferRequest{Instances: [][][][]float64{instance}})
	if err != nil {
		return nil, fmt.Errorf("marshal inference payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call inference service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("inference service error %d: %s", resp.StatusCode, string(raw))
	}

	var out inferResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode inference response: %w", err)
	}
	if len(out.Predictions) == 0 {
		return nil, fmt.Errorf("inference response has no predictions")
	}
	return out.Predictions[0], nil
}

// Describe renders a human-readable description for a classification.
func Describe(label string, confidence float64) string {
	switch label {
	case "accident":
		return fmt.Sprintf("The image appears to show a road accident (confidence: %.0f%%)", confidence*100)
	case "fight":
		return fmt.Sprintf("The image appears to show a physical altercation (confidence: %.0f%%)", confidence*100)
	case "traffic":
		return fmt.Sprintf("The image shows a traffic-related issue (confidence: %.0f%%)", confidence*100)
	case "infrastructure":
		return fmt.Sprintf("The image shows an infrastructure problem (confidence: %.0f%%)", confidence*100)
	case "other":
		return fmt.Sprintf("The image shows a general complaint (confidence: %.0f%%)", confidence*100)
	case LabelGeneric:
		return "Image-based complaint received"
	default:
		return "Image complaint received"
	}
}
