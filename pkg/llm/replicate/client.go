package replicate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dskvich/image-api/pkg/domain"
)

const (
	defaultBaseURL = "https://api.replicate.com/v1"
	defaultTimeout = 30 * time.Second

	sdxlVersion = "stability-ai/sdxl:39ed52f2a78e934b3ba6e2a89f5b1c712de7dfea535525255b1aa35c5565e08b"

	defaultNegativePrompt = "blurry, low quality, deformed face, extra limbs, watermark, text"
	defaultSteps          = 30
	defaultGuidanceScale  = 7.5
	defaultPromptStrength = 0.8
)

type client struct {
	token   string
	baseURL string
	hc      *http.Client
}

// NewClient builds a Replicate client. An empty token is allowed; calls made
// without one fail with domain.ErrAPIKeyMissing. baseURL is overridable for
// tests, empty means the public API.
func NewClient(token, baseURL string) *client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		token:   token,
		baseURL: baseURL,
		hc:      &http.Client{Timeout: defaultTimeout},
	}
}

// CreatePrediction submits an image-to-image generation job and returns the
// prediction ID to poll.
func (c *client) CreatePrediction(ctx context.Context, imageB64, prompt string) (string, error) {
	if c.token == "" {
		return "", domain.ErrAPIKeyMissing
	}

	reqBody, err := json.Marshal(createPredictionRequest{
		Version: sdxlVersion,
		Input: predictionInput{
			Prompt:         prompt,
			Image:          asDataURI(imageB64),
			NegativePrompt: defaultNegativePrompt,
			NumSteps:       defaultSteps,
			GuidanceScale:  defaultGuidanceScale,
			PromptStrength: defaultPromptStrength,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predictions", bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.doRequest(req)
	if err != nil {
		return "", fmt.Errorf("creating prediction: %w", err)
	}

	var p prediction
	if err := json.Unmarshal(respBody, &p); err != nil {
		return "", fmt.Errorf("parsing prediction response: %w", err)
	}
	if p.ID == "" {
		return "", errors.New("prediction response carried no id")
	}

	return p.ID, nil
}

// GetPrediction queries the job state once. The output URL is non-empty only
// when the returned status is succeeded.
func (c *client) GetPrediction(ctx context.Context, id string) (domain.JobStatus, string, error) {
	if c.token == "" {
		return "", "", domain.ErrAPIKeyMissing
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/predictions/"+id, nil)
	if err != nil {
		return "", "", fmt.Errorf("creating HTTP request: %w", err)
	}

	respBody, err := c.doRequest(req)
	if err != nil {
		return "", "", fmt.Errorf("getting prediction %s: %w", id, err)
	}

	var p prediction
	if err := json.Unmarshal(respBody, &p); err != nil {
		return "", "", fmt.Errorf("parsing prediction response: %w", err)
	}

	var output string
	if len(p.Output) > 0 {
		output = p.Output[0]
	}
	return domain.JobStatus(p.Status), output, nil
}

func (c *client) doRequest(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

func asDataURI(imageB64 string) string {
	if strings.HasPrefix(imageB64, "data:") {
		return imageB64
	}
	return "data:image/jpeg;base64," + imageB64
}
