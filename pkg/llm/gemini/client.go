package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dskvich/image-api/pkg/domain"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-1.5-flash"

	defaultTimeout = 60 * time.Second
)

// describeInstruction fixes the house rules for every description request:
// no facial-attribute detail, expression is fine, carry the reference
// marker after the subject, and answer in Bahasa Indonesia.
const describeInstruction = `Deskripsikan gambar ini dengan aturan berikut:
1. Jangan sebutkan detail fisik wajah seperti warna kulit, rambut, kumis, jenggot, alis, atau bulu mata.
2. Ekspresi wajah boleh disebutkan.
3. Tambahkan "(gambar referensi)" setelah subjek utama.
4. Jawab dalam Bahasa Indonesia.`

type client struct {
	token   string
	baseURL string
	model   string
	hc      *http.Client
}

// NewClient builds a Gemini client. An empty token is allowed at
// construction time; calls made without one fail with
// domain.ErrAPIKeyMissing. baseURL is overridable for tests, empty means
// the public endpoint.
func NewClient(token, baseURL string) *client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		token:   token,
		baseURL: baseURL,
		model:   defaultModel,
		hc:      &http.Client{Timeout: defaultTimeout},
	}
}

// DescribeImage sends the base64-encoded image with the fixed instruction
// and returns the first candidate's text.
func (c *client) DescribeImage(ctx context.Context, imageB64 string) (string, error) {
	if c.token == "" {
		return "", domain.ErrAPIKeyMissing
	}

	reqBody, err := json.Marshal(generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{Text: describeInstruction},
				{InlineData: &inlineData{MimeType: "image/jpeg", Data: imageB64}},
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, string(respBody))
	}

	var gcResp generateContentResponse
	if err := json.Unmarshal(respBody, &gcResp); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	text := gcResp.firstText()
	if text == "" {
		return "", domain.ErrEmptyResponse
	}
	return text, nil
}

func (r generateContentResponse) firstText() string {
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			if s := strings.TrimSpace(p.Text); s != "" {
				return s
			}
		}
	}
	return ""
}
