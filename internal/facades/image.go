package facades

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
)

// DefaultImageAPIURL is the hosted image-model endpoint used when no override
// is configured.
const DefaultImageAPIURL = "https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-3.5-large"

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// imageRequest is the hosted image model's inference payload.
type imageRequest struct {
	Inputs     string          `json:"inputs"`
	Parameters imageParameters `json:"parameters"`
}

type imageParameters struct {
	GuidanceScale     float64 `json:"guidance_scale"`
	NumInferenceSteps int     `json:"num_inference_steps"`
}

// ImageFacade generates an image for a prompt through a hosted image model
// and writes the result under the configured directory. Failures are absorbed:
// the caller receives an empty reference, never an error. The facade is
// constructed once at startup and reused across requests.
type ImageFacade struct {
	client    *http.Client
	endpoint  string
	apiKey    string
	outputDir string
}

// NewImageFacade creates a facade for the hosted image-model endpoint.
// The HTTP client carries no timeout: inference may take tens of seconds.
func NewImageFacade(endpoint, apiKey, outputDir string) *ImageFacade {
	if endpoint == "" {
		endpoint = DefaultImageAPIURL
	}
	return &ImageFacade{
		client:    &http.Client{},
		endpoint:  endpoint,
		apiKey:    apiKey,
		outputDir: outputDir,
	}
}

// GenerateImage renders the prompt and returns the relative URL of the
// written image, or "" when generation failed for any reason.
func (f *ImageFacade) GenerateImage(ctx context.Context, prompt string) string {
	if f.apiKey == "" {
		logger.Log.Errorw("image API key not configured")
		return ""
	}

	cleanPrompt := cleanImagePrompt(prompt)

	png, err := f.callModel(ctx, cleanPrompt)
	if err != nil {
		logger.Log.Errorw("image generation failed", "prompt", cleanPrompt, "error", err)
		return ""
	}

	filename := imageFilename(cleanPrompt)
	path := filepath.Join(f.outputDir, filename)

	if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
		logger.Log.Errorw("failed to create image directory", "dir", f.outputDir, "error", err)
		return ""
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		logger.Log.Errorw("failed to write generated image", "path", path, "error", err)
		return ""
	}

	logger.Log.Infow("image generated", "path", path)
	return "/images/" + filename
}

func (f *ImageFacade) callModel(ctx context.Context, prompt string) ([]byte, error) {
	payload := imageRequest{
		Inputs: prompt,
		Parameters: imageParameters{
			GuidanceScale:     7.5,
			NumInferenceSteps: 20,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(png) == 0 {
		return nil, fmt.Errorf("model returned empty body")
	}

	return png, nil
}

// cleanImagePrompt strips punctuation and emoji so the prompt works both as
// model input and as a filename component.
func cleanImagePrompt(prompt string) string {
	clean := nonWordChars.ReplaceAllString(prompt, "")
	clean = strings.TrimSpace(clean)
	if len(clean) > 100 {
		clean = clean[:100]
	}
	if clean == "" {
		clean = "abstract digital art"
	}
	return clean
}

func imageFilename(cleanPrompt string) string {
	prefix := cleanPrompt
	if len(prefix) > 20 {
		prefix = prefix[:20]
	}
	prefix = strings.ReplaceAll(prefix, " ", "_")

	u := uuid.New()
	return fmt.Sprintf("%s_%s.png", prefix, hex.EncodeToString(u[:4]))
}
