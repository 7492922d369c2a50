package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
)

// DefaultTweetAPIURL is the hosted language-model endpoint used when no
// override is configured.
const DefaultTweetAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

const missingKeyTweet = "API key missing! Please check your environment setup."

// mockTweets is the fallback pool used when every attempt against the hosted
// model fails. The exact text is not a contract, only that it is non-empty.
var mockTweets = []string{
	"🚀 Just discovered something amazing about %s! The future is here and it's incredible. #AI #Innovation #Tech",
	"💡 Here's a thought about %s: Sometimes the best solutions come from the most unexpected places. #Inspiration #Ideas",
	"🌟 %s is changing the game! Can't wait to see where this leads us. #Future #Technology #Progress",
	"🔥 Breaking: %s just got a whole lot more interesting! Stay tuned for more updates. #News #Updates",
}

// tweetRequest is the hosted model's generateContent payload.
type tweetRequest struct {
	Contents []tweetContent `json:"contents"`
}

type tweetContent struct {
	Parts []tweetPart `json:"parts"`
}

type tweetPart struct {
	Text string `json:"text"`
}

// tweetResponse is the subset of the generateContent response we read.
type tweetResponse struct {
	Candidates []struct {
		Content struct {
			Parts []tweetPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// TweetFacade generates tweet text through a hosted language model.
// It never fails: exhausted retries fall back to the mock pool and a missing
// API key yields a visible configuration-error string.
type TweetFacade struct {
	client     *http.Client
	endpoint   string
	apiKey     string
	attempts   int
	retryDelay time.Duration
}

// NewTweetFacade creates a facade for the hosted language-model endpoint.
func NewTweetFacade(endpoint, apiKey string) *TweetFacade {
	if endpoint == "" {
		endpoint = DefaultTweetAPIURL
	}
	return &TweetFacade{
		client:     &http.Client{Timeout: 10 * time.Second},
		endpoint:   endpoint,
		apiKey:     apiKey,
		attempts:   3,
		retryDelay: 2 * time.Second,
	}
}

// GenerateTweet returns a short promotional tweet for the prompt.
// The result is always a non-empty string.
func (f *TweetFacade) GenerateTweet(ctx context.Context, prompt string) string {
	if f.apiKey == "" {
		logger.Log.Errorw("tweet API key not configured")
		return missingKeyTweet
	}

	instruction := fmt.Sprintf(
		"Write a professional, engaging tweet (max 120 characters) about: '%s'. "+
			"Use emojis, relevant hashtags, and keep it concise and catchy.", prompt)

	for attempt := 1; attempt <= f.attempts; attempt++ {
		text, err := f.callModel(ctx, instruction)
		if err == nil {
			return text
		}

		logger.Log.Errorw("tweet generation attempt failed",
			"attempt", attempt,
			"error", err,
		)

		if attempt < f.attempts {
			select {
			case <-time.After(f.retryDelay):
			case <-ctx.Done():
				return f.fallbackTweet(prompt)
			}
		}
	}

	return f.fallbackTweet(prompt)
}

func (f *TweetFacade) callModel(ctx context.Context, instruction string) (string, error) {
	payload := tweetRequest{
		Contents: []tweetContent{{Parts: []tweetPart{{Text: instruction}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var result tweetResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty candidate in model response")
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("model returned empty text")
	}

	return text, nil
}

func (f *TweetFacade) fallbackTweet(prompt string) string {
	logger.Log.Warnw("tweet generation exhausted retries, using fallback pool", "prompt", prompt)
	return fmt.Sprintf(mockTweets[rand.Intn(len(mockTweets))], prompt)
}
