package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-tweet-studio/internal/hub"
	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
)

// TweetGenerator produces tweet text for a prompt. Implementations never
// fail: they fall back to a placeholder when the external call does.
type TweetGenerator interface {
	GenerateTweet(ctx context.Context, prompt string) string
}

// ImageGenerator renders an image for a prompt and returns its relative URL,
// or "" when generation failed.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) string
}

// TrainingWriter appends generation events to the training-data log.
type TrainingWriter interface {
	Append(ctx context.Context, entry models.TrainingEntry) error
}

// GenerationResult is the outcome of one generate request.
type GenerationResult struct {
	Tweet     string
	ImageURL  *string
	ContentID *int64
	CanPost   bool
}

// GenerationService orchestrates text generation, image generation,
// persistence, and the training log for the generate route.
type GenerationService struct {
	tweets      TweetGenerator
	images      ImageGenerator
	writer      ContentWriter
	training    TrainingWriter
	broadcaster Broadcaster
}

// NewGenerationService creates a new GenerationService instance.
func NewGenerationService(
	tweets TweetGenerator,
	images ImageGenerator,
	writer ContentWriter,
	training TrainingWriter,
	broadcaster Broadcaster,
) *GenerationService {
	return &GenerationService{
		tweets:      tweets,
		images:      images,
		writer:      writer,
		training:    training,
		broadcaster: broadcaster,
	}
}

// Generate always produces tweet text. Image generation and persistence only
// happen for authenticated callers; anonymous callers get text only and
// nothing is stored. The training-log append is best-effort on every call.
func (svc *GenerationService) Generate(ctx context.Context, identity *models.Identity, prompt string) (*GenerationResult, error) {
	result := &GenerationResult{
		Tweet:   svc.tweets.GenerateTweet(ctx, prompt),
		CanPost: identity != nil,
	}

	if identity != nil {
		if url := svc.images.GenerateImage(ctx, prompt); url != "" {
			result.ImageURL = &url
		}
	}

	svc.appendTrainingEntry(ctx, identity, prompt, result)

	if identity == nil {
		return result, nil
	}

	contentID, err := svc.writer.Save(ctx, &identity.UserID, prompt, result.Tweet, result.ImageURL)
	if err != nil {
		logger.Log.Errorw("failed to save generated content", "err", err)
		return nil, err
	}
	result.ContentID = &contentID

	svc.broadcaster.Broadcast(hub.EventContentUpdate, map[string]any{
		"action":     "new_content",
		"user_id":    identity.UserID,
		"username":   identity.Username,
		"content_id": contentID,
	})

	return result, nil
}

// appendTrainingEntry swallows failures: the training log is a non-critical
// path and must never fail the request.
func (svc *GenerationService) appendTrainingEntry(ctx context.Context, identity *models.Identity, prompt string, result *GenerationResult) {
	var userID *int64
	if identity != nil {
		userID = &identity.UserID
	}

	err := svc.training.Append(ctx, models.TrainingEntry{
		UserID:         userID,
		Prompt:         prompt,
		GeneratedTweet: result.Tweet,
		ImageURL:       result.ImageURL,
		Timestamp:      time.Now().Format(time.RFC3339),
	})
	if err != nil {
		logger.Log.Errorw("failed to append training entry", "err", err)
	}
}
