package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-tweet-studio/internal/hub"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
	"github.com/sbilibin2017/gw-tweet-studio/internal/services"
	"github.com/stretchr/testify/assert"
)

type generationMocks struct {
	tweets      *services.MockTweetGenerator
	images      *services.MockImageGenerator
	writer      *services.MockContentWriter
	training    *services.MockTrainingWriter
	broadcaster *services.MockBroadcaster
}

func newGenerationService(ctrl *gomock.Controller) (*services.GenerationService, generationMocks) {
	m := generationMocks{
		tweets:      services.NewMockTweetGenerator(ctrl),
		images:      services.NewMockImageGenerator(ctrl),
		writer:      services.NewMockContentWriter(ctrl),
		training:    services.NewMockTrainingWriter(ctrl),
		broadcaster: services.NewMockBroadcaster(ctrl),
	}
	svc := services.NewGenerationService(m.tweets, m.images, m.writer, m.training, m.broadcaster)
	return svc, m
}

func TestGenerationService_Generate_Authenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGenerationService(ctrl)
	identity := &models.Identity{UserID: 1, Username: "alice"}

	m.tweets.EXPECT().GenerateTweet(gomock.Any(), "solar energy").Return("☀️ tweet #solar")
	m.images.EXPECT().GenerateImage(gomock.Any(), "solar energy").Return("/images/solar_abc123.png")
	m.training.EXPECT().Append(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry models.TrainingEntry) {
			assert.Equal(t, "solar energy", entry.Prompt)
			assert.NotNil(t, entry.UserID)
			assert.Equal(t, int64(1), *entry.UserID)
			assert.NotEmpty(t, entry.Timestamp)
		}).
		Return(nil)
	m.writer.EXPECT().
		Save(gomock.Any(), gomock.Any(), "solar energy", "☀️ tweet #solar", gomock.Any()).
		Return(int64(42), nil)
	m.broadcaster.EXPECT().
		Broadcast(hub.EventContentUpdate, gomock.Any()).
		Do(func(_ string, data any) {
			payload := data.(map[string]any)
			assert.Equal(t, "new_content", payload["action"])
			assert.Equal(t, int64(42), payload["content_id"])
		})

	result, err := svc.Generate(context.Background(), identity, "solar energy")
	assert.NoError(t, err)
	assert.Equal(t, "☀️ tweet #solar", result.Tweet)
	assert.NotNil(t, result.ImageURL)
	assert.Equal(t, "/images/solar_abc123.png", *result.ImageURL)
	assert.NotNil(t, result.ContentID)
	assert.Equal(t, int64(42), *result.ContentID)
	assert.True(t, result.CanPost)
}

func TestGenerationService_Generate_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGenerationService(ctrl)

	m.tweets.EXPECT().GenerateTweet(gomock.Any(), "solar energy").Return("fallback tweet")
	m.training.EXPECT().Append(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, entry models.TrainingEntry) {
			assert.Nil(t, entry.UserID)
		}).
		Return(nil)
	// No image generation, no save, no broadcast for anonymous callers.

	result, err := svc.Generate(context.Background(), nil, "solar energy")
	assert.NoError(t, err)
	assert.Equal(t, "fallback tweet", result.Tweet)
	assert.Nil(t, result.ImageURL)
	assert.Nil(t, result.ContentID)
	assert.False(t, result.CanPost)
}

func TestGenerationService_Generate_ImageFailure_StillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGenerationService(ctrl)
	identity := &models.Identity{UserID: 1, Username: "alice"}

	m.tweets.EXPECT().GenerateTweet(gomock.Any(), "solar energy").Return("tweet text")
	m.images.EXPECT().GenerateImage(gomock.Any(), "solar energy").Return("")
	m.training.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	m.writer.EXPECT().
		Save(gomock.Any(), gomock.Any(), "solar energy", "tweet text", nil).
		Return(int64(7), nil)
	m.broadcaster.EXPECT().Broadcast(hub.EventContentUpdate, gomock.Any())

	result, err := svc.Generate(context.Background(), identity, "solar energy")
	assert.NoError(t, err)
	assert.Nil(t, result.ImageURL)
	assert.NotNil(t, result.ContentID)
}

func TestGenerationService_Generate_TrainingFailureSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGenerationService(ctrl)

	m.tweets.EXPECT().GenerateTweet(gomock.Any(), "solar energy").Return("tweet text")
	m.training.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	result, err := svc.Generate(context.Background(), nil, "solar energy")
	assert.NoError(t, err, "training log failures must not surface")
	assert.Equal(t, "tweet text", result.Tweet)
}

func TestGenerationService_Generate_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGenerationService(ctrl)
	identity := &models.Identity{UserID: 1, Username: "alice"}

	m.tweets.EXPECT().GenerateTweet(gomock.Any(), "solar energy").Return("tweet text")
	m.images.EXPECT().GenerateImage(gomock.Any(), "solar energy").Return("")
	m.training.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	m.writer.EXPECT().
		Save(gomock.Any(), gomock.Any(), "solar energy", "tweet text", nil).
		Return(int64(0), errors.New("database is locked"))

	result, err := svc.Generate(context.Background(), identity, "solar energy")
	assert.Error(t, err)
	assert.Nil(t, result)
}
