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

func TestContentService_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockContentReader(ctrl)
	mockWriter := services.NewMockContentWriter(ctrl)
	mockBroadcaster := services.NewMockBroadcaster(ctrl)

	svc := services.NewContentService(mockReader, mockWriter, mockBroadcaster)

	identity := &models.Identity{UserID: 1, Username: "alice"}

	tests := []struct {
		name      string
		marked    bool
		markErr   error
		wantErr   error
		broadcast bool
	}{
		{
			name:      "successful publish",
			marked:    true,
			broadcast: true,
		},
		{
			name:    "not owned or missing",
			marked:  false,
			wantErr: services.ErrContentNotFound,
		},
		{
			name:    "store error",
			markErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				MarkPosted(gomock.Any(), int64(10), identity.UserID).
				Return(tt.marked, tt.markErr)

			if tt.broadcast {
				mockBroadcaster.EXPECT().
					Broadcast(hub.EventContentUpdate, gomock.Any()).
					Do(func(_ string, data any) {
						payload := data.(map[string]any)
						assert.Equal(t, "content_published", payload["action"])
						assert.Equal(t, int64(10), payload["content_id"])
					})
			}

			err := svc.Publish(context.Background(), 10, identity)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentService_Publish_Twice_ReEmitsEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockContentReader(ctrl)
	mockWriter := services.NewMockContentWriter(ctrl)
	mockBroadcaster := services.NewMockBroadcaster(ctrl)

	svc := services.NewContentService(mockReader, mockWriter, mockBroadcaster)
	identity := &models.Identity{UserID: 1, Username: "alice"}

	// The row matches both times; already-posted is a state no-op.
	mockWriter.EXPECT().
		MarkPosted(gomock.Any(), int64(10), int64(1)).
		Return(true, nil).
		Times(2)
	mockBroadcaster.EXPECT().
		Broadcast(hub.EventContentUpdate, gomock.Any()).
		Times(2)

	assert.NoError(t, svc.Publish(context.Background(), 10, identity))
	assert.NoError(t, svc.Publish(context.Background(), 10, identity))
}

func TestContentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockContentReader(ctrl)
	mockWriter := services.NewMockContentWriter(ctrl)
	mockBroadcaster := services.NewMockBroadcaster(ctrl)

	svc := services.NewContentService(mockReader, mockWriter, mockBroadcaster)

	tests := []struct {
		name      string
		deleted   bool
		deleteErr error
		wantErr   error
		broadcast bool
	}{
		{
			name:      "successful delete",
			deleted:   true,
			broadcast: true,
		},
		{
			name:    "missing row",
			deleted: false,
			wantErr: services.ErrContentNotFound,
		},
		{
			name:      "store error",
			deleteErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Delete(gomock.Any(), int64(10)).
				Return(tt.deleted, tt.deleteErr)

			if tt.broadcast {
				mockBroadcaster.EXPECT().
					Broadcast(hub.EventContentUpdate, gomock.Any()).
					Do(func(_ string, data any) {
						payload := data.(map[string]any)
						assert.Equal(t, "content_deleted", payload["action"])
						assert.Equal(t, "admin", payload["admin_user"])
					})
			}

			err := svc.Delete(context.Background(), 10, "admin")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentService_ListUserContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockContentReader(ctrl)
	mockWriter := services.NewMockContentWriter(ctrl)
	mockBroadcaster := services.NewMockBroadcaster(ctrl)

	svc := services.NewContentService(mockReader, mockWriter, mockBroadcaster)

	want := []models.ContentDB{{ID: 2, Prompt: "wind"}, {ID: 1, Prompt: "solar"}}
	mockReader.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(want, nil)

	got, err := svc.ListUserContent(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
